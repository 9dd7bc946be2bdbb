package matching

//go:generate mockgen -package=mocks -destination=mocks/mock_resolver.go github.com/gptfleet/hellsnap/internal/matching Resolver

import (
	"errors"

	"github.com/gptfleet/hellsnap/internal/models"
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultThreshold is the minimum score a fuzzy candidate must reach.
	DefaultThreshold = 80

	// DefaultMinLength is the shortest normalized name eligible for fuzzy
	// scoring; anything shorter matches exactly or not at all.
	DefaultMinLength = 3

	maxLengthDiff  = 3
	minLengthRatio = 0.75
	maxLengthRatio = 1.25

	exactScore = 100
)

// ResolveInput contains parameters for resolving a name.
type ResolveInput struct {
	// Name is the cleaned OCR name to resolve
	Name string

	// Roster is the set of registered identities to match against
	Roster []*models.RosterEntry
}

// ResolveOutput contains the result of resolving a name.
type ResolveOutput struct {
	// Entry is the matched roster identity, nil when unregistered
	Entry *models.RosterEntry

	// Score is the similarity score of the accepted match
	Score float64
}

// Resolver matches extracted names against the roster.
type Resolver interface {
	Resolve(input *ResolveInput) (*ResolveOutput, error)
}

// Config holds configuration for the resolver.
type Config struct {
	// Threshold is the minimum acceptable fuzzy score. Zero uses the
	// default of 80.
	Threshold float64

	// MinLength is the shortest normalized name allowed to fuzzy match.
	// Zero uses the default of 3.
	MinLength int
}

type resolver struct {
	threshold float64
	minLength int
}

// New creates a resolver.
func New(cfg *Config) (*resolver, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	threshold := cfg.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	minLength := cfg.MinLength
	if minLength <= 0 {
		minLength = DefaultMinLength
	}

	return &resolver{
		threshold: threshold,
		minLength: minLength,
	}, nil
}

// Resolve finds the roster entry the name belongs to, or nil when no entry
// clears the bar. Candidates outside the length gate are never considered,
// whatever their raw similarity.
func (r *resolver) Resolve(input *ResolveInput) (*ResolveOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	name := NormalizeName(input.Name)
	if name == "" {
		return &ResolveOutput{}, nil
	}

	type candidate struct {
		entry *models.RosterEntry
		norm  string
	}
	var candidates []candidate
	for _, entry := range input.Roster {
		norm := NormalizeName(entry.PlayerName)
		if norm == "" {
			continue
		}
		if !withinLengthGate(name, norm) {
			continue
		}
		candidates = append(candidates, candidate{entry: entry, norm: norm})
	}

	for _, c := range candidates {
		if c.norm == name {
			log.Debug().Str("name", input.Name).Str("matched", c.entry.PlayerName).
				Msg("exact normalized match")
			return &ResolveOutput{Entry: c.entry, Score: exactScore}, nil
		}
	}

	// Short-string similarity is unreliable; short names are exact-only.
	if len(name) < r.minLength {
		return &ResolveOutput{}, nil
	}

	var best *candidate
	bestScore := 0.0
	for i := range candidates {
		c := &candidates[i]
		pr := float64(fuzzy.PartialRatio(name, c.norm))
		ts := float64(fuzzy.TokenSortRatio(name, c.norm))
		score := pr
		if ts > score {
			score = ts
		}
		if score > bestScore {
			bestScore = score
			best = c
		}
	}

	if best == nil || bestScore < r.threshold {
		log.Debug().Str("name", input.Name).Float64("best_score", bestScore).
			Msg("no roster match above threshold")
		return &ResolveOutput{}, nil
	}

	log.Debug().Str("name", input.Name).Str("matched", best.entry.PlayerName).
		Float64("score", bestScore).Msg("fuzzy roster match")
	return &ResolveOutput{Entry: best.entry, Score: bestScore}, nil
}

func withinLengthGate(ocrName, candidate string) bool {
	diff := len(candidate) - len(ocrName)
	if diff < 0 {
		diff = -diff
	}
	if diff > maxLengthDiff {
		return false
	}
	if len(ocrName) == 0 {
		return false
	}
	ratio := float64(len(candidate)) / float64(len(ocrName))
	return ratio >= minLengthRatio && ratio <= maxLengthRatio
}
