package regions

import (
	"errors"
	"fmt"

	"github.com/gptfleet/hellsnap/internal/models"
	"github.com/rs/zerolog/log"
)

const (
	// defaultTolerance is how far (in pixels) an image dimension may be from
	// a profile's calibrated dimension and still count as that profile.
	defaultTolerance = 5

	// DefaultPlayerCount is the number of co-op slots on the scoreboard.
	DefaultPlayerCount = 4
)

// Config holds configuration for the region mapper.
type Config struct {
	// PlayerCount is how many player columns to map. Defaults to 4.
	PlayerCount int

	// ReferenceOffset overrides the reference profile's player column
	// offset. Zero keeps the calibrated value.
	ReferenceOffset int

	// Tolerance overrides the profile-match pixel tolerance. Zero keeps
	// the default of 5.
	Tolerance int
}

// Mapper maps image pixel dimensions to labeled field bounding boxes.
type Mapper struct {
	profiles    []Profile
	playerCount int
	tolerance   int
}

// New creates a region mapper over the fixed profile set.
func New(cfg *Config) (*Mapper, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	playerCount := cfg.PlayerCount
	if playerCount <= 0 {
		playerCount = DefaultPlayerCount
	}

	tolerance := cfg.Tolerance
	if tolerance <= 0 {
		tolerance = defaultTolerance
	}

	profiles := make([]Profile, len(knownProfiles))
	copy(profiles, knownProfiles)
	if cfg.ReferenceOffset > 0 {
		for i := range profiles {
			if profiles[i].Name == referenceProfileName {
				profiles[i].PlayerOffset = cfg.ReferenceOffset
			}
		}
	}

	return &Mapper{
		profiles:    profiles,
		playerCount: playerCount,
		tolerance:   tolerance,
	}, nil
}

// Label builds the region key for a player's field, e.g. "P1 Name".
func Label(playerIndex int, field models.Field) string {
	return fmt.Sprintf("P%d %s", playerIndex+1, field)
}

// MapRegions produces the label-to-box mapping for an image of the given
// pixel dimensions. An unrecognized resolution falls back to the reference
// profile scaled to the actual size; this never fails.
func (m *Mapper) MapRegions(width, height int) map[string]Box {
	profile, scaleX, scaleY := m.selectProfile(width, height)

	regions := make(map[string]Box, m.playerCount*len(profile.Boxes))
	for playerIndex := 0; playerIndex < m.playerCount; playerIndex++ {
		shift := playerIndex * profile.PlayerOffset
		for field, base := range profile.Boxes {
			// Player columns shift horizontally only; rows never move.
			box := Box{
				Left:   base.Left + shift,
				Top:    base.Top,
				Right:  base.Right + shift,
				Bottom: base.Bottom,
			}
			box = clampBox(box)
			box = Box{
				Left:   int(float64(box.Left) * scaleX),
				Top:    int(float64(box.Top) * scaleY),
				Right:  int(float64(box.Right) * scaleX),
				Bottom: int(float64(box.Bottom) * scaleY),
			}
			regions[Label(playerIndex, field)] = box
		}
	}
	return regions
}

// selectProfile picks the profile within tolerance of the given dimensions,
// or the reference profile plus scale factors when nothing matches.
func (m *Mapper) selectProfile(width, height int) (Profile, float64, float64) {
	for _, p := range m.profiles {
		if closeEnough(width, p.Width, m.tolerance) && closeEnough(height, p.Height, m.tolerance) {
			log.Debug().Str("profile", p.Name).Int("width", width).Int("height", height).
				Msg("matched resolution profile")
			return p, 1.0, 1.0
		}
	}

	var ref Profile
	for _, p := range m.profiles {
		if p.Name == referenceProfileName {
			ref = p
			break
		}
	}
	scaleX := float64(width) / float64(ref.Width)
	scaleY := float64(height) / float64(ref.Height)
	log.Warn().Int("width", width).Int("height", height).
		Float64("scale_x", scaleX).Float64("scale_y", scaleY).
		Msg("unrecognized resolution, scaling from reference profile")
	return ref, scaleX, scaleY
}

func closeEnough(actual, target, tolerance int) bool {
	diff := actual - target
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}

func clampBox(b Box) Box {
	if b.Left < 0 {
		b.Left = 0
	}
	if b.Top < 0 {
		b.Top = 0
	}
	if b.Right < 0 {
		b.Right = 0
	}
	if b.Bottom < 0 {
		b.Bottom = 0
	}
	return b
}
