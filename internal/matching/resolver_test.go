package matching

import (
	"testing"

	"github.com/gptfleet/hellsnap/internal/models"
	"github.com/stretchr/testify/suite"
)

type ResolverTestSuite struct {
	suite.Suite
	resolver Resolver
	roster   []*models.RosterEntry
}

func (s *ResolverTestSuite) SetupTest() {
	resolver, err := New(&Config{})
	s.Require().NoError(err)
	s.resolver = resolver

	s.roster = []*models.RosterEntry{
		{DiscordID: "100", DiscordServerID: "900", PlayerName: "HeroOfTheFederation"},
		{DiscordID: "101", DiscordServerID: "900", PlayerName: "BugStomper"},
		{DiscordID: "102", DiscordServerID: "901", PlayerName: "Al"},
		{DiscordID: "103", DiscordServerID: "901", PlayerName: "DiveLeader"},
	}
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) resolve(name string) *ResolveOutput {
	out, err := s.resolver.Resolve(&ResolveInput{Name: name, Roster: s.roster})
	s.Require().NoError(err)
	return out
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<3>xXHero99xX_", "xxhero99xx"},
		{"Plain", "plain"},
		{"__123Diver456__", "diver"},
		{"<clan tag>Name", "name"},
		{"A-B_C", "abc"},
		{"<everything>", ""},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func (s *ResolverTestSuite) TestNilConfigAndInput() {
	_, err := New(nil)
	s.Error(err)

	_, err = s.resolver.Resolve(nil)
	s.Error(err)
}

func (s *ResolverTestSuite) TestExactNormalizedMatch() {
	out := s.resolve("hero_of_the_federation")
	s.Require().NotNil(out.Entry)
	s.Equal("100", out.Entry.DiscordID)
	s.Equal(100.0, out.Score)
}

func (s *ResolverTestSuite) TestFuzzyMatchAboveThreshold() {
	// One dropped character still resolves.
	out := s.resolve("BugStompe")
	s.Require().NotNil(out.Entry)
	s.Equal("101", out.Entry.DiscordID)
	s.GreaterOrEqual(out.Score, float64(DefaultThreshold))
}

func (s *ResolverTestSuite) TestNoMatchIsUnregistered() {
	out := s.resolve("CompletelyDifferent")
	s.Nil(out.Entry)
}

func (s *ResolverTestSuite) TestEmptyNameIsUnregistered() {
	out := s.resolve("")
	s.Nil(out.Entry)

	out = s.resolve("<3>__9")
	s.Nil(out.Entry)
}

func (s *ResolverTestSuite) TestLengthGateRejectsLongCandidates() {
	// "Hero" is similar to the prefix of HeroOfTheFederation, but the
	// candidate is far longer than the OCR name.
	out := s.resolve("Hero")
	s.Nil(out.Entry)
}

func (s *ResolverTestSuite) TestLengthRatioGate() {
	resolver, err := New(&Config{Threshold: 50})
	s.Require().NoError(err)

	// 12 vs 9 chars is within +-3 but outside the 1.25 ratio cap.
	roster := []*models.RosterEntry{{DiscordID: "1", PlayerName: "abcdefghijkl"}}
	out, err := resolver.Resolve(&ResolveInput{Name: "abcdefghi", Roster: roster})
	s.Require().NoError(err)
	s.Nil(out.Entry)
}

func (s *ResolverTestSuite) TestShortNameExactOnly() {
	out := s.resolve("Al")
	s.Require().NotNil(out.Entry)
	s.Equal("102", out.Entry.DiscordID)

	// A near miss on a short name must not fuzzy match.
	out = s.resolve("Ax")
	s.Nil(out.Entry)
}

func (s *ResolverTestSuite) TestConfigurableThreshold() {
	// A transposed pair of letters is not a substring of the roster name,
	// so it scores below a perfect match but above the default threshold.
	out := s.resolve("BugStompre")
	s.Require().NotNil(out.Entry)
	s.Equal("101", out.Entry.DiscordID)

	strict, err := New(&Config{Threshold: 99})
	s.Require().NoError(err)

	strictOut, err := strict.Resolve(&ResolveInput{Name: "BugStompre", Roster: s.roster})
	s.Require().NoError(err)
	s.Nil(strictOut.Entry)
}
