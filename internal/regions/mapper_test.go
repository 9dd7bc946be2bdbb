package regions

import (
	"testing"

	"github.com/gptfleet/hellsnap/internal/models"
	"github.com/stretchr/testify/suite"
)

type MapperTestSuite struct {
	suite.Suite
	mapper *Mapper
}

func (s *MapperTestSuite) SetupTest() {
	mapper, err := New(&Config{})
	s.Require().NoError(err)
	s.mapper = mapper
}

func TestMapperTestSuite(t *testing.T) {
	suite.Run(t, new(MapperTestSuite))
}

func (s *MapperTestSuite) TestNilConfig() {
	_, err := New(nil)
	s.Error(err)
}

func (s *MapperTestSuite) TestExactProfileMatch() {
	regions := s.mapper.MapRegions(1920, 1080)

	s.Equal(Box{130, 200, 360, 230}, regions["P1 Name"])
	// Second player column shifts right by the 460px offset.
	s.Equal(Box{130 + 460, 200, 360 + 460, 230}, regions["P2 Name"])
	s.Equal(Box{340 + 3*460, 338, 450 + 3*460, 375}, regions["P4 Kills"])
}

func (s *MapperTestSuite) TestWithinTolerance() {
	// 1918x1083 is within 5px of 1920x1080 and must select it unscaled.
	regions := s.mapper.MapRegions(1918, 1083)
	s.Equal(Box{130, 200, 360, 230}, regions["P1 Name"])
}

func (s *MapperTestSuite) TestSmallLayoutProfile() {
	regions := s.mapper.MapRegions(1280, 800)
	s.Equal(Box{87, 133, 262, 152}, regions["P1 Name"])
	s.Equal(Box{87 + 305, 133, 262 + 305, 152}, regions["P2 Name"])
}

func (s *MapperTestSuite) TestUnknownResolutionScalesFromReference() {
	regions := s.mapper.MapRegions(1600, 900)

	scaleX := 1600.0 / 1920.0
	scaleY := 900.0 / 1080.0
	want := Box{
		Left:   int(130 * scaleX),
		Top:    int(200 * scaleY),
		Right:  int(360 * scaleX),
		Bottom: int(230 * scaleY),
	}
	s.Equal(want, regions["P1 Name"])
}

func (s *MapperTestSuite) TestAllBoxesNonNegative() {
	shapes := [][2]int{
		{1920, 1080}, {1280, 800}, {1365, 768}, {1835, 768},
		{1600, 900}, {640, 480}, {3840, 2160},
	}
	for _, shape := range shapes {
		regions := s.mapper.MapRegions(shape[0], shape[1])
		for label, box := range regions {
			s.GreaterOrEqual(box.Left, 0, "%s at %dx%d", label, shape[0], shape[1])
			s.GreaterOrEqual(box.Top, 0, "%s at %dx%d", label, shape[0], shape[1])
			s.GreaterOrEqual(box.Right, 0, "%s at %dx%d", label, shape[0], shape[1])
			s.GreaterOrEqual(box.Bottom, 0, "%s at %dx%d", label, shape[0], shape[1])
		}
	}
}

func (s *MapperTestSuite) TestEveryPlayerHasEveryScannedField() {
	regions := s.mapper.MapRegions(1920, 1080)
	for i := 0; i < DefaultPlayerCount; i++ {
		for _, field := range models.ScannedFields {
			_, ok := regions[Label(i, field)]
			s.True(ok, "missing %s", Label(i, field))
		}
	}
}

func (s *MapperTestSuite) TestReferenceOffsetOverride() {
	mapper, err := New(&Config{ReferenceOffset: 500})
	s.Require().NoError(err)

	regions := mapper.MapRegions(1920, 1080)
	s.Equal(Box{130 + 500, 200, 360 + 500, 230}, regions["P2 Name"])
}
