package guild

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gptfleet/hellsnap/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetListing() {
	listing := &models.GuildListing{
		DiscordServerID:  "900",
		Name:             "Super Earth Veterans",
		MonitorChannelID: "555",
	}

	err := s.repo.SaveListing(context.Background(), &SaveListingInput{Listing: listing})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetListing(context.Background(), &GetListingInput{
		DiscordServerID: "900",
	})
	s.Require().NoError(err)
	s.Equal("Super Earth Veterans", retrieved.Name)
	s.Equal("555", retrieved.MonitorChannelID)
}

func (s *RedisRepositoryTestSuite) TestGetListingNotFound() {
	_, err := s.repo.GetListing(context.Background(), &GetListingInput{
		DiscordServerID: "missing",
	})
	s.ErrorIs(err, ErrListingNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveListingOverwrites() {
	first := &models.GuildListing{DiscordServerID: "900", Name: "Old", MonitorChannelID: "1"}
	err := s.repo.SaveListing(context.Background(), &SaveListingInput{Listing: first})
	s.Require().NoError(err)

	second := &models.GuildListing{DiscordServerID: "900", Name: "New", MonitorChannelID: "2"}
	err = s.repo.SaveListing(context.Background(), &SaveListingInput{Listing: second})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetListing(context.Background(), &GetListingInput{
		DiscordServerID: "900",
	})
	s.Require().NoError(err)
	s.Equal("New", retrieved.Name)
	s.Equal("2", retrieved.MonitorChannelID)
}
