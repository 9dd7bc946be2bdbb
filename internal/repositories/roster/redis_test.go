package roster

import (
	"context"
	"testing"
	"time"

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

func (s *RedisRepositoryTestSuite) TestUpsertAndGetUser() {
	entry := &models.RosterEntry{
		DiscordID:       "12345",
		DiscordServerID: "900",
		PlayerName:      "HeroOfTheFederation",
	}

	err := s.repo.UpsertUser(context.Background(), &UpsertUserInput{Entry: entry})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetUserByDiscordID(context.Background(), &GetUserByDiscordIDInput{
		DiscordID: "12345",
	})
	s.Require().NoError(err)
	s.Equal("HeroOfTheFederation", retrieved.PlayerName)
	s.Equal("900", retrieved.DiscordServerID)
	s.False(retrieved.RegisteredAt.IsZero())
}

func (s *RedisRepositoryTestSuite) TestGetUserNotFound() {
	_, err := s.repo.GetUserByDiscordID(context.Background(), &GetUserByDiscordIDInput{
		DiscordID: "missing",
	})
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *RedisRepositoryTestSuite) TestUpsertUpdatesName() {
	first := &models.RosterEntry{
		DiscordID:       "12345",
		DiscordServerID: "900",
		PlayerName:      "OldName",
		RegisteredAt:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	err := s.repo.UpsertUser(context.Background(), &UpsertUserInput{Entry: first})
	s.Require().NoError(err)

	second := &models.RosterEntry{
		DiscordID:       "12345",
		DiscordServerID: "900",
		PlayerName:      "NewName",
	}
	err = s.repo.UpsertUser(context.Background(), &UpsertUserInput{Entry: second})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetUserByDiscordID(context.Background(), &GetUserByDiscordIDInput{
		DiscordID: "12345",
	})
	s.Require().NoError(err)
	s.Equal("NewName", retrieved.PlayerName)
	// Re-registration must not reset the original registration time.
	s.Equal(first.RegisteredAt, retrieved.RegisteredAt)

	// And it must not create a second roster entry.
	list, err := s.repo.ListUsers(context.Background(), &ListUsersInput{})
	s.Require().NoError(err)
	s.Len(list.Entries, 1)
}

func (s *RedisRepositoryTestSuite) TestListUsers() {
	entries := []*models.RosterEntry{
		{DiscordID: "1", DiscordServerID: "900", PlayerName: "PlayerOne"},
		{DiscordID: "2", DiscordServerID: "900", PlayerName: "PlayerTwo"},
		{DiscordID: "3", DiscordServerID: "901", PlayerName: "PlayerThree"},
	}
	for _, e := range entries {
		err := s.repo.UpsertUser(context.Background(), &UpsertUserInput{Entry: e})
		s.Require().NoError(err)
	}

	list, err := s.repo.ListUsers(context.Background(), &ListUsersInput{})
	s.Require().NoError(err)
	s.Len(list.Entries, 3)

	names := make(map[string]bool)
	for _, e := range list.Entries {
		names[e.PlayerName] = true
	}
	s.True(names["PlayerOne"])
	s.True(names["PlayerTwo"])
	s.True(names["PlayerThree"])
}

func (s *RedisRepositoryTestSuite) TestListUsersEmpty() {
	list, err := s.repo.ListUsers(context.Background(), &ListUsersInput{})
	s.Require().NoError(err)
	s.Empty(list.Entries)
}
