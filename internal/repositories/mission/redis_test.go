package mission

import (
	"context"
	"strconv"
	"sync"
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

func (s *RedisRepositoryTestSuite) TestNextMissionIDStartsAboveFloor() {
	out, err := s.repo.NextMissionID(context.Background(), &NextMissionIDInput{})
	s.Require().NoError(err)
	s.Equal(int64(DefaultCounterFloor+1), out.MissionID)
}

func (s *RedisRepositoryTestSuite) TestNextMissionIDMonotonic() {
	var ids []int64
	for i := 0; i < 5; i++ {
		out, err := s.repo.NextMissionID(context.Background(), &NextMissionIDInput{})
		s.Require().NoError(err)
		ids = append(ids, out.MissionID)
	}
	for i := 1; i < len(ids); i++ {
		s.Equal(ids[i-1]+1, ids[i])
	}
}

func (s *RedisRepositoryTestSuite) TestNextMissionIDConcurrentUnique() {
	const workers = 20

	var mu sync.Mutex
	seen := make(map[int64]bool)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := s.repo.NextMissionID(context.Background(), &NextMissionIDInput{})
			if err != nil {
				return
			}
			mu.Lock()
			seen[out.MissionID] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	s.Len(seen, workers)
	for id := range seen {
		s.Greater(id, int64(DefaultCounterFloor))
	}
}

func (s *RedisRepositoryTestSuite) TestNextMissionIDRecoversFromSavedMissions() {
	// Saved missions exist but the counter was lost.
	err := s.repo.SaveMissionStats(context.Background(), &SaveMissionStatsInput{
		MissionID: 7100725,
		Records:   []*models.MissionStat{{PlayerStatRecord: models.PlayerStatRecord{PlayerName: "Hero"}}},
	})
	s.Require().NoError(err)

	// Corrupt the counter so SetNX and Incr fail against a wrong type.
	s.Require().NoError(s.client.Del(context.Background(), counterKey).Err())
	s.Require().NoError(s.client.SAdd(context.Background(), counterKey, "x").Err())

	out, err := s.repo.NextMissionID(context.Background(), &NextMissionIDInput{})
	s.Require().NoError(err)
	s.Equal(int64(7100726), out.MissionID)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetMissionStats() {
	records := []*models.MissionStat{
		{
			PlayerStatRecord: models.PlayerStatRecord{
				PlayerName: "PlayerOne",
				DiscordID:  "111",
				Kills:      212,
				Accuracy:   "61.0%",
			},
		},
		{
			PlayerStatRecord: models.PlayerStatRecord{
				PlayerName: "PlayerTwo",
				DiscordID:  "222",
				Kills:      180,
				Accuracy:   "55.5%",
			},
		},
	}

	err := s.repo.SaveMissionStats(context.Background(), &SaveMissionStatsInput{
		MissionID: 7100719,
		Records:   records,
	})
	s.Require().NoError(err)

	out, err := s.repo.GetMissionStats(context.Background(), &GetMissionStatsInput{
		MissionID: 7100719,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 2)

	// Order is preserved as submitted.
	s.Equal("PlayerOne", out.Records[0].PlayerName)
	s.Equal("PlayerTwo", out.Records[1].PlayerName)
	s.Equal(int64(7100719), out.Records[0].MissionID)
	s.Equal(212, out.Records[0].Kills)
	s.Equal("61.0%", out.Records[0].Accuracy)
}

func (s *RedisRepositoryTestSuite) TestGetMissionStatsNotFound() {
	_, err := s.repo.GetMissionStats(context.Background(), &GetMissionStatsInput{
		MissionID: 7999999,
	})
	s.ErrorIs(err, ErrMissionNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveMissionStatsValidation() {
	err := s.repo.SaveMissionStats(context.Background(), &SaveMissionStatsInput{
		MissionID: 0,
		Records:   []*models.MissionStat{{}},
	})
	s.Error(err)

	err = s.repo.SaveMissionStats(context.Background(), &SaveMissionStatsInput{
		MissionID: 7100719,
		Records:   nil,
	})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestCountUserMissions() {
	for i, missionID := range []int64{7100719, 7100720, 7100721} {
		records := []*models.MissionStat{
			{PlayerStatRecord: models.PlayerStatRecord{PlayerName: "Regular", DiscordID: "111"}},
			{PlayerStatRecord: models.PlayerStatRecord{PlayerName: "Guest" + strconv.Itoa(i)}},
		}
		if i < 2 {
			records = append(records, &models.MissionStat{
				PlayerStatRecord: models.PlayerStatRecord{PlayerName: "Occasional", DiscordID: "222"},
			})
		}
		err := s.repo.SaveMissionStats(context.Background(), &SaveMissionStatsInput{
			MissionID: missionID,
			Records:   records,
		})
		s.Require().NoError(err)
	}

	regular, err := s.repo.CountUserMissions(context.Background(), &CountUserMissionsInput{DiscordID: "111"})
	s.Require().NoError(err)
	s.Equal(int64(3), regular.Count)

	occasional, err := s.repo.CountUserMissions(context.Background(), &CountUserMissionsInput{DiscordID: "222"})
	s.Require().NoError(err)
	s.Equal(int64(2), occasional.Count)

	unknown, err := s.repo.CountUserMissions(context.Background(), &CountUserMissionsInput{DiscordID: "999"})
	s.Require().NoError(err)
	s.Equal(int64(0), unknown.Count)
}

func (s *RedisRepositoryTestSuite) TestSaveMissionStatsIdempotentForUserIndex() {
	records := []*models.MissionStat{
		{PlayerStatRecord: models.PlayerStatRecord{PlayerName: "Hero", DiscordID: "111"}},
	}
	for i := 0; i < 2; i++ {
		err := s.repo.SaveMissionStats(context.Background(), &SaveMissionStatsInput{
			MissionID: 7100719,
			Records:   records,
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.CountUserMissions(context.Background(), &CountUserMissionsInput{DiscordID: "111"})
	s.Require().NoError(err)
	s.Equal(int64(1), out.Count)
}
