package mission

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/gptfleet/hellsnap/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	counterKey     = "mission:counter"
	statsKeyPrefix = "mission:stats:" // mission:stats:<missionID>
	idsIndexKey    = "mission:ids"
	userKeyPrefix  = "mission:user:" // mission:user:<discordID>

	// DefaultCounterFloor is the value the counter is seeded with when it
	// does not exist yet; the first allocated ID is one above it.
	DefaultCounterFloor = 7100718
)

// ErrMissionNotFound is returned when a mission is not found
var ErrMissionNotFound = errors.New("mission not found")

// Config holds configuration for the Redis mission repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// CounterFloor seeds the mission ID counter. Defaults to
	// DefaultCounterFloor when zero.
	CounterFloor int64
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	floor  int64
}

// NewRedis creates a new Redis-backed mission repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	floor := cfg.CounterFloor
	if floor == 0 {
		floor = DefaultCounterFloor
	}

	return &redisRepository{
		client: cfg.RedisClient,
		floor:  floor,
	}, nil
}

func statsKey(missionID int64) string {
	return fmt.Sprintf("%s%d", statsKeyPrefix, missionID)
}

// NextMissionID allocates a mission ID. The counter is seeded once with the
// floor value, so the first ID ever issued is floor+1. If the counter is
// unreadable the highest saved mission ID is used to recover.
func (r *redisRepository) NextMissionID(ctx context.Context, input *NextMissionIDInput) (*NextMissionIDOutput, error) {
	if err := r.client.SetNX(ctx, counterKey, r.floor, 0).Err(); err != nil {
		return r.nextMissionIDFallback(ctx, err)
	}

	id, err := r.client.Incr(ctx, counterKey).Result()
	if err != nil {
		return r.nextMissionIDFallback(ctx, err)
	}

	return &NextMissionIDOutput{MissionID: id}, nil
}

// nextMissionIDFallback derives an ID from the highest saved mission when
// the counter is unavailable. Uniqueness is best-effort on this path.
func (r *redisRepository) nextMissionIDFallback(ctx context.Context, cause error) (*NextMissionIDOutput, error) {
	log.Warn().Err(cause).Msg("Mission counter unavailable, deriving ID from saved missions")

	maxID := r.floor
	members, err := r.client.ZRevRange(ctx, idsIndexKey, 0, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to recover mission ID: %w", err)
	}
	if len(members) > 0 {
		parsed, parseErr := strconv.ParseInt(members[0], 10, 64)
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse mission ID %q: %w", members[0], parseErr)
		}
		if parsed > maxID {
			maxID = parsed
		}
	}

	id := maxID + 1

	// Push the counter forward so the next allocation resumes normally
	if err := r.client.Set(ctx, counterKey, id, 0).Err(); err != nil {
		log.Warn().Err(err).Int64("mission_id", id).Msg("Failed to restore mission counter")
	}

	return &NextMissionIDOutput{MissionID: id}, nil
}

// SaveMissionStats persists a mission's records to Redis. Records are stored
// as a single document so their order survives round trips.
func (r *redisRepository) SaveMissionStats(ctx context.Context, input *SaveMissionStatsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if input.MissionID <= 0 {
		return errors.New("mission ID must be positive")
	}
	if len(input.Records) == 0 {
		return errors.New("records cannot be empty")
	}

	records := make([]*models.MissionStat, 0, len(input.Records))
	for _, record := range input.Records {
		if record == nil {
			return errors.New("record cannot be nil")
		}
		stored := *record
		stored.MissionID = input.MissionID
		records = append(records, &stored)
	}

	statsJSON, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal mission stats: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, statsKey(input.MissionID), statsJSON, 0)
	pipe.ZAdd(ctx, idsIndexKey, redis.Z{
		Score:  float64(input.MissionID),
		Member: strconv.FormatInt(input.MissionID, 10),
	})
	for _, record := range records {
		if record.DiscordID != "" {
			pipe.SAdd(ctx, userKeyPrefix+record.DiscordID, input.MissionID)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save mission stats: %w", err)
	}
	return nil
}

// GetMissionStats retrieves a mission's records from Redis
func (r *redisRepository) GetMissionStats(ctx context.Context, input *GetMissionStatsInput) (*GetMissionStatsOutput, error) {
	if input == nil || input.MissionID <= 0 {
		return nil, errors.New("input and mission ID cannot be empty")
	}

	statsJSON, err := r.client.Get(ctx, statsKey(input.MissionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrMissionNotFound
		}
		return nil, fmt.Errorf("failed to get mission stats: %w", err)
	}

	var records []*models.MissionStat
	if err := json.Unmarshal([]byte(statsJSON), &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mission stats: %w", err)
	}
	return &GetMissionStatsOutput{Records: records}, nil
}

// CountUserMissions counts saved missions that include the user
func (r *redisRepository) CountUserMissions(ctx context.Context, input *CountUserMissionsInput) (*CountUserMissionsOutput, error) {
	if input == nil || input.DiscordID == "" {
		return nil, errors.New("input and discord ID cannot be empty")
	}

	count, err := r.client.SCard(ctx, userKeyPrefix+input.DiscordID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to count user missions: %w", err)
	}
	return &CountUserMissionsOutput{Count: count}, nil
}
