package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gptfleet/hellsnap/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	entryKeyPrefix   = "roster:entry:"   // roster:entry:<serverID>:<discordID>
	discordKeyPrefix = "roster:discord:" // roster:discord:<discordID> -> entry key
	membersIndexKey  = "roster:members"
)

// ErrUserNotFound is returned when a registration is not found
var ErrUserNotFound = errors.New("registered user not found")

// Config holds configuration for the Redis roster repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed roster repository
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

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func entryKey(serverID, discordID string) string {
	return fmt.Sprintf("%s%s:%s", entryKeyPrefix, serverID, discordID)
}

// UpsertUser persists a registration to Redis. An existing entry for the
// same (server, user) pair keeps its original registration time; only the
// canonical name is rewritten.
func (r *redisRepository) UpsertUser(ctx context.Context, input *UpsertUserInput) error {
	if input == nil || input.Entry == nil {
		return errors.New("input and entry cannot be nil")
	}
	if input.Entry.DiscordID == "" || input.Entry.DiscordServerID == "" {
		return errors.New("discord ID and server ID cannot be empty")
	}

	entry := *input.Entry
	key := entryKey(entry.DiscordServerID, entry.DiscordID)

	// Preserve the original registration time on update
	existingJSON, err := r.client.Get(ctx, key).Result()
	if err == nil {
		var existing models.RosterEntry
		if jsonErr := json.Unmarshal([]byte(existingJSON), &existing); jsonErr == nil {
			entry.RegisteredAt = existing.RegisteredAt
		}
	}
	if entry.RegisteredAt.IsZero() {
		entry.RegisteredAt = time.Now()
	}

	entryJSON, err := json.Marshal(&entry)
	if err != nil {
		return fmt.Errorf("failed to marshal roster entry: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, key, entryJSON, 0)
	pipe.Set(ctx, discordKeyPrefix+entry.DiscordID, key, 0)
	pipe.SAdd(ctx, membersIndexKey, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to upsert roster entry: %w", err)
	}
	return nil
}

// GetUserByDiscordID retrieves a registration by Discord user ID from Redis
func (r *redisRepository) GetUserByDiscordID(ctx context.Context, input *GetUserByDiscordIDInput) (*models.RosterEntry, error) {
	if input == nil || input.DiscordID == "" {
		return nil, errors.New("input and discord ID cannot be empty")
	}

	key, err := r.client.Get(ctx, discordKeyPrefix+input.DiscordID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up roster entry: %w", err)
	}

	entryJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get roster entry: %w", err)
	}

	var entry models.RosterEntry
	if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roster entry: %w", err)
	}
	return &entry, nil
}

// ListUsers retrieves every registration from Redis
func (r *redisRepository) ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error) {
	keys, err := r.client.SMembers(ctx, membersIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get roster index: %w", err)
	}

	if len(keys) == 0 {
		return &ListUsersOutput{Entries: []*models.RosterEntry{}}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make(map[string]*redis.StringCmd, len(keys))
	for _, key := range keys {
		cmds[key] = pipe.Get(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get roster entries: %w", err)
	}

	entries := make([]*models.RosterEntry, 0, len(keys))
	for key, cmd := range cmds {
		entryJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Entry removed between index read and fetch
				continue
			}
			return nil, fmt.Errorf("failed to get roster entry %s: %w", key, err)
		}

		var entry models.RosterEntry
		if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal roster entry %s: %w", key, err)
		}
		entries = append(entries, &entry)
	}

	return &ListUsersOutput{Entries: entries}, nil
}
