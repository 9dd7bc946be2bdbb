package guild

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gptfleet/hellsnap/internal/models"
	"github.com/redis/go-redis/v9"
)

const listingKeyPrefix = "guild:listing:" // guild:listing:<serverID>

// ErrListingNotFound is returned when a guild listing is not found
var ErrListingNotFound = errors.New("guild listing not found")

// Config holds configuration for the Redis guild repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed guild repository
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

// SaveListing persists a guild listing to Redis
func (r *redisRepository) SaveListing(ctx context.Context, input *SaveListingInput) error {
	if input == nil || input.Listing == nil {
		return errors.New("input and listing cannot be nil")
	}
	if input.Listing.DiscordServerID == "" {
		return errors.New("discord server ID cannot be empty")
	}

	listingJSON, err := json.Marshal(input.Listing)
	if err != nil {
		return fmt.Errorf("failed to marshal guild listing: %w", err)
	}

	if err := r.client.Set(ctx, listingKeyPrefix+input.Listing.DiscordServerID, listingJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save guild listing: %w", err)
	}
	return nil
}

// GetListing retrieves a guild listing from Redis
func (r *redisRepository) GetListing(ctx context.Context, input *GetListingInput) (*models.GuildListing, error) {
	if input == nil || input.DiscordServerID == "" {
		return nil, errors.New("input and discord server ID cannot be empty")
	}

	listingJSON, err := r.client.Get(ctx, listingKeyPrefix+input.DiscordServerID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to get guild listing: %w", err)
	}

	var listing models.GuildListing
	if err := json.Unmarshal([]byte(listingJSON), &listing); err != nil {
		return nil, fmt.Errorf("failed to unmarshal guild listing: %w", err)
	}
	return &listing, nil
}
