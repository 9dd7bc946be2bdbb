package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds everything the bot needs from the environment
type Config struct {
	// Discord
	DiscordToken  string
	ApplicationID string
	GuildID       string

	// Redis
	RedisAddr     string
	RedisPassword string

	// Extraction
	TessdataPrefix  string
	OCRParallelism  int
	PlayerCount     int
	ReferenceOffset int

	// Matching
	MatchThreshold int

	// Reconciliation
	InputTimeout time.Duration

	// MissionIDFloor seeds the mission counter
	MissionIDFloor int64
}

// Load reads configuration from a .env file when present, falling back to
// the process environment and defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		DiscordToken:    getEnv("DISCORD_TOKEN", ""),
		ApplicationID:   getEnv("APPLICATION_ID", ""),
		GuildID:         getEnv("GUILD_ID", ""),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		TessdataPrefix:  getEnv("TESSDATA_PREFIX", ""),
		OCRParallelism:  getEnvInt("OCR_PARALLELISM", 2),
		PlayerCount:     getEnvInt("PLAYER_COUNT", 4),
		ReferenceOffset: getEnvInt("REFERENCE_PLAYER_OFFSET", 0),
		MatchThreshold:  getEnvInt("MATCH_THRESHOLD", 80),
		InputTimeout:    time.Duration(getEnvInt("INPUT_TIMEOUT_SECONDS", 60)) * time.Second,
		MissionIDFloor:  int64(getEnvInt("MISSION_ID_FLOOR", 0)),
	}

	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}

	log.Info().
		Str("redis_addr", cfg.RedisAddr).
		Int("player_count", cfg.PlayerCount).
		Int("match_threshold", cfg.MatchThreshold).
		Dur("input_timeout", cfg.InputTimeout).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("Ignoring non-numeric environment value")
		return fallback
	}
	return parsed
}
