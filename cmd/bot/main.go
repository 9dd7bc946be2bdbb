package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/gptfleet/hellsnap/internal/common/clock"
	"github.com/gptfleet/hellsnap/internal/common/uuid"
	"github.com/gptfleet/hellsnap/internal/config"
	"github.com/gptfleet/hellsnap/internal/handlers/discord"
	"github.com/gptfleet/hellsnap/internal/matching"
	"github.com/gptfleet/hellsnap/internal/ocr"
	"github.com/gptfleet/hellsnap/internal/regions"
	guildRepo "github.com/gptfleet/hellsnap/internal/repositories/guild"
	missionRepo "github.com/gptfleet/hellsnap/internal/repositories/mission"
	rosterRepo "github.com/gptfleet/hellsnap/internal/repositories/roster"
	"github.com/gptfleet/hellsnap/internal/services/submission"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if cfg.TessdataPrefix != "" {
		os.Setenv("TESSDATA_PREFIX", cfg.TessdataPrefix)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	// Initialize repositories
	roster, err := rosterRepo.NewRedis(&rosterRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create roster repository")
	}

	missions, err := missionRepo.NewRedis(&missionRepo.Config{
		RedisClient:  redisClient,
		CounterFloor: cfg.MissionIDFloor,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create mission repository")
	}

	guilds, err := guildRepo.NewRedis(&guildRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create guild repository")
	}

	// Initialize the extraction pipeline
	mapper, err := regions.New(&regions.Config{
		PlayerCount:     cfg.PlayerCount,
		ReferenceOffset: cfg.ReferenceOffset,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create region mapper")
	}

	extractor, err := ocr.New(&ocr.Config{
		Reader:      ocr.NewTesseractReader(),
		Parallelism: cfg.OCRParallelism,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create extractor")
	}

	resolver, err := matching.New(&matching.Config{
		Threshold: float64(cfg.MatchThreshold),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create resolver")
	}

	// Initialize the submission service
	submissionSvc, err := submission.New(&submission.Config{
		RegionMapper:  mapper,
		Extractor:     extractor,
		Resolver:      resolver,
		RosterRepo:    roster,
		MissionRepo:   missions,
		GuildRepo:     guilds,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		InputTimeout:  cfg.InputTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create submission service")
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:             cfg.DiscordToken,
		ApplicationID:     cfg.ApplicationID,
		GuildID:           cfg.GuildID,
		SubmissionService: submissionSvc,
		GuildRepo:         guilds,
		ReplyTimeout:      cfg.InputTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Discord bot")
	}

	if err := bot.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start Discord bot")
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		log.Error().Err(err).Msg("Error stopping bot")
	}

	log.Info().Msg("Bot has been shut down")
}
