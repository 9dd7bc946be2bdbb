package discord

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	guildRepo "github.com/gptfleet/hellsnap/internal/repositories/guild"
	"github.com/gptfleet/hellsnap/internal/services/submission"
)

// componentPrefix marks the custom IDs belonging to the stats flow
const componentPrefix = "stats:"

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config

	waiterMu sync.Mutex
	waiters  map[string]chan string
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Submission service
	SubmissionService submission.Service

	// Guild repository, for monitor channel routing
	GuildRepo guildRepo.Repository

	// ReplyTimeout bounds the wait for one free-text operator reply.
	// Defaults to 60 seconds.
	ReplyTimeout time.Duration
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.SubmissionService == nil {
		return nil, errors.New("submission service cannot be nil")
	}

	if cfg.GuildRepo == nil {
		return nil, errors.New("guild repository cannot be nil")
	}

	if cfg.ReplyTimeout <= 0 {
		cfg.ReplyTimeout = 60 * time.Second
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	// Free-text replies arrive as plain messages
	session.Identify.Intents |= discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config:     cfg,
		waiters:    make(map[string]chan string),
	}

	session.AddHandler(bot.handleInteraction)
	session.AddHandler(bot.handleMessageCreate)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	statsCmd := NewStatsCommand(&StatsCommandConfig{
		SubmissionService: b.config.SubmissionService,
		GuildRepo:         b.config.GuildRepo,
		Replies:           b,
		ReplyTimeout:      b.config.ReplyTimeout,
	})
	if err := b.RegisterCommand(statsCmd); err != nil {
		return fmt.Errorf("failed to register stats command: %w", err)
	}

	log.Info().Msg("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Warn().Err(err).Str("command", cmdName).Msg("Failed to delete command")
		} else {
			log.Info().Str("command", cmdName).Msg("Deleted command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	// A guild ID registers the command for that guild only, otherwise
	// it is registered globally
	if b.config.GuildID != "" {
		log.Info().Str("command", cmd.GetName()).Str("guild_id", b.config.GuildID).Msg("Registering guild command")
	} else {
		log.Info().Str("command", cmd.GetName()).Msg("Registering global command")
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID

	return nil
}

// handleInteraction routes Discord interactions to their handlers
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Error().Err(err).Str("command", i.ApplicationCommandData().Name).Msg("Error handling command")
			}
		}
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		if !strings.HasPrefix(customID, componentPrefix) {
			return
		}
		if err := b.routeComponent(s, i, customID); err != nil {
			log.Error().Err(err).Str("custom_id", customID).Msg("Error handling component interaction")
		}
	case discordgo.InteractionModalSubmit:
		customID := i.ModalSubmitData().CustomID
		if !strings.HasPrefix(customID, componentPrefix) {
			return
		}
		if err := b.routeModal(s, i, customID); err != nil {
			log.Error().Err(err).Str("custom_id", customID).Msg("Error handling modal submission")
		}
	}
}

func (b *Bot) routeComponent(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) error {
	for _, cmd := range b.commands {
		if h, ok := cmd.(ComponentHandler); ok {
			return h.HandleComponent(s, i, customID)
		}
	}
	return fmt.Errorf("no handler for component %s", customID)
}

func (b *Bot) routeModal(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) error {
	for _, cmd := range b.commands {
		if h, ok := cmd.(ModalHandler); ok {
			return h.HandleModal(s, i, customID)
		}
	}
	return fmt.Errorf("no handler for modal %s", customID)
}

// handleMessageCreate delivers plain messages to any handler waiting on a
// free-text reply from that user in that channel.
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	key := waiterKey(m.ChannelID, m.Author.ID)

	b.waiterMu.Lock()
	ch, ok := b.waiters[key]
	if ok {
		delete(b.waiters, key)
	}
	b.waiterMu.Unlock()

	if ok {
		ch <- m.Content
	}
}

// WaitForReply blocks until the user sends a message in the channel or the
// timeout elapses. A newer wait on the same channel and user supersedes the
// older one, which returns ErrReplySuperseded immediately.
func (b *Bot) WaitForReply(channelID, userID string, timeout time.Duration) (string, error) {
	key := waiterKey(channelID, userID)
	ch := make(chan string, 1)

	b.waiterMu.Lock()
	if old, ok := b.waiters[key]; ok {
		close(old)
	}
	b.waiters[key] = ch
	b.waiterMu.Unlock()

	select {
	case content, ok := <-ch:
		if !ok {
			return "", ErrReplySuperseded
		}
		return content, nil
	case <-time.After(timeout):
		b.waiterMu.Lock()
		if b.waiters[key] == ch {
			delete(b.waiters, key)
		}
		b.waiterMu.Unlock()
		return "", ErrReplyTimeout
	}
}

// ErrReplyTimeout is returned when no reply arrives within the wait window
var ErrReplyTimeout = errors.New("timed out waiting for a reply")

// ErrReplySuperseded is returned when a newer wait replaces this one for the
// same channel and user.
var ErrReplySuperseded = errors.New("superseded by a newer reply wait")

func waiterKey(channelID, userID string) string {
	return channelID + ":" + userID
}
