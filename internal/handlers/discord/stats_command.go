package discord

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/gptfleet/hellsnap/internal/models"
	guildRepo "github.com/gptfleet/hellsnap/internal/repositories/guild"
	missionRepo "github.com/gptfleet/hellsnap/internal/repositories/mission"
	"github.com/gptfleet/hellsnap/internal/services/submission"
)

// ReplyWaiter blocks until a user sends a plain message in a channel
type ReplyWaiter interface {
	WaitForReply(channelID, userID string, timeout time.Duration) (string, error)
}

// StatsCommandConfig holds dependencies for the stats command
type StatsCommandConfig struct {
	SubmissionService submission.Service
	GuildRepo         guildRepo.Repository
	Replies           ReplyWaiter
	ReplyTimeout      time.Duration
}

// StatsCommand handles the /mission command: screenshot submission,
// reconciliation and roster registration.
type StatsCommand struct {
	BaseCommand
	service      submission.Service
	guildRepo    guildRepo.Repository
	replies      ReplyWaiter
	replyTimeout time.Duration
	httpClient   *http.Client
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(cfg *StatsCommandConfig) *StatsCommand {
	return &StatsCommand{
		BaseCommand: BaseCommand{
			Name:        "mission",
			Description: "Submit and track mission stats",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "submit",
					Description: "Submit an end-of-mission scoreboard screenshot",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionAttachment,
							Name:        "screenshot",
							Description: "The scoreboard screenshot",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "register",
					Description: "Register your in-game name",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Your exact in-game name",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "profile",
					Description: "Show your registration and mission count",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "lookup",
					Description: "Look up a committed mission by ID",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "mission_id",
							Description: "The 7-digit mission ID",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "setup",
					Description: "Configure the clan listing for this server (admin)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "clan_name",
							Description: "The clan name shown on committed records",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionChannel,
							Name:        "monitor_channel",
							Description: "Channel committed missions are mirrored into",
							Required:    false,
						},
					},
				},
			},
		},
		service:      cfg.SubmissionService,
		guildRepo:    cfg.GuildRepo,
		replies:      cfg.Replies,
		replyTimeout: cfg.ReplyTimeout,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Handle processes a Discord interaction for the mission command
func (c *StatsCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	switch data.Options[0].Name {
	case "submit":
		return c.handleSubmit(s, i)
	case "register":
		return c.handleRegister(s, i)
	case "profile":
		return c.handleProfile(s, i)
	case "lookup":
		return c.handleLookup(s, i)
	case "setup":
		return c.handleSetup(s, i)
	default:
		return errors.New("unknown subcommand")
	}
}

// handleSubmit runs the extraction pipeline and opens the review flow
func (c *StatsCommand) handleSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()

	attachmentID, ok := data.Options[0].Options[0].Value.(string)
	if !ok {
		return RespondWithError(s, i, "No screenshot attached.")
	}
	attachment, ok := data.Resolved.Attachments[attachmentID]
	if !ok {
		return RespondWithError(s, i, "No screenshot attached.")
	}
	if !strings.HasPrefix(attachment.ContentType, "image/") {
		return RespondWithError(s, i, "That attachment is not an image.")
	}

	// Extraction can take several seconds, acknowledge first
	if err := RespondDeferred(s, i); err != nil {
		return err
	}

	img, err := c.downloadImage(attachment.URL)
	if err != nil {
		log.Error().Err(err).Str("url", attachment.URL).Msg("Failed to fetch screenshot")
		return FollowUpWithMessage(s, i, "Could not read that screenshot, try uploading it again.")
	}

	out, err := c.service.BeginSubmission(context.Background(), &submission.BeginSubmissionInput{
		Image:                img,
		DiscordServerID:      i.GuildID,
		SubmittedBy:          memberName(i),
		SubmittedByDiscordID: i.Member.User.ID,
	})
	if err != nil {
		if errors.Is(err, submission.ErrNotEnoughPlayers) {
			return FollowUpWithMessage(s, i, "Could not read at least two player names from that screenshot. Make sure the full scoreboard is visible.")
		}
		log.Error().Err(err).Msg("Failed to begin submission")
		return FollowUpWithMessage(s, i, "Something went wrong extracting that screenshot.")
	}

	embed := renderRecordsEmbed(out.Records, out.ResolvedCount)
	_, err = FollowUpWithEmbed(s, i, embed, reviewComponents(out.SessionID))
	return err
}

// handleRegister registers the invoking user's in-game name
func (c *StatsCommand) handleRegister(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()

	name, ok := data.Options[0].Options[0].Value.(string)
	if !ok || strings.TrimSpace(name) == "" {
		return RespondWithError(s, i, "A name is required.")
	}

	err := c.service.RegisterSelf(context.Background(), &submission.RegisterSelfInput{
		DiscordID:       i.Member.User.ID,
		DiscordServerID: i.GuildID,
		PlayerName:      strings.TrimSpace(name),
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to register user")
		return RespondWithError(s, i, "Registration failed, try again.")
	}

	return RespondWithEphemeralMessage(s, i,
		fmt.Sprintf("Registered as **%s**. Your stats will be tracked from now on.", strings.TrimSpace(name)))
}

// handleProfile shows the invoking user's registration and mission count
func (c *StatsCommand) handleProfile(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	out, err := c.service.GetUserProfile(context.Background(), &submission.GetUserProfileInput{
		DiscordID: i.Member.User.ID,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to load profile")
		return RespondWithError(s, i, "Could not load your profile, try again.")
	}

	if out.Entry == nil {
		return RespondWithEphemeralMessage(s, i,
			"You are not registered yet. Use `/mission register` to set your in-game name.")
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf(
		"Registered as **%s** with **%d** recorded mission(s).",
		out.Entry.PlayerName, out.MissionCount))
}

// handleLookup retrieves a committed mission's records by ID
func (c *StatsCommand) handleLookup(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()

	rawID, ok := data.Options[0].Options[0].Value.(float64)
	if !ok {
		return RespondWithError(s, i, "A mission ID is required.")
	}
	missionID := int64(rawID)

	out, err := c.service.LookupMission(context.Background(), &submission.LookupMissionInput{
		MissionID: missionID,
	})
	if err != nil {
		if errors.Is(err, missionRepo.ErrMissionNotFound) {
			return RespondWithEphemeralMessage(s, i,
				fmt.Sprintf("No mission **%s** on record.", models.FormatMissionID(missionID)))
		}
		log.Error().Err(err).Int64("mission_id", missionID).Msg("Failed to look up mission")
		return RespondWithError(s, i, "Could not load that mission, try again.")
	}

	submittedBy := ""
	if len(out.Records) > 0 {
		submittedBy = out.Records[0].SubmittedBy
	}
	embed := renderCommittedEmbed(out.MissionIDDisplay, submittedBy, out.Records)
	return RespondWithEmbed(s, i, embed)
}

// handleSetup saves the guild listing used for clan naming and the monitor
// mirror. Restricted to members who can manage the server.
func (c *StatsCommand) handleSetup(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Member == nil || i.Member.Permissions&discordgo.PermissionManageServer == 0 {
		return RespondWithEphemeralMessage(s, i, "Only server managers can configure the clan listing.")
	}

	data := i.ApplicationCommandData()

	listing, err := parseSetupOptions(data.Options[0].Options, i.GuildID)
	if err != nil {
		return RespondWithError(s, i, "A clan name is required.")
	}

	err = c.guildRepo.SaveListing(context.Background(), &guildRepo.SaveListingInput{Listing: listing})
	if err != nil {
		log.Error().Err(err).Str("guild_id", i.GuildID).Msg("Failed to save guild listing")
		return RespondWithError(s, i, "Could not save the clan listing, try again.")
	}

	msg := fmt.Sprintf("Clan listing saved. Records will carry the clan name **%s**.", listing.Name)
	if listing.MonitorChannelID != "" {
		msg += fmt.Sprintf(" Committed missions will be mirrored into <#%s>.", listing.MonitorChannelID)
	}
	return RespondWithEphemeralMessage(s, i, msg)
}

// parseSetupOptions builds the guild listing out of the setup subcommand's
// options
func parseSetupOptions(options []*discordgo.ApplicationCommandInteractionDataOption, guildID string) (*models.GuildListing, error) {
	listing := &models.GuildListing{DiscordServerID: guildID}
	for _, opt := range options {
		switch opt.Name {
		case "clan_name":
			if v, ok := opt.Value.(string); ok {
				listing.Name = strings.TrimSpace(v)
			}
		case "monitor_channel":
			if v, ok := opt.Value.(string); ok {
				listing.MonitorChannelID = v
			}
		}
	}
	if listing.Name == "" {
		return nil, errors.New("clan name is required")
	}
	return listing, nil
}

// HandleComponent routes the review flow's buttons and select menus
func (c *StatsCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) error {
	parts := strings.Split(customID, ":")
	if len(parts) < 3 {
		return fmt.Errorf("malformed custom ID %s", customID)
	}
	action, sessionID := parts[1], parts[2]

	switch action {
	case actionConfirm:
		return c.handleConfirm(s, i, sessionID)
	case actionCancel:
		return c.handleCancel(s, i, sessionID)
	case actionEdit:
		return c.handleEditButton(s, i, sessionID)
	case actionEditPlayer:
		return c.handleEditPlayerSelect(s, i, sessionID)
	case actionEditField:
		return c.handleEditFieldSelect(s, i, sessionID)
	case actionRegister:
		return c.handleRegisterButton(s, i, sessionID)
	case actionRegisterPlayer:
		return c.handleRegisterPlayerSelect(s, i, sessionID)
	default:
		return fmt.Errorf("unknown component action %s", action)
	}
}

// HandleModal processes the register-player modal submission
func (c *StatsCommand) HandleModal(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) error {
	parts := strings.Split(customID, ":")
	if len(parts) < 4 || parts[1] != actionRegisterModal {
		return fmt.Errorf("malformed modal custom ID %s", customID)
	}
	sessionID, target := parts[2], parts[3]

	playerIndex := -1
	if target != manualPlayerValue {
		idx, err := strconv.Atoi(target)
		if err != nil {
			return fmt.Errorf("malformed player index %q: %w", target, err)
		}
		playerIndex = idx
	}

	discordID, playerName := modalInputs(i.ModalSubmitData())

	_, err := c.service.RegisterMissing(context.Background(), &submission.RegisterMissingInput{
		SessionID:     sessionID,
		PlayerIndex:   playerIndex,
		DiscordID:     discordID,
		CanonicalName: playerName,
	})
	if err != nil {
		return c.respondFlowError(s, i, sessionID, err)
	}

	return c.updateReview(s, i, sessionID)
}

func (c *StatsCommand) handleConfirm(s *discordgo.Session, i *discordgo.InteractionCreate, sessionID string) error {
	out, err := c.service.Confirm(context.Background(), &submission.ConfirmInput{SessionID: sessionID})
	if err != nil {
		if errors.Is(err, submission.ErrNoResolvedPlayers) {
			return RespondWithEphemeralMessage(s, i,
				"At least one registered player is needed before confirming. Use the register button first.")
		}
		return c.respondFlowError(s, i, sessionID, err)
	}

	submittedBy := memberName(i)
	if len(out.Records) > 0 {
		submittedBy = out.Records[0].SubmittedBy
	}
	committed := renderCommittedEmbed(out.MissionIDDisplay, submittedBy, out.Records)
	if err := RespondWithUpdate(s, i, committed, []discordgo.MessageComponent{}); err != nil {
		return err
	}

	c.postToMonitorChannel(s, i.GuildID, committed)
	return nil
}

func (c *StatsCommand) handleCancel(s *discordgo.Session, i *discordgo.InteractionCreate, sessionID string) error {
	if err := c.service.AbandonSession(context.Background(), &submission.AbandonSessionInput{SessionID: sessionID}); err != nil {
		return err
	}

	cancelled := &discordgo.MessageEmbed{
		Title:       "Submission cancelled",
		Description: "Nothing was saved.",
		Color:       0xed4245,
	}
	return RespondWithUpdate(s, i, cancelled, []discordgo.MessageComponent{})
}

func (c *StatsCommand) handleEditButton(s *discordgo.Session, i *discordgo.InteractionCreate, sessionID string) error {
	records, err := c.service.GetSessionRecords(context.Background(), &submission.GetSessionRecordsInput{SessionID: sessionID})
	if err != nil {
		return c.respondFlowError(s, i, sessionID, err)
	}

	embed := renderRecordsEmbed(records.Records, records.ResolvedCount)
	return RespondWithUpdate(s, i, embed, playerSelect(actionEditPlayer, sessionID, records.Records, false))
}

func (c *StatsCommand) handleEditPlayerSelect(s *discordgo.Session, i *discordgo.InteractionCreate, sessionID string) error {
	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return errors.New("no player selected")
	}
	playerIndex, err := strconv.Atoi(values[0])
	if err != nil {
		return fmt.Errorf("malformed player index %q: %w", values[0], err)
	}

	out, err := c.service.SelectEdit(context.Background(), &submission.SelectEditInput{
		SessionID:   sessionID,
		PlayerIndex: playerIndex,
	})
	if err != nil {
		return c.respondFlowError(s, i, sessionID, err)
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Editing %s", out.Record.Get(models.FieldName)),
		Description: "Pick the field to correct.",
		Color:       0x5865f2,
	}
	return RespondWithUpdate(s, i, embed, fieldSelect(sessionID))
}

func (c *StatsCommand) handleEditFieldSelect(s *discordgo.Session, i *discordgo.InteractionCreate, sessionID string) error {
	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return errors.New("no field selected")
	}
	field := models.Field(values[0])

	out, err := c.service.SelectEdit(context.Background(), &submission.SelectEditInput{
		SessionID: sessionID,
		Field:     field,
	})
	if err != nil {
		return c.respondFlowError(s, i, sessionID, err)
	}

	prompt := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Editing %s for %s", field, out.Record.Get(models.FieldName)),
		Description: fmt.Sprintf(
			"Current value: **%s**\nReply in this channel with the new value within %d seconds. Send `N/A` for no reading.",
			out.Record.Get(field), int(c.replyTimeout.Seconds())),
		Color: 0xfee75c,
	}
	if err := RespondWithUpdate(s, i, prompt, []discordgo.MessageComponent{}); err != nil {
		return err
	}

	// The wait for the reply must not block the gateway handler
	go c.awaitFieldReply(s, i, sessionID, field)
	return nil
}

// awaitFieldReply blocks on one free-text reply and applies it to the
// session, then restores the review message. A timeout abandons the whole
// submission.
func (c *StatsCommand) awaitFieldReply(s *discordgo.Session, i *discordgo.InteractionCreate, sessionID string, field models.Field) {
	channelID := i.ChannelID
	userID := i.Member.User.ID
	messageID := i.Message.ID

	content, err := c.replies.WaitForReply(channelID, userID, c.replyTimeout)
	if err != nil {
		if errors.Is(err, ErrReplySuperseded) {
			// A newer edit prompt took over this wait.
			return
		}
		if abandonErr := c.service.AbandonSession(context.Background(), &submission.AbandonSessionInput{SessionID: sessionID}); abandonErr != nil {
			log.Error().Err(abandonErr).Str("session_id", sessionID).Msg("Failed to abandon session")
		}
		expired := &discordgo.MessageEmbed{
			Title:       "Submission timed out",
			Description: "No reply arrived in time. Nothing was saved, submit the screenshot again.",
			Color:       0xed4245,
		}
		c.editMessage(s, channelID, messageID, expired, []discordgo.MessageComponent{})
		return
	}

	_, err = c.service.ProvideFieldInput(context.Background(), &submission.ProvideFieldInputInput{
		SessionID: sessionID,
		Value:     content,
	})
	if err != nil {
		if errors.Is(err, submission.ErrInvalidFieldInput) {
			if _, sendErr := s.ChannelMessageSend(channelID, fmt.Sprintf("That is not a valid value for %s. The records are unchanged.", field)); sendErr != nil {
				log.Warn().Err(sendErr).Msg("Failed to send validation message")
			}
		} else {
			log.Error().Err(err).Str("session_id", sessionID).Msg("Failed to apply field input")
			return
		}
	}

	records, err := c.service.GetSessionRecords(context.Background(), &submission.GetSessionRecordsInput{SessionID: sessionID})
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("Failed to reload session records")
		return
	}
	embed := renderRecordsEmbed(records.Records, records.ResolvedCount)
	c.editMessage(s, channelID, messageID, embed, reviewComponents(sessionID))
}

func (c *StatsCommand) handleRegisterButton(s *discordgo.Session, i *discordgo.InteractionCreate, sessionID string) error {
	records, err := c.service.GetSessionRecords(context.Background(), &submission.GetSessionRecordsInput{SessionID: sessionID})
	if err != nil {
		return c.respondFlowError(s, i, sessionID, err)
	}

	embed := renderRecordsEmbed(records.Records, records.ResolvedCount)
	return RespondWithUpdate(s, i, embed, playerSelect(actionRegisterPlayer, sessionID, records.Records, true))
}

func (c *StatsCommand) handleRegisterPlayerSelect(s *discordgo.Session, i *discordgo.InteractionCreate, sessionID string) error {
	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return errors.New("no player selected")
	}
	target := values[0]

	ocrName := ""
	if target != manualPlayerValue {
		idx, err := strconv.Atoi(target)
		if err != nil {
			return fmt.Errorf("malformed player index %q: %w", target, err)
		}
		records, err := c.service.GetSessionRecords(context.Background(), &submission.GetSessionRecordsInput{SessionID: sessionID})
		if err != nil {
			return c.respondFlowError(s, i, sessionID, err)
		}
		if idx >= 0 && idx < len(records.Records) {
			ocrName = records.Records[idx].PlayerName
		}
	}

	return RespondWithModal(s, i,
		componentID(actionRegisterModal, sessionID, target),
		"Register player", registerModal(ocrName))
}

// updateReview restores the review embed and buttons on the flow's message
func (c *StatsCommand) updateReview(s *discordgo.Session, i *discordgo.InteractionCreate, sessionID string) error {
	records, err := c.service.GetSessionRecords(context.Background(), &submission.GetSessionRecordsInput{SessionID: sessionID})
	if err != nil {
		return c.respondFlowError(s, i, sessionID, err)
	}

	embed := renderRecordsEmbed(records.Records, records.ResolvedCount)
	return RespondWithUpdate(s, i, embed, reviewComponents(sessionID))
}

// respondFlowError maps service errors to operator-facing messages
func (c *StatsCommand) respondFlowError(s *discordgo.Session, i *discordgo.InteractionCreate, sessionID string, err error) error {
	switch {
	case errors.Is(err, submission.ErrSessionNotFound), errors.Is(err, submission.ErrSessionExpired):
		return RespondWithEphemeralMessage(s, i, "This submission has expired. Submit the screenshot again.")
	case errors.Is(err, submission.ErrInvalidFieldInput):
		return RespondWithEphemeralMessage(s, i, "That input is not valid.")
	default:
		log.Error().Err(err).Str("session_id", sessionID).Msg("Reconciliation flow error")
		return RespondWithEphemeralMessage(s, i, "Something went wrong, try again.")
	}
}

// postToMonitorChannel mirrors the committed embed into the guild's monitor
// channel when one is configured
func (c *StatsCommand) postToMonitorChannel(s *discordgo.Session, guildID string, embed *discordgo.MessageEmbed) {
	listing, err := c.guildRepo.GetListing(context.Background(), &guildRepo.GetListingInput{
		DiscordServerID: guildID,
	})
	if err != nil {
		if !errors.Is(err, guildRepo.ErrListingNotFound) {
			log.Warn().Err(err).Str("guild_id", guildID).Msg("Failed to look up guild listing")
		}
		return
	}
	if listing.MonitorChannelID == "" {
		return
	}

	if _, err := s.ChannelMessageSendEmbed(listing.MonitorChannelID, embed); err != nil {
		log.Warn().Err(err).Str("channel_id", listing.MonitorChannelID).Msg("Failed to post to monitor channel")
	}
}

func (c *StatsCommand) editMessage(s *discordgo.Session, channelID, messageID string, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	_, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    channelID,
		ID:         messageID,
		Embeds:     &[]*discordgo.MessageEmbed{embed},
		Components: &components,
	})
	if err != nil {
		log.Warn().Err(err).Str("message_id", messageID).Msg("Failed to edit review message")
	}
}

// downloadImage fetches and decodes the attachment
func (c *StatsCommand) downloadImage(url string) (image.Image, error) {
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download attachment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("attachment download returned status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode attachment: %w", err)
	}
	return img, nil
}

// memberName prefers the server nickname over the account username
func memberName(i *discordgo.InteractionCreate) string {
	if i.Member == nil || i.Member.User == nil {
		return "Unknown"
	}
	if i.Member.Nick != "" {
		return i.Member.Nick
	}
	return i.Member.User.Username
}

// modalInputs pulls the identity fields out of the register modal
func modalInputs(data discordgo.ModalSubmitInteractionData) (discordID, playerName string) {
	for _, row := range data.Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, component := range actionsRow.Components {
			input, ok := component.(*discordgo.TextInput)
			if !ok {
				continue
			}
			switch input.CustomID {
			case "discord_id":
				discordID = strings.TrimSpace(input.Value)
			case "player_name":
				playerName = strings.TrimSpace(input.Value)
			}
		}
	}
	return discordID, playerName
}
