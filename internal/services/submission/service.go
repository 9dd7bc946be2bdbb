package submission

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gptfleet/hellsnap/internal/matching"
	"github.com/gptfleet/hellsnap/internal/models"
	guildRepo "github.com/gptfleet/hellsnap/internal/repositories/guild"
	missionRepo "github.com/gptfleet/hellsnap/internal/repositories/mission"
	rosterRepo "github.com/gptfleet/hellsnap/internal/repositories/roster"
)

const (
	defaultInputTimeout    = 60 * time.Second
	defaultMinNamedPlayers = 2

	// notApplicable is the reply an operator sends for a value that has
	// no reading
	notApplicable = "n/a"
)

// service implements the Service interface
type service struct {
	config *Config

	mu       sync.RWMutex
	sessions map[string]*Session
}

// New creates a new submission service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RegionMapper == nil {
		return nil, errors.New("region mapper cannot be nil")
	}
	if cfg.Extractor == nil {
		return nil, errors.New("extractor cannot be nil")
	}
	if cfg.Resolver == nil {
		return nil, errors.New("resolver cannot be nil")
	}
	if cfg.RosterRepo == nil {
		return nil, errors.New("roster repository cannot be nil")
	}
	if cfg.MissionRepo == nil {
		return nil, errors.New("mission repository cannot be nil")
	}
	if cfg.GuildRepo == nil {
		return nil, errors.New("guild repository cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		return nil, errors.New("UUID generator cannot be nil")
	}

	if cfg.InputTimeout <= 0 {
		cfg.InputTimeout = defaultInputTimeout
	}
	if cfg.MinNamedPlayers <= 0 {
		cfg.MinNamedPlayers = defaultMinNamedPlayers
	}

	return &service{
		config:   cfg,
		sessions: make(map[string]*Session),
	}, nil
}

// BeginSubmission extracts the screenshot, resolves identities and opens a
// reconciliation session holding the provisional records.
func (s *service) BeginSubmission(ctx context.Context, input *BeginSubmissionInput) (*BeginSubmissionOutput, error) {
	if input == nil || input.Image == nil {
		return nil, errors.New("input and image cannot be nil")
	}
	if input.DiscordServerID == "" {
		return nil, errors.New("discord server ID cannot be empty")
	}

	bounds := input.Image.Bounds()
	regionMap := s.config.RegionMapper.MapRegions(bounds.Dx(), bounds.Dy())

	extracted, err := s.config.Extractor.ExtractPlayers(ctx, input.Image, regionMap)
	if err != nil {
		return nil, fmt.Errorf("failed to extract players: %w", err)
	}

	// Records without a readable name carry no reviewable information
	records := make([]*models.PlayerStatRecord, 0, len(extracted))
	for _, record := range extracted {
		if record.PlayerName != "" {
			records = append(records, record)
		}
	}
	if len(records) < s.config.MinNamedPlayers {
		return nil, ErrNotEnoughPlayers
	}

	clanName := s.lookupClanName(ctx, input.DiscordServerID)

	roster, err := s.config.RosterRepo.ListUsers(ctx, &rosterRepo.ListUsersInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}

	for _, record := range records {
		if err := s.resolveRecord(record, roster.Entries, input.DiscordServerID, clanName); err != nil {
			return nil, err
		}
	}

	session := &Session{
		ID:                   s.config.UUIDGenerator.NewUUID(),
		State:                StateExtracted,
		DiscordServerID:      input.DiscordServerID,
		ClanName:             clanName,
		SubmittedBy:          s.submitterName(ctx, input.SubmittedByDiscordID, input.SubmittedBy),
		SubmittedByDiscordID: input.SubmittedByDiscordID,
		Records:              records,
		ExpiresAt:            s.config.Clock.Now().Add(s.config.InputTimeout),
	}
	session.clearSelection()

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	resolved := session.resolvedCount()
	log.Info().
		Str("session_id", session.ID).
		Str("server_id", input.DiscordServerID).
		Int("players", len(records)).
		Int("resolved", resolved).
		Msg("Opened reconciliation session")

	return &BeginSubmissionOutput{
		SessionID:     session.ID,
		Records:       session.recordCopies(),
		ResolvedCount: resolved,
	}, nil
}

// SelectEdit moves the session toward a field edit. Called with only a
// player index it enters the editing state; called again with a field it
// blocks the session on one free-text reply.
func (s *service) SelectEdit(ctx context.Context, input *SelectEditInput) (*SelectEditOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	session, err := s.lockSession(input.SessionID)
	if err != nil {
		return nil, err
	}
	defer session.mu.Unlock()

	if input.Field == "" {
		if session.State != StateExtracted && session.State != StateEditing {
			return nil, ErrInvalidState
		}
		if input.PlayerIndex < 0 || input.PlayerIndex >= len(session.Records) {
			return nil, ErrInvalidPlayerIndex
		}
		session.State = StateEditing
		session.SelectedPlayer = input.PlayerIndex
		session.SelectedField = ""
		s.touch(session)

		record := *session.Records[input.PlayerIndex]
		return &SelectEditOutput{State: session.State, Record: &record}, nil
	}

	if session.State != StateEditing {
		return nil, ErrInvalidState
	}
	if !isEditableField(input.Field) {
		return nil, ErrUnknownField
	}

	session.State = StateAwaitingFieldInput
	session.SelectedField = input.Field
	s.touch(session)

	record := *session.Records[session.SelectedPlayer]
	return &SelectEditOutput{State: session.State, Record: &record}, nil
}

// ProvideFieldInput applies one operator reply to the selected field. Invalid
// input returns the session to the extracted state without mutating the
// record so the operator can retry the edit.
func (s *service) ProvideFieldInput(ctx context.Context, input *ProvideFieldInputInput) (*ProvideFieldInputOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	session, err := s.lockSession(input.SessionID)
	if err != nil {
		return nil, err
	}
	defer session.mu.Unlock()

	if session.State != StateAwaitingFieldInput {
		return nil, ErrInvalidState
	}

	record := session.Records[session.SelectedPlayer]
	field := session.SelectedField

	// Whatever happens the session leaves the blocked state
	session.State = StateExtracted
	session.clearSelection()
	s.touch(session)

	value := strings.TrimSpace(input.Value)

	switch field.Kind() {
	case models.KindName:
		if value == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidFieldInput)
		}
		return s.applyNameEdit(ctx, session, record, value)

	case models.KindPercent:
		accuracy, err := parseAccuracyInput(value)
		if err != nil {
			return nil, err
		}
		record.Accuracy = accuracy

	default:
		parsed, err := parseIntegerInput(value)
		if err != nil {
			return nil, err
		}
		record.SetInt(field, parsed)
		if field == models.FieldShotsFired || field == models.FieldShotsHit {
			record.RecalcAccuracy()
		}
	}

	updated := *record
	return &ProvideFieldInputOutput{Record: &updated}, nil
}

// RegisterMissing registers an identity for an unresolved player and
// promotes the provisional record, keeping the extracted numbers. A negative
// player index adds a fully manual record with placeholder values.
func (s *service) RegisterMissing(ctx context.Context, input *RegisterMissingInput) (*RegisterMissingOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.DiscordID == "" || strings.TrimSpace(input.CanonicalName) == "" {
		return nil, fmt.Errorf("%w: discord ID and name are required", ErrInvalidFieldInput)
	}

	session, err := s.lockSession(input.SessionID)
	if err != nil {
		return nil, err
	}
	defer session.mu.Unlock()

	if session.State != StateExtracted && session.State != StateMissingRegistration {
		return nil, ErrInvalidState
	}
	if input.PlayerIndex >= len(session.Records) {
		return nil, ErrInvalidPlayerIndex
	}

	session.State = StateMissingRegistration
	name := strings.TrimSpace(input.CanonicalName)

	err = s.config.RosterRepo.UpsertUser(ctx, &rosterRepo.UpsertUserInput{
		Entry: &models.RosterEntry{
			DiscordID:       input.DiscordID,
			DiscordServerID: session.DiscordServerID,
			PlayerName:      name,
		},
	})
	if err != nil {
		session.State = StateExtracted
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	var record *models.PlayerStatRecord
	if input.PlayerIndex >= 0 {
		record = session.Records[input.PlayerIndex]
	} else {
		record = &models.PlayerStatRecord{Accuracy: "0.0%"}
		session.Records = append(session.Records, record)
	}

	record.PlayerName = name
	record.DiscordID = input.DiscordID
	record.DiscordServerID = session.DiscordServerID
	record.ClanName = session.ClanName

	session.State = StateExtracted
	s.touch(session)

	log.Info().
		Str("session_id", session.ID).
		Str("player_name", name).
		Msg("Registered missing player")

	updated := *record
	return &RegisterMissingOutput{Record: &updated}, nil
}

// RegisterSelf registers a user's in-game name, outside any reconciliation
// session. Re-registration updates the canonical name.
func (s *service) RegisterSelf(ctx context.Context, input *RegisterSelfInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	name := strings.TrimSpace(input.PlayerName)
	if input.DiscordID == "" || input.DiscordServerID == "" || name == "" {
		return errors.New("discord ID, server ID and name are required")
	}

	err := s.config.RosterRepo.UpsertUser(ctx, &rosterRepo.UpsertUserInput{
		Entry: &models.RosterEntry{
			DiscordID:       input.DiscordID,
			DiscordServerID: input.DiscordServerID,
			PlayerName:      name,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// GetUserProfile returns a user's registration and how many committed
// missions include them. A nil entry means the user has not registered.
func (s *service) GetUserProfile(ctx context.Context, input *GetUserProfileInput) (*GetUserProfileOutput, error) {
	if input == nil || input.DiscordID == "" {
		return nil, errors.New("input and discord ID are required")
	}

	entry, err := s.config.RosterRepo.GetUserByDiscordID(ctx, &rosterRepo.GetUserByDiscordIDInput{
		DiscordID: input.DiscordID,
	})
	if err != nil && !errors.Is(err, rosterRepo.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up registration: %w", err)
	}

	countOut, err := s.config.MissionRepo.CountUserMissions(ctx, &missionRepo.CountUserMissionsInput{
		DiscordID: input.DiscordID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count missions: %w", err)
	}

	return &GetUserProfileOutput{
		Entry:        entry,
		MissionCount: countOut.Count,
	}, nil
}

// LookupMission retrieves the committed records of a past mission.
func (s *service) LookupMission(ctx context.Context, input *LookupMissionInput) (*LookupMissionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	out, err := s.config.MissionRepo.GetMissionStats(ctx, &missionRepo.GetMissionStatsInput{
		MissionID: input.MissionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load mission %d: %w", input.MissionID, err)
	}

	return &LookupMissionOutput{
		MissionIDDisplay: models.FormatMissionID(input.MissionID),
		Records:          out.Records,
	}, nil
}

// Confirm commits the session. Accuracy is rederived for every record, a
// mission ID is issued atomically and all records are persisted under it.
// The session is discarded afterwards.
func (s *service) Confirm(ctx context.Context, input *ConfirmInput) (*ConfirmOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	session, err := s.lockSession(input.SessionID)
	if err != nil {
		return nil, err
	}
	defer session.mu.Unlock()

	if session.State != StateExtracted {
		return nil, ErrInvalidState
	}
	if session.resolvedCount() == 0 {
		return nil, ErrNoResolvedPlayers
	}

	for _, record := range session.Records {
		record.RecalcAccuracy()
	}

	idOut, err := s.config.MissionRepo.NextMissionID(ctx, &missionRepo.NextMissionIDInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to issue mission ID: %w", err)
	}

	now := s.config.Clock.Now()
	stats := make([]*models.MissionStat, 0, len(session.Records))
	for _, record := range session.Records {
		stats = append(stats, &models.MissionStat{
			MissionID:            idOut.MissionID,
			PlayerStatRecord:     *record,
			SubmittedBy:          session.SubmittedBy,
			SubmittedByDiscordID: session.SubmittedByDiscordID,
			SubmittedAt:          now,
		})
	}

	err = s.config.MissionRepo.SaveMissionStats(ctx, &missionRepo.SaveMissionStatsInput{
		MissionID: idOut.MissionID,
		Records:   stats,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save mission stats: %w", err)
	}

	session.State = StateConfirmed
	s.removeSession(session.ID)

	log.Info().
		Str("session_id", session.ID).
		Int64("mission_id", idOut.MissionID).
		Int("players", len(stats)).
		Msg("Mission committed")

	return &ConfirmOutput{
		MissionID:        idOut.MissionID,
		MissionIDDisplay: models.FormatMissionID(idOut.MissionID),
		Records:          stats,
	}, nil
}

// GetSessionRecords returns a snapshot of the session's records
func (s *service) GetSessionRecords(ctx context.Context, input *GetSessionRecordsInput) (*GetSessionRecordsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	session, err := s.lockSession(input.SessionID)
	if err != nil {
		return nil, err
	}
	defer session.mu.Unlock()

	return &GetSessionRecordsOutput{
		State:         session.State,
		Records:       session.recordCopies(),
		ResolvedCount: session.resolvedCount(),
	}, nil
}

// AbandonSession discards a session. Abandoning an unknown or already
// discarded session is not an error.
func (s *service) AbandonSession(ctx context.Context, input *AbandonSessionInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	s.mu.Lock()
	session, ok := s.sessions[input.SessionID]
	if ok {
		delete(s.sessions, input.SessionID)
	}
	s.mu.Unlock()

	if ok {
		session.mu.Lock()
		session.State = StateAbandoned
		session.mu.Unlock()
		log.Info().Str("session_id", input.SessionID).Msg("Abandoned reconciliation session")
	}
	return nil
}

// lockSession returns the session locked, discarding it first if its input
// wait has expired. Callers must unlock it.
func (s *service) lockSession(sessionID string) (*Session, error) {
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}

	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	session.mu.Lock()
	if s.config.Clock.Now().After(session.ExpiresAt) {
		session.State = StateAbandoned
		session.mu.Unlock()
		s.removeSession(sessionID)
		log.Info().Str("session_id", sessionID).Msg("Discarded expired reconciliation session")
		return nil, ErrSessionExpired
	}
	return session, nil
}

func (s *service) removeSession(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

func (s *service) touch(session *Session) {
	session.ExpiresAt = s.config.Clock.Now().Add(s.config.InputTimeout)
}

// submitterName prefers the submitter's registered roster name over the
// Discord display name passed in with the submission.
func (s *service) submitterName(ctx context.Context, discordID, fallback string) string {
	if discordID == "" {
		return fallback
	}
	entry, err := s.config.RosterRepo.GetUserByDiscordID(ctx, &rosterRepo.GetUserByDiscordIDInput{
		DiscordID: discordID,
	})
	if err != nil {
		if !errors.Is(err, rosterRepo.ErrUserNotFound) {
			log.Warn().Err(err).Str("discord_id", discordID).Msg("Failed to look up submitter registration")
		}
		return fallback
	}
	return entry.PlayerName
}

// lookupClanName returns the guild's display name, or "N/A" when the guild
// has no listing.
func (s *service) lookupClanName(ctx context.Context, serverID string) string {
	listing, err := s.config.GuildRepo.GetListing(ctx, &guildRepo.GetListingInput{
		DiscordServerID: serverID,
	})
	if err != nil {
		if !errors.Is(err, guildRepo.ErrListingNotFound) {
			log.Warn().Err(err).Str("server_id", serverID).Msg("Failed to look up guild listing")
		}
		return "N/A"
	}
	return listing.Name
}

// resolveRecord binds a record to a roster identity when the resolver finds
// a match, otherwise leaves it unregistered.
func (s *service) resolveRecord(record *models.PlayerStatRecord, roster []*models.RosterEntry, serverID, clanName string) error {
	out, err := s.config.Resolver.Resolve(&matching.ResolveInput{
		Name:   record.PlayerName,
		Roster: roster,
	})
	if err != nil {
		return fmt.Errorf("failed to resolve name %q: %w", record.PlayerName, err)
	}

	if out.Entry == nil {
		record.DiscordID = ""
		record.DiscordServerID = ""
		record.ClanName = "N/A"
		return nil
	}

	record.PlayerName = out.Entry.PlayerName
	record.DiscordID = out.Entry.DiscordID
	record.DiscordServerID = serverID
	record.ClanName = clanName
	return nil
}

// applyNameEdit replaces the player name and re-runs identity resolution.
// A name that no longer matches clears an existing binding.
func (s *service) applyNameEdit(ctx context.Context, session *Session, record *models.PlayerStatRecord, name string) (*ProvideFieldInputOutput, error) {
	roster, err := s.config.RosterRepo.ListUsers(ctx, &rosterRepo.ListUsersInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}

	previousID := record.DiscordID
	record.PlayerName = name
	if err := s.resolveRecord(record, roster.Entries, session.DiscordServerID, session.ClanName); err != nil {
		return nil, err
	}

	updated := *record
	return &ProvideFieldInputOutput{
		Record:            &updated,
		ResolutionChanged: record.DiscordID != previousID,
	}, nil
}

func isEditableField(field models.Field) bool {
	for _, f := range models.EditableFields {
		if f == field {
			return true
		}
	}
	return false
}

// parseIntegerInput validates an operator reply for a whole-number stat.
// The "N/A" sentinel reads as zero.
func parseIntegerInput(value string) (int, error) {
	if strings.EqualFold(value, notApplicable) {
		return 0, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0, fmt.Errorf("%w: %q is not a non-negative whole number", ErrInvalidFieldInput, value)
	}
	return parsed, nil
}

// parseAccuracyInput validates an operator reply for the accuracy field and
// normalizes it to the canonical "88.0%" form.
func parseAccuracyInput(value string) (string, error) {
	if strings.EqualFold(value, notApplicable) {
		return "0.0%", nil
	}
	trimmed := strings.TrimSuffix(value, "%")
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || parsed < 0 {
		return "", fmt.Errorf("%w: %q is not a percentage", ErrInvalidFieldInput, value)
	}
	if parsed > 100 {
		parsed = 100
	}
	return fmt.Sprintf("%.1f%%", parsed), nil
}
