package submission

import (
	"image"
	"time"

	"github.com/gptfleet/hellsnap/internal/common/clock"
	"github.com/gptfleet/hellsnap/internal/common/uuid"
	"github.com/gptfleet/hellsnap/internal/matching"
	"github.com/gptfleet/hellsnap/internal/models"
	"github.com/gptfleet/hellsnap/internal/ocr"
	"github.com/gptfleet/hellsnap/internal/regions"
	guildRepo "github.com/gptfleet/hellsnap/internal/repositories/guild"
	missionRepo "github.com/gptfleet/hellsnap/internal/repositories/mission"
	rosterRepo "github.com/gptfleet/hellsnap/internal/repositories/roster"
)

// SessionState represents the current state of a reconciliation session
type SessionState string

const (
	// StateExtracted indicates records are extracted and awaiting review
	StateExtracted SessionState = "extracted"

	// StateEditing indicates the operator has selected a player to edit
	StateEditing SessionState = "editing"

	// StateAwaitingFieldInput indicates the session is blocked on one
	// free-text reply for the selected field
	StateAwaitingFieldInput SessionState = "awaiting_field_input"

	// StateMissingRegistration indicates the operator is registering an
	// unresolved player
	StateMissingRegistration SessionState = "missing_registration"

	// StateConfirmed indicates the session has been committed
	StateConfirmed SessionState = "confirmed"

	// StateAbandoned indicates the session timed out or was cancelled
	StateAbandoned SessionState = "abandoned"
)

// Config holds configuration for the submission service
type Config struct {
	// RegionMapper maps pixel geometry to per-field boxes
	RegionMapper *regions.Mapper

	// Extractor reads per-player records from the screenshot
	Extractor ocr.Extractor

	// Resolver matches OCR names against the roster
	Resolver matching.Resolver

	// Repository dependencies
	RosterRepo  rosterRepo.Repository
	MissionRepo missionRepo.Repository
	GuildRepo   guildRepo.Repository

	// Clock for timestamps and session expiry
	Clock clock.Clock

	// UUIDGenerator for session IDs
	UUIDGenerator uuid.UUID

	// InputTimeout bounds the wait for one operator reply. Defaults to
	// 60 seconds.
	InputTimeout time.Duration

	// MinNamedPlayers is the minimum count of readable names required to
	// open a session. Defaults to 2.
	MinNamedPlayers int
}

type BeginSubmissionInput struct {
	// Image is the decoded scoreboard screenshot
	Image image.Image

	// DiscordServerID is the guild the submission came from
	DiscordServerID string

	// SubmittedBy is the submitting operator's display name
	SubmittedBy string

	// SubmittedByDiscordID is the submitting operator's Discord ID
	SubmittedByDiscordID string
}

type BeginSubmissionOutput struct {
	SessionID string

	// Records are the extracted, identity-resolved player records
	Records []*models.PlayerStatRecord

	// ResolvedCount is how many records are bound to a roster identity
	ResolvedCount int
}

type SelectEditInput struct {
	SessionID string

	// PlayerIndex selects the record being edited
	PlayerIndex int

	// Field selects which field to edit. Empty means only the player has
	// been chosen so far.
	Field models.Field
}

type SelectEditOutput struct {
	State SessionState

	// Record is the record under edit
	Record *models.PlayerStatRecord
}

type ProvideFieldInputInput struct {
	SessionID string

	// Value is the operator's free-text reply
	Value string
}

type ProvideFieldInputOutput struct {
	// Record is the updated record
	Record *models.PlayerStatRecord

	// ResolutionChanged reports whether a name edit re-ran resolution
	ResolutionChanged bool
}

type RegisterMissingInput struct {
	SessionID string

	// PlayerIndex selects the provisional record to promote. Negative
	// adds a fully manual record instead.
	PlayerIndex int

	// DiscordID is the identity being registered
	DiscordID string

	// CanonicalName is the registered roster name
	CanonicalName string
}

type RegisterMissingOutput struct {
	Record *models.PlayerStatRecord
}

type RegisterSelfInput struct {
	DiscordID       string
	DiscordServerID string
	PlayerName      string
}

type GetUserProfileInput struct {
	DiscordID string
}

type GetUserProfileOutput struct {
	// Entry is nil when the user has not registered
	Entry *models.RosterEntry

	// MissionCount is how many committed missions include the user
	MissionCount int64
}

type LookupMissionInput struct {
	MissionID int64
}

type LookupMissionOutput struct {
	// MissionIDDisplay is the zero-padded form shown to users
	MissionIDDisplay string

	Records []*models.MissionStat
}

type ConfirmInput struct {
	SessionID string
}

type ConfirmOutput struct {
	MissionID int64

	// MissionIDDisplay is the zero-padded form shown to users
	MissionIDDisplay string

	Records []*models.MissionStat
}

type GetSessionRecordsInput struct {
	SessionID string
}

type GetSessionRecordsOutput struct {
	State         SessionState
	Records       []*models.PlayerStatRecord
	ResolvedCount int
}

type AbandonSessionInput struct {
	SessionID string
}
