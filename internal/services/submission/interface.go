package submission

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/gptfleet/hellsnap/internal/services/submission Service

import "context"

// Service defines the interface for submission reconciliation
type Service interface {
	// BeginSubmission extracts a screenshot, resolves identities and opens
	// a reconciliation session
	BeginSubmission(ctx context.Context, input *BeginSubmissionInput) (*BeginSubmissionOutput, error)

	// SelectEdit picks the player, and then the field, the operator wants
	// to correct
	SelectEdit(ctx context.Context, input *SelectEditInput) (*SelectEditOutput, error)

	// ProvideFieldInput applies the operator's free-text reply to the
	// selected field
	ProvideFieldInput(ctx context.Context, input *ProvideFieldInputInput) (*ProvideFieldInputOutput, error)

	// RegisterMissing registers an unresolved player and promotes their
	// provisional record
	RegisterMissing(ctx context.Context, input *RegisterMissingInput) (*RegisterMissingOutput, error)

	// RegisterSelf registers a user outside any session
	RegisterSelf(ctx context.Context, input *RegisterSelfInput) error

	// GetUserProfile returns a user's registration and mission count
	GetUserProfile(ctx context.Context, input *GetUserProfileInput) (*GetUserProfileOutput, error)

	// LookupMission retrieves the committed records of a past mission
	LookupMission(ctx context.Context, input *LookupMissionInput) (*LookupMissionOutput, error)

	// Confirm commits the session's records under a freshly issued
	// mission ID
	Confirm(ctx context.Context, input *ConfirmInput) (*ConfirmOutput, error)

	// GetSessionRecords returns the session's current records for display
	GetSessionRecords(ctx context.Context, input *GetSessionRecordsInput) (*GetSessionRecordsOutput, error)

	// AbandonSession discards a session without persisting anything
	AbandonSession(ctx context.Context, input *AbandonSessionInput) error
}
