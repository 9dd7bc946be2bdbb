package roster

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/gptfleet/hellsnap/internal/repositories/roster Repository

import (
	"context"

	"github.com/gptfleet/hellsnap/internal/models"
)

// Repository defines the interface for roster persistence
type Repository interface {
	// UpsertUser creates or updates a registration. Re-registering the
	// same identity updates the canonical name rather than failing.
	UpsertUser(ctx context.Context, input *UpsertUserInput) error

	// GetUserByDiscordID retrieves a registration by Discord user ID
	GetUserByDiscordID(ctx context.Context, input *GetUserByDiscordIDInput) (*models.RosterEntry, error)

	// ListUsers retrieves every registered identity
	ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error)
}
