package guild

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/gptfleet/hellsnap/internal/repositories/guild Repository

import (
	"context"

	"github.com/gptfleet/hellsnap/internal/models"
)

// Repository defines the interface for guild listing persistence
type Repository interface {
	// SaveListing creates or updates a guild's listing
	SaveListing(ctx context.Context, input *SaveListingInput) error

	// GetListing retrieves a guild's listing by Discord server ID
	GetListing(ctx context.Context, input *GetListingInput) (*models.GuildListing, error)
}
