package mission

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/gptfleet/hellsnap/internal/repositories/mission Repository

import (
	"context"
)

// Repository defines the interface for mission stat persistence
type Repository interface {
	// NextMissionID allocates the next mission identifier. IDs are unique
	// and monotonically increasing across concurrent submissions.
	NextMissionID(ctx context.Context, input *NextMissionIDInput) (*NextMissionIDOutput, error)

	// SaveMissionStats persists the per-player records of one mission
	SaveMissionStats(ctx context.Context, input *SaveMissionStatsInput) error

	// GetMissionStats retrieves the records of a mission by ID
	GetMissionStats(ctx context.Context, input *GetMissionStatsInput) (*GetMissionStatsOutput, error)

	// CountUserMissions counts how many saved missions include the user
	CountUserMissions(ctx context.Context, input *CountUserMissionsInput) (*CountUserMissionsOutput, error)
}
