package submission

import (
	"sync"
	"time"

	"github.com/gptfleet/hellsnap/internal/models"
)

// Session is one submission's in-memory reconciliation state. Sessions share
// no mutable state with each other; nothing is persisted before Confirm.
type Session struct {
	mu sync.Mutex

	ID              string
	State           SessionState
	DiscordServerID string
	ClanName        string

	SubmittedBy          string
	SubmittedByDiscordID string

	Records []*models.PlayerStatRecord

	// SelectedPlayer and SelectedField are set while editing
	SelectedPlayer int
	SelectedField  models.Field

	// ExpiresAt is refreshed on every interaction; a session touched after
	// this instant is discarded.
	ExpiresAt time.Time
}

func (s *Session) resolvedCount() int {
	count := 0
	for _, record := range s.Records {
		if record.IsRegistered() {
			count++
		}
	}
	return count
}

func (s *Session) clearSelection() {
	s.SelectedPlayer = -1
	s.SelectedField = ""
}

// recordCopies returns detached copies safe to hand to callers.
func (s *Session) recordCopies() []*models.PlayerStatRecord {
	copies := make([]*models.PlayerStatRecord, len(s.Records))
	for i, record := range s.Records {
		c := *record
		copies[i] = &c
	}
	return copies
}
