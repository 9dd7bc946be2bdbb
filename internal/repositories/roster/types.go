package roster

import "github.com/gptfleet/hellsnap/internal/models"

type UpsertUserInput struct {
	Entry *models.RosterEntry
}

type GetUserByDiscordIDInput struct {
	DiscordID string
}

type ListUsersInput struct {
}

type ListUsersOutput struct {
	Entries []*models.RosterEntry
}
