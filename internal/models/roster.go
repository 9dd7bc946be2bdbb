package models

import (
	"time"
)

// RosterEntry is one registered identity that extracted names are matched
// against.
type RosterEntry struct {
	// DiscordID is the stable external identity of the player
	DiscordID string

	// DiscordServerID is the guild the registration belongs to
	DiscordServerID string

	// PlayerName is the canonical display name used on scoreboards
	PlayerName string

	// RegisteredAt is when the entry was first created
	RegisteredAt time.Time
}
