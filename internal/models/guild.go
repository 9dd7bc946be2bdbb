package models

// GuildListing is the per-guild configuration consulted during submission.
type GuildListing struct {
	// DiscordServerID is the guild's Discord ID
	DiscordServerID string

	// Name is the guild's display name, shown as the clan name on records
	Name string

	// MonitorChannelID is where confirmed submissions are announced
	MonitorChannelID string
}
