package guild

import "github.com/gptfleet/hellsnap/internal/models"

type SaveListingInput struct {
	Listing *models.GuildListing
}

type GetListingInput struct {
	DiscordServerID string
}
