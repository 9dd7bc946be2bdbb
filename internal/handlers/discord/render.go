package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/gptfleet/hellsnap/internal/models"
)

// Component custom ID actions within the stats flow
const (
	actionConfirm        = "confirm"
	actionCancel         = "cancel"
	actionEdit           = "edit"
	actionEditPlayer     = "editplayer"
	actionEditField      = "editfield"
	actionRegister       = "register"
	actionRegisterPlayer = "regplayer"
	actionRegisterModal  = "regmodal"

	// manualPlayerValue marks a register selection that adds a player not
	// present on the screenshot
	manualPlayerValue = "manual"
)

func componentID(action, sessionID string, extra ...string) string {
	parts := append([]string{strings.TrimSuffix(componentPrefix, ":"), action, sessionID}, extra...)
	return strings.Join(parts, ":")
}

// statLine renders one record's numbers in scoreboard order
func statLine(record *models.PlayerStatRecord) string {
	var sb strings.Builder
	for _, field := range models.EditableFields {
		if field == models.FieldName {
			continue
		}
		fmt.Fprintf(&sb, "%s: %s\n", field, record.Get(field))
	}
	return sb.String()
}

// renderRecordsEmbed builds the review embed shown after extraction
func renderRecordsEmbed(records []*models.PlayerStatRecord, resolvedCount int) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(records))
	for idx, record := range records {
		name := fmt.Sprintf("P%d  %s", idx+1, record.Get(models.FieldName))
		if record.IsRegistered() {
			name += "  ✅"
		} else {
			name += "  ❓"
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   name,
			Value:  statLine(record),
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title: "Extracted Mission Stats",
		Description: fmt.Sprintf(
			"%d of %d players matched to registered members. Review the values, then confirm or edit.",
			resolvedCount, len(records)),
		Color:  0x5865f2,
		Fields: fields,
	}
}

// reviewComponents builds the confirm / edit / register / cancel row
func reviewComponents(sessionID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Confirm",
					Style:    discordgo.SuccessButton,
					CustomID: componentID(actionConfirm, sessionID),
				},
				discordgo.Button{
					Label:    "Edit a value",
					Style:    discordgo.SecondaryButton,
					CustomID: componentID(actionEdit, sessionID),
				},
				discordgo.Button{
					Label:    "Register player",
					Style:    discordgo.SecondaryButton,
					CustomID: componentID(actionRegister, sessionID),
				},
				discordgo.Button{
					Label:    "Cancel",
					Style:    discordgo.DangerButton,
					CustomID: componentID(actionCancel, sessionID),
				},
			},
		},
	}
}

// playerSelect builds a player dropdown for editing or registration
func playerSelect(action, sessionID string, records []*models.PlayerStatRecord, includeManual bool) []discordgo.MessageComponent {
	options := make([]discordgo.SelectMenuOption, 0, len(records)+1)
	for idx, record := range records {
		options = append(options, discordgo.SelectMenuOption{
			Label: fmt.Sprintf("P%d  %s", idx+1, record.Get(models.FieldName)),
			Value: strconv.Itoa(idx),
		})
	}
	if includeManual {
		options = append(options, discordgo.SelectMenuOption{
			Label:       "Add a player not shown",
			Value:       manualPlayerValue,
			Description: "Register someone the screenshot missed",
		})
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    componentID(action, sessionID),
					Placeholder: "Select a player",
					Options:     options,
				},
			},
		},
	}
}

// fieldSelect builds the dropdown of editable fields
func fieldSelect(sessionID string) []discordgo.MessageComponent {
	options := make([]discordgo.SelectMenuOption, 0, len(models.EditableFields))
	for _, field := range models.EditableFields {
		options = append(options, discordgo.SelectMenuOption{
			Label: string(field),
			Value: string(field),
		})
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    componentID(actionEditField, sessionID),
					Placeholder: "Select a field to correct",
					Options:     options,
				},
			},
		},
	}
}

// registerModal builds the identity inputs for registering a player
func registerModal(ocrName string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:    "discord_id",
					Label:       "Discord user ID",
					Style:       discordgo.TextInputShort,
					Required:    true,
					MaxLength:   32,
					Placeholder: "e.g. 184405311681986560",
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:  "player_name",
					Label:     "In-game name",
					Style:     discordgo.TextInputShort,
					Required:  true,
					MaxLength: 64,
					Value:     ocrName,
				},
			},
		},
	}
}

// renderCommittedEmbed builds the embed posted after a mission is committed
func renderCommittedEmbed(missionIDDisplay, submittedBy string, records []*models.MissionStat) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(records))
	for _, record := range records {
		name := record.Get(models.FieldName)
		if record.ClanName != "" && record.ClanName != "N/A" {
			name = fmt.Sprintf("%s [%s]", name, record.ClanName)
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   name,
			Value:  statLine(&record.PlayerStatRecord),
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("Mission %s", missionIDDisplay),
		Color:  0x57f287,
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Submitted by %s", submittedBy),
		},
	}
}
