package models

import (
	"fmt"
	"time"
)

// PlayerStatRecord holds one player's extracted scoreboard values along with
// the roster identity the name resolved to, if any.
type PlayerStatRecord struct {
	// PlayerName is the canonical roster name once resolved, or the raw
	// cleaned OCR name while unresolved. Empty means no readable name.
	PlayerName string

	// DiscordID is the resolved roster identity. Empty means unregistered.
	DiscordID string

	// DiscordServerID is the guild the resolved identity belongs to.
	DiscordServerID string

	// ClanName is the display name of the player's clan, or "N/A".
	ClanName string

	Kills            int
	Deaths           int
	ShotsFired       int
	ShotsHit         int
	MeleeKills       int
	StimsUsed        int
	SamplesExtracted int
	StratagemsUsed   int

	// Accuracy is derived from shots, formatted like "88.0%".
	Accuracy string
}

// IsRegistered reports whether the record is bound to a roster identity.
func (p *PlayerStatRecord) IsRegistered() bool {
	return p.DiscordID != ""
}

// ClearIdentity detaches the record from any roster identity.
func (p *PlayerStatRecord) ClearIdentity() {
	p.PlayerName = ""
	p.DiscordID = ""
	p.DiscordServerID = ""
	p.ClanName = "N/A"
}

// RecalcAccuracy clamps ShotsHit to ShotsFired and rederives the accuracy
// string. Zero shots fired yields "0.0%"; the value never exceeds 100%.
func (p *PlayerStatRecord) RecalcAccuracy() {
	if p.ShotsHit > p.ShotsFired {
		p.ShotsHit = p.ShotsFired
	}
	var acc float64
	if p.ShotsFired > 0 {
		acc = float64(p.ShotsHit) / float64(p.ShotsFired) * 100
	}
	if acc > 100 {
		acc = 100
	}
	p.Accuracy = fmt.Sprintf("%.1f%%", acc)
}

// Get returns the record's value for a scoreboard field as display text.
func (p *PlayerStatRecord) Get(f Field) string {
	switch f {
	case FieldName:
		if p.PlayerName == "" {
			return "Unknown"
		}
		return p.PlayerName
	case FieldKills:
		return fmt.Sprintf("%d", p.Kills)
	case FieldDeaths:
		return fmt.Sprintf("%d", p.Deaths)
	case FieldShotsFired:
		return fmt.Sprintf("%d", p.ShotsFired)
	case FieldShotsHit:
		return fmt.Sprintf("%d", p.ShotsHit)
	case FieldMeleeKills:
		return fmt.Sprintf("%d", p.MeleeKills)
	case FieldStimsUsed:
		return fmt.Sprintf("%d", p.StimsUsed)
	case FieldSamplesExtracted:
		return fmt.Sprintf("%d", p.SamplesExtracted)
	case FieldStratagemsUsed:
		return fmt.Sprintf("%d", p.StratagemsUsed)
	case FieldAccuracy:
		return p.Accuracy
	}
	return ""
}

// SetInt stores an integer value into the named field.
func (p *PlayerStatRecord) SetInt(f Field, v int) {
	switch f {
	case FieldKills:
		p.Kills = v
	case FieldDeaths:
		p.Deaths = v
	case FieldShotsFired:
		p.ShotsFired = v
	case FieldShotsHit:
		p.ShotsHit = v
	case FieldMeleeKills:
		p.MeleeKills = v
	case FieldStimsUsed:
		p.StimsUsed = v
	case FieldSamplesExtracted:
		p.SamplesExtracted = v
	case FieldStratagemsUsed:
		p.StratagemsUsed = v
	}
}

// MissionStat is one player's committed record for a mission.
type MissionStat struct {
	// MissionID ties all records of one submission together
	MissionID int64

	PlayerStatRecord

	// SubmittedBy is the roster name of the submitting operator
	SubmittedBy string

	// SubmittedByDiscordID is the submitting operator's Discord ID
	SubmittedByDiscordID string

	// SubmittedAt is when the submission was confirmed
	SubmittedAt time.Time
}

// FormatMissionID renders a mission id as the zero-padded 7-digit form used
// in user-facing output.
func FormatMissionID(id int64) string {
	return fmt.Sprintf("%07d", id)
}
