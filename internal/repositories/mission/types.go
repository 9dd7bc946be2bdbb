package mission

import "github.com/gptfleet/hellsnap/internal/models"

type NextMissionIDInput struct {
}

type NextMissionIDOutput struct {
	MissionID int64
}

type SaveMissionStatsInput struct {
	MissionID int64
	Records   []*models.MissionStat
}

type GetMissionStatsInput struct {
	MissionID int64
}

type GetMissionStatsOutput struct {
	Records []*models.MissionStat
}

type CountUserMissionsInput struct {
	DiscordID string
}

type CountUserMissionsOutput struct {
	Count int64
}
