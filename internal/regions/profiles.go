package regions

import (
	"github.com/gptfleet/hellsnap/internal/models"
)

// Box is a pixel-coordinate bounding box within a screenshot.
type Box struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Profile is a fixed pixel-coordinate template for one known screenshot
// resolution. Boxes locate the first player's fields; subsequent player
// columns are shifted right by PlayerOffset.
type Profile struct {
	// Name identifies the profile in logs
	Name string

	// Width and Height are the resolution the boxes were measured at
	Width  int
	Height int

	// Boxes maps each scanned field to its first-column bounding box
	Boxes map[models.Field]Box

	// PlayerOffset is the horizontal distance between player columns
	PlayerOffset int
}

// knownProfiles is the fixed set of calibrated layouts. The 1920x1080 entry
// is the reference profile used for scaling when nothing matches.
var knownProfiles = []Profile{
	{
		Name:   "1280x800",
		Width:  1280,
		Height: 800,
		Boxes: map[models.Field]Box{
			models.FieldName:             {87, 133, 262, 152},
			models.FieldKills:            {229, 225, 293, 247},
			models.FieldAccuracy:         {229, 259, 293, 278},
			models.FieldShotsFired:       {229, 291, 293, 311},
			models.FieldShotsHit:         {229, 322, 293, 346},
			models.FieldDeaths:           {250, 352, 293, 376},
			models.FieldStimsUsed:        {250, 426, 293, 452},
			models.FieldSamplesExtracted: {250, 496, 293, 522},
			models.FieldStratagemsUsed:   {250, 533, 293, 559},
			models.FieldMeleeKills:       {250, 570, 293, 596},
		},
		PlayerOffset: 305,
	},
	{
		Name:   "1920x1080",
		Width:  1920,
		Height: 1080,
		Boxes: map[models.Field]Box{
			models.FieldName:             {130, 200, 360, 230},
			models.FieldKills:            {340, 338, 450, 375},
			models.FieldAccuracy:         {340, 386, 450, 420},
			models.FieldShotsFired:       {340, 435, 450, 470},
			models.FieldShotsHit:         {340, 483, 449, 518},
			models.FieldDeaths:           {375, 528, 450, 566},
			models.FieldStimsUsed:        {375, 575, 450, 610},
			models.FieldSamplesExtracted: {375, 670, 450, 705},
			models.FieldStratagemsUsed:   {375, 720, 450, 755},
			models.FieldMeleeKills:       {375, 770, 450, 805},
		},
		PlayerOffset: 460,
	},
	{
		Name:   "1365x768",
		Width:  1365,
		Height: 768,
		Boxes: map[models.Field]Box{
			models.FieldName:             {92, 142, 256, 164},
			models.FieldKills:            {242, 241, 320, 267},
			models.FieldAccuracy:         {242, 275, 320, 299},
			models.FieldShotsFired:       {242, 310, 320, 334},
			models.FieldShotsHit:         {242, 343, 319, 368},
			models.FieldDeaths:           {266, 375, 320, 403},
			models.FieldStimsUsed:        {266, 409, 320, 433},
			models.FieldSamplesExtracted: {266, 476, 320, 501},
			models.FieldStratagemsUsed:   {266, 512, 320, 537},
			models.FieldMeleeKills:       {266, 548, 320, 572},
		},
		PlayerOffset: 327,
	},
	{
		Name:   "1835x768",
		Width:  1835,
		Height: 768,
		Boxes: map[models.Field]Box{
			models.FieldName:             {124, 142, 343, 164},
			models.FieldKills:            {325, 241, 430, 267},
			models.FieldAccuracy:         {325, 275, 430, 299},
			models.FieldShotsFired:       {325, 310, 430, 334},
			models.FieldShotsHit:         {325, 343, 429, 368},
			models.FieldDeaths:           {358, 375, 430, 403},
			models.FieldStimsUsed:        {358, 409, 430, 433},
			models.FieldSamplesExtracted: {358, 476, 430, 501},
			models.FieldStratagemsUsed:   {358, 512, 430, 537},
			models.FieldMeleeKills:       {358, 548, 430, 572},
		},
		PlayerOffset: 440,
	},
}

const referenceProfileName = "1920x1080"
