package models

// Field identifies one labeled value on the end-of-round scoreboard.
type Field string

const (
	FieldName             Field = "Name"
	FieldKills            Field = "Kills"
	FieldAccuracy         Field = "Accuracy"
	FieldShotsFired       Field = "Shots Fired"
	FieldShotsHit         Field = "Shots Hit"
	FieldDeaths           Field = "Deaths"
	FieldMeleeKills       Field = "Melee Kills"
	FieldStimsUsed        Field = "Stims Used"
	FieldSamplesExtracted Field = "Samples Extracted"
	FieldStratagemsUsed   Field = "Stratagems Used"
)

// FieldKind groups fields by how their text is extracted and cleaned.
type FieldKind int

const (
	// KindName is free-form player name text
	KindName FieldKind = iota

	// KindInteger is a whole-number stat
	KindInteger

	// KindPercent is a percentage value like "88.0%"
	KindPercent
)

// ScannedFields are the fields read from the screenshot, in scoreboard order.
// Accuracy is intentionally absent: it is always derived from shots, never read.
var ScannedFields = []Field{
	FieldName,
	FieldKills,
	FieldShotsFired,
	FieldShotsHit,
	FieldDeaths,
	FieldMeleeKills,
	FieldStimsUsed,
	FieldSamplesExtracted,
	FieldStratagemsUsed,
}

// EditableFields are the fields an operator may correct during reconciliation.
var EditableFields = []Field{
	FieldName,
	FieldKills,
	FieldAccuracy,
	FieldShotsFired,
	FieldShotsHit,
	FieldDeaths,
	FieldMeleeKills,
	FieldStimsUsed,
	FieldSamplesExtracted,
	FieldStratagemsUsed,
}

// Kind returns how the field's raw text should be treated.
func (f Field) Kind() FieldKind {
	switch f {
	case FieldName:
		return KindName
	case FieldAccuracy:
		return KindPercent
	default:
		return KindInteger
	}
}
