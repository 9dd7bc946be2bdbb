package ocr

import (
	"testing"

	"github.com/gptfleet/hellsnap/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "HeroOfTheFederation", "HeroOfTheFederation"},
		{"underscores to spaces", "Super_Citizen", "Super Citizen"},
		{"digit misreads", "5hadow", "Shadow"},
		{"pipe to I", "|ronside", "Ironside"},
		{"collapse whitespace", "  Dive   Leader ", "Dive Leader"},
		{"strip punctuation", "Bug.Stomper!", "Bug Stomper"},
		{"exclamation then trailing cap dropped", "Ironside!", "Ironside"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in, models.FieldName, false))
		})
	}
}

func TestCleanInteger(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		field     models.Field
		zeroProne bool
		want      string
	}{
		{"digits pass through", "123", models.FieldKills, false, "123"},
		{"letter confusions", "1O5", models.FieldKills, false, "105"},
		{"lowercase l to one", "l2", models.FieldDeaths, false, "12"},
		{"S to five", "S0", models.FieldShotsFired, false, "50"},
		{"B to eight", "B1", models.FieldKills, false, "81"},
		{"B suppressed for zero-prone", "B1", models.FieldMeleeKills, true, "1"},
		{"strip noise", " 4,2 ", models.FieldShotsHit, false, "42"},
		{"nothing numeric", "abc", models.FieldKills, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in, tt.field, tt.zeroProne))
		})
	}
}

func TestCleanPercent(t *testing.T) {
	assert.Equal(t, "88.0%", Clean("88.0%", models.FieldAccuracy, false))
	assert.Equal(t, "75.3%", Clean(" 7a5.3 %", models.FieldAccuracy, false))
	assert.Equal(t, "", Clean("xyz", models.FieldAccuracy, false))
}

func TestIsJunkName(t *testing.T) {
	assert.True(t, IsJunkName("0"))
	assert.True(t, IsJunkName("."))
	assert.True(t, IsJunkName(" A "))
	assert.False(t, IsJunkName("Al"))
	assert.False(t, IsJunkName("Hero"))
}
