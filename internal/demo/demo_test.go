package demo

import (
	"testing"
	"time"

	"calnotes/internal/notes"

	"github.com/stretchr/testify/assert"
)

func TestDrafts_AreValidAndInRange(t *testing.T) {
	around := time.Date(2025, time.July, 15, 12, 0, 0, 0, time.Local)
	drafts := New(7).Drafts(200, around, 10)

	lo := around.AddDate(0, 0, -11)
	hi := around.AddDate(0, 0, 11)
	for _, d := range drafts {
		d = d.Normalize()
		assert.NoError(t, notes.Validate(d), d.Title)
		assert.True(t, d.Date.After(lo) && d.Date.Before(hi), d.Date)
		assert.GreaterOrEqual(t, d.Date.Hour(), 8)
		assert.Zero(t, d.Date.Minute()%15)
		if d.Reminder != nil {
			assert.True(t, d.Reminder.Before(d.Date))
		}
	}
}

func TestNew_Deterministic(t *testing.T) {
	around := time.Date(2025, time.July, 15, 12, 0, 0, 0, time.Local)
	assert.Equal(t, New(1).Drafts(5, around, 3), New(1).Drafts(5, around, 3))
}
