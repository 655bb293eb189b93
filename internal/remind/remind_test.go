package remind

import (
	"context"
	"testing"
	"time"

	"calnotes/internal/notes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, time.July, 15, 9, 0, 0, 0, time.Local)

func withReminder(id string, offset time.Duration) notes.Note {
	r := base.Add(offset)
	return notes.Note{ID: id, Title: id, Date: base, Reminder: &r}
}

type staticSource []notes.Note

func (s staticSource) List() []notes.Note { return s }

func TestDue_Window(t *testing.T) {
	done := withReminder("done", 0)
	done.IsCompleted = true
	list := []notes.Note{
		withReminder("later", 2*time.Minute),
		withReminder("edge", 0),
		{ID: "none", Date: base},
		withReminder("old", -time.Minute),
		withReminder("first", -30*time.Second),
		done,
	}

	due := Due(list, base, base.Add(-time.Minute))
	var got []string
	for _, n := range due {
		got = append(got, n.ID)
	}
	assert.Equal(t, []string{"first", "edge"}, got)
}

func TestWatcher_ReportsEachReminderOnce(t *testing.T) {
	now := base.Add(-time.Minute)
	clock := func() time.Time { return now }

	src := staticSource{withReminder("standup", 0), withReminder("lunch", 3*time.Hour)}
	var notified [][]notes.Note
	w, err := newWatcher(src, "", func(due []notes.Note) { notified = append(notified, due) }, clock)
	require.NoError(t, err)

	now = base.Add(30 * time.Second)
	due := w.Check()
	require.Len(t, due, 1)
	assert.Equal(t, "standup", due[0].ID)

	now = base.Add(time.Minute)
	assert.Empty(t, w.Check())

	now = base.Add(4 * time.Hour)
	due = w.Check()
	require.Len(t, due, 1)
	assert.Equal(t, "lunch", due[0].ID)

	assert.Len(t, notified, 2)
}

func TestNewWatcher_RejectsBadSchedule(t *testing.T) {
	_, err := NewWatcher(staticSource{}, "every minute please", nil)
	assert.Error(t, err)
}

func TestWatcher_RunStopsWithContext(t *testing.T) {
	w, err := NewWatcher(staticSource{}, "@every 1h", nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, w.Run(ctx), context.Canceled)
}
