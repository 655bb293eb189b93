package notes

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"calnotes/internal/storage"
	"calnotes/internal/timeutil"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("note-%03d", n)
	}
}

// flakyPersistence fails Save while fail is set.
type flakyPersistence struct {
	*KVPersistence
	fail    bool
	loadErr error
}

func (p *flakyPersistence) Load() ([]byte, bool, error) {
	if p.loadErr != nil {
		return nil, false, p.loadErr
	}
	return p.KVPersistence.Load()
}

func (p *flakyPersistence) Save(data []byte) error {
	if p.fail {
		return errors.New("disk full")
	}
	return p.KVPersistence.Save(data)
}

var july15 = time.Date(2025, time.July, 15, 9, 0, 0, 0, time.Local)

func newTestStore(t *testing.T, strict bool) (*Store, *fakeClock, storage.KV) {
	t.Helper()
	kv := storage.NewMemory()
	clock := &fakeClock{t: july15}
	s, err := Open(NewKVPersistence(kv), Options{
		Strict: strict,
		Now:    clock.Now,
		IDs:    sequentialIDs(),
	})
	require.NoError(t, err)
	return s, clock, kv
}

func draft(title string, date time.Time) Draft {
	return Draft{Title: title, Date: date, Tags: []string{"work"}}
}

func TestOpen_EmptyStorageSeedsWelcome(t *testing.T) {
	s, _, kv := newTestStore(t, true)

	list := s.List()
	require.Len(t, list, 1)
	assert.True(t, list[0].IsPinned)
	assert.Equal(t, DefaultColor, list[0].Color)
	assert.Equal(t, []string{"welcome"}, list[0].Tags)
	assert.True(t, timeutil.SameDay(list[0].Date, july15))

	_, found, err := kv.Get(DefaultKey)
	require.NoError(t, err)
	assert.True(t, found, "seed should be persisted")
}

func TestOpen_CorruptDataFallsBackToWelcome(t *testing.T) {
	kv := storage.NewMemory()
	require.NoError(t, kv.Set(DefaultKey, []byte("{not json")))

	s, err := Open(NewKVPersistence(kv), Options{})
	require.NoError(t, err)

	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, "Welcome to Calendar Notes", list[0].Title)

	raw, _, err := kv.Get(DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(raw), "corrupt value must not be overwritten on open")
}

func TestOpen_LoadErrorIsReturned(t *testing.T) {
	p := &flakyPersistence{KVPersistence: NewKVPersistence(storage.NewMemory()), loadErr: errors.New("permission denied")}
	_, err := Open(p, Options{})
	assert.ErrorContains(t, err, "permission denied")
}

func TestAdd_AssignsIDAndTimestamps(t *testing.T) {
	s, _, kv := newTestStore(t, true)

	n, err := s.Add(draft("Standup", july15.Add(time.Hour)))
	require.NoError(t, err)

	assert.Equal(t, "note-002", n.ID)
	assert.Equal(t, july15, n.CreatedAt)
	assert.Equal(t, n.CreatedAt, n.UpdatedAt)
	assert.Equal(t, DefaultColor, n.Color)

	got, err := s.Get(n.ID)
	require.NoError(t, err)
	assert.Equal(t, n, got)

	raw, _, err := kv.Get(DefaultKey)
	require.NoError(t, err)
	saved, err := Decode(raw)
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, n.ID, saved[1].ID)
}

func TestAdd_RejectsInvalidDrafts(t *testing.T) {
	s, _, _ := newTestStore(t, true)

	tests := []struct {
		name  string
		draft Draft
		field string
	}{
		{"empty title", Draft{Title: "  ", Date: july15}, "title"},
		{"whitespace only title", Draft{Title: "\n\t ", Date: july15}, "title"},
		{"missing date", Draft{Title: "x"}, "date"},
		{"duplicate tags", Draft{Title: "x", Date: july15, Tags: []string{"work", "work"}}, "tags"},
		{"bad color", Draft{Title: "x", Date: july15, Color: "blue"}, "color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Add(tt.draft)
			require.ErrorIs(t, err, ErrInvalidNote)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
	assert.Equal(t, 1, s.Len())
}

func TestUpdate_PreservesIdentityAndAdvancesUpdatedAt(t *testing.T) {
	s, clock, _ := newTestStore(t, true)
	n, err := s.Add(draft("Standup", july15))
	require.NoError(t, err)

	n.Title = "Retro"
	n.Tags = []string{"meeting"}
	updated, err := s.Update(n)
	require.NoError(t, err)

	assert.Equal(t, n.ID, updated.ID)
	assert.Equal(t, n.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Retro", updated.Title)
	assert.Equal(t, []string{"meeting"}, updated.Tags)
	assert.True(t, updated.UpdatedAt.After(n.UpdatedAt), "clock did not move but UpdatedAt must")

	clock.Advance(time.Minute)
	again, err := s.Update(updated)
	require.NoError(t, err)
	assert.Equal(t, clock.Now(), again.UpdatedAt)
}

func TestAddUpdate_KeepFreeTextVerbatim(t *testing.T) {
	s, _, _ := newTestStore(t, true)

	for _, text := range []string{"a<b and c>d", "List<String>", "literal &lt;b&gt; text"} {
		n, err := s.Add(Draft{Title: text, Content: text, Date: july15})
		require.NoError(t, err)
		assert.Equal(t, text, n.Title)
		assert.Equal(t, text, n.Content)

		updated, err := s.Update(n)
		require.NoError(t, err)
		assert.Equal(t, text, updated.Title)
		assert.Equal(t, text, updated.Content)

		require.NoError(t, s.Reload())
		got, err := s.Get(n.ID)
		require.NoError(t, err)
		assert.Equal(t, text, got.Content)
	}
}

func TestAdd_DayIsStableAcrossReload(t *testing.T) {
	s, _, _ := newTestStore(t, true)

	far := time.FixedZone("UTC+14", 14*60*60)
	n, err := s.Add(draft("Late call", time.Date(2025, time.July, 16, 0, 30, 0, 0, far)))
	require.NoError(t, err)
	assert.Equal(t, time.Local, n.Date.Location())

	day := timeutil.StartOfDay(n.Date)
	before := len(s.NotesOnDate(day))
	require.NoError(t, s.Reload())
	assert.Equal(t, before, len(s.NotesOnDate(day)))

	got, err := s.Get(n.ID)
	require.NoError(t, err)
	assert.True(t, got.Date.Equal(n.Date))
	assert.Equal(t, n.Date.Day(), got.Date.Day())
}

func TestUpdate_IgnoresCallerTimestamps(t *testing.T) {
	s, _, _ := newTestStore(t, true)
	n, err := s.Add(draft("Standup", july15))
	require.NoError(t, err)

	forged := n
	forged.CreatedAt = time.Time{}
	forged.UpdatedAt = july15.AddDate(1, 0, 0)
	got, err := s.Update(forged)
	require.NoError(t, err)
	assert.Equal(t, n.CreatedAt, got.CreatedAt)
	assert.True(t, got.UpdatedAt.Before(forged.UpdatedAt))
}

func TestUnknownID_Strict(t *testing.T) {
	s, _, _ := newTestStore(t, true)

	_, err := s.Update(Note{ID: "missing", Title: "x", Date: july15})
	assert.ErrorIs(t, err, ErrNotFound)

	var nf *NotFoundError
	require.ErrorAs(t, s.Delete("missing"), &nf)
	assert.Equal(t, "missing", nf.ID)

	_, err = s.TogglePin("missing")
	assert.True(t, IsNotFound(err))
}

func TestUnknownID_Lenient(t *testing.T) {
	s, _, _ := newTestStore(t, false)

	n, err := s.Update(Note{ID: "missing", Title: "x", Date: july15})
	assert.NoError(t, err)
	assert.Empty(t, n.ID)
	assert.NoError(t, s.Delete("missing"))
	assert.Equal(t, 1, s.Len())
}

func TestDelete_RemovesExactlyOne(t *testing.T) {
	s, _, _ := newTestStore(t, true)
	a, err := s.Add(draft("A", july15))
	require.NoError(t, err)
	_, err = s.Add(draft("B", july15))
	require.NoError(t, err)

	require.NoError(t, s.Delete(a.ID))
	assert.Equal(t, 2, s.Len())
	_, err = s.Get(a.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(a.ID), ErrNotFound)
	assert.Equal(t, 2, s.Len())
}

func TestSaveFailureLeavesStateUntouched(t *testing.T) {
	p := &flakyPersistence{KVPersistence: NewKVPersistence(storage.NewMemory())}
	clock := &fakeClock{t: july15}
	s, err := Open(p, Options{Strict: true, Now: clock.Now, IDs: sequentialIDs()})
	require.NoError(t, err)
	before := s.List()

	p.fail = true
	_, err = s.Add(draft("lost", july15))
	assert.ErrorContains(t, err, "disk full")
	assert.ErrorContains(t, s.Delete(before[0].ID), "disk full")
	_, err = s.TogglePin(before[0].ID)
	assert.Error(t, err)

	assert.Equal(t, before, s.List())

	p.fail = false
	require.NoError(t, s.Reload())
	after := s.List()
	require.Len(t, after, 1)
	assert.Equal(t, before[0].ID, after[0].ID)
	assert.Equal(t, before[0].IsPinned, after[0].IsPinned)
}

func TestOnChange_FiresAfterSave(t *testing.T) {
	kv := storage.NewMemory()
	var events []Event
	var s *Store
	s, err := Open(NewKVPersistence(kv), Options{
		Strict: true,
		OnChange: func(e Event) {
			// the store is readable from the callback
			assert.NotNil(t, s.List())
			events = append(events, e)
		},
	})
	require.NoError(t, err)

	n, err := s.Add(draft("A", july15))
	require.NoError(t, err)
	_, err = s.ToggleComplete(n.ID)
	require.NoError(t, err)
	require.NoError(t, s.Delete(n.ID))

	require.Len(t, events, 3)
	assert.Equal(t, Added, events[0].Type)
	assert.Equal(t, Updated, events[1].Type)
	assert.True(t, events[1].Note.IsCompleted)
	assert.Equal(t, Deleted, events[2].Type)
	assert.Equal(t, n.ID, events[2].Note.ID)
	assert.Equal(t, "deleted", events[2].Type.String())
}

func TestToggles(t *testing.T) {
	s, _, _ := newTestStore(t, true)
	n, err := s.Add(draft("A", july15))
	require.NoError(t, err)

	pinned, err := s.TogglePin(n.ID)
	require.NoError(t, err)
	assert.True(t, pinned.IsPinned)
	assert.Equal(t, n.Title, pinned.Title)

	unpinned, err := s.TogglePin(n.ID)
	require.NoError(t, err)
	assert.False(t, unpinned.IsPinned)
	assert.True(t, unpinned.UpdatedAt.After(pinned.UpdatedAt))
}

func TestReturnedNotesDoNotAliasStore(t *testing.T) {
	s, _, _ := newTestStore(t, true)
	n, err := s.Add(draft("A", july15))
	require.NoError(t, err)

	n.Tags[0] = "mutated"
	list := s.List()
	list[1].Tags[0] = "mutated too"

	got, err := s.Get(n.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"work"}, got.Tags)
}

func TestTags_FirstSeenOrder(t *testing.T) {
	s, _, _ := newTestStore(t, true)
	_, err := s.Add(Draft{Title: "A", Date: july15, Tags: []string{"work", "idea"}})
	require.NoError(t, err)
	_, err = s.Add(Draft{Title: "B", Date: july15, Tags: []string{"idea", "task"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"welcome", "work", "idea", "task"}, s.Tags())
}

func TestNotesOnDate_MatchesCalendarDayOnly(t *testing.T) {
	s, _, _ := newTestStore(t, true)
	f := gofakeit.New(42)

	start := time.Date(2025, time.July, 13, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 0, 5)
	for i := 0; i < 60; i++ {
		_, err := s.Add(Draft{
			Title:   f.Sentence(4),
			Content: f.Paragraph(1, 2, 8, " "),
			Date:    f.DateRange(start, end).Local(),
		})
		require.NoError(t, err)
	}

	all := s.List()
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		got := s.NotesOnDate(day.Add(17 * time.Hour))

		want := 0
		for _, n := range all {
			if n.Date.Year() == day.Year() && n.Date.Month() == day.Month() && n.Date.Day() == day.Day() {
				want++
			}
		}
		assert.Len(t, got, want, day.Format(timeutil.DateKey))
		for _, n := range got {
			assert.Equal(t, day.Day(), n.Date.Day())
		}
	}
}

func TestNotesInRange_HalfOpen(t *testing.T) {
	s, _, _ := newTestStore(t, true)
	startOfDay := timeutil.StartOfDay(july15)
	_, err := s.Add(draft("midnight", startOfDay))
	require.NoError(t, err)
	_, err = s.Add(draft("next midnight", startOfDay.AddDate(0, 0, 1)))
	require.NoError(t, err)

	got := s.NotesInRange(startOfDay, startOfDay.AddDate(0, 0, 1))
	var titles []string
	for _, n := range got {
		titles = append(titles, n.Title)
	}
	assert.Contains(t, titles, "midnight")
	assert.NotContains(t, titles, "next midnight")
}
