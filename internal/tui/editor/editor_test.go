package editor

import (
	"strings"
	"testing"
	"time"

	"calnotes/internal/i18n"
	"calnotes/internal/notes"

	tea "github.com/charmbracelet/bubbletea"
)

var day = time.Date(2025, time.July, 15, 10, 7, 0, 0, time.Local)

func TestShiftClockSnapsToStep(t *testing.T) {
	m := New(day, i18n.TR, 15)

	m.shiftClock(1)
	if got := m.clock.Value(); got != "10:15" {
		t.Errorf("expected 10:15, got %s", got)
	}
	m.shiftClock(-1)
	if got := m.clock.Value(); got != "10:00" {
		t.Errorf("expected 10:00, got %s", got)
	}

	m.clock.SetValue("00:00")
	m.shiftClock(-1)
	if got := m.clock.Value(); got != "23:45" {
		t.Errorf("expected wrap to 23:45, got %s", got)
	}
}

func TestShiftDate(t *testing.T) {
	m := New(day, i18n.TR, 5)

	m.shiftDate(1)
	if got := m.date.Value(); got != "2025-07-16" {
		t.Errorf("expected 2025-07-16, got %s", got)
	}
	m.shiftDate(-16)
	if got := m.date.Value(); got != "2025-06-30" {
		t.Errorf("expected 2025-06-30, got %s", got)
	}
}

func TestCycleColorWraps(t *testing.T) {
	m := New(day, i18n.TR, 5)
	if m.color() != notes.DefaultColor {
		t.Fatalf("expected the default color, got %s", m.color())
	}

	m.cycleColor(-1)
	if want := notes.Palette[len(notes.Palette)-1].Value; m.color() != want {
		t.Errorf("expected %s, got %s", want, m.color())
	}
	m.cycleColor(1)
	if m.color() != notes.Palette[0].Value {
		t.Errorf("expected wrap back to %s, got %s", notes.Palette[0].Value, m.color())
	}
}

func TestCustomColorIsKept(t *testing.T) {
	n := notes.Note{ID: "a", Title: "x", Date: day, Color: "#123456"}
	m := Edit(n, i18n.EN, 5)

	if m.color() != "#123456" {
		t.Errorf("expected the stored color to survive, got %s", m.color())
	}
}

func TestDraftParsesFields(t *testing.T) {
	m := New(day, i18n.TR, 5)
	m.title.SetValue("Plan")
	m.tags.SetValue("work, idea,")
	m.reminder.SetValue("30m")
	m.clock.SetValue("14:30")

	d, err := m.Draft()
	if err != nil {
		t.Fatalf("draft: %v", err)
	}

	wantDate := time.Date(2025, time.July, 15, 14, 30, 0, 0, time.Local)
	if !d.Date.Equal(wantDate) {
		t.Errorf("expected %v, got %v", wantDate, d.Date)
	}
	if len(d.Tags) != 2 || d.Tags[0] != "work" || d.Tags[1] != "idea" {
		t.Errorf("unexpected tags %v", d.Tags)
	}
	if d.Reminder == nil || !d.Reminder.Equal(wantDate.Add(-30*time.Minute)) {
		t.Errorf("expected a reminder 30m before, got %v", d.Reminder)
	}
}

func TestDraftRejectsBadDateAndTime(t *testing.T) {
	m := New(day, i18n.EN, 5)
	m.title.SetValue("Plan")

	m.date.SetValue("2025-13-01")
	if _, err := m.Draft(); err == nil {
		t.Error("expected an invalid date to fail")
	}

	m.date.SetValue("2025-07-15")
	m.clock.SetValue("25:00")
	if _, err := m.Draft(); err == nil {
		t.Error("expected an invalid time to fail")
	}
}

func TestEditKeepsFlagsAndReminder(t *testing.T) {
	r := day.Add(-time.Hour)
	n := notes.Note{ID: "a", Title: "Review", Date: day, Reminder: &r, IsPinned: true, IsCompleted: true}
	m := Edit(n, i18n.TR, 5)

	if m.reminder.Value() != "09:07" {
		t.Errorf("expected the reminder as a clock, got %q", m.reminder.Value())
	}

	d, err := m.Draft()
	if err != nil {
		t.Fatalf("draft: %v", err)
	}
	if !d.IsPinned || !d.IsCompleted {
		t.Error("expected pinned and completed to carry over")
	}
	if d.Reminder == nil || !d.Reminder.Equal(r) {
		t.Errorf("expected reminder %v, got %v", r, d.Reminder)
	}
}

func TestSaveWithoutTitleShowsError(t *testing.T) {
	m := New(day, i18n.TR, 5)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Fatal("expected no result for an invalid note")
	}
	if m.err == "" {
		t.Error("expected a validation error")
	}
	if !strings.Contains(m.View(), m.err) {
		t.Error("expected the error to be rendered")
	}
}

func TestSaveAndCancelEmitResults(t *testing.T) {
	n := notes.Note{ID: "a", Title: "Review", Date: day}
	m := Edit(n, i18n.TR, 5)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatal("expected a save result")
	}
	res, ok := cmd().(ResultMsg)
	if !ok || !res.Saved || res.ID != "a" || res.Draft.Title != "Review" {
		t.Errorf("unexpected result %+v", res)
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	res, ok = cmd().(ResultMsg)
	if !ok || !res.Cancelled {
		t.Errorf("expected a cancel result, got %+v", res)
	}
}

func TestTabCyclesFocus(t *testing.T) {
	m := New(day, i18n.TR, 5)

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != fieldReminder {
		t.Errorf("expected shift+tab to wrap to the reminder, got %d", m.focus)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != fieldTitle {
		t.Errorf("expected tab to wrap to the title, got %d", m.focus)
	}
}
