package messages

import (
	"time"

	"calnotes/internal/notes"

	tea "github.com/charmbracelet/bubbletea"
)

// ViewType represents the different views in the application
type ViewType int

const (
	ViewMonth ViewType = iota
	ViewWeek
	ViewDay
	ViewList
)

// ParseView maps a config default_view value onto a ViewType.
func ParseView(s string) ViewType {
	switch s {
	case "week":
		return ViewWeek
	case "day":
		return ViewDay
	case "list":
		return ViewList
	default:
		return ViewMonth
	}
}

// SwitchViewMsg is sent by child views to switch to a different view
type SwitchViewMsg struct {
	View ViewType
	// Date, when set, moves the target view to this day.
	Date time.Time
}

// OpenEditorMsg asks the app to open the note editor. A nil Note starts a
// new note on Date.
type OpenEditorMsg struct {
	Note *notes.Note
	Date time.Time
}

// DeleteRequestMsg asks the app to confirm deleting a note.
type DeleteRequestMsg struct {
	Note notes.Note
}

// TogglePinMsg asks the app to flip a note's pinned flag.
type TogglePinMsg struct {
	ID string
}

// ToggleCompleteMsg asks the app to flip a note's completed flag.
type ToggleCompleteMsg struct {
	ID string
}

// DataRefreshMsg signals that data should be reloaded
type DataRefreshMsg struct{}

func SwitchView(v ViewType) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{View: v}
	}
}

// OpenDay switches to the day view on date.
func OpenDay(date time.Time) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{View: ViewDay, Date: date}
	}
}

// Edit opens the editor on n.
func Edit(n notes.Note) tea.Cmd {
	return func() tea.Msg {
		return OpenEditorMsg{Note: &n}
	}
}
