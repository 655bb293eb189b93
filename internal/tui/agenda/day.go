package agenda

import (
	"fmt"
	"strings"
	"time"

	"calnotes/internal/calendar"
	"calnotes/internal/i18n"
	"calnotes/internal/notes"
	"calnotes/internal/timeutil"
	"calnotes/internal/tui/messages"
	"calnotes/internal/tui/shared"
	"calnotes/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
)

// dayChrome is the number of lines the day view uses besides hour rows.
const dayChrome = 3

// DayModel is the hourly timeline of a single day.
type DayModel struct {
	now      func() time.Time
	locale   i18n.Locale
	date     time.Time
	notes    []notes.Note
	schedule calendar.Schedule
	items    []notes.Note // flattened in hour order for cursor navigation
	cursor   int
	width    int
	height   int
}

// NewDayModel creates a new day view on today.
func NewDayModel(list []notes.Note, locale i18n.Locale, now func() time.Time) DayModel {
	m := DayModel{
		now:    now,
		locale: locale,
		date:   timeutil.StartOfDay(now()),
		notes:  list,
	}
	m.refreshData()
	return m
}

func (m *DayModel) refreshData() {
	m.schedule = calendar.BuildDay(m.date, m.notes, m.now())
	m.items = nil
	for _, slot := range m.schedule.Hours {
		m.items = append(m.items, slot.Notes...)
	}

	// Clamp cursor
	if m.cursor >= len(m.items) {
		m.cursor = max(0, len(m.items)-1)
	}
}

// SetSize updates the view dimensions
func (m *DayModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetData replaces the notes and locale and refreshes
func (m *DayModel) SetData(list []notes.Note, locale i18n.Locale) {
	m.notes = list
	m.locale = locale
	m.refreshData()
}

// Date returns the day being shown.
func (m DayModel) Date() time.Time {
	return m.date
}

// SetDate moves the view to date.
func (m *DayModel) SetDate(date time.Time) {
	m.date = timeutil.StartOfDay(date)
	m.cursor = 0
	m.refreshData()
}

// Schedule exposes the hour slots being shown.
func (m DayModel) Schedule() calendar.Schedule {
	return m.schedule
}

// Selected returns the note under the cursor.
func (m DayModel) Selected() (notes.Note, bool) {
	if m.cursor >= len(m.items) {
		return notes.Note{}, false
	}
	return m.items[m.cursor], true
}

// Update handles key events for the day view
func (m DayModel) Update(msg tea.Msg) (DayModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "h", "left":
			m.SetDate(calendar.DayMode.Prev(m.date))
		case "l", "right":
			m.SetDate(calendar.DayMode.Next(m.date))
		case "H":
			m.SetDate(calendar.WeekMode.Prev(m.date))
		case "L":
			m.SetDate(calendar.WeekMode.Next(m.date))
		case "t":
			m.SetDate(m.now())
		case "j", "down":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter":
			if n, ok := m.Selected(); ok {
				return m, messages.Edit(n)
			}
		}
	}
	return m, nil
}

// View renders the day timeline. When the terminal is too short for all 24
// hours only the hours with notes and the current hour are shown.
func (m DayModel) View() string {
	var sb strings.Builder

	d := m.schedule.Day
	header := fmt.Sprintf(" %s: %s, %s", i18n.T(m.locale, i18n.KeyTimeline), timeutil.WeekdayLong(d.Date.Weekday(), m.locale), timeutil.FormatDate(d.Date, m.locale))
	sb.WriteString(theme.Title.Render(header))
	if d.IsToday {
		sb.WriteString(" " + theme.Ok.Render("("+i18n.T(m.locale, i18n.KeyToday)+")"))
	}
	sb.WriteString("  ")
	sb.WriteString(navHintStyle().Render("[h/l: day] [H/L: week] [j/k: navigate] [t: today] [enter: edit]"))
	sb.WriteString("\n\n")

	now := m.now()
	currentHour := -1
	if d.IsToday {
		currentHour = now.Hour()
	}
	compact := m.height > 0 && m.height < 24+len(m.items)+dayChrome

	if len(m.items) == 0 && currentHour < 0 {
		sb.WriteString(emptyStyle().Render("  " + i18n.T(m.locale, i18n.KeyNoNotes)))
		sb.WriteString("\n")
		return shared.CenterContent(sb.String(), m.height)
	}

	cursorIdx := 0
	for _, slot := range m.schedule.Hours {
		isCurrent := slot.Hour == currentHour
		if compact && len(slot.Notes) == 0 && !isCurrent {
			continue
		}

		label := hourStyle(isCurrent).Render(fmt.Sprintf(" %02d:00 │", slot.Hour))
		if len(slot.Notes) == 0 {
			sb.WriteString(label)
			if isCurrent {
				sb.WriteString(" " + emptyStyle().Render(i18n.T(m.locale, i18n.KeyCurrentHour)))
			}
			sb.WriteString("\n")
			continue
		}

		for i, n := range slot.Notes {
			if i == 0 {
				sb.WriteString(label)
			} else {
				sb.WriteString(hourStyle(false).Render("       │"))
			}
			sb.WriteString(" ")
			sb.WriteString(RenderNoteLine(n, cursorIdx == m.cursor, m.width-10, m.locale))
			sb.WriteString("\n")
			cursorIdx++
		}
	}

	return shared.CenterContent(sb.String(), m.height)
}
