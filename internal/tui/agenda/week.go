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

// WeekModel lists the seven days of a Monday-first week with their notes.
type WeekModel struct {
	now    func() time.Time
	locale i18n.Locale
	date   time.Time // any date in the week being viewed
	notes  []notes.Note
	week   calendar.Week
	items  []notes.Note // flattened across the week, for cursor navigation
	cursor int
	width  int
	height int
}

// NewWeekModel creates a new week view on the current week.
func NewWeekModel(list []notes.Note, locale i18n.Locale, now func() time.Time) WeekModel {
	m := WeekModel{
		now:    now,
		locale: locale,
		date:   timeutil.StartOfDay(now()),
		notes:  list,
	}
	m.refreshData()
	return m
}

func (m *WeekModel) refreshData() {
	m.week = calendar.BuildWeek(m.date, m.notes, m.now())

	byDay := make(map[string][]notes.Note)
	for _, b := range calendar.QueryAgenda(m.notes, calendar.WeekRange(m.date)) {
		byDay[b.Date.Format(timeutil.DateKey)] = b.AllItems()
	}
	m.items = nil
	for i := range m.week {
		day := m.week[i].Date.Format(timeutil.DateKey)
		m.week[i].Notes = byDay[day]
		m.items = append(m.items, byDay[day]...)
	}

	// Clamp cursor
	if m.cursor >= len(m.items) {
		m.cursor = max(0, len(m.items)-1)
	}
}

// SetSize updates the view dimensions
func (m *WeekModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetData replaces the notes and locale and refreshes
func (m *WeekModel) SetData(list []notes.Note, locale i18n.Locale) {
	m.notes = list
	m.locale = locale
	m.refreshData()
}

// Date returns the day of the selected note, or the anchor date when the
// week is empty.
func (m WeekModel) Date() time.Time {
	if n, ok := m.Selected(); ok {
		return timeutil.StartOfDay(n.Date)
	}
	return m.date
}

// SetDate moves the view to the week containing date.
func (m *WeekModel) SetDate(date time.Time) {
	m.date = timeutil.StartOfDay(date)
	m.cursor = 0
	m.refreshData()
}

// Week exposes the days being shown.
func (m WeekModel) Week() calendar.Week {
	return m.week
}

// Selected returns the note under the cursor.
func (m WeekModel) Selected() (notes.Note, bool) {
	if m.cursor >= len(m.items) {
		return notes.Note{}, false
	}
	return m.items[m.cursor], true
}

// Update handles key events for the week view
func (m WeekModel) Update(msg tea.Msg) (WeekModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "h", "left", "H":
			m.SetDate(calendar.WeekMode.Prev(m.date))
		case "l", "right", "L":
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
		case "o":
			return m, messages.OpenDay(m.Date())
		}
	}
	return m, nil
}

// View renders the week view
func (m WeekModel) View() string {
	var sb strings.Builder

	start := m.week[0].Date
	title := theme.Title.Render(fmt.Sprintf(" %s %s", i18n.T(m.locale, i18n.KeyWeekOf), timeutil.FormatDate(start, m.locale)))
	sb.WriteString(title)
	sb.WriteString("  ")
	sb.WriteString(navHintStyle().Render("[h/l: week] [j/k: navigate] [t: today] [enter: edit] [o: day view]"))
	sb.WriteString("\n\n")

	cursorIdx := 0
	for _, day := range m.week {
		header := fmt.Sprintf(" %s %s", timeutil.WeekdayLong(day.Date.Weekday(), m.locale), timeutil.FormatDate(day.Date, m.locale))
		if day.IsToday {
			sb.WriteString(theme.Ok.Render(header + " (" + i18n.T(m.locale, i18n.KeyToday) + ")"))
		} else {
			sb.WriteString(theme.Subtitle.Render(header))
		}
		if len(day.Notes) > 0 {
			sb.WriteString(" " + theme.Muted.Render(fmt.Sprintf("(%d)", len(day.Notes))))
		}
		sb.WriteString("\n")

		if len(day.Notes) == 0 {
			sb.WriteString("   " + emptyStyle().Render("-") + "\n")
			continue
		}
		for _, n := range day.Notes {
			sb.WriteString("   ")
			sb.WriteString(RenderNoteLine(n, cursorIdx == m.cursor, m.width-4, m.locale))
			sb.WriteString("\n")
			cursorIdx++
		}
	}

	return shared.CenterContent(sb.String(), m.height)
}
