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
	"calnotes/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MonthModel is the month calendar grid with a detail panel for the day
// under the cursor.
type MonthModel struct {
	now        func() time.Time
	locale     i18n.Locale
	notes      []notes.Note
	grid       calendar.Month
	cursorDate time.Time // the day under cursor in the calendar
	// Detail panel: notes of the cursor day
	detailItems []notes.Note
	detailIdx   int  // cursor within detail panel
	inDetail    bool // true when navigating in the detail panel
	width       int
	height      int
}

// NewMonthModel creates a new month view positioned on today.
func NewMonthModel(list []notes.Note, locale i18n.Locale, now func() time.Time) MonthModel {
	m := MonthModel{
		now:        now,
		locale:     locale,
		notes:      list,
		cursorDate: timeutil.StartOfDay(now()),
	}
	m.refreshData()
	return m
}

func (m *MonthModel) refreshData() {
	m.grid = calendar.BuildMonthGrid(m.cursorDate, m.notes, m.now())
	m.grid.Select(m.cursorDate)
	m.refreshDetail()
}

func (m *MonthModel) refreshDetail() {
	m.detailItems = nil
	for _, b := range calendar.QueryAgenda(m.notes, calendar.DayRange(m.cursorDate)) {
		m.detailItems = append(m.detailItems, b.AllItems()...)
	}
	if m.detailIdx >= len(m.detailItems) {
		m.detailIdx = max(0, len(m.detailItems)-1)
	}
	if len(m.detailItems) == 0 {
		m.inDetail = false
	}
}

// SetSize updates the view dimensions
func (m *MonthModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetData replaces the notes and locale and refreshes
func (m *MonthModel) SetData(list []notes.Note, locale i18n.Locale) {
	m.notes = list
	m.locale = locale
	m.refreshData()
}

// Date returns the day under the cursor.
func (m MonthModel) Date() time.Time {
	return m.cursorDate
}

// SetDate moves the cursor to date.
func (m *MonthModel) SetDate(date time.Time) {
	m.cursorDate = timeutil.StartOfDay(date)
	m.refreshData()
}

// Grid exposes the month being shown.
func (m MonthModel) Grid() calendar.Month {
	return m.grid
}

// Selected returns the note under the detail cursor.
func (m MonthModel) Selected() (notes.Note, bool) {
	if !m.inDetail || m.detailIdx >= len(m.detailItems) {
		return notes.Note{}, false
	}
	return m.detailItems[m.detailIdx], true
}

// InDetail reports whether keys go to the detail panel.
func (m MonthModel) InDetail() bool {
	return m.inDetail
}

// Update handles key events for the month view
func (m MonthModel) Update(msg tea.Msg) (MonthModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.inDetail {
			return m.updateDetail(msg)
		}
		return m.updateCalendar(msg)
	}
	return m, nil
}

func (m MonthModel) updateCalendar(msg tea.KeyMsg) (MonthModel, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		m.moveCursor(m.cursorDate.AddDate(0, 0, -1))
	case "l", "right":
		m.moveCursor(m.cursorDate.AddDate(0, 0, 1))
	case "k", "up":
		m.moveCursor(m.cursorDate.AddDate(0, 0, -7))
	case "j", "down":
		m.moveCursor(m.cursorDate.AddDate(0, 0, 7))
	case "H":
		m.cursorDate = calendar.MonthMode.Prev(m.cursorDate)
		m.refreshData()
	case "L":
		m.cursorDate = calendar.MonthMode.Next(m.cursorDate)
		m.refreshData()
	case "t":
		m.cursorDate = timeutil.StartOfDay(m.now())
		m.refreshData()
	case "enter":
		// Enter detail panel if there are items
		if len(m.detailItems) > 0 {
			m.inDetail = true
			m.detailIdx = 0
		}
	case "o":
		return m, messages.OpenDay(m.cursorDate)
	}
	return m, nil
}

func (m MonthModel) updateDetail(msg tea.KeyMsg) (MonthModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.detailIdx < len(m.detailItems)-1 {
			m.detailIdx++
		}
	case "k", "up":
		if m.detailIdx > 0 {
			m.detailIdx--
		}
	case "esc":
		m.inDetail = false
	case "enter":
		if n, ok := m.Selected(); ok {
			return m, messages.Edit(n)
		}
	}
	return m, nil
}

// moveCursor keeps the grid in step with the cursor, rebuilding it when the
// cursor crosses into another month.
func (m *MonthModel) moveCursor(date time.Time) {
	sameMonth := date.Year() == m.cursorDate.Year() && date.Month() == m.cursorDate.Month()
	m.cursorDate = date
	if !sameMonth {
		m.refreshData()
		return
	}
	m.grid.Select(date)
	m.refreshDetail()
}

// View renders the month view
func (m MonthModel) View() string {
	var sb strings.Builder

	// Title line
	title := theme.Title.Render(" " + timeutil.FormatMonthTitle(m.cursorDate, m.locale))
	nav := navHintStyle().Render("[h/l: day] [k/j: week] [H/L: month] [t: today] [enter: detail] [o: day view]")

	titleLine := title
	padding := m.width - lipgloss.Width(title) - lipgloss.Width(nav) - 1
	if padding > 0 {
		titleLine += strings.Repeat(" ", padding) + nav
	}
	sb.WriteString(titleLine)
	sb.WriteString("\n\n")

	sb.WriteString(m.renderCalendar())
	sb.WriteString("\n")

	sb.WriteString(m.renderDetailPanel())

	return sb.String()
}

func (m MonthModel) renderCalendar() string {
	var sb strings.Builder

	for _, d := range i18n.For(m.locale).WeekdaysShort {
		sb.WriteString(calDayHeaderStyle().Render(d))
	}
	sb.WriteString("\n")

	for _, week := range m.grid.Weeks {
		for _, day := range week {
			dayStr := fmt.Sprintf("%2d", day.Date.Day())
			if len(day.Notes) > 0 {
				dayStr = fmt.Sprintf("%2d•", day.Date.Day())
			}

			switch {
			case day.IsSelected:
				sb.WriteString(calCursorStyle().Render(dayStr))
			case !day.IsCurrentMonth:
				sb.WriteString(calOtherMonthStyle().Render(dayStr))
			case day.IsToday:
				sb.WriteString(calTodayStyle().Render(dayStr))
			case len(day.Notes) > 0:
				sb.WriteString(calHasItemsStyle().Render(dayStr))
			default:
				sb.WriteString(calDayStyle().Render(dayStr))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m MonthModel) renderDetailPanel() string {
	var sb strings.Builder

	dateStr := timeutil.WeekdayLong(m.cursorDate.Weekday(), m.locale) + ", " + timeutil.FormatDate(m.cursorDate, m.locale)
	header := theme.Subtitle.Render(" " + dateStr)

	if len(m.detailItems) == 0 {
		sb.WriteString(header)
		sb.WriteString("  ")
		sb.WriteString(emptyStyle().Render(i18n.T(m.locale, i18n.KeyNoNotes)))
		sb.WriteString("\n")
		return sb.String()
	}

	countStr := theme.Muted.Render(fmt.Sprintf("(%d)", len(m.detailItems)))
	sb.WriteString(header + " " + countStr)
	if m.inDetail {
		sb.WriteString("  " + navHintStyle().Render("[j/k: navigate] [enter: edit] [esc: back]"))
	}
	sb.WriteString("\n")

	for i, n := range m.detailItems {
		selected := m.inDetail && i == m.detailIdx
		sb.WriteString("     ")
		sb.WriteString(RenderNoteLine(n, selected, m.width-6, m.locale))
		sb.WriteString("\n")
	}

	return sb.String()
}
