package editor

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"calnotes/internal/config"
	"calnotes/internal/i18n"
	"calnotes/internal/notes"
	"calnotes/internal/timeutil"
	"calnotes/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type field int

const (
	fieldTitle field = iota
	fieldContent
	fieldDate
	fieldTime
	fieldColor
	fieldTags
	fieldReminder
	fieldCount
)

const clockLayout = "15:04"

// Model edits a new or existing note.
type Model struct {
	id       string // empty for a new note
	base     notes.Draft
	locale   i18n.Locale
	step     int
	focus    field
	title    textinput.Model
	content  textarea.Model
	date     textinput.Model
	clock    textinput.Model
	tags     textinput.Model
	reminder textinput.Model
	colorIdx int
	custom   string // a stored color outside the palette
	err      string
	Width    int
	Height   int
}

// ResultMsg is sent when the editor closes
type ResultMsg struct {
	ID        string
	Draft     notes.Draft
	Saved     bool
	Cancelled bool
}

// New opens the editor on an empty note dated date.
func New(date time.Time, locale i18n.Locale, minuteStep int) *Model {
	return newModel("", notes.Draft{Date: date, Color: notes.DefaultColor}, locale, minuteStep)
}

// Edit opens the editor on n.
func Edit(n notes.Note, locale i18n.Locale, minuteStep int) *Model {
	return newModel(n.ID, n.Draft(), locale, minuteStep)
}

func newModel(id string, d notes.Draft, locale i18n.Locale, minuteStep int) *Model {
	if minuteStep <= 0 {
		minuteStep = 5
	}
	m := &Model{id: id, base: d, locale: locale, step: minuteStep, Width: 64}

	m.title = newInput(i18n.T(locale, i18n.KeyTitle), 200)
	m.title.SetValue(d.Title)

	m.content = textarea.New()
	m.content.Placeholder = i18n.T(locale, i18n.KeyContent)
	m.content.ShowLineNumbers = false
	m.content.CharLimit = 20000
	m.content.SetHeight(5)
	m.content.SetValue(d.Content)

	m.date = newInput("YYYY-MM-DD", 10)
	m.date.SetValue(d.Date.Format(timeutil.DateKey))

	m.clock = newInput("HH:mm", 5)
	m.clock.SetValue(d.Date.Format(clockLayout))

	m.tags = newInput(strings.Join(notes.TagOptions, ", "), 200)
	m.tags.SetValue(strings.Join(d.Tags, ", "))

	m.reminder = newInput("15m, HH:mm", 16)
	if d.Reminder != nil {
		m.reminder.SetValue(reminderText(*d.Reminder, d.Date))
	}

	m.colorIdx = slices.IndexFunc(notes.Palette, func(c notes.ColorOption) bool {
		return strings.EqualFold(c.Value, d.Color)
	})
	if m.colorIdx < 0 && d.Color != "" {
		m.custom = d.Color
	}

	m.setWidth(m.Width)
	m.focusField(fieldTitle)
	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = ""
	return ti
}

// reminderText shows a reminder on the note's own day as a clock and any
// other as a full date-time.
func reminderText(r, date time.Time) string {
	if timeutil.SameDay(r, date) {
		return r.Format(clockLayout)
	}
	return r.Format(timeutil.DateKey + " " + clockLayout)
}

// IsNew reports whether the editor is creating a note.
func (m *Model) IsNew() bool {
	return m.id == ""
}

// SetError shows err under the form, used when the store rejects a save.
func (m *Model) SetError(err error) {
	m.err = err.Error()
}

// SetSize updates the available space.
func (m *Model) SetSize(width, height int) {
	m.Height = height
	w := min(max(width-8, 40), 72)
	m.setWidth(w)
}

func (m *Model) setWidth(w int) {
	m.Width = w
	inner := w - 20
	m.title.Width = inner
	m.content.SetWidth(inner)
	m.date.Width = 12
	m.clock.Width = 6
	m.tags.Width = inner
	m.reminder.Width = 18
}

func (m *Model) focusField(f field) {
	m.focus = f
	m.title.Blur()
	m.content.Blur()
	m.date.Blur()
	m.clock.Blur()
	m.tags.Blur()
	m.reminder.Blur()

	switch f {
	case fieldTitle:
		m.title.Focus()
	case fieldContent:
		m.content.Focus()
	case fieldDate:
		m.date.Focus()
	case fieldTime:
		m.clock.Focus()
	case fieldTags:
		m.tags.Focus()
	case fieldReminder:
		m.reminder.Focus()
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateFocused(msg)
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return ResultMsg{ID: m.id, Cancelled: true} }
	case "ctrl+s":
		return m, m.save()
	case "tab":
		m.focusField((m.focus + 1) % fieldCount)
		return m, nil
	case "shift+tab":
		m.focusField((m.focus + fieldCount - 1) % fieldCount)
		return m, nil
	case "enter":
		if m.focus == fieldContent {
			break
		}
		if m.focus == fieldCount-1 {
			return m, m.save()
		}
		m.focusField(m.focus + 1)
		return m, nil
	case "up", "down":
		delta := 1
		if keyMsg.String() == "down" {
			delta = -1
		}
		switch m.focus {
		case fieldDate:
			m.shiftDate(delta)
			return m, nil
		case fieldTime:
			m.shiftClock(delta)
			return m, nil
		}
	case "left", "right", "h", "l", " ":
		if m.focus == fieldColor {
			delta := 1
			if k := keyMsg.String(); k == "left" || k == "h" {
				delta = -1
			}
			m.cycleColor(delta)
			return m, nil
		}
	}

	return m, m.updateFocused(msg)
}

func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
	case fieldContent:
		m.content, cmd = m.content.Update(msg)
	case fieldDate:
		m.date, cmd = m.date.Update(msg)
	case fieldTime:
		m.clock, cmd = m.clock.Update(msg)
	case fieldTags:
		m.tags, cmd = m.tags.Update(msg)
	case fieldReminder:
		m.reminder, cmd = m.reminder.Update(msg)
	}
	return cmd
}

func (m *Model) shiftDate(days int) {
	d, err := timeutil.ParseDate(m.date.Value())
	if err != nil {
		d = timeutil.StartOfDay(m.base.Date)
	}
	m.date.SetValue(d.AddDate(0, 0, days).Format(timeutil.DateKey))
}

// shiftClock moves the time by one minute step, snapping to the step grid.
func (m *Model) shiftClock(steps int) {
	h, mins, err := timeutil.ParseClock(m.clock.Value())
	if err != nil {
		h, mins = m.base.Date.Hour(), m.base.Date.Minute()
	}
	total := h*60 + mins
	total -= total % m.step
	total += steps * m.step
	total = (total%(24*60) + 24*60) % (24 * 60)
	m.clock.SetValue(fmt.Sprintf("%02d:%02d", total/60, total%60))
}

func (m *Model) cycleColor(delta int) {
	m.custom = ""
	n := len(notes.Palette)
	if m.colorIdx < 0 {
		m.colorIdx = 0
		return
	}
	m.colorIdx = ((m.colorIdx+delta)%n + n) % n
}

func (m *Model) color() string {
	if m.custom != "" {
		return m.custom
	}
	if m.colorIdx < 0 {
		return notes.DefaultColor
	}
	return notes.Palette[m.colorIdx].Value
}

// Draft assembles the form into a draft. Pinned and completed flags are
// carried over from the note being edited.
func (m *Model) Draft() (notes.Draft, error) {
	d := m.base
	d.Title = m.title.Value()
	d.Content = m.content.Value()
	d.Color = m.color()
	d.Tags = config.ParseCommaSeparated(m.tags.Value())

	day, err := timeutil.ParseDate(m.date.Value())
	if err != nil {
		return d, fmt.Errorf("%s: YYYY-MM-DD", i18n.T(m.locale, i18n.KeyDate))
	}
	d.Date, err = timeutil.Combine(day, m.clock.Value())
	if err != nil {
		return d, fmt.Errorf("%s: HH:mm", i18n.T(m.locale, i18n.KeyTime))
	}

	d.Reminder, err = timeutil.ParseReminder(m.reminder.Value(), d.Date)
	if err != nil {
		return d, fmt.Errorf("%s: %v", i18n.T(m.locale, i18n.KeyReminder), err)
	}
	return d, nil
}

func (m *Model) save() tea.Cmd {
	d, err := m.Draft()
	if err != nil {
		m.err = err.Error()
		return nil
	}
	if err := notes.Validate(d.Normalize()); err != nil {
		m.SetError(err)
		return nil
	}
	m.err = ""
	id := m.id
	return func() tea.Msg { return ResultMsg{ID: id, Draft: d, Saved: true} }
}

// View renders the editor modal
func (m *Model) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Width(14)
	activeLabel := labelStyle.Bold(true).Foreground(theme.Primary)

	label := func(f field, key i18n.Key) string {
		text := i18n.T(m.locale, key)
		if m.focus == f {
			return activeLabel.Render("> " + text)
		}
		return labelStyle.Render("  " + text)
	}

	var sb strings.Builder

	heading := i18n.KeyAddNote
	if !m.IsNew() {
		heading = i18n.KeyEditNote
	}
	sb.WriteString(theme.Title.Render(i18n.T(m.locale, heading)))
	sb.WriteString("\n\n")

	sb.WriteString(label(fieldTitle, i18n.KeyTitle) + m.title.View() + "\n")
	sb.WriteString(label(fieldContent, i18n.KeyContent) + "\n")
	sb.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(m.content.View()) + "\n")
	sb.WriteString(label(fieldDate, i18n.KeyDate) + m.date.View() + "\n")
	sb.WriteString(label(fieldTime, i18n.KeyTime) + m.clock.View())
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("  ↑/↓ %d min", m.step)) + "\n")
	sb.WriteString(label(fieldColor, i18n.KeyColor) + m.renderColors() + "\n")
	sb.WriteString(label(fieldTags, i18n.KeyTags) + m.tags.View() + "\n")
	if m.focus == fieldTags {
		sb.WriteString(strings.Repeat(" ", 14) + m.renderTagSuggestions() + "\n")
	}
	sb.WriteString(label(fieldReminder, i18n.KeyReminder) + m.reminder.View() + "\n")

	if m.err != "" {
		sb.WriteString("\n" + theme.Error.Render(m.err) + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(theme.ModalHelp.Render(fmt.Sprintf("tab: next field  ctrl+s: %s  esc: %s",
		i18n.T(m.locale, i18n.KeySave), i18n.T(m.locale, i18n.KeyCancel))))

	return theme.ModalBox.Width(m.Width).Render(sb.String())
}

func (m *Model) renderColors() string {
	var parts []string
	for i, c := range notes.Palette {
		swatch := theme.NoteColor(c.Value).Render("●")
		if i == m.colorIdx && m.custom == "" {
			swatch = "[" + swatch + "]"
		} else {
			swatch = " " + swatch + " "
		}
		parts = append(parts, swatch)
	}
	out := strings.Join(parts, "")
	if m.custom != "" {
		out += " " + theme.NoteColor(m.custom).Render("● "+m.custom)
	} else if m.colorIdx >= 0 {
		out += " " + theme.Muted.Render(notes.Palette[m.colorIdx].Name)
	}
	return out
}

func (m *Model) renderTagSuggestions() string {
	chosen := config.ParseCommaSeparated(m.tags.Value())
	var free []string
	for _, t := range notes.TagOptions {
		if !slices.Contains(chosen, t) {
			free = append(free, t)
		}
	}
	if len(free) == 0 {
		return ""
	}
	return theme.Muted.Render(strings.Join(free, " "))
}
