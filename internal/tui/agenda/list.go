package agenda

import (
	"fmt"
	"strings"
	"time"

	"calnotes/internal/i18n"
	"calnotes/internal/notes"
	"calnotes/internal/query"
	"calnotes/internal/timeutil"
	"calnotes/internal/tui/messages"
	"calnotes/internal/tui/shared"
	"calnotes/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const previewWidth = 72

// ListModel is the note list panel: pinned notes first, then newest first,
// with fuzzy search.
type ListModel struct {
	now      func() time.Time
	locale   i18n.Locale
	allItems []notes.Note // sorted, before filtering
	items    []notes.Note // after search filter
	cursor   int
	width    int
	height   int

	// Search state
	searchActive     bool
	searchFilterMode bool
	searchInput      textinput.Model
	searchQuery      string
}

// NewListModel creates the note list.
func NewListModel(list []notes.Note, locale i18n.Locale, now func() time.Time) ListModel {
	si := textinput.New()
	si.Placeholder = i18n.T(locale, i18n.KeySearch)
	si.CharLimit = 100
	si.Width = 40

	m := ListModel{
		now:         now,
		locale:      locale,
		searchInput: si,
	}
	m.SetData(list, locale)
	return m
}

// SetSize updates the view dimensions
func (m *ListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetData replaces the notes and locale and reapplies the search.
func (m *ListModel) SetData(list []notes.Note, locale i18n.Locale) {
	m.locale = locale
	m.searchInput.Placeholder = i18n.T(locale, i18n.KeySearch)
	m.allItems = query.SortForList(list)
	m.applySearchFilter()
}

func (m *ListModel) applySearchFilter() {
	m.items = query.Search(m.allItems, m.searchQuery)

	// Clamp cursor
	if m.cursor >= len(m.items) {
		m.cursor = max(0, len(m.items)-1)
	}
}

// Items returns the notes currently listed.
func (m ListModel) Items() []notes.Note {
	return m.items
}

// Date returns the day of the selected note, or today.
func (m ListModel) Date() time.Time {
	if n, ok := m.Selected(); ok {
		return timeutil.StartOfDay(n.Date)
	}
	return timeutil.StartOfDay(m.now())
}

// Selected returns the note under the cursor.
func (m ListModel) Selected() (notes.Note, bool) {
	if m.cursor >= len(m.items) {
		return notes.Note{}, false
	}
	return m.items[m.cursor], true
}

// IsSearching returns true while the search input has focus, so the app
// leaves every key to the list.
func (m ListModel) IsSearching() bool {
	return m.searchActive && m.searchFilterMode
}

// HintText returns hint text for the current state
func (m ListModel) HintText() string {
	if m.searchActive {
		if m.searchFilterMode {
			return "type to filter  enter:confirm  esc:exit"
		}
		return "/:edit filter  j/k:navigate  enter:edit  esc:clear"
	}
	return ""
}

// Update handles key events for the list
func (m ListModel) Update(msg tea.Msg) (ListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searchActive && m.searchFilterMode {
			return m.handleSearchInput(msg)
		}

		switch msg.String() {
		case "/":
			m.searchActive = true
			m.searchFilterMode = true
			m.searchInput.SetValue(m.searchQuery)
			cmd := m.searchInput.Focus()
			return m, cmd
		case "esc":
			if m.searchActive {
				m.clearSearch()
			}
		case "j", "down":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "g", "home":
			m.cursor = 0
		case "G", "end":
			m.cursor = max(0, len(m.items)-1)
		case "enter":
			if n, ok := m.Selected(); ok {
				return m, messages.Edit(n)
			}
		case "o":
			if n, ok := m.Selected(); ok {
				return m, messages.OpenDay(n.Date)
			}
		}
	}
	return m, nil
}

func (m ListModel) handleSearchInput(msg tea.KeyMsg) (ListModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchFilterMode = false
		m.searchInput.Blur()
		if m.searchQuery == "" {
			m.searchActive = false
		}
		return m, nil
	case "esc":
		m.clearSearch()
		return m, nil
	default:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.searchQuery = m.searchInput.Value()
		m.cursor = 0
		m.applySearchFilter()
		return m, cmd
	}
}

func (m *ListModel) clearSearch() {
	m.searchInput.SetValue("")
	m.searchInput.Blur()
	m.searchQuery = ""
	m.searchActive = false
	m.searchFilterMode = false
	m.applySearchFilter()
}

// View renders the list
func (m ListModel) View() string {
	var sb strings.Builder

	title := theme.Title.Render(fmt.Sprintf(" %s (%d)", i18n.T(m.locale, i18n.KeyNotes), len(m.allItems)))
	sb.WriteString(title)
	sb.WriteString("  ")
	sb.WriteString(navHintStyle().Render("[j/k: navigate] [/: search] [enter: edit] [o: day view]"))
	sb.WriteString("\n")

	if m.searchActive {
		if m.searchFilterMode {
			sb.WriteString("  " + m.searchInput.View())
		} else if m.searchQuery != "" {
			sb.WriteString("  " + searchLabelStyle().Render("Filter: ") + m.searchQuery)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if len(m.items) == 0 {
		key := i18n.KeyClickAddNote
		if m.searchQuery != "" {
			key = i18n.KeyNoMatches
		}
		sb.WriteString(emptyStyle().Render("  " + i18n.T(m.locale, key)))
		sb.WriteString("\n")
		return m.layout(sb.String())
	}

	for i, n := range m.items {
		selected := i == m.cursor
		sb.WriteString("  ")
		sb.WriteString(theme.Muted.Render(timeutil.FormatDate(n.Date, m.locale)))
		sb.WriteString(" ")
		sb.WriteString(RenderNoteLine(n, selected, m.width-24, m.locale))
		sb.WriteString("\n")
		if preview := query.Preview(n.Content, previewWidth); preview != "" && selected {
			sb.WriteString("      " + theme.Muted.Render(preview) + "\n")
		}
	}

	return m.layout(sb.String())
}

func (m ListModel) layout(content string) string {
	if hints := m.HintText(); hints != "" {
		return shared.CenterWithBottomHints(content, navHintStyle().Render(hints), m.height)
	}
	return shared.CenterContent(content, m.height)
}
