package tui

import (
	"fmt"
	"strings"
	"time"

	"calnotes/internal/config"
	"calnotes/internal/i18n"
	"calnotes/internal/logs"
	"calnotes/internal/notes"
	"calnotes/internal/remind"
	"calnotes/internal/settings"
	"calnotes/internal/storage"
	"calnotes/internal/timeutil"
	agendaview "calnotes/internal/tui/agenda"
	"calnotes/internal/tui/editor"
	"calnotes/internal/tui/messages"
	"calnotes/internal/tui/shared"
	"calnotes/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// statusTimeout is how long a status message stays in the status bar.
const statusTimeout = 3 * time.Second

// Deps are the services the TUI runs against.
type Deps struct {
	Config   *config.Config
	KV       storage.KV
	Store    *notes.Store
	Settings settings.Settings
	// Now defaults to time.Now.
	Now func() time.Time
}

type statusClearMsg struct{ seq int }

type reminderTickMsg time.Time

// AppModel is the root model that dispatches to child views
type AppModel struct {
	cfg         *config.Config
	kv          storage.KV
	store       *notes.Store
	settings    settings.Settings
	now         func() time.Time
	currentView ViewType
	monthView   agendaview.MonthModel
	weekView    agendaview.WeekModel
	dayView     agendaview.DayModel
	listView    agendaview.ListModel
	editor      *editor.Model
	confirm     *shared.ConfirmationModal
	pending     notes.Note // note awaiting delete confirmation
	status      string
	statusErr   bool
	statusSeq   int
	lastCheck   time.Time // end of the previous reminder window
	showHelp    bool
	width       int
	height      int
	ready       bool
}

// NewAppModel creates the root application model
func NewAppModel(d Deps) AppModel {
	now := d.Now
	if now == nil {
		now = time.Now
	}
	theme.Use(d.Settings.Theme)

	list := d.Store.List()
	locale := d.Settings.Locale

	return AppModel{
		cfg:         d.Config,
		kv:          d.KV,
		store:       d.Store,
		settings:    d.Settings,
		now:         now,
		currentView: messages.ParseView(d.Config.DefaultView),
		monthView:   agendaview.NewMonthModel(list, locale, now),
		weekView:    agendaview.NewWeekModel(list, locale, now),
		dayView:     agendaview.NewDayModel(list, locale, now),
		listView:    agendaview.NewListModel(list, locale, now),
		lastCheck:   now(),
	}
}

func (m AppModel) Init() tea.Cmd {
	return reminderTick()
}

func reminderTick() tea.Cmd {
	return tea.Every(time.Minute, func(t time.Time) tea.Msg {
		return reminderTickMsg(t)
	})
}

func (m AppModel) locale() i18n.Locale {
	return m.settings.Locale
}

func (m AppModel) t(key i18n.Key) string {
	return i18n.T(m.locale(), key)
}

// refresh pushes the store contents and the locale to every view.
func (m *AppModel) refresh() {
	list := m.store.List()
	m.monthView.SetData(list, m.locale())
	m.weekView.SetData(list, m.locale())
	m.dayView.SetData(list, m.locale())
	m.listView.SetData(list, m.locale())
}

func (m *AppModel) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}

func (m *AppModel) fail(action string, err error) tea.Cmd {
	logs.Logger.Error(action, "err", err)
	return m.setStatus(err.Error(), true)
}

// selected returns the note under the cursor of the current view.
func (m AppModel) selected() (notes.Note, bool) {
	switch m.currentView {
	case ViewMonth:
		return m.monthView.Selected()
	case ViewWeek:
		return m.weekView.Selected()
	case ViewDay:
		return m.dayView.Selected()
	case ViewList:
		return m.listView.Selected()
	}
	return notes.Note{}, false
}

// date returns the day the current view is focused on, used for new notes.
func (m AppModel) date() time.Time {
	switch m.currentView {
	case ViewMonth:
		return m.monthView.Date()
	case ViewWeek:
		return m.weekView.Date()
	case ViewDay:
		return m.dayView.Date()
	default:
		return m.listView.Date()
	}
}

func (m *AppModel) switchView(v ViewType, date time.Time) {
	m.currentView = v
	if date.IsZero() {
		return
	}
	switch v {
	case ViewMonth:
		m.monthView.SetDate(date)
	case ViewWeek:
		m.weekView.SetDate(date)
	case ViewDay:
		m.dayView.SetDate(date)
	}
}

func (m *AppModel) openEditor(msg OpenEditorMsg) tea.Cmd {
	if msg.Note != nil {
		m.editor = editor.Edit(*msg.Note, m.locale(), m.cfg.MinuteStep)
	} else {
		date := msg.Date
		if date.IsZero() {
			date = m.date()
		}
		m.editor = editor.New(timeutil.At(date, m.now(), m.cfg.MinuteStep), m.locale(), m.cfg.MinuteStep)
	}
	m.editor.SetSize(m.width, m.height)
	return m.editor.Init()
}

func (m *AppModel) saveEditor(msg editor.ResultMsg) tea.Cmd {
	if msg.ID == "" {
		if _, err := m.store.Add(msg.Draft); err != nil {
			m.editor.SetError(err)
			return nil
		}
		m.editor = nil
		m.refresh()
		return m.setStatus(m.t(i18n.KeyNoteAdded), false)
	}

	n, err := m.store.Get(msg.ID)
	if err != nil {
		m.editor = nil
		m.refresh()
		return m.fail("update note", err)
	}
	d := msg.Draft
	n.Title, n.Content, n.Date = d.Title, d.Content, d.Date
	n.Tags, n.Color, n.Reminder = d.Tags, d.Color, d.Reminder
	if _, err := m.store.Update(n); err != nil {
		m.editor.SetError(err)
		return nil
	}
	m.editor = nil
	m.refresh()
	return m.setStatus(m.t(i18n.KeyNoteUpdated), false)
}

func (m *AppModel) requestDelete(n notes.Note) {
	m.pending = n
	m.confirm = shared.NewConfirmationModal(m.t(i18n.KeyConfirmDelete), m.t(i18n.KeyConfirmMessage)+"\n\n  "+n.Title, 50)
	m.confirm.Yes = m.t(i18n.KeyDelete)
	m.confirm.No = m.t(i18n.KeyCancel)
}

func (m *AppModel) togglePin(id string) tea.Cmd {
	n, err := m.store.TogglePin(id)
	if err != nil {
		return m.fail("toggle pin", err)
	}
	m.refresh()
	if n.IsPinned {
		return m.setStatus(m.t(i18n.KeyPin), false)
	}
	return m.setStatus(m.t(i18n.KeyUnpin), false)
}

func (m *AppModel) toggleComplete(id string) tea.Cmd {
	n, err := m.store.ToggleComplete(id)
	if err != nil {
		return m.fail("toggle complete", err)
	}
	m.refresh()
	if n.IsCompleted {
		return m.setStatus(m.t(i18n.KeyMarkComplete), false)
	}
	return m.setStatus(m.t(i18n.KeyMarkIncomplete), false)
}

func (m *AppModel) toggleLocale() tea.Cmd {
	next := i18n.EN
	if m.locale() == i18n.EN {
		next = i18n.TR
	}
	if err := settings.SetLocale(m.kv, next); err != nil {
		return m.fail("save locale", err)
	}
	m.settings.Locale = next
	m.refresh()
	return m.setStatus(fmt.Sprintf("%s: %s", m.t(i18n.KeyLanguage), strings.ToUpper(next.String())), false)
}

func (m *AppModel) toggleTheme() tea.Cmd {
	next := m.settings.Theme.Toggle()
	if err := settings.SetTheme(m.kv, next); err != nil {
		return m.fail("save theme", err)
	}
	m.settings.Theme = next
	theme.Use(next)
	key := i18n.KeyLightMode
	if next == settings.Dark {
		key = i18n.KeyDarkMode
	}
	return m.setStatus(m.t(key), false)
}

// checkReminders reports reminders that fell due since the previous tick.
func (m *AppModel) checkReminders() tea.Cmd {
	now := m.now()
	due := remind.Due(m.store.List(), now, m.lastCheck)
	m.lastCheck = now
	if len(due) == 0 {
		return nil
	}
	titles := make([]string, len(due))
	for i, n := range due {
		titles[i] = n.Title
	}
	return m.setStatus(fmt.Sprintf("⏰ %s: %s", m.t(i18n.KeyReminder), strings.Join(titles, ", ")), false)
}

// childOwnsKeys reports whether the current view needs every key, such as
// while the list search input has focus.
func (m AppModel) childOwnsKeys() bool {
	return m.currentView == ViewList && m.listView.IsSearching()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	return m, cmd
}

// update applies msg to m in place. Update wraps it so the value returned to
// bubbletea is taken after every change.
func (m *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		contentHeight := msg.Height - 3 // Reserve space for tab bar and status bar
		m.monthView.SetSize(msg.Width, contentHeight)
		m.weekView.SetSize(msg.Width, contentHeight)
		m.dayView.SetSize(msg.Width, contentHeight)
		m.listView.SetSize(msg.Width, contentHeight)
		if m.editor != nil {
			m.editor.SetSize(msg.Width, msg.Height)
		}
		return nil

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return nil

	case reminderTickMsg:
		return tea.Batch(m.checkReminders(), reminderTick())

	case SwitchViewMsg:
		m.switchView(msg.View, msg.Date)
		return nil

	case OpenEditorMsg:
		return m.openEditor(msg)

	case editor.ResultMsg:
		if m.editor == nil {
			return nil
		}
		if msg.Cancelled {
			m.editor = nil
			return nil
		}
		return m.saveEditor(msg)

	case DeleteRequestMsg:
		m.requestDelete(msg.Note)
		return nil

	case shared.ConfirmationResultMsg:
		m.confirm = nil
		if !msg.Confirmed {
			return nil
		}
		if err := m.store.Delete(m.pending.ID); err != nil {
			return m.fail("delete note", err)
		}
		m.refresh()
		return m.setStatus(m.t(i18n.KeyNoteDeleted), false)

	case TogglePinMsg:
		return m.togglePin(msg.ID)

	case ToggleCompleteMsg:
		return m.toggleComplete(msg.ID)

	case DataRefreshMsg:
		if err := m.store.Reload(); err != nil {
			return m.fail("reload notes", err)
		}
		m.refresh()
		return nil

	case tea.KeyMsg:
		// Global keys: ctrl+c always quits
		if msg.String() == "ctrl+c" {
			return tea.Quit
		}

		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return nil
		}

		// Modals take every key
		if m.editor != nil {
			var cmd tea.Cmd
			m.editor, cmd = m.editor.Update(msg)
			return cmd
		}
		if m.confirm != nil {
			return m.confirm.Update(msg)
		}

		if !m.childOwnsKeys() {
			if cmd, handled := m.handleGlobalKey(msg); handled {
				return cmd
			}
		}

	default:
		if m.editor != nil {
			var cmd tea.Cmd
			m.editor, cmd = m.editor.Update(msg)
			return cmd
		}
	}

	// Dispatch to current child view
	var cmd tea.Cmd
	switch m.currentView {
	case ViewMonth:
		m.monthView, cmd = m.monthView.Update(msg)
	case ViewWeek:
		m.weekView, cmd = m.weekView.Update(msg)
	case ViewDay:
		m.dayView, cmd = m.dayView.Update(msg)
	case ViewList:
		m.listView, cmd = m.listView.Update(msg)
	}
	return cmd
}

func (m *AppModel) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "q":
		return tea.Quit, true
	case "?":
		m.showHelp = true
	case "1":
		m.switchView(ViewMonth, time.Time{})
	case "2":
		m.switchView(ViewWeek, time.Time{})
	case "3":
		m.switchView(ViewDay, time.Time{})
	case "4":
		m.switchView(ViewList, time.Time{})
	case "n":
		return m.openEditor(OpenEditorMsg{Date: m.date()}), true
	case "e":
		if n, ok := m.selected(); ok {
			return m.openEditor(OpenEditorMsg{Note: &n}), true
		}
	case "d":
		if n, ok := m.selected(); ok {
			m.requestDelete(n)
		}
	case "p":
		if n, ok := m.selected(); ok {
			return m.togglePin(n.ID), true
		}
	case "x":
		if n, ok := m.selected(); ok {
			return m.toggleComplete(n.ID), true
		}
	case "i":
		return m.toggleLocale(), true
	case "m":
		return m.toggleTheme(), true
	case "r":
		return func() tea.Msg { return DataRefreshMsg{} }, true
	default:
		return nil, false
	}
	return nil, true
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return shared.RenderHelpPopup(m.helpSections(), m.width, m.height)
	}

	if m.editor != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.editor.View())
	}
	if m.confirm != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirm.View())
	}

	var content string
	switch m.currentView {
	case ViewMonth:
		content = m.monthView.View()
	case ViewWeek:
		content = m.weekView.View()
	case ViewDay:
		content = m.dayView.View()
	case ViewList:
		content = m.listView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.renderTabs(), content, m.renderStatusBar())
}

func (m AppModel) renderTabs() string {
	tabs := []struct {
		view ViewType
		key  i18n.Key
	}{
		{ViewMonth, i18n.KeyMonth},
		{ViewWeek, i18n.KeyWeek},
		{ViewDay, i18n.KeyDay},
		{ViewList, i18n.KeyNotes},
	}

	parts := []string{theme.Title.Render(m.t(i18n.KeyCalendarNotes))}
	for i, tab := range tabs {
		label := fmt.Sprintf("%d:%s", i+1, m.t(tab.key))
		if tab.view == m.currentView {
			parts = append(parts, theme.TabActive.Render(label))
		} else {
			parts = append(parts, theme.TabInactive.Render(label))
		}
	}
	return theme.TabBar.Width(m.width).Render(strings.Join(parts, "  "))
}

func (m AppModel) renderStatusBar() string {
	var text string
	switch {
	case m.status != "" && m.statusErr:
		text = theme.Error.Render(m.status)
	case m.status != "":
		text = theme.Ok.Render(m.status)
	default:
		text = theme.HelpHint.Render("n:new e:edit d:delete p:pin x:done | i:" + strings.ToUpper(m.locale().String()) + " m:theme | ?:help | q:quit")
	}
	return theme.StatusBar.Width(m.width).Render(text)
}

func (m AppModel) helpSections() []shared.HelpSection {
	return []shared.HelpSection{
		{
			Title: m.t(i18n.KeyCalendarNotes),
			Binds: []shared.HelpBind{
				{Key: "1 / 2 / 3 / 4", Desc: m.t(i18n.KeyMonth) + " / " + m.t(i18n.KeyWeek) + " / " + m.t(i18n.KeyDay) + " / " + m.t(i18n.KeyNotes)},
				{Key: "i", Desc: m.t(i18n.KeyLanguage)},
				{Key: "m", Desc: m.t(i18n.KeyLightMode) + " / " + m.t(i18n.KeyDarkMode)},
				{Key: "r", Desc: "Reload notes"},
				{Key: "?", Desc: "Show this help"},
				{Key: "q", Desc: "Quit"},
				{Key: "ctrl+c", Desc: "Force quit"},
			},
		},
		{
			Title: m.t(i18n.KeyNotes),
			Binds: []shared.HelpBind{
				{Key: "n", Desc: m.t(i18n.KeyAddNote)},
				{Key: "e / enter", Desc: m.t(i18n.KeyEditNote)},
				{Key: "d", Desc: m.t(i18n.KeyDelete)},
				{Key: "p", Desc: m.t(i18n.KeyPin) + " / " + m.t(i18n.KeyUnpin)},
				{Key: "x", Desc: m.t(i18n.KeyMarkComplete)},
				{Key: "/", Desc: m.t(i18n.KeySearch)},
			},
		},
		{
			Title: "Navigation",
			Binds: []shared.HelpBind{
				{Key: "h / l", Desc: "Previous / next day (week view: week)"},
				{Key: "j / k", Desc: "Next / previous item (month: week)"},
				{Key: "H / L", Desc: "Previous / next month (day view: week)"},
				{Key: "t", Desc: m.t(i18n.KeyToday)},
				{Key: "o", Desc: "Open day view"},
				{Key: "esc", Desc: "Back"},
			},
		},
	}
}
