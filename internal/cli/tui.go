package cli

import (
	"calnotes/internal/logs"
	"calnotes/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func runTUI(app *App) error {
	logs.Logger.Info("starting app in TUI mode")
	model := tui.NewAppModel(tui.Deps{
		Config:   app.cfg,
		KV:       app.kv,
		Store:    app.store,
		Settings: app.settings,
		Now:      app.now,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
