package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"calnotes/internal/config"
	"calnotes/internal/logs"
	"calnotes/internal/notes"
	"calnotes/internal/settings"
	"calnotes/internal/storage"

	"github.com/spf13/cobra"
)

// App carries the state shared by every command. It is populated by open
// before a command runs.
type App struct {
	flags  config.CLIFlags
	out    io.Writer
	now    func() time.Time
	runTUI func(*App) error

	cfg      *config.Config
	kv       storage.KV
	store    *notes.Store
	settings settings.Settings
}

// NewApp returns an App writing to out.
func NewApp(out io.Writer) *App {
	return &App{out: out, now: time.Now, runTUI: runTUI}
}

// Run executes the CLI with the given arguments and returns the exit code.
// Running without a subcommand launches the interactive TUI.
func Run(args []string) int {
	app := NewApp(os.Stdout)
	defer app.close()

	root := NewRootCommand(app)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "calnotes",
		Short: "Calendar notes in the terminal",
		Long: `calnotes - notes anchored to a calendar

Running calnotes without a command launches the interactive TUI.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.open()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runTUI(app)
		},
	}

	root.SetOut(app.out)
	root.SetErr(app.out)

	root.PersistentFlags().StringVarP(&app.flags.DataDir, "data-dir", "d", "", "data directory")
	root.PersistentFlags().StringVar(&app.flags.Storage, "storage", "", "storage backend: file, sqlite, memory")
	root.PersistentFlags().StringVar(&app.flags.View, "view", "", "initial view: month, week, day, list")

	root.AddCommand(addCmd(app))
	root.AddCommand(listCmd(app))
	root.AddCommand(showCmd(app))
	root.AddCommand(editCmd(app))
	root.AddCommand(deleteCmd(app))
	root.AddCommand(pinCmd(app))
	root.AddCommand(completeCmd(app))
	root.AddCommand(monthCmd(app))
	root.AddCommand(weekCmd(app))
	root.AddCommand(dayCmd(app))
	root.AddCommand(exportCmd(app))
	root.AddCommand(importCmd(app))
	root.AddCommand(demoCmd(app))
	root.AddCommand(remindCmd(app))
	root.AddCommand(configCmd(app))

	return root
}

func (a *App) open() error {
	if a.store != nil {
		return nil
	}

	cfg, err := config.Load(a.flags)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := config.EnsureConfigFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create config file: %v\n", err)
	}
	if err := cfg.EnsureDataDir(); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	logs.SetLevel(cfg.LogLevel)
	if err := logs.Initialize(cfg.DataDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize logger: %v\n", err)
	}

	kv, err := storage.Open(cfg.StorageKind(), cfg.DataDir)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}

	prefs, err := settings.Load(kv)
	if err != nil {
		kv.Close()
		return err
	}

	store, err := notes.Open(notes.NewKVPersistence(kv), notes.Options{
		Strict: cfg.StrictMutations,
		Now:    a.now,
	})
	if err != nil {
		kv.Close()
		return err
	}

	a.cfg = cfg
	a.kv = kv
	a.settings = prefs
	a.store = store
	logs.Logger.Debug("opened data dir", "dir", cfg.DataDir, "storage", cfg.Storage)
	return nil
}

func (a *App) close() {
	if a.kv != nil {
		if err := a.kv.Close(); err != nil {
			logs.Logger.Error("failed to close storage", "err", err)
		}
		a.kv = nil
		a.store = nil
	}
	logs.Close()
}

// minHandle is the shortest partial id findNote accepts.
const minHandle = 4

// findNote resolves a full id, or a unique prefix or suffix of at least
// minHandle characters, ignoring case. Notes created close together share
// their leading timestamp, so list prints a suffix handle.
func (a *App) findNote(partialID string) (notes.Note, error) {
	partialID = strings.TrimSpace(partialID)
	if n, err := a.store.Get(partialID); err == nil {
		return n, nil
	}

	var matches []notes.Note
	if len(partialID) >= minHandle {
		for _, n := range a.store.List() {
			if matchesHandle(n.ID, partialID) {
				matches = append(matches, n)
			}
		}
	}

	if len(matches) == 0 {
		return notes.Note{}, &notes.NotFoundError{ID: partialID}
	}
	if len(matches) > 1 {
		return notes.Note{}, fmt.Errorf("multiple notes match ID '%s', please be more specific", partialID)
	}
	return matches[0], nil
}

func matchesHandle(id, h string) bool {
	id, h = strings.ToUpper(id), strings.ToUpper(h)
	return strings.HasPrefix(id, h) || strings.HasSuffix(id, h)
}

// shortHandles maps each id to its shortest suffix that findNote resolves
// to that note alone.
func shortHandles(all []notes.Note) map[string]string {
	handles := make(map[string]string, len(all))
	for _, n := range all {
		handles[n.ID] = n.ID
		for l := minHandle; l < len(n.ID); l++ {
			h := n.ID[len(n.ID)-l:]
			unique := true
			for _, other := range all {
				if other.ID != n.ID && matchesHandle(other.ID, h) {
					unique = false
					break
				}
			}
			if unique {
				handles[n.ID] = h
				break
			}
		}
	}
	return handles
}
