package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calnotes/internal/i18n"
	"calnotes/internal/logs"
	"calnotes/internal/notes"
	"calnotes/internal/remind"
	"calnotes/internal/settings"
	"calnotes/internal/timeutil"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// reloadingSource rereads storage before each check so a long-running
// watcher sees notes added by other processes.
type reloadingSource struct {
	store *notes.Store
}

func (s reloadingSource) List() []notes.Note {
	if err := s.store.Reload(); err != nil {
		logs.Logger.Error("failed to reload notes", "err", err)
	}
	return s.store.List()
}

func remindCmd(app *App) *cobra.Command {
	var (
		watch bool
		since time.Duration
	)

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Print reminders that are due",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			locale := app.settings.Locale
			report := func(due []notes.Note) {
				for _, n := range due {
					fmt.Fprintf(out, "%s %s  %s\n", i18n.T(locale, i18n.KeyReminder), timeutil.FormatDateTime(*n.Reminder, locale), n.Title)
				}
			}

			if !watch {
				now := app.now()
				due := remind.Due(app.store.List(), now, now.Add(-since))
				if len(due) == 0 {
					fmt.Fprintln(out, "No reminders due.")
					return nil
				}
				report(due)
				return nil
			}

			w, err := remind.NewWatcher(reloadingSource{app.store}, app.cfg.ReminderSchedule, report)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(out, "Watching reminders (%s), press Ctrl+C to stop\n", app.cfg.ReminderSchedule)
			if err := w.Run(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep running and print reminders as they come due")
	cmd.Flags().DurationVar(&since, "since", 24*time.Hour, "how far back a one-shot check looks")
	return cmd
}

func configCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show configuration or change stored preferences",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(app.cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			fmt.Fprintf(cmd.OutOrStdout(), "locale: %s\ntheme: %s\n", app.settings.Locale, app.settings.Theme)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "locale [tr|en]",
		Short:     "Print or set the interface language",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(i18n.TR), string(i18n.EN)},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), app.settings.Locale)
				return nil
			}
			l, ok := i18n.Parse(args[0])
			if !ok {
				return fmt.Errorf("unknown locale %q (want tr or en)", args[0])
			}
			if err := settings.SetLocale(app.kv, l); err != nil {
				return err
			}
			app.settings.Locale = l
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", i18n.T(l, i18n.KeyLanguage), l)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "theme [light|dark]",
		Short:     "Print or set the TUI theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(settings.Light), string(settings.Dark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), app.settings.Theme)
				return nil
			}
			t, ok := settings.ParseTheme(args[0])
			if !ok {
				return fmt.Errorf("unknown theme %q (want light or dark)", args[0])
			}
			if err := settings.SetTheme(app.kv, t); err != nil {
				return err
			}
			app.settings.Theme = t
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	})

	return cmd
}
