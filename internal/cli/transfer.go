package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"calnotes/internal/archive"
	"calnotes/internal/calendar"
	"calnotes/internal/demo"
	"calnotes/internal/ical"
	"calnotes/internal/logs"
	"calnotes/internal/notes"
	"calnotes/internal/timeutil"

	"github.com/spf13/cobra"
)

func exportCmd(app *App) *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export notes as an iCalendar file or markdown files",
		RunE: func(cmd *cobra.Command, args []string) error {
			list := app.store.List()

			switch format {
			case "ics":
				if out == "" || out == "-" {
					return ical.Export(cmd.OutOrStdout(), list, app.now())
				}
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				if err := ical.Export(f, list, app.now()); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d note(s) to %s\n", len(list), out)
				return nil

			case "md":
				if out == "" {
					out = filepath.Join(app.cfg.DataDir, "archive")
				}
				paths, err := archive.WriteAll(out, list)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d note(s) to %s\n", len(paths), out)
				return nil

			default:
				return fmt.Errorf("unknown export format %q (want ics or md)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "ics", "export format: ics or md")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file for ics (default stdout) or directory for md")
	return cmd
}

func importCmd(app *App) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "import <file.ics|dir>",
		Short: "Import events from an iCalendar file or markdown notes from a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			info, err := os.Stat(path)
			if err != nil {
				return err
			}

			var drafts []notes.Draft
			if info.IsDir() {
				drafts, err = archive.ScanDir(path)
				if err != nil {
					return err
				}
			} else {
				window, err := parseWindow(from, to)
				if err != nil {
					return err
				}
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				drafts, err = ical.Import(f, window)
				f.Close()
				if err != nil {
					return err
				}
			}

			added := 0
			for _, d := range drafts {
				if _, err := app.store.Add(d); err != nil {
					logs.Logger.Warn("skipping imported note", "title", d.Title, "err", err)
					fmt.Fprintf(cmd.ErrOrStderr(), "Skipped %q: %v\n", d.Title, err)
					continue
				}
				added++
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d note(s)\n", added, len(drafts))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "expand recurring events from this day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "expand recurring events up to this day (YYYY-MM-DD)")
	return cmd
}

// parseWindow builds the recurrence window. Both ends empty means no window;
// a single end defaults the other to one year away.
func parseWindow(from, to string) (calendar.DateRange, error) {
	if from == "" && to == "" {
		return calendar.DateRange{}, nil
	}

	var r calendar.DateRange
	var err error
	if from != "" {
		if r.Start, err = timeutil.ParseDate(from); err != nil {
			return r, fmt.Errorf("invalid --from %q: expected YYYY-MM-DD", from)
		}
	}
	if to != "" {
		if r.End, err = timeutil.ParseDate(to); err != nil {
			return r, fmt.Errorf("invalid --to %q: expected YYYY-MM-DD", to)
		}
	}
	if from == "" {
		r.Start = r.End.AddDate(-1, 0, 0)
	}
	if to == "" {
		r.End = r.Start.AddDate(1, 0, 0)
	}
	if r.End.Before(r.Start) {
		return r, fmt.Errorf("--to is before --from")
	}
	return r, nil
}

func demoCmd(app *App) *cobra.Command {
	var (
		count  int
		seed   int64
		spread int
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Add generated sample notes around today",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be positive")
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}

			gen := demo.New(seed)
			added := 0
			for _, d := range gen.Drafts(count, app.now(), spread) {
				if _, err := app.store.Add(d); err != nil {
					return err
				}
				added++
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d sample note(s)\n", added)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 20, "number of notes")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default time-based)")
	cmd.Flags().IntVar(&spread, "spread", 30, "days either side of today")
	return cmd
}
