package cli

import (
	"fmt"
	"strings"
	"time"

	"calnotes/internal/config"
	"calnotes/internal/i18n"
	"calnotes/internal/notes"
	"calnotes/internal/query"
	"calnotes/internal/timeutil"

	"github.com/spf13/cobra"
)

// noteFlags are the editable fields shared by add and edit.
type noteFlags struct {
	title    string
	content  string
	date     string
	clock    string
	tags     string
	color    string
	reminder string
	pin      bool
	done     bool
}

func (f *noteFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "note title")
	cmd.Flags().StringVarP(&f.content, "content", "c", "", "note content (markdown)")
	cmd.Flags().StringVar(&f.date, "date", "", "date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&f.clock, "time", "", "time as HH:mm")
	cmd.Flags().StringVar(&f.tags, "tags", "", "tags (comma-separated)")
	cmd.Flags().StringVar(&f.color, "color", "", "hex color, e.g. #2ecc71")
	cmd.Flags().StringVar(&f.reminder, "reminder", "", `reminder: HH:mm, "YYYY-MM-DD HH:mm", a lead time such as 15m, or none`)
	cmd.Flags().BoolVar(&f.pin, "pin", false, "pin the note")
	cmd.Flags().BoolVar(&f.done, "done", false, "mark the note complete")
}

// apply copies every flag the user set onto d.
func (f *noteFlags) apply(cmd *cobra.Command, d *notes.Draft) error {
	changed := cmd.Flags().Changed

	if changed("title") {
		d.Title = f.title
	}
	if changed("content") {
		d.Content = f.content
	}
	if changed("date") {
		day, err := timeutil.ParseDate(f.date)
		if err != nil {
			return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", f.date)
		}
		d.Date = time.Date(day.Year(), day.Month(), day.Day(), d.Date.Hour(), d.Date.Minute(), 0, 0, time.Local)
	}
	if changed("time") {
		t, err := timeutil.Combine(d.Date, f.clock)
		if err != nil {
			return err
		}
		d.Date = t
	}
	if changed("tags") {
		d.Tags = config.ParseCommaSeparated(f.tags)
	}
	if changed("color") {
		d.Color = f.color
	}
	if changed("reminder") {
		r, err := timeutil.ParseReminder(f.reminder, d.Date)
		if err != nil {
			return err
		}
		d.Reminder = r
	}
	if changed("pin") {
		d.IsPinned = f.pin
	}
	if changed("done") {
		d.IsCompleted = f.done
	}
	return nil
}

func addCmd(app *App) *cobra.Command {
	var f noteFlags

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new note",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := notes.Draft{Date: timeutil.At(app.now(), app.now(), app.cfg.MinuteStep)}
			if len(args) > 0 {
				d.Title = strings.Join(args, " ")
			}
			if err := f.apply(cmd, &d); err != nil {
				return err
			}

			n, err := app.store.Add(d)
			if err != nil {
				return err
			}

			locale := app.settings.Locale
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", i18n.T(locale, i18n.KeyNoteAdded), n.Title)
			fmt.Fprintf(cmd.OutOrStdout(), "ID: %s\n", n.ID)
			return nil
		},
	}

	f.register(cmd)
	return cmd
}

func editCmd(app *App) *cobra.Command {
	var f noteFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.findNote(args[0])
			if err != nil {
				return err
			}

			d := n.Draft()
			if err := f.apply(cmd, &d); err != nil {
				return err
			}
			n.Title = d.Title
			n.Content = d.Content
			n.Date = d.Date
			n.Tags = d.Tags
			n.Color = d.Color
			n.Reminder = d.Reminder
			n.IsPinned = d.IsPinned
			n.IsCompleted = d.IsCompleted

			updated, err := app.store.Update(n)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", i18n.T(app.settings.Locale, i18n.KeyNoteUpdated), updated.Title)
			return nil
		},
	}

	f.register(cmd)
	return cmd
}

func listCmd(app *App) *cobra.Command {
	var (
		date     string
		tag      string
		search   string
		showDone bool
		pending  bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notes, pinned first then newest",
		RunE: func(cmd *cobra.Command, args []string) error {
			var list []notes.Note
			if date != "" {
				day, err := timeutil.ParseDate(date)
				if err != nil {
					return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
				}
				list = app.store.NotesOnDate(day)
			} else {
				list = app.store.List()
			}

			if tag != "" {
				list = query.WithTag(list, tag)
			}
			if showDone {
				list = query.Completed(list)
			} else if pending {
				list = query.Pending(list)
			}
			list = query.Search(query.SortForList(list), search)

			out := cmd.OutOrStdout()
			locale := app.settings.Locale
			if len(list) == 0 {
				if search != "" {
					fmt.Fprintln(out, i18n.T(locale, i18n.KeyNoMatches))
				} else {
					fmt.Fprintln(out, i18n.T(locale, i18n.KeyNoNotes))
				}
				return nil
			}

			handles := shortHandles(app.store.List())
			for _, n := range list {
				printNote(out, n, handles[n.ID], locale)
			}
			fmt.Fprintf(out, "\n%d note(s)\n", len(list))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "only notes on this day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&tag, "tag", "", "only notes with this tag")
	cmd.Flags().StringVarP(&search, "search", "s", "", "fuzzy search title, tags and content")
	cmd.Flags().BoolVar(&showDone, "done", false, "only completed notes")
	cmd.Flags().BoolVar(&pending, "pending", false, "only notes not yet completed")
	return cmd
}

func showCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a note in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.findNote(args[0])
			if err != nil {
				return err
			}
			printDetail(cmd.OutOrStdout(), n, app.settings.Locale)
			return nil
		},
	}
}

func deleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a note",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.findNote(args[0])
			if err != nil {
				return err
			}
			if err := app.store.Delete(n.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", i18n.T(app.settings.Locale, i18n.KeyNoteDeleted), n.Title)
			return nil
		},
	}
}

func pinCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pin <id>",
		Short: "Toggle whether a note is pinned",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.findNote(args[0])
			if err != nil {
				return err
			}
			n, err = app.store.TogglePin(n.ID)
			if err != nil {
				return err
			}
			key := i18n.KeyUnpin
			if n.IsPinned {
				key = i18n.KeyPin
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", i18n.T(app.settings.Locale, key), n.Title)
			return nil
		},
	}
}

func completeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "complete <id>",
		Aliases: []string{"done"},
		Short:   "Toggle whether a note is complete",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.findNote(args[0])
			if err != nil {
				return err
			}
			n, err = app.store.ToggleComplete(n.ID)
			if err != nil {
				return err
			}
			key := i18n.KeyMarkIncomplete
			if n.IsCompleted {
				key = i18n.KeyMarkComplete
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", i18n.T(app.settings.Locale, key), n.Title)
			return nil
		},
	}
}
