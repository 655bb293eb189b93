package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"calnotes/internal/calendar"
	"calnotes/internal/i18n"
	"calnotes/internal/notes"
	"calnotes/internal/timeutil"

	"github.com/spf13/cobra"
)

const monthLayout = "2006-01"

// refDate parses the optional positional date argument, defaulting to today.
func (a *App) refDate(args []string, layout string) (time.Time, error) {
	if len(args) == 0 {
		return timeutil.StartOfDay(a.now().Local()), nil
	}
	t, err := time.ParseInLocation(layout, strings.TrimSpace(args[0]), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected %s", args[0], layout)
	}
	return t, nil
}

func monthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Print the month grid with note counts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := app.refDate(args, monthLayout)
			if err != nil {
				return err
			}
			list := app.store.List()
			grid := calendar.BuildMonthGrid(ref, list, app.now())
			printMonth(cmd.OutOrStdout(), grid, app.settings.Locale)

			buckets := calendar.QueryAgenda(list, calendar.MonthRange(ref))
			printAgenda(cmd.OutOrStdout(), buckets, app.settings.Locale)
			return nil
		},
	}
}

func weekCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "week [YYYY-MM-DD]",
		Short: "Print the Monday-first week containing a date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := app.refDate(args, timeutil.DateKey)
			if err != nil {
				return err
			}
			week := calendar.BuildWeek(ref, app.store.List(), app.now())
			printWeek(cmd.OutOrStdout(), week, app.settings.Locale)
			return nil
		},
	}
}

func dayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "day [YYYY-MM-DD]",
		Short: "Print the hourly schedule of a day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := app.refDate(args, timeutil.DateKey)
			if err != nil {
				return err
			}
			schedule := calendar.BuildDay(ref, app.store.List(), app.now())
			printDay(cmd.OutOrStdout(), schedule, app.settings.Locale)
			return nil
		},
	}
}

func printMonth(w io.Writer, m calendar.Month, locale i18n.Locale) {
	fmt.Fprintln(w, timeutil.FormatMonthTitle(time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.Local), locale))

	r := i18n.For(locale)
	for _, name := range r.WeekdaysShort {
		fmt.Fprintf(w, "%-6s", name)
	}
	fmt.Fprintln(w)

	for _, week := range m.Weeks {
		for _, d := range week {
			fmt.Fprintf(w, "%-6s", dayCell(d))
		}
		fmt.Fprintln(w)
	}
}

// dayCell renders "15+2" for a day with two notes, brackets today, and
// leaves days of adjacent months as a dot.
func dayCell(d calendar.Day) string {
	if !d.IsCurrentMonth {
		return "."
	}
	cell := fmt.Sprintf("%d", d.Date.Day())
	if d.IsToday {
		cell = "[" + cell + "]"
	}
	if len(d.Notes) > 0 {
		cell += fmt.Sprintf("+%d", len(d.Notes))
	}
	return cell
}

func printAgenda(w io.Writer, buckets []calendar.DateBucket, locale i18n.Locale) {
	for _, b := range buckets {
		fmt.Fprintf(w, "\n%s %s\n", timeutil.WeekdayShort(b.Date.Weekday(), locale), timeutil.FormatDate(b.Date, locale))
		for _, n := range b.AllItems() {
			printLine(w, n, locale)
		}
	}
}

func printWeek(w io.Writer, week calendar.Week, locale i18n.Locale) {
	fmt.Fprintf(w, "%s %s\n", i18n.T(locale, i18n.KeyWeekOf), timeutil.FormatDate(week[0].Date, locale))
	for _, d := range week {
		marker := ""
		if d.IsToday {
			marker = " (" + i18n.T(locale, i18n.KeyToday) + ")"
		}
		fmt.Fprintf(w, "\n%s %s%s\n", timeutil.WeekdayLong(d.Date.Weekday(), locale), timeutil.FormatDate(d.Date, locale), marker)
		if len(d.Notes) == 0 {
			fmt.Fprintf(w, "    -\n")
			continue
		}
		for _, n := range d.Notes {
			printLine(w, n, locale)
		}
	}
}

func printDay(w io.Writer, s calendar.Schedule, locale i18n.Locale) {
	d := s.Day
	fmt.Fprintf(w, "%s %s\n", timeutil.WeekdayLong(d.Date.Weekday(), locale), timeutil.FormatDate(d.Date, locale))
	if len(d.Notes) == 0 {
		fmt.Fprintln(w, i18n.T(locale, i18n.KeyNoNotes))
		return
	}
	for _, slot := range s.Hours {
		if len(slot.Notes) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%02d:00\n", slot.Hour)
		for _, n := range slot.Notes {
			printLine(w, n, locale)
		}
	}
}

func printLine(w io.Writer, n notes.Note, locale i18n.Locale) {
	status := " "
	if n.IsCompleted {
		status = "x"
	}
	fmt.Fprintf(w, "  [%s] %s  %s\n", status, timeutil.FormatClock(n.Date, locale), n.Title)
}
