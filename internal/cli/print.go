package cli

import (
	"fmt"
	"io"
	"strings"

	"calnotes/internal/i18n"
	"calnotes/internal/notes"
	"calnotes/internal/query"
	"calnotes/internal/timeutil"
)

const previewWidth = 60

func printNote(w io.Writer, n notes.Note, handle string, locale i18n.Locale) {
	status := " "
	if n.IsCompleted {
		status = "x"
	}
	pin := ""
	if n.IsPinned {
		pin = "* "
	}

	fmt.Fprintf(w, "[%s] %s  %s%s\n", status, timeutil.FormatDateTime(n.Date, locale), pin, n.Title)

	var meta []string
	for _, t := range n.Tags {
		meta = append(meta, "#"+i18n.T(locale, i18n.Key(t)))
	}
	if preview := query.Preview(n.Content, previewWidth); preview != "" {
		meta = append(meta, preview)
	}
	if len(meta) > 0 {
		fmt.Fprintf(w, "    %s\n", strings.Join(meta, " "))
	}
	if handle != "" && handle != n.ID {
		fmt.Fprintf(w, "    %s (%s)\n", n.ID, handle)
	} else {
		fmt.Fprintf(w, "    %s\n", n.ID)
	}
}

func printDetail(w io.Writer, n notes.Note, locale i18n.Locale) {
	label := func(k i18n.Key) string { return i18n.T(locale, k) }

	fmt.Fprintf(w, "%s\n", n.Title)
	fmt.Fprintf(w, "ID:      %s\n", n.ID)
	fmt.Fprintf(w, "%s: %s\n", label(i18n.KeyDate), timeutil.FormatDateTime(n.Date, locale))
	if len(n.Tags) > 0 {
		tags := make([]string, len(n.Tags))
		for i, t := range n.Tags {
			tags[i] = i18n.T(locale, i18n.Key(t))
		}
		fmt.Fprintf(w, "%s: %s\n", label(i18n.KeyTags), strings.Join(tags, ", "))
	}
	fmt.Fprintf(w, "%s: %s\n", label(i18n.KeyColor), n.Color)
	if n.Reminder != nil {
		fmt.Fprintf(w, "%s: %s\n", label(i18n.KeyReminder), timeutil.FormatDateTime(*n.Reminder, locale))
	}
	if n.IsPinned {
		fmt.Fprintln(w, label(i18n.KeyPin))
	}
	if n.IsCompleted {
		fmt.Fprintln(w, label(i18n.KeyMarkComplete))
	}
	if n.Content != "" {
		fmt.Fprintf(w, "\n%s\n", n.Content)
	}
}
