package agenda

import (
	"strings"

	"calnotes/internal/i18n"
	"calnotes/internal/notes"
	"calnotes/internal/timeutil"
	"calnotes/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderNoteLine renders a note as a single styled line: cursor, color
// swatch, clock, title and tags on the left, reminder on the right.
func RenderNoteLine(n notes.Note, selected bool, width int, locale i18n.Locale) string {
	var parts []string

	// Cursor indicator
	if selected {
		parts = append(parts, theme.Cursor.Render(">"))
	} else {
		parts = append(parts, " ")
	}

	parts = append(parts, theme.NoteColor(n.Color).Render("●"))
	parts = append(parts, theme.Muted.Render(timeutil.FormatClock(n.Date, locale)))

	title := n.Title
	if n.IsCompleted {
		title = "✓ " + title
	}
	switch {
	case selected:
		parts = append(parts, theme.Selected.Render(title))
	case n.IsCompleted:
		parts = append(parts, theme.Done.Render(title))
	default:
		parts = append(parts, title)
	}

	if n.IsPinned {
		parts = append(parts, theme.Pinned.Render("*"))
	}
	if tags := renderTags(n.Tags, locale); tags != "" {
		parts = append(parts, tags)
	}

	line := strings.Join(parts, " ")
	if n.Reminder == nil {
		return line
	}

	reminder := theme.Muted.Render("⏰ " + timeutil.FormatClock(*n.Reminder, locale))
	padding := width - lipgloss.Width(line) - lipgloss.Width(reminder) - 1
	if padding < 1 {
		padding = 1
	}
	return line + strings.Repeat(" ", padding) + reminder
}

func renderTags(tags []string, locale i18n.Locale) string {
	if len(tags) == 0 {
		return ""
	}
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = "#" + i18n.T(locale, i18n.Key(t))
	}
	return theme.Tag.Render(strings.Join(out, " "))
}
