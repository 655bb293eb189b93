package agenda

import (
	"calnotes/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const cellWidth = 5

// Styles are built on demand so a theme switch applies on the next render.

func emptyStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.TextMuted).Italic(true)
}

func searchLabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
}

func navHintStyle() lipgloss.Style {
	return theme.HelpHint
}

func hourStyle(current bool) lipgloss.Style {
	if current {
		return lipgloss.NewStyle().Bold(true).Foreground(theme.Success)
	}
	return theme.Muted
}

func calCell() lipgloss.Style {
	return lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
}

func calDayHeaderStyle() lipgloss.Style {
	return calCell().Bold(true).Foreground(theme.TextMuted)
}

func calDayStyle() lipgloss.Style {
	return calCell().Foreground(theme.Text)
}

func calTodayStyle() lipgloss.Style {
	return calCell().Bold(true).Foreground(theme.Success)
}

func calCursorStyle() lipgloss.Style {
	return calCell().Bold(true).Foreground(theme.TextBright).Background(theme.Primary)
}

func calHasItemsStyle() lipgloss.Style {
	return calCell().Foreground(theme.Warning)
}

func calOtherMonthStyle() lipgloss.Style {
	return calCell().Foreground(theme.TextMuted).Faint(true)
}
