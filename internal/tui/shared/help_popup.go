package shared

import (
	"strings"

	"calnotes/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// HelpBind represents a single keybind entry
type HelpBind struct {
	Key  string
	Desc string
}

// HelpSection represents a group of related keybinds
type HelpSection struct {
	Title string
	Binds []HelpBind
}

// RenderHelpPopup renders a centered help popup with the given sections
func RenderHelpPopup(sections []HelpSection, width, height int) string {
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary).Width(14)
	descStyle := lipgloss.NewStyle().Foreground(theme.Text)
	boxStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderFocused).
		Padding(1, 2)

	var sb strings.Builder
	for i, section := range sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(sectionStyle.Render(section.Title) + "\n")
		for _, bind := range section.Binds {
			sb.WriteString("  " + keyStyle.Render(bind.Key) + descStyle.Render(bind.Desc) + "\n")
		}
	}

	sb.WriteString("\n" + theme.Muted.Render("Press any key to close"))

	box := boxStyle.Render(strings.TrimRight(sb.String(), "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
