package theme

import (
	"calnotes/internal/settings"

	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Color palettes, one per theme
// ---------------------------------------------------------------------------

// Palette is the set of colors a theme is built from.
type Palette struct {
	Text          lipgloss.Color
	TextMuted     lipgloss.Color
	TextBright    lipgloss.Color
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Accent        lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Danger        lipgloss.Color
	Surface       lipgloss.Color
	Border        lipgloss.Color
	BorderFocused lipgloss.Color
}

var (
	DarkPalette = Palette{
		Text:          lipgloss.Color("7"),
		TextMuted:     lipgloss.Color("8"),
		TextBright:    lipgloss.Color("15"),
		Primary:       lipgloss.Color("4"),
		Secondary:     lipgloss.Color("6"),
		Accent:        lipgloss.Color("5"),
		Success:       lipgloss.Color("2"),
		Warning:       lipgloss.Color("3"),
		Danger:        lipgloss.Color("1"),
		Surface:       lipgloss.Color("236"),
		Border:        lipgloss.Color("8"),
		BorderFocused: lipgloss.Color("4"),
	}

	LightPalette = Palette{
		Text:          lipgloss.Color("0"),
		TextMuted:     lipgloss.Color("244"),
		TextBright:    lipgloss.Color("15"),
		Primary:       lipgloss.Color("25"),
		Secondary:     lipgloss.Color("30"),
		Accent:        lipgloss.Color("90"),
		Success:       lipgloss.Color("28"),
		Warning:       lipgloss.Color("130"),
		Danger:        lipgloss.Color("124"),
		Surface:       lipgloss.Color("254"),
		Border:        lipgloss.Color("250"),
		BorderFocused: lipgloss.Color("25"),
	}
)

// Colors of the active theme.
var (
	Text          lipgloss.Color
	TextMuted     lipgloss.Color
	TextBright    lipgloss.Color
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Accent        lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Danger        lipgloss.Color
	Surface       lipgloss.Color
	Border        lipgloss.Color
	BorderFocused lipgloss.Color
)

// Semantic text styles
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	Error lipgloss.Style
	Warn  lipgloss.Style
	Ok    lipgloss.Style

	Cursor     lipgloss.Style
	Selected   lipgloss.Style
	SelectedBg lipgloss.Style

	Tag    lipgloss.Style
	Pinned lipgloss.Style
	Done   lipgloss.Style
)

// Reusable component helpers
var (
	ModalBox   lipgloss.Style
	ModalTitle lipgloss.Style
	ModalHelp  lipgloss.Style

	StatusBar lipgloss.Style
	HelpHint  lipgloss.Style

	NavActive   lipgloss.Style
	NavInactive lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	TabBar      lipgloss.Style
)

var current = settings.Light

func init() {
	Use(settings.Light)
}

// Current returns the active theme.
func Current() settings.Theme {
	return current
}

// Use switches every color and style in the package to t. Views read the
// package variables at render time, so the next View call picks it up.
func Use(t settings.Theme) {
	p := LightPalette
	if t == settings.Dark {
		p = DarkPalette
	}
	current = t
	apply(p)
}

func apply(p Palette) {
	Text = p.Text
	TextMuted = p.TextMuted
	TextBright = p.TextBright
	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Success = p.Success
	Warning = p.Warning
	Danger = p.Danger
	Surface = p.Surface
	Border = p.Border
	BorderFocused = p.BorderFocused

	Title = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Subtitle = lipgloss.NewStyle().Bold(true).Foreground(Secondary)
	Muted = lipgloss.NewStyle().Foreground(TextMuted)
	Bold = lipgloss.NewStyle().Bold(true)

	Error = lipgloss.NewStyle().Bold(true).Foreground(Danger)
	Warn = lipgloss.NewStyle().Bold(true).Foreground(Warning)
	Ok = lipgloss.NewStyle().Bold(true).Foreground(Success)

	Cursor = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Selected = lipgloss.NewStyle().Bold(true).Foreground(TextBright).Background(Primary)
	SelectedBg = lipgloss.NewStyle().Foreground(Text).Background(Surface)

	Tag = lipgloss.NewStyle().Foreground(Warning)
	Pinned = lipgloss.NewStyle().Bold(true).Foreground(Accent)
	Done = lipgloss.NewStyle().Foreground(TextMuted).Strikethrough(true)

	ModalBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(1, 2)
	ModalTitle = lipgloss.NewStyle().Bold(true).Foreground(Warning)
	ModalHelp = lipgloss.NewStyle().Foreground(TextMuted)

	StatusBar = lipgloss.NewStyle().
		Foreground(TextMuted).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Border)
	HelpHint = lipgloss.NewStyle().Foreground(TextMuted)

	NavActive = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	NavInactive = lipgloss.NewStyle().Foreground(TextMuted)

	TabActive = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	TabInactive = lipgloss.NewStyle().Foreground(TextMuted)
	TabBar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Border).
		PaddingLeft(1)
}

// NoteColor returns a swatch style for a note's hex color.
func NoteColor(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
