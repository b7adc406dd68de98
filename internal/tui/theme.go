package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used by the dashboard.
type Theme struct {
	Name      string
	Border    lipgloss.Color
	TextDim   lipgloss.Color
	TextMuted lipgloss.Color
	Text      lipgloss.Color
	Accent    lipgloss.Color
	Warning   lipgloss.Color
}

// EcometDark matches the web dashboard's green-on-black palette.
var EcometDark = Theme{
	Name:      "ecomet-dark",
	Border:    lipgloss.Color("#262626"),
	TextDim:   lipgloss.Color("#525252"),
	TextMuted: lipgloss.Color("#A3A3A3"),
	Text:      lipgloss.Color("#F5F5F5"),
	Accent:    lipgloss.Color("#86EFAC"),
	Warning:   lipgloss.Color("#FCD34D"),
}

// EcometLight is a light-background variant.
var EcometLight = Theme{
	Name:      "ecomet-light",
	Border:    lipgloss.Color("#D4D4D4"),
	TextDim:   lipgloss.Color("#A3A3A3"),
	TextMuted: lipgloss.Color("#525252"),
	Text:      lipgloss.Color("#171717"),
	Accent:    lipgloss.Color("#15803D"),
	Warning:   lipgloss.Color("#B45309"),
}

// Themes lists all available themes.
var Themes = []Theme{EcometDark, EcometLight}

// ThemeByName returns the named theme, falling back to EcometDark.
func ThemeByName(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return EcometDark
}
