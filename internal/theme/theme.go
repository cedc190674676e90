package theme

import "github.com/charmbracelet/lipgloss"

// Palette holds the colours used outside the grid cells. Values follow the
// same convention as menu.Style: ANSI palette indexes or "#rrggbb".
type Palette struct {
	Banner    string
	Warning   string
	Info      string
	Separator string
}

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Banner     *lipgloss.Style
	Warning    *lipgloss.Style
	WarningTag *lipgloss.Style
	Info       *lipgloss.Style
	Separator  *lipgloss.Style
}

var defaultPalette = Palette{
	Banner:    "11",
	Warning:   "9",
	Info:      "249",
	Separator: "238",
}

var defaultStyles = Styles{
	Banner: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(defaultPalette.Banner)),
	),
	Warning: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(defaultPalette.Warning)),
	),
	WarningTag: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(defaultPalette.Warning)).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(defaultPalette.Info)),
	),
	Separator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(defaultPalette.Separator)),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// DefaultPalette returns the raw colours behind Default, for renderers that
// do not draw through Lip Gloss.
func DefaultPalette() Palette {
	return defaultPalette
}

// Paint builds a style from raw colour strings. Empty colours are left unset.
func Paint(fg, bg string, bold bool) lipgloss.Style {
	style := lipgloss.NewStyle()
	if fg != "" {
		style = style.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		style = style.Background(lipgloss.Color(bg))
	}
	if bold {
		style = style.Bold(true)
	}
	return style
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
