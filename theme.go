package main

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorAccent = colorMauve
	colorFocus  = colorLavender
	colorError  = colorRed
	colorBorder = colorOverlay0
)

// AllPaletteColors returns every palette color for testing purposes.
func AllPaletteColors() []lipgloss.Color {
	return []lipgloss.Color{
		colorMauve, colorRed, colorYellow, colorGreen, colorLavender,
		colorText, colorSubtext0, colorOverlay0,
		colorSurface1, colorSurface0, colorBase,
	}
}

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	panelNameStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText).Width(6)
	statusBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 2)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 2)
	modalStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 1)
	swatchStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorBorder)

	// Bounded-field borders: neutral while the text is in bounds, alert red
	// while it is not. This is the only validation feedback in the UI.
	fieldStyle        = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorBorder).Padding(0, 1)
	fieldFocusStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorFocus).Padding(0, 1)
	fieldInvalidStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorError).Padding(0, 1)
)
