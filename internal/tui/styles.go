package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true).
			MarginBottom(1)

	// PanelStyle frames the chip panel and the grid.
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	// FocusedPanelStyle frames whichever panel has keyboard focus.
	FocusedPanelStyle = PanelStyle.
				BorderForeground(colorBlue)

	PanelHeaderStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	HeaderRowStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Bold(true)

	RowStyle = lipgloss.NewStyle().
			Foreground(colorText)

	CursorRowStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorBlue)

	SelectedMarkStyle = lipgloss.NewStyle().
				Foreground(colorGreen).
				Bold(true)

	ChipStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface0).
			Padding(0, 1)

	FocusedChipStyle = lipgloss.NewStyle().
				Foreground(colorBase).
				Background(colorMauve).
				Padding(0, 1)

	MutedStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0).
			MarginTop(1)
)
