package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorBgSurface = lipgloss.Color("#1c2128")
	colorText      = lipgloss.Color("#e6edf3")
	colorTextDim   = lipgloss.Color("#8b949e")
	colorTextMuted = lipgloss.Color("#484f58")
	colorBlue      = lipgloss.Color("#58a6ff")
)

// Card text colours, as hex strings for the cell grid
const (
	titleColor  = "#e6edf3"
	detailColor = "#8b949e"
)

var (
	headerBarStyle = lipgloss.NewStyle().
			Background(colorBgSurface).
			Foreground(colorText).
			Padding(0, 1)

	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorBlue)

	headerSepStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	headerMetaStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)
)

var (
	footerStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Padding(0, 1)

	hintKeyStyle = lipgloss.NewStyle().
			Foreground(colorBlue)
)
