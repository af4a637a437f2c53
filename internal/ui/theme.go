package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/timelineview/internal/config"
)

// Theme colour names for the timeline decoration, offered by the settings dialog
const (
	ColorNameTimelineLine   fyne.ThemeColorName = "timelineLine"
	ColorNameTimelineMarker fyne.ThemeColorName = "timelineMarker"
)

// CompactTheme tightens paddings so timeline cards sit close to the line
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case ColorNameTimelineLine:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 120, G: 120, B: 120, A: 255}
		}
		return color.NRGBA{R: 189, G: 189, B: 189, A: 255}
	case ColorNameTimelineMarker, theme.ColorNamePrimary:
		return color.NRGBA{R: 25, G: 118, B: 210, A: 255} // Blue markers and primary actions
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.NRGBA{R: 250, G: 250, B: 250, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	}

	return theme.DefaultTheme().Size(name)
}

// ThemeColors returns base with its line and marker colours taken from the current theme
func ThemeColors(base config.Style) config.Style {
	th := fyne.CurrentApp().Settings().Theme()
	variant := fyne.CurrentApp().Settings().ThemeVariant()
	base.LineColor = config.FromColor(th.Color(ColorNameTimelineLine, variant))
	base.CircleColor = config.FromColor(th.Color(ColorNameTimelineMarker, variant))
	return base
}
