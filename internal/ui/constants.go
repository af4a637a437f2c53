package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconAdd      = "+"
	IconHidden   = "◌"
	IconTop      = "⤒"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Layout sizing (EntryCard / timeline)
const (
	CardMinWidth  float32 = 220
	CardMinHeight float32 = 56
	CardMaxWidth  float32 = 420

	// Fyne sizes are already device independent
	FyneDensity float32 = 1

	// Wheel scroll multiplier relative to the wheel delta
	WheelScrollFactor float32 = 1
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 460
)

// Smallest stacking-axis extent the demo gives the timeline; the view scrolls the rest
const ViewportMinExtent float32 = 160
