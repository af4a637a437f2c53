package ui

import (
	"fyne.io/fyne/v2"
)

// Viewport extents for the demo timeline
const (
	DesktopViewportExtent float32 = ViewportMinExtent
	MobileViewportExtent  float32 = 2 * ViewportMinExtent
)

// MobileUI answers device questions for the demo layout
type MobileUI struct {
	device fyne.Device
}

// NewMobileUI creates a helper for the current device
func NewMobileUI() *MobileUI {
	return &MobileUI{device: fyne.CurrentDevice()}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.device != nil && m.device.IsMobile()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	if m.device == nil {
		return false
	}
	o := m.device.Orientation()
	return o == fyne.OrientationHorizontalLeft || o == fyne.OrientationHorizontalRight
}

// ViewportExtent is the stacking-axis extent the demo asks for. Phones get a
// taller viewport since the window always fills the screen anyway.
func (m *MobileUI) ViewportExtent() float32 {
	if m.IsMobileDevice() && !m.IsLandscape() {
		return MobileViewportExtent
	}
	return DesktopViewportExtent
}
