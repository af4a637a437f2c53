package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/ytget/timelineview/internal/model"
)

// Style option keys, shared by preferences and style files
const (
	KeyLineLeftMargin  = "line_left_margin"
	KeyLineRightMargin = "line_right_margin"
	KeyCircleRadius    = "circle_radius"
	KeyLineStrokeWidth = "line_stroke_width"
	KeyCircleColor     = "circle_color"
	KeyLineColor       = "line_color"
	KeyOrientation     = "orientation"
)

// Default values, in device-independent units
const (
	DefaultLineLeftMargin  float32 = 20
	DefaultLineRightMargin float32 = 20
	DefaultCircleRadius    float32 = 5
	DefaultLineStrokeWidth float32 = 2
	DefaultCircleColor             = ColorBlack
	DefaultLineColor               = ColorBlack
	DefaultOrientation             = model.OrientationVertical
)

// MaxDimension bounds every style dimension, in dp
const MaxDimension float32 = 200

var (
	// ErrInvalidStyle reports a style value outside its allowed range
	ErrInvalidStyle = errors.New("invalid timeline style")

	// ErrUnsupportedOrientation reports an orientation outside the declared variants
	ErrUnsupportedOrientation = errors.New("unsupported timeline orientation")
)

// Style holds the construction-time configuration of a timeline in dp
type Style struct {
	LineLeftMargin  float32
	LineRightMargin float32
	CircleRadius    float32
	LineStrokeWidth float32
	CircleColor     ARGB
	LineColor       ARGB
	Orientation     model.Orientation
}

// DefaultStyle returns the style used when no styling input is given
func DefaultStyle() Style {
	return Style{
		LineLeftMargin:  DefaultLineLeftMargin,
		LineRightMargin: DefaultLineRightMargin,
		CircleRadius:    DefaultCircleRadius,
		LineStrokeWidth: DefaultLineStrokeWidth,
		CircleColor:     DefaultCircleColor,
		LineColor:       DefaultLineColor,
		Orientation:     DefaultOrientation,
	}
}

// Validate rejects dimensions that are negative, non-finite or above
// MaxDimension, and unknown orientations
func (s Style) Validate() error {
	dims := []struct {
		key   string
		value float32
	}{
		{KeyLineLeftMargin, s.LineLeftMargin},
		{KeyLineRightMargin, s.LineRightMargin},
		{KeyCircleRadius, s.CircleRadius},
		{KeyLineStrokeWidth, s.LineStrokeWidth},
	}
	for _, d := range dims {
		v := float64(d.value)
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || d.value > MaxDimension {
			return fmt.Errorf("%w: %s = %v", ErrInvalidStyle, d.key, d.value)
		}
	}

	if !s.Orientation.Valid() {
		return fmt.Errorf("%w: %s", ErrUnsupportedOrientation, s.Orientation)
	}
	return nil
}

// Resolved is a style converted to pixels for a given density
type Resolved struct {
	LineLeftMargin  float32
	LineRightMargin float32
	CircleRadius    float32
	LineStrokeWidth float32
	CircleColor     ARGB
	LineColor       ARGB
	Orientation     model.Orientation
}

// Resolve converts every dimension with px = dp * density, truncated toward zero.
// Fyne sizes are already device independent, so Fyne hosts resolve at density 1.
func (s Style) Resolve(density float32) Resolved {
	return Resolved{
		LineLeftMargin:  DPToPX(s.LineLeftMargin, density),
		LineRightMargin: DPToPX(s.LineRightMargin, density),
		CircleRadius:    DPToPX(s.CircleRadius, density),
		LineStrokeWidth: DPToPX(s.LineStrokeWidth, density),
		CircleColor:     s.CircleColor,
		LineColor:       s.LineColor,
		Orientation:     s.Orientation,
	}
}

// DPToPX converts a device-independent length to whole pixels
func DPToPX(dp, density float32) float32 {
	if density <= 0 {
		density = 1
	}
	return float32(math.Trunc(float64(dp * density)))
}
