package config

import (
	"log"

	"fyne.io/fyne/v2"

	"github.com/ytget/timelineview/internal/model"
)

// Preference keys that are not part of the style itself
const (
	KeyLanguage = "app_language"
)

// DefaultLanguage is used when no language preference is stored
const DefaultLanguage = "system"

// Settings manages timeline preferences persisted by the Fyne app
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLineLeftMargin returns the distance from the leading edge to the line
func (s *Settings) GetLineLeftMargin() float32 {
	return s.getDimension(KeyLineLeftMargin, DefaultLineLeftMargin)
}

// SetLineLeftMargin sets the distance from the leading edge to the line
func (s *Settings) SetLineLeftMargin(dp float32) {
	s.setDimension(KeyLineLeftMargin, dp)
}

// GetLineRightMargin returns the gap between the marker gutter and the children
func (s *Settings) GetLineRightMargin() float32 {
	return s.getDimension(KeyLineRightMargin, DefaultLineRightMargin)
}

// SetLineRightMargin sets the gap between the marker gutter and the children
func (s *Settings) SetLineRightMargin(dp float32) {
	s.setDimension(KeyLineRightMargin, dp)
}

// GetCircleRadius returns the marker radius
func (s *Settings) GetCircleRadius() float32 {
	return s.getDimension(KeyCircleRadius, DefaultCircleRadius)
}

// SetCircleRadius sets the marker radius
func (s *Settings) SetCircleRadius(dp float32) {
	s.setDimension(KeyCircleRadius, dp)
}

// GetLineStrokeWidth returns the connecting line width
func (s *Settings) GetLineStrokeWidth() float32 {
	return s.getDimension(KeyLineStrokeWidth, DefaultLineStrokeWidth)
}

// SetLineStrokeWidth sets the connecting line width
func (s *Settings) SetLineStrokeWidth(dp float32) {
	s.setDimension(KeyLineStrokeWidth, dp)
}

// GetCircleColor returns the marker colour
func (s *Settings) GetCircleColor() ARGB {
	return s.getColor(KeyCircleColor, DefaultCircleColor)
}

// SetCircleColor sets the marker colour
func (s *Settings) SetCircleColor(c ARGB) {
	s.app.Preferences().SetString(KeyCircleColor, c.Hex())
}

// GetLineColor returns the line colour
func (s *Settings) GetLineColor() ARGB {
	return s.getColor(KeyLineColor, DefaultLineColor)
}

// SetLineColor sets the line colour
func (s *Settings) SetLineColor(c ARGB) {
	s.app.Preferences().SetString(KeyLineColor, c.Hex())
}

// GetOrientation returns the configured orientation, falling back to vertical
// when the stored value is not one of the declared variants
func (s *Settings) GetOrientation() model.Orientation {
	value := s.app.Preferences().StringWithFallback(KeyOrientation, DefaultOrientation.String())
	orientation, err := model.ParseOrientation(value)
	if err != nil {
		log.Printf("Warning: ignoring stored %s: %v", KeyOrientation, err)
		return DefaultOrientation
	}
	return orientation
}

// SetOrientation sets the orientation. Unknown values are rejected.
func (s *Settings) SetOrientation(o model.Orientation) error {
	if !o.Valid() {
		return ErrUnsupportedOrientation
	}
	s.app.Preferences().SetString(KeyOrientation, o.String())
	return nil
}

// GetStyle assembles the stored style
func (s *Settings) GetStyle() Style {
	return Style{
		LineLeftMargin:  s.GetLineLeftMargin(),
		LineRightMargin: s.GetLineRightMargin(),
		CircleRadius:    s.GetCircleRadius(),
		LineStrokeWidth: s.GetLineStrokeWidth(),
		CircleColor:     s.GetCircleColor(),
		LineColor:       s.GetLineColor(),
		Orientation:     s.GetOrientation(),
	}
}

// SetStyle validates and stores every style value
func (s *Settings) SetStyle(style Style) error {
	if err := style.Validate(); err != nil {
		return err
	}
	s.SetLineLeftMargin(style.LineLeftMargin)
	s.SetLineRightMargin(style.LineRightMargin)
	s.SetCircleRadius(style.CircleRadius)
	s.SetLineStrokeWidth(style.LineStrokeWidth)
	s.SetCircleColor(style.CircleColor)
	s.SetLineColor(style.LineColor)
	return s.SetOrientation(style.Orientation)
}

// ResetStyle removes every stored style value so defaults apply again
func (s *Settings) ResetStyle() {
	prefs := s.app.Preferences()
	for _, key := range []string{
		KeyLineLeftMargin, KeyLineRightMargin, KeyCircleRadius,
		KeyLineStrokeWidth, KeyCircleColor, KeyLineColor, KeyOrientation,
	} {
		prefs.RemoveValue(key)
	}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
	}
}

func (s *Settings) getDimension(key string, fallback float32) float32 {
	value := s.app.Preferences().FloatWithFallback(key, float64(fallback))
	if value < 0 {
		return fallback
	}
	return float32(value)
}

func (s *Settings) setDimension(key string, dp float32) {
	if dp < 0 {
		dp = 0
	}
	if dp > MaxDimension {
		dp = MaxDimension
	}
	s.app.Preferences().SetFloat(key, float64(dp))
}

func (s *Settings) getColor(key string, fallback ARGB) ARGB {
	value := s.app.Preferences().String(key)
	if value == "" {
		return fallback
	}
	c, err := ParseARGB(value)
	if err != nil {
		log.Printf("Warning: ignoring stored %s: %v", key, err)
		return fallback
	}
	return c
}
