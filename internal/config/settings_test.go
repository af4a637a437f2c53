package config

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/timelineview/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestStyleDefaults(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	style := settings.GetStyle()
	if style != DefaultStyle() {
		t.Errorf("Expected default style %+v, got %+v", DefaultStyle(), style)
	}
}

func TestDimensionSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetLineLeftMargin(32)
	if settings.GetLineLeftMargin() != 32 {
		t.Errorf("Expected left margin 32, got %v", settings.GetLineLeftMargin())
	}

	settings.SetLineRightMargin(8)
	if settings.GetLineRightMargin() != 8 {
		t.Errorf("Expected right margin 8, got %v", settings.GetLineRightMargin())
	}

	settings.SetCircleRadius(-4) // Should be clamped to 0
	if settings.GetCircleRadius() != 0 {
		t.Error("Circle radius should be clamped to minimum 0")
	}

	settings.SetLineStrokeWidth(500) // Should be clamped to MaxDimension
	if settings.GetLineStrokeWidth() != MaxDimension {
		t.Errorf("Stroke width should be clamped to %v, got %v", MaxDimension, settings.GetLineStrokeWidth())
	}
}

func TestColorSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetCircleColor(0xff1976d2)
	if settings.GetCircleColor() != 0xff1976d2 {
		t.Errorf("Expected circle colour #ff1976d2, got %s", settings.GetCircleColor().Hex())
	}

	// A corrupted stored value falls back to the default
	app.Preferences().SetString(KeyLineColor, "not-a-colour")
	if settings.GetLineColor() != DefaultLineColor {
		t.Errorf("Expected fallback line colour, got %s", settings.GetLineColor().Hex())
	}
}

func TestOrientationSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if err := settings.SetOrientation(model.OrientationHorizontal); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if settings.GetOrientation() != model.OrientationHorizontal {
		t.Errorf("Expected horizontal, got %s", settings.GetOrientation())
	}

	err := settings.SetOrientation(model.Orientation(9))
	if !errors.Is(err, ErrUnsupportedOrientation) {
		t.Errorf("Expected ErrUnsupportedOrientation, got %v", err)
	}
	if settings.GetOrientation() != model.OrientationHorizontal {
		t.Error("Rejected orientation must not overwrite the stored one")
	}

	app.Preferences().SetString(KeyOrientation, "diagonal")
	if settings.GetOrientation() != DefaultOrientation {
		t.Errorf("Expected fallback to default orientation, got %s", settings.GetOrientation())
	}
}

func TestSetStyleAndReset(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	custom := Style{
		LineLeftMargin:  10,
		LineRightMargin: 12,
		CircleRadius:    6,
		LineStrokeWidth: 3,
		CircleColor:     0xffff0000,
		LineColor:       0xff00ff00,
		Orientation:     model.OrientationHorizontal,
	}
	if err := settings.SetStyle(custom); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if settings.GetStyle() != custom {
		t.Errorf("Expected %+v, got %+v", custom, settings.GetStyle())
	}

	invalid := custom
	invalid.CircleRadius = -1
	if err := settings.SetStyle(invalid); !errors.Is(err, ErrInvalidStyle) {
		t.Errorf("Expected ErrInvalidStyle, got %v", err)
	}
	if settings.GetCircleRadius() != 6 {
		t.Error("Invalid style must not be partially stored")
	}

	tooWide := custom
	tooWide.LineLeftMargin = MaxDimension + 50
	if err := settings.SetStyle(tooWide); !errors.Is(err, ErrInvalidStyle) {
		t.Errorf("Expected ErrInvalidStyle above MaxDimension, got %v", err)
	}
	if settings.GetLineLeftMargin() != 10 {
		t.Errorf("Rejected style must leave stored margin at 10, got %v", settings.GetLineLeftMargin())
	}

	settings.ResetStyle()
	if settings.GetStyle() != DefaultStyle() {
		t.Errorf("Expected defaults after reset, got %+v", settings.GetStyle())
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("en")
	if settings.GetLanguage() != "en" {
		t.Errorf("Expected language 'en', got %s", settings.GetLanguage())
	}

	options := settings.GetLanguageOptions()
	for _, code := range []string{"system", "en", "ru"} {
		if _, exists := options[code]; !exists {
			t.Errorf("Expected language option '%s' to exist", code)
		}
	}
}
