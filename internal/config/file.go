package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/ytget/timelineview/internal/model"
)

// Style file keys beyond the style options
const (
	KeyDensity = "density"
	KeyEntries = "entries"
	KeyTitle   = "title"
)

// EnvPrefix prefixes environment overrides, e.g. TIMELINE_CIRCLE_RADIUS
const EnvPrefix = "TIMELINE"

// DefaultDensity is the terminal preview density in cells per dp
const DefaultDensity float32 = 0.25

// EntryConfig is one entry listed in a style file
type EntryConfig struct {
	Title  string `mapstructure:"title"`
	Detail string `mapstructure:"detail"`
	Hidden bool   `mapstructure:"hidden"`
}

// File holds everything a style file can describe
type File struct {
	Title   string
	Style   Style
	Density float32
	Entries []EntryConfig
}

// Timeline builds model entries from the file, keeping file order
func (f File) Timeline() *model.Timeline {
	tl := model.NewTimeline(f.Title)
	for _, ec := range f.Entries {
		entry := model.NewEntry(ec.Title, ec.Detail)
		entry.Hidden = ec.Hidden
		tl.AddEntry(entry)
	}
	return tl
}

// LoadFile reads a TOML, YAML or JSON style file. An empty path loads defaults
// and environment overrides only. Env var overrides use prefix TIMELINE_.
func LoadFile(path string) (File, error) {
	v := viper.New()

	def := DefaultStyle()
	v.SetDefault(KeyTitle, "timeline")
	v.SetDefault(KeyLineLeftMargin, def.LineLeftMargin)
	v.SetDefault(KeyLineRightMargin, def.LineRightMargin)
	v.SetDefault(KeyCircleRadius, def.CircleRadius)
	v.SetDefault(KeyLineStrokeWidth, def.LineStrokeWidth)
	v.SetDefault(KeyCircleColor, def.CircleColor.Hex())
	v.SetDefault(KeyLineColor, def.LineColor.Hex())
	v.SetDefault(KeyOrientation, def.Orientation.String())
	v.SetDefault(KeyDensity, DefaultDensity)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)
		if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext == "" {
			v.SetConfigType("toml")
		}
		if err := v.ReadInConfig(); err != nil {
			return File{}, fmt.Errorf("read style file: %w", err)
		}
	}

	style, err := styleFromViper(v)
	if err != nil {
		return File{}, err
	}

	var entries []EntryConfig
	if err := v.UnmarshalKey(KeyEntries, &entries); err != nil {
		return File{}, fmt.Errorf("unmarshal entries: %w", err)
	}

	density := float32(v.GetFloat64(KeyDensity))
	if density <= 0 {
		return File{}, fmt.Errorf("%w: %s = %v", ErrInvalidStyle, KeyDensity, density)
	}

	return File{
		Title:   v.GetString(KeyTitle),
		Style:   style,
		Density: density,
		Entries: entries,
	}, nil
}

func styleFromViper(v *viper.Viper) (Style, error) {
	circleColor, err := ParseARGB(v.GetString(KeyCircleColor))
	if err != nil {
		return Style{}, fmt.Errorf("%s: %w", KeyCircleColor, err)
	}
	lineColor, err := ParseARGB(v.GetString(KeyLineColor))
	if err != nil {
		return Style{}, fmt.Errorf("%s: %w", KeyLineColor, err)
	}
	orientation, err := model.ParseOrientation(v.GetString(KeyOrientation))
	if err != nil {
		return Style{}, fmt.Errorf("%w: %v", ErrUnsupportedOrientation, err)
	}

	style := Style{
		LineLeftMargin:  float32(v.GetFloat64(KeyLineLeftMargin)),
		LineRightMargin: float32(v.GetFloat64(KeyLineRightMargin)),
		CircleRadius:    float32(v.GetFloat64(KeyCircleRadius)),
		LineStrokeWidth: float32(v.GetFloat64(KeyLineStrokeWidth)),
		CircleColor:     circleColor,
		LineColor:       lineColor,
		Orientation:     orientation,
	}
	if err := style.Validate(); err != nil {
		return Style{}, err
	}
	return style, nil
}
