package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ARGB is a packed 0xAARRGGBB colour, the layout used by Android colour resources
type ARGB uint32

// Default colours
const (
	ColorBlack ARGB = 0xff000000
)

// NRGBA converts the packed value to a non-premultiplied colour
func (c ARGB) NRGBA() color.NRGBA {
	return color.NRGBA{
		A: uint8(c >> 24),
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
	}
}

// Hex returns the colour as #AARRGGBB
func (c ARGB) Hex() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

// RGBHex returns the colour as #RRGGBB, dropping alpha
func (c ARGB) RGBHex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

// FromColor packs any colour into ARGB
func FromColor(c color.Color) ARGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB(uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B))
}

// ParseARGB parses "#RRGGBB", "#AARRGGBB" or "0xAARRGGBB". Six digit forms are opaque.
func ParseARGB(s string) (ARGB, error) {
	raw := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(raw, "#"):
		raw = raw[1:]
	case strings.HasPrefix(raw, "0x"), strings.HasPrefix(raw, "0X"):
		raw = raw[2:]
	}

	if len(raw) != 6 && len(raw) != 8 {
		return 0, fmt.Errorf("%w: colour %q must have 6 or 8 hex digits", ErrInvalidStyle, s)
	}

	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: colour %q: %v", ErrInvalidStyle, s, err)
	}
	if len(raw) == 6 {
		v |= 0xff000000
	}
	return ARGB(v), nil
}
