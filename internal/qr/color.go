package qr

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// lowContrastDelta is the minimum Lab lightness difference between fill and
// background below which scanners start to struggle.
const lowContrastDelta = 0.4

// ParseColor resolves a color descriptor: a hex form ("#RGB", "#RGBA",
// "#RRGGBB", "#RRGGBBAA") or an SVG color name such as "black" or "red".
// Names are case-insensitive.
func ParseColor(s string) (color.Color, error) {
	if s == "" {
		return nil, fmt.Errorf("empty color")
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown color name: %s", s)
}

// parseHexColor parses a hex color string like "#FF0000" or "#FF000080".
func parseHexColor(s string) (color.Color, error) {
	switch len(s) - 1 {
	case 3, 6:
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("invalid hex color: %s", s)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 0xFF}, nil
	case 4:
		val, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid hex color: %s", s)
		}
		return color.NRGBA{
			R: nibble(uint8(val >> 12 & 0xF)),
			G: nibble(uint8(val >> 8 & 0xF)),
			B: nibble(uint8(val >> 4 & 0xF)),
			A: nibble(uint8(val & 0xF)),
		}, nil
	case 8:
		val, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid hex color: %s", s)
		}
		return color.NRGBA{
			R: uint8(val >> 24),
			G: uint8(val >> 16),
			B: uint8(val >> 8),
			A: uint8(val),
		}, nil
	default:
		return nil, fmt.Errorf("invalid hex color: %s", s)
	}
}

// nibble widens a 4-bit channel to 8 bits (0xF becomes 0xFF).
func nibble(v uint8) uint8 {
	return v<<4 | v
}

// LowContrast reports whether fill and back are too close in lightness for a
// scanner to separate reliably. Chroma is ignored on purpose: yellow on white
// is low contrast even though the hues differ.
func LowContrast(fill, back color.Color) bool {
	cf, ok := colorful.MakeColor(fill)
	if !ok {
		return false
	}
	cb, ok := colorful.MakeColor(back)
	if !ok {
		return false
	}
	lf, _, _ := cf.Lab()
	lb, _, _ := cb.Lab()
	delta := lf - lb
	if delta < 0 {
		delta = -delta
	}
	return delta < lowContrastDelta
}
