package chart

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor resolves a CSS colour name ("skyblue") or a "#rrggbb" hex
// string.
func ParseColor(s string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}

	hex, ok := strings.CutPrefix(name, "#")
	if !ok || len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: unknown color %q", ErrInvalidInput, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: unknown color %q", ErrInvalidInput, s)
	}

	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// withAlpha scales c to a non-premultiplied colour with the given opacity.
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha*255 + 0.5)}
}

// palette is used for series without a configured colour.
func palette(brush int) color.RGBA {
	col := []color.RGBA{
		{R: 31, G: 211, B: 172, A: 255},
		{R: 255, G: 122, B: 180, A: 255},
		{R: 122, G: 156, B: 255, A: 255},
		{R: 255, G: 193, B: 122, A: 255},
		{R: 188, G: 117, B: 255, A: 255},
		{R: 46, G: 140, B: 60, A: 255},
		{R: 140, G: 46, B: 49, A: 255},
		{R: 27, G: 150, B: 146, A: 255},
	}

	return col[brush%len(col)]
}

// seriesColor picks the configured colour for series i, falling back to the
// palette. Colours are validated by Config.Validate.
func (cfg Config) seriesColor(i int) color.RGBA {
	if i < len(cfg.Colors) {
		if c, err := ParseColor(cfg.Colors[i]); err == nil {
			return c
		}
	}
	return palette(i)
}
