// internal/defs/types.go
package defs

import (
	"image/color"
	"strconv"
	"strings"
)

// Visuals are the renderer-facing attributes of a definition. Radius is in
// world units and doubles as the collision radius.
type Visuals struct {
	Color       string  `yaml:"color"` // "#rrggbb"
	Radius      float64 `yaml:"radius"`
	StrokeWidth float64 `yaml:"stroke_width"`
}

// RGBA parses the hex color, falling back to white on malformed input.
func (v Visuals) RGBA() color.RGBA {
	s := strings.TrimPrefix(v.Color, "#")
	if len(s) != 6 {
		return color.RGBA{255, 255, 255, 255}
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{255, 255, 255, 255}
	}
	return color.RGBA{uint8(n >> 16), uint8(n >> 8), uint8(n), 255}
}
