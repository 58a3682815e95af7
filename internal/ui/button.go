// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"bulwark/internal/config"
)

// Button is a plain rectangular click target with a label.
type Button struct {
	X, Y, W, H float32
	Label      string
}

func NewButton(x, y, w, h float32, label string) *Button {
	return &Button{X: x, Y: y, W: w, H: h, Label: label}
}

func (b *Button) Contains(mx, my int) bool {
	x, y := float32(mx), float32(my)
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

func (b *Button) Draw(screen *ebiten.Image, hot bool) {
	fill := config.ButtonColor
	if hot {
		fill = config.ButtonHotColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, fill, false)
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, 1, config.TextLightColor, false)

	face := basicfont.Face7x13
	tw := len(b.Label) * 7
	tx := int(b.X) + (int(b.W)-tw)/2
	ty := int(b.Y) + int(b.H)/2 + 4
	text.Draw(screen, b.Label, face, tx, ty, color.White)
}
