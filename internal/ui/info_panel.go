// internal/ui/info_panel.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"bulwark/internal/app"
	"bulwark/internal/config"
)

// InfoPanel shows stats and upgrade price for the selected tower.
type InfoPanel struct {
	X, Y float32
}

func NewInfoPanel(x, y float32) *InfoPanel {
	return &InfoPanel{X: x, Y: y}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, info app.TowerInfo) {
	const h = 96
	vector.DrawFilledRect(screen, p.X, p.Y, config.PanelWidth, h, config.PanelColor, false)
	vector.StrokeRect(screen, p.X, p.Y, config.PanelWidth, h, 1, config.TextLightColor, false)

	face := basicfont.Face7x13
	lines := []string{
		fmt.Sprintf("%s  Lv.%d", info.DefID, info.Level),
		fmt.Sprintf("Damage  %.1f", info.Damage),
		fmt.Sprintf("Range   %.1f", info.Range),
		fmt.Sprintf("Upgrade %d gold [U]", info.UpgradeCost),
	}
	for i, line := range lines {
		text.Draw(screen, line, face, int(p.X)+10, int(p.Y)+20+i*18, config.TextLightColor)
	}
}
