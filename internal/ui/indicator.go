// internal/ui/indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"bulwark/internal/app"
	"bulwark/internal/component"
	"bulwark/internal/config"
	"bulwark/internal/event"
)

// MatchIndicator prints the gold/lives/wave line, a transient notice fed by
// match events, and the verdict banner once the match ends.
type MatchIndicator struct {
	X, Y int

	notice       string
	noticeFrames int
}

// NewMatchIndicator subscribes the indicator to the match events it
// announces.
func NewMatchIndicator(x, y int, d *event.Dispatcher) *MatchIndicator {
	i := &MatchIndicator{X: x, Y: y}
	d.Subscribe(event.WaveStarted, i)
	d.Subscribe(event.WaveEnded, i)
	d.Subscribe(event.EnemyLeaked, i)
	return i
}

// OnEvent turns match events into the notice line.
func (i *MatchIndicator) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		i.setNotice(fmt.Sprintf("Wave %v incoming", e.Data))
	case event.WaveEnded:
		i.setNotice(fmt.Sprintf("Wave %v cleared", e.Data))
	case event.EnemyLeaked:
		i.setNotice("Enemy breached the line")
	}
}

func (i *MatchIndicator) setNotice(msg string) {
	i.notice = msg
	i.noticeFrames = config.NoticeFrames
}

// Notice is the current transient message, empty once it has expired.
func (i *MatchIndicator) Notice() string {
	if i.noticeFrames <= 0 {
		return ""
	}
	return i.notice
}

func (i *MatchIndicator) Draw(screen *ebiten.Image, snap app.Snapshot) {
	face := basicfont.Face7x13
	line := fmt.Sprintf("Gold %d   Lives %d   Wave %d   %s",
		snap.Gold, snap.Lives, snap.WaveNumber, snap.Status)
	text.Draw(screen, line, face, i.X, i.Y, config.TextLightColor)

	if n := i.Notice(); n != "" {
		i.noticeFrames--
		text.Draw(screen, n, face, i.X, i.Y+18, config.TextLightColor)
	}

	switch snap.Status {
	case component.StatusGameOver:
		drawBanner(screen, "DEFEAT", config.GameOverColor)
	case component.StatusGameWon:
		drawBanner(screen, "VICTORY", config.GameWonColor)
	}
}

func drawBanner(screen *ebiten.Image, msg string, clr color.RGBA) {
	face := basicfont.Face7x13
	tw := len(msg) * 7
	text.Draw(screen, msg, face, (config.ScreenWidth-tw)/2, config.ScreenHeight/2, clr)
}
