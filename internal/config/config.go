// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 720

	// WorldScale converts world units on the XZ plane to screen pixels.
	WorldScale   = 32.0
	WorldOffsetX = ScreenWidth / 2
	WorldOffsetY = ScreenHeight / 2

	MaxDeltaTime = 0.06

	StartingGold  = 120
	StartingLives = 20

	ProjectileSpeed  = 26.0 // world units per second
	ProjectileRadius = 0.18
	// DefaultHitRadius is the fallback collision threshold when either side
	// of a projectile hit has no renderable radius.
	DefaultHitRadius = 0.5

	// TowerPickRadius is how close a selection click must land to a tower.
	TowerPickRadius = 0.9
	// TowerSpacing is the minimum distance between two tower centers.
	TowerSpacing = 1.6

	// Per-level growth factors for tower stats and the upgrade price.
	TowerDamageGrowth = 1.2
	TowerRangeGrowth  = 1.1
	UpgradeCostGrowth = 1.8

	IndicatorOffsetX = 16
	IndicatorOffsetY = 24
	// NoticeFrames is how many frames a transient HUD notice stays visible.
	NoticeFrames = 180
	ButtonWidth      = 120.0
	ButtonHeight     = 28.0
	PanelWidth       = 200.0
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	RouteColor       = color.RGBA{70, 100, 120, 220}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	PanelColor       = color.RGBA{35, 35, 50, 230}
	ButtonColor      = color.RGBA{70, 130, 180, 220}
	ButtonHotColor   = color.RGBA{90, 160, 210, 220}
	RangeCircleColor = color.RGBA{240, 240, 240, 70}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	SelectionColor   = color.RGBA{255, 215, 0, 255}
	GameOverColor    = color.RGBA{220, 60, 60, 255}
	GameWonColor     = color.RGBA{50, 205, 50, 255}
)
