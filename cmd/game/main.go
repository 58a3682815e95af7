// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"bulwark/internal/app"
	"bulwark/internal/config"
	"bulwark/internal/defs"
	"bulwark/internal/system"
	"bulwark/internal/types"
	"bulwark/internal/ui"
	"bulwark/pkg/route"
)

// AppGame is the ebiten shell around the simulation core. It owns the
// frame clock, input routing and HUD; the core never sees raw input.
type AppGame struct {
	game         *app.Game
	renderSystem *system.RenderSystem
	watcher      *defs.Watcher
	defsDir      string

	indicator   *ui.MatchIndicator
	startButton *ui.Button
	infoPanel   *ui.InfoPanel

	lastUpdateTime time.Time
	isPaused       bool
	speed          float64

	selectedTower types.EntityID
	buildIDs      []string
	buildIndex    int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	a.drainReloads()
	a.handleInput()

	if !a.isPaused {
		a.game.Update(deltaTime * a.speed)
	}
	return nil
}

// drainReloads applies pending stat-table edits before the next tick runs,
// so a reload can never race the simulation.
func (a *AppGame) drainReloads() {
	if a.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case _, ok := <-a.watcher.Events:
			if !ok {
				return
			}
			reload = true
		case err := <-a.watcher.Errors:
			log.Printf("defs watcher: %v", err)
		default:
			if reload {
				if err := defs.LoadAll(a.defsDir); err != nil {
					log.Printf("defs reload failed: %v", err)
				}
			}
			return
		}
	}
}

func (a *AppGame) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.game.StartNextWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.isPaused = !a.isPaused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		if a.speed == 1.0 {
			a.speed = 2.0
		} else {
			a.speed = 1.0
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) && len(a.buildIDs) > 0 {
		a.buildIndex = (a.buildIndex + 1) % len(a.buildIDs)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) && a.selectedTower != 0 {
		if err := a.game.UpgradeTower(a.selectedTower); err != nil {
			log.Printf("upgrade: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) && a.selectedTower != 0 {
		if err := a.game.RemoveTower(a.selectedTower); err != nil {
			log.Printf("remove: %v", err)
		}
		a.selectedTower = 0
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if a.startButton.Contains(mx, my) {
			a.game.StartNextWave()
			return
		}
		a.handleWorldClick(mx, my)
	}
}

// handleWorldClick selects the tower under the cursor, or builds a new one
// on empty ground.
func (a *AppGame) handleWorldClick(mx, my int) {
	worldPos := system.ScreenToWorld(mx, my)
	if id, ok := a.game.TowerAt(worldPos); ok {
		a.selectedTower = id
		return
	}
	a.selectedTower = 0

	if len(a.buildIDs) == 0 {
		return
	}
	id, err := a.game.BuildTowerAt(a.buildIDs[a.buildIndex], worldPos)
	if err != nil {
		log.Printf("build: %v", err)
		return
	}
	a.selectedTower = id
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	a.renderSystem.Draw(screen, a.selectedTower)

	snap := a.game.Snapshot()
	a.indicator.Draw(screen, snap)

	mx, my := ebiten.CursorPosition()
	a.startButton.Draw(screen, a.startButton.Contains(mx, my))

	if info, ok := a.game.TowerInfo(a.selectedTower); ok {
		a.infoPanel.Draw(screen, info)
	}
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	defsDir := flag.String("defs", "assets/defs", "directory with the stat tables")
	flag.Parse()

	if err := defs.LoadAll(*defsDir); err != nil {
		log.Fatal(err)
	}

	r, err := route.New(defs.RouteWaypoints)
	if err != nil {
		log.Fatal(err)
	}

	game := app.NewGame(r)

	watcher, err := defs.NewWatcher(*defsDir)
	if err != nil {
		log.Printf("defs watcher disabled: %v", err)
		watcher = nil
	}

	buildIDs := make([]string, 0, len(defs.TowerLibrary))
	for id := range defs.TowerLibrary {
		buildIDs = append(buildIDs, id)
	}
	slices.Sort(buildIDs)

	shell := &AppGame{
		game:         game,
		renderSystem: system.NewRenderSystem(game.ECS, r),
		watcher:      watcher,
		defsDir:      *defsDir,
		indicator:    ui.NewMatchIndicator(config.IndicatorOffsetX, config.IndicatorOffsetY, game.EventDispatcher),
		startButton: ui.NewButton(
			config.ScreenWidth-config.ButtonWidth-16, 16,
			config.ButtonWidth, config.ButtonHeight, "Start Wave"),
		infoPanel:      ui.NewInfoPanel(config.ScreenWidth-config.PanelWidth-16, 56),
		lastUpdateTime: time.Now(),
		speed:          1.0,
		buildIDs:       buildIDs,
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Bulwark")
	if err := ebiten.RunGame(shell); err != nil {
		log.Fatal(err)
	}
}
