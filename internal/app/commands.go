// internal/app/commands.go
package app

import (
	"errors"
	"fmt"

	"bulwark/internal/component"
	"bulwark/internal/config"
	"bulwark/internal/defs"
	"bulwark/internal/event"
	"bulwark/internal/types"
	"bulwark/pkg/geom"
)

var (
	ErrInsufficientGold = errors.New("not enough gold")
	ErrPositionOccupied = errors.New("position occupied")
	ErrUnknownTowerType = errors.New("unknown tower type")
	ErrNoSuchTower      = errors.New("no such tower")
)

// BuildTowerAt places a tower of the given definition at a world position.
// The command is all-or-nothing: a rejection mutates no state.
func (g *Game) BuildTowerAt(defID string, worldPos geom.Vec3) (types.EntityID, error) {
	def, ok := defs.TowerLibrary[defID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownTowerType, defID)
	}
	if g.gold < def.BuildCost {
		return 0, ErrInsufficientGold
	}
	for _, id := range g.ECS.TowerIDs() {
		if pos, ok := g.ECS.Positions[id]; ok && pos.Dist(worldPos) < config.TowerSpacing {
			return 0, ErrPositionOccupied
		}
	}

	g.gold -= def.BuildCost

	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{Vec3: worldPos}
	g.ECS.Towers[id] = &component.Tower{
		DefID:      def.ID,
		Level:      1,
		BaseDamage: def.Combat.Damage,
		BaseRange:  def.Combat.Range,
		FireRate:   def.Combat.FireRate,
		BuildCost:  def.BuildCost,
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.RGBA(),
		Radius:    float32(def.Visuals.Radius),
		HasStroke: def.Visuals.StrokeWidth > 0,
	}

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: id})
	return id, nil
}

// UpgradeTower raises the tower one level, recomputing its derived stats.
// The price is evaluated against the current level, before the increment.
func (g *Game) UpgradeTower(id types.EntityID) error {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return ErrNoSuchTower
	}
	cost := tower.UpgradeCost()
	if g.gold < cost {
		return ErrInsufficientGold
	}

	g.gold -= cost
	tower.Level++
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: id})
	return nil
}

// RemoveTower tears a tower down. Not reachable from normal play; kept for
// the debug bindings in the shell.
func (g *Game) RemoveTower(id types.EntityID) error {
	if _, ok := g.ECS.Towers[id]; !ok {
		return ErrNoSuchTower
	}
	g.ECS.RemoveEntity(id)
	return nil
}

// TowerAt resolves a picked world position to the nearest tower within the
// pick radius, for the upgrade panel.
func (g *Game) TowerAt(worldPos geom.Vec3) (types.EntityID, bool) {
	var best types.EntityID
	bestDistSq := config.TowerPickRadius * config.TowerPickRadius
	for _, id := range g.ECS.TowerIDs() {
		pos, ok := g.ECS.Positions[id]
		if !ok {
			continue
		}
		if d := pos.DistSq(worldPos); d <= bestDistSq {
			best = id
			bestDistSq = d
		}
	}
	return best, best != 0
}

// Snapshot is the read-only match summary consumed by the HUD.
type Snapshot struct {
	Gold       int
	Lives      int
	WaveNumber int
	Status     component.MatchStatus
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Gold:       g.gold,
		Lives:      g.lives,
		WaveNumber: g.waveNumber,
		Status:     g.status,
	}
}

// TowerInfo describes one tower for the selection panel.
type TowerInfo struct {
	DefID       string
	Level       int
	Damage      float64
	Range       float64
	UpgradeCost int
}

func (g *Game) TowerInfo(id types.EntityID) (TowerInfo, bool) {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return TowerInfo{}, false
	}
	return TowerInfo{
		DefID:       tower.DefID,
		Level:       tower.Level,
		Damage:      tower.Damage(),
		Range:       tower.Range(),
		UpgradeCost: tower.UpgradeCost(),
	}, true
}
