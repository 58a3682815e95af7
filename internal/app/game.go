// internal/app/game.go
package app

import (
	"bulwark/internal/component"
	"bulwark/internal/config"
	"bulwark/internal/entity"
	"bulwark/internal/event"
	"bulwark/internal/system"
	"bulwark/pkg/route"
)

// Game owns the match: the entity registry, every system, the economy and
// the terminal-aware status. All mutation of live entities happens inside
// Update, in a fixed order that later steps depend on.
type Game struct {
	ECS              *entity.ECS
	Route            *route.Route
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	WaveSystem       *system.WaveSystem
	EventDispatcher  *event.Dispatcher

	gold       int
	lives      int
	waveNumber int
	status     component.MatchStatus

	gameTime float64
}

// NewGame initializes a new match on the given route.
func NewGame(r *route.Route) *Game {
	if r == nil {
		panic("route cannot be nil")
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	return &Game{
		ECS:              ecs,
		Route:            r,
		MovementSystem:   system.NewMovementSystem(ecs, r),
		CombatSystem:     system.NewCombatSystem(ecs),
		ProjectileSystem: system.NewProjectileSystem(ecs),
		WaveSystem:       system.NewWaveSystem(ecs, r, eventDispatcher),
		EventDispatcher:  eventDispatcher,
		gold:             config.StartingGold,
		lives:            config.StartingLives,
		status:           component.StatusIdle,
	}
}

// Update advances the simulation by one tick. Order is fixed: scheduler,
// towers, projectiles, enemies, reap, terminal evaluation. Once the match
// is over (either way) ticks stop doing anything.
func (g *Game) Update(deltaTime float64) {
	if g.status.Terminal() {
		return
	}

	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	waveSignal := g.WaveSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.reapEnemies()

	if g.status.Terminal() {
		return
	}
	if waveSignal == system.SignalWaveComplete && g.status == component.StatusWaveActive {
		g.status = component.StatusWaveComplete
	}
}

// reapEnemies settles every enemy that became terminal this tick: kills
// credit the bounty, leaks cost a life. Hitting zero lives ends the match
// immediately and skips the remaining reap work.
func (g *Game) reapEnemies() {
	for _, id := range g.ECS.EnemyIDs() {
		enemy := g.ECS.Enemies[id]
		health := g.ECS.Healths[id]

		if health != nil && health.Dead() {
			g.gold += enemy.Bounty
			g.ECS.RemoveEntity(id)
			g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: id})
			continue
		}

		if enemy.ReachedEnd {
			g.lives--
			g.ECS.RemoveEntity(id)
			g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyLeaked, Data: id})
			if g.lives <= 0 {
				g.lives = 0
				g.status = component.StatusGameOver
				g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver})
				return
			}
		}
	}
}

// StartNextWave forwards the start command to the scheduler and lifts its
// answer into the match status.
func (g *Game) StartNextWave() system.Signal {
	switch g.status {
	case component.StatusGameOver:
		return system.SignalNone
	case component.StatusGameWon:
		return system.SignalGameWon
	}

	signal := g.WaveSystem.StartNextWave()
	switch signal {
	case system.SignalWaveStarted:
		g.waveNumber++
		g.status = component.StatusWaveActive
	case system.SignalGameWon:
		g.status = component.StatusGameWon
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameWon})
	}
	return signal
}

func (g *Game) GameTime() float64 {
	return g.gameTime
}
