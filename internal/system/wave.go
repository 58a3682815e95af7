// internal/system/wave.go
package system

import (
	"log"

	"bulwark/internal/component"
	"bulwark/internal/defs"
	"bulwark/internal/entity"
	"bulwark/internal/event"
	"bulwark/pkg/route"
)

// Signal is the scheduler's answer to a start request or an update tick.
type Signal int

const (
	SignalNone Signal = iota
	SignalWaveStarted
	SignalWaveActive  // rejection: a wave is already running
	SignalWaveComplete
	SignalGameWon // no further waves exist
)

// WaveSystem sequences timed spawn groups into enemy spawns.
type WaveSystem struct {
	ecs             *entity.ECS
	route           *route.Route
	eventDispatcher *event.Dispatcher
	currentIndex    int // -1 until the first wave starts
	wave            *component.Wave
}

func NewWaveSystem(ecs *entity.ECS, r *route.Route, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		route:           r,
		eventDispatcher: eventDispatcher,
		currentIndex:    -1,
	}
}

// Current exposes the live wave state for the HUD. Nil before the first wave.
func (s *WaveSystem) Current() *component.Wave {
	return s.wave
}

// StartNextWave activates the next wave from the template list. It rejects
// the request while a wave is running and reports GameWon once the list is
// exhausted. Spawn groups are copied by value into the live queue; the
// template list is never touched.
func (s *WaveSystem) StartNextWave() Signal {
	if s.wave != nil && s.wave.Active {
		return SignalWaveActive
	}

	s.currentIndex++
	if s.currentIndex >= len(defs.WaveList) {
		return SignalGameWon
	}

	def := defs.WaveList[s.currentIndex]
	queue := make([]component.SpawnGroup, 0, len(def.Groups))
	for _, g := range def.Groups {
		if g.Count <= 0 {
			continue
		}
		queue = append(queue, component.SpawnGroup{
			EnemyID:   g.EnemyID,
			Remaining: g.Count,
			Interval:  g.Interval,
		})
	}

	s.wave = &component.Wave{
		Number:     s.currentIndex + 1,
		SpawnQueue: queue,
		SpawnTimer: 0,
		Active:     true,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: s.wave.Number})
	return SignalWaveStarted
}

// Update runs the spawn countdown. When the timer expires the front group
// spawns one enemy; an exhausted group is removed and the timer is primed
// with the next group's interval so its first spawn is not delayed by the
// previous group's cadence. The wave completes only when both the queue and
// the live-enemy collection are empty.
func (s *WaveSystem) Update(deltaTime float64) Signal {
	w := s.wave
	if w == nil || !w.Active {
		return SignalNone
	}

	w.SpawnTimer -= deltaTime
	if w.SpawnTimer <= 0 && len(w.SpawnQueue) > 0 {
		group := &w.SpawnQueue[0]
		def, ok := defs.EnemyLibrary[group.EnemyID]
		if !ok {
			// Dropping the group instead of retrying avoids an infinite stall.
			log.Printf("wave %d: unknown enemy type %q, dropping spawn group", w.Number, group.EnemyID)
			w.SpawnQueue = w.SpawnQueue[1:]
			if len(w.SpawnQueue) > 0 {
				w.SpawnTimer = w.SpawnQueue[0].Interval
			}
		} else {
			s.spawnEnemy(def)
			group.Remaining--
			interval := group.Interval
			if group.Remaining <= 0 {
				w.SpawnQueue = w.SpawnQueue[1:]
				if len(w.SpawnQueue) > 0 {
					interval = w.SpawnQueue[0].Interval
				}
			}
			w.SpawnTimer = interval
		}
	}

	if len(w.SpawnQueue) == 0 && len(s.ecs.Enemies) == 0 {
		w.Active = false
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: w.Number})
		return SignalWaveComplete
	}
	return SignalNone
}

func (s *WaveSystem) spawnEnemy(def defs.EnemyDefinition) {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{Vec3: s.route.Start()}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	s.ecs.PathFollows[id] = &component.PathFollow{WaypointIndex: 0}
	s.ecs.Healths[id] = &component.Health{Value: def.Health}
	s.ecs.Enemies[id] = &component.Enemy{DefID: def.ID, Bounty: def.Bounty}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.RGBA(),
		Radius:    float32(def.Visuals.Radius),
		HasStroke: def.Visuals.StrokeWidth > 0,
	}
}
