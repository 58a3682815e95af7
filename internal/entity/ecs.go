// internal/entity/ecs.go
package entity

import (
	"slices"

	"bulwark/internal/component"
	"bulwark/internal/types"
)

// ECS is the single live-entity registry. All three live collections
// (enemies, towers, projectiles) exist only here; systems receive the ECS
// and resolve weak EntityID references against it at time of use.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	PathFollows map[types.EntityID]*component.PathFollow
	Healths     map[types.EntityID]*component.Health
	Renderables map[types.EntityID]*component.Renderable
	Enemies     map[types.EntityID]*component.Enemy
	Towers      map[types.EntityID]*component.Tower
	Projectiles map[types.EntityID]*component.Projectile
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		PathFollows: make(map[types.EntityID]*component.PathFollow),
		Healths:     make(map[types.EntityID]*component.Health),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Towers:      make(map[types.EntityID]*component.Tower),
		Projectiles: make(map[types.EntityID]*component.Projectile),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity drops the entity from every component store.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.PathFollows, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Towers, id)
	delete(ecs.Projectiles, id)
}

// sortedIDs returns the keys of a component store in ascending order.
// IDs are sequential, so ascending order is spawn order; every system that
// cares about iteration order uses these instead of ranging the map.
func sortedIDs[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (ecs *ECS) EnemyIDs() []types.EntityID {
	return sortedIDs(ecs.Enemies)
}

func (ecs *ECS) TowerIDs() []types.EntityID {
	return sortedIDs(ecs.Towers)
}

func (ecs *ECS) ProjectileIDs() []types.EntityID {
	return sortedIDs(ecs.Projectiles)
}
