// internal/system/movement.go
package system

import (
	"bulwark/internal/entity"
	"bulwark/pkg/route"
)

// MovementSystem advances enemies along the shared route.
type MovementSystem struct {
	ecs   *entity.ECS
	route *route.Route
}

func NewMovementSystem(ecs *entity.ECS, r *route.Route) *MovementSystem {
	return &MovementSystem{ecs: ecs, route: r}
}

// Update moves each live enemy toward its current waypoint. When the step
// would overshoot, the enemy snaps onto the waypoint and the cursor
// advances; the leftover distance is discarded, so an enemy covers at most
// one waypoint per tick no matter how large dt is. Terminal enemies
// (dead or arrived) are left alone for the reaper.
func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		follow := s.ecs.PathFollows[id]
		if pos == nil || vel == nil || follow == nil {
			continue
		}
		if enemy.ReachedEnd {
			continue
		}
		if health, ok := s.ecs.Healths[id]; ok && health.Dead() {
			continue
		}
		if follow.WaypointIndex >= s.route.Len() {
			enemy.ReachedEnd = true
			continue
		}

		target := s.route.Waypoint(follow.WaypointIndex)
		toTarget := target.Sub(pos.Vec3)
		dist := toTarget.Len()
		step := vel.Speed * deltaTime

		if step >= dist {
			pos.Vec3 = target
			follow.WaypointIndex++
			if follow.WaypointIndex >= s.route.Len() {
				enemy.ReachedEnd = true
			}
		} else {
			pos.Vec3 = pos.Vec3.Add(toTarget.Scale(step / dist))
		}
	}
}
