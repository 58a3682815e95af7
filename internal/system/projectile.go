// internal/system/projectile.go
package system

import (
	"bulwark/internal/config"
	"bulwark/internal/entity"
	"bulwark/internal/types"
)

// ProjectileSystem flies homing projectiles and resolves their hits.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

// Update advances every projectile one tick. A projectile whose target is
// gone or already dead terminates without applying damage. Otherwise it
// re-aims at the target's current position; when it would reach or overlap
// the target this tick, damage lands and the projectile is destroyed.
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.ProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.ecs.RemoveEntity(id)
			continue
		}

		targetPos := s.ecs.Positions[proj.TargetID]
		targetHealth := s.ecs.Healths[proj.TargetID]
		if targetPos == nil || targetHealth == nil || targetHealth.Dead() {
			// Invalid: target destroyed by another cause, terminate harmlessly.
			s.ecs.RemoveEntity(id)
			continue
		}

		toTarget := targetPos.Sub(pos.Vec3)
		dist := toTarget.Len()
		step := proj.Speed * deltaTime

		if dist <= step || dist <= s.hitThreshold(id, proj.TargetID) {
			targetHealth.Value -= proj.Damage
			s.ecs.RemoveEntity(id)
			continue
		}

		pos.Vec3 = pos.Vec3.Add(toTarget.Scale(step / dist))
	}
}

// hitThreshold sums the collision radii of projectile and target, falling
// back to a constant when either side has no renderable.
func (s *ProjectileSystem) hitThreshold(projID, targetID types.EntityID) float64 {
	projR, okP := s.ecs.Renderables[projID]
	targetR, okT := s.ecs.Renderables[targetID]
	if !okP || !okT {
		return config.DefaultHitRadius
	}
	return float64(projR.Radius + targetR.Radius)
}
