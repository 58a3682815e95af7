// internal/system/combat.go
package system

import (
	"bulwark/internal/component"
	"bulwark/internal/config"
	"bulwark/internal/entity"
	"bulwark/internal/types"
)

// CombatSystem drives tower targeting and firing.
type CombatSystem struct {
	ecs *entity.ECS
}

func NewCombatSystem(ecs *entity.ECS) *CombatSystem {
	return &CombatSystem{ecs: ecs}
}

// Update ticks every tower: cooldown runs down, the current target is
// revalidated (cleared if dead or out of range), a new target is acquired
// if needed, and the tower fires once cooldown allows.
func (s *CombatSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.TowerIDs() {
		tower := s.ecs.Towers[id]
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}

		tower.Cooldown -= deltaTime

		if tower.TargetID != 0 && !s.validTarget(tower, pos, tower.TargetID) {
			tower.TargetID = 0
		}
		if tower.TargetID == 0 {
			tower.TargetID = s.findTarget(tower, pos)
		}

		if tower.TargetID != 0 && tower.Cooldown <= 0 {
			s.fire(tower, pos)
		}
	}
}

func (s *CombatSystem) validTarget(tower *component.Tower, towerPos *component.Position, targetID types.EntityID) bool {
	if _, isEnemy := s.ecs.Enemies[targetID]; !isEnemy {
		return false
	}
	health := s.ecs.Healths[targetID]
	if health == nil || health.Dead() {
		return false
	}
	targetPos := s.ecs.Positions[targetID]
	if targetPos == nil {
		return false
	}
	r := tower.Range()
	return towerPos.DistSq(targetPos.Vec3) <= r*r
}

// findTarget scans enemies in spawn order and locks onto the first live one
// inside range. First-found, not nearest-found: the scan order is stable, so
// targeting is deterministic across runs.
func (s *CombatSystem) findTarget(tower *component.Tower, towerPos *component.Position) types.EntityID {
	r := tower.Range()
	rangeSq := r * r
	for _, enemyID := range s.ecs.EnemyIDs() {
		health := s.ecs.Healths[enemyID]
		if health == nil || health.Dead() {
			continue
		}
		enemyPos := s.ecs.Positions[enemyID]
		if enemyPos == nil {
			continue
		}
		if towerPos.DistSq(enemyPos.Vec3) <= rangeSq {
			return enemyID
		}
	}
	return 0
}

// fire spawns one homing projectile at the tower's target and resets the
// cooldown. Firing at a target that died since validation clears the lock
// instead of shooting.
func (s *CombatSystem) fire(tower *component.Tower, towerPos *component.Position) {
	health := s.ecs.Healths[tower.TargetID]
	if health == nil || health.Dead() {
		tower.TargetID = 0
		return
	}

	projID := s.ecs.NewEntity()
	s.ecs.Positions[projID] = &component.Position{Vec3: towerPos.Vec3}
	s.ecs.Projectiles[projID] = &component.Projectile{
		TargetID: tower.TargetID,
		Speed:    config.ProjectileSpeed,
		Damage:   tower.Damage(),
	}
	s.ecs.Renderables[projID] = &component.Renderable{
		Color:  config.TextLightColor,
		Radius: config.ProjectileRadius,
	}

	tower.Cooldown = 1.0 / tower.FireRate
}
