package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bulwark/internal/component"
	"bulwark/internal/entity"
	"bulwark/internal/types"
	"bulwark/pkg/geom"
)

func addProjectile(ecs *entity.ECS, pos geom.Vec3, target types.EntityID, speed, damage float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{Vec3: pos}
	ecs.Projectiles[id] = &component.Projectile{TargetID: target, Speed: speed, Damage: damage}
	return id
}

func TestHitAppliesDamageAndDestroysProjectile(t *testing.T) {
	ecs := entity.NewECS()
	enemyID := addEnemy(ecs, geom.Vec3{X: 1}, 0, 50)
	projID := addProjectile(ecs, geom.Vec3{}, enemyID, 26, 20)

	NewProjectileSystem(ecs).Update(0.1) // step 2.6 covers the whole distance

	assert.NotContains(t, ecs.Projectiles, projID)
	assert.InDelta(t, 30.0, ecs.Healths[enemyID].Value, 1e-9)
}

func TestVanishedTargetTerminatesWithoutDamage(t *testing.T) {
	ecs := entity.NewECS()
	victim := addEnemy(ecs, geom.Vec3{X: 1}, 0, 50)
	bystander := addEnemy(ecs, geom.Vec3{X: 2}, 0, 50)
	projID := addProjectile(ecs, geom.Vec3{}, victim, 26, 20)

	// The target is destroyed by another cause before the projectile runs.
	ecs.RemoveEntity(victim)

	NewProjectileSystem(ecs).Update(0.1)

	assert.NotContains(t, ecs.Projectiles, projID)
	assert.InDelta(t, 50.0, ecs.Healths[bystander].Value, 1e-9)
}

func TestDeadTargetTerminatesWithoutDamage(t *testing.T) {
	ecs := entity.NewECS()
	enemyID := addEnemy(ecs, geom.Vec3{X: 1}, 0, 50)
	ecs.Healths[enemyID].Value = -3
	projID := addProjectile(ecs, geom.Vec3{}, enemyID, 26, 20)

	NewProjectileSystem(ecs).Update(0.1)

	assert.NotContains(t, ecs.Projectiles, projID)
	assert.InDelta(t, -3.0, ecs.Healths[enemyID].Value, 1e-9)
}

func TestHomingReaimsAtCurrentPosition(t *testing.T) {
	ecs := entity.NewECS()
	enemyID := addEnemy(ecs, geom.Vec3{Z: 10}, 0, 500)
	projID := addProjectile(ecs, geom.Vec3{}, enemyID, 5, 20)
	ps := NewProjectileSystem(ecs)

	ps.Update(0.1)
	require.InDelta(t, 0.5, ecs.Positions[projID].Z, 1e-9)
	require.InDelta(t, 0.0, ecs.Positions[projID].X, 1e-9)

	// The target moves; the projectile must chase its current position,
	// not the one it was aimed at.
	ecs.Positions[enemyID].Vec3 = geom.Vec3{X: 10, Z: 0.5}
	ps.Update(0.1)
	assert.Greater(t, ecs.Positions[projID].X, 0.0)
	assert.InDelta(t, 0.5, ecs.Positions[projID].Z, 1e-9)
}

func TestCollisionRadiiWidenTheHitWindow(t *testing.T) {
	ecs := entity.NewECS()
	enemyID := addEnemy(ecs, geom.Vec3{X: 0.5}, 0, 50)
	ecs.Renderables[enemyID] = &component.Renderable{Radius: 0.4}
	projID := addProjectile(ecs, geom.Vec3{}, enemyID, 1, 20)
	ecs.Renderables[projID] = &component.Renderable{Radius: 0.2}

	// The step (0.001) is far short of the distance, but the combined
	// radii (0.6) already overlap the target.
	NewProjectileSystem(ecs).Update(0.001)

	assert.NotContains(t, ecs.Projectiles, projID)
	assert.InDelta(t, 30.0, ecs.Healths[enemyID].Value, 1e-9)
}
