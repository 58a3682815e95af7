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

func addTower(ecs *entity.ECS, pos geom.Vec3) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{Vec3: pos}
	ecs.Towers[id] = &component.Tower{
		DefID:      "TOWER_TEST",
		Level:      1,
		BaseDamage: 30,
		BaseRange:  6,
		FireRate:   1.2,
		BuildCost:  50,
	}
	return id
}

func TestAcquiresFirstSpawnedNotNearest(t *testing.T) {
	ecs := entity.NewECS()
	towerID := addTower(ecs, geom.Vec3{})
	first := addEnemy(ecs, geom.Vec3{X: 5}, 0, 100)  // farther, but spawned first
	_ = addEnemy(ecs, geom.Vec3{X: 1}, 0, 100)       // nearer, spawned later

	NewCombatSystem(ecs).Update(0.01)

	assert.Equal(t, first, ecs.Towers[towerID].TargetID)
}

func TestIgnoresEnemiesOutOfRangeAndDead(t *testing.T) {
	ecs := entity.NewECS()
	towerID := addTower(ecs, geom.Vec3{})
	dead := addEnemy(ecs, geom.Vec3{X: 2}, 0, 100)
	ecs.Healths[dead].Value = -5
	_ = addEnemy(ecs, geom.Vec3{X: 20}, 0, 100) // out of range
	inRange := addEnemy(ecs, geom.Vec3{X: 4}, 0, 100)

	NewCombatSystem(ecs).Update(0.01)

	assert.Equal(t, inRange, ecs.Towers[towerID].TargetID)
}

func TestTargetRevalidatedEveryTick(t *testing.T) {
	ecs := entity.NewECS()
	towerID := addTower(ecs, geom.Vec3{})
	enemyID := addEnemy(ecs, geom.Vec3{X: 3}, 0, 100)
	cs := NewCombatSystem(ecs)

	cs.Update(0.01)
	require.Equal(t, enemyID, ecs.Towers[towerID].TargetID)

	// Walks out of range: the lock is dropped.
	ecs.Positions[enemyID].Vec3 = geom.Vec3{X: 30}
	cs.Update(0.01)
	assert.Equal(t, types.EntityID(0), ecs.Towers[towerID].TargetID)

	// Comes back and dies: a dead enemy is never a valid target.
	ecs.Positions[enemyID].Vec3 = geom.Vec3{X: 3}
	ecs.Healths[enemyID].Value = 0
	cs.Update(0.01)
	assert.Equal(t, types.EntityID(0), ecs.Towers[towerID].TargetID)
}

func TestFireCreatesProjectileAndResetsCooldown(t *testing.T) {
	ecs := entity.NewECS()
	towerID := addTower(ecs, geom.Vec3{})
	enemyID := addEnemy(ecs, geom.Vec3{X: 3}, 0, 100)

	NewCombatSystem(ecs).Update(0.01)

	tower := ecs.Towers[towerID]
	require.Len(t, ecs.Projectiles, 1)
	for _, proj := range ecs.Projectiles {
		assert.Equal(t, enemyID, proj.TargetID)
		assert.InDelta(t, 30.0, proj.Damage, 1e-9)
	}
	assert.InDelta(t, 1.0/1.2, tower.Cooldown, 0.02)
}

func TestCooldownGatesFiring(t *testing.T) {
	ecs := entity.NewECS()
	towerID := addTower(ecs, geom.Vec3{})
	addEnemy(ecs, geom.Vec3{X: 3}, 0, 1000)
	cs := NewCombatSystem(ecs)

	cs.Update(0.01)
	require.Len(t, ecs.Projectiles, 1)

	// Within cooldown nothing fires, however many ticks pass.
	for i := 0; i < 10; i++ {
		cs.Update(0.01)
	}
	assert.Len(t, ecs.Projectiles, 1)

	// After 1/fireRate seconds total, a second shot is released.
	for i := 0; i < 80; i++ {
		cs.Update(0.01)
	}
	assert.Len(t, ecs.Projectiles, 2)
	_ = towerID
}

func TestUpgradedTowerFiresHarder(t *testing.T) {
	ecs := entity.NewECS()
	towerID := addTower(ecs, geom.Vec3{})
	ecs.Towers[towerID].Level = 2
	addEnemy(ecs, geom.Vec3{X: 3}, 0, 100)

	NewCombatSystem(ecs).Update(0.01)

	require.Len(t, ecs.Projectiles, 1)
	for _, proj := range ecs.Projectiles {
		assert.InDelta(t, 36.0, proj.Damage, 1e-9) // 30 * 1.2
	}
}
