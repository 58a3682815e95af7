package defs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTable(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, "enemies.yaml", `
- id: ENEMY_GRUNT
  name: Grunt
  health: 100
  speed: 1.8
  bounty: 10
  visuals: {color: "#c83232", radius: 0.34}
`)
	writeTable(t, dir, "towers.yaml", `
- id: TOWER_CANNON
  name: Cannon
  build_cost: 50
  combat: {damage: 30, fire_rate: 1.2, range: 6}
  visuals: {color: "#ff3232", radius: 0.4, stroke_width: 2}
`)
	writeTable(t, dir, "waves.yaml", `
- groups:
    - {enemy: ENEMY_GRUNT, count: 5, interval: 1.0}
`)
	writeTable(t, dir, "route.yaml", `
- {x: -10, y: 0, z: 0}
- {x: 10, y: 0, z: 0}
`)

	require.NoError(t, LoadAll(dir))

	enemy, ok := EnemyLibrary["ENEMY_GRUNT"]
	require.True(t, ok)
	assert.Equal(t, 100.0, enemy.Health)
	assert.Equal(t, 10, enemy.Bounty)

	tower, ok := TowerLibrary["TOWER_CANNON"]
	require.True(t, ok)
	assert.Equal(t, 50, tower.BuildCost)
	assert.Equal(t, 1.2, tower.Combat.FireRate)
	assert.True(t, tower.Visuals.StrokeWidth > 0)

	require.Len(t, WaveList, 1)
	assert.Equal(t, "ENEMY_GRUNT", WaveList[0].Groups[0].EnemyID)

	require.Len(t, RouteWaypoints, 2)
	assert.Equal(t, -10.0, RouteWaypoints[0].X)
}

func TestLoadRejectsMissingFileAndEmptyWave(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, LoadEnemyDefinitions(filepath.Join(dir, "enemies.yaml")))

	writeTable(t, dir, "waves.yaml", "- groups: []\n")
	assert.Error(t, LoadWaveDefinitions(filepath.Join(dir, "waves.yaml")))

	writeTable(t, dir, "route.yaml", "[]\n")
	assert.Error(t, LoadRouteDefinition(filepath.Join(dir, "route.yaml")))
}

func TestLoadRejectsUnusableStats(t *testing.T) {
	dir := t.TempDir()

	// A zero fire rate would turn the cooldown reset into +Inf and disable
	// the tower forever, so the loader refuses it outright.
	writeTable(t, dir, "towers.yaml", `
- id: TOWER_DUD
  combat: {damage: 30, fire_rate: 0, range: 6}
`)
	err := LoadTowerDefinitions(filepath.Join(dir, "towers.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fire_rate")

	writeTable(t, dir, "towers.yaml", `
- id: TOWER_BLIND
  combat: {damage: 30, fire_rate: 1.2, range: -1}
`)
	err = LoadTowerDefinitions(filepath.Join(dir, "towers.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "range")

	writeTable(t, dir, "enemies.yaml", `
- id: ENEMY_REVERSE
  health: 100
  speed: -2
`)
	err = LoadEnemyDefinitions(filepath.Join(dir, "enemies.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "speed")
}

func TestVisualsColorParsing(t *testing.T) {
	assert.Equal(t, color.RGBA{200, 50, 50, 255}, Visuals{Color: "#c83232"}.RGBA())
	// Malformed values fall back to white instead of failing the load.
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, Visuals{Color: "teal"}.RGBA())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, Visuals{}.RGBA())
}
