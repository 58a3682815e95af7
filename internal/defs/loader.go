// internal/defs/loader.go
package defs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"bulwark/pkg/geom"
)

// TowerLibrary is a map to hold all tower definitions, keyed by their ID.
var TowerLibrary map[string]TowerDefinition

// EnemyLibrary is a map to hold all enemy definitions, keyed by their ID.
var EnemyLibrary map[string]EnemyDefinition

// WaveList is the ordered wave sequence for a match.
var WaveList []WaveDefinition

// RouteWaypoints is the fixed enemy route, in walk order.
var RouteWaypoints []geom.Vec3

// LoadAll populates every library from the YAML tables in dir.
func LoadAll(dir string) error {
	if err := LoadEnemyDefinitions(filepath.Join(dir, "enemies.yaml")); err != nil {
		return err
	}
	if err := LoadTowerDefinitions(filepath.Join(dir, "towers.yaml")); err != nil {
		return err
	}
	if err := LoadWaveDefinitions(filepath.Join(dir, "waves.yaml")); err != nil {
		return err
	}
	return LoadRouteDefinition(filepath.Join(dir, "route.yaml"))
}

// LoadTowerDefinitions reads the tower table and populates TowerLibrary.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := yaml.Unmarshal(file, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	TowerLibrary = make(map[string]TowerDefinition)
	for _, def := range towerDefs {
		if def.Combat.FireRate <= 0 {
			return fmt.Errorf("tower %s: fire_rate must be positive, got %v", def.ID, def.Combat.FireRate)
		}
		if def.Combat.Range <= 0 {
			return fmt.Errorf("tower %s: range must be positive, got %v", def.ID, def.Combat.Range)
		}
		TowerLibrary[def.ID] = def
	}

	log.Printf("Loaded %d tower definitions", len(TowerLibrary))
	return nil
}

// LoadEnemyDefinitions reads the enemy table and populates EnemyLibrary.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := yaml.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	EnemyLibrary = make(map[string]EnemyDefinition)
	for _, def := range enemyDefs {
		if def.Speed < 0 {
			return fmt.Errorf("enemy %s: speed must not be negative, got %v", def.ID, def.Speed)
		}
		EnemyLibrary[def.ID] = def
	}

	log.Printf("Loaded %d enemy definitions", len(EnemyLibrary))
	return nil
}

// LoadWaveDefinitions reads the ordered wave sequence into WaveList.
func LoadWaveDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read wave definitions file: %w", err)
	}

	var waves []WaveDefinition
	if err := yaml.Unmarshal(file, &waves); err != nil {
		return fmt.Errorf("failed to unmarshal wave definitions: %w", err)
	}
	for i, w := range waves {
		if len(w.Groups) == 0 {
			return fmt.Errorf("wave %d has no spawn groups", i+1)
		}
	}

	WaveList = waves
	log.Printf("Loaded %d wave definitions", len(WaveList))
	return nil
}

type waypointDef struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// LoadRouteDefinition reads the enemy route into RouteWaypoints.
func LoadRouteDefinition(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read route file: %w", err)
	}

	var wps []waypointDef
	if err := yaml.Unmarshal(file, &wps); err != nil {
		return fmt.Errorf("failed to unmarshal route: %w", err)
	}
	if len(wps) == 0 {
		return fmt.Errorf("route %s is empty", path)
	}

	RouteWaypoints = make([]geom.Vec3, len(wps))
	for i, wp := range wps {
		RouteWaypoints[i] = geom.Vec3{X: wp.X, Y: wp.Y, Z: wp.Z}
	}

	log.Printf("Loaded route with %d waypoints", len(RouteWaypoints))
	return nil
}
