// internal/defs/towers.go
package defs

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID        string      `yaml:"id"`
	Name      string      `yaml:"name"`
	BuildCost int         `yaml:"build_cost"`
	Combat    CombatStats `yaml:"combat"`
	Visuals   Visuals     `yaml:"visuals"`
}

// CombatStats are the level-1 combat numbers; per-level scaling is applied
// by the tower component, not here.
type CombatStats struct {
	Damage   float64 `yaml:"damage"`
	FireRate float64 `yaml:"fire_rate"` // shots per second
	Range    float64 `yaml:"range"`     // world units
}
