// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID      string  `yaml:"id"`
	Name    string  `yaml:"name"`
	Health  float64 `yaml:"health"`
	Speed   float64 `yaml:"speed"`
	Bounty  int     `yaml:"bounty"`
	Visuals Visuals `yaml:"visuals"`
}
