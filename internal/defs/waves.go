// internal/defs/waves.go
package defs

// SpawnGroupDef is the template for repeated timed spawns of one enemy type.
// The scheduler copies it by value into its live queue; the template itself
// is never mutated during play.
type SpawnGroupDef struct {
	EnemyID  string  `yaml:"enemy"`
	Count    int     `yaml:"count"`
	Interval float64 `yaml:"interval"` // seconds between spawns
}

// WaveDefinition is an ordered list of spawn groups released as one unit.
type WaveDefinition struct {
	Groups []SpawnGroupDef `yaml:"groups"`
}
