// internal/component/wave.go
package component

// SpawnGroup is the live, mutable copy of one spawn-group template. Groups
// are copied by value from the wave definition when a wave starts, so
// decrementing Remaining can never corrupt the template.
type SpawnGroup struct {
	EnemyID   string
	Remaining int
	Interval  float64 // seconds between spawns of this group
}

// Wave is the scheduler's live state for the wave in progress.
type Wave struct {
	Number     int
	SpawnQueue []SpawnGroup
	SpawnTimer float64 // countdown to the next spawn
	Active     bool
}
