// internal/component/tower.go
package component

import (
	"math"

	"bulwark/internal/config"
	"bulwark/internal/types"
)

// Tower is a stationary attacker. TargetID is a weak reference: it names an
// enemy but owns nothing, and must be revalidated against the live registry
// every tick before use.
type Tower struct {
	DefID      string // ID from towers.yaml
	Level      int    // starts at 1, uncapped
	BaseDamage float64
	BaseRange  float64
	FireRate   float64 // attacks per second
	Cooldown   float64 // seconds until the next allowed attack, may go negative
	TargetID   types.EntityID
	BuildCost  int
}

// Damage is the level-scaled damage per projectile.
func (t *Tower) Damage() float64 {
	return t.BaseDamage * math.Pow(config.TowerDamageGrowth, float64(t.Level-1))
}

// Range is the level-scaled acquisition radius.
func (t *Tower) Range() float64 {
	return t.BaseRange * math.Pow(config.TowerRangeGrowth, float64(t.Level-1))
}

// UpgradeCost prices the next level as a function of the current one.
func (t *Tower) UpgradeCost() int {
	return int(math.Floor(float64(t.BuildCost) * math.Pow(config.UpgradeCostGrowth, float64(t.Level))))
}
