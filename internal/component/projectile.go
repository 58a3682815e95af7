// internal/component/projectile.go
package component

import "bulwark/internal/types"

// Projectile is a homing munition locked onto one enemy. TargetID is a weak
// reference; if the target is gone the projectile terminates without damage.
type Projectile struct {
	TargetID types.EntityID
	Speed    float64
	Damage   float64
}
