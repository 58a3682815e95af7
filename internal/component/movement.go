// internal/component/movement.go
package component

import "bulwark/pkg/geom"

// Position is the world-space location of an entity.
type Position struct {
	geom.Vec3
}

// Velocity is scalar movement speed in world units per second.
type Velocity struct {
	Speed float64
}

// PathFollow is a cursor into the shared route. The index only ever grows.
type PathFollow struct {
	WaypointIndex int
}
