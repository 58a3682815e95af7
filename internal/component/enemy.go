// internal/component/enemy.go
package component

// Enemy marks an entity as a hostile unit walking the route.
type Enemy struct {
	DefID      string // ID from enemies.yaml
	Bounty     int    // gold credited on kill
	ReachedEnd bool   // set by the movement system when the last waypoint is consumed
}
