// pkg/route/route.go
package route

import (
	"errors"

	"bulwark/pkg/geom"
)

// Route is the fixed ordered list of waypoints enemies walk. It is immutable
// after construction; enemies hold an index into it, never a copy of it.
type Route struct {
	waypoints []geom.Vec3
}

var ErrEmptyRoute = errors.New("route: needs at least one waypoint")

// New copies the given waypoints so later mutation of the caller's slice
// cannot move the route under live enemies.
func New(waypoints []geom.Vec3) (*Route, error) {
	if len(waypoints) == 0 {
		return nil, ErrEmptyRoute
	}
	wps := make([]geom.Vec3, len(waypoints))
	copy(wps, waypoints)
	return &Route{waypoints: wps}, nil
}

func (r *Route) Len() int {
	return len(r.waypoints)
}

func (r *Route) Waypoint(i int) geom.Vec3 {
	return r.waypoints[i]
}

// Start is where spawned enemies appear.
func (r *Route) Start() geom.Vec3 {
	return r.waypoints[0]
}

func (r *Route) End() geom.Vec3 {
	return r.waypoints[len(r.waypoints)-1]
}

// Waypoints returns a copy for read-only consumers such as the renderer.
func (r *Route) Waypoints() []geom.Vec3 {
	wps := make([]geom.Vec3, len(r.waypoints))
	copy(wps, r.waypoints)
	return wps
}
