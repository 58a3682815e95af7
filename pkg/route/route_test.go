package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bulwark/pkg/geom"
)

func TestNewRejectsEmpty(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmptyRoute)

	_, err = New([]geom.Vec3{})
	assert.ErrorIs(t, err, ErrEmptyRoute)
}

func TestLookups(t *testing.T) {
	wps := []geom.Vec3{{X: 0}, {X: 5}, {X: 5, Z: 3}}
	r, err := New(wps)
	require.NoError(t, err)

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, wps[0], r.Start())
	assert.Equal(t, wps[2], r.End())
	assert.Equal(t, wps[1], r.Waypoint(1))
}

func TestImmutableAfterConstruction(t *testing.T) {
	wps := []geom.Vec3{{X: 1}, {X: 2}}
	r, err := New(wps)
	require.NoError(t, err)

	// Mutating the caller's slice must not move the route.
	wps[0] = geom.Vec3{X: 99}
	assert.Equal(t, geom.Vec3{X: 1}, r.Waypoint(0))

	// Same for the copy handed out to read-only consumers.
	out := r.Waypoints()
	out[1] = geom.Vec3{X: -7}
	assert.Equal(t, geom.Vec3{X: 2}, r.Waypoint(1))
}
