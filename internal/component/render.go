// internal/component/render.go
package component

import "image/color"

// Renderable is the visual shape of an entity. Radius is in world units and also
// serves as the collision radius for projectile hits.
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	HasStroke bool
}
