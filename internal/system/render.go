// internal/system/render.go
package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"bulwark/internal/config"
	"bulwark/internal/entity"
	"bulwark/internal/types"
	"bulwark/pkg/geom"
	"bulwark/pkg/route"
)

// RenderSystem draws the battlefield top-down: the route polyline, every
// entity as a circle, and the selected tower's range ring. It reads
// simulation state and owns no gameplay data.
type RenderSystem struct {
	ecs   *entity.ECS
	route *route.Route
}

func NewRenderSystem(ecs *entity.ECS, r *route.Route) *RenderSystem {
	return &RenderSystem{ecs: ecs, route: r}
}

// WorldToScreen projects a world point on the XZ plane into screen pixels.
func WorldToScreen(p geom.Vec3) (float32, float32) {
	x := float32(p.X*config.WorldScale + config.WorldOffsetX)
	y := float32(p.Z*config.WorldScale + config.WorldOffsetY)
	return x, y
}

// ScreenToWorld inverts WorldToScreen onto the ground plane (Y = 0).
func ScreenToWorld(sx, sy int) geom.Vec3 {
	return geom.Vec3{
		X: (float64(sx) - config.WorldOffsetX) / config.WorldScale,
		Z: (float64(sy) - config.WorldOffsetY) / config.WorldScale,
	}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, selectedTower types.EntityID) {
	s.drawRoute(screen)

	if tower, ok := s.ecs.Towers[selectedTower]; ok {
		if pos, ok := s.ecs.Positions[selectedTower]; ok {
			cx, cy := WorldToScreen(pos.Vec3)
			r := float32(tower.Range() * config.WorldScale)
			vector.StrokeCircle(screen, cx, cy, r, 1, config.RangeCircleColor, true)
		}
	}

	for id, renderable := range s.ecs.Renderables {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		cx, cy := WorldToScreen(pos.Vec3)
		r := renderable.Radius * config.WorldScale
		vector.DrawFilledCircle(screen, cx, cy, r, renderable.Color, true)
		if renderable.HasStroke {
			vector.StrokeCircle(screen, cx, cy, r, 2, config.TowerStrokeColor, true)
		}
		if id == selectedTower {
			vector.StrokeCircle(screen, cx, cy, r+3, 2, config.SelectionColor, true)
		}
	}
}

func (s *RenderSystem) drawRoute(screen *ebiten.Image) {
	wps := s.route.Waypoints()
	for i := 1; i < len(wps); i++ {
		x0, y0 := WorldToScreen(wps[i-1])
		x1, y1 := WorldToScreen(wps[i])
		vector.StrokeLine(screen, x0, y0, x1, y1, 4, config.RouteColor, true)
	}
	for _, wp := range wps {
		x, y := WorldToScreen(wp)
		vector.DrawFilledCircle(screen, x, y, 4, config.RouteColor, true)
	}
}
