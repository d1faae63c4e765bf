// Package render draws simulation state with raylib. It lives outside
// the physics core: shapes and bodies know nothing about the screen.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/object"
	"physics-engine/internal/physics"
	"physics-engine/internal/vec"
)

const (
	colliderAlpha = 100
	rayThickness  = 2
	hitMarkerSize = 4
)

// Collider outline colors: green for triggers, red for solid shapes.
var (
	triggerColor = rl.NewColor(0, 255, 0, colliderAlpha)
	solidColor   = rl.NewColor(255, 0, 0, colliderAlpha)
	rayColor     = rl.NewColor(255, 255, 0, 200)
	hitColor     = rl.NewColor(255, 128, 0, 255)
)

// Object draws a filled box or circle at the object's shape, in the
// given color. Objects without a shape are skipped.
func Object(o *object.Object, color rl.Color) {
	s := o.Shape()
	if s == nil {
		return
	}
	center := s.Center()
	switch s.Kind() {
	case physics.KindBox:
		rl.DrawRectangle(
			int32(s.Left()), int32(s.Top()),
			int32(s.Width()), int32(s.Height()),
			color,
		)
	case physics.KindCircle:
		rl.DrawCircle(int32(center.X), int32(center.Y), float32(s.Radius()), color)
	}
}

// ColliderOutline draws the shape's outline, green when the shape is a
// trigger and red otherwise.
func ColliderOutline(s *physics.Shape) {
	c := solidColor
	if s.IsTrigger() {
		c = triggerColor
	}
	center := s.Center()
	switch s.Kind() {
	case physics.KindBox:
		rl.DrawRectangleLines(
			int32(s.Left()), int32(s.Top()),
			int32(s.Width()), int32(s.Height()),
			c,
		)
	case physics.KindCircle:
		rl.DrawCircleLines(int32(center.X), int32(center.Y), float32(s.Radius()), c)
	}
}

// Colliders draws outlines for every shape in the world.
func Colliders(w *physics.World) {
	for _, s := range w.Shapes() {
		ColliderOutline(s)
	}
}

// Ray draws a raycast segment and, when hit is non-nil, a marker at the
// hit point.
func Ray(start, end vec.Vec2, hit *physics.RaycastHit) {
	rl.DrawLineEx(
		rl.NewVector2(float32(start.X), float32(start.Y)),
		rl.NewVector2(float32(end.X), float32(end.Y)),
		rayThickness, rayColor,
	)
	if hit != nil {
		rl.DrawCircle(int32(hit.Point.X), int32(hit.Point.Y), hitMarkerSize, hitColor)
	}
}
