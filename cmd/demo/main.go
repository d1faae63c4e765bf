package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-engine/internal/debug"
	"physics-engine/internal/graphics"
	"physics-engine/internal/logger"
	"physics-engine/internal/object"
	"physics-engine/internal/physics"
	"physics-engine/internal/render"
	"physics-engine/internal/simconfig"
	"physics-engine/internal/vec"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

// sceneObject pairs a game object with its draw color; rendering state
// stays out of the object layer.
type sceneObject struct {
	obj   *object.Object
	color rl.Color
}

// scene holds everything the demo simulates and draws.
type scene struct {
	world   *physics.World
	objects []sceneObject
	log     *logger.Logger
	prefs   simconfig.Prefs

	// Last raycast query, redrawn every frame.
	rayStart, rayEnd vec.Vec2
	rayHit           *physics.RaycastHit
}

func newScene(log *logger.Logger) *scene {
	prefs, _ := simconfig.Load()

	world := physics.NewWorld()
	world.SetGravity(vec.New(prefs.GravityX, prefs.GravityY))
	world.SetWorldBounds(prefs.WorldMinX, prefs.WorldMinY, prefs.WorldMaxX, prefs.WorldMaxY)
	world.SetVelocityIterations(prefs.VelocityIterations)

	s := &scene{world: world, log: log, prefs: prefs}
	s.build()
	return s
}

// build populates the demo: ground, walls, platforms, a mix of falling
// boxes and circles, and a trigger zone that logs entries.
func (s *scene) build() {
	// Ground and side walls.
	s.addPlatform("ground", 400, 550, 800, 50, rl.Gray)
	s.addPlatform("wall-left", 25, 300, 50, 600, rl.DarkGray)
	s.addPlatform("wall-right", 775, 300, 50, 600, rl.DarkGray)

	// Floating platforms at different heights.
	s.addPlatform("platform-1", 200, 450, 150, 20, rl.LightGray)
	s.addPlatform("platform-2", 500, 350, 150, 20, rl.LightGray)
	s.addPlatform("platform-3", 300, 250, 150, 20, rl.LightGray)

	// Dynamic boxes with varying mass.
	s.addBox(150, 100, 40, 40, 1.0, rl.Red)
	s.addBox(250, 150, 50, 50, 2.0, rl.Blue)
	s.addBox(350, 80, 30, 30, 0.5, rl.Green)

	// Dynamic circles with varying mass.
	s.addCircle(450, 100, 25, 1.0, rl.Yellow)
	s.addCircle(550, 150, 30, 1.5, rl.Magenta)
	s.addCircle(650, 100, 20, 0.8, rl.SkyBlue)

	// Trigger zone: detects overlap, never pushes anything.
	zone := object.New(s.world, "goal-zone", vec.New(500, 320))
	shape := zone.SetBoxShape(60, 40)
	shape.SetTrigger(true)
	shape.SetTag("goal")
	zone.SetCollisionHandler(func(self *object.Object, other physics.Owner, c physics.Contact) {
		if o, ok := other.(*object.Object); ok {
			s.log.Log("goal zone touched by " + o.Name())
		}
	})
	s.objects = append(s.objects, sceneObject{obj: zone, color: rl.NewColor(0, 128, 0, 60)})
}

// addPlatform creates a static box obstacle.
func (s *scene) addPlatform(name string, x, y, w, h float64, color rl.Color) {
	o := object.New(s.world, name, vec.New(x, y))
	body := o.CreateBody(1000) // large mass for solver stability
	body.SetType(physics.Static)
	o.SetBoxShape(w, h)
	s.objects = append(s.objects, sceneObject{obj: o, color: color})
}

// addBox creates a falling dynamic box.
func (s *scene) addBox(x, y, w, h, mass float64, color rl.Color) {
	name := fmt.Sprintf("box-%d", len(s.objects))
	o := object.New(s.world, name, vec.New(x, y))
	o.CreateBody(mass)
	o.SetBoxShape(w, h)
	s.objects = append(s.objects, sceneObject{obj: o, color: color})
}

// addCircle creates a falling dynamic circle with a bit of bounce.
func (s *scene) addCircle(x, y, r, mass float64, color rl.Color) {
	name := fmt.Sprintf("circle-%d", len(s.objects))
	o := object.New(s.world, name, vec.New(x, y))
	body := o.CreateBody(mass)
	body.SetRestitution(0.7)
	o.SetCircleShape(r)
	s.objects = append(s.objects, sceneObject{obj: o, color: color})
}

// step advances the simulation one fixed tick and handles input:
// left click spawns a circle at the cursor, right click spawns a box,
// and the ray from the top-left corner tracks the cursor.
func (s *scene) step(dt float64) {
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		p := rl.GetMousePosition()
		s.addCircle(float64(p.X), float64(p.Y), 15, 1.0, rl.Orange)
		s.log.Logf("spawned circle at (%.0f, %.0f)", p.X, p.Y)
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		p := rl.GetMousePosition()
		s.addBox(float64(p.X), float64(p.Y), 30, 30, 1.0, rl.Purple)
		s.log.Logf("spawned box at (%.0f, %.0f)", p.X, p.Y)
	}

	s.world.Step(dt)

	for _, so := range s.objects {
		so.obj.Update()
	}

	// Raycast from the corner toward the cursor; circles only.
	mouse := rl.GetMousePosition()
	s.rayStart = vec.New(0, 0)
	s.rayEnd = vec.New(float64(mouse.X), float64(mouse.Y))
	if hit, ok := s.world.Raycast(s.rayStart, s.rayEnd); ok {
		s.rayHit = &hit
	} else {
		s.rayHit = nil
	}
}

// draw renders objects, collider outlines, and the raycast.
func (s *scene) draw(dbg *debug.Debug) {
	for _, so := range s.objects {
		render.Object(so.obj, so.color)
	}
	if s.prefs.ShowColliders {
		render.Colliders(s.world)
	}
	render.Ray(s.rayStart, s.rayEnd, s.rayHit)

	dbg.SetStats(debug.Stats{
		Bodies:   len(s.world.Bodies()),
		Shapes:   len(s.world.Shapes()),
		Contacts: s.world.ContactCount(),
	})
	dbg.Draw()
}

func main() {
	log := logger.New()
	scn := newScene(log)

	dbg := debug.New()
	dbg.SetShowFPS(scn.prefs.ShowFPS)
	dbg.SetShowSimStats(scn.prefs.ShowSimStats)

	log.Log("demo started")
	graphics.Run("physics demo", screenWidth, screenHeight, scn.step, func() {
		scn.draw(dbg)
	})
	log.Log("demo stopped")
}
