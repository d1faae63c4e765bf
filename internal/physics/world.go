package physics

import (
	"physics-engine/internal/vec"
)

// Simulation defaults, matching an 800x600-style pixel scene:
// gravity is ~earth in pixels/s², bounds are effectively unbounded
// until SetWorldBounds narrows them.
const (
	defaultGravityY           = 980
	defaultVelocityIterations = 6
	defaultPositionIterations = 2
	defaultBoundsExtent       = 10000
)

// RaycastHit is the result of a successful Raycast query.
type RaycastHit struct {
	Shape    *Shape
	Point    vec.Vec2
	Distance float64
}

// World owns the per-tick simulation pipeline and the registries of
// bodies and shapes. It holds references only: body and shape lifetime
// stays with the caller, which registers them on creation and removes
// them on destruction.
//
// A World is constructed explicitly and passed to whatever drives the
// simulation; independent worlds never share state. Step must not run
// concurrently with itself or with registry mutation — the engine is
// single-threaded by contract. Mutations requested from collision
// callbacks during a step are deferred to the end of that step.
type World struct {
	gravity vec.Vec2

	bodies []*Body
	shapes []*Shape

	velocityIterations int
	// positionIterations is configuration carried over from the usual
	// solver interface but never consulted: positional correction runs
	// inside ResolveCollision. Kept so tuning code round-trips.
	positionIterations int

	minX, minY, maxX, maxY float64

	// Deferred registry mutations. stepping is true while Step is in
	// flight; Add/Remove/Clear calls made then are queued and applied
	// at the tick boundary.
	stepping      bool
	pendingOps    []pendingOp
	contactsCount int // contacts detected by the last Step, for overlays
}

// pendingOp is one queued registry mutation.
type pendingOp struct {
	kind  pendingKind
	body  *Body
	shape *Shape
}

type pendingKind int

const (
	opAddBody pendingKind = iota
	opRemoveBody
	opAddShape
	opRemoveShape
	opClear
)

// NewWorld returns a world with downward gravity (0, 980), six solver
// iterations, and ±10000 bounds on both axes.
func NewWorld() *World {
	return &World{
		gravity:            vec.New(0, defaultGravityY),
		velocityIterations: defaultVelocityIterations,
		positionIterations: defaultPositionIterations,
		minX:               -defaultBoundsExtent,
		minY:               -defaultBoundsExtent,
		maxX:               defaultBoundsExtent,
		maxY:               defaultBoundsExtent,
	}
}

// AddBody registers a body. Adding a body twice is a no-op.
func (w *World) AddBody(body *Body) {
	if w.stepping {
		w.pendingOps = append(w.pendingOps, pendingOp{kind: opAddBody, body: body})
		return
	}
	for _, b := range w.bodies {
		if b == body {
			return
		}
	}
	w.bodies = append(w.bodies, body)
}

// RemoveBody deregisters a body. Removing an unknown body is a no-op.
func (w *World) RemoveBody(body *Body) {
	if w.stepping {
		w.pendingOps = append(w.pendingOps, pendingOp{kind: opRemoveBody, body: body})
		return
	}
	for i, b := range w.bodies {
		if b == body {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}

// AddShape registers a collision shape. Adding a shape twice is a no-op.
func (w *World) AddShape(shape *Shape) {
	if w.stepping {
		w.pendingOps = append(w.pendingOps, pendingOp{kind: opAddShape, shape: shape})
		return
	}
	for _, s := range w.shapes {
		if s == shape {
			return
		}
	}
	w.shapes = append(w.shapes, shape)
}

// RemoveShape deregisters a collision shape.
func (w *World) RemoveShape(shape *Shape) {
	if w.stepping {
		w.pendingOps = append(w.pendingOps, pendingOp{kind: opRemoveShape, shape: shape})
		return
	}
	for i, s := range w.shapes {
		if s == shape {
			w.shapes = append(w.shapes[:i], w.shapes[i+1:]...)
			return
		}
	}
}

// Clear empties both registries. Used on scene reset.
func (w *World) Clear() {
	if w.stepping {
		w.pendingOps = append(w.pendingOps, pendingOp{kind: opClear})
		return
	}
	w.bodies = nil
	w.shapes = nil
}

// applyPending flushes registry mutations queued during a step, in the
// order they were requested.
func (w *World) applyPending() {
	ops := w.pendingOps
	w.pendingOps = nil
	for _, op := range ops {
		switch op.kind {
		case opAddBody:
			w.AddBody(op.body)
		case opRemoveBody:
			w.RemoveBody(op.body)
		case opAddShape:
			w.AddShape(op.shape)
		case opRemoveShape:
			w.RemoveShape(op.shape)
		case opClear:
			w.bodies = nil
			w.shapes = nil
		}
	}
}

// Step advances the simulation by dt seconds: gravity, integration,
// collision detection and notification, iterative resolution, world
// bounds. It runs to completion synchronously; the caller provides the
// fixed-timestep cadence.
func (w *World) Step(dt float64) {
	w.stepping = true

	for _, body := range w.bodies {
		if body.Type() == Dynamic {
			body.ApplyForce(w.gravity.Scale(body.Mass()))
		}
	}

	for _, body := range w.bodies {
		body.Integrate(dt)
	}

	w.detectAndResolve()

	w.enforceBounds()

	w.stepping = false
	w.applyPending()
}

// detectAndResolve runs the broad and narrow phases, notifies owners
// once per contact, then runs the iterative solver over the tick's
// contacts. The solver reuses each contact's stored normal and
// penetration every round rather than re-measuring geometry
// (sequential-impulse approximation).
func (w *World) detectAndResolve() {
	var contacts []Contact

	// Broad phase is exhaustive over distinct pairs; no pruning.
	for i := 0; i < len(w.shapes); i++ {
		for j := i + 1; j < len(w.shapes); j++ {
			a := w.shapes[i]
			b := w.shapes[j]

			if !a.Owner().Active() || !b.Owner().Active() {
				continue
			}

			contact, ok := a.CheckCollision(b)
			if !ok {
				continue
			}
			contacts = append(contacts, contact)

			a.Owner().OnCollision(b.Owner(), contact)
			b.Owner().OnCollision(a.Owner(), contact)
		}
	}

	w.contactsCount = len(contacts)

	for iter := 0; iter < w.velocityIterations; iter++ {
		for _, contact := range contacts {
			if contact.A.IsTrigger() || contact.B.IsTrigger() {
				continue
			}

			bodyA := contact.A.Owner().Body()
			bodyB := contact.B.Owner().Body()
			if bodyA == nil || bodyB == nil {
				continue
			}

			bodyA.ResolveCollision(bodyB, contact.Normal, contact.Penetration)
		}
	}
}

// enforceBounds clamps every body to the world rectangle. A clamped
// axis has its velocity reflected inward, scaled by the body's
// restitution.
func (w *World) enforceBounds() {
	for _, body := range w.bodies {
		pos := body.Position()
		vel := body.Velocity()

		changed := false
		newX, newY := pos.X, pos.Y
		newVelX, newVelY := vel.X, vel.Y

		if pos.X < w.minX {
			newX = w.minX
			newVelX = abs(vel.X) * body.Restitution()
			changed = true
		} else if pos.X > w.maxX {
			newX = w.maxX
			newVelX = -abs(vel.X) * body.Restitution()
			changed = true
		}

		if pos.Y < w.minY {
			newY = w.minY
			newVelY = abs(vel.Y) * body.Restitution()
			changed = true
		} else if pos.Y > w.maxY {
			newY = w.maxY
			newVelY = -abs(vel.Y) * body.Restitution()
			changed = true
		}

		if changed {
			body.SetPosition(vec.New(newX, newY))
			body.SetVelocity(vec.New(newVelX, newVelY))
		}
	}
}

// Raycast scans registered shapes along the segment start→end and
// returns the nearest hit by distance along the ray. Only circle
// shapes are tested; box intersection is not implemented, so rays pass
// through boxes. Inactive owners are skipped.
func (w *World) Raycast(start, end vec.Vec2) (RaycastHit, bool) {
	direction := end.Sub(start)
	maxDistance := direction.Length()
	direction = direction.Normalize()

	var closest RaycastHit
	found := false

	for _, shape := range w.shapes {
		if !shape.Owner().Active() {
			continue
		}
		if shape.Kind() != KindCircle {
			continue
		}

		toCircle := shape.Center().Sub(start)
		projection := toCircle.Dot(direction)
		if projection < 0 || projection > maxDistance {
			continue
		}

		point := start.Add(direction.Scale(projection))
		if point.DistanceTo(shape.Center()) > shape.Radius() {
			continue
		}
		if found && projection >= closest.Distance {
			continue
		}

		closest = RaycastHit{Shape: shape, Point: point, Distance: projection}
		found = true
	}

	return closest, found
}

// Gravity returns the gravity acceleration vector.
func (w *World) Gravity() vec.Vec2 { return w.gravity }

// SetGravity sets the gravity acceleration applied to dynamic bodies.
func (w *World) SetGravity(g vec.Vec2) { w.gravity = g }

// SetWorldBounds sets the rectangle bodies are clamped to.
func (w *World) SetWorldBounds(minX, minY, maxX, maxY float64) {
	w.minX, w.minY, w.maxX, w.maxY = minX, minY, maxX, maxY
}

// VelocityIterations returns the solver pass count per step.
func (w *World) VelocityIterations() int { return w.velocityIterations }

// SetVelocityIterations sets the solver pass count per step (minimum 1).
func (w *World) SetVelocityIterations(n int) {
	if n < 1 {
		n = 1
	}
	w.velocityIterations = n
}

// PositionIterations returns the stored position iteration count. The
// solver does not consult it; see the field comment.
func (w *World) PositionIterations() int { return w.positionIterations }

// SetPositionIterations stores the position iteration count.
func (w *World) SetPositionIterations(n int) { w.positionIterations = n }

// Bodies returns a snapshot copy of the registered bodies.
func (w *World) Bodies() []*Body {
	out := make([]*Body, len(w.bodies))
	copy(out, w.bodies)
	return out
}

// Shapes returns a snapshot copy of the registered shapes.
func (w *World) Shapes() []*Shape {
	out := make([]*Shape, len(w.shapes))
	copy(out, w.shapes)
	return out
}

// ContactCount returns how many contacts the last Step detected.
func (w *World) ContactCount() int { return w.contactsCount }
