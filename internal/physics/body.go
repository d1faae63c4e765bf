package physics

import (
	"physics-engine/internal/vec"
)

// BodyType controls how a body responds to the simulation.
type BodyType int

const (
	// Dynamic bodies are moved by forces, impulses, and gravity.
	Dynamic BodyType = iota
	// Kinematic bodies ignore forces but move under their own velocity.
	Kinematic
	// Static bodies never move; only an explicit SetPosition/SetVelocity
	// can relocate them.
	Static
)

// String returns the body type name, for logs and debug overlays.
func (t BodyType) String() string {
	switch t {
	case Dynamic:
		return "dynamic"
	case Kinematic:
		return "kinematic"
	case Static:
		return "static"
	default:
		return "unknown"
	}
}

// Physical property limits. Out-of-range writes are clamped, never
// rejected: minMass keeps 1/mass finite everywhere in the solver.
const (
	minMass = 0.01

	// Positional correction constants (Baumgarte stabilization):
	// overlap below penetrationSlop is tolerated, the rest is corrected
	// by correctionPercent per resolution call.
	penetrationSlop   = 0.01
	correctionPercent = 0.4

	// tangentEpsilon: squared-length threshold below which the friction
	// tangent is degenerate and friction is skipped.
	tangentEpsilon = 1e-10
)

// Body is a point-mass rigid body: kinematic state, material
// properties, and the force accumulator consumed by Integrate.
// Bodies carry an angular velocity applied directly to rotation;
// there is no rotational inertia or torque model.
type Body struct {
	position     vec.Vec2
	velocity     vec.Vec2
	acceleration vec.Vec2

	mass        float64
	restitution float64
	friction    float64
	drag        float64

	bodyType BodyType

	forceAccum vec.Vec2

	rotation        float64
	angularVelocity float64
	freezeRotation  bool
}

// NewBody returns a Dynamic body at position with the given mass
// (clamped to 0.01). Defaults: restitution 0.5, friction 0.3, drag 0.01.
func NewBody(position vec.Vec2, mass float64) *Body {
	if mass < minMass {
		mass = minMass
	}
	return &Body{
		position:    position,
		mass:        mass,
		restitution: 0.5,
		friction:    0.3,
		drag:        0.01,
		bodyType:    Dynamic,
	}
}

// ApplyForce accumulates a force to be consumed by the next Integrate.
// No-op for non-dynamic bodies.
func (b *Body) ApplyForce(force vec.Vec2) {
	if b.bodyType != Dynamic {
		return
	}
	b.forceAccum = b.forceAccum.Add(force)
}

// ApplyImpulse changes velocity immediately by impulse/mass.
// No-op for non-dynamic bodies.
func (b *Body) ApplyImpulse(impulse vec.Vec2) {
	if b.bodyType != Dynamic {
		return
	}
	b.velocity = b.velocity.Add(impulse.Div(b.mass))
}

// Integrate advances the body by dt seconds using semi-implicit Euler:
// velocity is updated from accumulated forces first, then position from
// the new velocity. Static bodies are untouched; kinematic bodies skip
// the force and drag stage. The force accumulator is cleared.
func (b *Body) Integrate(dt float64) {
	if b.bodyType == Static {
		return
	}

	if b.bodyType == Dynamic {
		b.acceleration = b.forceAccum.Div(b.mass)
		b.velocity = b.velocity.Add(b.acceleration.Scale(dt))

		dragFactor := 1 - b.drag*dt
		if dragFactor < 0 {
			dragFactor = 0
		}
		b.velocity = b.velocity.Scale(dragFactor)

		b.forceAccum = vec.Zero
	}

	b.position = b.position.Add(b.velocity.Scale(dt))

	if !b.freezeRotation {
		b.rotation += b.angularVelocity * dt
	}
}

// ShouldCollideWith reports whether a contact between b and other needs
// resolution. Two static bodies never resolve.
func (b *Body) ShouldCollideWith(other *Body) bool {
	return !(b.bodyType == Static && other.bodyType == Static)
}

// ResolveCollision applies an impulse-based response between b and
// other. normal must be a unit vector pointing from b toward other;
// penetration is the overlap depth. Velocities already separating along
// the normal are left alone. Impulses and positional correction only
// ever move dynamic participants.
func (b *Body) ResolveCollision(other *Body, normal vec.Vec2, penetration float64) {
	if !b.ShouldCollideWith(other) {
		return
	}

	relativeVelocity := other.velocity.Sub(b.velocity)
	velAlongNormal := relativeVelocity.Dot(normal)

	// Already separating.
	if velAlongNormal > 0 {
		return
	}

	// Restitution: the less bouncy material wins.
	e := b.restitution
	if other.restitution < e {
		e = other.restitution
	}

	invMassSum := 1/b.mass + 1/other.mass
	j := -(1 + e) * velAlongNormal / invMassSum
	impulse := normal.Scale(j)

	if b.bodyType == Dynamic {
		b.velocity = b.velocity.Sub(impulse.Div(b.mass))
	}
	if other.bodyType == Dynamic {
		other.velocity = other.velocity.Add(impulse.Div(other.mass))
	}

	// Positional correction keeps resting bodies from sinking into each
	// other as integration error accumulates.
	depth := penetration - penetrationSlop
	if depth < 0 {
		depth = 0
	}
	correction := normal.Scale(depth / invMassSum * correctionPercent)

	if b.bodyType == Dynamic {
		b.position = b.position.Sub(correction.Div(b.mass))
	}
	if other.bodyType == Dynamic {
		other.position = other.position.Add(correction.Div(other.mass))
	}

	b.applyFriction(other, normal, relativeVelocity)
}

// applyFriction applies a Coulomb-clamped tangential impulse using the
// pre-resolution relative velocity.
func (b *Body) applyFriction(other *Body, normal, relativeVelocity vec.Vec2) {
	tangent := relativeVelocity.Sub(normal.Scale(relativeVelocity.Dot(normal)))
	if tangent.LengthSquared() < tangentEpsilon {
		return
	}
	tangent = tangent.Normalize()

	invMassSum := 1/b.mass + 1/other.mass
	jt := -relativeVelocity.Dot(tangent) / invMassSum

	// Coulomb bound: |friction impulse| <= mu * |normal impulse|.
	mu := (b.friction + other.friction) * 0.5
	velAlongNormal := relativeVelocity.Dot(normal)
	maxFriction := mu * velAlongNormal * invMassSum
	if maxFriction < 0 {
		maxFriction = -maxFriction
	}
	jt = vec.Clamp(jt, -maxFriction, maxFriction)

	frictionImpulse := tangent.Scale(jt)

	if b.bodyType == Dynamic {
		b.velocity = b.velocity.Sub(frictionImpulse.Div(b.mass))
	}
	if other.bodyType == Dynamic {
		other.velocity = other.velocity.Add(frictionImpulse.Div(other.mass))
	}
}

// Position returns the body's position.
func (b *Body) Position() vec.Vec2 { return b.position }

// SetPosition moves the body unconditionally, regardless of body type.
func (b *Body) SetPosition(p vec.Vec2) { b.position = p }

// Velocity returns the body's velocity.
func (b *Body) Velocity() vec.Vec2 { return b.velocity }

// SetVelocity sets the body's velocity unconditionally.
func (b *Body) SetVelocity(v vec.Vec2) { b.velocity = v }

// Acceleration returns the acceleration computed by the last Integrate.
func (b *Body) Acceleration() vec.Vec2 { return b.acceleration }

// Mass returns the body's mass.
func (b *Body) Mass() float64 { return b.mass }

// SetMass sets the mass, clamped to at least 0.01.
func (b *Body) SetMass(m float64) {
	if m < minMass {
		m = minMass
	}
	b.mass = m
}

// Restitution returns the bounciness in [0, 1].
func (b *Body) Restitution() float64 { return b.restitution }

// SetRestitution sets the bounciness, clamped to [0, 1].
func (b *Body) SetRestitution(r float64) {
	b.restitution = vec.Clamp(r, 0, 1)
}

// Friction returns the surface friction coefficient in [0, 1].
func (b *Body) Friction() float64 { return b.friction }

// SetFriction sets the friction coefficient, clamped to [0, 1].
func (b *Body) SetFriction(f float64) {
	b.friction = vec.Clamp(f, 0, 1)
}

// Drag returns the linear drag coefficient.
func (b *Body) Drag() float64 { return b.drag }

// SetDrag sets the drag coefficient, clamped to be non-negative.
func (b *Body) SetDrag(d float64) {
	if d < 0 {
		d = 0
	}
	b.drag = d
}

// Type returns the body type.
func (b *Body) Type() BodyType { return b.bodyType }

// SetType sets the body type.
func (b *Body) SetType(t BodyType) { b.bodyType = t }

// Rotation returns the rotation in radians.
func (b *Body) Rotation() float64 { return b.rotation }

// SetRotation sets the rotation in radians.
func (b *Body) SetRotation(r float64) { b.rotation = r }

// AngularVelocity returns the angular velocity in radians per second.
func (b *Body) AngularVelocity() float64 { return b.angularVelocity }

// SetAngularVelocity sets the angular velocity in radians per second.
func (b *Body) SetAngularVelocity(av float64) { b.angularVelocity = av }

// FreezeRotation reports whether rotation integration is disabled.
func (b *Body) FreezeRotation() bool { return b.freezeRotation }

// SetFreezeRotation enables or disables rotation integration.
func (b *Body) SetFreezeRotation(freeze bool) { b.freezeRotation = freeze }
