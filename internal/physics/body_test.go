package physics

import (
	"math"
	"testing"

	"physics-engine/internal/vec"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMassClampedOnCreateAndWrite(t *testing.T) {
	for _, m := range []float64{0, -5, 0.001} {
		b := NewBody(vec.Zero, m)
		if b.Mass() != 0.01 {
			t.Errorf("NewBody(mass=%v): mass = %v, want 0.01", m, b.Mass())
		}
		b.SetMass(m)
		if b.Mass() != 0.01 {
			t.Errorf("SetMass(%v): mass = %v, want 0.01", m, b.Mass())
		}
	}
	b := NewBody(vec.Zero, 3)
	if b.Mass() != 3 {
		t.Errorf("valid mass not kept: %v", b.Mass())
	}
}

func TestMaterialClamps(t *testing.T) {
	b := NewBody(vec.Zero, 1)

	b.SetRestitution(1.5)
	if b.Restitution() != 1 {
		t.Errorf("restitution above 1 not clamped: %v", b.Restitution())
	}
	b.SetRestitution(-0.2)
	if b.Restitution() != 0 {
		t.Errorf("restitution below 0 not clamped: %v", b.Restitution())
	}

	b.SetFriction(2)
	if b.Friction() != 1 {
		t.Errorf("friction above 1 not clamped: %v", b.Friction())
	}
	b.SetFriction(-1)
	if b.Friction() != 0 {
		t.Errorf("friction below 0 not clamped: %v", b.Friction())
	}

	b.SetDrag(-3)
	if b.Drag() != 0 {
		t.Errorf("negative drag not clamped: %v", b.Drag())
	}
}

func TestStaticBodyNeverIntegrates(t *testing.T) {
	b := NewBody(vec.New(5, 5), 1)
	b.SetType(Static)
	b.SetVelocity(vec.New(100, 100))

	for _, dt := range []float64{0, 1.0 / 60, 1, 1000} {
		b.Integrate(dt)
		if !b.Position().Equals(vec.New(5, 5)) {
			t.Fatalf("static position moved after Integrate(%v): %v", dt, b.Position())
		}
		if !b.Velocity().Equals(vec.New(100, 100)) {
			t.Fatalf("static velocity changed after Integrate(%v): %v", dt, b.Velocity())
		}
	}
}

func TestStaticBodyIgnoresForcesAndImpulses(t *testing.T) {
	b := NewBody(vec.Zero, 1)
	b.SetType(Static)

	b.ApplyForce(vec.New(1000, 0))
	b.ApplyImpulse(vec.New(1000, 0))
	b.Integrate(1)

	if !b.Velocity().Equals(vec.Zero) {
		t.Errorf("static body gained velocity: %v", b.Velocity())
	}
}

func TestKinematicMovesWithoutForces(t *testing.T) {
	b := NewBody(vec.Zero, 1)
	b.SetType(Kinematic)
	b.SetVelocity(vec.New(10, 0))

	b.ApplyForce(vec.New(0, 1000)) // ignored for kinematic
	b.Integrate(0.5)

	if !b.Position().Equals(vec.New(5, 0)) {
		t.Errorf("kinematic position = %v, want (5,0)", b.Position())
	}
	if !b.Velocity().Equals(vec.New(10, 0)) {
		t.Errorf("kinematic velocity changed: %v", b.Velocity())
	}
}

func TestForceIsDeferredToIntegrate(t *testing.T) {
	b := NewBody(vec.Zero, 2)
	b.SetDrag(0)

	b.ApplyForce(vec.New(10, 0))
	if !b.Velocity().Equals(vec.Zero) {
		t.Fatal("ApplyForce changed velocity immediately")
	}

	b.Integrate(1)
	// a = F/m = 5, v = 5 after 1s.
	if !b.Velocity().Equals(vec.New(5, 0)) {
		t.Errorf("velocity = %v, want (5,0)", b.Velocity())
	}

	// Accumulator must be cleared: another step adds nothing.
	b.Integrate(1)
	if !b.Velocity().Equals(vec.New(5, 0)) {
		t.Errorf("force accumulator not cleared, velocity = %v", b.Velocity())
	}
}

func TestApplyImpulseIsImmediate(t *testing.T) {
	b := NewBody(vec.Zero, 4)
	b.ApplyImpulse(vec.New(8, -8))
	if !b.Velocity().Equals(vec.New(2, -2)) {
		t.Errorf("velocity = %v, want (2,-2)", b.Velocity())
	}
}

func TestSemiImplicitEulerClosedForm(t *testing.T) {
	// Under constant gravity with zero drag, n steps of size h from
	// rest give v = g*n*h and position matching the Euler sum
	// sum(i=1..n) g*i*h² — not the analytic parabola.
	const g = 980.0
	const h = 1.0 / 60
	const n = 120

	b := NewBody(vec.Zero, 1)
	b.SetDrag(0)

	for i := 0; i < n; i++ {
		b.ApplyForce(vec.New(0, g*b.Mass()))
		b.Integrate(h)
	}

	wantV := g * n * h
	if !almost(b.Velocity().Y, wantV) {
		t.Errorf("velocity.Y = %v, want %v", b.Velocity().Y, wantV)
	}

	wantY := 0.0
	for i := 1; i <= n; i++ {
		wantY += g * float64(i) * h * h
	}
	if !almost(b.Position().Y, wantY) {
		t.Errorf("position.Y = %v, want Euler sum %v", b.Position().Y, wantY)
	}
}

func TestDragDamping(t *testing.T) {
	b := NewBody(vec.Zero, 1)
	b.SetDrag(0.5)
	b.SetVelocity(vec.New(10, 0))

	b.Integrate(1)
	// v *= 1 - 0.5*1
	if !almost(b.Velocity().X, 5) {
		t.Errorf("velocity = %v, want 5", b.Velocity().X)
	}

	// Huge drag*dt never flips the sign: factor clamps at zero.
	b.SetVelocity(vec.New(10, 0))
	b.SetDrag(100)
	b.Integrate(1)
	if b.Velocity().X != 0 {
		t.Errorf("overdamped velocity = %v, want 0", b.Velocity().X)
	}
}

func TestRotationIntegration(t *testing.T) {
	b := NewBody(vec.Zero, 1)
	b.SetAngularVelocity(math.Pi)
	b.Integrate(0.5)
	if !almost(b.Rotation(), math.Pi/2) {
		t.Errorf("rotation = %v, want π/2", b.Rotation())
	}

	b.SetFreezeRotation(true)
	b.Integrate(1)
	if !almost(b.Rotation(), math.Pi/2) {
		t.Errorf("frozen rotation advanced: %v", b.Rotation())
	}
}

func TestShouldCollideWith(t *testing.T) {
	a := NewBody(vec.Zero, 1)
	b := NewBody(vec.Zero, 1)
	a.SetType(Static)
	b.SetType(Static)
	if a.ShouldCollideWith(b) {
		t.Error("two static bodies reported as colliding pair")
	}
	b.SetType(Dynamic)
	if !a.ShouldCollideWith(b) {
		t.Error("static/dynamic pair rejected")
	}
}

func TestElasticEqualMassExchange(t *testing.T) {
	// Equal masses, restitution 1, head-on approach: velocities swap.
	a := NewBody(vec.New(-1, 0), 1)
	b := NewBody(vec.New(1, 0), 1)
	a.SetRestitution(1)
	b.SetRestitution(1)
	a.SetFriction(0)
	b.SetFriction(0)
	a.SetVelocity(vec.New(5, 0))
	b.SetVelocity(vec.New(-5, 0))

	a.ResolveCollision(b, vec.Right, 0)

	if !almost(a.Velocity().X, -5) || !almost(a.Velocity().Y, 0) {
		t.Errorf("a.velocity = %v, want (-5,0)", a.Velocity())
	}
	if !almost(b.Velocity().X, 5) || !almost(b.Velocity().Y, 0) {
		t.Errorf("b.velocity = %v, want (5,0)", b.Velocity())
	}
}

func TestSeparatingBodiesNotResolved(t *testing.T) {
	a := NewBody(vec.New(-1, 0), 1)
	b := NewBody(vec.New(1, 0), 1)
	a.SetVelocity(vec.New(-5, 0))
	b.SetVelocity(vec.New(5, 0))

	a.ResolveCollision(b, vec.Right, 1)

	if !a.Velocity().Equals(vec.New(-5, 0)) || !b.Velocity().Equals(vec.New(5, 0)) {
		t.Error("separating pair was modified by resolution")
	}
}

func TestResolveNeverMovesStaticBody(t *testing.T) {
	ground := NewBody(vec.New(0, 10), 1000)
	ground.SetType(Static)
	ball := NewBody(vec.New(0, 9), 1)
	ball.SetVelocity(vec.New(0, 50))

	ball.ResolveCollision(ground, vec.Down, 2)

	if !ground.Position().Equals(vec.New(0, 10)) {
		t.Errorf("static position moved: %v", ground.Position())
	}
	if !ground.Velocity().Equals(vec.Zero) {
		t.Errorf("static velocity changed: %v", ground.Velocity())
	}
	// The dynamic side must have been pushed back and bounced.
	if ball.Velocity().Y >= 0 {
		t.Errorf("ball not bounced, velocity.Y = %v", ball.Velocity().Y)
	}
}

func TestPositionalCorrectionRespectsSlop(t *testing.T) {
	a := NewBody(vec.Zero, 1)
	b := NewBody(vec.New(1, 0), 1)
	// At rest and overlapping less than the slop: no correction.
	a.ResolveCollision(b, vec.Right, 0.005)
	if !a.Position().Equals(vec.Zero) || !b.Position().Equals(vec.New(1, 0)) {
		t.Error("correction applied for penetration below slop")
	}

	// Above the slop the pair is pushed apart along the normal.
	a.ResolveCollision(b, vec.Right, 1)
	if a.Position().X >= 0 {
		t.Errorf("a not pushed back: %v", a.Position())
	}
	if b.Position().X <= 1 {
		t.Errorf("b not pushed forward: %v", b.Position())
	}
}

func TestFrictionSlowsTangentialMotion(t *testing.T) {
	// Ball sliding right while pressed into static ground below.
	ground := NewBody(vec.New(0, 1), 1000)
	ground.SetType(Static)
	ground.SetFriction(1)
	ball := NewBody(vec.Zero, 1)
	ball.SetFriction(1)
	ball.SetRestitution(0)
	ball.SetVelocity(vec.New(10, 2)) // moving right and downward into ground

	ball.ResolveCollision(ground, vec.Down, 0)

	if ball.Velocity().X >= 10 {
		t.Errorf("tangential speed not reduced: %v", ball.Velocity().X)
	}
	if ball.Velocity().X < 0 {
		t.Errorf("friction reversed motion: %v", ball.Velocity().X)
	}
}

func TestFrictionSkippedForPureNormalImpact(t *testing.T) {
	// Head-on impact has no tangential component; the degenerate
	// tangent guard must leave the post-impulse velocities alone.
	a := NewBody(vec.New(-1, 0), 1)
	b := NewBody(vec.New(1, 0), 1)
	a.SetRestitution(1)
	b.SetRestitution(1)
	a.SetFriction(1)
	b.SetFriction(1)
	a.SetVelocity(vec.New(4, 0))
	b.SetVelocity(vec.New(-4, 0))

	a.ResolveCollision(b, vec.Right, 0)

	if !almost(a.Velocity().Y, 0) || !almost(b.Velocity().Y, 0) {
		t.Error("friction introduced lateral velocity on a head-on impact")
	}
	if !almost(a.Velocity().X, -4) || !almost(b.Velocity().X, 4) {
		t.Errorf("velocities = %v, %v, want exchanged", a.Velocity(), b.Velocity())
	}
}
