package vec

import (
	"math"
	"testing"
)

const tol = 1e-9

func almost(a, b float64) bool {
	return math.Abs(a-b) < tol
}

func TestAddSubScale(t *testing.T) {
	a := New(1, 2)
	b := New(3, -4)

	if got := a.Add(b); !got.Equals(New(4, -2)) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); !got.Equals(New(-2, 6)) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2.5); !got.Equals(New(2.5, 5)) {
		t.Errorf("Scale = %v", got)
	}
}

func TestDivGuardsNearZeroScalar(t *testing.T) {
	v := New(3, 4)
	if got := v.Div(2); !got.Equals(New(1.5, 2)) {
		t.Errorf("Div(2) = %v", got)
	}
	if got := v.Div(0); got != Zero {
		t.Errorf("Div(0) = %v, want Zero", got)
	}
	if got := v.Div(1e-11); got != Zero {
		t.Errorf("Div(1e-11) = %v, want Zero", got)
	}
	if got := v.Div(-1e-11); got != Zero {
		t.Errorf("Div(-1e-11) = %v, want Zero", got)
	}
}

func TestNormalizeGuardsNearZeroLength(t *testing.T) {
	if got := New(3, 4).Normalize(); !got.Equals(New(0.6, 0.8)) {
		t.Errorf("Normalize = %v", got)
	}
	if got := Zero.Normalize(); got != Zero {
		t.Errorf("Normalize(Zero) = %v, want Zero", got)
	}
	if got := New(1e-11, 1e-11).Normalize(); got != Zero {
		t.Errorf("Normalize(tiny) = %v, want Zero", got)
	}
}

func TestLengthAndDistance(t *testing.T) {
	v := New(3, 4)
	if !almost(v.Length(), 5) {
		t.Errorf("Length = %v", v.Length())
	}
	if !almost(v.LengthSquared(), 25) {
		t.Errorf("LengthSquared = %v", v.LengthSquared())
	}
	if d := New(1, 1).DistanceTo(New(4, 5)); !almost(d, 5) {
		t.Errorf("DistanceTo = %v", d)
	}
}

func TestDot(t *testing.T) {
	if d := New(1, 2).Dot(New(3, 4)); !almost(d, 11) {
		t.Errorf("Dot = %v", d)
	}
	if d := Right.Dot(Up); !almost(d, 0) {
		t.Errorf("Dot(perpendicular) = %v", d)
	}
}

func TestAngleTo(t *testing.T) {
	if a := Right.AngleTo(Up); !almost(a, math.Pi/2) {
		t.Errorf("AngleTo(perpendicular) = %v", a)
	}
	if a := Right.AngleTo(Left); !almost(a, math.Pi) {
		t.Errorf("AngleTo(opposite) = %v", a)
	}
	// Zero-length input returns 0 rather than NaN.
	if a := Zero.AngleTo(Right); a != 0 {
		t.Errorf("AngleTo from Zero = %v", a)
	}
	// Parallel vectors of different lengths: cosine may round past 1;
	// result must be exactly representable, not NaN.
	if a := New(1e8, 1e-8).AngleTo(New(2e8, 2e-8)); math.IsNaN(a) {
		t.Error("AngleTo produced NaN for near-parallel vectors")
	}
}

func TestRotate(t *testing.T) {
	if got := Right.Rotate(math.Pi / 2); !got.Equals(New(0, 1)) {
		t.Errorf("Rotate(90°) = %v", got)
	}
	if got := New(1, 2).Rotate(2 * math.Pi); !almost(got.X, 1) || !almost(got.Y, 2) {
		t.Errorf("Rotate(360°) = %v", got)
	}
}

func TestProject(t *testing.T) {
	if got := New(2, 3).Project(Right); !got.Equals(New(2, 0)) {
		t.Errorf("Project onto X = %v", got)
	}
	if got := New(2, 3).Project(Zero); got != Zero {
		t.Errorf("Project onto Zero = %v, want Zero", got)
	}
}

func TestPerp(t *testing.T) {
	if got := New(3, 4).Perp(); !got.Equals(New(-4, 3)) {
		t.Errorf("Perp = %v", got)
	}
	// Perpendicularity holds for any input.
	v := New(-2.5, 7)
	if d := v.Dot(v.Perp()); !almost(d, 0) {
		t.Errorf("v·Perp(v) = %v", d)
	}
}

func TestLerp(t *testing.T) {
	a := New(0, 0)
	b := New(10, -20)
	if got := a.Lerp(b, 0); !got.Equals(a) {
		t.Errorf("Lerp(0) = %v", got)
	}
	if got := a.Lerp(b, 1); !got.Equals(b) {
		t.Errorf("Lerp(1) = %v", got)
	}
	if got := a.Lerp(b, 0.5); !got.Equals(New(5, -10)) {
		t.Errorf("Lerp(0.5) = %v", got)
	}
}

func TestEqualsTolerance(t *testing.T) {
	if !New(1, 1).Equals(New(1+1e-11, 1-1e-11)) {
		t.Error("Equals rejected difference below tolerance")
	}
	if New(1, 1).Equals(New(1+1e-9, 1)) {
		t.Error("Equals accepted difference above tolerance")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp mid = %v", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp low = %v", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp high = %v", got)
	}
}

func TestMoveTowards(t *testing.T) {
	if got := MoveTowards(0, 10, 3); !almost(got, 3) {
		t.Errorf("MoveTowards partial = %v", got)
	}
	if got := MoveTowards(9, 10, 3); got != 10 {
		t.Errorf("MoveTowards overshoot = %v", got)
	}
	if got := MoveTowards(10, 0, 4); !almost(got, 6) {
		t.Errorf("MoveTowards down = %v", got)
	}
}

func TestSign(t *testing.T) {
	if Sign(-3) != -1 || Sign(3) != 1 || Sign(0) != 0 {
		t.Error("Sign wrong")
	}
}

func TestApprox(t *testing.T) {
	if !Approx(1, 1+1e-7) {
		t.Error("Approx rejected close values")
	}
	if Approx(1, 1.001) {
		t.Error("Approx accepted distant values")
	}
}
