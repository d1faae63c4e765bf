package vec

import "math"

// epsilon is the magnitude below which a divisor or vector length is treated as zero.
// Divisions guarded by it return Zero instead of producing NaN or Inf.
const epsilon = 1e-10

// Vec2 is an immutable 2D vector. Every operation returns a new value;
// the zero value is the zero vector. Y grows downward (screen space),
// so Up is (0,-1) and gravity is a positive Y vector.
type Vec2 struct {
	X, Y float64
}

// Common vector constants.
var (
	Zero  = Vec2{0, 0}
	Up    = Vec2{0, -1}
	Down  = Vec2{0, 1}
	Left  = Vec2{-1, 0}
	Right = Vec2{1, 0}
)

// New returns the vector (x, y).
func New(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div returns v divided by s. Returns Zero when |s| is below epsilon.
func (v Vec2) Div(s float64) Vec2 {
	if math.Abs(s) < epsilon {
		return Zero
	}
	return Vec2{v.X / s, v.Y / s}
}

// Dot returns the dot product of v and other.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the squared magnitude of v. Avoids the square
// root when only comparisons are needed.
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector in the direction of v, or Zero when
// the length is below epsilon.
func (v Vec2) Normalize() Vec2 {
	mag := v.Length()
	if mag < epsilon {
		return Zero
	}
	return Vec2{v.X / mag, v.Y / mag}
}

// DistanceTo returns the distance between v and other.
func (v Vec2) DistanceTo(other Vec2) float64 {
	return v.Sub(other).Length()
}

// AngleTo returns the angle between v and other in radians, in [0, π].
// Returns 0 when either vector is near zero length. The cosine is
// clamped to [-1, 1] before acos to absorb floating round-off.
func (v Vec2) AngleTo(other Vec2) float64 {
	mags := v.Length() * other.Length()
	if mags < epsilon {
		return 0
	}
	return math.Acos(Clamp(v.Dot(other)/mags, -1, 1))
}

// Rotate returns v rotated by angle radians (counter-clockwise in a
// Y-up frame; clockwise on screen).
func (v Vec2) Rotate(angle float64) Vec2 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vec2{
		v.X*cos - v.Y*sin,
		v.X*sin + v.Y*cos,
	}
}

// Project returns the projection of v onto onto, or Zero when onto is
// near zero length.
func (v Vec2) Project(onto Vec2) Vec2 {
	mag := onto.LengthSquared()
	if mag < epsilon {
		return Zero
	}
	return onto.Scale(v.Dot(onto) / mag)
}

// Perp returns v rotated 90 degrees counter-clockwise: (-y, x).
func (v Vec2) Perp() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Lerp linearly interpolates from v to target by t. t is not clamped.
func (v Vec2) Lerp(target Vec2, t float64) Vec2 {
	return Vec2{
		v.X + (target.X-v.X)*t,
		v.Y + (target.Y-v.Y)*t,
	}
}

// Equals reports whether both components are within 1e-10 of other's.
func (v Vec2) Equals(other Vec2) bool {
	return math.Abs(v.X-other.X) < epsilon && math.Abs(v.Y-other.Y) < epsilon
}
