package physics

import (
	"physics-engine/internal/vec"
)

// coincidentEpsilon: center distances below this are treated as exact
// overlap and resolved along an arbitrary fixed axis.
const coincidentEpsilon = 1e-6

// Owner is the non-owning link from a shape back to whatever entity
// carries it. The physics core never stores entity state; it queries
// the owner during a step for its position and active flag and calls
// OnCollision once per detected contact.
type Owner interface {
	// Active reports whether the owner participates in collision this
	// tick. Inactive owners are skipped in the broad phase.
	Active() bool
	// Position is the owner's world position; the shape's offset is
	// added to it to get the shape center.
	Position() vec.Vec2
	// Body returns the owner's physics body, or nil for detection-only
	// owners. Contacts without two bodies are detected but not resolved.
	Body() *Body
	// OnCollision is invoked synchronously during World.Step, exactly
	// once per contact per tick, for each of the two owners involved.
	OnCollision(other Owner, contact Contact)
}

// ShapeKind discriminates the closed set of shape geometries.
type ShapeKind int

const (
	// KindBox is an axis-aligned box given by width and height.
	KindBox ShapeKind = iota
	// KindCircle is a circle given by radius.
	KindCircle
)

// Shape is a collision geometry bound to an owner's transform by a
// fixed local offset. Box shapes use Width/Height, circles use Radius;
// the unused fields stay zero.
type Shape struct {
	kind   ShapeKind
	owner  Owner
	offset vec.Vec2

	width  float64 // box only
	height float64 // box only
	radius float64 // circle only

	isTrigger bool
	tag       string
}

// Contact describes one detected intersection. Normal is a unit vector
// pointing from shape A toward shape B. Contacts are transient: the
// world recomputes them from current geometry every tick and never
// caches them across steps.
type Contact struct {
	A, B        *Shape
	Normal      vec.Vec2
	Penetration float64
	Point       vec.Vec2
}

// NewBox returns an axis-aligned box shape of the given size, centered
// on the owner's position.
func NewBox(owner Owner, width, height float64) *Shape {
	return &Shape{kind: KindBox, owner: owner, width: width, height: height}
}

// NewCircle returns a circle shape of the given radius, centered on the
// owner's position.
func NewCircle(owner Owner, radius float64) *Shape {
	return &Shape{kind: KindCircle, owner: owner, radius: radius}
}

// Kind returns the shape's geometry kind.
func (s *Shape) Kind() ShapeKind { return s.kind }

// Owner returns the owning entity reference.
func (s *Shape) Owner() Owner { return s.owner }

// Center returns the owner's position plus the shape's local offset.
func (s *Shape) Center() vec.Vec2 {
	return s.owner.Position().Add(s.offset)
}

// Offset returns the local offset from the owner's position.
func (s *Shape) Offset() vec.Vec2 { return s.offset }

// SetOffset sets the local offset from the owner's position.
func (s *Shape) SetOffset(offset vec.Vec2) { s.offset = offset }

// Width returns the box width (zero for circles).
func (s *Shape) Width() float64 { return s.width }

// Height returns the box height (zero for circles).
func (s *Shape) Height() float64 { return s.height }

// Radius returns the circle radius (zero for boxes).
func (s *Shape) Radius() float64 { return s.radius }

// IsTrigger reports whether the shape only detects contacts. Trigger
// contacts still notify owners but are skipped by the solver.
func (s *Shape) IsTrigger() bool { return s.isTrigger }

// SetTrigger marks the shape as detection-only.
func (s *Shape) SetTrigger(trigger bool) { s.isTrigger = trigger }

// Tag returns the free-form tag string.
func (s *Shape) Tag() string { return s.tag }

// SetTag sets the free-form tag string.
func (s *Shape) SetTag(tag string) { s.tag = tag }

// Box edges in world space. Meaningful for KindBox only.
// Top/Bottom follow screen coordinates: Top is the smaller Y.

// Left returns the box's left edge X.
func (s *Shape) Left() float64 { return s.Center().X - s.width/2 }

// Right returns the box's right edge X.
func (s *Shape) Right() float64 { return s.Center().X + s.width/2 }

// Top returns the box's top edge Y.
func (s *Shape) Top() float64 { return s.Center().Y - s.height/2 }

// Bottom returns the box's bottom edge Y.
func (s *Shape) Bottom() float64 { return s.Center().Y + s.height/2 }

// CheckCollision runs the narrow-phase test between s and other,
// dispatching on the pair of shape kinds. The returned contact's
// normal points from s toward other.
func (s *Shape) CheckCollision(other *Shape) (Contact, bool) {
	switch {
	case s.kind == KindBox && other.kind == KindBox:
		return s.collideBoxBox(other)
	case s.kind == KindBox && other.kind == KindCircle:
		return s.collideBoxCircle(other)
	case s.kind == KindCircle && other.kind == KindCircle:
		return s.collideCircleCircle(other)
	default:
		// Circle vs box: run the box test with roles swapped and flip
		// the normal back to point from s toward other.
		contact, ok := other.collideBoxCircle(s)
		if !ok {
			return Contact{}, false
		}
		contact.A, contact.B = s, other
		contact.Normal = contact.Normal.Scale(-1)
		return contact, true
	}
}

// collideCircleCircle tests two circles by center distance.
func (s *Shape) collideCircleCircle(other *Shape) (Contact, bool) {
	centerA := s.Center()
	centerB := other.Center()

	diff := centerB.Sub(centerA)
	distance := diff.Length()
	radiusSum := s.radius + other.radius

	if distance >= radiusSum {
		return Contact{}, false
	}

	normal := vec.Right // arbitrary axis for exactly coincident centers
	if distance >= coincidentEpsilon {
		normal = diff.Normalize()
	}

	return Contact{
		A:           s,
		B:           other,
		Normal:      normal,
		Penetration: radiusSum - distance,
		Point:       centerA.Add(normal.Scale(s.radius)),
	}, true
}

// collideBoxBox tests two axis-aligned boxes and resolves along the
// axis of least penetration. Equal overlaps resolve on Y.
func (s *Shape) collideBoxBox(other *Shape) (Contact, bool) {
	centerA := s.Center()
	centerB := other.Center()

	halfWidthA := s.width / 2
	halfHeightA := s.height / 2
	halfWidthB := other.width / 2
	halfHeightB := other.height / 2

	diff := centerB.Sub(centerA)

	overlapX := (halfWidthA + halfWidthB) - abs(diff.X)
	overlapY := (halfHeightA + halfHeightB) - abs(diff.Y)

	if overlapX <= 0 || overlapY <= 0 {
		return Contact{}, false
	}

	var normal, point vec.Vec2
	var penetration float64

	if overlapX < overlapY {
		penetration = overlapX
		if diff.X > 0 {
			normal = vec.New(1, 0)
			point = vec.New(s.Right(), centerA.Y)
		} else {
			normal = vec.New(-1, 0)
			point = vec.New(s.Left(), centerA.Y)
		}
	} else {
		penetration = overlapY
		if diff.Y > 0 {
			normal = vec.New(0, 1)
			point = vec.New(centerA.X, s.Bottom())
		} else {
			normal = vec.New(0, -1)
			point = vec.New(centerA.X, s.Top())
		}
	}

	return Contact{A: s, B: other, Normal: normal, Penetration: penetration, Point: point}, true
}

// collideBoxCircle tests a box (s) against a circle by clamping the
// circle center to the box extent. When the center is inside the box,
// the normal points toward the nearest face.
func (s *Shape) collideBoxCircle(circle *Shape) (Contact, bool) {
	circleCenter := circle.Center()

	closest := vec.New(
		vec.Clamp(circleCenter.X, s.Left(), s.Right()),
		vec.Clamp(circleCenter.Y, s.Top(), s.Bottom()),
	)

	diff := circleCenter.Sub(closest)
	distance := diff.Length()

	if distance > circle.radius {
		return Contact{}, false
	}

	var normal vec.Vec2
	if distance < coincidentEpsilon {
		normal = s.nearestFaceNormal(circleCenter)
	} else {
		normal = diff.Normalize()
	}

	return Contact{
		A:           s,
		B:           circle,
		Normal:      normal,
		Penetration: circle.radius - distance,
		Point:       closest,
	}, true
}

// nearestFaceNormal picks the outward normal of the box face closest to
// a point inside the box. Used when a circle center is fully contained.
func (s *Shape) nearestFaceNormal(p vec.Vec2) vec.Vec2 {
	distLeft := abs(p.X - s.Left())
	distRight := abs(s.Right() - p.X)
	distTop := abs(p.Y - s.Top())
	distBottom := abs(s.Bottom() - p.Y)

	minDist := distLeft
	normal := vec.Left
	if distRight < minDist {
		minDist = distRight
		normal = vec.Right
	}
	if distTop < minDist {
		minDist = distTop
		normal = vec.Up
	}
	if distBottom < minDist {
		normal = vec.Down
	}
	return normal
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
