// Package object is a minimal game-object layer over the physics core.
// It owns entity lifetime (the physics world only borrows references)
// and implements the physics.Owner contract: active flag, position,
// and collision notification.
package object

import (
	"physics-engine/internal/physics"
	"physics-engine/internal/vec"
)

// CollisionHandler is called once per contact per tick for the object
// it is installed on. other is the owner on the far side of the contact.
type CollisionHandler func(self *Object, other physics.Owner, contact physics.Contact)

// Object is a named entity with a transform and optional physics body
// and collision shape. Objects register their body/shape with the world
// they are created in and deregister on Destroy.
type Object struct {
	name   string
	tag    string
	active bool

	position vec.Vec2
	rotation float64

	world *physics.World
	body  *physics.Body
	shape *physics.Shape

	onCollision CollisionHandler
}

// New returns an active object at position, attached to world.
func New(world *physics.World, name string, position vec.Vec2) *Object {
	return &Object{
		name:     name,
		active:   true,
		position: position,
		world:    world,
	}
}

// CreateBody attaches a physics body with the given mass at the
// object's position and registers it with the world. Replaces and
// deregisters any previous body.
func (o *Object) CreateBody(mass float64) *physics.Body {
	if o.body != nil {
		o.world.RemoveBody(o.body)
	}
	o.body = physics.NewBody(o.position, mass)
	o.world.AddBody(o.body)
	return o.body
}

// SetBoxShape attaches an axis-aligned box collision shape and
// registers it with the world. Replaces any previous shape.
func (o *Object) SetBoxShape(width, height float64) *physics.Shape {
	if o.shape != nil {
		o.world.RemoveShape(o.shape)
	}
	o.shape = physics.NewBox(o, width, height)
	o.world.AddShape(o.shape)
	return o.shape
}

// SetCircleShape attaches a circle collision shape and registers it
// with the world. Replaces any previous shape.
func (o *Object) SetCircleShape(radius float64) *physics.Shape {
	if o.shape != nil {
		o.world.RemoveShape(o.shape)
	}
	o.shape = physics.NewCircle(o, radius)
	o.world.AddShape(o.shape)
	return o.shape
}

// Update syncs the object's transform from its body after a physics
// step. Call once per frame for objects with bodies.
func (o *Object) Update() {
	if o.body == nil {
		return
	}
	o.position = o.body.Position()
	o.rotation = o.body.Rotation()
}

// Destroy deregisters the object's body and shape from the world and
// deactivates it. Safe to call more than once.
func (o *Object) Destroy() {
	if o.body != nil {
		o.world.RemoveBody(o.body)
		o.body = nil
	}
	if o.shape != nil {
		o.world.RemoveShape(o.shape)
		o.shape = nil
	}
	o.active = false
}

// SetCollisionHandler installs the callback invoked when this object's
// shape is involved in a contact.
func (o *Object) SetCollisionHandler(fn CollisionHandler) {
	o.onCollision = fn
}

// Active reports whether the object participates in collision.
func (o *Object) Active() bool { return o.active }

// SetActive enables or disables the object.
func (o *Object) SetActive(active bool) { o.active = active }

// Position returns the object's world position: the body's position
// when a body is attached, otherwise the stored transform.
func (o *Object) Position() vec.Vec2 {
	if o.body != nil {
		return o.body.Position()
	}
	return o.position
}

// SetPosition moves the object (and its body, when attached).
func (o *Object) SetPosition(p vec.Vec2) {
	o.position = p
	if o.body != nil {
		o.body.SetPosition(p)
	}
}

// Rotation returns the rotation in radians.
func (o *Object) Rotation() float64 { return o.rotation }

// Body returns the attached physics body, or nil.
func (o *Object) Body() *physics.Body { return o.body }

// Shape returns the attached collision shape, or nil.
func (o *Object) Shape() *physics.Shape { return o.shape }

// OnCollision implements physics.Owner by forwarding to the installed
// handler, if any.
func (o *Object) OnCollision(other physics.Owner, contact physics.Contact) {
	if o.onCollision != nil {
		o.onCollision(o, other, contact)
	}
}

// Name returns the object's name.
func (o *Object) Name() string { return o.name }

// Tag returns the object's tag.
func (o *Object) Tag() string { return o.tag }

// SetTag sets the object's tag.
func (o *Object) SetTag(tag string) { o.tag = tag }
