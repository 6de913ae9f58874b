// Package scene is a small retained-mode entity collection: layered entities,
// velocity integration and axis-aligned collision detection with enter
// callbacks. Game packages build their entities on top of Object.
package scene

import "github.com/vovakirdan/tui-bricker/internal/core"

// Visual is how an entity is drawn: a glyph repeated over its bounds, a
// single glyph at its center when Point is set, or a text label written at
// its top-left corner when Text is set.
type Visual struct {
	Glyph rune
	Color core.Color
	Point bool
	Text  string
}

// Sound is a loaded sound effect.
type Sound interface {
	Play()
}

// ImageReader loads visuals by name.
type ImageReader interface {
	ReadImage(name string) Visual
}

// SoundReader loads sounds by name.
type SoundReader interface {
	ReadSound(name string) Sound
}

// Collision describes a contact as seen by the entity receiving the callback.
type Collision struct {
	// Normal is a unit vector on the contact axis pointing away from the other body.
	Normal core.Vec2
}

// Body holds the physical state of an entity. Pos is the top-left corner.
type Body struct {
	Pos    core.Vec2
	Size   core.Vec2
	Vel    core.Vec2
	Visual Visual
}

// Bounds returns the body's bounding box.
func (b *Body) Bounds() core.Rect {
	return core.RectAt(b.Pos, b.Size)
}

// Center returns the center of the body.
func (b *Body) Center() core.Vec2 {
	return b.Pos.Add(b.Size.Mult(0.5))
}

// SetCenter moves the body so that its center is c.
func (b *Body) SetCenter(c core.Vec2) {
	b.Pos = c.Sub(b.Size.Mult(0.5))
}

// Entity is anything that lives in a Collection.
type Entity interface {
	Body() *Body
	// Update runs once per step before the body is moved by its velocity.
	Update(dt float64)
	// OnCollisionEnter runs when this entity starts overlapping another.
	OnCollisionEnter(other Entity, c Collision)
	// ShouldCollideWith filters contacts; both sides must agree.
	ShouldCollideWith(other Entity) bool
}

// Object is an embeddable Entity with no behavior of its own.
type Object struct {
	body Body
}

// NewObject creates an object at the given top-left corner.
func NewObject(topLeft, size core.Vec2, v Visual) Object {
	return Object{body: Body{Pos: topLeft, Size: size, Visual: v}}
}

func (o *Object) Body() *Body                         { return &o.body }
func (o *Object) Update(float64)                      {}
func (o *Object) OnCollisionEnter(Entity, Collision)  {}
func (o *Object) ShouldCollideWith(other Entity) bool { return true }

func (o *Object) Center() core.Vec2       { return o.body.Center() }
func (o *Object) SetCenter(c core.Vec2)   { o.body.SetCenter(c) }
func (o *Object) TopLeft() core.Vec2      { return o.body.Pos }
func (o *Object) Size() core.Vec2         { return o.body.Size }
func (o *Object) Velocity() core.Vec2     { return o.body.Vel }
func (o *Object) SetVelocity(v core.Vec2) { o.body.Vel = v }
func (o *Object) Visual() Visual          { return o.body.Visual }
func (o *Object) SetVisual(v Visual)      { o.body.Visual = v }
func (o *Object) Bounds() core.Rect       { return o.body.Bounds() }
