package scene

import (
	"math"

	"github.com/vovakirdan/tui-bricker/internal/core"
)

// Layer groups entities for drawing order and collision rules.
type Layer int

const (
	LayerBackground Layer = iota
	LayerStatic
	LayerDefault
	LayerUI
	numLayers
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerBackground:
		return "background"
	case LayerStatic:
		return "static"
	case LayerDefault:
		return "default"
	case LayerUI:
		return "ui"
	default:
		return "unknown"
	}
}

type entry struct {
	id    uint64
	e     Entity
	layer Layer
}

type pairKey struct{ a, b uint64 }

type contact struct {
	a, b *entry
	n    core.Vec2 // normal for a
}

// Collection holds the active entities of a scene.
// It is not safe for concurrent use.
type Collection struct {
	layers   [numLayers][]*entry
	byEntity map[Entity]*entry
	nextID   uint64
	touching map[pairKey]bool
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{
		byEntity: make(map[Entity]*entry),
		touching: make(map[pairKey]bool),
	}
}

// Add inserts e into the given layer. Adding an entity that is already
// present is a no-op.
func (c *Collection) Add(e Entity, layer Layer) {
	if _, ok := c.byEntity[e]; ok {
		return
	}
	if layer < 0 || layer >= numLayers {
		layer = LayerDefault
	}
	c.nextID++
	en := &entry{id: c.nextID, e: e, layer: layer}
	c.byEntity[e] = en
	c.layers[layer] = append(c.layers[layer], en)
}

// Remove deletes e and reports whether it was present.
func (c *Collection) Remove(e Entity) bool {
	en, ok := c.byEntity[e]
	if !ok {
		return false
	}
	delete(c.byEntity, e)
	list := c.layers[en.layer]
	for i, x := range list {
		if x == en {
			c.layers[en.layer] = append(list[:i], list[i+1:]...)
			break
		}
	}
	return true
}

// Contains reports whether e is in the collection.
func (c *Collection) Contains(e Entity) bool {
	_, ok := c.byEntity[e]
	return ok
}

// LayerOf returns the layer e was added to.
func (c *Collection) LayerOf(e Entity) (Layer, bool) {
	en, ok := c.byEntity[e]
	if !ok {
		return 0, false
	}
	return en.layer, true
}

// Len returns the number of entities across all layers.
func (c *Collection) Len() int {
	return len(c.byEntity)
}

// Each calls fn for every entity of a layer in insertion order.
// fn may add or remove entities.
func (c *Collection) Each(layer Layer, fn func(Entity)) {
	for _, en := range c.snapshot(layer) {
		fn(en.e)
	}
}

// Clear removes every entity.
func (c *Collection) Clear() {
	for i := range c.layers {
		c.layers[i] = nil
	}
	c.byEntity = make(map[Entity]*entry)
	c.touching = make(map[pairKey]bool)
}

func (c *Collection) snapshot(layers ...Layer) []*entry {
	var out []*entry
	for _, l := range layers {
		out = append(out, c.layers[l]...)
	}
	return out
}

func (c *Collection) alive(en *entry) bool {
	cur, ok := c.byEntity[en.e]
	return ok && cur == en
}

// Step advances the scene by dt seconds: every entity is updated, then moved
// by its velocity, then new contacts are reported through OnCollisionEnter.
//
// Contacts are collected before any callback runs, so every contact of the
// step is delivered even when an earlier callback removed a participant.
func (c *Collection) Step(dt float64) {
	all := c.snapshot(LayerBackground, LayerStatic, LayerDefault, LayerUI)
	for _, en := range all {
		if c.alive(en) {
			en.e.Update(dt)
		}
	}
	for _, en := range all {
		if !c.alive(en) {
			continue
		}
		b := en.e.Body()
		if b.Vel != core.Zero {
			b.Pos = b.Pos.Add(b.Vel.Mult(dt))
		}
	}

	for _, ct := range c.detect() {
		ct.a.e.OnCollisionEnter(ct.b.e, Collision{Normal: ct.n})
		ct.b.e.OnCollisionEnter(ct.a.e, Collision{Normal: ct.n.Mult(-1)})
	}
}

// detect returns contacts that started this step and refreshes the set of
// touching pairs. Default entities are tested against each other and against
// Static entities; other layers never collide.
func (c *Collection) detect() []contact {
	var started []contact
	now := make(map[pairKey]bool, len(c.touching))

	test := func(a, b *entry) {
		ra, rb := a.e.Body().Bounds(), b.e.Body().Bounds()
		if !ra.Intersects(rb) {
			return
		}
		if !a.e.ShouldCollideWith(b.e) || !b.e.ShouldCollideWith(a.e) {
			return
		}
		key := pairKey{a.id, b.id}
		now[key] = true
		if !c.touching[key] {
			started = append(started, contact{a: a, b: b, n: normal(a.e.Body(), b.e.Body(), ra, rb)})
		}
	}

	movers := c.layers[LayerDefault]
	for i, a := range movers {
		for _, b := range movers[i+1:] {
			test(a, b)
		}
		for _, b := range c.layers[LayerStatic] {
			test(a, b)
		}
	}

	c.touching = now
	return started
}

// normal picks the axis of least penetration and points away from b.
func normal(a, b *Body, ra, rb core.Rect) core.Vec2 {
	dx, dy := ra.Overlap(rb)
	d := a.Center().Sub(b.Center())
	rel := a.Vel.Sub(b.Vel)
	if dx < dy {
		return core.V(axisSign(d.X, rel.X), 0)
	}
	return core.V(0, axisSign(d.Y, rel.Y))
}

// axisSign returns the sign of the center offset, falling back to the
// opposite of the relative velocity when the centers are aligned.
func axisSign(offset, rel float64) float64 {
	switch {
	case offset != 0:
		return math.Copysign(1, offset)
	case rel != 0:
		return -math.Copysign(1, rel)
	default:
		return -1
	}
}
