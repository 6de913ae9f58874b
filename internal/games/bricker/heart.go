package bricker

import (
	"github.com/vovakirdan/tui-bricker/internal/core"
	"github.com/vovakirdan/tui-bricker/internal/scene"
)

// Heart is either a life indicator in the UI or a falling pickup that only
// the primary paddle can catch.
type Heart struct {
	scene.Object
	manager Manager // nil for indicators
}

// NewHeart creates a static indicator heart.
func NewHeart(topLeft, size core.Vec2, v scene.Visual) *Heart {
	return &Heart{Object: scene.NewObject(topLeft, size, v)}
}

// NewFallingHeart creates a pickup centered on center, falling at speed.
func NewFallingHeart(center, size core.Vec2, v scene.Visual, speed float64, m Manager) *Heart {
	h := &Heart{Object: scene.NewObject(core.Zero, size, v), manager: m}
	h.SetCenter(center)
	h.SetVelocity(core.V(0, speed))
	return h
}

// Falling reports whether h is a pickup.
func (h *Heart) Falling() bool { return h.manager != nil }

func (h *Heart) Update(float64) {
	if !h.Falling() {
		return
	}
	if h.TopLeft().Y > h.manager.FieldDimensions().Y {
		h.manager.RemoveEntity(h)
	}
}

func (h *Heart) ShouldCollideWith(other scene.Entity) bool {
	if !h.Falling() {
		return false
	}
	p := h.manager.PrimaryPaddle()
	return p != nil && other == scene.Entity(p)
}

func (h *Heart) OnCollisionEnter(scene.Entity, scene.Collision) {
	if !h.Falling() {
		return
	}
	if h.manager.RemoveEntity(h) {
		h.manager.AddLife()
	}
}
