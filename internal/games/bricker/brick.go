package bricker

import (
	"github.com/vovakirdan/tui-bricker/internal/core"
	"github.com/vovakirdan/tui-bricker/internal/scene"
)

// Brick hands every hit to its strategy.
type Brick struct {
	scene.Object
	strategy Strategy
}

// NewBrick creates a brick. The strategy is fixed for the brick's lifetime.
func NewBrick(topLeft, size core.Vec2, v scene.Visual, s Strategy) *Brick {
	return &Brick{Object: scene.NewObject(topLeft, size, v), strategy: s}
}

// Strategy returns the brick's strategy.
func (b *Brick) Strategy() Strategy { return b.strategy }

func (b *Brick) OnCollisionEnter(other scene.Entity, _ scene.Collision) {
	b.strategy.OnCollision(b, other)
}

// Wall bounds the field. The bottom edge is open.
type Wall struct {
	scene.Object
}

// NewWall creates a wall.
func NewWall(topLeft, size core.Vec2, v scene.Visual) *Wall {
	return &Wall{Object: scene.NewObject(topLeft, size, v)}
}
