package bricker

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bricker/internal/core"
	"github.com/vovakirdan/tui-bricker/internal/scene"
)

// AIPaddle follows the primary paddle horizontally and leaves the game
// after taking more than maxHits hits.
type AIPaddle struct {
	scene.Object
	follow  *Paddle
	manager Manager
	slot    *PaddleSlot
	log     *log.Logger

	speed   float64
	maxHits int
	hits    int
}

// NewAIPaddle creates an AI paddle that tracks follow. Speed and hit limit
// start at 300 and 4.
func NewAIPaddle(topLeft, size core.Vec2, v scene.Visual, follow *Paddle, m Manager, slot *PaddleSlot) *AIPaddle {
	return &AIPaddle{
		Object:  scene.NewObject(topLeft, size, v),
		follow:  follow,
		manager: m,
		slot:    slot,
		log:     discard,
		speed:   300,
		maxHits: 4,
	}
}

// Update steers toward the followed paddle's center without passing it.
func (a *AIPaddle) Update(dt float64) {
	dx := a.follow.Center().X - a.Center().X
	if dx == 0 || dt <= 0 {
		a.SetVelocity(core.Zero)
		return
	}

	vx := math.Copysign(a.speed, dx)
	if math.Abs(dx) < a.speed*dt {
		vx = dx / dt
	}
	a.SetVelocity(core.V(vx, 0))
}

func (a *AIPaddle) OnCollisionEnter(scene.Entity, scene.Collision) {
	a.hits++
	if a.hits <= a.maxHits {
		return
	}
	a.manager.RemoveEntity(a)
	a.hits = 0
	if a.slot != nil {
		a.slot.Release(a)
	}
	a.log.Debug("ai paddle removed", "reason", "own hits")
}

// Hits returns the collisions taken since the paddle spawned.
func (a *AIPaddle) Hits() int { return a.hits }
