package bricker

import (
	"github.com/vovakirdan/tui-bricker/internal/core"
	"github.com/vovakirdan/tui-bricker/internal/scene"
)

// steerLatchTicks keeps a steering command alive between terminal key
// repeats, which arrive slower than the tick rate.
const steerLatchTicks = 6

// Paddle is the player's paddle. It moves horizontally between minX and maxX.
type Paddle struct {
	scene.Object
	speed      float64
	minX, maxX float64

	steer int
	latch int
}

// NewPaddle creates a paddle confined to [minX, maxX].
func NewPaddle(topLeft, size core.Vec2, v scene.Visual, speed, minX, maxX float64) *Paddle {
	return &Paddle{
		Object: scene.NewObject(topLeft, size, v),
		speed:  speed,
		minX:   minX,
		maxX:   maxX,
	}
}

// Steer moves the paddle left (dir < 0) or right (dir > 0) for the next few ticks.
func (p *Paddle) Steer(dir int) {
	switch {
	case dir < 0:
		p.steer = -1
	case dir > 0:
		p.steer = 1
	default:
		p.steer = 0
	}
	p.latch = steerLatchTicks
}

func (p *Paddle) Update(dt float64) {
	if p.latch > 0 {
		p.latch--
	} else {
		p.steer = 0
	}

	var vx float64
	switch {
	case dt <= 0:
	case p.steer < 0:
		room := p.TopLeft().X - p.minX
		vx = -min(p.speed, room/dt)
	case p.steer > 0:
		room := p.maxX - p.Bounds().Right()
		vx = min(p.speed, room/dt)
	}
	if (p.steer < 0 && vx > 0) || (p.steer > 0 && vx < 0) {
		vx = 0
	}
	p.SetVelocity(core.V(vx, 0))
}
