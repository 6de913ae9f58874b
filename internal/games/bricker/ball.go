package bricker

import (
	"github.com/vovakirdan/tui-bricker/internal/config"
	"github.com/vovakirdan/tui-bricker/internal/core"
	"github.com/vovakirdan/tui-bricker/internal/scene"
)

// Ball bounces off everything it touches. While turbo it moves faster and
// drops back to normal after enough hits.
type Ball struct {
	scene.Object
	sound    scene.Sound
	original scene.Visual

	collisions int
	turbo      bool
	turboHits  int

	turboFactor  float64
	maxTurboHits int
}

// NewBall creates a ball. The turbo factor and hit limit come from cfg.
func NewBall(topLeft, size core.Vec2, v scene.Visual, sound scene.Sound, cfg config.BrickerBall) *Ball {
	return &Ball{
		Object:       scene.NewObject(topLeft, size, v),
		sound:        sound,
		original:     v,
		turboFactor:  cfg.TurboFactor,
		maxTurboHits: cfg.TurboHits,
	}
}

func (b *Ball) OnCollisionEnter(_ scene.Entity, c scene.Collision) {
	b.bounce(c)
	b.collisions++

	if !b.turbo {
		return
	}
	b.turboHits++
	if b.turboHits > b.maxTurboHits {
		b.SetVelocity(b.Velocity().Mult(1 / b.turboFactor))
		b.SetVisual(b.original)
		b.turbo = false
		b.turboHits = 0
	}
}

// bounce reflects the velocity off a surface with normal c.Normal. A ball
// already moving away from that surface keeps its velocity, so touching a
// wall and a brick on the same side in one step reflects once.
func (b *Ball) bounce(c scene.Collision) {
	if v := b.Velocity(); v.Dot(c.Normal) < 0 {
		b.SetVelocity(v.Flipped(c.Normal))
	}
	if b.sound != nil {
		b.sound.Play()
	}
}

// EnterTurbo speeds the ball up and swaps its look. It does nothing and
// returns false when the ball is already turbo.
func (b *Ball) EnterTurbo(v scene.Visual) bool {
	if b.turbo {
		return false
	}
	b.SetVelocity(b.Velocity().Mult(b.turboFactor))
	b.SetVisual(v)
	b.turbo = true
	b.turboHits = 0
	return true
}

// CollisionCount returns the number of collisions the ball has taken.
func (b *Ball) CollisionCount() int { return b.collisions }

// IsTurbo reports whether the ball is in turbo mode.
func (b *Ball) IsTurbo() bool { return b.turbo }

// TurboHits returns the hits taken since turbo started.
func (b *Ball) TurboHits() int { return b.turboHits }

// TurboFactor returns the turbo speed multiplier.
func (b *Ball) TurboFactor() float64 { return b.turboFactor }

// Puck is a secondary ball. It bounces like a Ball but keeps no counters,
// and leaves the game once it falls off the field.
type Puck struct {
	Ball
	manager Manager
}

// NewPuck creates a puck.
func NewPuck(topLeft, size core.Vec2, v scene.Visual, sound scene.Sound, m Manager) *Puck {
	return &Puck{
		Ball:    Ball{Object: scene.NewObject(topLeft, size, v), sound: sound, original: v},
		manager: m,
	}
}

func (p *Puck) Update(float64) {
	if p.TopLeft().Y > p.manager.FieldDimensions().Y {
		p.manager.RemoveEntity(p)
	}
}

func (p *Puck) OnCollisionEnter(_ scene.Entity, c scene.Collision) {
	p.bounce(c)
}
