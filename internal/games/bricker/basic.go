package bricker

import (
	"math"

	"github.com/vovakirdan/tui-bricker/internal/assets"
	"github.com/vovakirdan/tui-bricker/internal/core"
	"github.com/vovakirdan/tui-bricker/internal/scene"
)

// Basic only removes the brick.
type Basic struct {
	d *Deps
}

func (s *Basic) OnCollision(brick *Brick, _ scene.Entity) {
	s.d.removeBrick(brick)
}

func (s *Basic) Kind() Kind { return KindBasic }
func (s *Basic) sealed()    {}

const puckCount = 2

// ExtraBalls removes the brick and releases two pucks from its center.
type ExtraBalls struct {
	d     *Deps
	image scene.Visual
}

func newExtraBalls(d *Deps) *ExtraBalls {
	return &ExtraBalls{d: d, image: d.Images.ReadImage(assets.Puck)}
}

func (s *ExtraBalls) OnCollision(brick *Brick, _ scene.Entity) {
	s.d.removeBrick(brick)

	extras := s.d.Config.Extras
	size := s.d.Config.Ball.Size * extras.PuckScale
	for range puckCount {
		p := NewPuck(core.Zero, core.V(size, size), s.image, s.d.Sound, s.d.Manager)
		p.SetCenter(brick.Center())
		p.SetVelocity(upwardVelocity(s.d.Rand, extras.PuckSpeed))
		s.d.Manager.AddEntity(p)
	}
	s.d.logger().Debug("pucks released", "count", puckCount, "at", brick.Center())
}

func (s *ExtraBalls) Kind() Kind { return KindExtraBalls }
func (s *ExtraBalls) sealed()    {}

// upwardVelocity picks a direction uniformly from the upper half plane.
// Screen y grows downward, so the y component is negated.
func upwardVelocity(r Rand, speed float64) core.Vec2 {
	theta := r.Float64() * math.Pi
	return core.V(math.Cos(theta), -math.Sin(theta)).Mult(speed)
}

// Turbo removes the brick and speeds up the primary ball.
type Turbo struct {
	d     *Deps
	image scene.Visual
}

func newTurbo(d *Deps) *Turbo {
	return &Turbo{d: d, image: d.Images.ReadImage(assets.TurboBall)}
}

func (s *Turbo) OnCollision(brick *Brick, impactor scene.Entity) {
	s.d.removeBrick(brick)

	// Pucks and paddles never trigger turbo.
	if s.d.Ball == nil || impactor != scene.Entity(s.d.Ball) {
		return
	}
	if s.d.Ball.EnterTurbo(s.image) {
		s.d.logger().Debug("turbo on", "velocity", s.d.Ball.Velocity())
	}
}

func (s *Turbo) Kind() Kind { return KindTurbo }
func (s *Turbo) sealed()    {}

// ExtraLife removes the brick and drops a heart the paddle can catch.
type ExtraLife struct {
	d     *Deps
	image scene.Visual
}

func newExtraLife(d *Deps) *ExtraLife {
	return &ExtraLife{d: d, image: d.Images.ReadImage(assets.Heart)}
}

func (s *ExtraLife) OnCollision(brick *Brick, _ scene.Entity) {
	s.d.removeBrick(brick)

	extras := s.d.Config.Extras
	h := NewFallingHeart(brick.Center(), core.V(extras.HeartSize, extras.HeartSize), s.image, extras.HeartSpeed, s.d.Manager)
	s.d.Manager.AddEntity(h)
	s.d.logger().Debug("heart dropped", "at", brick.Center())
}

func (s *ExtraLife) Kind() Kind { return KindExtraLife }
func (s *ExtraLife) sealed()    {}
