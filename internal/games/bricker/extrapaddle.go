package bricker

import (
	"github.com/vovakirdan/tui-bricker/internal/core"
	"github.com/vovakirdan/tui-bricker/internal/scene"
)

// PaddleSlot tracks the one AI paddle a game may have. Every ExtraPaddle
// strategy of a game shares the same slot.
type PaddleSlot struct {
	paddle *AIPaddle
	hits   int
}

// Active reports whether an AI paddle is in play.
func (s *PaddleSlot) Active() bool { return s.paddle != nil }

// Hits returns how many extra-paddle bricks were hit while the paddle was active.
func (s *PaddleSlot) Hits() int { return s.hits }

// Paddle returns the active AI paddle, or nil.
func (s *PaddleSlot) Paddle() *AIPaddle { return s.paddle }

// Release empties the slot if it holds p.
func (s *PaddleSlot) Release(p *AIPaddle) {
	if s.paddle == p {
		s.Reset()
	}
}

// Reset empties the slot.
func (s *PaddleSlot) Reset() {
	s.paddle = nil
	s.hits = 0
}

// ExtraPaddle removes the brick and toggles the shared AI paddle: the
// first hit brings it in, later hits count toward taking it out again.
type ExtraPaddle struct {
	d *Deps
}

func (s *ExtraPaddle) OnCollision(brick *Brick, _ scene.Entity) {
	s.d.removeBrick(brick)

	slot := s.d.Slot
	if !slot.Active() {
		p := s.spawn()
		s.d.Manager.AddEntity(p)
		slot.paddle = p
		slot.hits = 0
		s.d.logger().Debug("ai paddle spawned", "center", p.Center())
		return
	}

	slot.hits++
	if slot.hits >= s.d.Config.Extras.SlotMaxHits {
		s.d.Manager.RemoveEntity(slot.paddle)
		slot.Reset()
		s.d.logger().Debug("ai paddle removed", "reason", "brick hits")
	}
}

// spawn builds an AI paddle scaled down from the primary paddle and
// centered on the field.
func (s *ExtraPaddle) spawn() *AIPaddle {
	primary := s.d.Paddle
	extras := s.d.Config.Extras
	size := primary.Size().Mult(extras.AIPaddleScale)

	p := NewAIPaddle(core.Zero, size, primary.Visual(), primary, s.d.Manager, s.d.Slot)
	p.speed = extras.AIPaddleSpeed
	p.maxHits = extras.AIPaddleMaxHits
	p.log = s.d.logger()
	p.SetCenter(s.d.Manager.FieldDimensions().Mult(0.5))
	return p
}

func (s *ExtraPaddle) Kind() Kind { return KindExtraPaddle }
func (s *ExtraPaddle) sealed()    {}
