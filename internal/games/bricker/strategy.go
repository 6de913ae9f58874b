package bricker

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bricker/internal/config"
	"github.com/vovakirdan/tui-bricker/internal/core"
	"github.com/vovakirdan/tui-bricker/internal/scene"
)

// Kind identifies a collision strategy variant.
type Kind int

const (
	KindBasic Kind = iota
	KindExtraBalls
	KindExtraPaddle
	KindTurbo
	KindExtraLife
	KindComposite
	numKinds
)

// String returns the name of the strategy kind.
func (k Kind) String() string {
	switch k {
	case KindBasic:
		return "basic"
	case KindExtraBalls:
		return "extra_balls"
	case KindExtraPaddle:
		return "extra_paddle"
	case KindTurbo:
		return "turbo"
	case KindExtraLife:
		return "extra_life"
	case KindComposite:
		return "composite"
	default:
		return "unknown"
	}
}

// Strategy is the behavior a brick runs when something hits it.
// The set of variants is closed; Kind tells them apart.
type Strategy interface {
	OnCollision(brick *Brick, impactor scene.Entity)
	Kind() Kind
	sealed()
}

// Manager is the part of the game that strategies and entities may drive.
type Manager interface {
	// RemoveEntity removes e and reports whether it was present.
	RemoveEntity(e scene.Entity) bool
	AddEntity(e scene.Entity)
	FieldDimensions() core.Vec2
	PrimaryPaddle() *Paddle
	// AddLife grants one life unless the player is out of lives or at the cap.
	AddLife()
}

// Deps is the shared state every strategy of a board works against.
type Deps struct {
	Manager Manager
	Bricks  *Counter
	Sound   scene.Sound
	Paddle  *Paddle
	Images  scene.ImageReader
	Ball    *Ball
	Rand    Rand
	Slot    *PaddleSlot
	Config  config.BrickerConfig
	Log     *log.Logger
}

var discard = log.New(io.Discard)

func (d *Deps) logger() *log.Logger {
	if d.Log == nil {
		return discard
	}
	return d.Log
}

// removeBrick takes the brick off the board, counting it only if it was
// still there.
func (d *Deps) removeBrick(b *Brick) bool {
	if !d.Manager.RemoveEntity(b) {
		return false
	}
	d.Bricks.Decrement()
	return true
}

// Counter is a shared integer counter.
type Counter struct {
	n int
}

func (c *Counter) Increment() { c.n++ }
func (c *Counter) Decrement() { c.n-- }
func (c *Counter) Value() int { return c.n }
func (c *Counter) Reset()     { c.n = 0 }
