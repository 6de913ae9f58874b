package bricker

import (
	"github.com/vovakirdan/tui-bricker/internal/assets"
	"github.com/vovakirdan/tui-bricker/internal/config"
	"github.com/vovakirdan/tui-bricker/internal/core"
	"github.com/vovakirdan/tui-bricker/internal/scene"
)

// fakeManager records what strategies and entities ask of the game.
type fakeManager struct {
	present map[scene.Entity]bool
	added   []scene.Entity
	removed []scene.Entity
	field   core.Vec2
	paddle  *Paddle
	lives   int
	max     int
	gained  int
}

func newFakeManager() *fakeManager {
	return &fakeManager{
		present: make(map[scene.Entity]bool),
		field:   core.V(700, 500),
		lives:   3,
		max:     4,
	}
}

func (m *fakeManager) put(e scene.Entity) { m.present[e] = true }

func (m *fakeManager) RemoveEntity(e scene.Entity) bool {
	if !m.present[e] {
		return false
	}
	delete(m.present, e)
	m.removed = append(m.removed, e)
	return true
}

func (m *fakeManager) AddEntity(e scene.Entity) {
	m.present[e] = true
	m.added = append(m.added, e)
}

func (m *fakeManager) FieldDimensions() core.Vec2 { return m.field }
func (m *fakeManager) PrimaryPaddle() *Paddle     { return m.paddle }

func (m *fakeManager) AddLife() {
	m.gained++
	if m.lives > 0 && m.lives < m.max {
		m.lives++
	}
}

func (m *fakeManager) addedOf(match func(scene.Entity) bool) []scene.Entity {
	var out []scene.Entity
	for _, e := range m.added {
		if match(e) {
			out = append(out, e)
		}
	}
	return out
}

// scriptedRand replays fixed values and repeats the last one when it runs out.
type scriptedRand struct {
	ints   []int
	floats []float64
	i, f   int
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[min(r.i, len(r.ints)-1)]
	r.i++
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[min(r.f, len(r.floats)-1)]
	r.f++
	return v
}

type countingSound struct{ plays int }

func (s *countingSound) Play() { s.plays++ }

// newTestDeps wires strategies to a fake manager with default settings.
func newTestDeps(r Rand) (*Deps, *fakeManager) {
	cfg := config.DefaultBrickerConfig()
	m := newFakeManager()
	images := assets.Default()

	paddle := NewPaddle(core.Zero, core.V(cfg.Paddle.Width, cfg.Paddle.Height), images.ReadImage(assets.Paddle),
		cfg.Paddle.Speed, cfg.Paddle.WallMargin, cfg.Field.Width-cfg.Paddle.WallMargin)
	paddle.SetCenter(core.V(350, 470))
	m.paddle = paddle
	m.put(paddle)

	ball := NewBall(core.Zero, core.V(cfg.Ball.Size, cfg.Ball.Size), images.ReadImage(assets.Ball), nil, cfg.Ball)
	ball.SetCenter(core.V(350, 250))
	ball.SetVelocity(core.V(200, -200))
	m.put(ball)

	d := &Deps{
		Manager: m,
		Bricks:  &Counter{},
		Paddle:  paddle,
		Images:  images,
		Ball:    ball,
		Rand:    r,
		Slot:    &PaddleSlot{},
		Config:  cfg,
	}
	return d, m
}

// placeBrick puts a brick on the fake board and counts it.
func placeBrick(d *Deps, m *fakeManager, s Strategy) *Brick {
	b := NewBrick(core.V(100, 50), core.V(80, 15), assets.Default().ReadImage(assets.Brick), s)
	m.put(b)
	d.Bricks.Increment()
	return b
}

func isPuck(e scene.Entity) bool {
	_, ok := e.(*Puck)
	return ok
}

func isHeart(e scene.Entity) bool {
	_, ok := e.(*Heart)
	return ok
}

func isAIPaddle(e scene.Entity) bool {
	_, ok := e.(*AIPaddle)
	return ok
}

var collisionUp = scene.Collision{Normal: core.Up}
