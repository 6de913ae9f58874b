package bricker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-bricker/internal/config"
	"github.com/vovakirdan/tui-bricker/internal/core"
	"github.com/vovakirdan/tui-bricker/internal/registry"
	"github.com/vovakirdan/tui-bricker/internal/scene"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     12345,
}

func newStartedGame(t *testing.T, opts Options) *Game {
	t.Helper()
	g := New(opts)
	g.Reset(testRuntime)
	g.serveDelay = 0
	return g
}

func TestGameReset(t *testing.T) {
	g := New(Options{})
	g.Reset(testRuntime)

	state := g.State()
	assert.Equal(t, 3, state.Lives)
	assert.Equal(t, 56, state.BricksTotal)
	assert.Equal(t, 56, state.BricksLeft)
	assert.Equal(t, 0, state.Score)
	assert.False(t, state.GameOver)
	assert.Equal(t, OutcomeNone, g.Outcome())

	total := 0
	for _, n := range g.Board() {
		total += n
	}
	assert.Equal(t, 56, total)

	// walls, paddle, ball, three hearts, the counter and the board
	assert.Equal(t, 3+1+1+3+1+56, g.world.Len())
	assert.Equal(t, core.V(350, 250), g.ball.Center())
	assert.InDelta(t, 200, abs(g.ball.Velocity().X), 1e-9)
	assert.InDelta(t, 200, abs(g.ball.Velocity().Y), 1e-9)
	assert.Equal(t, core.V(350, 470), g.paddle.Center())
}

func TestGameResetClearsPreviousRound(t *testing.T) {
	g := newStartedGame(t, Options{})
	g.lives = 1
	g.bricks.Decrement()
	g.outcome = OutcomeLost

	g.Reset(testRuntime)
	assert.Equal(t, 3, g.lives)
	assert.Equal(t, 56, g.bricks.Value())
	assert.Equal(t, OutcomeNone, g.Outcome())
	assert.False(t, g.slot.Active())
}

func TestGameFixedRandBoard(t *testing.T) {
	g := newStartedGame(t, Options{Rand: &scriptedRand{ints: []int{0}}})

	assert.Equal(t, map[Kind]int{KindBasic: 56}, g.Board())
	assert.Equal(t, core.V(200, 200), g.ball.Velocity())
}

// trackBall steers the paddle under the ball.
func trackBall(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	dx := g.ball.Center().X - g.paddle.Center().X
	switch {
	case dx < -10:
		in.Set(core.ActionLeft)
	case dx > 10:
		in.Set(core.ActionRight)
	}
	return in
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New(Options{})
		g.Reset(testRuntime)
		for range 600 {
			if g.Step(trackBall(g)).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	assert.Equal(t, snap1, snap2)
	assert.Equal(t, snap1.Hash(), snap2.Hash())
	assert.Greater(t, snap1.Collisions, 0, "the ball should have hit something")
}

func TestGameSeedsDiffer(t *testing.T) {
	a := New(Options{})
	a.Reset(testRuntime)
	b := New(Options{})
	rc := testRuntime
	rc.Seed = 999
	b.Reset(rc)

	assert.NotEqual(t, kindsOf(a), kindsOf(b))
}

func TestServeDelayFreezesWorld(t *testing.T) {
	g := New(Options{})
	g.Reset(testRuntime)
	start := g.ball.Center()

	for range g.cfg.Gameplay.ServeDelay {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, start, g.ball.Center())
	assert.Equal(t, g.cfg.Gameplay.ServeDelay, g.State().Ticks)

	g.Step(core.NewInputFrame())
	assert.NotEqual(t, start, g.ball.Center())
}

func TestGamePause(t *testing.T) {
	g := newStartedGame(t, Options{})
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	g.Step(pause)
	assert.True(t, g.State().Paused)
	pos := g.ball.Center()

	g.Step(core.NewInputFrame())
	assert.Equal(t, pos, g.ball.Center())
	assert.Equal(t, 0, g.State().Ticks)

	g.Step(pause)
	assert.False(t, g.State().Paused)
	assert.Equal(t, 1, g.State().Ticks)
}

func TestGameWinsOnEmptyBoard(t *testing.T) {
	g := newStartedGame(t, Options{})
	g.bricks.Reset()

	res := g.Step(core.NewInputFrame())
	assert.True(t, res.State.GameOver)
	assert.True(t, res.State.Won)
	assert.Equal(t, OutcomeWon, g.Outcome())
	assert.Equal(t, 560, g.Score())
}

func TestGameWinsWhenBallLeavesTop(t *testing.T) {
	g := newStartedGame(t, Options{})
	g.ball.SetCenter(core.V(350, -100))
	g.ball.SetVelocity(core.Zero)

	g.Step(core.NewInputFrame())
	assert.Equal(t, OutcomeWon, g.Outcome())
}

func TestGameWinBeatsLifeLoss(t *testing.T) {
	g := newStartedGame(t, Options{})
	g.bricks.Reset()
	g.ball.SetCenter(core.V(350, 600))

	res := g.Step(core.NewInputFrame())
	assert.False(t, res.LifeLost)
	assert.Equal(t, OutcomeWon, g.Outcome())
	assert.Equal(t, 3, g.lives)
}

func TestGameLosesLife(t *testing.T) {
	g := newStartedGame(t, Options{})
	g.ball.SetCenter(core.V(350, 600))
	g.ball.SetVelocity(core.V(200, 200))

	res := g.Step(core.NewInputFrame())
	require.True(t, res.LifeLost)
	assert.Equal(t, 2, res.State.Lives)
	assert.False(t, res.State.GameOver)
	assert.Equal(t, core.V(350, 250), g.ball.Center())
	assert.Equal(t, core.V(200, 200), g.ball.Velocity(), "the serve keeps its direction")
	assert.Equal(t, g.cfg.Gameplay.ServeDelay, g.serveDelay)
	assert.Equal(t, 2, g.graphicLife.Shown())
	assert.Equal(t, "2", g.numericLife.Visual().Text)
}

func TestGameLostOnLastLife(t *testing.T) {
	g := newStartedGame(t, Options{})
	g.lives = 1
	g.ball.SetCenter(core.V(350, 600))

	res := g.Step(core.NewInputFrame())
	assert.True(t, res.LifeLost)
	assert.True(t, res.State.GameOver)
	assert.False(t, res.State.Won)
	assert.Equal(t, OutcomeLost, g.Outcome())
	assert.Equal(t, 0, g.graphicLife.Shown())

	ticks := g.State().Ticks
	g.Step(core.NewInputFrame())
	assert.Equal(t, ticks, g.State().Ticks, "a finished round does not advance")
}

func TestGameHardPresetRescalesServe(t *testing.T) {
	cfg := config.DefaultBrickerConfig()
	config.ApplyBrickerPreset(&cfg, config.DifficultyHard)
	g := newStartedGame(t, Options{Config: cfg})
	want := config.NewDifficultyManager(cfg.Difficulty).Speed(cfg.Ball.Speed, 0, 0)
	g.ball.SetCenter(core.V(350, 600))
	g.ball.SetVelocity(core.V(-1, 1))

	g.Step(core.NewInputFrame())
	v := g.ball.Velocity()
	assert.InDelta(t, -want, v.X, 1e-9)
	assert.InDelta(t, want, v.Y, 1e-9)
	assert.Greater(t, want, cfg.Ball.Speed)
}

func TestGameAddLife(t *testing.T) {
	g := newStartedGame(t, Options{})

	g.AddLife()
	assert.Equal(t, 4, g.lives)
	assert.Equal(t, 4, g.graphicLife.Shown())

	g.AddLife()
	assert.Equal(t, 4, g.lives, "capped at max lives")

	g.lives = 0
	g.AddLife()
	assert.Equal(t, 0, g.lives)
}

func TestBallBreaksBrick(t *testing.T) {
	g := newStartedGame(t, Options{Rand: &scriptedRand{ints: []int{0}}})
	// Under the fourth column, clear of its neighbors.
	g.ball.SetCenter(core.V(307.8, 190))
	g.ball.SetVelocity(core.V(0, -200))

	for range 60 {
		g.Step(core.NewInputFrame())
		if g.bricks.Value() < 56 {
			break
		}
	}

	assert.Equal(t, 55, g.bricks.Value())
	assert.Equal(t, 10, g.Score())
	assert.Equal(t, 1, g.ball.CollisionCount())
	assert.Greater(t, g.ball.Velocity().Y, 0.0)
}

func TestManagerMethods(t *testing.T) {
	g := newStartedGame(t, Options{})

	assert.Equal(t, core.V(700, 500), g.FieldDimensions())
	assert.Same(t, g.paddle, g.PrimaryPaddle())
	assert.False(t, g.RemoveEntity(NewWall(core.Zero, core.V(1, 1), g.ball.Visual())))

	h := NewFallingHeart(core.V(100, 100), core.V(30, 30), g.ball.Visual(), 100, g)
	g.AddEntity(h)
	assert.True(t, g.world.Contains(h))
	assert.True(t, g.RemoveEntity(h))
}

func TestRegistered(t *testing.T) {
	require.True(t, registry.Exists(ID))

	g, err := registry.Create(ID, registry.Settings{})
	require.NoError(t, err)
	assert.Equal(t, "Bricker", g.Title())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "playing", OutcomeNone.String())
	assert.Equal(t, "won", OutcomeWon.String())
	assert.Equal(t, "lost", OutcomeLost.String())
}

func kindsOf(g *Game) []Kind {
	var out []Kind
	g.world.Each(scene.LayerStatic, func(e scene.Entity) {
		if b, ok := e.(*Brick); ok {
			out = append(out, b.Strategy().Kind())
		}
	})
	return out
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
