// Package bricker implements a Breakout game whose bricks carry randomly
// assigned collision strategies: extra balls, a helper paddle, turbo, extra
// lives, or a combination of those.
package bricker

import (
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bricker/internal/assets"
	"github.com/vovakirdan/tui-bricker/internal/audio"
	"github.com/vovakirdan/tui-bricker/internal/config"
	"github.com/vovakirdan/tui-bricker/internal/core"
	"github.com/vovakirdan/tui-bricker/internal/registry"
	"github.com/vovakirdan/tui-bricker/internal/scene"
)

// ID is the registry identifier of the game.
const ID = "bricker"

func init() {
	registry.Register(ID, func(s registry.Settings) registry.Game {
		return New(Options{
			Config: s.Config,
			Images: s.Images,
			Sounds: s.Sounds,
			Logger: s.Logger,
		})
	})
}

// Outcome is how a round ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns the outcome name used in logs and storage.
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "playing"
	}
}

// Options configures a Game. Zero fields get defaults.
type Options struct {
	Config config.BrickerConfig
	Images scene.ImageReader
	Sounds scene.SoundReader
	Logger *log.Logger
	// Rand overrides the seeded source; Reset then keeps using it.
	Rand Rand
}

// Game runs one bricker round at a time. It implements registry.Game and
// is the Manager of its entities.
type Game struct {
	cfg        config.BrickerConfig
	images     scene.ImageReader
	sounds     scene.SoundReader
	log        *log.Logger
	fixedRand  Rand
	difficulty *config.DifficultyManager

	runtime core.RuntimeConfig
	world   *scene.Collection
	deps    *Deps
	rng     Rand
	bricks  Counter
	slot    PaddleSlot

	ball        *Ball
	paddle      *Paddle
	graphicLife *GraphicLife
	numericLife *NumericLife
	board       [numKinds]int

	lives       int
	bricksTotal int
	tick        int
	serveDelay  int
	paused      bool
	outcome     Outcome
}

// New creates a game. Call Reset before stepping it.
func New(opts Options) *Game {
	g := &Game{
		cfg:       opts.Config,
		images:    opts.Images,
		sounds:    opts.Sounds,
		log:       opts.Logger,
		fixedRand: opts.Rand,
	}
	if g.cfg == (config.BrickerConfig{}) {
		g.cfg = config.DefaultBrickerConfig()
	}
	if g.images == nil {
		g.images = assets.Default()
	}
	if g.sounds == nil {
		g.sounds = audio.Muted{}
	}
	if g.log == nil {
		g.log = discard
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Bricker" }

// Config returns the configuration the game was built with.
func (g *Game) Config() config.BrickerConfig { return g.cfg }

// Reset builds a fresh round: walls, paddle, ball, life displays and a
// board of bricks with random strategies.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.TickRate <= 0 {
		rc.TickRate = 60
	}
	g.runtime = rc

	g.rng = g.fixedRand
	if g.rng == nil {
		seed := rc.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano()) //#nosec G115 -- any bits make a seed
		}
		g.rng = NewRand(seed)
	}

	g.world = scene.NewCollection()
	g.bricks.Reset()
	g.slot.Reset()
	g.board = [numKinds]int{}
	g.lives = g.cfg.Gameplay.Lives
	g.tick = 0
	g.paused = false
	g.outcome = OutcomeNone
	g.serveDelay = g.cfg.Gameplay.ServeDelay

	sound := g.sounds.ReadSound(audio.Blop)
	g.addWalls()
	g.addPaddle()
	g.addBall(sound)
	g.addLifeDisplays()

	g.deps = &Deps{
		Manager: g,
		Bricks:  &g.bricks,
		Sound:   sound,
		Paddle:  g.paddle,
		Images:  g.images,
		Ball:    g.ball,
		Rand:    g.rng,
		Slot:    &g.slot,
		Config:  g.cfg,
		Log:     g.log,
	}
	g.addBricks()
	g.bricksTotal = g.bricks.Value()

	g.log.Debug("board built",
		"bricks", g.bricksTotal,
		"basic", g.board[KindBasic],
		"extra_balls", g.board[KindExtraBalls],
		"extra_paddle", g.board[KindExtraPaddle],
		"turbo", g.board[KindTurbo],
		"extra_life", g.board[KindExtraLife],
		"composite", g.board[KindComposite],
	)
}

func (g *Game) addWalls() {
	f := g.cfg.Field
	v := g.images.ReadImage(assets.Wall)
	g.world.Add(NewWall(core.Zero, core.V(f.WallWidth, f.Height), v), scene.LayerStatic)
	g.world.Add(NewWall(core.V(f.Width-f.WallWidth, 0), core.V(f.WallWidth, f.Height), v), scene.LayerStatic)
	g.world.Add(NewWall(core.Zero, core.V(f.Width, f.WallWidth), v), scene.LayerStatic)
}

func (g *Game) addPaddle() {
	f, p := g.cfg.Field, g.cfg.Paddle
	g.paddle = NewPaddle(core.Zero, core.V(p.Width, p.Height), g.images.ReadImage(assets.Paddle),
		p.Speed, p.WallMargin, f.Width-p.WallMargin)
	g.paddle.SetCenter(core.V(f.Width/2, f.Height-p.BottomOffset))
	g.world.Add(g.paddle, scene.LayerDefault)
}

func (g *Game) addBall(sound scene.Sound) {
	b := g.cfg.Ball
	g.ball = NewBall(core.Zero, core.V(b.Size, b.Size), g.images.ReadImage(assets.Ball), sound, b)
	g.ball.SetCenter(g.FieldDimensions().Mult(0.5))

	speed := g.difficulty.Speed(b.Speed, 0, 0)
	vx, vy := speed, speed
	if g.rng.IntN(2) == 1 {
		vx = -vx
	}
	if g.rng.IntN(2) == 1 {
		vy = -vy
	}
	g.ball.SetVelocity(core.V(vx, vy))
	g.world.Add(g.ball, scene.LayerDefault)
}

func (g *Game) addLifeDisplays() {
	gp := g.cfg.Gameplay
	g.graphicLife = NewGraphicLife(core.V(10, 10), 30, g.images.ReadImage(assets.Heart), g.world, g.lives, gp.MaxLives)
	g.numericLife = NewNumericLife(core.V(10, 90), g.world, g.lives)
}

// addBricks lays the board out column by column below the top wall.
func (g *Game) addBricks() {
	f, bd := g.cfg.Field, g.cfg.Board
	size := core.V(g.cfg.BrickWidth(), bd.BrickHeight)
	v := g.images.ReadImage(assets.Brick)
	factory := NewFactory(g.deps)

	x := f.WallWidth + bd.Spacing
	for range bd.BricksPerRow {
		y := f.WallWidth
		for range bd.Rows {
			s := factory.RandomStrategy()
			g.board[s.Kind()]++
			g.world.Add(NewBrick(core.V(x, y), size, v, s), scene.LayerStatic)
			g.bricks.Increment()
			y += bd.BrickHeight + bd.Spacing
		}
		x += bd.Spacing + size.X
	}
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.outcome != OutcomeNone {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionLeft):
		g.paddle.Steer(-1)
	case in.Has(core.ActionRight):
		g.paddle.Steer(1)
	}

	g.tick++
	if g.serveDelay > 0 {
		g.serveDelay--
		return core.StepResult{State: g.State()}
	}

	g.world.Step(1 / float64(g.runtime.TickRate))
	lost := g.checkRound()

	return core.StepResult{State: g.State(), LifeLost: lost}
}

// checkRound applies the end-of-tick rules in order: an empty board wins,
// a ball leaving through the top wins, a ball below the field costs a life.
// It reports whether a life was lost.
func (g *Game) checkRound() bool {
	if g.bricks.Value() == 0 {
		g.finish(OutcomeWon)
		return false
	}

	y := g.ball.Center().Y
	if y < 0 {
		g.finish(OutcomeWon)
		return false
	}
	if y <= g.cfg.Field.Height {
		return false
	}

	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.syncLives()
		g.finish(OutcomeLost)
		return true
	}

	g.ball.SetCenter(g.FieldDimensions().Mult(0.5))
	if g.difficulty.IsEnabled() {
		g.reserve()
	}
	g.syncLives()
	g.serveDelay = g.cfg.Gameplay.ServeDelay
	g.log.Debug("life lost", "lives", g.lives, "tick", g.tick)
	return true
}

// reserve rescales the ball to the serve speed for the current score,
// keeping its direction and turbo boost.
func (g *Game) reserve() {
	s := g.difficulty.Speed(g.cfg.Ball.Speed, g.Score(), g.tick)
	if g.ball.IsTurbo() {
		s *= g.ball.TurboFactor()
	}
	v := g.ball.Velocity()
	g.ball.SetVelocity(core.V(math.Copysign(s, v.X), math.Copysign(s, v.Y)))
}

func (g *Game) finish(o Outcome) {
	g.outcome = o
	g.log.Debug("round over",
		"outcome", o,
		"score", g.Score(),
		"bricks_left", g.bricks.Value(),
		"lives", g.lives,
		"ticks", g.tick,
	)
}

func (g *Game) syncLives() {
	g.graphicLife.SetLives(g.lives)
	g.numericLife.SetLives(g.lives)
}

// RemoveEntity implements Manager.
func (g *Game) RemoveEntity(e scene.Entity) bool { return g.world.Remove(e) }

// AddEntity implements Manager. Entities join the default layer.
func (g *Game) AddEntity(e scene.Entity) { g.world.Add(e, scene.LayerDefault) }

// FieldDimensions implements Manager.
func (g *Game) FieldDimensions() core.Vec2 {
	return core.V(g.cfg.Field.Width, g.cfg.Field.Height)
}

// PrimaryPaddle implements Manager.
func (g *Game) PrimaryPaddle() *Paddle { return g.paddle }

// AddLife implements Manager.
func (g *Game) AddLife() {
	if g.lives <= 0 || g.lives >= g.cfg.Gameplay.MaxLives {
		return
	}
	g.lives++
	g.syncLives()
	g.log.Debug("life gained", "lives", g.lives)
}

// Score returns the points earned this round.
func (g *Game) Score() int {
	return (g.bricksTotal - g.bricks.Value()) * g.cfg.Gameplay.BrickPoints
}

// Outcome returns how the round ended, or OutcomeNone while it runs.
func (g *Game) Outcome() Outcome { return g.outcome }

// Board returns how many bricks of each kind the round started with.
func (g *Game) Board() map[Kind]int {
	out := make(map[Kind]int, numKinds)
	for k, n := range g.board {
		if n > 0 {
			out[Kind(k)] = n
		}
	}
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:       g.Score(),
		Lives:       g.lives,
		BricksLeft:  g.bricks.Value(),
		BricksTotal: g.bricksTotal,
		Ticks:       g.tick,
		GameOver:    g.outcome != OutcomeNone,
		Won:         g.outcome == OutcomeWon,
		Paused:      g.paused,
	}
}
