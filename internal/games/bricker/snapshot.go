package bricker

import "math"

// Snapshot is a compact view of a round for determinism tests and logging.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick        uint64
	Lives       int
	BricksLeft  int
	BricksTotal int
	Score       int
	Outcome     int
	ServeDelay  int

	// Primary ball, rounded to whole field units.
	BallX, BallY   int
	BallVX, BallVY int
	Collisions     int
	Turbo          bool
	TurboHits      int

	PaddleX    int
	SlotActive bool
	SlotHits   int
	Entities   int
}

// Snapshot returns the current round state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        uint64(g.tick), //#nosec G115 -- tick count is always positive
		Lives:       g.lives,
		BricksLeft:  g.bricks.Value(),
		BricksTotal: g.bricksTotal,
		Score:       g.Score(),
		Outcome:     int(g.outcome),
		ServeDelay:  g.serveDelay,
		SlotActive:  g.slot.Active(),
		SlotHits:    g.slot.Hits(),
	}
	if g.world != nil {
		snap.Entities = g.world.Len()
	}
	if g.ball != nil {
		c, v := g.ball.Center(), g.ball.Velocity()
		snap.BallX, snap.BallY = round(c.X), round(c.Y)
		snap.BallVX, snap.BallVY = round(v.X), round(v.Y)
		snap.Collisions = g.ball.CollisionCount()
		snap.Turbo = g.ball.IsTurbo()
		snap.TurboHits = g.ball.TurboHits()
	}
	if g.paddle != nil {
		snap.PaddleX = round(g.paddle.TopLeft().X)
	}
	return snap
}

func round(f float64) int {
	return int(math.Round(f))
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.Lives, snap.BricksLeft, snap.BricksTotal, snap.Score, snap.Outcome, snap.ServeDelay,
		snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.Collisions, b2i(snap.Turbo), snap.TurboHits,
		snap.PaddleX, b2i(snap.SlotActive), snap.SlotHits, snap.Entities,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
