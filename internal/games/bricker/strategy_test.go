package bricker

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-bricker/internal/assets"
	"github.com/vovakirdan/tui-bricker/internal/core"
	"github.com/vovakirdan/tui-bricker/internal/scene"
)

func TestRandomStrategyKinds(t *testing.T) {
	tests := []struct {
		draw int
		want Kind
	}{
		{0, KindBasic},
		{4, KindBasic},
		{5, KindComposite},
		{6, KindExtraBalls},
		{7, KindExtraPaddle},
		{8, KindTurbo},
		{9, KindExtraLife},
	}

	for _, tc := range tests {
		t.Run(tc.want.String(), func(t *testing.T) {
			d, _ := newTestDeps(&scriptedRand{ints: []int{tc.draw}})
			assert.Equal(t, tc.want, NewFactory(d).RandomStrategy().Kind())
		})
	}
}

func TestRandomStrategyDistribution(t *testing.T) {
	d, _ := newTestDeps(NewRand(7))
	f := NewFactory(d)

	counts := map[Kind]int{}
	const n = 10000
	for range n {
		counts[f.RandomStrategy().Kind()]++
	}

	assert.InDelta(t, 0.5, float64(counts[KindBasic])/n, 0.03)
	for _, k := range []Kind{KindExtraBalls, KindExtraPaddle, KindTurbo, KindExtraLife, KindComposite} {
		assert.InDelta(t, 0.1, float64(counts[k])/n, 0.02, k.String())
	}
}

func TestFactoryNewUnknownKind(t *testing.T) {
	d, _ := newTestDeps(&scriptedRand{})
	assert.Equal(t, KindBasic, NewFactory(d).New(Kind(42)).Kind())
}

func TestCompositeTwoLeaves(t *testing.T) {
	d, _ := newTestDeps(&scriptedRand{ints: []int{0, 2}})
	c := newComposite(d)

	parts := c.Parts()
	require.Len(t, parts, 2)
	assert.Equal(t, KindExtraBalls, parts[0].Kind())
	assert.Equal(t, KindTurbo, parts[1].Kind())
}

func TestCompositeFlattensNested(t *testing.T) {
	// composite, then the inner draws extra balls and extra paddle, then the
	// outer draws composite again and has to redraw: turbo.
	d, _ := newTestDeps(&scriptedRand{ints: []int{3, 0, 1, 3, 2}})
	parts := newComposite(d).Parts()

	require.Len(t, parts, 3)
	assert.Equal(t, KindExtraBalls, parts[0].Kind())
	assert.Equal(t, KindExtraPaddle, parts[1].Kind())
	assert.Equal(t, KindTurbo, parts[2].Kind())
}

func TestCompositeTerminatesOnEndlessCompositeDraws(t *testing.T) {
	d, _ := newTestDeps(&scriptedRand{ints: []int{3}})
	parts := newComposite(d).Parts()

	require.Len(t, parts, 3)
	for _, p := range parts {
		assert.Equal(t, KindExtraLife, p.Kind())
	}
}

func TestCompositeShapeOverManySeeds(t *testing.T) {
	for seed := range uint64(500) {
		d, _ := newTestDeps(NewRand(seed))
		parts := newComposite(d).Parts()

		require.GreaterOrEqual(t, len(parts), 2, "seed %d", seed)
		require.LessOrEqual(t, len(parts), 3, "seed %d", seed)
		for _, p := range parts {
			require.NotEqual(t, KindComposite, p.Kind(), "seed %d", seed)
			require.NotEqual(t, KindBasic, p.Kind(), "seed %d", seed)
		}
	}
}

func TestCompositeRemovesBrickOnce(t *testing.T) {
	d, m := newTestDeps(&scriptedRand{ints: []int{0, 3, 4, 1}})
	c := newComposite(d)
	b := placeBrick(d, m, c)
	d.Bricks.Increment() // a second brick still on the board

	b.OnCollisionEnter(d.Ball, collisionUp)

	assert.Equal(t, 1, d.Bricks.Value())
	assert.NotContains(t, m.present, b)
}

func TestCompositePartsIsCopy(t *testing.T) {
	d, _ := newTestDeps(&scriptedRand{ints: []int{0, 2}})
	c := newComposite(d)

	parts := c.Parts()
	parts[0] = nil
	assert.NotNil(t, c.Parts()[0])
}

func TestBasicRemovesBrick(t *testing.T) {
	d, m := newTestDeps(&scriptedRand{})
	b := placeBrick(d, m, &Basic{d: d})

	b.OnCollisionEnter(d.Ball, collisionUp)
	b.OnCollisionEnter(d.Ball, collisionUp)

	assert.Equal(t, 0, d.Bricks.Value(), "a brick is only counted once")
	assert.Equal(t, []scene.Entity{b}, m.removed)
}

func TestExtraBallsReleasesTwoPucks(t *testing.T) {
	d, m := newTestDeps(&scriptedRand{floats: []float64{0.25, 0.75}})
	b := placeBrick(d, m, newExtraBalls(d))

	b.OnCollisionEnter(d.Ball, collisionUp)

	assert.Equal(t, 0, d.Bricks.Value())
	pucks := m.addedOf(isPuck)
	require.Len(t, pucks, 2)

	wantSize := d.Config.Ball.Size * d.Config.Extras.PuckScale
	for _, e := range pucks {
		p := e.(*Puck)
		assert.InDelta(t, b.Center().X, p.Center().X, 1e-9)
		assert.InDelta(t, b.Center().Y, p.Center().Y, 1e-9)
		assert.Equal(t, core.V(wantSize, wantSize), p.Size())
		assert.Less(t, p.Velocity().Y, 0.0, "pucks leave upward")
		assert.InDelta(t, d.Config.Extras.PuckSpeed, p.Velocity().Len(), 1e-9)
	}
	assert.Greater(t, pucks[0].(*Puck).Velocity().X, 0.0)
	assert.Less(t, pucks[1].(*Puck).Velocity().X, 0.0)
}

func TestUpwardVelocityHemisphere(t *testing.T) {
	for _, f := range []float64{0, 0.1, 0.5, 0.9, 0.999} {
		v := upwardVelocity(&scriptedRand{floats: []float64{f}}, 100)
		assert.LessOrEqual(t, v.Y, 0.0)
		assert.InDelta(t, 100, v.Len(), 1e-9)
	}
}

func TestTurboOnlyForPrimaryBall(t *testing.T) {
	d, m := newTestDeps(&scriptedRand{})
	puck := NewPuck(core.Zero, core.V(10, 10), d.Ball.Visual(), nil, m)

	b := placeBrick(d, m, newTurbo(d))
	b.OnCollisionEnter(puck, collisionUp)

	assert.Equal(t, 0, d.Bricks.Value(), "the brick goes whoever hits it")
	assert.False(t, d.Ball.IsTurbo())

	before := d.Ball.Velocity()
	b2 := placeBrick(d, m, newTurbo(d))
	b2.OnCollisionEnter(d.Ball, collisionUp)

	require.True(t, d.Ball.IsTurbo())
	assert.InDelta(t, before.Len()*d.Config.Ball.TurboFactor, d.Ball.Velocity().Len(), 1e-9)
	assert.Equal(t, d.Images.ReadImage(assets.TurboBall), d.Ball.Visual())

	// Already turbo: speed stays.
	boosted := d.Ball.Velocity()
	b3 := placeBrick(d, m, newTurbo(d))
	b3.OnCollisionEnter(d.Ball, collisionUp)
	assert.Equal(t, boosted, d.Ball.Velocity())
}

func TestExtraLifeDropsHeart(t *testing.T) {
	d, m := newTestDeps(&scriptedRand{})
	b := placeBrick(d, m, newExtraLife(d))

	b.OnCollisionEnter(d.Ball, collisionUp)

	hearts := m.addedOf(isHeart)
	require.Len(t, hearts, 1)
	h := hearts[0].(*Heart)
	assert.True(t, h.Falling())
	assert.Equal(t, b.Center(), h.Center())
	assert.Equal(t, core.V(0, d.Config.Extras.HeartSpeed), h.Velocity())
	assert.Equal(t, 0, m.gained, "no life until the heart is caught")
}

func TestExtraPaddleToggle(t *testing.T) {
	d, m := newTestDeps(&scriptedRand{})
	hit := func() {
		placeBrick(d, m, &ExtraPaddle{d: d}).OnCollisionEnter(d.Ball, collisionUp)
	}

	hit()
	require.True(t, d.Slot.Active())
	ai := d.Slot.Paddle()
	assert.Equal(t, 0, d.Slot.Hits())
	assert.True(t, m.present[ai])
	assert.Equal(t, m.field.Mult(0.5), ai.Center())
	assert.InDelta(t, d.Paddle.Size().X*d.Config.Extras.AIPaddleScale, ai.Size().X, 1e-9)

	for i := 1; i < d.Config.Extras.SlotMaxHits; i++ {
		hit()
		require.True(t, d.Slot.Active(), "hit %d", i)
		assert.Equal(t, i, d.Slot.Hits())
	}

	hit()
	assert.False(t, d.Slot.Active())
	assert.Equal(t, 0, d.Slot.Hits())
	assert.False(t, m.present[ai])

	hit()
	assert.True(t, d.Slot.Active(), "a fresh paddle spawns")
	assert.NotSame(t, ai, d.Slot.Paddle())
	assert.Len(t, m.addedOf(isAIPaddle), 2)
	assert.Equal(t, 0, d.Bricks.Value())
}

func TestAIPaddleSelfRemovalReleasesSlot(t *testing.T) {
	d, m := newTestDeps(&scriptedRand{})
	placeBrick(d, m, &ExtraPaddle{d: d}).OnCollisionEnter(d.Ball, collisionUp)
	ai := d.Slot.Paddle()
	require.NotNil(t, ai)

	for range d.Config.Extras.AIPaddleMaxHits {
		ai.OnCollisionEnter(d.Ball, collisionUp)
	}
	assert.True(t, d.Slot.Active())
	assert.Equal(t, d.Config.Extras.AIPaddleMaxHits, ai.Hits())

	ai.OnCollisionEnter(d.Ball, collisionUp)
	assert.False(t, d.Slot.Active())
	assert.False(t, m.present[ai])

	placeBrick(d, m, &ExtraPaddle{d: d}).OnCollisionEnter(d.Ball, collisionUp)
	assert.True(t, d.Slot.Active(), "the next extra paddle brick spawns again")
}

func TestPaddleSlotReleaseIgnoresStranger(t *testing.T) {
	d, m := newTestDeps(&scriptedRand{})
	placeBrick(d, m, &ExtraPaddle{d: d}).OnCollisionEnter(d.Ball, collisionUp)

	d.Slot.Release(NewAIPaddle(core.Zero, core.V(1, 1), d.Paddle.Visual(), d.Paddle, m, nil))
	assert.True(t, d.Slot.Active())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "extra_paddle", KindExtraPaddle.String())
	assert.Equal(t, "unknown", numKinds.String())
	assert.Equal(t, "unknown", Kind(math.MaxInt8).String())
}
