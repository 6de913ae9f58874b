package bricker

import "github.com/vovakirdan/tui-bricker/internal/scene"

const (
	compositeTurns    = 2
	compositeCapacity = 3
	// compositeRedraws bounds how often a turn may redraw a composite it is
	// not allowed to take before falling back to the leaf variants.
	compositeRedraws = 8
)

// compositeChoices is the 5-way draw of a composite turn. Basic is not an option.
var compositeChoices = [...]Kind{KindExtraBalls, KindExtraPaddle, KindTurbo, KindComposite, KindExtraLife}

var leafChoices = [...]Kind{KindExtraBalls, KindExtraPaddle, KindTurbo, KindExtraLife}

// Composite runs two or three special strategies on the same hit.
// Nested composites are flattened when it is built, so parts never
// contain a Composite.
type Composite struct {
	parts []Strategy
}

func newComposite(d *Deps) *Composite {
	return buildComposite(d, false)
}

// buildComposite fills up to compositeCapacity parts over compositeTurns
// turns. A nested composite is built with nested set so it cannot nest again;
// its parts are copied in as far as capacity allows.
func buildComposite(d *Deps, nested bool) *Composite {
	c := &Composite{parts: make([]Strategy, 0, compositeCapacity)}
	hasNested := nested

	for turn := 0; turn < compositeTurns && len(c.parts) < compositeCapacity; turn++ {
		k := drawCompositeKind(d.Rand, hasNested)
		if k != KindComposite {
			c.parts = append(c.parts, newLeaf(d, k))
			continue
		}

		inner := buildComposite(d, true)
		for _, p := range inner.parts {
			if len(c.parts) == compositeCapacity {
				break
			}
			c.parts = append(c.parts, p)
		}
		hasNested = true
	}
	return c
}

func drawCompositeKind(r Rand, hasNested bool) Kind {
	for range compositeRedraws {
		k := compositeChoices[r.IntN(len(compositeChoices))]
		if k != KindComposite || !hasNested {
			return k
		}
	}
	return leafChoices[r.IntN(len(leafChoices))]
}

func (s *Composite) OnCollision(brick *Brick, impactor scene.Entity) {
	for _, p := range s.parts {
		p.OnCollision(brick, impactor)
	}
}

// Parts returns a copy of the flattened parts.
func (s *Composite) Parts() []Strategy {
	return append([]Strategy(nil), s.parts...)
}

func (s *Composite) Kind() Kind { return KindComposite }
func (s *Composite) sealed()    {}
