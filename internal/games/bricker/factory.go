package bricker

// basicWeight is how many of the ten factory outcomes give a Basic brick.
const basicWeight = 5

// Factory assigns strategies to bricks.
type Factory struct {
	d *Deps
}

// NewFactory creates a factory whose strategies share d.
func NewFactory(d *Deps) *Factory {
	return &Factory{d: d}
}

// RandomStrategy draws one strategy: Basic half of the time, otherwise one
// of the five special variants with equal odds.
func (f *Factory) RandomStrategy() Strategy {
	switch f.d.Rand.IntN(10) {
	case basicWeight:
		return f.New(KindComposite)
	case basicWeight + 1:
		return f.New(KindExtraBalls)
	case basicWeight + 2:
		return f.New(KindExtraPaddle)
	case basicWeight + 3:
		return f.New(KindTurbo)
	case basicWeight + 4:
		return f.New(KindExtraLife)
	default:
		return f.New(KindBasic)
	}
}

// New builds a strategy of the given kind. Unknown kinds give Basic.
func (f *Factory) New(k Kind) Strategy {
	if k == KindComposite {
		return newComposite(f.d)
	}
	return newLeaf(f.d, k)
}

func newLeaf(d *Deps, k Kind) Strategy {
	switch k {
	case KindExtraBalls:
		return newExtraBalls(d)
	case KindExtraPaddle:
		return &ExtraPaddle{d: d}
	case KindTurbo:
		return newTurbo(d)
	case KindExtraLife:
		return newExtraLife(d)
	default:
		return &Basic{d: d}
	}
}
