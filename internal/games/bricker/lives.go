package bricker

import (
	"strconv"

	"github.com/vovakirdan/tui-bricker/internal/core"
	"github.com/vovakirdan/tui-bricker/internal/scene"
)

// layerSet is the part of scene.Collection the life displays need.
type layerSet interface {
	Add(e scene.Entity, layer scene.Layer)
	Remove(e scene.Entity) bool
}

// heartGap separates indicator hearts.
const heartGap = 5

// GraphicLife shows one heart per life in the UI layer.
type GraphicLife struct {
	hearts []*Heart
	shown  int
	layers layerSet
}

// NewGraphicLife creates maxLives hearts in a row starting at topLeft and
// shows the first lives of them.
func NewGraphicLife(topLeft core.Vec2, size float64, v scene.Visual, layers layerSet, lives, maxLives int) *GraphicLife {
	g := &GraphicLife{hearts: make([]*Heart, maxLives), layers: layers}
	for i := range g.hearts {
		pos := topLeft.Add(core.V(float64(i)*(size+heartGap), 0))
		g.hearts[i] = NewHeart(pos, core.V(size, size), v)
	}
	g.SetLives(lives)
	return g
}

// SetLives adds or removes hearts so that exactly lives are shown.
func (g *GraphicLife) SetLives(lives int) {
	lives = core.Clamp(lives, 0, len(g.hearts))
	for i := g.shown; i < lives; i++ {
		g.layers.Add(g.hearts[i], scene.LayerUI)
	}
	for i := lives; i < g.shown; i++ {
		g.layers.Remove(g.hearts[i])
	}
	g.shown = lives
}

// Shown returns the number of hearts on screen.
func (g *GraphicLife) Shown() int { return g.shown }

// NumericLife shows the life count as a number colored by how many are left.
type NumericLife struct {
	scene.Object
}

// NewNumericLife creates the counter and adds it to the UI layer.
func NewNumericLife(topLeft core.Vec2, layers layerSet, lives int) *NumericLife {
	n := &NumericLife{Object: scene.NewObject(topLeft, core.V(30, 40), scene.Visual{})}
	n.SetLives(lives)
	layers.Add(n, scene.LayerUI)
	return n
}

// SetLives sets the displayed count.
func (n *NumericLife) SetLives(lives int) {
	n.SetVisual(scene.Visual{Text: strconv.Itoa(lives), Color: lifeColor(lives)})
}

func lifeColor(lives int) core.Color {
	switch {
	case lives >= 3:
		return core.ColorGreen
	case lives == 2:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}
