package bricker

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-bricker/internal/core"
	"github.com/vovakirdan/tui-bricker/internal/scene"
)

// Minimum terminal size the field can be drawn in.
const (
	minScreenW = 40
	minScreenH = 14
)

// hudRows is the number of rows above the field.
const hudRows = 1

// Render draws the field scaled to the screen, with the HUD on the first row.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}
	if g.world == nil {
		return
	}

	g.renderHUD(dst)

	v := g.viewport(dst)
	for _, layer := range []scene.Layer{scene.LayerBackground, scene.LayerStatic, scene.LayerDefault} {
		g.world.Each(layer, func(e scene.Entity) {
			v.draw(dst, e.Body())
		})
	}

	g.renderOverlay(dst)
}

// renderHUD draws the UI layer left to right, then score and bricks on the right.
func (g *Game) renderHUD(dst *core.Screen) {
	x := 1
	g.world.Each(scene.LayerUI, func(e scene.Entity) {
		vis := e.Body().Visual
		if vis.Text != "" {
			x++
			dst.DrawTextColored(x, 0, vis.Text, vis.Color)
			x += utf8.RuneCountInString(vis.Text) + 1
			return
		}
		dst.SetColored(x, 0, vis.Glyph, vis.Color)
		x++
	})

	status := fmt.Sprintf("Score: %d  Bricks: %d/%d", g.Score(), g.bricks.Value(), g.bricksTotal)
	if g.ball != nil && g.ball.IsTurbo() {
		status = "TURBO  " + status
	}
	if g.slot.Active() {
		status = "AI  " + status
	}
	dst.DrawText(dst.Width()-utf8.RuneCountInString(status)-1, 0, status)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.outcome == OutcomeWon:
		drawCenteredBox(dst, "YOU WIN!", fmt.Sprintf("Score: %d  |  Play again? (y/n)", g.Score()))
	case g.outcome == OutcomeLost:
		drawCenteredBox(dst, "YOU LOSE!", fmt.Sprintf("Score: %d  |  Play again? (y/n)", g.Score()))
	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case g.serveDelay > 0:
		dst.DrawTextCentered(dst.Height()-1, "Get ready...")
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxX+boxW, boxY+boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-utf8.RuneCountInString(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-utf8.RuneCountInString(subtitle))/2, boxY+3, subtitle)
}

// viewport maps field units to screen cells below the HUD.
type viewport struct {
	sx, sy float64
	top    int
}

func (g *Game) viewport(dst *core.Screen) viewport {
	f := g.FieldDimensions()
	return viewport{
		sx:  float64(dst.Width()) / f.X,
		sy:  float64(dst.Height()-hudRows) / f.Y,
		top: hudRows,
	}
}

func (v viewport) cell(p core.Vec2) (int, int) {
	return int(math.Round(p.X * v.sx)), v.top + int(math.Round(p.Y*v.sy))
}

// draw fills the cells a body covers. Bodies smaller than a cell still take
// one cell, wide bodies leave their last column empty so neighbors stay
// apart, and point visuals take only the cell under their center.
func (v viewport) draw(dst *core.Screen, b *scene.Body) {
	vis := b.Visual
	if vis.Text != "" {
		x, y := v.cell(b.Pos)
		dst.DrawTextColored(x, y, vis.Text, vis.Color)
		return
	}
	if vis.Point {
		x, y := v.cell(b.Center())
		if y >= v.top {
			dst.SetColored(x, y, vis.Glyph, vis.Color)
		}
		return
	}

	r := b.Bounds()
	x0, y0 := v.cell(core.V(r.X, r.Y))
	x1, y1 := v.cell(core.V(r.Right(), r.Bottom()))
	if x1-x0 >= 3 {
		x1--
	}
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	dst.FillRect(x0, max(y0, v.top), x1, y1, vis.Glyph, vis.Color)
}
