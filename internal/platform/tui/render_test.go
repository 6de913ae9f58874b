package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-bricker/internal/core"
)

func TestPainterKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorOrange)
	s.DrawText(0, 1, "plain")

	out := NewPainter(nil).Paint(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Paint() gave %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"ab", "cd", "plain"} {
		if !strings.Contains(out, want) {
			t.Errorf("Paint() output lost %q: %q", want, out)
		}
	}
}

func TestPainterUnknownColor(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetColored(0, 0, 'x', core.Color(200))

	if out := NewPainter(nil).Paint(s); !strings.Contains(out, "x") {
		t.Errorf("Paint() = %q, expected the rune in plain style", out)
	}
}
