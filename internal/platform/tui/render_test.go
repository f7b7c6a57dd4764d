package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/money-grabber/internal/assets"
	"github.com/vovakirdan/money-grabber/internal/core"
)

// wideSprites returns tall, wide art for the player and bot.
type wideSprites struct{}

func (wideSprites) Sprite(k assets.Kind) assets.Sprite {
	if k == assets.KindPlayer || k == assets.KindBot {
		row := strings.Repeat("#", 20)
		return assets.Sprite{Art: []string{row, row, row, row, row}, Color: core.ColorWhite}
	}
	return assets.Procedural{}.Sprite(k)
}

func TestLayoutGameOver(t *testing.T) {
	v := NewViewport(82, 24, core.Bounds{W: 800, H: 600})

	tests := []struct {
		name    string
		sprites assets.Source
		minW    int
		artH    int
	}{
		{"procedural", assets.Procedural{}, 32, 0},
		{"wide art", wideSprites{}, 20 + 20 + 2 + 4, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := layoutGameOver(v, tc.sprites)
			if l.panel.W < tc.minW {
				t.Errorf("panel width = %d, expected at least %d", l.panel.W, tc.minW)
			}
			if tc.artH > 0 && l.verdictY-(l.panel.Y+5) <= tc.artH {
				t.Errorf("verdict row %d overlaps %d rows of art from %d", l.verdictY, tc.artH, l.panel.Y+5)
			}
			if l.button.W != len(playAgainLabel) || l.button.H != 1 {
				t.Errorf("button = %+v, expected one row of %d cells", l.button, len(playAgainLabel))
			}
			if !l.panel.Contains(l.button.X, l.button.Y) || !l.panel.Contains(l.button.Right()-1, l.hintY) {
				t.Errorf("button %+v or hint row %d outside panel %+v", l.button, l.hintY, l.panel)
			}
			if l.hintY >= l.panel.Bottom()-1 {
				t.Errorf("hint row %d on or below the border of %+v", l.hintY, l.panel)
			}
		})
	}
}
