package tui

import (
	"time"

	"github.com/vovakirdan/money-grabber/internal/assets"
	"github.com/vovakirdan/money-grabber/internal/core"
	"github.com/vovakirdan/money-grabber/internal/grabber"
)

// CaptureEffects receives capture feedback. Implementations must return
// quickly and swallow their own failures.
type CaptureEffects interface {
	PlayCapture(by core.Capturer)
}

// Snatch animation timing.
const (
	flashFrames    = 5
	flashFrameTime = 30 * time.Millisecond
)

// flash is the snatch animation left behind by a capture.
type flash struct {
	item  grabber.Item
	by    core.Capturer
	start time.Time
}

// frame returns the animation frame at now, or -1 once finished.
func (f flash) frame(now time.Time) int {
	n := int(now.Sub(f.start) / flashFrameTime)
	if n < 0 {
		n = 0
	}
	if n >= flashFrames {
		return -1
	}
	return n
}

// pruneFlashes drops finished animations.
func pruneFlashes(flashes []flash, now time.Time) []flash {
	var live []flash
	for _, f := range flashes {
		if f.frame(now) >= 0 {
			live = append(live, f)
		}
	}
	return live
}

// drawFlash draws one frame of a snatch: the item shrinks in the capturer's
// colour, and a player capture shows the hand pulling away up and left.
func drawFlash(s *core.Screen, v Viewport, sprites assets.Source, f flash, now time.Time) {
	n := f.frame(now)
	if n < 0 {
		return
	}

	x, y := v.ToCell(f.item.Pos)
	art := shrinkArt(sprites.Sprite(itemKind(f.item.Variant)).Art, n)
	s.DrawSprite(x, y, art, capturerColor(f.by))

	if f.by == core.CapturerPlayer {
		hand := sprites.Sprite(assets.KindHand)
		s.DrawSprite(x-n, y-n/2, hand.Art, hand.Color)
	}
}

// shrinkArt returns art reduced for the given animation step.
func shrinkArt(art []string, step int) []string {
	if len(art) == 0 {
		return nil
	}
	mid := []rune(art[len(art)/2])
	if len(mid) == 0 {
		return []string{"."}
	}

	switch {
	case step <= 0:
		return art
	case step == 1:
		return []string{string(mid)}
	case step == 2:
		if len(mid) <= 3 {
			return []string{string(mid)}
		}
		c := len(mid) / 2
		return []string{string(mid[c-1 : c+2])}
	case step == 3:
		return []string{string(mid[len(mid)/2])}
	default:
		return []string{"."}
	}
}
