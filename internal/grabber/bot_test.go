package grabber

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/money-grabber/internal/core"
)

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func TestBotIdleBeforeDeadline(t *testing.T) {
	b := NewBot(core.V(700, 300), 5)
	b.SetDeadline(t0.Add(time.Second))
	item := Item{Pos: core.V(100, 100), Radius: 30}

	for _, offset := range []time.Duration{0, 500 * time.Millisecond, 999 * time.Millisecond} {
		if state := b.Advance(item, t0.Add(offset)); state != BotIdle {
			t.Errorf("Advance() at +%v = %v, expected idle", offset, state)
		}
	}
	if b.Pos() != core.V(700, 300) {
		t.Errorf("idle bot moved to %v", b.Pos())
	}
}

func TestBotMovesAtDeadline(t *testing.T) {
	b := NewBot(core.V(700, 300), 5)
	b.SetDeadline(t0)
	item := Item{Pos: core.V(400, 300), Radius: 30}

	// The deadline instant itself is no longer "before" the deadline
	if state := b.Advance(item, t0); state != BotMoving {
		t.Fatalf("Advance() at deadline = %v, expected moving", state)
	}
	if b.Pos() != core.V(695, 300) {
		t.Errorf("Pos() = %v, expected (695, 300)", b.Pos())
	}
}

func TestBotMovesAlongDirection(t *testing.T) {
	b := NewBot(core.V(0, 0), 5)
	item := Item{Pos: core.V(300, 400), Radius: 30}

	b.Advance(item, t0)

	// 3-4-5 triangle: unit direction (0.6, 0.8)
	if !approxVec(b.Pos(), core.V(3, 4)) {
		t.Errorf("Pos() = %v, expected (3, 4)", b.Pos())
	}
}

func TestBotCaptureRadius(t *testing.T) {
	tests := []struct {
		name     string
		botPos   core.Vec2
		expected BotState
	}{
		{"far", core.V(500, 300), BotMoving},
		{"just outside", core.V(430.5, 300), BotMoving},
		{"exactly at radius", core.V(430, 300), BotCaptured},
		{"inside", core.V(410, 300), BotCaptured},
		{"coincident", core.V(400, 300), BotCaptured},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBot(tc.botPos, 3)
			item := Item{Pos: core.V(400, 300), Radius: 30}

			state := b.Advance(item, t0)
			if state != tc.expected {
				t.Errorf("Advance() = %v, expected %v", state, tc.expected)
			}
			if state == BotCaptured && b.Pos() != tc.botPos {
				t.Errorf("capturing bot should not move, now at %v", b.Pos())
			}
		})
	}
}

func TestBotReset(t *testing.T) {
	b := NewBot(core.V(700, 300), 3)
	b.SetDeadline(t0)
	b.Advance(Item{Pos: core.V(0, 300), Radius: 30}, t0)

	b.Reset(core.V(700, 300), 7)
	if b.Pos() != core.V(700, 300) {
		t.Errorf("Reset() should restore start point, got %v", b.Pos())
	}
	if b.Speed() != 7 {
		t.Errorf("Speed() = %v, expected 7", b.Speed())
	}
	if !b.Deadline().IsZero() {
		t.Errorf("Reset() should clear the deadline, got %v", b.Deadline())
	}
}

func approxVec(a, b core.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}
