package grabber

import (
	"time"

	"github.com/vovakirdan/money-grabber/internal/core"
)

// BotState is the outcome of advancing the bot for one tick.
type BotState int

const (
	BotIdle     BotState = iota // Waiting out the reaction delay
	BotMoving                   // Closing distance to the item
	BotCaptured                 // Within capture radius of the item
)

// String returns a human-readable name for the state.
func (s BotState) String() string {
	switch s {
	case BotIdle:
		return "idle"
	case BotMoving:
		return "moving"
	case BotCaptured:
		return "captured"
	default:
		return "unknown"
	}
}

// Bot is the scripted opponent. It never changes scores; it only reports
// captures to the match.
type Bot struct {
	pos      core.Vec2
	deadline time.Time
	speed    float64 // World units per tick
}

// NewBot creates a bot at the given start point.
func NewBot(start core.Vec2, speed float64) *Bot {
	return &Bot{pos: start, speed: speed}
}

// Reset moves the bot back to its start point with a new speed.
// Only called when a new match begins.
func (b *Bot) Reset(start core.Vec2, speed float64) {
	b.pos = start
	b.speed = speed
	b.deadline = time.Time{}
}

// SetDeadline sets the instant before which the bot stays idle.
func (b *Bot) SetDeadline(t time.Time) {
	b.deadline = t
}

// Pos returns the bot position.
func (b *Bot) Pos() core.Vec2 {
	return b.pos
}

// Deadline returns the current reaction deadline.
func (b *Bot) Deadline() time.Time {
	return b.deadline
}

// Speed returns the bot speed in units per tick.
func (b *Bot) Speed() float64 {
	return b.speed
}

// Advance runs one tick of pursuit toward item.
func (b *Bot) Advance(item Item, now time.Time) BotState {
	if now.Before(b.deadline) {
		return BotIdle
	}

	delta := item.Pos.Sub(b.pos)
	dist := delta.Len()
	// dist == 0 is covered here, so Normalize below never sees a zero vector
	if dist <= item.Radius {
		return BotCaptured
	}

	b.pos = b.pos.Add(delta.Normalize().Scale(b.speed))
	return BotMoving
}
