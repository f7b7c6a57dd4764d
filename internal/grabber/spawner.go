// Package grabber implements the round controller of Money Grabber:
// item spawning, bot pursuit and the match state machine.
// The package is pure game logic; input, rendering and feedback live in the
// platform layer.
package grabber

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/money-grabber/internal/config"
	"github.com/vovakirdan/money-grabber/internal/core"
)

// Variant is the visual style of an item.
type Variant int

const (
	VariantCoin Variant = iota
	VariantBill
)

// String returns a human-readable name for the variant.
func (v Variant) String() string {
	if v == VariantBill {
		return "bill"
	}
	return "coin"
}

// Item is the contested object on the field.
type Item struct {
	Pos     core.Vec2
	Variant Variant
	Radius  float64 // Capture radius
}

// Spawner places items and computes the bot's reaction deadline.
type Spawner struct {
	rng     *rand.Rand
	presets config.DifficultyTable
}

// NewSpawner creates a spawner with its own seeded RNG.
func NewSpawner(seed int64, presets config.DifficultyTable) *Spawner {
	return &Spawner{
		rng:     rand.New(rand.NewSource(seed)),
		presets: presets,
	}
}

// Spawn picks the next item and returns it with the instant before which the
// bot may not move. Both coordinates are drawn independently from
// [radius, dimension-radius], so the item is always fully inside bounds.
func (s *Spawner) Spawn(bounds core.Bounds, radius float64, d core.Difficulty, now time.Time) (Item, time.Time) {
	item := Item{
		Pos:     core.V(s.axis(bounds.W, radius), s.axis(bounds.H, radius)),
		Variant: VariantCoin,
		Radius:  radius,
	}
	if s.rng.Intn(2) == 1 {
		item.Variant = VariantBill
	}

	deadline := now.Add(s.presets.Preset(d).ReactionDelay())
	return item, deadline
}

// axis draws one coordinate. A dimension too small for the item collapses
// to its center.
func (s *Spawner) axis(dim, radius float64) float64 {
	span := dim - 2*radius
	if span <= 0 {
		return dim / 2
	}
	return radius + s.rng.Float64()*span
}
