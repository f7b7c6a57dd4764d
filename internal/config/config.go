// Package config provides YAML-based game configuration loading and
// difficulty presets for the grabber.
package config

import (
	"time"

	"github.com/vovakirdan/money-grabber/internal/core"
)

// RoundDuration is the fixed length of a round.
const RoundDuration = 30 * time.Second

// GrabberConfig contains all tuning for a match.
type GrabberConfig struct {
	Field      FieldConfig     `yaml:"field"`
	Item       ItemConfig      `yaml:"item"`
	Bot        BotConfig       `yaml:"bot"`
	Difficulty DifficultyTable `yaml:"difficulty"`
}

// FieldConfig defines the playable area in world units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ItemConfig defines the contested item.
type ItemConfig struct {
	Radius float64 `yaml:"radius"` // Capture radius and spawn margin
}

// BotConfig defines where the bot starts each match.
type BotConfig struct {
	StartInset float64 `yaml:"start_inset"` // Distance from the right edge
}

// Bounds returns the field as core bounds.
func (c GrabberConfig) Bounds() core.Bounds {
	return core.Bounds{W: c.Field.Width, H: c.Field.Height}
}

// BotStart returns the fixed start point of the bot.
func (c GrabberConfig) BotStart() core.Vec2 {
	return core.V(c.Field.Width-c.Bot.StartInset, c.Field.Height/2)
}
