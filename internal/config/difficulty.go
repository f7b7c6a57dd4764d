package config

import (
	"time"

	"github.com/vovakirdan/money-grabber/internal/core"
)

// Preset holds the bot parameters for one difficulty level.
// No other parameter varies with difficulty.
type Preset struct {
	Speed        float64 `yaml:"speed"`         // World units per tick
	ReactionSecs float64 `yaml:"reaction_secs"` // Delay before the bot moves
}

// ReactionDelay returns the reaction delay as a duration.
func (p Preset) ReactionDelay() time.Duration {
	return time.Duration(p.ReactionSecs * float64(time.Second))
}

// DifficultyTable is the fixed three-entry lookup of bot presets.
type DifficultyTable struct {
	Default string `yaml:"default"`
	Easy    Preset `yaml:"easy"`
	Medium  Preset `yaml:"medium"`
	Hard    Preset `yaml:"hard"`
}

// Preset returns the parameters for a level.
// Unknown levels fall back to Medium.
func (t DifficultyTable) Preset(d core.Difficulty) Preset {
	switch d {
	case core.DifficultyEasy:
		return t.Easy
	case core.DifficultyHard:
		return t.Hard
	default:
		return t.Medium
	}
}

// DefaultLevel returns the level preselected in the menu.
func (t DifficultyTable) DefaultLevel() core.Difficulty {
	lvl, _ := ParseDifficultyFlag(t.Default)
	return lvl
}

// ParseDifficultyFlag parses a level name, treating "" as Medium.
func ParseDifficultyFlag(name string) (core.Difficulty, bool) {
	if name == "" {
		return core.DifficultyMedium, true
	}
	return core.ParseDifficulty(name)
}
