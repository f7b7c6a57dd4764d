package core

import "strings"

// Difficulty is one of the three bot presets.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// Difficulties lists all levels in menu order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

// String returns a human-readable name for the level.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// ParseDifficulty converts a name such as "easy" or "Hard" to a level.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "e", "1":
		return DifficultyEasy, true
	case "medium", "normal", "m", "2":
		return DifficultyMedium, true
	case "hard", "h", "3":
		return DifficultyHard, true
	}
	return DifficultyMedium, false
}

// Capturer identifies who grabbed an item.
type Capturer int

const (
	CapturerPlayer Capturer = iota + 1
	CapturerBot
)

// String returns a human-readable name.
func (c Capturer) String() string {
	switch c {
	case CapturerPlayer:
		return "player"
	case CapturerBot:
		return "bot"
	default:
		return "none"
	}
}
