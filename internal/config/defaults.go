package config

import (
	_ "embed"
)

//go:embed defaults/grabber.yaml
var defaultGrabberYAML []byte

// DefaultGrabberConfig returns the hardcoded default configuration.
func DefaultGrabberConfig() GrabberConfig {
	return GrabberConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Item: ItemConfig{
			Radius: 30,
		},
		Bot: BotConfig{
			StartInset: 100,
		},
		Difficulty: DifficultyTable{
			Default: "medium",
			Easy:    Preset{Speed: 3, ReactionSecs: 1.5},
			Medium:  Preset{Speed: 5, ReactionSecs: 1.0},
			Hard:    Preset{Speed: 7, ReactionSecs: 0.5},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGrabberYAML
}
