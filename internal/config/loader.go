package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config source names reported by Load.
const (
	SourceCustom   = "custom"
	SourceUser     = "user"
	SourceLocal    = "local"
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads the grabber configuration.
// Search order: customPath -> ~/.grabber/configs/grabber.yaml -> ./configs/grabber.yaml -> embedded default.
// Files may be partial; missing keys keep their default values.
// Returns the config and the name of the source it came from.
func Load(customPath string) (GrabberConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GrabberConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return GrabberConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("grabber.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, SourceUser, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "grabber.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, SourceLocal, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultGrabberYAML)
	if err != nil {
		return DefaultGrabberConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parse decodes YAML on top of the defaults and validates the result.
func parse(data []byte) (GrabberConfig, error) {
	cfg := DefaultGrabberConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".grabber", "configs", filename)
}

// Validate checks that the configuration describes a playable field.
func (c GrabberConfig) Validate() error {
	var errs []error

	if c.Item.Radius <= 0 {
		errs = append(errs, fmt.Errorf("item.radius must be positive, got %v", c.Item.Radius))
	}
	if c.Field.Width < 2*c.Item.Radius || c.Field.Height < 2*c.Item.Radius {
		errs = append(errs, fmt.Errorf("field %vx%v is smaller than the item", c.Field.Width, c.Field.Height))
	}
	if c.Bot.StartInset < 0 || c.Bot.StartInset > c.Field.Width {
		errs = append(errs, fmt.Errorf("bot.start_inset %v is outside the field", c.Bot.StartInset))
	}
	if _, ok := ParseDifficultyFlag(c.Difficulty.Default); !ok {
		errs = append(errs, fmt.Errorf("difficulty.default: unknown level %q", c.Difficulty.Default))
	}

	presets := []struct {
		name string
		p    Preset
	}{
		{"easy", c.Difficulty.Easy},
		{"medium", c.Difficulty.Medium},
		{"hard", c.Difficulty.Hard},
	}
	for _, e := range presets {
		if e.p.Speed <= 0 {
			errs = append(errs, fmt.Errorf("difficulty.%s.speed must be positive, got %v", e.name, e.p.Speed))
		}
		if e.p.ReactionSecs < 0 {
			errs = append(errs, fmt.Errorf("difficulty.%s.reaction_secs must not be negative, got %v", e.name, e.p.ReactionSecs))
		}
	}

	return errors.Join(errs...)
}
