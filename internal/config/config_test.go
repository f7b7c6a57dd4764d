package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/money-grabber/internal/core"
)

func TestEmbeddedMatchesBuiltin(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) failed: %v", err)
	}
	if cfg != DefaultGrabberConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultGrabberConfig())
	}
}

func TestDefaultPresets(t *testing.T) {
	table := DefaultGrabberConfig().Difficulty

	tests := []struct {
		level    core.Difficulty
		speed    float64
		reaction time.Duration
	}{
		{core.DifficultyEasy, 3, 1500 * time.Millisecond},
		{core.DifficultyMedium, 5, time.Second},
		{core.DifficultyHard, 7, 500 * time.Millisecond},
	}

	for _, tc := range tests {
		p := table.Preset(tc.level)
		if p.Speed != tc.speed {
			t.Errorf("Preset(%v).Speed = %v, expected %v", tc.level, p.Speed, tc.speed)
		}
		if p.ReactionDelay() != tc.reaction {
			t.Errorf("Preset(%v).ReactionDelay() = %v, expected %v", tc.level, p.ReactionDelay(), tc.reaction)
		}
	}

	if table.DefaultLevel() != core.DifficultyMedium {
		t.Errorf("DefaultLevel() = %v, expected Medium", table.DefaultLevel())
	}
}

func TestBotStart(t *testing.T) {
	cfg := DefaultGrabberConfig()
	if got := cfg.BotStart(); got != core.V(700, 300) {
		t.Errorf("BotStart() = %v, expected (700, 300)", got)
	}
	if got := cfg.Bounds(); got != (core.Bounds{W: 800, H: 600}) {
		t.Errorf("Bounds() = %v, expected 800x600", got)
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grabber.yaml")
	data := "difficulty:\n  hard:\n    speed: 9\n    reaction_secs: 0.25\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != SourceCustom {
		t.Errorf("source = %q, expected %q", source, SourceCustom)
	}
	if cfg.Difficulty.Hard.Speed != 9 {
		t.Errorf("hard speed = %v, expected 9", cfg.Difficulty.Hard.Speed)
	}
	// Untouched keys keep defaults
	if cfg.Field.Width != 800 || cfg.Difficulty.Easy.Speed != 3 {
		t.Errorf("partial file should keep defaults, got %+v", cfg)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("item:\n  radius: -4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, _, err := Load(bad)
	if err == nil {
		t.Fatal("Load() of an invalid config should fail")
	}
	if !strings.Contains(err.Error(), "item.radius") {
		t.Errorf("error should name the bad key, got %v", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default
	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg != DefaultGrabberConfig() {
		t.Errorf("embedded config differs from defaults")
	}

	// Local file wins over embedded
	writeConfig(t, filepath.Join(work, "configs"), "item:\n  radius: 20\n")
	cfg, source, _ = Load("")
	if source != SourceLocal || cfg.Item.Radius != 20 {
		t.Errorf("Load() = (radius %v, %q), expected local radius 20", cfg.Item.Radius, source)
	}

	// User file wins over local
	writeConfig(t, filepath.Join(home, ".grabber", "configs"), "item:\n  radius: 25\n")
	cfg, source, _ = Load("")
	if source != SourceUser || cfg.Item.Radius != 25 {
		t.Errorf("Load() = (radius %v, %q), expected user radius 25", cfg.Item.Radius, source)
	}

	// Broken user file is skipped
	writeConfig(t, filepath.Join(home, ".grabber", "configs"), "item: [unclosed\n")
	_, source, _ = Load("")
	if source != SourceLocal {
		t.Errorf("source = %q, expected fallback to %q", source, SourceLocal)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GrabberConfig)
		errKey string
	}{
		{"zero speed", func(c *GrabberConfig) { c.Difficulty.Easy.Speed = 0 }, "difficulty.easy.speed"},
		{"negative reaction", func(c *GrabberConfig) { c.Difficulty.Hard.ReactionSecs = -1 }, "difficulty.hard.reaction_secs"},
		{"tiny field", func(c *GrabberConfig) { c.Field.Height = 10 }, "field"},
		{"bad default", func(c *GrabberConfig) { c.Difficulty.Default = "insane" }, "difficulty.default"},
		{"inset outside", func(c *GrabberConfig) { c.Bot.StartInset = 900 }, "bot.start_inset"},
	}

	if err := DefaultGrabberConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid, got %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGrabberConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.errKey) {
				t.Errorf("Validate() = %v, expected mention of %q", err, tc.errKey)
			}
		})
	}
}

func writeConfig(t *testing.T, dir, data string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "grabber.yaml"), []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
}
