package tui

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/money-grabber/internal/assets"
	"github.com/vovakirdan/money-grabber/internal/config"
	"github.com/vovakirdan/money-grabber/internal/core"
)

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" {
		t.Errorf("Address = %q, expected :23234", cfg.Address)
	}
	if cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("IdleTimeout = %v, expected 30m", cfg.IdleTimeout)
	}
	if cfg.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", cfg.TickRate)
	}
}

func TestSessionOptions(t *testing.T) {
	game := config.DefaultGrabberConfig()
	game.Difficulty.Default = "hard"

	s := &SSHServer{
		config:  SSHServerConfig{TickRate: 30, Seed: 99, Game: game},
		sprites: assets.Load("", nil),
		logger:  log.New(io.Discard),
	}
	opts := s.sessionOptions("alice", 100, 40)

	if opts.Runtime.ScreenW != 100 || opts.Runtime.ScreenH != 40 {
		t.Errorf("screen = %dx%d, expected 100x40", opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	}
	if opts.Runtime.TickRate != 30 || opts.Runtime.Seed != 99 {
		t.Errorf("Runtime = %+v, expected tick rate 30 and seed 99", opts.Runtime)
	}
	if opts.Difficulty != core.DifficultyHard {
		t.Errorf("Difficulty = %v, expected Hard", opts.Difficulty)
	}
	if len(opts.Effects) != 0 {
		t.Errorf("Effects = %v, expected no sound for remote sessions", opts.Effects)
	}

	// Each session gets its own match
	a := NewModel(opts)
	b := NewModel(s.sessionOptions("bob", 100, 40))
	if a.Match() == b.Match() {
		t.Error("sessions share a match")
	}
}

func TestSessionOptionsTimeSeed(t *testing.T) {
	s := &SSHServer{
		config:  SSHServerConfig{Game: config.DefaultGrabberConfig()},
		sprites: assets.Load("", nil),
		logger:  log.New(io.Discard),
	}
	opts := s.sessionOptions("carol", 80, 24)
	if opts.Runtime.Seed == 0 {
		t.Error("Seed = 0, expected a time-based seed")
	}
	if opts.Sprites == nil {
		t.Error("Sprites = nil, expected the server sprite set")
	}
}
