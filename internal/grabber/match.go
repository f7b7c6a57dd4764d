package grabber

import (
	"time"

	"github.com/vovakirdan/money-grabber/internal/config"
	"github.com/vovakirdan/money-grabber/internal/core"
)

// Phase is the top-level state of a match.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Winner is the outcome of a finished round. It is derived from the scores
// and never stored.
type Winner int

const (
	WinnerDraw Winner = iota
	WinnerPlayer
	WinnerBot
)

// String returns a human-readable name for the winner.
func (w Winner) String() string {
	switch w {
	case WinnerPlayer:
		return "player"
	case WinnerBot:
		return "bot"
	default:
		return "draw"
	}
}

// Capture describes one item grabbed during a tick.
type Capture struct {
	By   core.Capturer
	Item Item // The item that was taken
}

// TickResult is returned by Match.Tick.
type TickResult struct {
	Phase        Phase     // Phase after the tick
	PhaseChanged bool      // Whether the tick moved to another phase
	Captures     []Capture // Captures in the order they were applied
	Quit         bool      // A QuitRequested event was seen
}

// Snapshot is a read-only view of the match for rendering.
type Snapshot struct {
	Phase         Phase
	Difficulty    core.Difficulty
	PlayerScore   int
	BotScore      int
	TimeRemaining time.Duration
	Item          Item
	HasItem       bool
	BotPos        core.Vec2
	BotState      BotState
	Bounds        core.Bounds
}

// Match owns all mutable round state: phase, scores, clock, item and bot.
// It is the only place scores change. Not safe for concurrent use; the
// platform drives it from a single tick loop.
type Match struct {
	cfg     config.GrabberConfig
	spawner *Spawner
	bot     *Bot

	phase         Phase
	difficulty    core.Difficulty
	playerScore   int
	botScore      int
	roundStart    time.Time
	timeRemaining time.Duration

	item     Item
	hasItem  bool
	botState BotState
}

// NewMatch creates a match in the menu phase.
func NewMatch(cfg config.GrabberConfig, seed int64) *Match {
	level := cfg.Difficulty.DefaultLevel()
	return &Match{
		cfg:           cfg,
		spawner:       NewSpawner(seed, cfg.Difficulty),
		bot:           NewBot(cfg.BotStart(), cfg.Difficulty.Preset(level).Speed),
		phase:         PhaseMenu,
		difficulty:    level,
		timeRemaining: config.RoundDuration,
	}
}

// Tick advances the match by one fixed step.
//
// Order within a Playing tick: the clock is checked first (expiry ends the
// round and drops the tick's remaining input), then input events are applied
// in order, then the bot advances. Player input therefore wins a same-tick
// race for an item.
func (m *Match) Tick(now time.Time, events []core.Event) TickResult {
	before := m.phase
	res := TickResult{}

	expired := false
	if m.phase == PhasePlaying {
		expired = m.updateClock(now)
	}

	for _, ev := range events {
		if _, ok := ev.(core.QuitRequested); ok {
			res.Quit = true
			continue
		}
		if expired {
			continue
		}
		m.apply(ev, now, &res)
	}

	if m.phase == PhasePlaying && m.hasItem {
		m.advanceBot(now, &res)
	}

	res.Phase = m.phase
	res.PhaseChanged = m.phase != before
	return res
}

// updateClock recomputes the remaining time. Returns true if the round ended.
func (m *Match) updateClock(now time.Time) bool {
	remaining := config.RoundDuration - now.Sub(m.roundStart)
	// Never let the countdown go up, even if the caller's clock does
	if remaining > m.timeRemaining {
		remaining = m.timeRemaining
	}
	if remaining > 0 {
		m.timeRemaining = remaining
		return false
	}

	m.timeRemaining = 0
	m.phase = PhaseGameOver
	m.hasItem = false // In-flight item is forfeited
	m.botState = BotIdle
	return true
}

// apply handles one input event for the current phase.
func (m *Match) apply(ev core.Event, now time.Time, res *TickResult) {
	switch m.phase {
	case PhaseMenu:
		switch e := ev.(type) {
		case core.DifficultySelected:
			m.SelectDifficulty(e.Level)
		case core.StartRequested:
			m.start(now)
		}

	case PhasePlaying:
		if e, ok := ev.(core.PointerClicked); ok {
			m.click(e.Pos, now, res)
		}

	case PhaseGameOver:
		if _, ok := ev.(core.ReturnToMenuRequested); ok {
			m.phase = PhaseMenu
		}
	}
}

// SelectDifficulty stores a level while in the menu.
// Invalid levels and calls outside the menu are ignored.
func (m *Match) SelectDifficulty(d core.Difficulty) {
	if m.phase != PhaseMenu || !d.Valid() {
		return
	}
	m.difficulty = d
}

// start begins a new round.
func (m *Match) start(now time.Time) {
	m.playerScore = 0
	m.botScore = 0
	m.bot.Reset(m.cfg.BotStart(), m.cfg.Difficulty.Preset(m.difficulty).Speed)
	m.roundStart = now
	m.timeRemaining = config.RoundDuration
	m.botState = BotIdle
	m.phase = PhasePlaying
	m.respawn(now)
}

// click resolves a player click. Misses have no effect.
func (m *Match) click(pos core.Vec2, now time.Time, res *TickResult) {
	if !m.hasItem || pos.Dist(m.item.Pos) > m.item.Radius {
		return
	}
	m.playerScore++
	res.Captures = append(res.Captures, Capture{By: core.CapturerPlayer, Item: m.item})
	m.respawn(now)
}

// advanceBot runs the bot for this tick and scores a capture.
func (m *Match) advanceBot(now time.Time, res *TickResult) {
	m.botState = m.bot.Advance(m.item, now)
	if m.botState != BotCaptured {
		return
	}
	m.botScore++
	res.Captures = append(res.Captures, Capture{By: core.CapturerBot, Item: m.item})
	m.respawn(now)
}

// respawn places the next item and resets the bot's reaction deadline.
// The bot keeps its position.
func (m *Match) respawn(now time.Time) {
	item, deadline := m.spawner.Spawn(m.cfg.Bounds(), m.cfg.Item.Radius, m.difficulty, now)
	m.item = item
	m.hasItem = true
	m.bot.SetDeadline(deadline)
}

// Phase returns the current phase.
func (m *Match) Phase() Phase {
	return m.phase
}

// Difficulty returns the selected level.
func (m *Match) Difficulty() core.Difficulty {
	return m.difficulty
}

// Scores returns the player and bot scores.
func (m *Match) Scores() (player, bot int) {
	return m.playerScore, m.botScore
}

// TimeRemaining returns the countdown value.
func (m *Match) TimeRemaining() time.Duration {
	return m.timeRemaining
}

// Item returns the current item and whether one is in play.
func (m *Match) Item() (Item, bool) {
	return m.item, m.hasItem
}

// Bot returns the bot agent.
func (m *Match) Bot() *Bot {
	return m.bot
}

// Winner derives the outcome from the current scores.
func (m *Match) Winner() Winner {
	return winner(m.playerScore, m.botScore)
}

// Winner derives the outcome from the snapshot scores.
func (s Snapshot) Winner() Winner {
	return winner(s.PlayerScore, s.BotScore)
}

func winner(player, bot int) Winner {
	switch {
	case player > bot:
		return WinnerPlayer
	case bot > player:
		return WinnerBot
	default:
		return WinnerDraw
	}
}

// Snapshot returns a copy of the state needed for rendering.
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		Phase:         m.phase,
		Difficulty:    m.difficulty,
		PlayerScore:   m.playerScore,
		BotScore:      m.botScore,
		TimeRemaining: m.timeRemaining,
		Item:          m.item,
		HasItem:       m.hasItem && m.phase == PhasePlaying,
		BotPos:        m.bot.Pos(),
		BotState:      m.botState,
		Bounds:        m.cfg.Bounds(),
	}
}

// Config returns the tuning the match was created with.
func (m *Match) Config() config.GrabberConfig {
	return m.cfg
}
