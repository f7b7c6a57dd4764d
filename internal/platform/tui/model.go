package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/money-grabber/internal/assets"
	"github.com/vovakirdan/money-grabber/internal/config"
	"github.com/vovakirdan/money-grabber/internal/core"
	"github.com/vovakirdan/money-grabber/internal/grabber"
)

// Options configures a Model.
type Options struct {
	Game       config.GrabberConfig
	Runtime    core.RuntimeConfig
	Difficulty core.Difficulty  // Initial menu selection
	Sprites    assets.Source    // Procedural art if nil
	Effects    []CaptureEffects // Extra capture feedback, e.g. sound
	Logger     *log.Logger      // Discards if nil
	Clock      func() time.Time // time.Now if nil
}

// Model is the Bubble Tea model for a grabber session: menu, rounds and
// game-over screens all run through one match.
type Model struct {
	match    *grabber.Match
	queue    *core.InputQueue
	screen   *core.Screen
	view     Viewport
	keys     KeyMap
	help     help.Model
	presets  table.Model
	sprites  assets.Source
	effects  []CaptureEffects
	logger   *log.Logger
	clock    func() time.Time
	config   core.RuntimeConfig
	pointerX int
	pointerY int
	flashes  []flash
	now      time.Time
	rounds   int // Finished rounds this session
	quitting bool
}

// NewModel creates a model with a fresh match in the menu.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sprites := opts.Sprites
	if sprites == nil {
		sprites = assets.Procedural{}
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	match := grabber.NewMatch(opts.Game, cfg.Seed)
	if opts.Difficulty.Valid() {
		match.SelectDifficulty(opts.Difficulty)
	}

	m := Model{
		match:   match,
		queue:   &core.InputQueue{},
		keys:    DefaultKeyMap(),
		help:    help.New(),
		presets: newPresetsTable(opts.Game.Difficulty),
		sprites: sprites,
		effects: opts.Effects,
		logger:  logger,
		clock:   clock,
		config:  cfg,
	}
	m.layout(cfg.ScreenW, cfg.ScreenH)
	m.pointerX, m.pointerY = m.view.ToCell(m.view.Bounds.Center())
	return m
}

// layout sizes the screen buffer and field for the terminal.
func (m *Model) layout(w, h int) {
	m.config.ScreenW = w
	m.config.ScreenH = h
	m.view = NewViewport(w, h, m.match.Config().Bounds())
	rows := max(h-footerRows, 1)
	if m.screen == nil {
		m.screen = core.NewScreen(w, rows)
	} else {
		m.screen.Resize(w, rows)
	}
	m.help.Width = w
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.layout(msg.Width, msg.Height)
		m.pointerX, m.pointerY = m.view.ClampCell(m.pointerX, m.pointerY)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the event a key maps to in the current phase.
// Pointer movement and screenshots are handled here, outside the match.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	res := m.keys.Map(msg, m.match.Phase())

	if res.Screenshot {
		m.saveScreenshot()
		return m, nil
	}
	if res.DX != 0 || res.DY != 0 {
		m.pointerX, m.pointerY = m.view.ClampCell(m.pointerX+res.DX, m.pointerY+res.DY)
	}
	if res.Grab {
		m.queue.Push(core.PointerClicked{Pos: m.view.ToWorld(m.pointerX, m.pointerY)})
	}
	if res.Event != nil {
		m.queue.Push(res.Event)
	}
	return m, nil
}

// handleMouse tracks the pointer and turns left presses into events: button
// presses on the menu and result screens, grabs on the field.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.view.ContainsCell(msg.X, msg.Y) {
		m.pointerX, m.pointerY = msg.X, msg.Y
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch m.match.Phase() {
	case grabber.PhaseMenu:
		for _, t := range m.menuTargets() {
			if t.area.Contains(msg.X, msg.Y) {
				m.queue.Push(t.event)
				break
			}
		}

	case grabber.PhasePlaying:
		// Outside the world no click can reach the item
		pos := m.view.ToWorld(msg.X, msg.Y)
		if m.view.Bounds.Contains(pos) {
			m.queue.Push(core.PointerClicked{Pos: pos})
		}

	case grabber.PhaseGameOver:
		if layoutGameOver(m.view, m.sprites).button.Contains(msg.X, msg.Y) {
			m.queue.Push(core.ReturnToMenuRequested{})
		}
	}
	return m, nil
}

// handleTick runs one fixed step of the match with the queued input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := m.clock()
	m.now = now

	before := m.match.Phase()
	res := m.match.Tick(now, m.queue.Drain())

	for _, c := range res.Captures {
		m.logger.Debug("capture",
			"by", c.By,
			"variant", c.Item.Variant,
			"x", int(c.Item.Pos.X),
			"y", int(c.Item.Pos.Y),
		)
		m.flashes = append(m.flashes, flash{item: c.Item, by: c.By, start: now})
		for _, e := range m.effects {
			e.PlayCapture(c.By)
		}
	}
	m.flashes = pruneFlashes(m.flashes, now)

	if res.PhaseChanged {
		m.onPhaseChange(before, res.Phase)
	}

	if res.Quit {
		m.logger.Info("quit", "phase", m.match.Phase())
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// onPhaseChange logs transitions and resets per-round presentation state.
func (m *Model) onPhaseChange(from, to grabber.Phase) {
	player, bot := m.match.Scores()
	m.logger.Info("phase changed", "from", from, "to", to, "player", player, "bot", bot)

	switch to {
	case grabber.PhasePlaying:
		m.flashes = nil
		m.logger.Info("round started", "difficulty", m.match.Difficulty())
	case grabber.PhaseGameOver:
		m.rounds++
		m.logger.Info("round over", "winner", m.match.Winner(), "player", player, "bot", bot)
	}
}

// scene collects what the field renderer needs.
func (m Model) scene() scene {
	return scene{
		snap:    m.match.Snapshot(),
		view:    m.view,
		sprites: m.sprites,
		flashes: m.flashes,
		pointer: [2]int{m.pointerX, m.pointerY},
		now:     m.now,
	}
}

// saveScreenshot saves the current view as plain text.
func (m *Model) saveScreenshot() {
	var text string
	if m.match.Phase() == grabber.PhaseMenu {
		text = ansi.Strip(m.menuView())
	} else {
		drawScene(m.screen, m.scene())
		text = m.screen.String()
	}

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".grabber", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("grabber_%s_%s.txt", m.match.Phase(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(text), 0o600)
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.config.ScreenW < minScreenW || m.config.ScreenH < minScreenH {
		return fmt.Sprintf("Terminal too small (%dx%d), need at least %dx%d",
			m.config.ScreenW, m.config.ScreenH, minScreenW, minScreenH)
	}

	phase := m.match.Phase()
	if phase == grabber.PhaseMenu {
		return m.menuView()
	}

	drawScene(m.screen, m.scene())
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(phaseHelp{keys: m.keys, phase: phase}))
}

// Match exposes the running match.
func (m Model) Match() *grabber.Match {
	return m.match
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover needs motion without a button held
	)

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
