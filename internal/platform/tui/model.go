package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chicken-road/internal/core"
	"github.com/vovakirdan/chicken-road/internal/games/chicken"
	"github.com/vovakirdan/chicken-road/internal/sound"
	"github.com/vovakirdan/chicken-road/internal/storage"
)

// Options configures the game model. Every dependency is optional.
type Options struct {
	Runtime     core.RuntimeConfig
	Store       *storage.Store // Run history; nil disables it
	Sound       *sound.Manager // Nil plays nothing
	Logger      *log.Logger    // Nil discards logs
	Preset      string         // Recorded with each run
	HoldRelease time.Duration
	FirstRepeat time.Duration
}

// Model is the Bubble Tea model that runs Chicken Road.
type Model struct {
	game       *chicken.Game
	screen     *core.Screen
	opts       Options
	logger     *log.Logger
	keys       *KeyMapper
	help       help.Model
	hold       *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	runSaved   bool // Whether the finished run has been recorded
	now        func() time.Time
}

// NewModel creates a new Bubble Tea model for the game.
func NewModel(game *chicken.Game, opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(opts.Runtime.ScreenW, max(1, opts.Runtime.ScreenH-1)),
		opts:       opts,
		logger:     logger,
		keys:       NewKeyMapper(),
		help:       help.New(),
		hold:       NewHoldTracker(opts.HoldRelease, opts.FirstRepeat),
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.opts.Runtime)
	m.logger.Debug("game ready", "seed", m.opts.Runtime.Seed, "fps", m.opts.Runtime.TickRate)

	// Start the tick loop
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if d, ok := m.keys.MapDirection(msg); ok {
		started, released := m.hold.Press(d, m.now())
		for _, r := range released {
			m.game.Release(r)
		}
		if started {
			m.game.Press(d)
		}
		return m, nil
	}

	isQuit := m.keys.MapKeyToFrame(msg, &m.inputFrame)
	if m.inputFrame.Has(core.ActionRestart) || m.inputFrame.Has(core.ActionStart) && !m.game.IsPlaying() {
		// A new session starts with no direction held
		m.hold.Reset()
		m.game.ReleaseAll()
	}

	if isQuit {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score, "phase", m.gameState.Phase)
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The world is scaled to
// the terminal, so the session carries on untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, d := range m.hold.Expire(now) {
		m.game.Release(d)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// First tick of a new session
	if result.State.Phase == core.PhasePlaying && result.State.Frames == 1 {
		m.runSaved = false
		m.logger.Info("run started", "seed", m.opts.Runtime.Seed, "preset", m.opts.Preset)
	}

	for _, ev := range result.Events {
		m.handleEvent(ev)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// handleEvent logs an event, plays its cue and records finished runs.
func (m *Model) handleEvent(ev core.Event) {
	if m.opts.Sound != nil {
		m.opts.Sound.Play(ev)
	}

	switch ev.Kind {
	case core.EventCollision:
		m.logger.Debug("collision", "lives", ev.Value)
	case core.EventCrossing:
		m.logger.Debug("crossing", "score", ev.Value)
	case core.EventDifficultyUp:
		m.logger.Info("difficulty up", "step", ev.Value)
	case core.EventNewHighScore:
		m.logger.Info("new high score", "score", ev.Value)
		if res := m.game.LastSave(); !res.OK() {
			m.logger.Warn("high score not saved", "status", res.Status, "err", res.Err)
		}
	case core.EventGameOver:
		m.logger.Info("game over", "score", ev.Value, "step", m.gameState.DifficultyStep, "frames", m.gameState.Frames)
		m.saveRun()
	}
}

// saveRun records the finished run once. Failures are logged and the
// game continues regardless.
func (m *Model) saveRun() {
	if m.runSaved || m.opts.Store == nil {
		return
	}
	m.runSaved = true

	id, err := m.opts.Store.SaveRun(storage.Run{
		Score:          m.gameState.Score,
		DifficultyStep: m.gameState.DifficultyStep,
		Frames:         m.gameState.Frames,
		Preset:         m.opts.Preset,
		Seed:           m.opts.Runtime.Seed,
	})
	if err != nil {
		m.logger.Warn("run not recorded", "err", err)
		return
	}
	m.logger.Debug("run recorded", "id", id)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".chicken-road", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), m.now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// GameState returns the state after the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the game.
func Run(game *chicken.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
