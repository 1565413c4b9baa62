package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossy/internal/audio"
	"github.com/vovakirdan/tui-crossy/internal/core"
	"github.com/vovakirdan/tui-crossy/internal/storage"
)

// Game is what the runner drives. Games contain pure logic with no
// Bubble Tea dependency; the runner maps keys, ticks and draws.
type Game interface {
	ID() string
	Title() string
	// Reset starts a new run. Called once at start and on every retry.
	Reset(cfg core.RuntimeConfig)
	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult
	// Render draws the current state into dst.
	Render(dst *core.Screen)
	State() core.GameState
}

// Options are the runner's collaborators. Every field may be left zero.
type Options struct {
	Store  *storage.Store
	Sounds audio.Player
	Logger *log.Logger
	Mode   string // score table the run is recorded under
	Skin   string // recorded with the score
}

// GameModel is the Bubble Tea model that runs one game until the player
// quits or goes back to the menu.
type GameModel struct {
	game       Game
	loop       int64
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       GameKeyMap
	help       help.Model
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a runner for game. A zero seed is replaced with a
// time-based one.
func NewGameModel(game Game, cfg core.RuntimeConfig, opts Options) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Sounds == nil {
		opts.Sounds = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:       game,
		loop:       newLoopID(),
		screen:     core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH)),
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultGameKeyMap(),
		help:       h,
	}
}

// boardHeight leaves one row for the help line.
func boardHeight(screenH int) int {
	return core.Max(1, screenH-1)
}

// Init starts the game, the music and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Sounds.StartMusic()
	m.opts.Logger.Debug("run started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, boardHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.opts.Sounds.StopAll()
		return m, tea.Quit

	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			m.opts.Sounds.StopAll()
			return m, tea.Quit
		}

	case core.ActionRestart:
		if m.gameState.RetryReady {
			m.inputFrame.Set(action)
		}

	default:
		// Moves are dropped at the source once the run is over.
		if action.IsMove() && m.gameState.GameOver {
			return m, nil
		}
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.RetryReady {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		m.opts.Sounds.StartMusic()
		m.opts.Logger.Debug("run restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate, m.loop)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.dispatch(result.Events)

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.loop)
}

// dispatch forwards simulation events to the sound player.
func (m GameModel) dispatch(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventStepCommitted:
			m.opts.Sounds.PlayMove()
		case core.EventCollision:
			m.opts.Sounds.PlayCollision()
			m.opts.Logger.Info("run over", "lane", m.gameState.Score)
		case core.EventRetryReady:
			m.opts.Logger.Debug("retry available")
		}
	}
}

func (m GameModel) saveScore() {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.opts.Mode, m.gameState.Score, m.opts.Skin); err != nil {
		m.opts.Logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot writes the current board as plain text.
func (m GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("screenshot: no home directory", "error", err)
		return
	}
	dir := filepath.Join(home, ".crossy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot: cannot create directory", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot: write failed", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the board and the help line.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.game.Render(m.screen)
	return RenderFrame(m.screen, m.help.View(m.keys))
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the local terminal until the player quits or goes
// back to the menu. It reports whether the player asked for the menu.
func Run(game Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	p := tea.NewProgram(
		NewGameModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(GameModel)
	return ok && m.BackToMenu(), nil
}
