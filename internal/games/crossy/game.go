package crossy

import (
	"fmt"

	"github.com/vovakirdan/tui-crossy/internal/config"
	"github.com/vovakirdan/tui-crossy/internal/core"
)

// ID is the score-table identifier of the game.
const ID = "crossy"

// ClassicMode names the score table of runs played without a preset.
const ClassicMode = "classic"

// Mode returns the score table a run with the given preset is recorded
// under.
func Mode(preset config.DifficultyPreset) string {
	if preset == "" {
		return ClassicMode
	}
	return string(preset)
}

// Modes lists the score tables in display order.
func Modes() []string {
	return []string{
		ClassicMode,
		string(config.DifficultyEasy),
		string(config.DifficultyNormal),
		string(config.DifficultyHard),
		string(config.DifficultyFixed),
	}
}

// Options selects the configuration a Game is built from.
type Options struct {
	ConfigPath string                  // custom YAML, "" searches the default locations
	Difficulty config.DifficultyPreset // "" keeps the config's own settings
	Skin       string                  // "" or unknown selects DefaultSkin
}

// Game adapts a Session to the platform's fixed-tick loop: it turns input
// frames into move requests, advances the session clock by one tick per
// Step and draws the board into a screen buffer.
type Game struct {
	cfg     config.CrossyConfig
	runtime core.RuntimeConfig
	skin    Skin

	scene   *TextScene
	session *Session

	best   int
	paused bool
}

// New loads the configuration named by opts and creates a game. The game
// is not playable until Reset is called.
func New(opts Options) (*Game, error) {
	cfg, err := config.LoadCrossy(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Difficulty != "" {
		config.ApplyCrossyPreset(&cfg, opts.Difficulty)
	}
	return NewWithConfig(cfg, opts.Skin)
}

// NewWithConfig creates a game from an already loaded configuration.
func NewWithConfig(cfg config.CrossyConfig, skin string) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s, _ := LookupSkin(skin)
	return &Game{
		cfg:   cfg,
		skin:  s,
		scene: NewTextScene(NewGeometry(cfg.Board)),
	}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Crossy Road"
}

// Reset starts a new run seeded from runtime.Seed. Any pending retry
// reveal from the previous run is discarded with it.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false

	if g.session == nil {
		diff := config.NewDifficultyManager(g.cfg.Difficulty)
		g.session = NewSession(&g.cfg, diff, g.scene, runtime.Seed)
		return
	}
	g.session.Reset(runtime.Seed)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.session.GameOver() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Moves() {
		if mv, ok := MoveFromAction(a); ok {
			g.session.Request(mv)
		}
	}

	events := g.session.Tick(g.runtime.TickMillis())
	if lane := g.session.Lane(); lane > g.best {
		g.best = lane
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.session.Lane(),
		GameOver:   g.session.GameOver(),
		Paused:     g.paused,
		RetryReady: g.session.RetryReady(),
	}
}

// SetBest seeds the best-lane display, usually from the score store.
func (g *Game) SetBest(best int) {
	if best > g.best {
		g.best = best
	}
}

// Best is the highest lane reached in this process.
func (g *Game) Best() int {
	return g.best
}

// SetSkin changes the player's appearance.
func (g *Game) SetSkin(name string) {
	g.skin, _ = LookupSkin(name)
}

// Skin returns the active skin.
func (g *Game) Skin() Skin {
	return g.skin
}

// Session exposes the underlying run for tests and tooling.
func (g *Game) Session() *Session {
	return g.session
}

// String summarizes the game state for logs.
func (g *Game) String() string {
	s := g.State()
	return fmt.Sprintf("crossy lane=%d best=%d over=%t lanes=%d", s.Score, g.best, s.GameOver, g.session.Board().Len())
}
