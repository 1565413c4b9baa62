package main

import (
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crossy/internal/audio"
	"github.com/vovakirdan/tui-crossy/internal/config"
	"github.com/vovakirdan/tui-crossy/internal/core"
	"github.com/vovakirdan/tui-crossy/internal/games/crossy"
	"github.com/vovakirdan/tui-crossy/internal/platform/tui"
	"github.com/vovakirdan/tui-crossy/internal/storage"
)

// app holds what a local terminal session shares between runs: the
// score store, the saved settings and the speaker.
type app struct {
	logger   *log.Logger
	store    *storage.Store
	settings storage.Settings
	sounds   *audio.SoundManager
	player   audio.Player
	closeLog func()
}

// newApp opens storage and audio. Neither is required to play, so
// failures are logged and the session continues without them.
func newApp() *app {
	logger, closeLog := newFileLogger()
	a := &app{
		logger:   logger,
		settings: storage.DefaultSettings(),
		player:   audio.Nop{},
		closeLog: closeLog,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
	} else {
		a.store = store
		if s, err := store.LoadSettings(); err != nil {
			logger.Warn("could not load settings", "error", err)
		} else {
			a.settings = s
		}
	}
	if flagSkin != "" {
		a.settings.Skin = flagSkin
	}

	sm := audio.NewSoundManager(logger)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio disabled", "error", err)
	} else {
		a.sounds = sm
		a.player = sm
		a.applyAudio()
	}
	return a
}

func (a *app) applyAudio() {
	if a.sounds == nil {
		return
	}
	a.sounds.SetMusicEnabled(a.settings.Music)
	a.sounds.SetEffectsEnabled(a.settings.Effects)
}

func (a *app) close() {
	if a.sounds != nil {
		a.sounds.Close()
	}
	if a.store != nil {
		a.store.Close()
	}
	a.closeLog()
}

func (a *app) mode() string {
	return crossy.Mode(config.ParsePreset(flagDifficulty))
}

func (a *app) best() int {
	if a.store == nil {
		return 0
	}
	best, err := a.store.HighScore(a.mode())
	if err != nil {
		a.logger.Warn("could not read high score", "error", err)
		return 0
	}
	return best
}

// play runs one game until the player quits or asks for the menu.
func (a *app) play(cfg core.RuntimeConfig) (backToMenu bool, err error) {
	game, err := crossy.New(crossy.Options{
		ConfigPath: flagConfig,
		Difficulty: config.ParsePreset(flagDifficulty),
		Skin:       a.settings.Skin,
	})
	if err != nil {
		return false, err
	}
	game.SetBest(a.best())

	a.logger.Info("starting run", "mode", a.mode(), "skin", game.Skin().Name, "seed", cfg.Seed)
	return tui.Run(game, cfg, tui.Options{
		Store:  a.store,
		Sounds: a.player,
		Logger: a.logger,
		Mode:   a.mode(),
		Skin:   game.Skin().Name,
	})
}

// runtimeConfig sizes the screen to the terminal, defaulting to 80x24.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
