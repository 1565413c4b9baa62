package crossy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-crossy/internal/config"
	"github.com/vovakirdan/tui-crossy/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g, err := NewWithConfig(config.DefaultCrossyConfig(), "")
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch i % 30 {
		case 0:
			inputs[i].Set(core.ActionForward)
		case 15:
			inputs[i].Set(core.ActionLeft)
		}
	}

	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)
	for _, in := range inputs {
		r1 := g1.Step(in)
		r2 := g2.Step(in)
		if r1.State != r2.State || len(r1.Events) != len(r2.Events) {
			t.Fatalf("runs diverged: %+v vs %+v", r1, r2)
		}
	}

	if g1.String() != g2.String() {
		t.Errorf("final states differ: %q vs %q", g1.String(), g2.String())
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(core.NewInputFrame())
	before := g.Session().Now()

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	if r := g.Step(pause); !r.State.Paused {
		t.Fatal("expected paused state")
	}
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Session().Now() != before {
		t.Errorf("clock advanced while paused: %v -> %v", before, g.Session().Now())
	}

	if r := g.Step(pause); r.State.Paused {
		t.Error("second pause did not resume")
	}
}

func TestGameScoreIsLane(t *testing.T) {
	g := newTestGame(t, 1)
	g.Session().board = newTestBoard(t, fields(4)...)

	in := core.NewInputFrame()
	in.Set(core.ActionForward)
	g.Step(in)
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}

	if s := g.State(); s.Score != 1 {
		t.Errorf("Score = %d, want 1", s.Score)
	}
	if g.Best() != 1 {
		t.Errorf("Best() = %d, want 1", g.Best())
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, 7)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Lane: 0") {
		t.Errorf("HUD row = %q, want lane counter", screen.Row(0))
	}
	// Player sits a third of the way down the playfield.
	anchor := hudRows + (24-hudRows)/3
	if !strings.ContainsRune(screen.Row(anchor), g.Skin().Glyph) {
		t.Errorf("row %d = %q, want player glyph %q", anchor, screen.Row(anchor), g.Skin().Glyph)
	}
}

func TestGameSkins(t *testing.T) {
	g := newTestGame(t, 1)
	if g.Skin().Name != DefaultSkin {
		t.Errorf("default skin = %q, want %q", g.Skin().Name, DefaultSkin)
	}

	g.SetSkin("cow")
	if g.Skin().Name != "cow" {
		t.Errorf("skin = %q, want cow", g.Skin().Name)
	}

	g.SetSkin("dragon")
	if g.Skin().Name != DefaultSkin {
		t.Errorf("unknown skin gave %q, want fallback", g.Skin().Name)
	}

	if NextSkin("elephant") == "elephant" {
		t.Error("NextSkin did not advance")
	}
}

func TestNewWithInvalidConfig(t *testing.T) {
	cfg := config.DefaultCrossyConfig()
	cfg.Traffic.Cars = 20

	if _, err := NewWithConfig(cfg, ""); err == nil {
		t.Error("expected an error for more cars than slots")
	}
}

func TestMode(t *testing.T) {
	tests := []struct {
		preset config.DifficultyPreset
		want   string
	}{
		{"", ClassicMode},
		{config.DifficultyEasy, "easy"},
		{config.DifficultyHard, "hard"},
	}
	for _, tt := range tests {
		if got := Mode(tt.preset); got != tt.want {
			t.Errorf("Mode(%q) = %q, want %q", tt.preset, got, tt.want)
		}
	}

	if Modes()[0] != ClassicMode {
		t.Errorf("first mode = %q, want %q", Modes()[0], ClassicMode)
	}
}
