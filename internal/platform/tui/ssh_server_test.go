package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-crossy/internal/games/crossy"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestSessionModelFlow(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), crossy.Options{Skin: "cow"}, "alice", nil)
	if m.screen != screenMenu {
		t.Fatalf("session starts on screen %d", m.screen)
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("tab opened screen %d, want scores", m.screen)
	}
	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.quitting {
		t.Fatalf("esc from scores: screen %d quitting %v", m.screen, m.quitting)
	}
	if cmd != nil {
		t.Error("leaving the scoreboard ended the program")
	}

	m, cmd = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("enter opened screen %d, want game", m.screen)
	}
	if cmd == nil {
		t.Error("starting a run did not schedule a tick")
	}
	if m.gameModel.opts.Skin != "cow" {
		t.Errorf("run skin = %q, want cow", m.gameModel.opts.Skin)
	}
	if m.gameModel.opts.Mode != crossy.ClassicMode {
		t.Errorf("run mode = %q, want %q", m.gameModel.opts.Mode, crossy.ClassicMode)
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenGame {
		t.Error("esc left a run that is still going")
	}

	m, cmd = sessionUpdate(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Errorf("quit: quitting %v, cmd nil %v", m.quitting, cmd == nil)
	}
}

func TestNewSSHServerHostKeyFailureOpensNoStore(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	dbPath := filepath.Join(dir, "scores.db")

	cfg := DefaultSSHServerConfig()
	cfg.DBPath = dbPath
	cfg.HostKeyPath = filepath.Join(blocker, "keys", "host_key")

	if _, err := NewSSHServer(cfg, nil); err == nil {
		t.Fatal("expected an error for an unusable host key directory")
	}
	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Errorf("scores database was opened before the host key check (stat err %v)", err)
	}
}
