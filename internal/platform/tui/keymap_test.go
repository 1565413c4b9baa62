package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-crossy/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKeyMapAction(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"down steps forward", tea.KeyMsg{Type: tea.KeyDown}, core.ActionForward},
		{"s steps forward", runeKey('s'), core.ActionForward},
		{"up steps back", tea.KeyMsg{Type: tea.KeyUp}, core.ActionBackward},
		{"w steps back", runeKey('w'), core.ActionBackward},
		{"left raises column", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionRight},
		{"a raises column", runeKey('a'), core.ActionRight},
		{"right lowers column", tea.KeyMsg{Type: tea.KeyRight}, core.ActionLeft},
		{"d lowers column", runeKey('d'), core.ActionLeft},
		{"pause", runeKey('p'), core.ActionPause},
		{"retry", runeKey('r'), core.ActionRestart},
		{"enter retries", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRestart},
		{"back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"quit", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}
