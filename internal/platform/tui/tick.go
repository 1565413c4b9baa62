// Package tui runs the game in a terminal with Bubble Tea: the fixed-tick
// game loop, key bindings, the title menu, the scoreboard and the SSH
// server that serves all of them to remote players.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// GameModel that scheduled it; a model ignores ticks of other loops.
type TickMsg struct {
	Time time.Time
	Loop int64
}

var loopIDs atomic.Int64

// newLoopID returns an id no other tick loop in the process uses.
func newLoopID() int64 {
	return loopIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick after the
// interval of the given rate.
func tickCmd(tickRate int, loop int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
