package crossy

import (
	"math"

	"github.com/vovakirdan/tui-crossy/internal/core"
)

// Move is a discrete move intent.
type Move int

const (
	MoveForward Move = iota + 1
	MoveBackward
	MoveLeft
	MoveRight
)

// String returns the move name.
func (m Move) String() string {
	switch m {
	case MoveForward:
		return "forward"
	case MoveBackward:
		return "backward"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	default:
		return "none"
	}
}

// MoveFromAction maps a directional platform action to a move.
func MoveFromAction(a core.Action) (Move, bool) {
	switch a {
	case core.ActionForward:
		return MoveForward, true
	case core.ActionBackward:
		return MoveBackward, true
	case core.ActionLeft:
		return MoveLeft, true
	case core.ActionRight:
		return MoveRight, true
	default:
		return 0, false
	}
}

// Action maps the move back to its platform action.
func (m Move) Action() core.Action {
	switch m {
	case MoveForward:
		return core.ActionForward
	case MoveBackward:
		return core.ActionBackward
	case MoveLeft:
		return core.ActionLeft
	case MoveRight:
		return core.ActionRight
	default:
		return core.ActionNone
	}
}

// apply returns the logical position after the move.
func (m Move) apply(lane, column int) (int, int) {
	switch m {
	case MoveForward:
		return lane + 1, column
	case MoveBackward:
		return lane - 1, column
	case MoveLeft:
		return lane, column - 1
	case MoveRight:
		return lane, column + 1
	}
	return lane, column
}

// Offset describes the in-progress step for presentation.
type Offset struct {
	Move     Move    // move being animated, zero when idle
	Progress float64 // 0..1 along the step
	Hop      float64 // vertical hop height, sin(progress*pi)*hopHeight
}

// StepMachine turns move intents into a FIFO of time-interpolated steps.
//
// Requests are validated against the projected position (the current
// position with every queued move applied), so several moves can be queued
// while the first is still animating. Timestamps are milliseconds on the
// caller's clock.
type StepMachine struct {
	columns   int
	stepTime  float64
	hopHeight float64

	lane   int
	column int
	queue  []Move

	animating   bool // stepStart is valid
	stepStart   float64
	startMoving bool
	progress    float64
	halted      bool
}

// NewStepMachine creates an idle machine at lane 0, column start.
func NewStepMachine(columns int, stepTime, hopHeight float64, start int) *StepMachine {
	m := &StepMachine{
		columns:   columns,
		stepTime:  stepTime,
		hopHeight: hopHeight,
	}
	m.Reset(0, start)
	return m
}

// Reset places the player and drops all queued moves and the halt flag.
func (m *StepMachine) Reset(lane, column int) {
	m.lane = lane
	m.column = column
	m.queue = m.queue[:0]
	m.animating = false
	m.stepStart = 0
	m.startMoving = false
	m.progress = 0
	m.halted = false
}

// Position returns the committed logical position.
func (m *StepMachine) Position() (lane, column int) {
	return m.lane, m.column
}

// Projected returns the position after every queued move commits.
func (m *StepMachine) Projected() (lane, column int) {
	lane, column = m.lane, m.column
	for _, mv := range m.queue {
		lane, column = mv.apply(lane, column)
	}
	return lane, column
}

// Pending returns a copy of the queued moves, head first.
func (m *StepMachine) Pending() []Move {
	out := make([]Move, len(m.queue))
	copy(out, m.queue)
	return out
}

// Idle reports whether no step is animating or waiting to start.
func (m *StepMachine) Idle() bool {
	return len(m.queue) == 0
}

// Halt makes every later Request fail. Steps already queued still finish.
func (m *StepMachine) Halt() {
	m.halted = true
}

// Halted reports whether the machine refuses new moves.
func (m *StepMachine) Halted() bool {
	return m.halted
}

// Request validates mv against the projected position and queues it.
// A forward move appends a lane to the board before it is queued, so the
// destination always exists. Rejected moves leave all state untouched.
func (m *StepMachine) Request(mv Move, board *Board) bool {
	if m.halted {
		return false
	}

	lane, column := m.Projected()
	switch mv {
	case MoveForward:
		if board.LaneAt(lane + 1).Blocks(column) {
			return false
		}
	case MoveBackward:
		if lane == 0 || board.LaneAt(lane-1).Blocks(column) {
			return false
		}
	case MoveLeft:
		if column == 0 || board.LaneAt(lane).Blocks(column-1) {
			return false
		}
	case MoveRight:
		if column == m.columns-1 || board.LaneAt(lane).Blocks(column+1) {
			return false
		}
	default:
		return false
	}

	if !m.animating {
		m.startMoving = true
	}
	if mv == MoveForward {
		board.Append()
	}
	m.queue = append(m.queue, mv)
	return true
}

// Advance moves the animation to now and returns the moves that committed.
// A step commits once strictly more than stepTime has elapsed; the next
// queued step starts at the same timestamp so there is no visual gap.
func (m *StepMachine) Advance(now float64) []Move {
	if m.startMoving {
		m.stepStart = now
		m.animating = true
		m.startMoving = false
	}
	if !m.animating || len(m.queue) == 0 {
		return nil
	}

	elapsed := now - m.stepStart
	m.progress = math.Min(elapsed/m.stepTime, 1)
	if elapsed <= m.stepTime {
		return nil
	}

	done := m.queue[0]
	m.lane, m.column = done.apply(m.lane, m.column)
	m.queue = m.queue[1:]
	m.progress = 0
	if len(m.queue) == 0 {
		m.animating = false
	} else {
		m.stepStart = now
	}
	return []Move{done}
}

// Offset reports the animation state of the head move.
func (m *StepMachine) Offset() Offset {
	if !m.animating || len(m.queue) == 0 {
		return Offset{}
	}
	return Offset{
		Move:     m.queue[0],
		Progress: m.progress,
		Hop:      math.Sin(m.progress*math.Pi) * m.hopHeight,
	}
}
