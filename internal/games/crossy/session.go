package crossy

import (
	"math/rand"

	"github.com/vovakirdan/tui-crossy/internal/config"
	"github.com/vovakirdan/tui-crossy/internal/core"
)

// Session is the state of one run: board, player, move queue, game over.
// It is driven by a single caller; Tick and Request are never concurrent.
type Session struct {
	cfg        *config.CrossyConfig
	geo        Geometry
	difficulty *config.DifficultyManager
	scene      Scene
	detector   Detector

	rng   *rand.Rand
	board *Board
	steps *StepMachine

	now   float64 // simulated milliseconds since Reset
	ticks int

	gameOver         bool
	collisionHandled bool
	retryAt          float64
	retryReady       bool
}

// NewSession creates a session and generates its initial board.
// scene and diff may be nil.
func NewSession(cfg *config.CrossyConfig, diff *config.DifficultyManager, scene Scene, seed int64) *Session {
	s := &Session{
		cfg:        cfg,
		geo:        NewGeometry(cfg.Board),
		difficulty: diff,
		scene:      scene,
		detector:   NewDetector(cfg),
	}
	s.Reset(seed)
	return s
}

// Reset discards the board, the player and any pending retry reveal and
// starts a fresh run. Lanes of the previous run are removed from the scene.
func (s *Session) Reset(seed int64) {
	if s.board != nil {
		s.board.Clear()
	}

	s.now = 0
	s.ticks = 0
	s.rng = rand.New(rand.NewSource(seed))
	factory := NewLaneFactory(s.rng, s.cfg, s.difficulty)
	factory.SetClock(s.Ticks)
	s.board = NewBoard(factory, s.scene)
	s.board.GenerateInitial(s.cfg.Board.LanesBehind, s.cfg.Board.LanesAhead)

	start := s.cfg.Board.Columns / 2
	if s.steps == nil {
		s.steps = NewStepMachine(s.cfg.Board.Columns, s.cfg.Board.StepTimeMS, s.cfg.Board.HopHeight*s.cfg.Board.Zoom, start)
	} else {
		s.steps.Reset(0, start)
	}

	s.gameOver = false
	s.collisionHandled = false
	s.retryAt = 0
	s.retryReady = false
}

// Request asks for a move. It reports whether the move was queued.
func (s *Session) Request(mv Move) bool {
	return s.steps.Request(mv, s.board)
}

// Tick advances the run by delta milliseconds: traffic moves, the head
// step animates or commits, then the player is tested against the lane it
// stands on.
func (s *Session) Tick(delta float64) []core.Event {
	var events []core.Event

	s.now += delta
	s.ticks++

	AdvanceTraffic(s.board, s.geo, delta)

	for _, mv := range s.steps.Advance(s.now) {
		events = append(events, core.Event{Kind: core.EventStepCommitted, Action: mv.Action()})
	}

	if !s.collisionHandled && s.detector.Hit(s.board.LaneAt(s.Lane()), s.PlayerX()) {
		s.gameOver = true
		s.collisionHandled = true
		s.steps.Halt()
		s.retryAt = s.now + s.cfg.Session.RetryDelayMS
		events = append(events, core.Event{Kind: core.EventCollision})
	}

	if s.gameOver && !s.retryReady && s.now >= s.retryAt {
		s.retryReady = true
		events = append(events, core.Event{Kind: core.EventRetryReady})
	}

	return events
}

// Lane is the player's committed lane, which is also the score.
func (s *Session) Lane() int {
	lane, _ := s.steps.Position()
	return lane
}

// Column is the player's committed column.
func (s *Session) Column() int {
	_, column := s.steps.Position()
	return column
}

// PlayerX is the player's current board X, including the sideways part of
// an in-progress step.
func (s *Session) PlayerX() float64 {
	x := s.geo.ColumnX(s.Column())
	off := s.steps.Offset()
	switch off.Move {
	case MoveLeft:
		x -= off.Progress * s.geo.Pitch()
	case MoveRight:
		x += off.Progress * s.geo.Pitch()
	}
	return x
}

// Ticks is the number of Tick calls since Reset.
func (s *Session) Ticks() int { return s.ticks }

// GameOver reports whether the player has been hit.
func (s *Session) GameOver() bool { return s.gameOver }

// RetryReady reports whether the retry delay after a collision has passed.
func (s *Session) RetryReady() bool { return s.retryReady }

// Offset exposes the in-progress step for presentation.
func (s *Session) Offset() Offset { return s.steps.Offset() }

// Pending returns the queued moves, head first.
func (s *Session) Pending() []Move { return s.steps.Pending() }

// Board returns the active board. Callers must treat it as read-only.
func (s *Session) Board() *Board { return s.board }

// Geometry returns the board geometry.
func (s *Session) Geometry() Geometry { return s.geo }

// Detector returns the hitbox calculator used for collisions.
func (s *Session) Detector() Detector { return s.detector }

// Now returns the simulated time in milliseconds since Reset.
func (s *Session) Now() float64 { return s.now }
