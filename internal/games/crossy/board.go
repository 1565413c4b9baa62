package crossy

import "fmt"

// Scene receives lanes as they join or leave the board. It is the hand-off
// point to a presentation layer; the core never inspects what the scene
// builds from a lane.
type Scene interface {
	AddLane(l Lane)
	RemoveLane(l Lane)
}

// nopScene is used when no presentation layer is attached.
type nopScene struct{}

func (nopScene) AddLane(Lane)    {}
func (nopScene) RemoveLane(Lane) {}

// Board is the append-only sequence of active lanes, indexed from 0.
type Board struct {
	factory *LaneFactory
	scene   Scene
	lanes   []Lane
}

// NewBoard creates an empty board. A nil scene is allowed.
func NewBoard(factory *LaneFactory, scene Scene) *Board {
	if scene == nil {
		scene = nopScene{}
	}
	return &Board{factory: factory, scene: scene}
}

// GenerateInitial builds lanes for indices -behind..ahead, keeps the
// non-negative ones as the active board and registers them with the scene.
// Any previous lanes are removed from the scene first.
func (b *Board) GenerateInitial(behind, ahead int) []Lane {
	b.Clear()

	b.lanes = make([]Lane, 0, ahead+1)
	for index := -behind; index <= ahead; index++ {
		lane := b.factory.NewLane(index)
		if lane.Index() < 0 {
			continue
		}
		b.lanes = append(b.lanes, lane)
		b.scene.AddLane(lane)
	}
	return b.lanes
}

// Append constructs the lane at index Len() and adds it to the board.
func (b *Board) Append() Lane {
	lane := b.factory.NewLane(len(b.lanes))
	b.lanes = append(b.lanes, lane)
	b.scene.AddLane(lane)
	return lane
}

// LaneAt returns the lane at index. An index outside [0, Len()) is a
// programming error and panics.
func (b *Board) LaneAt(index int) Lane {
	if index < 0 || index >= len(b.lanes) {
		panic(fmt.Sprintf("crossy: lane %d out of range [0, %d)", index, len(b.lanes)))
	}
	return b.lanes[index]
}

// Len returns the number of active lanes.
func (b *Board) Len() int {
	return len(b.lanes)
}

// Lanes returns the active lanes in index order. The slice must not be modified.
func (b *Board) Lanes() []Lane {
	return b.lanes
}

// Clear removes every lane from the board and the scene.
func (b *Board) Clear() {
	for _, lane := range b.lanes {
		b.scene.RemoveLane(lane)
	}
	b.lanes = nil
}
