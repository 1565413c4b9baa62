package crossy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-crossy/internal/config"
	"github.com/vovakirdan/tui-crossy/internal/core"
)

// testConfig returns the shipped defaults.
func testConfig(t *testing.T) *config.CrossyConfig {
	t.Helper()
	cfg := config.DefaultCrossyConfig()
	return &cfg
}

// newTestBoard builds a board whose first lanes are exactly lanes. Lanes
// appended later come from a seeded factory.
func newTestBoard(t *testing.T, lanes ...Lane) *Board {
	t.Helper()
	cfg := testConfig(t)
	factory := NewLaneFactory(rand.New(rand.NewSource(1)), cfg, nil)
	b := NewBoard(factory, nil)
	b.lanes = append(b.lanes, lanes...)
	return b
}

func fields(n int) []Lane {
	lanes := make([]Lane, n)
	for i := range lanes {
		lanes[i] = &FieldLane{index: i}
	}
	return lanes
}

func forest(index int, columns ...int) *ForestLane {
	l := &ForestLane{index: index, Occupied: make(map[int]bool)}
	for _, c := range columns {
		l.Occupied[c] = true
		l.Trees = append(l.Trees, Tree{Column: c, Height: 20})
	}
	return l
}

// recordingScene counts lanes added and removed.
type recordingScene struct {
	added   []int
	removed []int
}

func (r *recordingScene) AddLane(l Lane)    { r.added = append(r.added, l.Index()) }
func (r *recordingScene) RemoveLane(l Lane) { r.removed = append(r.removed, l.Index()) }

func runes(cells []core.Cell) []rune {
	out := make([]rune, len(cells))
	for i, c := range cells {
		out[i] = c.Rune
	}
	return out
}
