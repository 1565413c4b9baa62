package crossy

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-crossy/internal/config"
)

// randomKinds are the lane kinds drawn for every index above zero.
var randomKinds = [...]LaneKind{KindCar, KindTruck, KindForest}

// LaneFactory builds fully populated lanes. It performs no rendering; see
// Scene for registering lanes with a presentation layer.
type LaneFactory struct {
	rng        *rand.Rand
	cfg        *config.CrossyConfig
	geo        Geometry
	difficulty *config.DifficultyManager
	ticks      func() int
}

// NewLaneFactory creates a factory drawing from rng. diff may be nil, in
// which case lane speeds are exactly the configured set.
func NewLaneFactory(rng *rand.Rand, cfg *config.CrossyConfig, diff *config.DifficultyManager) *LaneFactory {
	return &LaneFactory{
		rng:        rng,
		cfg:        cfg,
		geo:        NewGeometry(cfg.Board),
		difficulty: diff,
		ticks:      func() int { return 0 },
	}
}

// SetClock sets the source of elapsed ticks used by time-based difficulty
// progression. Without one, lanes are built as if at tick zero.
func (f *LaneFactory) SetClock(ticks func() int) {
	if ticks == nil {
		ticks = func() int { return 0 }
	}
	f.ticks = ticks
}

// NewLane constructs the lane at index. Indices at or below zero are always
// fields; the rest are car, truck or forest with equal probability.
//
// Panics if obstacle placement fails, which a validated config rules out.
func (f *LaneFactory) NewLane(index int) Lane {
	if index <= 0 {
		return &FieldLane{index: index}
	}

	var (
		lane Lane
		err  error
	)
	switch kind := randomKinds[f.rng.Intn(len(randomKinds))]; kind {
	case KindForest:
		lane, err = f.newForest(index)
	default:
		lane, err = f.newRoad(index, kind)
	}
	if err != nil {
		panic(fmt.Sprintf("crossy: lane %d: %v", index, err))
	}
	return lane
}

func (f *LaneFactory) newForest(index int) (*ForestLane, error) {
	columns, err := PlaceObstacles(f.rng, f.geo.Columns, f.cfg.Forest.Trees)
	if err != nil {
		return nil, err
	}

	lane := &ForestLane{
		index:    index,
		Occupied: make(map[int]bool, len(columns)),
		Trees:    make([]Tree, 0, len(columns)),
	}
	for _, col := range columns {
		lane.Occupied[col] = true
		lane.Trees = append(lane.Trees, Tree{
			Column: col,
			X:      f.geo.ColumnX(col),
			Height: f.pickFloat(f.cfg.Forest.Heights),
		})
	}
	return lane, nil
}

func (f *LaneFactory) newRoad(index int, kind LaneKind) (*RoadLane, error) {
	// Cars sit on a grid two columns wide, trucks on one three columns wide.
	span, count := 2, f.cfg.Traffic.Cars
	if kind == KindTruck {
		span, count = 3, f.cfg.Traffic.Trucks
	}

	lane := &RoadLane{
		index:     index,
		kind:      kind,
		Direction: TowardEnd,
	}
	if f.rng.Float64() >= 0.5 {
		lane.Direction = TowardStart
	}

	slots, err := PlaceObstacles(f.rng, f.geo.Columns/span, count)
	if err != nil {
		return nil, err
	}
	lane.Vehicles = make([]Vehicle, 0, len(slots))
	for _, slot := range slots {
		lane.Vehicles = append(lane.Vehicles, Vehicle{
			Slot:  slot,
			X:     f.geo.SlotX(slot, span),
			Color: f.pickString(f.cfg.Traffic.Colors),
		})
	}

	lane.Speed = f.pickFloat(f.cfg.Traffic.Speeds)
	if f.difficulty != nil {
		lane.Speed = f.difficulty.Speed(lane.Speed, index, f.ticks())
	}
	return lane, nil
}

func (f *LaneFactory) pickFloat(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return values[f.rng.Intn(len(values))]
}

func (f *LaneFactory) pickString(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[f.rng.Intn(len(values))]
}
