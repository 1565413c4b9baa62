package crossy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-crossy/internal/config"
)

func TestNewLaneFieldAtOrBelowZero(t *testing.T) {
	f := NewLaneFactory(rand.New(rand.NewSource(3)), testConfig(t), nil)
	for _, index := range []int{-13, -1, 0} {
		lane := f.NewLane(index)
		if _, ok := lane.(*FieldLane); !ok {
			t.Errorf("lane %d: got %s, want field", index, lane.Kind())
		}
		if lane.Index() != index {
			t.Errorf("lane index = %d, want %d", lane.Index(), index)
		}
	}
}

func TestNewLanePopulation(t *testing.T) {
	cfg := testConfig(t)
	geo := NewGeometry(cfg.Board)
	f := NewLaneFactory(rand.New(rand.NewSource(42)), cfg, nil)

	kinds := make(map[LaneKind]int)
	for index := 1; index <= 300; index++ {
		lane := f.NewLane(index)
		kinds[lane.Kind()]++

		switch l := lane.(type) {
		case *ForestLane:
			if len(l.Trees) != 4 || len(l.Occupied) != 4 {
				t.Fatalf("lane %d: %d trees, %d occupied, want 4", index, len(l.Trees), len(l.Occupied))
			}
			for _, tree := range l.Trees {
				if tree.Column < 0 || tree.Column >= 17 {
					t.Errorf("lane %d: tree column %d out of range", index, tree.Column)
				}
				if !l.Blocks(tree.Column) {
					t.Errorf("lane %d: tree column %d not blocking", index, tree.Column)
				}
				if tree.Height != 20 && tree.Height != 45 && tree.Height != 60 {
					t.Errorf("lane %d: unexpected tree height %v", index, tree.Height)
				}
			}

		case *RoadLane:
			span, count, slots := 2, 3, 8
			if l.Kind() == KindTruck {
				span, count, slots = 3, 2, 5
			}
			if len(l.Vehicles) != count {
				t.Fatalf("lane %d (%s): %d vehicles, want %d", index, l.Kind(), len(l.Vehicles), count)
			}
			seen := make(map[int]bool)
			for _, v := range l.Vehicles {
				if v.Slot < 0 || v.Slot >= slots || seen[v.Slot] {
					t.Errorf("lane %d: bad or duplicate slot %d", index, v.Slot)
				}
				seen[v.Slot] = true
				if want := geo.SlotX(v.Slot, span); v.X != want {
					t.Errorf("lane %d: vehicle X = %v, want %v", index, v.X, want)
				}
			}
			if l.Speed != 2 && l.Speed != 2.5 && l.Speed != 3 {
				t.Errorf("lane %d: unexpected speed %v", index, l.Speed)
			}
			if l.Direction != TowardStart && l.Direction != TowardEnd {
				t.Errorf("lane %d: invalid direction %d", index, l.Direction)
			}

		default:
			t.Fatalf("lane %d: unexpected kind %s", index, lane.Kind())
		}
	}

	for _, k := range []LaneKind{KindCar, KindTruck, KindForest} {
		if kinds[k] == 0 {
			t.Errorf("no %s lanes in 300 draws", k)
		}
	}
}

func TestGeometry(t *testing.T) {
	geo := NewGeometry(testConfig(t).Board)

	if geo.Pitch() != 84 {
		t.Errorf("Pitch() = %v, want 84", geo.Pitch())
	}
	if geo.HalfWidth() != 714 {
		t.Errorf("HalfWidth() = %v, want 714", geo.HalfWidth())
	}
	if geo.WrapEdge() != 882 {
		t.Errorf("WrapEdge() = %v, want 882", geo.WrapEdge())
	}
	// Column 8 of 17 is the center column.
	if geo.ColumnX(8) != 0 {
		t.Errorf("ColumnX(8) = %v, want 0", geo.ColumnX(8))
	}
	// Car slot 1 starts two columns in: (84 + 21) * 2 - 714.
	if geo.SlotX(1, 2) != -504 {
		t.Errorf("SlotX(1, 2) = %v, want -504", geo.SlotX(1, 2))
	}
}

// roadSpeeds collects the speed of every road lane built for indices.
func roadSpeeds(f *LaneFactory, indices ...int) map[float64]bool {
	speeds := make(map[float64]bool)
	for _, index := range indices {
		if road, ok := f.NewLane(index).(*RoadLane); ok {
			speeds[road.Speed] = true
		}
	}
	return speeds
}

func lanesFrom(first, last int) []int {
	indices := make([]int, 0, last-first+1)
	for i := first; i <= last; i++ {
		indices = append(indices, i)
	}
	return indices
}

func TestNewLaneDifficulty(t *testing.T) {
	tests := []struct {
		name   string
		preset config.DifficultyPreset
		modify func(*config.DifficultyConfig)
		lanes  []int
		want   []float64
	}{
		{
			name:  "classic keeps configured speeds",
			lanes: lanesFrom(1, 60),
			want:  []float64{2, 2.5, 3},
		},
		{
			name:   "fixed scales by initial level",
			preset: config.DifficultyFixed,
			modify: func(d *config.DifficultyConfig) { d.InitialLevel = 0.5 },
			lanes:  lanesFrom(1, 60),
			want:   []float64{3, 3.75, 4.5},
		},
		{
			name:   "score progression at max",
			preset: config.DifficultyEasy,
			modify: func(d *config.DifficultyConfig) { d.Progression.MaxAt = 10 },
			lanes:  lanesFrom(10, 70),
			want:   []float64{4, 5, 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			if tt.modify != nil {
				tt.modify(&cfg.Difficulty)
			}
			config.ApplyCrossyPreset(cfg, tt.preset)

			f := NewLaneFactory(rand.New(rand.NewSource(9)), cfg, config.NewDifficultyManager(cfg.Difficulty))
			got := roadSpeeds(f, tt.lanes...)
			if len(got) != len(tt.want) {
				t.Fatalf("speeds = %v, want %v", got, tt.want)
			}
			for _, w := range tt.want {
				if !got[w] {
					t.Errorf("speeds = %v, missing %v", got, w)
				}
			}
		})
	}
}

func TestNewLaneTimeProgression(t *testing.T) {
	cfg := testConfig(t)
	cfg.Difficulty = config.DifficultyConfig{
		Enabled:     true,
		Progression: config.ProgressionConfig{Type: "time", MaxAt: 10},
		Scaling:     config.ScalingConfig{SpeedMultiplier: 1},
	}
	f := NewLaneFactory(rand.New(rand.NewSource(9)), cfg, config.NewDifficultyManager(cfg.Difficulty))

	early := roadSpeeds(f, lanesFrom(1, 40)...)
	for speed := range early {
		if speed > 3 {
			t.Errorf("speed %v before any tick, want base speeds", speed)
		}
	}

	ticks := 10
	f.SetClock(func() int { return ticks })
	late := roadSpeeds(f, lanesFrom(41, 80)...)
	for speed := range late {
		if speed != 4 && speed != 5 && speed != 6 {
			t.Errorf("speed %v at max time, want doubled base", speed)
		}
	}
	if len(late) == 0 {
		t.Fatal("no road lanes drawn")
	}
}
