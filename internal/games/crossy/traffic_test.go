package crossy

import "testing"

func TestAdvanceTrafficMovesBySpeed(t *testing.T) {
	geo := NewGeometry(testConfig(t).Board)
	road := &RoadLane{index: 1, kind: KindCar, Direction: TowardEnd, Speed: 2, Vehicles: []Vehicle{{X: 0}, {X: 100}}}
	back := &RoadLane{index: 2, kind: KindTruck, Direction: TowardStart, Speed: 3, Vehicles: []Vehicle{{X: 0}}}
	b := newTestBoard(t, &FieldLane{index: 0}, road, back)

	AdvanceTraffic(b, geo, 16)

	if road.Vehicles[0].X != 2 || road.Vehicles[1].X != 102 {
		t.Errorf("TowardEnd vehicles at %v, %v; want 2, 102", road.Vehicles[0].X, road.Vehicles[1].X)
	}
	if back.Vehicles[0].X != -3 {
		t.Errorf("TowardStart vehicle at %v, want -3", back.Vehicles[0].X)
	}
}

func TestAdvanceTrafficWraps(t *testing.T) {
	geo := NewGeometry(testConfig(t).Board)
	edge := geo.WrapEdge()

	tests := []struct {
		name  string
		dir   Direction
		start float64
		want  []float64 // X after each tick
	}{
		// Crosses the edge on the first tick, wraps on the second.
		{"toward end", TowardEnd, edge - 1, []float64{edge + 2, -edge, -edge + 3}},
		{"toward start", TowardStart, -edge + 1, []float64{-edge - 2, edge, edge - 3}},
		// Exactly on the edge is not past it.
		{"on edge", TowardEnd, edge, []float64{edge + 3, -edge}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			road := &RoadLane{index: 1, kind: KindCar, Direction: tt.dir, Speed: 3, Vehicles: []Vehicle{{X: tt.start}}}
			b := newTestBoard(t, &FieldLane{index: 0}, road)

			for i, want := range tt.want {
				AdvanceTraffic(b, geo, 16)
				if got := road.Vehicles[0].X; got != want {
					t.Fatalf("tick %d: X = %v, want %v", i+1, got, want)
				}
			}
		})
	}
}

func TestAdvanceTrafficIgnoresOtherLanes(t *testing.T) {
	geo := NewGeometry(testConfig(t).Board)
	f := forest(1, 3)
	f.Trees[0].X = 123
	b := newTestBoard(t, &FieldLane{index: 0}, f)

	AdvanceTraffic(b, geo, 1000)

	if f.Trees[0].X != 123 {
		t.Errorf("tree moved to %v", f.Trees[0].X)
	}
}
