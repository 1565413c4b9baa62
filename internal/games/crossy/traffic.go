package crossy

// speedDivisor converts a lane speed into board units per millisecond.
const speedDivisor = 16

// AdvanceTraffic moves every vehicle on every road lane by delta
// milliseconds. A vehicle already past the wrap edge in its direction of
// travel is placed exactly on the opposite edge instead of moving, so a
// wrap shows up one tick after the crossing.
func AdvanceTraffic(board *Board, geo Geometry, delta float64) {
	edge := geo.WrapEdge()
	for _, l := range board.Lanes() {
		road, ok := l.(*RoadLane)
		if !ok {
			continue
		}
		step := road.Speed * delta / speedDivisor
		for i := range road.Vehicles {
			v := &road.Vehicles[i]
			switch road.Direction {
			case TowardStart:
				if v.X < -edge {
					v.X = edge
				} else {
					v.X -= step
				}
			default:
				if v.X > edge {
					v.X = -edge
				} else {
					v.X += step
				}
			}
		}
	}
}
