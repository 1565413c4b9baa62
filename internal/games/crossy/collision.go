package crossy

import (
	"github.com/vovakirdan/tui-crossy/internal/config"
	"github.com/vovakirdan/tui-crossy/internal/core"
)

// Detector tests the player against the vehicles of one road lane.
// All extents are zoomed board units.
type Detector struct {
	playerHalf float64
	carHalf    float64
	truckHalf  float64
}

// NewDetector derives hitbox half-widths from the config.
func NewDetector(cfg *config.CrossyConfig) Detector {
	zoom := cfg.Board.Zoom
	return Detector{
		playerHalf: cfg.Player.Size * zoom / 2,
		carHalf:    cfg.Traffic.CarLength * zoom / 2,
		truckHalf:  cfg.Traffic.TruckLength * zoom / 2,
	}
}

// PlayerExtent is the player's horizontal hitbox centered on x.
func (d Detector) PlayerExtent(x float64) core.Interval {
	return core.Around(x, d.playerHalf)
}

// VehicleExtent is the horizontal extent of a vehicle on a lane of kind.
func (d Detector) VehicleExtent(kind LaneKind, v Vehicle) core.Interval {
	half := d.carHalf
	if kind == KindTruck {
		half = d.truckHalf
	}
	return core.Around(v.X, half)
}

// Hit reports whether a player centered on playerX overlaps any vehicle on
// lane. Only road lanes can hit; touching edges do not count.
func (d Detector) Hit(lane Lane, playerX float64) bool {
	road, ok := lane.(*RoadLane)
	if !ok {
		return false
	}
	player := d.PlayerExtent(playerX)
	for _, v := range road.Vehicles {
		if player.Overlaps(d.VehicleExtent(road.Kind(), v)) {
			return true
		}
	}
	return false
}
