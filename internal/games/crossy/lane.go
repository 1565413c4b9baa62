// Package crossy implements an endless lane-crossing game: the player hops
// across procedurally generated grass, forest and road lanes while avoiding
// traffic.
//
// The package is renderer-free at its core. Lane construction, the step state
// machine, traffic and collision detection only read and write plain data;
// the text renderer in render.go is one consumer of that data.
package crossy

import (
	"github.com/vovakirdan/tui-crossy/internal/config"
)

// LaneKind tags the four lane variants.
type LaneKind int

const (
	KindField LaneKind = iota
	KindForest
	KindCar
	KindTruck
)

// String returns the lane kind name.
func (k LaneKind) String() string {
	switch k {
	case KindField:
		return "field"
	case KindForest:
		return "forest"
	case KindCar:
		return "car"
	case KindTruck:
		return "truck"
	default:
		return "unknown"
	}
}

// IsRoad reports whether vehicles drive on lanes of this kind.
func (k LaneKind) IsRoad() bool {
	return k == KindCar || k == KindTruck
}

// Lane is one horizontal strip of the board. Concrete lanes are *FieldLane,
// *ForestLane and *RoadLane.
type Lane interface {
	Index() int
	Kind() LaneKind
	// Blocks reports whether the player may not stand on the column.
	Blocks(column int) bool
}

// FieldLane is an empty grass lane.
type FieldLane struct {
	index int
}

func (l *FieldLane) Index() int        { return l.index }
func (l *FieldLane) Kind() LaneKind    { return KindField }
func (l *FieldLane) Blocks(_ int) bool { return false }

// Tree is a static forest obstacle occupying exactly one column.
type Tree struct {
	Column int
	X      float64 // zoomed board coordinate of the column center
	Height float64
}

// ForestLane is a grass lane with trees that block movement.
type ForestLane struct {
	index    int
	Occupied map[int]bool
	Trees    []Tree
}

func (l *ForestLane) Index() int     { return l.index }
func (l *ForestLane) Kind() LaneKind { return KindForest }

// Blocks reports whether a tree stands on the column.
func (l *ForestLane) Blocks(column int) bool {
	return l.Occupied[column]
}

// Direction is the sign of vehicle motion on a road lane.
type Direction int

const (
	// Decreasing X: vehicles drive toward column 0.
	TowardStart Direction = -1
	// Increasing X: vehicles drive toward the last column.
	TowardEnd Direction = 1
)

// Vehicle is a car or truck moving along a road lane.
type Vehicle struct {
	Slot  int     // placement slot in the lane's coarse column grid
	X     float64 // zoomed board coordinate of the vehicle center
	Color string
}

// RoadLane carries cars or trucks moving in one direction at one speed.
type RoadLane struct {
	index     int
	kind      LaneKind
	Direction Direction
	Speed     float64
	Vehicles  []Vehicle
}

func (l *RoadLane) Index() int        { return l.index }
func (l *RoadLane) Kind() LaneKind    { return l.kind }
func (l *RoadLane) Blocks(_ int) bool { return false }

// Geometry converts between logical columns and zoomed board coordinates.
// The board is centered on X = 0.
type Geometry struct {
	Columns       int
	PositionWidth float64
	Zoom          float64
}

// NewGeometry extracts the board geometry from a config.
func NewGeometry(b config.BoardConfig) Geometry {
	return Geometry{
		Columns:       b.Columns,
		PositionWidth: b.PositionWidth,
		Zoom:          b.Zoom,
	}
}

// Pitch is the zoomed width of one column.
func (g Geometry) Pitch() float64 {
	return g.PositionWidth * g.Zoom
}

// HalfWidth is half the zoomed board width.
func (g Geometry) HalfWidth() float64 {
	return g.PositionWidth * float64(g.Columns) * g.Zoom / 2
}

// SlotX returns the center X of a slot in a grid whose cells are span
// columns wide. Span 1 is the player grid.
func (g Geometry) SlotX(slot, span int) float64 {
	return (float64(slot*span)*g.PositionWidth+g.PositionWidth/2)*g.Zoom - g.HalfWidth()
}

// ColumnX returns the center X of a player column.
func (g Geometry) ColumnX(column int) float64 {
	return g.SlotX(column, 1)
}

// WrapEdge is the distance from the center at which vehicles leave the lane
// and reappear on the opposite side, two columns past the visible edge.
func (g Geometry) WrapEdge() float64 {
	return g.HalfWidth() + 2*g.Pitch()
}
