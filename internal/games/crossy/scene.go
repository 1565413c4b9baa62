package crossy

import "github.com/vovakirdan/tui-crossy/internal/core"

// cellWidth is the number of screen characters per board column.
const cellWidth = 3

// Glyphs for static lane content.
const (
	grassGlyph = '.'
	roadGlyph  = '-'
	carGlyph   = '='
	truckGlyph = '#'
)

// TextScene is a Scene that pre-renders the static part of every lane
// (grass, trees, road markings) into a row of cells. Vehicles and the
// player move every tick and are drawn on top by Render.
//
// The board is drawn rotated: column 0 is on the right, so the last column
// is on the left.
type TextScene struct {
	geo  Geometry
	rows map[int][]core.Cell
}

// NewTextScene creates an empty scene for the given geometry.
func NewTextScene(geo Geometry) *TextScene {
	return &TextScene{geo: geo, rows: make(map[int][]core.Cell)}
}

// Width is the width of the board in screen characters.
func (s *TextScene) Width() int {
	return s.geo.Columns * cellWidth
}

// AddLane builds the background row for a lane.
func (s *TextScene) AddLane(l Lane) {
	row := make([]core.Cell, s.Width())
	switch lane := l.(type) {
	case *FieldLane:
		s.fillGrass(row, lane.Index())
	case *ForestLane:
		s.fillGrass(row, lane.Index())
		for _, tree := range lane.Trees {
			x := s.columnStart(tree.Column) + cellWidth/2
			row[x] = treeCell(tree.Height)
		}
	case *RoadLane:
		for x := range row {
			row[x] = core.Cell{Rune: ' ', Color: core.ColorDefault}
			if x%4 == 0 {
				row[x] = core.Cell{Rune: roadGlyph, Color: core.ColorDarkGray}
			}
		}
	}
	s.rows[l.Index()] = row
}

// RemoveLane drops a lane's background row.
func (s *TextScene) RemoveLane(l Lane) {
	delete(s.rows, l.Index())
}

// Row returns the cached background of a lane, or nil if it is not on the
// board.
func (s *TextScene) Row(index int) []core.Cell {
	return s.rows[index]
}

// Len returns the number of registered lanes.
func (s *TextScene) Len() int {
	return len(s.rows)
}

func (s *TextScene) fillGrass(row []core.Cell, index int) {
	for x := range row {
		row[x] = core.Cell{Rune: ' ', Color: core.ColorGreen}
		if (x+index*2)%5 == 0 {
			row[x].Rune = grassGlyph
		}
	}
}

// columnStart is the first screen character of a board column.
func (s *TextScene) columnStart(column int) int {
	return (s.geo.Columns - 1 - column) * cellWidth
}

// ScreenX maps a board X to a screen character offset within the board.
func (s *TextScene) ScreenX(x float64) float64 {
	return (s.geo.HalfWidth() - x) / s.geo.Pitch() * cellWidth
}

func treeCell(height float64) core.Cell {
	switch {
	case height >= 60:
		return core.Cell{Rune: '♠', Color: core.ColorBrightGreen}
	case height >= 45:
		return core.Cell{Rune: '♣', Color: core.ColorGreen}
	default:
		return core.Cell{Rune: '♣', Color: core.ColorOlive}
	}
}

// vehicleColor maps a configured vehicle colour name to a screen colour.
func vehicleColor(name string) core.Color {
	if c, ok := core.ParseColor(name); ok {
		return c
	}
	return core.ColorGray
}
