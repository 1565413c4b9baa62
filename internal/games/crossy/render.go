package crossy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-crossy/internal/core"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// Render draws the board around the player into dst. Lanes increase down
// the screen and the camera keeps the player a third of the way down the
// playfield, so the lanes ahead are visible.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	boardW := g.scene.Width()
	left := core.Max(0, (dst.Width()-boardW)/2)
	fieldH := dst.Height() - hudRows
	if fieldH <= 0 {
		return
	}
	anchor := hudRows + fieldH/3

	off := g.session.Offset()
	visual := float64(g.session.Lane())
	switch off.Move {
	case MoveForward:
		visual += off.Progress
	case MoveBackward:
		visual -= off.Progress
	}
	center := int(math.Round(visual))

	board := g.session.Board()
	for y := hudRows; y < dst.Height(); y++ {
		index := center + (y - anchor)
		if index < 0 || index >= board.Len() {
			continue
		}
		g.drawLane(dst, board.LaneAt(index), left, y)
	}

	if left > 0 {
		for y := hudRows; y < dst.Height(); y++ {
			dst.SetColored(left-1, y, '│', core.ColorDarkGray)
			dst.SetColored(left+boardW, y, '│', core.ColorDarkGray)
		}
	}

	g.drawPlayer(dst, left, anchor, off)
	g.drawHUD(dst, left)

	switch {
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.session.GameOver():
		sub := "..."
		if g.session.RetryReady() {
			sub = "Press R to retry"
		}
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Lane %d  |  %s", g.session.Lane(), sub))
	}
}

func (g *Game) drawLane(dst *core.Screen, l Lane, left, y int) {
	for x, cell := range g.scene.Row(l.Index()) {
		dst.SetColored(left+x, y, cell.Rune, cell.Color)
	}

	road, ok := l.(*RoadLane)
	if !ok {
		return
	}
	glyph := carGlyph
	if road.Kind() == KindTruck {
		glyph = truckGlyph
	}
	det := g.session.Detector()
	width := g.scene.Width()
	for _, v := range road.Vehicles {
		ext := det.VehicleExtent(road.Kind(), v)
		// Rotated view: the larger X is further left.
		from := int(math.Round(g.scene.ScreenX(ext.Max)))
		to := int(math.Round(g.scene.ScreenX(ext.Min)))
		color := vehicleColor(v.Color)
		for x := core.Max(0, from); x < core.Min(width, to); x++ {
			dst.SetColored(left+x, y, glyph, color)
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen, left, y int, off Offset) {
	x := left + int(g.scene.ScreenX(g.session.PlayerX()))

	glyph, color := g.skin.Glyph, g.skin.Color
	switch {
	case g.session.GameOver():
		glyph, color = 'X', core.ColorBrightRed
	case off.Hop > g.cfg.Board.HopHeight*g.cfg.Board.Zoom/2:
		glyph = g.skin.Hop
	}
	dst.SetColored(x, y, glyph, color)
}

func (g *Game) drawHUD(dst *core.Screen, left int) {
	hud := fmt.Sprintf(" Lane: %d  Best: %d ", g.session.Lane(), core.Max(g.best, g.session.Lane()))
	dst.DrawTextColored(left, 0, hud, core.ColorBrightWhite)

	banner := g.skin.Banner
	x := left + g.scene.Width() - len(banner) - 1
	if x > left+len(hud) {
		dst.DrawTextColored(x, 0, banner, g.skin.Color)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
