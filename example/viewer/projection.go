package main

import (
	"github.com/chewxy/math32"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/aimtrace/game"
	"github.com/oomph-ac/aimtrace/launch"
	"github.com/oomph-ac/aimtrace/world"
)

const (
	// cellsPerBlockX and cellsPerBlockY are the amount of terminal cells a block spans. Terminal cells
	// are about twice as high as they are wide.
	cellsPerBlockX = 2
	cellsPerBlockY = 1
	// sliceWidth is how far an entity may be beside the line of sight of the holder to still be drawn.
	sliceWidth = 3.0
)

// projection maps positions relative to the holder to terminal cells of a side view, looking at the
// holder from its right.
type projection struct {
	origin mgl64.Vec3
	// forward is the horizontal direction the holder looks in.
	forward mgl32.Vec2
	width   int
	height  int
	// col and row are the cell of the feet of the holder.
	col, row int
}

func newProjection(h launch.Holder, width, height int) projection {
	yaw := mgl32.DegToRad(float32(h.Yaw))
	return projection{
		origin:  h.Position,
		forward: mgl32.Vec2{-math32.Sin(yaw), math32.Cos(yaw)},
		width:   width,
		height:  height - 1,
		col:     4,
		row:     (height - 1) * 2 / 3,
	}
}

// cell returns the cell of a position relative to the holder.
func (p projection) cell(v mgl32.Vec3) (int, int) {
	d := v.X()*p.forward.X() + v.Z()*p.forward.Y()
	return p.col + int(math32.Round(d*cellsPerBlockX)), p.row - int(math32.Round(v.Y()*cellsPerBlockY))
}

// lateral returns how far a position relative to the holder is beside its line of sight.
func (p projection) lateral(v mgl32.Vec3) float32 {
	return math32.Abs(v.X()*p.forward.Y() - v.Z()*p.forward.X())
}

// position returns the world position at the centre of a cell, on the line of sight of the holder.
func (p projection) position(col, row int) mgl64.Vec3 {
	d := (float64(col-p.col) + 0.5) / cellsPerBlockX
	y := (float64(p.row-row) + 0.5) / cellsPerBlockY
	return p.origin.Add(mgl64.Vec3{float64(p.forward.X()) * d, y, float64(p.forward.Y()) * d})
}

func (p projection) visible(col, row int) bool {
	return col >= 0 && row >= 0 && col < p.width && row < p.height
}

var (
	solidStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	waterStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	entityStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	holderStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

// drawScene draws the blocks along the line of sight of the holder and the entities near it.
func drawScene(s tcell.Screen, w *world.World, p projection) {
	for row := 0; row < p.height; row++ {
		for col := 0; col < p.width; col++ {
			b := w.Block(cube.PosFromVec3(p.position(col, row)))
			switch {
			case b.Water:
				s.SetContent(col, row, '~', nil, waterStyle)
			case !b.Air():
				s.SetContent(col, row, '#', nil, solidStyle)
			}
		}
	}

	reach := float64(p.width) / cellsPerBlockX
	area := cube.Box(-reach, -float64(p.height), -reach, reach, float64(p.height), reach).Translate(p.origin)
	for _, e := range w.EntitiesWithin(area, nil) {
		bb := e.BBox()
		centre := game.Vec64To32(bb.Min().Add(bb.Max()).Mul(0.5).Sub(p.origin))
		if p.lateral(centre) > sliceWidth {
			continue
		}
		minCol, minRow := p.cell(game.Vec64To32(bb.Min().Sub(p.origin)))
		maxCol, maxRow := p.cell(game.Vec64To32(bb.Max().Sub(p.origin)))
		for col := min(minCol, maxCol); col <= max(minCol, maxCol); col++ {
			for row := min(minRow, maxRow); row <= max(minRow, maxRow); row++ {
				if p.visible(col, row) {
					s.SetContent(col, row, 'E', nil, entityStyle)
				}
			}
		}
	}
}

func drawHolder(s tcell.Screen, p projection) {
	if p.visible(p.col, p.row-1) {
		s.SetContent(p.col, p.row-1, '@', nil, holderStyle)
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
