package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// screenTarget draws lines and points to a terminal screen through a side projection.
type screenTarget struct {
	screen tcell.Screen
	proj   projection
}

func (t *screenTarget) Line(from, to mgl32.Vec3, colour mgl32.Vec4) {
	x0, y0 := t.proj.cell(from)
	x1, y1 := t.proj.cell(to)
	if !t.proj.visible(x0, y0) && !t.proj.visible(x1, y1) && max(abs(x1-x0), abs(y1-y0)) > t.proj.width+t.proj.height {
		return
	}
	style := styleOf(colour)

	// Bresenham's line algorithm.
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		t.set(x0, y0, '*', style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (t *screenTarget) Point(at mgl32.Vec3, _ float32, colour mgl32.Vec4) {
	x, y := t.proj.cell(at)
	t.set(x, y, 'o', styleOf(colour))
}

func (t *screenTarget) set(x, y int, r rune, style tcell.Style) {
	if t.proj.visible(x, y) {
		t.screen.SetContent(x, y, r, nil, style)
	}
}

func styleOf(colour mgl32.Vec4) tcell.Style {
	a := colour.W()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(
		int32(colour.X()*a*255),
		int32(colour.Y()*a*255),
		int32(colour.Z()*a*255),
	))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
