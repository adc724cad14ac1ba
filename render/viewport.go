package render

import (
	"math"

	"github.com/lixenwraith/hook-miner/parameter"
	"github.com/lixenwraith/hook-miner/vmath"
)

// HUDRows is the number of terminal rows reserved above the playfield
const HUDRows = 1

// Viewport maps canvas coordinates onto terminal cells below the HUD
type Viewport struct {
	Cols, Rows int // Playfield size in cells
	canvasW    float64
	canvasH    float64
}

// NewViewport fits the default canvas into a screen of cols x rows cells
func NewViewport(cols, rows int) Viewport {
	return NewCanvasViewport(cols, rows, parameter.CanvasWidth, parameter.CanvasHeight)
}

// NewCanvasViewport fits a width x height canvas; zero sizes use the default canvas
func NewCanvasViewport(cols, rows int, width, height float64) Viewport {
	if width <= 0 {
		width = parameter.CanvasWidth
	}
	if height <= 0 {
		height = parameter.CanvasHeight
	}
	return Viewport{
		Cols:    max(cols, 1),
		Rows:    max(rows-HUDRows, 1),
		canvasW: width,
		canvasH: height,
	}
}

// ToCell converts a canvas point to screen cell coordinates
// Points outside the canvas land outside the playfield
func (v Viewport) ToCell(p vmath.Vec2) (int, int) {
	x := int(math.Floor(p.X / v.canvasW * float64(v.Cols)))
	y := int(math.Floor(p.Y/v.canvasH*float64(v.Rows))) + HUDRows
	return x, y
}

// Contains reports whether cell x,y is inside the playfield
func (v Viewport) Contains(x, y int) bool {
	return x >= 0 && x < v.Cols && y >= HUDRows && y < v.Rows+HUDRows
}

// Line visits cells from a to b in canvas space, one sample per half cell
func (v Viewport) Line(a, b vmath.Vec2, fn func(x, y int)) {
	ax, ay := v.ToCell(a)
	bx, by := v.ToCell(b)
	steps := max(abs(bx-ax), abs(by-ay))*2 + 1
	lastX, lastY := math.MinInt, math.MinInt
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := vmath.Vec2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
		x, y := v.ToCell(p)
		if x == lastX && y == lastY {
			continue
		}
		lastX, lastY = x, y
		fn(x, y)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
