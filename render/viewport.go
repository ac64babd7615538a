package render

import (
	"math"

	"github.com/lixenwraith/glade/parameter"
)

// Viewport maps the ground plane onto terminal cells, top-down
// World +X is screen right, world +Z is screen down; one row is twice as tall as one column
type Viewport struct {
	Width, Height int // map area in cells, excluding the HUD row
	ColsPerUnit   float32
	RowsPerUnit   float32
	centerCol     int
	centerRow     int
}

// NewViewport fits the ground plane into a screen of w x h cells, reserving the bottom row for the HUD
func NewViewport(w, h int) Viewport {
	mapH := h - 1
	if mapH < 1 {
		mapH = 1
	}
	span := float32(parameter.GroundSize)
	cols := float32(w) / span
	if byRows := 2 * float32(mapH) / span; byRows < cols {
		cols = byRows
	}
	if cols <= 0 {
		cols = 1.0 / span
	}
	return Viewport{
		Width:       w,
		Height:      mapH,
		ColsPerUnit: cols,
		RowsPerUnit: cols / 2,
		centerCol:   w / 2,
		centerRow:   mapH / 2,
	}
}

// Project returns the cell for world (x, z); ok is false when it falls outside the map area
func (v Viewport) Project(x, z float32) (col, row int, ok bool) {
	col = v.centerCol + int(math.Round(float64(x*v.ColsPerUnit)))
	row = v.centerRow + int(math.Round(float64(z*v.RowsPerUnit)))
	ok = col >= 0 && col < v.Width && row >= 0 && row < v.Height
	return col, row, ok
}
