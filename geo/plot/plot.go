// Package plot bins local field coordinates into numbered plot cells.
package plot

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/rotblauer/fieldsamp/params"
)

// Grid is a fixed-size grid of plot cells starting at the field origin.
// Cells are numbered from 1, left to right, then bottom to top.
type Grid struct {
	CellWidth  float64
	CellHeight float64
	Cols       int
	Rows       int
}

func NewGrid(c params.PlotGrid) Grid {
	return Grid{CellWidth: c.CellWidth, CellHeight: c.CellHeight, Cols: c.Cols, Rows: c.Rows}
}

// CellOf returns the plot id holding the local point (x, y).
// y must be the unshifted field coordinate.
// A point on a cell boundary belongs to the cell above or to the right.
// Points off the grid return "", false.
func (g Grid) CellOf(x, y float64) (string, bool) {
	col := math.Floor(x / g.CellWidth)
	row := math.Floor(y / g.CellHeight)
	if col < 0 || col >= float64(g.Cols) || row < 0 || row >= float64(g.Rows) {
		return "", false
	}
	return FormatID(int(row)*g.Cols + int(col) + 1), true
}

// FormatID formats a 1-based plot number, e.g. 34 as "p034".
func FormatID(n int) string {
	return fmt.Sprintf("p%03d", n)
}

// Bound is the area the grid covers, in local feet.
func (g Grid) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{0, 0},
		Max: orb.Point{g.CellWidth * float64(g.Cols), g.CellHeight * float64(g.Rows)},
	}
}
