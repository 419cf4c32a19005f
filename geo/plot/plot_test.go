package plot

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/rotblauer/fieldsamp/params"
)

func TestCellOf(t *testing.T) {
	g := NewGrid(params.DefaultPlotGrid) // 10x8 ft, 16 cols, 34 rows

	cases := []struct {
		name   string
		x, y   float64
		want   string
		wantOK bool
	}{
		{"origin", 0, 0, "p001", true},
		{"first row", 15, 4, "p002", true},
		{"column boundary", 30, 0, "p004", true},
		{"row boundary", 0, 8, "p017", true},
		{"second row third col", 25, 9, "p019", true},
		{"last cell", 159.99, 271.99, "p544", true},
		{"just left", -0.001, 4, "", false},
		{"just below", 5, -0.001, "", false},
		{"right edge", 160, 4, "", false},
		{"top edge", 5, 272, "", false},
		{"far out", 1000, 1000, "", false},
	}
	for _, c := range cases {
		got, ok := g.CellOf(c.x, c.y)
		if got != c.want || ok != c.wantOK {
			t.Errorf("%s: CellOf(%v, %v): Expected (%q, %v), but got (%q, %v)",
				c.name, c.x, c.y, c.want, c.wantOK, got, ok)
		}
	}
}

func TestCellOf_ColumnBoundaryFloors(t *testing.T) {
	g := Grid{CellWidth: 10, CellHeight: 10, Cols: 10, Rows: 1}
	for k := 0; k < g.Cols; k++ {
		got, ok := g.CellOf(g.CellWidth*float64(k), 0)
		if !ok || got != FormatID(k+1) {
			t.Errorf("Expected x=%v in column %d (%s), but got %q", g.CellWidth*float64(k), k, FormatID(k+1), got)
		}
	}
}

func TestFormatID(t *testing.T) {
	if got := FormatID(34); got != "p034" {
		t.Errorf("Expected p034, but got %s", got)
	}
	if got := FormatID(1234); got != "p1234" {
		t.Errorf("Expected p1234, but got %s", got)
	}
}

func TestBound(t *testing.T) {
	g := NewGrid(params.DefaultPlotGrid)
	want := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{160, 272}}
	if got := g.Bound(); !got.Equal(want) {
		t.Errorf("Expected %v, but got %v", want, got)
	}
}
