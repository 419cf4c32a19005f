// Package s2 labels sample positions with S2 cell tokens,
// so a sample can be matched to other S2-indexed datasets without
// comparing floating point coordinates.
package s2

import (
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
)

// CellIDWithLevel returns the cellID truncated to the given level.
// https://docs.s2cell.aliddell.com/en/stable/s2_concepts.html#truncation
func CellIDWithLevel(cellID s2.CellID, level CellLevel) s2.CellID {
	var lsb uint64 = 1 << (2 * (30 - level))
	truncatedCellID := (uint64(cellID) & -lsb) | lsb
	return s2.CellID(truncatedCellID)
}

// CellIDForPointLevel returns the cellID at some level for a lon/lat point.
func CellIDForPointLevel(pt orb.Point, level CellLevel) s2.CellID {
	return CellIDWithLevel(s2.CellIDFromLatLng(s2.LatLngFromDegrees(pt.Lat(), pt.Lon())), level)
}

// TokenForPointLevel returns the cell token for a lon/lat point.
func TokenForPointLevel(pt orb.Point, level CellLevel) string {
	return CellIDForPointLevel(pt, level).ToToken()
}
