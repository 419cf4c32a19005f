// Package sample defines the sample record: one accepted sampling location,
// in local field feet and in GPS coordinates.
package sample

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rotblauer/fieldsamp/common"
)

// Record is a sample location. Records are built once by the sample set
// builder and not modified afterward.
//
// Coordinates are kept at full precision; Rounded gives the presentation form.
type Record struct {
	// ID is a stable 1-based identifier in acceptance order, e.g. S007.
	ID string

	// XFt is the local easting in feet from the field's x=0 edge.
	XFt float64
	// YFt is the local northing in feet, shifted into the anchor frame
	// when the frame shifts Y.
	YFt float64
	// LocalYFt is the unshifted northing. Plot binning uses it.
	LocalYFt float64

	Latitude  float64
	Longitude float64

	// GPSLatitude and GPSLongitude are unsigned DMS strings, e.g. 40-06-54.00.
	GPSLatitude  string
	GPSLongitude string

	// PlotID is the plot cell, or empty when the sample is off the plot grid.
	PlotID string

	// CellToken is the S2 cell token of the GPS position.
	CellToken string
}

// FormatID formats a 1-based sample number, e.g. 7 as "S007".
func FormatID(n int) string {
	return fmt.Sprintf("S%03d", n)
}

// Point is the GPS position as a lon/lat point.
func (r Record) Point() orb.Point {
	return orb.Point{r.Longitude, r.Latitude}
}

// LocalPoint is the unshifted local position.
func (r Record) LocalPoint() orb.Point {
	return orb.Point{r.XFt, r.LocalYFt}
}

// HasPlot reports whether the record falls on the plot grid.
func (r Record) HasPlot() bool {
	return r.PlotID != ""
}

// Rounded returns a copy for presentation: feet to 2 places, degrees to 6.
func (r Record) Rounded() Record {
	r.XFt = common.DecimalToFixed(r.XFt, common.FeetPrecision)
	r.YFt = common.DecimalToFixed(r.YFt, common.FeetPrecision)
	r.LocalYFt = common.DecimalToFixed(r.LocalYFt, common.FeetPrecision)
	r.Latitude = common.DecimalToFixed(r.Latitude, common.GPSPrecision6)
	r.Longitude = common.DecimalToFixed(r.Longitude, common.GPSPrecision6)
	return r
}

// Feature returns the rounded record as a GeoJSON point feature.
func (r Record) Feature() *geojson.Feature {
	rr := r.Rounded()
	f := geojson.NewFeature(rr.Point())
	f.Properties["SampleID"] = rr.ID
	f.Properties["X_ft"] = rr.XFt
	f.Properties["Y_ft"] = rr.YFt
	f.Properties["GPS_Latitude"] = rr.GPSLatitude
	f.Properties["GPS_Longitude"] = rr.GPSLongitude
	f.Properties["Decimal_Latitude"] = rr.Latitude
	f.Properties["Decimal_Longitude"] = rr.Longitude
	if rr.HasPlot() {
		f.Properties["Within_Plot"] = rr.PlotID
	}
	if rr.CellToken != "" {
		f.Properties["S2_Cell"] = rr.CellToken
	}
	return f
}
