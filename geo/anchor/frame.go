package anchor

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/rotblauer/fieldsamp/params"
)

// Frame is a resolved, immutable geodetic frame.
// One Frame is shared by every point of a build, so the scale never drifts between points.
type Frame struct {
	originLat float64
	originLon float64

	latFeetPerDegree float64
	lonFeetPerDegree float64

	eastOffsetFt float64

	// originYFt is the anchor latitude expressed in feet from the equator.
	originYFt float64
}

// NewFrame resolves the configured anchor. It fails with a *FormatError
// when either coordinate is neither decimal nor DMS.
// The scale constants are assumed validated (see params.Config.Validate).
func NewFrame(c params.GeodeticFrame) (*Frame, error) {
	lat, err := ResolveCoordinate(c.Latitude, Hemisphere(c.LatitudeHemisphere))
	if err != nil {
		return nil, fmt.Errorf("frame latitude: %w", err)
	}
	lon, err := ResolveCoordinate(c.Longitude, Hemisphere(c.LongitudeHemisphere))
	if err != nil {
		return nil, fmt.Errorf("frame longitude: %w", err)
	}
	return &Frame{
		originLat:        lat,
		originLon:        lon,
		latFeetPerDegree: c.LatFeetPerDegree,
		lonFeetPerDegree: c.LonFeetPerDegree,
		eastOffsetFt:     c.EastOffsetFt,
		originYFt:        lat * c.LatFeetPerDegree,
	}, nil
}

// Origin is the anchor as a lon/lat point.
func (f *Frame) Origin() orb.Point {
	return orb.Point{f.originLon, f.originLat}
}

// OriginYFt is the anchor latitude in feet, the amount ShiftY adds.
func (f *Frame) OriginYFt() float64 {
	return f.originYFt
}

// EastOffsetFt is the eastward offset added to x before projecting.
func (f *Frame) EastOffsetFt() float64 {
	return f.eastOffsetFt
}

// ShiftY moves a local y into the anchor's vertical frame.
func (f *Frame) ShiftY(y float64) float64 {
	return y + f.originYFt
}

// Latitude projects a shifted y (see ShiftY) to decimal degrees.
func (f *Frame) Latitude(shiftedY float64) float64 {
	return f.originLat + (shiftedY-f.originYFt)/f.latFeetPerDegree
}

// Longitude projects a local x to decimal degrees.
// The scale is a constant for the anchor's latitude band, not cos(lat) corrected.
func (f *Frame) Longitude(x float64) float64 {
	return f.originLon + (x+f.eastOffsetFt)/f.lonFeetPerDegree
}

// Project maps a local (x, y) to a lon/lat point. y is unshifted.
func (f *Frame) Project(x, y float64) orb.Point {
	return orb.Point{f.Longitude(x), f.Latitude(f.ShiftY(y))}
}
