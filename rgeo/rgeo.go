// Package rgeo names the place a sample field sits in,
// using the reverse geocoding datasets bundled with sams96/rgeo.
package rgeo

import (
	"strings"
	"sync"

	"github.com/paulmach/orb"
	srgeo "github.com/sams96/rgeo"
)

type ReverseGeocoder interface {
	GetLocation(pt orb.Point) (srgeo.Location, error)
}

// rR is the type of our wrapped rgeo.Rgeo instance, which implements the ReverseGeocoder interface.
type rR srgeo.Rgeo

func (rr *rR) GetLocation(pt orb.Point) (srgeo.Location, error) {
	return (*srgeo.Rgeo)(rr).ReverseGeocode(pt)
}

// datasets are the datasets that the reverse geocoder will use.
// Country and province outlines are enough to name a field's surroundings,
// and load far faster than the city and county sets.
var datasets = []func() []byte{
	srgeo.Countries10,
	srgeo.Provinces10,
}

var (
	r       *rR
	initErr error
	once    sync.Once
)

// R returns the shared in-process reverse geocoder, loading the datasets on first use.
// Loading takes a few seconds.
func R() (ReverseGeocoder, error) {
	once.Do(func() {
		loaded, err := srgeo.New(datasets...)
		if err != nil {
			initErr = err
			return
		}
		r = (*rR)(loaded)
	})
	if initErr != nil {
		return nil, initErr
	}
	return r, nil
}

// Region describes where pt is, e.g. "Illinois, United States of America".
func Region(g ReverseGeocoder, pt orb.Point) (string, error) {
	loc, err := g.GetLocation(pt)
	if err != nil {
		return "", err
	}
	return FormatLocation(loc), nil
}

// FormatLocation joins the province and country, skipping whichever is unknown.
func FormatLocation(loc srgeo.Location) string {
	parts := make([]string, 0, 2)
	for _, s := range []string{loc.Province, loc.CountryLong} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
