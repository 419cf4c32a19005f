package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/paulmach/orb/geojson"
	"github.com/rotblauer/fieldsamp/api"
)

// WriteGeoJSON writes the set as a FeatureCollection of points, one per record,
// with the build report, the plot grid extent (local feet) and the region as foreign members.
func WriteGeoJSON(w io.Writer, set *api.SampleSet) error {
	fc := geojson.NewFeatureCollection()
	for _, r := range set.Records {
		fc.Append(r.Feature())
	}
	if len(set.Records) > 0 {
		fc.BBox = geojson.NewBBox(api.Bound(set.Records))
	}
	rep := set.Report
	fc.ExtraMembers = geojson.Properties{
		"requested":   rep.Requested,
		"accepted":    rep.Accepted,
		"attempts":    rep.Attempts,
		"fingerprint": rep.Fingerprint,
	}
	if set.Grid != nil {
		b := set.Grid.Bound()
		fc.ExtraMembers["plot_grid_ft"] = []float64{b.Min.X(), b.Min.Y(), b.Max.X(), b.Max.Y()}
	}
	if set.Region != "" {
		fc.ExtraMembers["region"] = set.Region
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(fc); err != nil {
		return fmt.Errorf("geojson encode: %w", err)
	}
	return nil
}
