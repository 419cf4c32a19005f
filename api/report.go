package api

import (
	"fmt"
	"math"

	"github.com/mitchellh/hashstructure/v2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/rotblauer/fieldsamp/geo/sampler"
	"github.com/rotblauer/fieldsamp/types/sample"
)

const feetPerMeter = 3.280839895

// Report describes how a sample set came to be.
type Report struct {
	Requested  int
	Accepted   int
	Attempts   int
	Rejections int

	// Spacing summarizes nearest-neighbor distances between accepted samples, in feet.
	Spacing sampler.SpacingStats

	// MaxProjectionErrorFt is the largest difference, over all samples, between
	// the local distance from the anchor and the geodesic distance between the anchor
	// and the projected GPS position. It grows with distance from the anchor.
	MaxProjectionErrorFt float64

	// Fingerprint identifies the configuration. Seeded builds with the
	// same fingerprint and seed produce the same records.
	Fingerprint string
}

func newReport(b *Builder, res sampler.Result, records []sample.Record) Report {
	r := Report{
		Requested:  b.config.Field.Samples,
		Accepted:   len(res.Points),
		Attempts:   res.Attempts,
		Rejections: res.Rejections,
		Spacing:    sampler.Spacing(res.Points),
	}

	origin := b.frame.Origin()
	for _, rec := range records {
		local := math.Hypot(rec.XFt+b.frame.EastOffsetFt(), rec.LocalYFt)
		geodesic := geo.Distance(origin, rec.Point()) * feetPerMeter
		if d := math.Abs(local - geodesic); d > r.MaxProjectionErrorFt {
			r.MaxProjectionErrorFt = d
		}
	}

	if hash, err := hashstructure.Hash(b.config, hashstructure.FormatV2, nil); err == nil {
		r.Fingerprint = fmt.Sprintf("%016x", hash)
	} else {
		b.logger.Warn("Failed to fingerprint config", "error", err)
	}
	return r
}

// Shortfall is how many requested samples were not placed.
func (r Report) Shortfall() int {
	return r.Requested - r.Accepted
}

// AcceptanceRate is the share of draws that were accepted.
func (r Report) AcceptanceRate() float64 {
	if r.Attempts == 0 {
		return 0
	}
	return float64(r.Accepted) / float64(r.Attempts)
}

// Bound is the lon/lat extent of the records.
func Bound(records []sample.Record) orb.Bound {
	mp := make(orb.MultiPoint, len(records))
	for i, r := range records {
		mp[i] = r.Point()
	}
	return mp.Bound()
}
