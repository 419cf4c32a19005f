// Package sampler draws well-separated points inside a rectangle by rejection.
//
// Candidates are drawn uniformly and kept only when they sit at least the
// minimum distance from every point kept so far. Each candidate is checked
// against all kept points; there is no spatial index, which is fine for the
// tens to low hundreds of points a field survey uses.
// The attempt budget is the only thing that bounds the loop.
package sampler

import (
	"math/rand/v2"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/rotblauer/fieldsamp/params"
)

// Rand is a source of uniform floats in [0, 1).
// *rand.Rand from math/rand and math/rand/v2 both satisfy it.
// Concurrent samplers must not share one.
type Rand interface {
	Float64() float64
}

// Result holds the accepted points in acceptance order.
// len(Points) may be less than requested when the attempt budget ran out.
type Result struct {
	Points     []orb.Point
	Attempts   int
	Rejections int
}

// Sample draws up to field.Samples points over [0, Width) x [0, Height).
func Sample(field params.FieldGeometry, rng Rand) Result {
	res := Result{Points: make([]orb.Point, 0, max(0, min(field.Samples, field.MaxAttempts)))}
	for len(res.Points) < field.Samples && res.Attempts < field.MaxAttempts {
		candidate := orb.Point{rng.Float64() * field.Width, rng.Float64() * field.Height}
		res.Attempts++
		if !separated(candidate, res.Points, field.MinDistance) {
			res.Rejections++
			continue
		}
		res.Points = append(res.Points, candidate)
	}
	return res
}

// Feasible reports whether every requested point was accepted.
func (r Result) Feasible(requested int) bool {
	return len(r.Points) == requested
}

// separated reports whether pt is at least min from every accepted point.
// The first point is always separated.
func separated(pt orb.Point, accepted []orb.Point, min float64) bool {
	for _, a := range accepted {
		if planar.Distance(pt, a) < min {
			return false
		}
	}
	return true
}

// NewRand returns a generator that replays the same sequence for the same seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// NewUnseededRand returns an independently seeded generator.
func NewUnseededRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
