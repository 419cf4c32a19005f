package sampler

import (
	"math"

	"github.com/montanaflynn/stats"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// SpacingStats summarizes each point's distance to its nearest neighbor, in feet.
type SpacingStats struct {
	Min    float64
	Mean   float64
	Median float64
	Max    float64
}

// Spacing measures nearest-neighbor distances.
// It returns the zero value for fewer than two points.
func Spacing(points []orb.Point) SpacingStats {
	if len(points) < 2 {
		return SpacingStats{}
	}
	nearest := make([]float64, len(points))
	for i, p := range points {
		nearest[i] = math.Inf(1)
		for j, q := range points {
			if i == j {
				continue
			}
			if d := planar.Distance(p, q); d < nearest[i] {
				nearest[i] = d
			}
		}
	}

	statsMustFloat := func(fn func() (float64, error)) float64 {
		out, _ := fn()
		return out
	}
	data := stats.Float64Data(nearest)
	return SpacingStats{
		Min:    statsMustFloat(data.Min),
		Mean:   statsMustFloat(data.Mean),
		Median: statsMustFloat(data.Median),
		Max:    statsMustFloat(data.Max),
	}
}
