package api

import (
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/rotblauer/fieldsamp/geo/anchor"
	"github.com/rotblauer/fieldsamp/geo/plot"
	"github.com/rotblauer/fieldsamp/geo/sampler"
	"github.com/rotblauer/fieldsamp/params"
	"github.com/rotblauer/fieldsamp/s2"
	"github.com/rotblauer/fieldsamp/types/sample"
)

// Builder turns a validated configuration into sample sets.
// A Builder is immutable and safe to share; each Build call needs its own generator.
type Builder struct {
	config params.Config
	frame  *anchor.Frame

	// grid is nil when plot binning is disabled.
	grid  *plot.Grid
	level s2.CellLevel

	logger *slog.Logger
}

// NewBuilder validates the configuration and resolves the anchor.
// It fails with params.ConfigurationError(s) or an anchor.FormatError,
// before any sampling can happen.
func NewBuilder(config *params.Config) (*Builder, error) {
	if config == nil {
		config = params.DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	frame, err := anchor.NewFrame(config.Frame)
	if err != nil {
		return nil, err
	}
	b := &Builder{
		config: *config,
		frame:  frame,
		level:  s2.CellLevel(config.Output.S2Level),
		logger: slog.With("anchor", frame.Origin()),
	}
	if config.Grid.Enabled {
		g := plot.NewGrid(config.Grid)
		b.grid = &g
	}
	return b, nil
}

// Config returns a copy of the builder's configuration.
func (b *Builder) Config() params.Config {
	return b.config
}

// Frame returns the resolved geodetic frame.
func (b *Builder) Frame() *anchor.Frame {
	return b.frame
}

// Build samples the field once and derives a record for every accepted point,
// in acceptance order.
func (b *Builder) Build(rng sampler.Rand) *SampleSet {
	res := sampler.Sample(b.config.Field, rng)

	records := make([]sample.Record, len(res.Points))
	for i, pt := range res.Points {
		records[i] = b.record(i+1, pt.X(), pt.Y())
	}

	set := &SampleSet{
		Records:   records,
		Requested: b.config.Field.Samples,
		Grid:      b.grid,
	}
	set.Report = newReport(b, res, records)

	if set.Partial() {
		b.logger.Warn("Sample set short of requested count",
			"requested", set.Requested, "accepted", len(records),
			"attempts", humanize.Comma(int64(res.Attempts)))
	} else {
		b.logger.Debug("Sample set built",
			"accepted", len(records), "attempts", humanize.Comma(int64(res.Attempts)),
			"rejections", humanize.Comma(int64(res.Rejections)))
	}
	return set
}

// record derives one sample record from a raw local point.
// The plot is binned from the raw y; the y shift only affects the reported Y_ft.
func (b *Builder) record(n int, x, y float64) sample.Record {
	anchoredY := b.frame.ShiftY(y)
	reportedY := y
	if b.config.Frame.ShiftY {
		reportedY = anchoredY
	}
	lat := b.frame.Latitude(anchoredY)
	lon := b.frame.Longitude(x)

	r := sample.Record{
		ID:           sample.FormatID(n),
		XFt:          x,
		YFt:          reportedY,
		LocalYFt:     y,
		Latitude:     lat,
		Longitude:    lon,
		GPSLatitude:  anchor.ToDMS(lat),
		GPSLongitude: anchor.ToDMS(lon),
	}
	if b.grid != nil {
		r.PlotID, _ = b.grid.CellOf(x, y)
	}
	r.CellToken = s2.TokenForPointLevel(r.Point(), b.level)
	return r
}

// Build is NewBuilder followed by a single Build.
func Build(config *params.Config, rng sampler.Rand) (*SampleSet, error) {
	b, err := NewBuilder(config)
	if err != nil {
		return nil, fmt.Errorf("build sample set: %w", err)
	}
	return b.Build(rng), nil
}

// SampleSet is the ordered output of one build.
type SampleSet struct {
	Records   []sample.Record
	Requested int
	Report    Report

	// Grid is the plot grid the records were binned on, nil when binning is disabled.
	Grid *plot.Grid

	// Region optionally names where the field is, e.g. "Illinois, United States of America".
	// Build leaves it empty.
	Region string
}

// Partial reports whether the attempt budget ran out before every requested sample was placed.
// This is a normal outcome; check it when an exact count matters.
func (s *SampleSet) Partial() bool {
	return len(s.Records) < s.Requested
}

// Rounded returns the records in presentation form.
func (s *SampleSet) Rounded() []sample.Record {
	out := make([]sample.Record, len(s.Records))
	for i, r := range s.Records {
		out[i] = r.Rounded()
	}
	return out
}
