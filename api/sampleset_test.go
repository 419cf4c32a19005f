package api

import (
	"errors"
	"log/slog"
	"math"
	"reflect"
	"testing"

	"github.com/paulmach/orb/planar"
	"github.com/rotblauer/fieldsamp/common"
	"github.com/rotblauer/fieldsamp/geo/anchor"
	"github.com/rotblauer/fieldsamp/geo/plot"
	"github.com/rotblauer/fieldsamp/geo/sampler"
	"github.com/rotblauer/fieldsamp/params"
)

func testConfig() *params.Config {
	c := params.DefaultConfig()
	c.Field.Samples = 10
	return c
}

func TestBuild_EndToEnd(t *testing.T) {
	defer common.SlogResetLevel(slog.LevelWarn + 1)()

	config := testConfig()
	set, err := Build(config, sampler.NewRand(42))
	if err != nil {
		t.Fatal(err)
	}
	if len(set.Records) != 10 || set.Partial() {
		t.Fatalf("Expected 10 records, but got %d", len(set.Records))
	}

	frame, _ := anchor.NewFrame(config.Frame)
	grid := plot.NewGrid(config.Grid)
	origin := frame.Origin()

	for i, r := range set.Records {
		if want := []string{"S001", "S002", "S003", "S004", "S005", "S006", "S007", "S008", "S009", "S010"}[i]; r.ID != want {
			t.Errorf("Expected ID %s, but got %s", want, r.ID)
		}
		for _, o := range set.Records[i+1:] {
			if d := planar.Distance(r.LocalPoint(), o.LocalPoint()); d < 15-1e-9 {
				t.Errorf("%s and %s are %v apart", r.ID, o.ID, d)
			}
		}
		if math.Abs(r.Latitude-origin.Lat()) > 0.001 || math.Abs(r.Longitude-origin.Lon()) > 0.001 {
			t.Errorf("%s at %v is not near the anchor %v", r.ID, r.Point(), origin)
		}
		if r.Latitude < origin.Lat() || r.Longitude < origin.Lon() {
			t.Errorf("%s should be north-east of the anchor, got %v", r.ID, r.Point())
		}
		wantPlot, _ := grid.CellOf(r.XFt, r.LocalYFt)
		if r.PlotID != wantPlot {
			t.Errorf("%s: Expected plot %q from local coordinates, but got %q", r.ID, wantPlot, r.PlotID)
		}
		if r.YFt != frame.ShiftY(r.LocalYFt) {
			t.Errorf("%s: Expected shifted Y_ft, but got %v", r.ID, r.YFt)
		}
		if r.GPSLatitude != anchor.ToDMS(r.Latitude) || r.GPSLongitude != anchor.ToDMS(r.Longitude) {
			t.Errorf("%s: DMS fields do not match decimal fields", r.ID)
		}
		if r.CellToken == "" {
			t.Errorf("%s: Expected an S2 cell token", r.ID)
		}
	}

	again, err := Build(config, sampler.NewRand(42))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(set.Records, again.Records) {
		t.Error("Expected a seeded build to be reproducible")
	}
	if set.Report.Fingerprint == "" || set.Report.Fingerprint != again.Report.Fingerprint {
		t.Errorf("Expected stable fingerprints, but got %q and %q", set.Report.Fingerprint, again.Report.Fingerprint)
	}
}

func TestBuild_Report(t *testing.T) {
	defer common.SlogResetLevel(slog.LevelWarn + 1)()

	set, err := Build(testConfig(), sampler.NewRand(1))
	if err != nil {
		t.Fatal(err)
	}
	r := set.Report
	if r.Requested != 10 || r.Accepted != 10 || r.Shortfall() != 0 {
		t.Errorf("Expected 10 of 10, but got %+v", r)
	}
	if r.Attempts != r.Accepted+r.Rejections {
		t.Errorf("Expected attempts == accepted + rejections, but got %+v", r)
	}
	if r.Spacing.Min < 15 {
		t.Errorf("Expected nearest neighbors at least 15 ft apart, but got %v", r.Spacing.Min)
	}
	if r.AcceptanceRate() <= 0 || r.AcceptanceRate() > 1 {
		t.Errorf("Expected an acceptance rate in (0, 1], but got %v", r.AcceptanceRate())
	}
	// The flat-earth constants are a few percent off; over ~300 ft that is feet, not miles.
	if r.MaxProjectionErrorFt <= 0 || r.MaxProjectionErrorFt > 50 {
		t.Errorf("Expected a small projection error, but got %v", r.MaxProjectionErrorFt)
	}

	other := testConfig()
	other.Field.MinDistance = 20
	otherSet, err := Build(other, sampler.NewRand(1))
	if err != nil {
		t.Fatal(err)
	}
	if otherSet.Report.Fingerprint == r.Fingerprint {
		t.Error("Expected different configs to fingerprint differently")
	}
}

func TestBuild_Partial(t *testing.T) {
	defer common.SlogResetLevel(slog.LevelError + 1)()

	config := testConfig()
	config.Field.Width = 20
	config.Field.Height = 20
	config.Field.MinDistance = 50
	config.Field.MaxAttempts = 100

	set, err := Build(config, sampler.NewRand(9))
	if err != nil {
		t.Fatalf("Expected a partial result, not an error: %v", err)
	}
	if !set.Partial() {
		t.Fatal("Expected a partial result")
	}
	if len(set.Records) != 1 || set.Report.Shortfall() != 9 {
		t.Errorf("Expected 1 record and a shortfall of 9, but got %d and %d", len(set.Records), set.Report.Shortfall())
	}
	if set.Records[0].ID != "S001" {
		t.Errorf("Expected S001, but got %s", set.Records[0].ID)
	}
	if set.Report.Spacing != (sampler.SpacingStats{}) {
		t.Errorf("Expected empty spacing for one record, but got %+v", set.Report.Spacing)
	}
}

func TestBuild_FormatErrorBeforeSampling(t *testing.T) {
	config := testConfig()
	config.Frame.Latitude = "40/06/54"

	rng := &countingRand{}
	set, err := Build(config, rng)
	var fe *anchor.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("Expected *anchor.FormatError, but got %v", err)
	}
	if set != nil {
		t.Error("Expected no sample set on failure")
	}
	if rng.n != 0 {
		t.Errorf("Expected no draws before failing, but got %d", rng.n)
	}
}

func TestNewBuilder_ConfigurationError(t *testing.T) {
	config := testConfig()
	config.Field.Width = 0
	config.Field.MaxAttempts = -1
	config.Frame.LonFeetPerDegree = 0

	_, err := NewBuilder(config)
	var ce *params.ConfigurationError
	if !errors.As(err, &ce) {
		t.Fatalf("Expected *params.ConfigurationError, but got %v", err)
	}

	config = testConfig()
	config.Field.MinDistance = 0
	if _, err := NewBuilder(config); err != nil {
		t.Errorf("Expected zero min distance to be valid, but got %v", err)
	}
}

func TestBuild_NonFiniteConfigBeforeSampling(t *testing.T) {
	for _, set := range []func(c *params.Config){
		func(c *params.Config) { c.Field.MinDistance = math.NaN() },
		func(c *params.Config) { c.Field.Width = math.Inf(1) },
		func(c *params.Config) { c.Frame.LatFeetPerDegree = math.NaN() },
	} {
		config := testConfig()
		set(config)
		rng := &countingRand{}
		got, err := Build(config, rng)
		var ce *params.ConfigurationError
		if !errors.As(err, &ce) {
			t.Errorf("Expected *params.ConfigurationError, but got %v", err)
		}
		if got != nil {
			t.Errorf("Expected no sample set, but got %d records", len(got.Records))
		}
		if rng.n != 0 {
			t.Errorf("Expected no draws, but got %d", rng.n)
		}
	}
}

func TestBuild_NoShift(t *testing.T) {
	defer common.SlogResetLevel(slog.LevelWarn + 1)()

	shifted := testConfig()
	unshifted := testConfig()
	unshifted.Frame.ShiftY = false

	a, err := Build(shifted, sampler.NewRand(5))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build(unshifted, sampler.NewRand(5))
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Records {
		ra, rb := a.Records[i], b.Records[i]
		if rb.YFt != rb.LocalYFt {
			t.Errorf("Expected unshifted Y_ft, but got %v vs %v", rb.YFt, rb.LocalYFt)
		}
		if ra.Latitude != rb.Latitude || ra.Longitude != rb.Longitude || ra.PlotID != rb.PlotID {
			t.Errorf("Expected the shift to affect only Y_ft, but %s differs", ra.ID)
		}
	}
}

func TestBuild_GridDisabled(t *testing.T) {
	defer common.SlogResetLevel(slog.LevelWarn + 1)()

	config := testConfig()
	config.Grid.Enabled = false
	config.Grid.Cols = 0 // ignored when disabled

	set, err := Build(config, sampler.NewRand(5))
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range set.Records {
		if r.HasPlot() {
			t.Errorf("Expected no plot ids, but %s has %s", r.ID, r.PlotID)
		}
	}
}

func TestBuild_OffGridSamples(t *testing.T) {
	defer common.SlogResetLevel(slog.LevelWarn + 1)()

	// The grid only covers the lower-left 80 x 130 ft of the 160 x 270 ft field.
	config := testConfig()
	config.Field.Samples = 5
	config.Field.MinDistance = 5
	config.Grid = params.PlotGrid{Enabled: true, CellWidth: 10, CellHeight: 10, Cols: 8, Rows: 13}

	rng := &scriptedRand{values: []float64{
		0.1, 0.1,   // (16, 27)
		0.9, 0.9,   // (144, 243)
		0.25, 0.6,  // (40, 162), above the grid
		0.6, 0.2,   // (96, 54), right of the grid
		0.45, 0.45, // (72, 121.5)
	}}
	set, err := Build(config, rng)
	if err != nil {
		t.Fatal(err)
	}
	if len(set.Records) != 5 {
		t.Fatalf("Expected 5 records, but got %d", len(set.Records))
	}
	want := []string{"p018", "", "", "", "p104"}
	for i, r := range set.Records {
		if r.PlotID != want[i] {
			t.Errorf("%s at (%v, %v): Expected plot %q, but got %q", r.ID, r.XFt, r.LocalYFt, want[i], r.PlotID)
		}
		if r.HasPlot() != (want[i] != "") {
			t.Errorf("%s: Expected HasPlot=%v", r.ID, want[i] != "")
		}
	}
}

// scriptedRand replays fixed values.
type scriptedRand struct {
	values []float64
	i      int
}

func (s *scriptedRand) Float64() float64 {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

// countingRand counts draws.
type countingRand struct {
	n int
}

func (c *countingRand) Float64() float64 {
	c.n++
	return 0.5
}
