package params

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rotblauer/fieldsamp/s2"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. FIELDSAMP_FIELD_WIDTH → field.width.
const EnvPrefix = "FIELDSAMP"

// Config is everything a single sample-set build needs.
type Config struct {
	Field  FieldGeometry `mapstructure:"field"`
	Frame  GeodeticFrame `mapstructure:"frame"`
	Grid   PlotGrid      `mapstructure:"grid"`
	Output OutputConfig  `mapstructure:"output"`
}

type OutputConfig struct {
	// S2Level is the level of the per-sample S2 cell token.
	S2Level int `mapstructure:"s2_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Field:  DefaultFieldGeometry,
		Frame:  DefaultGeodeticFrame,
		Grid:   DefaultPlotGrid,
		Output: OutputConfig{S2Level: int(S2DefaultCellLevel)},
	}
}

// ConfigurationError reports one invalid configuration value.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// SetDefaults installs DefaultConfig values on v.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("field.width", d.Field.Width)
	v.SetDefault("field.height", d.Field.Height)
	v.SetDefault("field.min_distance", d.Field.MinDistance)
	v.SetDefault("field.samples", d.Field.Samples)
	v.SetDefault("field.max_attempts", d.Field.MaxAttempts)

	v.SetDefault("frame.latitude", d.Frame.Latitude)
	v.SetDefault("frame.longitude", d.Frame.Longitude)
	v.SetDefault("frame.latitude_hemisphere", d.Frame.LatitudeHemisphere)
	v.SetDefault("frame.longitude_hemisphere", d.Frame.LongitudeHemisphere)
	v.SetDefault("frame.lat_feet_per_degree", d.Frame.LatFeetPerDegree)
	v.SetDefault("frame.lon_feet_per_degree", d.Frame.LonFeetPerDegree)
	v.SetDefault("frame.east_offset_ft", d.Frame.EastOffsetFt)
	v.SetDefault("frame.shift_y", d.Frame.ShiftY)

	v.SetDefault("grid.enabled", d.Grid.Enabled)
	v.SetDefault("grid.cell_width", d.Grid.CellWidth)
	v.SetDefault("grid.cell_height", d.Grid.CellHeight)
	v.SetDefault("grid.cols", d.Grid.Cols)
	v.SetDefault("grid.rows", d.Grid.Rows)

	v.SetDefault("output.s2_level", d.Output.S2Level)
}

// Load reads configuration from v, which should already have its config file
// and flags attached. Defaults and environment overrides are installed here.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every numeric invariant and returns all failures joined.
// Anchor strings are not checked here; they are parsed by the builder,
// which reports a format error instead.
func (c *Config) Validate() error {
	var errs []error
	bad := func(field, reason string, args ...any) {
		errs = append(errs, &ConfigurationError{Field: field, Reason: fmt.Sprintf(reason, args...)})
	}
	// NaN fails every comparison, so the float checks are written to fail closed.
	positive := func(field string, v float64) {
		if !(v > 0) || math.IsInf(v, 0) {
			bad(field, "must be positive and finite, got %v", v)
		}
	}

	f := c.Field
	positive("field.width", f.Width)
	positive("field.height", f.Height)
	if !(f.MinDistance >= 0) || math.IsInf(f.MinDistance, 0) {
		bad("field.min_distance", "must be zero or positive and finite, got %v", f.MinDistance)
	}
	if f.Samples <= 0 {
		bad("field.samples", "must be positive, got %d", f.Samples)
	}
	if f.MaxAttempts <= 0 {
		bad("field.max_attempts", "must be positive, got %d", f.MaxAttempts)
	}

	fr := c.Frame
	positive("frame.lat_feet_per_degree", fr.LatFeetPerDegree)
	positive("frame.lon_feet_per_degree", fr.LonFeetPerDegree)
	if math.IsNaN(fr.EastOffsetFt) || math.IsInf(fr.EastOffsetFt, 0) {
		bad("frame.east_offset_ft", "must be finite, got %v", fr.EastOffsetFt)
	}
	switch strings.ToUpper(fr.LatitudeHemisphere) {
	case "N", "S":
	default:
		bad("frame.latitude_hemisphere", "must be N or S, got %q", fr.LatitudeHemisphere)
	}
	switch strings.ToUpper(fr.LongitudeHemisphere) {
	case "E", "W":
	default:
		bad("frame.longitude_hemisphere", "must be E or W, got %q", fr.LongitudeHemisphere)
	}

	if g := c.Grid; g.Enabled {
		positive("grid.cell_width", g.CellWidth)
		positive("grid.cell_height", g.CellHeight)
		if g.Cols <= 0 {
			bad("grid.cols", "must be positive, got %d", g.Cols)
		}
		if g.Rows <= 0 {
			bad("grid.rows", "must be positive, got %d", g.Rows)
		}
	}

	if c.Output.S2Level < int(s2.CellLevel0) || c.Output.S2Level > int(s2.CellLevel30) {
		bad("output.s2_level", "must be within 0-30, got %d", c.Output.S2Level)
	}

	return errors.Join(errs...)
}
