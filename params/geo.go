package params

// FieldGeometry describes the sampled rectangle and the sampling budget.
// All distances are in feet.
type FieldGeometry struct {
	// Width is the east-west extent of the field.
	Width float64 `mapstructure:"width"`

	// Height is the north-south extent of the field.
	Height float64 `mapstructure:"height"`

	// MinDistance is the minimum separation between any two accepted samples.
	// Zero disables the constraint; every draw is accepted.
	MinDistance float64 `mapstructure:"min_distance"`

	// Samples is the number of samples requested.
	Samples int `mapstructure:"samples"`

	// MaxAttempts bounds the number of candidate draws.
	// Sampling stops when it is exhausted, even if fewer than Samples were accepted.
	MaxAttempts int `mapstructure:"max_attempts"`
}

var DefaultFieldGeometry = FieldGeometry{
	Width:       160,
	Height:      270,
	MinDistance: 15,
	Samples:     100,
	MaxAttempts: 10_000,
}

// GeodeticFrame anchors local field coordinates to the globe.
//
// The projection is a linear flat-earth approximation: each axis has its own
// fixed feet-per-degree constant. The longitude constant should suit the anchor's
// latitude band; it is not cosine corrected, so results degrade with distance from the anchor.
type GeodeticFrame struct {
	// Latitude and Longitude are the anchor, either as decimal degrees ("40.115")
	// or as degrees-minutes-seconds ("40-06-54"). DMS values are unsigned;
	// their sign comes from the hemisphere.
	Latitude  string `mapstructure:"latitude"`
	Longitude string `mapstructure:"longitude"`

	// LatitudeHemisphere is N or S. LongitudeHemisphere is E or W.
	LatitudeHemisphere  string `mapstructure:"latitude_hemisphere"`
	LongitudeHemisphere string `mapstructure:"longitude_hemisphere"`

	// LatFeetPerDegree and LonFeetPerDegree are the linear scale constants.
	LatFeetPerDegree float64 `mapstructure:"lat_feet_per_degree"`
	LonFeetPerDegree float64 `mapstructure:"lon_feet_per_degree"`

	// EastOffsetFt is added to every local x before projecting,
	// aligning the field's x=0 edge with a point east of the anchor.
	// Use 0 when the anchor sits on the x=0 edge.
	EastOffsetFt float64 `mapstructure:"east_offset_ft"`

	// ShiftY moves record Y values into the anchor's frame (y + anchor latitude in feet).
	// Latitudes are identical either way; only the reported Y_ft differs.
	ShiftY bool `mapstructure:"shift_y"`
}

// 40°06'54" N, 88°14'50" W.
var DefaultGeodeticFrame = GeodeticFrame{
	Latitude:            "40-06-54",
	Longitude:           "88-14-50",
	LatitudeHemisphere:  "N",
	LongitudeHemisphere: "W",
	LatFeetPerDegree:    364_000,
	LonFeetPerDegree:    288_200,
	EastOffsetFt:        0,
	ShiftY:              true,
}

// PlotGrid is the fixed-size grid of plot cells laid over the field.
type PlotGrid struct {
	Enabled    bool    `mapstructure:"enabled"`
	CellWidth  float64 `mapstructure:"cell_width"`
	CellHeight float64 `mapstructure:"cell_height"`
	Cols       int     `mapstructure:"cols"`
	Rows       int     `mapstructure:"rows"`
}

// DefaultPlotGrid covers the default field with 10x8 ft plots, 16 across and 34 down.
var DefaultPlotGrid = PlotGrid{
	Enabled:    true,
	CellWidth:  10,
	CellHeight: 8,
	Cols:       16,
	Rows:       34,
}
