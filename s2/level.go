package s2

/*
Approximate S2 cell sizes at the levels that matter for field work
(https://s2geometry.io/resources/s2cell_statistics.html):

level  average area  edge
13     1.27 km2      ~1 km
16     19793 m2      ~140 m
18     1237 m2       ~35 m
20     77 m2         ~9 m
23     1.21 m2       ~1.1 m
26     188 cm2       ~14 cm
*/

// CellLevel represents the S2 cell level, from 0-30.
type CellLevel int

const (
	// CellLevel0 covers earth in 6 cells.
	CellLevel0 CellLevel = 0

	// CellLevel13 is about a 1/2 section.
	CellLevel13 CellLevel = 13

	// CellLevel16 is approximately 140m on an edge, or an area of about 5 acres.
	CellLevel16 CellLevel = 16

	// CellLevel18 is about 100ft on a side, and has an area of about 1/4 acre.
	CellLevel18 CellLevel = 18

	CellLevel20 CellLevel = 20

	// CellLevel23 is approximately a human body; 1 square meter.
	CellLevel23 CellLevel = 23

	CellLevel26 CellLevel = 26
	CellLevel30 CellLevel = 30
)
