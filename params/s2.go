package params

import "github.com/rotblauer/fieldsamp/s2"

// S2DefaultCellLevel is the level of the cell token attached to each sample.
// A level 23 cell is about a square meter; enough to tell neighboring samples apart.
var S2DefaultCellLevel = s2.CellLevel23
