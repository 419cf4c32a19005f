package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/rotblauer/fieldsamp/common"
	"github.com/rotblauer/fieldsamp/types/sample"
)

// CSVColumns is the header row, in column order.
var CSVColumns = []string{
	"SampleID",
	"X_ft",
	"Y_ft",
	"Decimal_Latitude",
	"Decimal_Longitude",
	"GPS_Latitude",
	"GPS_Longitude",
	"Within_Plot",
	"S2_Cell",
}

// WriteCSV writes a header and one row per record.
// Feet are written with 2 decimal places and degrees with 6.
func WriteCSV(w io.Writer, records []sample.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVColumns); err != nil {
		return fmt.Errorf("csv write header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(csvRow(r)); err != nil {
			return fmt.Errorf("csv write %s: %w", r.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(r sample.Record) []string {
	return []string{
		r.ID,
		common.DecimalString(r.XFt, common.FeetPrecision),
		common.DecimalString(r.YFt, common.FeetPrecision),
		common.DecimalString(r.Latitude, common.GPSPrecision6),
		common.DecimalString(r.Longitude, common.GPSPrecision6),
		r.GPSLatitude,
		r.GPSLongitude,
		r.PlotID,
		r.CellToken,
	}
}
