// Package anchor converts between degrees-minutes-seconds and decimal degrees,
// and projects local field offsets in feet onto GPS coordinates.
package anchor

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// dmsPattern matches "DD-MM-SS(.ss)", with any run of spaces, hyphens or colons between parts.
var dmsPattern = regexp.MustCompile(`^(\d+)[\s\-:]+(\d+)[\s\-:]+(\d+(?:\.\d+)?)$`)

// FormatError is returned when an anchor is not a degrees-minutes-seconds triplet.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("anchor %q: expected degrees-minutes-seconds, like 40-06-54", e.Input)
}

// ParseAnchor parses a DMS string into decimal degrees.
// The result is never negative; the hemisphere is the caller's concern.
func ParseAnchor(s string) (float64, error) {
	m := dmsPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, &FormatError{Input: s}
	}
	parts := make([]float64, 3)
	for i := range parts {
		v, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return 0, &FormatError{Input: s}
		}
		parts[i] = v
	}
	return parts[0] + parts[1]/60 + parts[2]/3600, nil
}

// ToDMS formats decimal degrees as "DD-MM-SS.ss".
// Degrees and minutes are truncated, not rounded. The sign is dropped.
// Seconds that would print as 60.00 carry into the minutes.
func ToDMS(dd float64) string {
	dd = math.Abs(dd)
	degrees := int(dd)
	remainder := (dd - float64(degrees)) * 60
	minutes := int(remainder)
	seconds := math.Round((remainder-float64(minutes))*60*100) / 100
	if seconds >= 60 {
		seconds -= 60
		minutes++
	}
	if minutes >= 60 {
		minutes -= 60
		degrees++
	}
	return fmt.Sprintf("%02d-%02d-%05.2f", degrees, minutes, seconds)
}

// Hemisphere signs an unsigned DMS magnitude.
type Hemisphere string

const (
	North Hemisphere = "N"
	South Hemisphere = "S"
	East  Hemisphere = "E"
	West  Hemisphere = "W"
)

// Sign is -1 for the southern and western hemispheres, otherwise 1.
func (h Hemisphere) Sign() float64 {
	switch Hemisphere(strings.ToUpper(string(h))) {
	case South, West:
		return -1
	}
	return 1
}

// ResolveCoordinate turns a configured anchor into signed decimal degrees.
// A plain number is taken as decimal degrees and keeps its own sign.
// Anything else must be DMS, and is signed by the hemisphere.
func ResolveCoordinate(coord string, h Hemisphere) (float64, error) {
	coord = strings.TrimSpace(coord)
	if v, err := strconv.ParseFloat(coord, 64); err == nil {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, &FormatError{Input: coord}
		}
		return v, nil
	}
	v, err := ParseAnchor(coord)
	if err != nil {
		return 0, err
	}
	return h.Sign() * v, nil
}
