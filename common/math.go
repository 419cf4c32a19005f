package common

import (
	"math"

	"github.com/shopspring/decimal"
)

// https://stackoverflow.com/questions/18390266/how-can-we-truncate-float64-type-to-a-particular-precision
func Round(num float64) int {
	return int(num + math.Copysign(0.5, num))
}

// DecimalToFixed rounds num half away from zero to precision decimal places.
// Rounding happens in decimal, so 2.675 becomes 2.68 rather than 2.67.
func DecimalToFixed(num float64, precision int) float64 {
	return decimal.NewFromFloat(num).Round(int32(precision)).InexactFloat64()
}

// DecimalString formats num with exactly precision decimal places.
func DecimalString(num float64, precision int) string {
	return decimal.NewFromFloat(num).StringFixed(int32(precision))
}
