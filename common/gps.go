package common

/*
https://en.wikipedia.org/wiki/Decimal_degrees?useskin=vector

places  degrees     N/S or E/W at equator
4       0.0001      11.1 m
5       0.00001     1.11 m
6       0.000001    111 mm
7       0.0000001   11.1 mm
*/

const (
	// GPSPrecision5 is the precision for individual trees, houses
	GPSPrecision5 = 5
	// GPSPrecision6 is the precision for individual soil cores.
	GPSPrecision6 = 6
	// GPSPrecision7 is the precision for practical limit of commercial surveying
	GPSPrecision7 = 7

	// FeetPrecision is the precision local field offsets are reported at.
	FeetPrecision = 2
)
