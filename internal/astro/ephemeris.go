// Package astro computes the astrological signals feeding the daily words
// engine: natal charts, daily transits, aspect classification, and the
// transit-based daily word.
//
// Positions come from an Ephemeris, a narrow numeric interface so the
// actual source is pluggable. The builtin implementation uses standard
// low-precision mean orbital elements; it is fully deterministic and good
// to well under a degree for the Sun, which is all the 30°-wide sign
// buckets and ±6° aspect orbs require.
package astro

import "math"

// Body identifies a celestial body for ephemeris calls.
type Body int

const (
	Sun Body = iota
	Moon
	Mars
)

// Ephemeris yields ecliptic positions for a Julian day. Implementations
// must be pure: the same inputs always produce the same longitudes.
type Ephemeris interface {
	// Calc returns the geocentric ecliptic longitude of body in degrees,
	// normalized to [0, 360).
	Calc(julianDay float64, body Body) float64

	// Houses returns the 12 house cusp longitudes for an observer at
	// (lat, lon); cusp 0 is the ascendant.
	Houses(julianDay float64, lat, lon float64) [12]float64
}

// JulianDay converts a Gregorian calendar moment to a Julian day number.
// hours is the fractional hour of day in Universal Time.
func JulianDay(year, month, day int, hours float64) float64 {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	jdn := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
	return float64(jdn) + (hours-12)/24
}

// j2000 is the reference epoch (2000-01-01 12:00 UT) for the mean elements.
const j2000 = 2451545.0

// MeanEphemeris is the builtin deterministic ephemeris based on mean
// orbital elements (with the equation of center applied for the Sun and
// the principal elliptic term for the Moon).
type MeanEphemeris struct{}

// Calc implements Ephemeris.
func (MeanEphemeris) Calc(julianDay float64, body Body) float64 {
	n := julianDay - j2000
	switch body {
	case Sun:
		l := 280.460 + 0.9856474*n
		g := rad(357.528 + 0.9856003*n)
		return norm360(l + 1.915*math.Sin(g) + 0.020*math.Sin(2*g))
	case Moon:
		return norm360(218.316 + 13.176396*n + 6.289*math.Sin(rad(134.963+13.064993*n)))
	case Mars:
		return norm360(355.433 + 0.52403840*n)
	}
	return 0
}

// Houses implements Ephemeris with an equal-house system: the ascendant
// from local sidereal time, then eleven further cusps at 30° steps.
func (MeanEphemeris) Houses(julianDay float64, lat, lon float64) [12]float64 {
	const obliquity = 23.4393

	lst := rad(norm360(280.46061837 + 360.98564736629*(julianDay-j2000) + lon))
	eps := rad(obliquity)
	phi := rad(lat)

	asc := deg(math.Atan2(-math.Cos(lst), math.Sin(lst)*math.Cos(eps)+math.Tan(phi)*math.Sin(eps)))

	var cusps [12]float64
	for i := range cusps {
		cusps[i] = norm360(asc + float64(i)*30)
	}
	return cusps
}

// norm360 wraps an angle into [0, 360).
func norm360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func rad(deg float64) float64 { return deg * math.Pi / 180 }
func deg(rad float64) float64 { return rad * 180 / math.Pi }
