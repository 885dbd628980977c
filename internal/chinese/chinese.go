// Package chinese maps birth years onto the Chinese zodiac animal and
// element cycles. Both lookups are pure table walks with no I/O.
package chinese

// zodiac is the 12-year animal cycle indexed by year mod 12
// (year 0 would be Sıçan / Rat).
var zodiac = [12]string{
	"Sıçan", "Öküz", "Kaplan", "Tavşan",
	"Ejderha", "Yılan", "At", "Keçi",
	"Maymun", "Horoz", "Köpek", "Domuz",
}

// elements is the five-element cycle, advanced every two years.
var elements = [5]string{"Ağaç", "Ateş", "Toprak", "Metal", "Su"}

// ZodiacForYear returns the zodiac animal label for a Gregorian year.
func ZodiacForYear(year int) string {
	return zodiac[mod(year, 12)]
}

// ElementForYear returns the element label for a Gregorian year.
// The cycle advances in two-year periods.
func ElementForYear(year int) string {
	return elements[mod(year/2, 5)]
}

// mod is the non-negative remainder, so pre-common-era years stay in range.
func mod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}
