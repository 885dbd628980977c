// Package numerology derives the numerological signals used by the daily
// words engine: the four core numbers computed from a person's name and
// birth date, and the digit-indexed daily energy word.
//
// The letter system is a simple A=1..Z=26 mapping over the basic Latin
// alphabet. Characters outside A–Z are ignored after Unicode upper-casing,
// which means Turkish letters such as Ş or Ğ contribute no value while
// dotless ı upper-cases to I and is counted. All functions are pure.
package numerology

import (
	"strconv"
	"strings"
	"time"

	"github.com/skullmod/go-daily-words/internal/utils"
)

// FallbackEnergyWord is returned by DailyEnergyWord when the keyword table
// has no entry for the day's digit.
const FallbackEnergyWord = "Akış"

// CoreNumbers holds the four classic numerology values for a person.
// Field order matters to the cornerstone pool builder: destiny, soul,
// personality, life path.
type CoreNumbers struct {
	Destiny     int
	Soul        int
	Personality int
	LifePath    int
}

// Slice returns the four numbers in their canonical order.
func (n CoreNumbers) Slice() [4]int {
	return [4]int{n.Destiny, n.Soul, n.Personality, n.LifePath}
}

// ReduceToDigit collapses a positive integer to a single digit (1–9) by
// repeatedly summing its decimal digits.
func ReduceToDigit(n int) int {
	for n > 9 {
		sum := 0
		for n > 0 {
			sum += n % 10
			n /= 10
		}
		n = sum
	}
	return n
}

// NameValue sums the letter values of name and reduces the total to a
// single digit. A name with no recognized letters is worth 1, never 0.
func NameValue(name string) int {
	total := 0
	for _, r := range strings.ToUpper(name) {
		if r >= 'A' && r <= 'Z' {
			total += int(r-'A') + 1
		}
	}
	if total == 0 {
		return 1
	}
	return ReduceToDigit(total)
}

// DateDigit reduces a date (as a YYYYMMDD integer) to a single digit.
func DateDigit(t time.Time) int {
	return ReduceToDigit(utils.DateKey(t))
}

// Compute returns the four core numbers for a person:
//
//   - destiny: full name (first + last)
//   - soul: vowels of the first name (1 when the name has none)
//   - personality: consonants of the first name (1 when the name has none)
//   - life path: birth date as YYYYMMDD
//
// Vowel classification uses the ASCII set a, e, i, o, u.
func Compute(firstName, lastName string, birthDate time.Time) CoreNumbers {
	var vowels, consonants strings.Builder
	for _, r := range firstName {
		if isVowel(r) {
			vowels.WriteRune(r)
		} else {
			consonants.WriteRune(r)
		}
	}

	soul := 1
	if vowels.Len() > 0 {
		soul = NameValue(vowels.String())
	}
	personality := 1
	if consonants.Len() > 0 {
		personality = NameValue(consonants.String())
	}

	return CoreNumbers{
		Destiny:     NameValue(firstName + lastName),
		Soul:        soul,
		Personality: personality,
		LifePath:    ReduceToDigit(utils.DateKey(birthDate)),
	}
}

// DailyEnergyWord picks the numerology energy word for a date from the
// digit-keyed lookup table. The day's digit selects the candidate list and
// the date's ordinal day number selects within it. When the table has no
// candidates for the digit, FallbackEnergyWord is returned.
func DailyEnergyWord(date time.Time, lookup map[string][]string) string {
	list := lookup[strconv.Itoa(DateDigit(date))]
	if len(list) == 0 {
		return FallbackEnergyWord
	}
	return list[utils.Ordinal(date)%len(list)]
}

func isVowel(r rune) bool {
	switch unicodeLower(r) {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// unicodeLower lowers a rune the way strings.ToLower does, without the
// slice round-trip. Only the vowel check needs it.
func unicodeLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
