package words

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/skullmod/go-daily-words/internal/astro"
	"github.com/skullmod/go-daily-words/internal/chinese"
	"github.com/skullmod/go-daily-words/internal/numerology"
	"github.com/skullmod/go-daily-words/internal/utils"
)

const (
	// keywordCap limits how many keywords each symbolic source may
	// contribute to the cornerstone pool.
	keywordCap = 5

	// PoolMax bounds the cornerstone pool size.
	PoolMax = 50

	// FallbackCornerstoneWord is returned by PickWord1 when the pool is
	// empty and there is nothing to select from.
	FallbackCornerstoneWord = "Odak"
)

// Engine is the word-selection engine. It combines the three symbolic
// providers (astrology, numerology, Chinese zodiac) with the static
// keyword tables. All methods are pure given the immutable tables, so a
// single Engine is shared across requests without synchronization.
type Engine struct {
	Tables *Tables
	Astro  *astro.Provider
}

// NewEngine wires an Engine from loaded tables and an astrology provider.
func NewEngine(tables *Tables, provider *astro.Provider) *Engine {
	return &Engine{Tables: tables, Astro: provider}
}

// BuildCornerstonePool assembles a person's keyword pool at registration
// time. Contribution order is fixed (sun sign, zodiac animal, element,
// then the four core numbers), each source capped at keywordCap entries,
// deduplicated by first occurrence.
//
// When the deduplicated pool still exceeds PoolMax it is truncated by a
// deterministic hash ordering seeded from the person's identity. Note the
// truncation path reorders the pool (hash order) while the common path
// preserves insertion order; this asymmetry is intentional and matched to
// the stored pools of existing users.
func (e *Engine) BuildCornerstonePool(firstName, lastName string, birthDate time.Time, birthPlace string) []string {
	natal := e.Astro.Natal(birthDate, birthPlace)
	nums := numerology.Compute(firstName, lastName, birthDate)

	var pool []string
	pool = appendCapped(pool, e.Tables.Astro[natal.SunSign])
	pool = appendCapped(pool, e.Tables.Chinese[chinese.ZodiacForYear(birthDate.Year())])
	pool = appendCapped(pool, e.Tables.Chinese[chinese.ElementForYear(birthDate.Year())])
	for _, n := range nums.Slice() {
		pool = appendCapped(pool, e.Tables.Numerology[strconv.Itoa(n)])
	}

	dedup := make([]string, 0, len(pool))
	seen := make(map[string]struct{}, len(pool))
	for _, w := range pool {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		dedup = append(dedup, w)
	}

	return truncatePool(firstName+lastName+birthPlace, dedup)
}

// truncatePool bounds a deduplicated pool at PoolMax entries. Selection is
// by a stable hash ordering seeded with the person's identity key, so the
// same person always keeps the same words. Pools within the bound pass
// through untouched, preserving insertion order.
func truncatePool(key string, pool []string) []string {
	if len(pool) <= PoolMax {
		return pool
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return Sum64(key+pool[i])%10000 < Sum64(key+pool[j])%10000
	})
	return pool[:PoolMax]
}

// PickWord2 selects the daily energy word. Both signal systems are
// computed; the date's ordinal parity decides which one speaks: astrology
// on even days, numerology on odd days. This alternation is the
// day-to-day variety mechanism and must stay a pure function of the date.
func (e *Engine) PickWord2(date time.Time, firstName, lastName string, birthDate time.Time, birthPlace string) string {
	natal := e.Astro.Natal(birthDate, birthPlace)
	transits := e.Astro.Transits(date)

	astroWord := e.Astro.DailyWord(natal, transits, date)
	numWord := numerology.DailyEnergyWord(date, e.Tables.Numerology)

	if utils.Ordinal(date)%2 == 0 {
		return astroWord
	}
	return numWord
}

// PickWord1 selects the cornerstone word for word2 from the user's pool:
// the first relationship-map candidate present in the pool wins. Without
// a candidate match a stable hash of word2 indexes into the pool, and an
// empty pool yields the fixed fallback word.
func (e *Engine) PickWord1(word2 string, pool []string) string {
	if len(pool) == 0 {
		return FallbackCornerstoneWord
	}
	member := make(map[string]struct{}, len(pool))
	for _, w := range pool {
		member[w] = struct{}{}
	}
	for _, cand := range e.Tables.Relationship[word2] {
		if _, ok := member[cand]; ok {
			return cand
		}
	}
	return pool[Index(word2, len(pool))]
}

// BuildMotto renders the day's motto. The template is chosen by a stable
// hash of the word pair, and the [word1]/[word2] markers are substituted
// verbatim (plain string replacement, no pattern matching).
func (e *Engine) BuildMotto(word1, word2 string) string {
	if len(e.Tables.Mottos) == 0 {
		return fmt.Sprintf("Bugün %s'ınız, %s yolunda size rehberlik edecek.", word1, word2)
	}
	tpl := e.Tables.Mottos[Index(word1+word2, len(e.Tables.Mottos))]
	out := strings.ReplaceAll(tpl, "[word1]", word1)
	return strings.ReplaceAll(out, "[word2]", word2)
}

// Compose produces the full daily triple (word1, word2, motto) for a user
// profile and date. It is the single entry point the daily-words service
// calls, and it performs no I/O.
func (e *Engine) Compose(firstName, lastName string, birthDate time.Time, birthPlace string, pool []string, date time.Time) (word1, word2, motto string) {
	word2 = e.PickWord2(date, firstName, lastName, birthDate, birthPlace)
	word1 = e.PickWord1(word2, pool)
	motto = e.BuildMotto(word1, word2)
	return word1, word2, motto
}

// appendCapped appends at most keywordCap entries of src to dst.
func appendCapped(dst, src []string) []string {
	if len(src) > keywordCap {
		src = src[:keywordCap]
	}
	return append(dst, src...)
}
