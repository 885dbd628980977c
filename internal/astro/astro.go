package astro

import (
	"math"
	"time"

	"github.com/skullmod/go-daily-words/internal/geo"
	"github.com/skullmod/go-daily-words/internal/utils"
)

// signs are the 12 zodiac labels, one per 30° of ecliptic longitude
// starting at 0° Aries (Koç).
var signs = [12]string{
	"Koç", "Boğa", "İkizler", "Yengeç",
	"Aslan", "Başak", "Terazi", "Akrep",
	"Yay", "Oğlak", "Kova", "Balık",
}

// Aspect names, in the order they are tested against the angular
// separation. The first matching orb wins.
const (
	AspectConjunction = "Kavuşum"
	AspectSextile     = "Altılık"
	AspectSquare      = "Kare"
	AspectTrine       = "Üçgen"
	AspectOpposition  = "Karşıt"
	AspectNeutral     = "Nötr"
)

// aspectAngles pairs each canonical aspect angle with its name, in match
// order. All aspects share a fixed ±6° orb.
var aspectAngles = []struct {
	angle float64
	name  string
}{
	{0, AspectConjunction},
	{60, AspectSextile},
	{90, AspectSquare},
	{120, AspectTrine},
	{180, AspectOpposition},
}

// aspectOrb is the tolerance window around each canonical angle.
const aspectOrb = 6.0

// aspectWords maps an aspect to its daily energy word candidates.
var aspectWords = map[string][]string{
	AspectConjunction: {"Yoğunluk", "Netlik", "Odak"},
	AspectSextile:     {"Akış", "Uyum", "Destek"},
	AspectSquare:      {"Mücadele", "İnisiyatif", "Cesaret"},
	AspectTrine:       {"Akış", "Yaratıcılık", "Kolaylık"},
	AspectOpposition:  {"Farkındalık", "Gerilim", "Dönüşüm"},
	AspectNeutral:     {"Denge", "Sükunet", "Toplanma"},
}

// natalUTCOffsetHours is the fixed offset subtracted from the local birth
// time before the ephemeris call. This intentionally reproduces the
// historical behavior instead of a real timezone-database conversion:
// changing it would shift natal longitudes for every existing user.
const natalUTCOffsetHours = 3.0

// Natal is the birth-moment snapshot used by the words engine.
type Natal struct {
	SunLon    float64
	MoonLon   float64
	Ascendant float64
	SunSign   string
}

// Transits carries the daily positions compared against a natal chart.
type Transits struct {
	Sun  float64
	Moon float64
	Mars float64
}

// Provider computes natal charts and transits from an Ephemeris and a
// place resolver. It is stateless and safe for concurrent use.
type Provider struct {
	Geo *geo.Resolver
	Eph Ephemeris
}

// NewProvider wires a Provider with the builtin mean-element ephemeris.
func NewProvider(resolver *geo.Resolver) *Provider {
	return &Provider{Geo: resolver, Eph: MeanEphemeris{}}
}

// Natal computes the birth chart for a birth moment and place: Sun and
// Moon longitudes, the ascendant, and the Sun sign bucket.
func (p *Provider) Natal(birth time.Time, birthPlace string) Natal {
	lat, lon, _ := p.Geo.Resolve(birthPlace)

	hours := float64(birth.Hour()) + float64(birth.Minute())/60 - natalUTCOffsetHours
	jd := JulianDay(birth.Year(), int(birth.Month()), birth.Day(), hours)

	sunLon := p.Eph.Calc(jd, Sun)
	houses := p.Eph.Houses(jd, lat, lon)

	return Natal{
		SunLon:    sunLon,
		MoonLon:   p.Eph.Calc(jd, Moon),
		Ascendant: houses[0],
		SunSign:   SignForLongitude(sunLon),
	}
}

// Transits computes the daily positions for a calendar moment in true UT
// (no fixed-offset adjustment, unlike Natal).
func (p *Provider) Transits(date time.Time) Transits {
	u := date.UTC()
	hours := float64(u.Hour()) + float64(u.Minute())/60
	jd := JulianDay(u.Year(), int(u.Month()), u.Day(), hours)
	return Transits{
		Sun:  p.Eph.Calc(jd, Sun),
		Moon: p.Eph.Calc(jd, Moon),
		Mars: p.Eph.Calc(jd, Mars),
	}
}

// DailyWord selects the day's astrology energy word from the aspect the
// transiting Mars makes to the natal Sun. The date's ordinal day number
// walks the aspect's candidate list, so the word varies day to day but is
// fixed for a given date.
func (p *Provider) DailyWord(natal Natal, tr Transits, date time.Time) string {
	list := aspectWords[AngleRelation(natal.SunLon, tr.Mars)]
	return list[utils.Ordinal(date)%len(list)]
}

// SignForLongitude maps an ecliptic longitude to its zodiac sign bucket.
// Buckets are 30° wide with boundaries at each multiple of 30.
func SignForLongitude(lon float64) string {
	idx := int(norm360(lon) / 30)
	if idx > 11 {
		idx = 11 // guards the lon==360 float edge
	}
	return signs[idx]
}

// AngleRelation names the aspect between two ecliptic longitudes. The
// absolute difference is wrapped into [0, 360) and tested against the
// canonical angles in order; anything outside every orb is Nötr.
func AngleRelation(lon1, lon2 float64) string {
	diff := math.Mod(math.Abs(lon1-lon2), 360)
	for _, a := range aspectAngles {
		if math.Abs(diff-a.angle) <= aspectOrb {
			return a.name
		}
	}
	return AspectNeutral
}
