// Package geo resolves free-text birth place names to coordinates and a
// timezone identifier. Resolution is a plain table lookup over a small
// JSON city list; it never fails. Unknown places degrade to (0, 0, UTC)
// so natal computation always has something to work with.
package geo

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
)

// Place is one city record from the lookup table.
type Place struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
	TZ  string  `json:"tz"`
}

// builtin is the minimal fallback table used when no city file is
// available or the file is malformed.
var builtin = map[string]Place{
	"Niğde, Türkiye": {Lat: 37.9667, Lon: 34.6833, TZ: "Europe/Istanbul"},
}

// Resolver answers place lookups from an immutable in-memory table.
// Construct it once at startup; it is safe for concurrent use afterwards.
type Resolver struct {
	places map[string]Place
	folded map[string]Place // case-folded keys for the second lookup pass
}

// NewResolver loads the city table from path. Loading is fail-soft: a
// missing or malformed file logs a warning and falls back to the builtin
// table, never an error.
func NewResolver(path string) *Resolver {
	places := builtin
	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			var loaded map[string]Place
			if err := json.Unmarshal(data, &loaded); err == nil && len(loaded) > 0 {
				places = loaded
			} else {
				log.Warn().Str("path", path).Msg("city table malformed, using builtin fallback")
			}
		} else {
			log.Warn().Str("path", path).Msg("city table not readable, using builtin fallback")
		}
	}

	folder := cases.Fold()
	folded := make(map[string]Place, len(places))
	for name, p := range places {
		folded[folder.String(name)] = p
	}
	return &Resolver{places: places, folded: folded}
}

// Resolve maps a place name to (latitude, longitude, timezone id).
// Lookup order: exact match, then case-insensitive match, then the
// degraded default (0, 0, "UTC"). It never returns an error.
func (r *Resolver) Resolve(place string) (lat, lon float64, tz string) {
	if p, ok := r.places[place]; ok {
		return p.Lat, p.Lon, p.TZ
	}
	if p, ok := r.folded[cases.Fold().String(place)]; ok {
		return p.Lat, p.Lon, p.TZ
	}
	return 0, 0, "UTC"
}
