// Package utils provides small, generic helper functions used across
// different layers of the application. This file contains calendar math
// shared by the astrology and numerology providers.
package utils

import "time"

// ordinalUnixEpoch is the proleptic Gregorian day number of 1970-01-01,
// with day 1 being 0001-01-01.
const ordinalUnixEpoch = 719163

// Ordinal returns the proleptic Gregorian day number of t's UTC calendar
// date (0001-01-01 is day 1). The value depends only on the date, never on
// the time of day, so it is a stable per-day selector seed.
func Ordinal(t time.Time) int {
	u := t.UTC()
	secs := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC).Unix()
	days := secs / 86400
	if secs < 0 && secs%86400 != 0 {
		days--
	}
	return int(days) + ordinalUnixEpoch
}

// DateKey returns t's UTC calendar date as a YYYYMMDD integer,
// e.g. 19900321. Used as the numerology seed for a date.
func DateKey(t time.Time) int {
	u := t.UTC()
	return u.Year()*10000 + int(u.Month())*100 + u.Day()
}

// DateString returns t's UTC calendar date in ISO form (YYYY-MM-DD).
// Daily word records are keyed by this value.
func DateString(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
