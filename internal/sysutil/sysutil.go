// Package sysutil carries process-level helpers that belong to startup
// rather than to any one application package.
package sysutil

import (
	"strings"

	"github.com/rs/zerolog"
)

// SetLogLevel maps the LOG_LEVEL config value onto zerolog's global level.
// Matching is case-insensitive and whitespace-tolerant; "warning" is an
// accepted alias for "warn". Unknown values fall back to info rather than
// failing startup, since a misspelled log level should never keep the
// words API from serving.
func SetLogLevel(lvl string) {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	default:
		// "info", "" and anything unrecognized
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
