package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// DateLayout is the wire format for offering dates (YYYY-MM-DD). Date
// comparisons in the offering rules are lexical, which this layout makes safe.
const DateLayout = "2006-01-02"

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// DateStamp returns today's date as a YYYY-MM-DD snapshot for the past-date rule.
func DateStamp() string {
	return time.Now().Format(DateLayout)
}
