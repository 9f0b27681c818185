package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string such as "1h" or "30m", falling back
// to defaultDuration when the string does not parse. The fallback is logged
// through the global logger since config parsing can run before Configure.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().
			Err(err).
			Str("value", durationStr).
			Dur("fallback", defaultDuration).
			Msg("Could not parse duration, using fallback")
		return defaultDuration
	}
	return duration
}
