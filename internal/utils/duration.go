package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sosodev/duration"
)

// ErrInvalidDuration is returned by [ParseISODuration] for malformed input.
var ErrInvalidDuration = errors.New("invalid ISO-8601 duration")

// ParseISODuration parses an ISO-8601 duration such as "PT1H" or "P60D".
// Designators are case-insensitive. A duration needs at least one component
// and every number must carry a designator.
func ParseISODuration(s string) (time.Duration, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if strings.HasSuffix(s, "P") || strings.HasSuffix(s, "T") || endsWithDigit(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}

	d, err := duration.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidDuration, s, err)
	}
	return d.ToTimeDuration(), nil
}

func endsWithDigit(s string) bool {
	if s == "" {
		return false
	}
	last := s[len(s)-1]
	return (last >= '0' && last <= '9') || last == '.'
}

// DurationSeconds converts v to a number of seconds when v is a duration:
// a time.Duration, or a string in ISO-8601 duration form. Anything else is
// reported as not a duration.
func DurationSeconds(v any) (float64, bool) {
	switch d := v.(type) {
	case time.Duration:
		return d.Seconds(), true
	case string:
		parsed, err := ParseISODuration(d)
		if err != nil {
			return 0, false
		}
		return parsed.Seconds(), true
	default:
		return 0, false
	}
}
