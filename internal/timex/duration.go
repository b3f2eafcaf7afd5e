// Package timex contains small time helpers used by configuration loading.
package timex

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var errInvalidDuration = errors.New("invalid duration")

// Duration wraps time.Duration so it can be read from JSON either as a string
// ("90m", "3600", "7d") or as an integer number of nanoseconds.
type Duration struct {
	Duration time.Duration
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("%w: %s", errInvalidDuration, string(b))
	}
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Duration.String())
}

// unitPattern matches a number followed by an optional unit name, the grammar
// of the Node "ms" package: "2 days", "1.5h", "10 mins", "1y".
var unitPattern = regexp.MustCompile(`(?i)^(-?\d*\.?\d+) *(milliseconds?|msecs?|ms|seconds?|secs?|s|minutes?|mins?|m|hours?|hrs?|h|days?|d|weeks?|w|years?|yrs?|y)$`)

const (
	day  = 24 * time.Hour
	week = 7 * day
	year = time.Duration(365.25 * float64(day))
)

func unitLength(name string) time.Duration {
	switch strings.ToLower(name) {
	case "milliseconds", "millisecond", "msecs", "msec", "ms":
		return time.Millisecond
	case "seconds", "second", "secs", "sec", "s":
		return time.Second
	case "minutes", "minute", "mins", "min", "m":
		return time.Minute
	case "hours", "hour", "hrs", "hr", "h":
		return time.Hour
	case "days", "day", "d":
		return day
	case "weeks", "week", "w":
		return week
	default:
		return year
	}
}

// ParseDuration accepts a bare integer meaning seconds ("3600"), a single
// number with a unit in the "ms" package grammar ("7d", "2 days", "2.5h",
// "1y") and the Go duration syntax ("1h30m").
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", errInvalidDuration)
	}

	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(secs) * time.Second, nil
	}

	if m := unitPattern.FindStringSubmatch(s); m != nil {
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", errInvalidDuration, s)
		}
		return time.Duration(n * float64(unitLength(m[2]))), nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidDuration, s)
	}
	return d, nil
}
