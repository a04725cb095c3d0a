// Package schedule turns human time expressions into concrete waits.
//
// Two input shapes are supported: a relative duration ("5", "5:30",
// "1:05:30") and an absolute clock reading ("3pm", "14:05", "9:30am").
// Both resolve to a time.Duration measured from a reference instant,
// which callers obtain from a Clock.
package schedule

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidFormat is returned for any malformed duration or clock-time
// string: wrong field count, non-numeric field, or out-of-range component.
var ErrInvalidFormat = errors.New("invalid format")

// maxSeconds is the largest whole-second count a time.Duration can hold.
const maxSeconds = uint64(math.MaxInt64 / int64(time.Second))

// ParseRelative parses a colon-delimited duration.
//
//	"45"      => 45 minutes
//	"1:30"    => 1 minute 30 seconds
//	"1:01:01" => 1 hour 1 minute 1 second
//
// Every field must be a non-negative base-10 integer. No field is capped,
// so "90" and "0:600" are both valid.
func ParseRelative(input string) (time.Duration, error) {
	parts := strings.Split(input, ":")

	var names []string
	switch len(parts) {
	case 1:
		names = []string{"minutes"}
	case 2:
		names = []string{"minutes", "seconds"}
	case 3:
		names = []string{"hours", "minutes", "seconds"}
	default:
		return 0, fmt.Errorf("%w: duration %q must be mm, mm:ss or hh:mm:ss", ErrInvalidFormat, input)
	}

	weights := map[string]uint64{"hours": 3600, "minutes": 60, "seconds": 1}

	var total uint64
	for i, part := range parts {
		name := names[i]
		v, err := parseField(part)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid %s %q", ErrInvalidFormat, name, part)
		}
		w := weights[name]
		if v > (maxSeconds-total)/w {
			return 0, fmt.Errorf("%w: duration %q is too large", ErrInvalidFormat, input)
		}
		total += v * w
	}

	return time.Duration(total) * time.Second, nil
}

// parseField parses an unsigned decimal field. Signs, blanks and
// non-digits are rejected.
func parseField(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}
