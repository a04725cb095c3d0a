package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Meridiem is the optional am/pm tag on a clock reading.
type Meridiem int

const (
	MeridiemNone Meridiem = iota
	MeridiemAM
	MeridiemPM
)

// String returns "am", "pm" or "".
func (m Meridiem) String() string {
	switch m {
	case MeridiemAM:
		return "am"
	case MeridiemPM:
		return "pm"
	default:
		return ""
	}
}

// ClockTime is a wall-clock reading without a date.
type ClockTime struct {
	Hour     int
	Minute   int
	Meridiem Meridiem
}

// ParseClockTime parses "H", "H:MM", "Ham", "H:MMpm" and friends. The
// am/pm suffix is case-insensitive. With a suffix the hour must be 1-12,
// without one 0-23.
func ParseClockTime(input string) (ClockTime, error) {
	var ct ClockTime

	body := strings.TrimSpace(input)
	lower := strings.ToLower(body)
	switch {
	case strings.HasSuffix(lower, "am"):
		ct.Meridiem = MeridiemAM
		body = body[:len(body)-2]
	case strings.HasSuffix(lower, "pm"):
		ct.Meridiem = MeridiemPM
		body = body[:len(body)-2]
	}

	parts := strings.Split(body, ":")
	if len(parts) > 2 {
		return ClockTime{}, fmt.Errorf("%w: time %q must be H or H:MM with optional am/pm", ErrInvalidFormat, input)
	}

	hour, err := parseField(strings.TrimSpace(parts[0]))
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: invalid hour %q", ErrInvalidFormat, parts[0])
	}
	var minute uint64
	if len(parts) == 2 {
		minute, err = parseField(strings.TrimSpace(parts[1]))
		if err != nil {
			return ClockTime{}, fmt.Errorf("%w: invalid minute %q", ErrInvalidFormat, parts[1])
		}
	}

	if ct.Meridiem == MeridiemNone {
		if hour > 23 {
			return ClockTime{}, fmt.Errorf("%w: hour %d out of range 0-23", ErrInvalidFormat, hour)
		}
	} else if hour < 1 || hour > 12 {
		return ClockTime{}, fmt.Errorf("%w: hour %d out of range 1-12 for %s", ErrInvalidFormat, hour, ct.Meridiem)
	}
	if minute > 59 {
		return ClockTime{}, fmt.Errorf("%w: minute %d out of range 0-59", ErrInvalidFormat, minute)
	}

	ct.Hour = int(hour)
	ct.Minute = int(minute)
	return ct, nil
}

// Normalize returns the 24-hour reading relative to now.
//
// An untagged reading that is already behind now's hour:minute is read as
// the afternoon/evening hour instead ("9" at 14:00 means 21:00). If that
// pushes the hour to 24 or beyond ("13" at 14:00) the reading has no
// meaning and ErrInvalidFormat is returned.
func (ct ClockTime) Normalize(now time.Time) (ClockTime, error) {
	hour := ct.Hour
	switch ct.Meridiem {
	case MeridiemAM:
		if hour == 12 {
			hour = 0
		}
	case MeridiemPM:
		if hour != 12 {
			hour += 12
		}
	default:
		if hour < now.Hour() || (hour == now.Hour() && ct.Minute < now.Minute()) {
			hour += 12
		}
	}
	if hour > 23 {
		return ClockTime{}, fmt.Errorf("%w: %d:%02d is already past and has no evening reading", ErrInvalidFormat, ct.Hour, ct.Minute)
	}
	return ClockTime{Hour: hour, Minute: ct.Minute}, nil
}

// Next returns the first instant strictly after now at which the wall clock
// reads the normalized hour:minute:00. A reading equal to or behind now
// rolls forward one calendar day.
func (ct ClockTime) Next(now time.Time) (time.Time, error) {
	n, err := ct.Normalize(now)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := now.Date()
	target := time.Date(y, m, d, n.Hour, n.Minute, 0, 0, now.Location())
	if !target.After(now) {
		target = time.Date(y, m, d+1, n.Hour, n.Minute, 0, 0, now.Location())
	}
	return target, nil
}

// ResolveAbsolute returns the wait from now until the clock reading in
// input next occurs. The result is always positive.
func ResolveAbsolute(input string, now time.Time) (time.Duration, error) {
	ct, err := ParseClockTime(input)
	if err != nil {
		return 0, err
	}
	target, err := ct.Next(now)
	if err != nil {
		return 0, err
	}
	return target.Sub(now), nil
}
