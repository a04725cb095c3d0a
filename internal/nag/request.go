// Package nag ties the time resolvers to the notification scheduler: it
// turns CLI input into a Request and runs the wait-then-decide protocol.
package nag

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/CodexForgeBR/nag/internal/schedule"
)

// ErrUnsupportedMode is returned when the mode selector is neither "in"
// nor "at".
var ErrUnsupportedMode = errors.New("unsupported mode")

// Mode selects how the target string is interpreted.
type Mode string

const (
	// ModeIn reads the target as a relative duration.
	ModeIn Mode = "in"
	// ModeAt reads the target as a clock time.
	ModeAt Mode = "at"
)

// ParseMode accepts "in" or "at", ignoring case and surrounding spaces.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeIn, ModeAt:
		return m, nil
	default:
		return "", fmt.Errorf("%w %q: only 'in' and 'at' are supported", ErrUnsupportedMode, s)
	}
}

// Resolve converts target into the wait from now.
func (m Mode) Resolve(target string, now time.Time) (time.Duration, error) {
	switch m {
	case ModeIn:
		return schedule.ParseRelative(target)
	case ModeAt:
		return schedule.ResolveAbsolute(target, now)
	default:
		return 0, fmt.Errorf("%w %q", ErrUnsupportedMode, string(m))
	}
}

// Request is one fully resolved reminder. It is built once per run and
// never modified.
type Request struct {
	Mode     Mode
	Target   string
	Message  string
	Estimate bool

	// ResolvedAt is the instant the wait was computed from.
	ResolvedAt time.Time
	// Wait is the resolved duration.
	Wait time.Duration
}

// Due is the instant the reminder is meant to fire.
func (r Request) Due() time.Time {
	return r.ResolvedAt.Add(r.Wait)
}

// NewRequest parses the mode, resolves target against clock and joins the
// message words with single spaces.
func NewRequest(clock schedule.Clock, mode, target string, message []string, estimate bool) (Request, error) {
	m, err := ParseMode(mode)
	if err != nil {
		return Request{}, err
	}

	now := clock.Now()
	wait, err := m.Resolve(target, now)
	if err != nil {
		return Request{}, fmt.Errorf("resolve %s %q: %w", m, target, err)
	}

	return Request{
		Mode:       m,
		Target:     target,
		Message:    strings.Join(message, " "),
		Estimate:   estimate,
		ResolvedAt: now,
		Wait:       wait,
	}, nil
}
