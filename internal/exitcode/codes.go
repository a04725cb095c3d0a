// Package exitcode defines named exit codes for the nag CLI.
//
// Each code maps a specific termination condition to a numeric value
// recognized by shell scripts.
package exitcode

import (
	"errors"

	"github.com/CodexForgeBR/nag/internal/notification"
	"github.com/CodexForgeBR/nag/internal/schedule"
)

const (
	Success       = 0 // Reminder spoken, skipped as stale, or estimate printed
	Error         = 1 // Bad arguments, unsupported mode, config problems
	InvalidFormat = 2 // Malformed duration or clock time
	SpeechFailed  = 3 // Speech command could not run
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	case InvalidFormat:
		return "InvalidFormat"
	case SpeechFailed:
		return "SpeechFailed"
	default:
		return "unknown"
	}
}

// FromError maps err to an exit code. A nil error is Success.
func FromError(err error) int {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, schedule.ErrInvalidFormat):
		return InvalidFormat
	case errors.Is(err, notification.ErrSpeechFailed):
		return SpeechFailed
	default:
		return Error
	}
}
