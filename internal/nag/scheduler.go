package nag

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/CodexForgeBR/nag/internal/banner"
	"github.com/CodexForgeBR/nag/internal/logging"
	"github.com/CodexForgeBR/nag/internal/notification"
	"github.com/CodexForgeBR/nag/internal/schedule"
)

// DefaultStaleAfter is how far the wake-up may drift from the due time
// before the reminder is dropped.
const DefaultStaleAfter = 30 * time.Second

// Outcome is the terminal state of a run.
type Outcome int

const (
	// OutcomeEstimated means only the estimate was printed.
	OutcomeEstimated Outcome = iota + 1
	// OutcomeFired means the message was spoken.
	OutcomeFired
	// OutcomeSkipped means the wake-up was too far from the due time.
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeEstimated:
		return "estimated"
	case OutcomeFired:
		return "fired"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Scheduler prints the resolved target, waits for it and speaks the
// message if the wake-up is still close enough to the due time.
type Scheduler struct {
	Clock   schedule.Clock
	Speaker notification.Speaker

	// Sleep suspends for d. Defaults to schedule.Wait.
	Sleep func(ctx context.Context, d time.Duration) error
	// StaleAfter defaults to DefaultStaleAfter.
	StaleAfter time.Duration
	// Out receives the target line. Defaults to stdout.
	Out io.Writer
	// Err receives the verbose summary. Defaults to stderr.
	Err io.Writer
}

// Run drives req to its outcome. A speech failure is returned as an error
// wrapping notification.ErrSpeechFailed.
func (s *Scheduler) Run(ctx context.Context, req Request) (Outcome, error) {
	fires := schedule.FormatTarget(req.Wait, req.ResolvedAt)
	banner.PrintTarget(s.out(), fires)

	if req.Estimate {
		return OutcomeEstimated, nil
	}

	if logging.Verbose() {
		banner.PrintSummary(s.errOut(), string(req.Mode), req.Target, fires, int(req.Wait/time.Second), req.Message)
	}
	if a, ok := s.Speaker.(interface{ Available() bool }); ok && !a.Available() {
		logging.Warn(fmt.Sprintf("speech command %v not found in PATH; the reminder will fail to speak", s.Speaker))
	}

	if err := s.sleep(ctx, req.Wait); err != nil {
		return 0, fmt.Errorf("wait: %w", err)
	}

	now := s.Clock.Now()
	if !Fresh(now, req.Due(), s.staleAfter()) {
		logging.Debug(fmt.Sprintf("woke at %s, due %s: reminder is stale, skipping",
			now.Format(time.TimeOnly), req.Due().Format(time.TimeOnly)))
		return OutcomeSkipped, nil
	}

	if err := s.Speaker.Speak(ctx, req.Message); err != nil {
		return 0, err
	}
	logging.Debug("reminder spoken")
	return OutcomeFired, nil
}

// Fresh reports whether now lies within window of due, in either direction.
// Wall-clock readings are compared because the monotonic clock does not
// advance while the machine is suspended.
func Fresh(now, due time.Time, window time.Duration) bool {
	drift := now.Round(0).Sub(due.Round(0))
	if drift < 0 {
		drift = -drift
	}
	return drift < window
}

func (s *Scheduler) sleep(ctx context.Context, d time.Duration) error {
	if s.Sleep != nil {
		return s.Sleep(ctx, d)
	}
	return schedule.Wait(ctx, d)
}

func (s *Scheduler) staleAfter() time.Duration {
	if s.StaleAfter > 0 {
		return s.StaleAfter
	}
	return DefaultStaleAfter
}

func (s *Scheduler) out() io.Writer {
	if s.Out != nil {
		return s.Out
	}
	return os.Stdout
}

func (s *Scheduler) errOut() io.Writer {
	if s.Err != nil {
		return s.Err
	}
	return os.Stderr
}
