package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitUntil_PastTime(t *testing.T) {
	start := time.Now()
	err := WaitUntil(context.Background(), time.Now().Add(-1*time.Hour))

	require.NoError(t, err)
	assert.Less(t, time.Since(start), 100*time.Millisecond, "should return immediately for past time")
}

func TestWaitUntil_FutureTime(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping wait test in short mode")
	}

	start := time.Now()
	err := WaitUntil(context.Background(), start.Add(500*time.Millisecond))
	duration := time.Since(start)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, duration, 450*time.Millisecond)
	assert.Less(t, duration, 900*time.Millisecond)
}

func TestWaitUntil_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := WaitUntil(ctx, time.Now().Add(10*time.Second))

	assert.Equal(t, context.Canceled, err)
	assert.Less(t, time.Since(start), time.Second, "should cancel quickly")
}

func TestWaitUntil_ContextTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := WaitUntil(ctx, time.Now().Add(10*time.Second))
	duration := time.Since(start)

	assert.Equal(t, context.DeadlineExceeded, err)
	assert.GreaterOrEqual(t, duration, 200*time.Millisecond)
	assert.Less(t, duration, 600*time.Millisecond)
}

func TestWaitUntil_IntervalClamping(t *testing.T) {
	// The 1s interval is longer than what remains, so it must be clamped.
	start := time.Now()
	err := WaitUntil(context.Background(), start.Add(200*time.Millisecond))

	require.NoError(t, err)
	assert.Less(t, time.Since(start), 600*time.Millisecond, "should clamp interval to remaining time")
}

func TestWaitUntil_TargetExpiresBeforeFirstIteration(t *testing.T) {
	for i := 0; i < 20; i++ {
		require.NoError(t, WaitUntil(context.Background(), time.Now().Add(time.Microsecond)))
	}
}

func TestWait_ZeroDuration(t *testing.T) {
	start := time.Now()
	require.NoError(t, Wait(context.Background(), 0))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestWait_ShortDuration(t *testing.T) {
	start := time.Now()
	err := Wait(context.Background(), 150*time.Millisecond)
	duration := time.Since(start)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, duration, 150*time.Millisecond)
	assert.Less(t, duration, 600*time.Millisecond)
}

func TestWait_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, Wait(ctx, 10*time.Second), context.Canceled)
}

func TestAdaptiveInterval(t *testing.T) {
	tests := []struct {
		name      string
		remaining time.Duration
		expected  time.Duration
	}{
		{"over one hour", 2 * time.Hour, 60 * time.Second},
		{"exactly one hour", time.Hour, 30 * time.Second},
		{"over ten minutes", 30 * time.Minute, 30 * time.Second},
		{"exactly ten minutes", 10 * time.Minute, 10 * time.Second},
		{"over one minute", 5 * time.Minute, 10 * time.Second},
		{"exactly one minute", time.Minute, time.Second},
		{"under one minute", 30 * time.Second, time.Second},
		{"very small", 100 * time.Millisecond, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, adaptiveInterval(tt.remaining))
		})
	}
}
