package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation/internal/config"
	"github.com/iliyamo/hotel-reservation/internal/service"
)

type countingRunner struct{ calls atomic.Int32 }

func (r *countingRunner) RunNightly(ctx context.Context) service.NightlyResult {
	r.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		panic("nightly run without deadline")
	}
	return service.NightlyResult{StartedAt: time.Now()}
}

func TestNextRunIsTodayAtConfiguredTime(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Colombo")
	require.NoError(t, err)
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 10, 0, 0, 0, loc))

	s, err := New(config.NightlyConfig{Hour: 19, Minute: 30, Location: loc}, &countingRunner{}, gocron.WithClock(clock))
	require.NoError(t, err)
	s.Start()
	t.Cleanup(func() { _ = s.Shutdown() })

	want := time.Date(2026, 3, 1, 19, 30, 0, 0, loc)
	require.Eventually(t, func() bool {
		next, err := s.NextRun()
		return err == nil && next.Equal(want)
	}, 2*time.Second, 10*time.Millisecond)
}

func TestNextRunRollsToTomorrowAfterRunTime(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC))

	s, err := New(config.NightlyConfig{Hour: 19}, &countingRunner{}, gocron.WithClock(clock))
	require.NoError(t, err)
	s.Start()
	t.Cleanup(func() { _ = s.Shutdown() })

	want := time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC)
	require.Eventually(t, func() bool {
		next, err := s.NextRun()
		return err == nil && next.Equal(want)
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRunCallsReconcilerWithDeadline(t *testing.T) {
	r := &countingRunner{}
	run(r)
	assert.Equal(t, int32(1), r.calls.Load())
}

func TestNewRejectsInvalidTime(t *testing.T) {
	_, err := New(config.NightlyConfig{Hour: 25}, &countingRunner{})
	assert.Error(t, err)
}
