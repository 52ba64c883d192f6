package daemon

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsPeriodically(t *testing.T) {
	s, err := NewScheduler()
	require.NoError(t, err)

	var runs atomic.Int32
	var lastTrigger atomic.Value
	id, err := s.SchedulePeriodicRebuild(context.Background(), 20*time.Millisecond, func(_ context.Context, trigger string) {
		lastTrigger.Store(trigger)
		runs.Add(1)
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	s.Start()
	require.Eventually(t, func() bool { return runs.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
	require.NoError(t, s.Stop())
	assert.Equal(t, TriggerSchedule, lastTrigger.Load())
}

func TestScheduler_RejectsInvalidInterval(t *testing.T) {
	s, err := NewScheduler()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Stop() })

	_, err = s.SchedulePeriodicRebuild(context.Background(), 0, func(context.Context, string) {})
	require.Error(t, err)
}
