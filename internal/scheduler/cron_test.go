package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"officehub-be/internal/pkg/logger"
	"officehub-be/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRunner struct {
	calls atomic.Int32
}

func (r *countingRunner) Run(ctx context.Context) service.RunSummary {
	r.calls.Add(1)
	return service.RunSummary{TotalDeleted: 2}
}

type fakeLocker struct {
	ok       bool
	err      error
	unlocked atomic.Bool
}

func (f *fakeLocker) TryLock(ctx context.Context) (func(), bool, error) {
	if f.err != nil || !f.ok {
		return nil, false, f.err
	}
	return func() { f.unlocked.Store(true) }, true, nil
}

func TestRunOnce_WithoutLocker(t *testing.T) {
	runner := &countingRunner{}
	s := New(runner, "", nil, nil, logger.NewNopLogger())

	summary, ran := s.RunOnce(context.Background())
	assert.True(t, ran)
	assert.Equal(t, 2, summary.TotalDeleted)
	assert.Equal(t, int32(1), runner.calls.Load())
}

func TestRunOnce_Locking(t *testing.T) {
	tests := []struct {
		name    string
		locker  *fakeLocker
		wantRun bool
	}{
		{"acquired", &fakeLocker{ok: true}, true},
		{"held elsewhere", &fakeLocker{ok: false}, false},
		{"backend error", &fakeLocker{err: errors.New("redis down")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &countingRunner{}
			s := New(runner, "", tt.locker, nil, logger.NewNopLogger())

			_, ran := s.RunOnce(context.Background())
			assert.Equal(t, tt.wantRun, ran)
			assert.Equal(t, tt.wantRun, runner.calls.Load() == 1)
			assert.Equal(t, tt.wantRun, tt.locker.unlocked.Load())
		})
	}
}

func TestStart_EmptyScheduleStaysIdle(t *testing.T) {
	s := New(&countingRunner{}, "", nil, nil, logger.NewNopLogger())

	require.NoError(t, s.Start(context.Background()))
	assert.False(t, s.IsRunning())
	assert.Nil(t, s.NextRun())
}

func TestStart_InvalidSchedule(t *testing.T) {
	s := New(&countingRunner{}, "every tuesday", nil, nil, logger.NewNopLogger())
	assert.Error(t, s.Start(context.Background()))
	assert.False(t, s.IsRunning())
}

func TestStart_StopLifecycle(t *testing.T) {
	s := New(&countingRunner{}, "0 3 * * *", nil, nil, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.Start(ctx))
	assert.True(t, s.IsRunning())

	next := s.NextRun()
	require.NotNil(t, next)
	assert.Equal(t, 3, next.Hour())
	assert.True(t, next.After(time.Now()))

	s.Stop()
	assert.False(t, s.IsRunning())
}

func TestStart_ContextCancelStops(t *testing.T) {
	s := New(&countingRunner{}, "*/5 * * * *", nil, nil, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, s.Start(ctx))
	cancel()

	assert.Eventually(t, func() bool { return !s.IsRunning() }, time.Second, 10*time.Millisecond)
}

func TestStart_RestartRegistersJobOnce(t *testing.T) {
	s := New(&countingRunner{}, "0 3 * * *", nil, nil, logger.NewNopLogger())
	first, cancelFirst := context.WithCancel(context.Background())

	require.NoError(t, s.Start(first))
	s.Stop()
	assert.Nil(t, s.NextRun())

	second, cancelSecond := context.WithCancel(context.Background())
	defer cancelSecond()
	require.NoError(t, s.Start(second))
	require.NoError(t, s.Start(second), "starting twice is a no-op")
	assert.True(t, s.IsRunning())
	assert.Len(t, s.cron.Entries(), 1)

	// Cancelling the first run's context leaves the second loop alone.
	cancelFirst()
	time.Sleep(20 * time.Millisecond)
	assert.True(t, s.IsRunning())
	assert.Len(t, s.cron.Entries(), 1)

	s.Stop()
	assert.False(t, s.IsRunning())
}
