// Package scheduler triggers the auto-delete run on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"officehub-be/internal/pkg/logger"
	"officehub-be/internal/service"
	"officehub-be/pkg/lock"
	"officehub-be/pkg/metrics"

	"github.com/robfig/cron/v3"
)

const module = "SCHEDULER"

// Locker keeps two replicas from running the same tick.
type Locker interface {
	TryLock(ctx context.Context) (unlock func(), ok bool, err error)
}

type Scheduler struct {
	runner   service.IAutoDeleteScheduler
	schedule string
	locker   Locker // optional
	metrics  *metrics.SchedulerMetrics
	logger   logger.ILogger

	mu      sync.Mutex
	cron    *cron.Cron
	stopped chan struct{}
	running bool
}

func New(runner service.IAutoDeleteScheduler, schedule string, locker Locker, schedulerMetrics *metrics.SchedulerMetrics, logger logger.ILogger) *Scheduler {
	return &Scheduler{
		runner:   runner,
		schedule: schedule,
		locker:   locker,
		metrics:  schedulerMetrics,
		logger:   logger,
	}
}

func newCron() *cron.Cron {
	return cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
}

// Start registers the job on a fresh cron loop and starts it, so a
// stopped scheduler can be started again. An empty schedule leaves the
// scheduler idle. ctx cancellation stops it.
//
//   - "0 3 * * *"    daily at 3 AM
//   - "*/5 * * * *"  every five minutes
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}
	if s.schedule == "" {
		s.logger.Info(module, "Auto delete schedule not configured, scheduler idle", nil)
		return nil
	}
	if _, err := cron.ParseStandard(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.schedule, err)
	}

	c := newCron()
	if _, err := c.AddFunc(s.schedule, func() { s.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule auto delete: %w", err)
	}
	c.Start()
	stopped := make(chan struct{})
	s.cron, s.stopped, s.running = c, stopped, true

	s.logger.Info(module, "Auto delete scheduler started", map[string]interface{}{"schedule": s.schedule})

	go func() {
		select {
		case <-ctx.Done():
			s.stop(stopped)
		case <-stopped:
		}
	}()
	return nil
}

// RunOnce takes the run lock (if configured) and performs one run. ran is
// false when another replica holds the lock or the lock backend failed.
func (s *Scheduler) RunOnce(ctx context.Context) (summary service.RunSummary, ran bool) {
	if s.locker != nil {
		unlock, ok, err := s.locker.TryLock(ctx)
		if err != nil {
			s.metrics.RecordSkipped("skipped_lock_error")
			s.logger.Error(module, "Run lock unavailable, skipping tick", map[string]interface{}{"error": err.Error()})
			return summary, false
		}
		if !ok {
			s.metrics.RecordSkipped("skipped_locked")
			s.logger.Info(module, "Another instance holds the run lock, skipping tick", nil)
			return summary, false
		}
		defer unlock()
	}

	return s.runner.Run(ctx), true
}

// Stop waits for an in-flight run to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// stop only acts on the loop started alongside the given channel; a later
// Start is left alone.
func (s *Scheduler) stop(stopped chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped == stopped {
		s.stopLocked()
	}
}

func (s *Scheduler) stopLocked() {
	if !s.running {
		return
	}
	<-s.cron.Stop().Done()
	close(s.stopped)
	s.running = false
	s.logger.Info(module, "Auto delete scheduler stopped", nil)
}

func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Scheduler) NextRun() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return nil
	}
	next := entries[0].Next
	return &next
}

type redisLocker struct {
	locker *lock.RedisLocker
	name   string
	ttl    time.Duration
	logger logger.ILogger
}

// NewRedisLocker adapts a Redis lease to Locker. ttl should exceed the
// longest expected run.
func NewRedisLocker(locker *lock.RedisLocker, name string, ttl time.Duration, logger logger.ILogger) Locker {
	return &redisLocker{locker: locker, name: name, ttl: ttl, logger: logger}
}

func (r *redisLocker) TryLock(ctx context.Context) (func(), bool, error) {
	lease, err := r.locker.Acquire(ctx, r.name, r.ttl)
	if err != nil {
		return nil, false, err
	}
	if lease == nil {
		return nil, false, nil
	}
	return func() {
		// The run may have consumed ctx; release on a fresh one.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := lease.Release(releaseCtx); err != nil {
			r.logger.Warn(module, "Failed to release run lock", map[string]interface{}{
				"key":   lease.Key(),
				"error": err.Error(),
			})
		}
	}, true, nil
}
