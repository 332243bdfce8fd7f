// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/franny-sync/internal/logger"
	"github.com/MKhiriev/franny-sync/models"
)

const (
	msgSyncInFlight   = "A sync is already in progress."
	msgPoolSaturated  = "All sync workers are busy."
	msgSchedulerShut  = "Sync scheduler is shut down."
	resultsBufferSize = 16
)

// TaskScheduler runs jobs on a bounded pool. At most one sync job is in
// flight; a job submitted meanwhile is rejected and a SyncInProgress result
// is delivered for it. Every submitted job produces exactly one result.
type TaskScheduler struct {
	group   *errgroup.Group
	ctx     context.Context
	cancel  context.CancelFunc
	results chan models.SyncResult

	syncing  atomic.Bool
	closed   atomic.Bool
	pending  sync.WaitGroup
	overflow sync.WaitGroup

	logger *logger.Logger
}

// NewTaskScheduler starts a scheduler with the given number of workers.
// A non-positive count means one worker. One extra slot is kept for a sync
// job that has delivered its result but not yet returned, so the consumer
// can submit the next sync as soon as it receives a result.
func NewTaskScheduler(workers int, log *logger.Logger) *TaskScheduler {
	ctx, cancel := context.WithCancel(context.Background())
	group := new(errgroup.Group)
	group.SetLimit(max(workers, 1) + 1)

	return &TaskScheduler{
		group:   group,
		ctx:     ctx,
		cancel:  cancel,
		results: make(chan models.SyncResult, resultsBufferSize),
		logger:  log,
	}
}

// Results delivers one result per submitted sync job, including rejected
// ones, until Shutdown. It is never closed. Results that overflowed the
// buffer may arrive out of submission order, and those still undelivered at
// Shutdown are dropped.
func (s *TaskScheduler) Results() <-chan models.SyncResult {
	return s.results
}

// Busy reports whether a sync job is in flight.
func (s *TaskScheduler) Busy() bool {
	return s.syncing.Load()
}

// Submit runs job on the pool without blocking. The returned error only says
// whether the job was started; the outcome always arrives on Results.
func (s *TaskScheduler) Submit(direction models.Direction, job Job) error {
	if s.closed.Load() {
		s.deliver(models.Failed(direction, models.KindUnexpectedError, msgSchedulerShut))
		return ErrSchedulerClosed
	}

	if !s.syncing.CompareAndSwap(false, true) {
		s.logger.Debug().Str("direction", string(direction)).Msg("sync rejected, another one is running")
		s.deliver(models.Failed(direction, models.KindSyncInProgress, msgSyncInFlight))
		return ErrSyncInFlight
	}

	started := s.group.TryGo(func() error {
		result := s.run(direction, job)
		s.syncing.Store(false)
		s.deliver(result)
		return nil
	})
	if !started {
		s.syncing.Store(false)
		s.logger.Warn().Str("direction", string(direction)).Msg("sync rejected, worker pool saturated")
		s.deliver(models.Failed(direction, models.KindSyncInProgress, msgPoolSaturated))
		return ErrPoolSaturated
	}

	return nil
}

// Background runs task on the pool. When every worker is busy the task
// waits for a free one instead of being dropped. Failures are logged.
func (s *TaskScheduler) Background(name string, task Task) {
	if s.closed.Load() {
		s.logger.Warn().Str("task", name).Msg("background task dropped, scheduler is shut down")
		return
	}

	fn := func() error {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error().Str("task", name).Interface("panic", r).Bytes("stack", debug.Stack()).Msg("background task panicked")
			}
		}()
		if err := task(s.ctx); err != nil {
			s.logger.Error().Err(err).Str("task", name).Msg("background task failed")
		}
		return nil
	}

	if s.group.TryGo(fn) {
		return
	}

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		s.group.Go(fn)
	}()
}

// Shutdown stops accepting work, cancels the jobs' context and waits for
// running work until ctx is done.
func (s *TaskScheduler) Shutdown(ctx context.Context) error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		_ = s.group.Wait()
		s.overflow.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for workers: %w", ctx.Err())
	}
}

// run is the outer boundary of a job: a panic still yields a result.
func (s *TaskScheduler) run(direction models.Direction, job Job) (result models.SyncResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Str("direction", string(direction)).Interface("panic", r).Bytes("stack", debug.Stack()).Msg("sync worker panicked")
			result = models.Failed(direction, models.KindUnexpectedError, fmt.Sprintf("Sync worker error: %v", r))
		}
	}()

	return job(s.ctx)
}

// deliver hands result to the consumer. A full buffer must not block the
// caller, which may be the consumer itself.
func (s *TaskScheduler) deliver(result models.SyncResult) {
	select {
	case s.results <- result:
		return
	default:
	}
	if s.ctx.Err() != nil {
		s.logger.Debug().Str("direction", string(result.Direction)).Msg("result dropped, scheduler is shut down")
		return
	}

	s.overflow.Add(1)
	go func() {
		defer s.overflow.Done()
		select {
		case s.results <- result:
		case <-s.ctx.Done():
			s.logger.Debug().Str("direction", string(result.Direction)).Msg("result dropped, scheduler is shut down")
		}
	}()
}
