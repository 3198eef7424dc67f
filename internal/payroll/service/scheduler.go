package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/utxopayroll-backend/internal/clock"
	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	stateIdle int32 = iota
	stateRunning
)

// ScheduleConfig selects the trigger timeline. A cron expression wins over an interval.
type ScheduleConfig struct {
	Cron     string
	Interval time.Duration
}

// ParseSchedule builds a Schedule from a 5-field cron expression or a fixed interval.
func ParseSchedule(cfg ScheduleConfig) (Schedule, error) {
	if cfg.Cron != "" {
		s, err := cron.ParseStandard(cfg.Cron)
		if err != nil {
			return nil, fmt.Errorf("parse cron %q: %w", cfg.Cron, err)
		}
		return s, nil
	}
	if cfg.Interval < time.Second {
		return nil, fmt.Errorf("schedule interval %s is below one second", cfg.Interval)
	}
	return cron.Every(cfg.Interval), nil
}

// SchedulerService guarantees at most one payroll run in flight. Triggers that
// arrive while a run is in progress are dropped, never queued.
type SchedulerService struct {
	logger     *zap.Logger
	runner     PayrollRunner
	lock       Lock
	metrics    SchedulerMetrics
	schedule   Schedule
	sleep      func(context.Context, time.Duration) error
	now        func() time.Time
	runTimeout time.Duration

	state    atomic.Int32
	inflight sync.WaitGroup
}

// NewSchedulerService builds a SchedulerService. lock is optional and adds a
// cross-process guard inside the in-process one.
func NewSchedulerService(
	runner PayrollRunner,
	schedule Schedule,
	lock Lock,
	metrics SchedulerMetrics,
	runTimeout time.Duration,
	logger *zap.Logger,
) (*SchedulerService, error) {
	if runner == nil {
		return nil, errors.New("scheduler runner is required")
	}
	if schedule == nil {
		return nil, errors.New("scheduler schedule is required")
	}
	if metrics == nil {
		return nil, errors.New("scheduler metrics is required")
	}
	if runTimeout <= 0 {
		runTimeout = defaultRunTimeout
	}
	return &SchedulerService{
		logger:     logger,
		runner:     runner,
		lock:       lock,
		metrics:    metrics,
		schedule:   schedule,
		sleep:      clock.SleepWithContext,
		now:        time.Now,
		runTimeout: runTimeout,
	}, nil
}

// Running reports whether a run is in flight.
func (s *SchedulerService) Running() bool {
	return s.state.Load() == stateRunning
}

// Trigger runs payroll once if the scheduler is idle and returns
// model.ErrRunInProgress otherwise. The run is detached from ctx cancellation
// so an abandoned caller cannot interrupt a submission; it is bounded by the
// run timeout instead.
func (s *SchedulerService) Trigger(ctx context.Context, source model.TriggerSource) (model.RunResult, error) {
	if !s.state.CompareAndSwap(stateIdle, stateRunning) {
		s.metrics.ObserveTrigger(source, triggerDropped)
		return model.RunResult{}, model.ErrRunInProgress
	}
	s.inflight.Add(1)
	s.metrics.SetRunning(true)
	defer func() {
		s.state.Store(stateIdle)
		s.metrics.SetRunning(false)
		s.inflight.Done()
	}()

	runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.runTimeout)
	defer cancel()

	if s.lock != nil {
		acquired, err := s.lock.TryLock(runCtx)
		if err != nil {
			s.metrics.ObserveTrigger(source, triggerDropped)
			return model.RunResult{}, fmt.Errorf("acquire run lock: %w", err)
		}
		if !acquired {
			s.metrics.ObserveTrigger(source, triggerDropped)
			return model.RunResult{}, fmt.Errorf("%w: held by another instance", model.ErrRunInProgress)
		}
		defer func() {
			// runCtx may already be past the run timeout here.
			unlockCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), unlockTimeout)
			defer cancel()
			if err := s.lock.Unlock(unlockCtx); err != nil {
				s.logger.Warn("release run lock failed", zap.Error(err))
			}
		}()
	}

	s.metrics.ObserveTrigger(source, triggerStarted)
	return s.runner.RunPayroll(runCtx, source)
}

// Wait blocks until the run in flight, if any, has returned. Call it after
// the triggers are stopped and before closing what the run writes to.
func (s *SchedulerService) Wait() {
	s.inflight.Wait()
}

// Run fires scheduled triggers until ctx is canceled. The next tick is armed
// after each run whatever its outcome.
func (s *SchedulerService) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		now := s.now()
		next := s.schedule.Next(now)
		wait := next.Sub(now)
		s.logger.Info("next payroll run armed", zap.Time("at", next), zap.Duration("in", wait))
		if err := s.sleep(ctx, wait); err != nil {
			return err
		}
		s.fire(ctx)
	}
}

func (s *SchedulerService) fire(ctx context.Context) {
	result, err := s.Trigger(ctx, model.TriggerSchedule)
	switch {
	case errors.Is(err, model.ErrRunInProgress):
		s.logger.Warn("scheduled trigger dropped, run already in progress", zap.Error(err))
	case err != nil:
		s.logger.Error("scheduled payroll run failed", zap.Error(err), zap.String("run_id", result.RunID))
	case result.TxHash == "":
		s.logger.Info("scheduled payroll run had no recipients", zap.String("run_id", result.RunID))
	default:
		s.logger.Info("scheduled payroll run completed",
			zap.String("run_id", result.RunID),
			zap.String("tx_hash", result.TxHash),
			zap.Uint64("fee", result.FeeUnits),
		)
	}
}
