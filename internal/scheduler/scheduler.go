// Package scheduler triggers the Workable sync on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"strings"

	"staff-match/internal/pkg/apperr"
	"staff-match/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const TriggerSchedule = "schedule"

type SyncRunner interface {
	Run(ctx context.Context, trigger string) (usecase.SyncResult, error)
}

// Scheduler wraps robfig/cron around a single sync job.
type Scheduler struct {
	cron   *cron.Cron
	runner SyncRunner
	spec   string
	logger *zap.Logger
}

// New validates spec. An empty spec yields a scheduler whose Start is a no-op.
func New(spec string, runner SyncRunner, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("scheduler")

	spec = strings.TrimSpace(spec)
	if spec != "" {
		if _, err := cron.ParseStandard(spec); err != nil {
			return nil, fmt.Errorf("parse sync schedule %q: %w", spec, err)
		}
	}

	cl := cronLogger{sugar: logger.Sugar()}
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		runner: runner,
		spec:   spec,
		logger: logger,
	}, nil
}

func (s *Scheduler) Enabled() bool {
	return s != nil && s.spec != "" && s.runner != nil
}

// Start registers the sync job and starts the cron loop. Jobs run with ctx.
func (s *Scheduler) Start(ctx context.Context) error {
	if !s.Enabled() {
		s.logger.Info("sync schedule not set, periodic sync disabled")
		return nil
	}
	if _, err := s.cron.AddFunc(s.spec, func() { s.runOnce(ctx) }); err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	s.cron.Start()
	s.logger.Info("cron started", zap.String("spec", s.spec))
	return nil
}

// Stop waits for a running sync to finish.
func (s *Scheduler) Stop() {
	if !s.Enabled() {
		return
	}
	<-s.cron.Stop().Done()
	s.logger.Info("cron stopped")
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	res, err := s.runner.Run(ctx, TriggerSchedule)
	switch {
	case err == nil:
		s.logger.Info("scheduled sync done",
			zap.Int("candidates_synced", res.CandidatesSynced),
			zap.Int("jobs_synced", res.JobsSynced),
		)
	case apperr.Is(err, apperr.TypeConflict):
		s.logger.Info("sync already running, skipping tick")
	default:
		s.logger.Error("scheduled sync failed", zap.Error(err))
	}
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	sugar *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.sugar.Errorw(msg, append(keysAndValues, "error", err)...)
}
