package usecase

import (
	"context"
	"time"

	"staff-match/internal/integration/workable"
	"staff-match/internal/pkg/apperr"
	"staff-match/internal/repository"
	"staff-match/internal/telemetry"
	"staff-match/internal/ws"

	"go.uber.org/zap"
)

const (
	SyncLockKey   = "workable:sync:lock"
	SyncStatusKey = "workable:sync:last"

	defaultSyncLockTTL = 10 * time.Minute
	syncStatusTTL      = 7 * 24 * time.Hour
)

var syncTracer = telemetry.GetTracer("staff-match/sync")

type SyncResult struct {
	Message          string    `json:"message"`
	CandidatesSynced int       `json:"candidates_synced"`
	JobsSynced       int       `json:"jobs_synced"`
	CandidatesFailed int       `json:"candidates_failed"`
	JobsFailed       int       `json:"jobs_failed"`
	TotalCandidates  int       `json:"total_candidates"`
	TotalJobs        int       `json:"total_jobs"`
	Timestamp        time.Time `json:"timestamp"`
}

// SyncStatus is the last run outcome as kept in the state store.
type SyncStatus struct {
	Success    bool        `json:"success"`
	Trigger    string      `json:"trigger"`
	Error      string      `json:"error,omitempty"`
	Result     *SyncResult `json:"result,omitempty"`
	StartedAt  time.Time   `json:"started_at"`
	FinishedAt time.Time   `json:"finished_at"`
}

type SyncStateStore interface {
	AcquireLock(ctx context.Context, key string, ttl time.Duration) (release func(), acquired bool)
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type SyncNotifier interface {
	NotifySyncCompleted(evt ws.SyncCompletedEvent)
}

type SyncUsecase interface {
	Run(ctx context.Context, trigger string) (SyncResult, error)
	LastStatus(ctx context.Context) (*SyncStatus, error)
}

type Sync struct {
	source     workable.Source
	candidates repository.CandidateRepository
	jobs       repository.JobRepository
	state      SyncStateStore
	notifier   SyncNotifier
	lockTTL    time.Duration
	logger     *zap.Logger
}

func NewSyncUsecase(
	source workable.Source,
	candidates repository.CandidateRepository,
	jobs repository.JobRepository,
	state SyncStateStore,
	notifier SyncNotifier,
	lockTTL time.Duration,
	logger *zap.Logger,
) *Sync {
	if lockTTL <= 0 {
		lockTTL = defaultSyncLockTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sync{
		source:     source,
		candidates: candidates,
		jobs:       jobs,
		state:      state,
		notifier:   notifier,
		lockTTL:    lockTTL,
		logger:     logger.Named("sync"),
	}
}

// Run pulls candidates then jobs from Workable and upserts them by workable id.
// A failing record is logged and skipped; a failing fetch aborts the run
// without undoing earlier upserts.
func (u *Sync) Run(ctx context.Context, trigger string) (SyncResult, error) {
	ctx, span := syncTracer.Start(ctx, "Sync.Run")
	defer span.End()
	span.SetAttributes(telemetry.String("sync.trigger", trigger))

	if u.source == nil || !u.source.Configured() {
		return SyncResult{}, apperr.ConfigMissing(workable.MsgMissingAPIKey, workable.ErrMissingAPIKey)
	}

	if u.state != nil {
		release, ok := u.state.AcquireLock(ctx, SyncLockKey, u.lockTTL)
		if !ok {
			return SyncResult{}, apperr.Conflict(MsgSyncRunning, nil)
		}
		defer release()
	}

	started := time.Now().UTC()
	res, err := u.run(ctx)
	if err != nil {
		span.RecordError(err)
		u.logger.Error("workable sync failed", zap.String("trigger", trigger), zap.Error(err))
		u.saveStatus(ctx, SyncStatus{
			Success:    false,
			Trigger:    trigger,
			Error:      apperr.Message(err),
			StartedAt:  started,
			FinishedAt: time.Now().UTC(),
		})
		return SyncResult{}, err
	}

	span.SetAttributes(
		telemetry.Int("sync.candidates", res.CandidatesSynced),
		telemetry.Int("sync.jobs", res.JobsSynced),
	)
	u.logger.Info("workable sync completed",
		zap.String("trigger", trigger),
		zap.Int("candidates_synced", res.CandidatesSynced),
		zap.Int("jobs_synced", res.JobsSynced),
		zap.Int("candidates_failed", res.CandidatesFailed),
		zap.Int("jobs_failed", res.JobsFailed),
		zap.Duration("elapsed", time.Since(started)),
	)

	u.saveStatus(ctx, SyncStatus{
		Success:    true,
		Trigger:    trigger,
		Result:     &res,
		StartedAt:  started,
		FinishedAt: res.Timestamp,
	})
	if u.notifier != nil {
		u.notifier.NotifySyncCompleted(ws.SyncCompletedEvent{
			CandidatesSynced: res.CandidatesSynced,
			JobsSynced:       res.JobsSynced,
			TotalCandidates:  res.TotalCandidates,
			TotalJobs:        res.TotalJobs,
		})
	}
	return res, nil
}

func (u *Sync) run(ctx context.Context) (SyncResult, error) {
	var res SyncResult

	candidates, err := u.source.ListCandidates(ctx)
	if err != nil {
		return res, err
	}
	res.CandidatesSynced = len(candidates)
	for _, in := range candidates {
		rec := workable.MapCandidate(in)
		if _, err := u.candidates.UpsertByWorkableID(ctx, rec); err != nil {
			res.CandidatesFailed++
			u.logger.Warn("error upserting candidate", zap.String("workable_id", in.ID.String()), zap.Error(err))
		}
	}

	jobs, err := u.source.ListJobs(ctx)
	if err != nil {
		return res, err
	}
	res.JobsSynced = len(jobs)
	for _, in := range jobs {
		rec := workable.MapJob(in)
		if _, err := u.jobs.UpsertByWorkableID(ctx, rec); err != nil {
			res.JobsFailed++
			u.logger.Warn("error upserting job", zap.String("workable_id", in.ID.String()), zap.Error(err))
		}
	}

	if res.TotalCandidates, err = u.candidates.Count(ctx); err != nil {
		return res, apperr.Datastore(MsgCountFailed, err)
	}
	if res.TotalJobs, err = u.jobs.Count(ctx); err != nil {
		return res, apperr.Datastore(MsgCountFailed, err)
	}

	res.Message = MsgSyncCompleted
	res.Timestamp = time.Now().UTC()
	return res, nil
}

func (u *Sync) saveStatus(ctx context.Context, st SyncStatus) {
	if u.state == nil {
		return
	}
	if err := u.state.SetJSON(ctx, SyncStatusKey, st, syncStatusTTL); err != nil {
		u.logger.Warn("store sync status", zap.Error(err))
	}
}

// LastStatus returns nil when no run has been recorded.
func (u *Sync) LastStatus(ctx context.Context) (*SyncStatus, error) {
	if u.state == nil {
		return nil, nil
	}
	var st SyncStatus
	found, err := u.state.GetJSON(ctx, SyncStatusKey, &st)
	if err != nil {
		return nil, apperr.Internal("Failed to read sync status", err)
	}
	if !found {
		return nil, nil
	}
	return &st, nil
}

var _ SyncUsecase = (*Sync)(nil)
