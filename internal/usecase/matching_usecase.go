package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"staff-match/internal/domain/candidate"
	"staff-match/internal/domain/job"
	"staff-match/internal/domain/match"
	"staff-match/internal/domain/matching"
	"staff-match/internal/pkg/apperr"
	"staff-match/internal/repository"
	"staff-match/internal/ws"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultMatchLimit = 10

	generalCandidateCap = 50
	generalJobCap       = 20
	generalPerJob       = 3
)

type MatchRequest struct {
	CandidateID *uuid.UUID
	JobID       *uuid.UUID
	Limit       int
}

type MatchResult struct {
	Job        job.Job
	Candidate  candidate.Candidate
	MatchScore int
	Reasoning  matching.Reasoning
	MatchType  match.Type
}

type MatchNotifier interface {
	NotifyMatchSuggested(evt ws.MatchSuggestedEvent)
}

type MatchingUsecase interface {
	Match(ctx context.Context, req MatchRequest) ([]MatchResult, error)
	FindJobsForCandidate(ctx context.Context, candidateID uuid.UUID, limit int) ([]MatchResult, error)
	FindCandidatesForJob(ctx context.Context, jobID uuid.UUID, limit int) ([]MatchResult, error)
	CalculateSpecificMatch(ctx context.Context, candidateID, jobID uuid.UUID) ([]MatchResult, error)
	GenerateGeneralMatches(ctx context.Context, limit int) ([]MatchResult, error)
}

type Matching struct {
	candidates repository.CandidateRepository
	jobs       repository.JobRepository
	matches    repository.MatchRepository
	notifier   MatchNotifier
	logger     *zap.Logger
}

func NewMatchingUsecase(
	candidates repository.CandidateRepository,
	jobs repository.JobRepository,
	matches repository.MatchRepository,
	notifier MatchNotifier,
	logger *zap.Logger,
) *Matching {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matching{
		candidates: candidates,
		jobs:       jobs,
		matches:    matches,
		notifier:   notifier,
		logger:     logger.Named("matching"),
	}
}

// Match dispatches on which identifiers are present.
func (u *Matching) Match(ctx context.Context, req MatchRequest) ([]MatchResult, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultMatchLimit
	}

	switch {
	case req.CandidateID != nil && req.JobID == nil:
		return u.FindJobsForCandidate(ctx, *req.CandidateID, limit)
	case req.JobID != nil && req.CandidateID == nil:
		return u.FindCandidatesForJob(ctx, *req.JobID, limit)
	case req.CandidateID != nil && req.JobID != nil:
		return u.CalculateSpecificMatch(ctx, *req.CandidateID, *req.JobID)
	default:
		return u.GenerateGeneralMatches(ctx, limit)
	}
}

func (u *Matching) FindJobsForCandidate(ctx context.Context, candidateID uuid.UUID, limit int) ([]MatchResult, error) {
	c, err := u.candidates.FindByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return nil, apperr.NotFound(MsgCandidateNotFound, err)
		}
		return nil, apperr.Datastore(MsgCandidateNotFound, err)
	}

	jobs, err := u.jobs.ListActive(ctx, 0)
	if err != nil {
		return nil, apperr.Datastore(MsgFetchJobsFailed, err)
	}

	mc := toMatchCandidate(c)
	out := make([]MatchResult, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, score(c, mc, j, toMatchJob(j), match.TypeCandidateToJobs))
	}
	return topN(out, limit), nil
}

func (u *Matching) FindCandidatesForJob(ctx context.Context, jobID uuid.UUID, limit int) ([]MatchResult, error) {
	j, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, apperr.NotFound(MsgJobNotFound, err)
		}
		return nil, apperr.Datastore(MsgJobNotFound, err)
	}

	candidates, err := u.candidates.ListActive(ctx, 0)
	if err != nil {
		return nil, apperr.Datastore(MsgFetchCandidatesFailed, err)
	}

	mj := toMatchJob(j)
	out := make([]MatchResult, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, score(c, toMatchCandidate(c), j, mj, match.TypeJobToCandidates))
	}
	return topN(out, limit), nil
}

// CalculateSpecificMatch scores one pair and persists it as a suggestion.
func (u *Matching) CalculateSpecificMatch(ctx context.Context, candidateID, jobID uuid.UUID) ([]MatchResult, error) {
	var (
		c candidate.Candidate
		j job.Job
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		c, err = u.candidates.FindByID(gctx, candidateID)
		return err
	})
	g.Go(func() error {
		var err error
		j, err = u.jobs.FindByID(gctx, jobID)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) || errors.Is(err, repository.ErrJobNotFound) {
			return nil, apperr.NotFound(MsgCandidateOrJobNotFound, err)
		}
		return nil, apperr.Datastore(MsgCandidateOrJobNotFound, err)
	}

	res := score(c, toMatchCandidate(c), j, toMatchJob(j), match.TypeSpecificMatch)

	reasoning, err := json.Marshal(res.Reasoning)
	if err != nil {
		return nil, apperr.Internal(MsgStoreMatchFailed, err)
	}
	if _, err := u.matches.Upsert(ctx, match.Suggestion{
		CandidateID: candidateID,
		JobID:       jobID,
		MatchScore:  res.MatchScore,
		Reasoning:   reasoning,
		Status:      match.StatusSuggested,
	}); err != nil {
		return nil, apperr.Datastore(MsgStoreMatchFailed, err)
	}

	u.logger.Info("match stored",
		zap.String("candidate_id", candidateID.String()),
		zap.String("job_id", jobID.String()),
		zap.Int("score", res.MatchScore),
	)

	if u.notifier != nil && res.MatchScore >= matching.SuggestThreshold {
		u.notifier.NotifyMatchSuggested(ws.MatchSuggestedEvent{
			CandidateID:    candidateID,
			JobID:          jobID,
			MatchScore:     res.MatchScore,
			Recommendation: res.Reasoning.Recommendation,
			MatchType:      string(res.MatchType),
		})
	}

	return []MatchResult{res}, nil
}

// GenerateGeneralMatches keeps each job's best few candidates above the
// suggestion threshold, then ranks them all together.
func (u *Matching) GenerateGeneralMatches(ctx context.Context, limit int) ([]MatchResult, error) {
	var (
		candidates []candidate.Candidate
		jobs       []job.Job
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		candidates, err = u.candidates.ListActive(gctx, generalCandidateCap)
		return err
	})
	g.Go(func() error {
		var err error
		jobs, err = u.jobs.ListActive(gctx, generalJobCap)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperr.Datastore(MsgFetchGeneralFailed, err)
	}

	mcs := make([]matching.Candidate, len(candidates))
	for i, c := range candidates {
		mcs[i] = toMatchCandidate(c)
	}

	out := make([]MatchResult, 0)
	for _, j := range jobs {
		mj := toMatchJob(j)
		perJob := make([]MatchResult, 0, len(candidates))
		for i, c := range candidates {
			perJob = append(perJob, score(c, mcs[i], j, mj, match.TypeGeneralSuggestions))
		}
		for _, m := range topN(perJob, generalPerJob) {
			if m.MatchScore >= matching.SuggestThreshold {
				out = append(out, m)
			}
		}
	}

	u.logger.Debug("general matches computed",
		zap.Int("candidates", len(candidates)),
		zap.Int("jobs", len(jobs)),
		zap.Int("kept", len(out)),
	)
	return topN(out, limit), nil
}

func score(c candidate.Candidate, mc matching.Candidate, j job.Job, mj matching.Job, t match.Type) MatchResult {
	s := matching.Score(mc, mj)
	return MatchResult{
		Job:        j,
		Candidate:  c,
		MatchScore: s,
		Reasoning:  matching.Explain(mc, mj, s),
		MatchType:  t,
	}
}

// topN sorts by descending score, keeping input order for ties.
func topN(in []MatchResult, n int) []MatchResult {
	sort.SliceStable(in, func(a, b int) bool {
		return in[a].MatchScore > in[b].MatchScore
	})
	if n >= 0 && len(in) > n {
		in = in[:n]
	}
	return in
}

func toMatchCandidate(c candidate.Candidate) matching.Candidate {
	return matching.Candidate{
		SkillNames:        c.SkillNames(),
		ExperienceYears:   c.ExperienceYears,
		Location:          deref(c.Location),
		SalaryExpectation: c.SalaryExpectation,
		Status:            c.Status,
	}
}

func toMatchJob(j job.Job) matching.Job {
	return matching.Job{
		Title:          j.Title,
		Description:    deref(j.Description),
		SeniorityLevel: deref(j.SeniorityLevel),
		Location:       deref(j.Location),
		RemoteAllowed:  j.RemoteAllowed,
		SalaryMin:      j.SalaryMin,
		SalaryMax:      j.SalaryMax,
		SkillNames:     j.SkillNames(),
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

var _ MatchingUsecase = (*Matching)(nil)
