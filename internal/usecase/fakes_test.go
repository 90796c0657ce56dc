package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"staff-match/internal/domain/candidate"
	"staff-match/internal/domain/job"
	"staff-match/internal/domain/match"
	"staff-match/internal/integration/workable"
	"staff-match/internal/repository"
	"staff-match/internal/ws"

	"github.com/google/uuid"
)

type fakeCandidateRepo struct {
	mu       sync.Mutex
	items    []candidate.Candidate
	byWK     map[string]uuid.UUID
	listErr  error
	findErr  error
	failWK   map[string]bool
	upserts  int
	lastList int
}

func (f *fakeCandidateRepo) FindByID(_ context.Context, id uuid.UUID) (candidate.Candidate, error) {
	if f.findErr != nil {
		return candidate.Candidate{}, f.findErr
	}
	for _, c := range f.items {
		if c.ID == id {
			return c, nil
		}
	}
	return candidate.Candidate{}, repository.ErrCandidateNotFound
}

func (f *fakeCandidateRepo) ListActive(_ context.Context, limit int) ([]candidate.Candidate, error) {
	f.mu.Lock()
	f.lastList = limit
	f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]candidate.Candidate, 0)
	for _, c := range f.items {
		if c.Status != candidate.StatusActive {
			continue
		}
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCandidateRepo) UpsertByWorkableID(_ context.Context, c candidate.Candidate) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts++
	if f.failWK[*c.WorkableID] {
		return uuid.Nil, errors.New("constraint violation")
	}
	if f.byWK == nil {
		f.byWK = map[string]uuid.UUID{}
	}
	if id, ok := f.byWK[*c.WorkableID]; ok {
		return id, nil
	}
	c.ID = uuid.New()
	f.byWK[*c.WorkableID] = c.ID
	f.items = append(f.items, c)
	return c.ID, nil
}

func (f *fakeCandidateRepo) Count(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items), nil
}

type fakeJobRepo struct {
	mu       sync.Mutex
	items    []job.Job
	byWK     map[string]uuid.UUID
	listErr  error
	findErr  error
	upserts  int
	lastList int
}

func (f *fakeJobRepo) FindByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	if f.findErr != nil {
		return job.Job{}, f.findErr
	}
	for _, j := range f.items {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Job{}, repository.ErrJobNotFound
}

func (f *fakeJobRepo) ListActive(_ context.Context, limit int) ([]job.Job, error) {
	f.mu.Lock()
	f.lastList = limit
	f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]job.Job, 0)
	for _, j := range f.items {
		if j.Status != job.StatusActive {
			continue
		}
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, j)
	}
	return out, nil
}

func (f *fakeJobRepo) UpsertByWorkableID(_ context.Context, j job.Job) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts++
	if f.byWK == nil {
		f.byWK = map[string]uuid.UUID{}
	}
	if id, ok := f.byWK[*j.WorkableID]; ok {
		for i := range f.items {
			if f.items[i].ID == id {
				j.ID = id
				f.items[i] = j
			}
		}
		return id, nil
	}
	j.ID = uuid.New()
	f.byWK[*j.WorkableID] = j.ID
	f.items = append(f.items, j)
	return j.ID, nil
}

func (f *fakeJobRepo) Count(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items), nil
}

type pairKey struct{ c, j uuid.UUID }

type fakeMatchRepo struct {
	mu   sync.Mutex
	rows map[pairKey]match.Suggestion
	err  error
}

func (f *fakeMatchRepo) Upsert(_ context.Context, s match.Suggestion) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rows == nil {
		f.rows = map[pairKey]match.Suggestion{}
	}
	k := pairKey{s.CandidateID, s.JobID}
	if prev, ok := f.rows[k]; ok {
		s.ID = prev.ID
	} else {
		s.ID = uuid.New()
	}
	f.rows[k] = s
	return s.ID, nil
}

func (f *fakeMatchRepo) CountForPair(_ context.Context, c, j uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[pairKey{c, j}]; ok {
		return 1, nil
	}
	return 0, nil
}

type fakeSource struct {
	configured    bool
	candidates    []workable.Candidate
	jobs          []workable.Job
	candidatesErr error
	jobsErr       error
	calls         int
}

func (f *fakeSource) Configured() bool { return f.configured }

func (f *fakeSource) ListCandidates(context.Context) ([]workable.Candidate, error) {
	f.calls++
	return f.candidates, f.candidatesErr
}

func (f *fakeSource) ListJobs(context.Context) ([]workable.Job, error) {
	f.calls++
	return f.jobs, f.jobsErr
}

type fakeState struct {
	mu       sync.Mutex
	locked   bool
	released int
	saved    map[string]any
}

func (f *fakeState) AcquireLock(context.Context, string, time.Duration) (func(), bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.locked {
		return func() {}, false
	}
	f.locked = true
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.locked = false
		f.released++
	}, true
}

func (f *fakeState) GetJSON(_ context.Context, key string, out any) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.saved[key]
	if !ok {
		return false, nil
	}
	st, ok := v.(SyncStatus)
	if !ok {
		return false, errors.New("unexpected type")
	}
	*(out.(*SyncStatus)) = st
	return true, nil
}

func (f *fakeState) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saved == nil {
		f.saved = map[string]any{}
	}
	f.saved[key] = value
	return nil
}

type fakeNotifier struct {
	mu      sync.Mutex
	matches []ws.MatchSuggestedEvent
	syncs   []ws.SyncCompletedEvent
}

func (f *fakeNotifier) NotifyMatchSuggested(evt ws.MatchSuggestedEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.matches = append(f.matches, evt)
}

func (f *fakeNotifier) NotifySyncCompleted(evt ws.SyncCompletedEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.syncs = append(f.syncs, evt)
}
