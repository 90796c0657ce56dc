package repository

import (
	"context"
	"errors"

	"staff-match/internal/database"
	"staff-match/internal/domain/match"

	"github.com/google/uuid"
)

type MatchRepository interface {
	Upsert(ctx context.Context, s match.Suggestion) (uuid.UUID, error)
	CountForPair(ctx context.Context, candidateID, jobID uuid.UUID) (int, error)
}

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

// Upsert keeps exactly one ai_matches row per (candidate, job).
func (r *PostgresMatchRepository) Upsert(ctx context.Context, s match.Suggestion) (uuid.UUID, error) {
	if s.CandidateID == uuid.Nil || s.JobID == uuid.Nil {
		return uuid.Nil, errors.New("match upsert: empty candidate or job id")
	}
	if s.Status == "" {
		s.Status = match.StatusSuggested
	}
	reasoning := s.Reasoning
	if len(reasoning) == 0 {
		reasoning = []byte(`{}`)
	}

	var id uuid.UUID
	err := r.db.QueryRow(ctx,
		`INSERT INTO ai_matches (id, candidate_id, job_id, match_score, reasoning, status)
		 VALUES ($1,$2,$3,$4,$5::jsonb,$6)
		 ON CONFLICT (candidate_id, job_id) DO UPDATE SET
			match_score = EXCLUDED.match_score,
			reasoning = EXCLUDED.reasoning,
			status = EXCLUDED.status,
			updated_at = now()
		 RETURNING id`,
		uuid.New(), s.CandidateID, s.JobID, s.MatchScore, string(reasoning), s.Status,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *PostgresMatchRepository) CountForPair(ctx context.Context, candidateID, jobID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM ai_matches WHERE candidate_id = $1 AND job_id = $2`,
		candidateID, jobID,
	).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}
