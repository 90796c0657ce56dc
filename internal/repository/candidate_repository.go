package repository

import (
	"context"
	"errors"

	"staff-match/internal/database"
	"staff-match/internal/domain/candidate"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type CandidateRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (candidate.Candidate, error)
	// ListActive returns active candidates in insertion order; limit <= 0 means no limit.
	ListActive(ctx context.Context, limit int) ([]candidate.Candidate, error)
	UpsertByWorkableID(ctx context.Context, c candidate.Candidate) (uuid.UUID, error)
	Count(ctx context.Context) (int, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

const candidateColumns = `id, workable_id, name, email, phone, location,
	salary_expectation::float8, experience_years, status, applications_count,
	resume_url, linkedin_url, portfolio_url, availability, notes, skills,
	created_at, updated_at`

func scanCandidate(row database.Row) (candidate.Candidate, error) {
	var c candidate.Candidate
	err := row.Scan(
		&c.ID, &c.WorkableID, &c.Name, &c.Email, &c.Phone, &c.Location,
		&c.SalaryExpectation, &c.ExperienceYears, &c.Status, &c.ApplicationsCount,
		&c.ResumeURL, &c.LinkedInURL, &c.PortfolioURL, &c.Availability, &c.Notes, &c.Skills,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if c.Skills == nil {
		c.Skills = []string{}
	}
	return c, err
}

func (r *PostgresCandidateRepository) FindByID(ctx context.Context, id uuid.UUID) (candidate.Candidate, error) {
	c, err := scanCandidate(r.db.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.Candidate{}, ErrCandidateNotFound
		}
		return candidate.Candidate{}, err
	}

	list := []candidate.Candidate{c}
	if err := r.attachSkills(ctx, list); err != nil {
		return candidate.Candidate{}, err
	}
	return list[0], nil
}

func (r *PostgresCandidateRepository) ListActive(ctx context.Context, limit int) ([]candidate.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE status = $1 ORDER BY created_at ASC, id ASC`
	args := []any{candidate.StatusActive}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]candidate.Candidate, 0)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachSkills(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCandidateRepository) attachSkills(ctx context.Context, list []candidate.Candidate) error {
	if len(list) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(list))
	idx := make(map[uuid.UUID]int, len(list))
	for i, c := range list {
		ids = append(ids, c.ID)
		idx[c.ID] = i
		list[i].CandidateSkills = []candidate.CandidateSkill{}
	}

	rows, err := r.db.Query(ctx,
		`SELECT cs.candidate_id, cs.skill_id, cs.proficiency_level, s.name, s.category
		 FROM candidate_skills cs
		 JOIN skills s ON s.id = cs.skill_id
		 WHERE cs.candidate_id = ANY($1::uuid[])
		 ORDER BY cs.created_at ASC, s.name ASC`,
		uuidStrings(ids),
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var owner uuid.UUID
		var cs candidate.CandidateSkill
		if err := rows.Scan(&owner, &cs.SkillID, &cs.ProficiencyLevel, &cs.SkillName, &cs.SkillCategory); err != nil {
			return err
		}
		if i, ok := idx[owner]; ok {
			list[i].CandidateSkills = append(list[i].CandidateSkills, cs)
		}
	}
	return rows.Err()
}

// UpsertByWorkableID writes the candidate and its skill links in one transaction.
func (r *PostgresCandidateRepository) UpsertByWorkableID(ctx context.Context, c candidate.Candidate) (uuid.UUID, error) {
	if c.WorkableID == nil || *c.WorkableID == "" {
		return uuid.Nil, errors.New("candidate upsert: empty workable id")
	}
	if c.Skills == nil {
		c.Skills = []string{}
	}
	if c.Status == "" {
		c.Status = candidate.StatusActive
	}

	var id uuid.UUID
	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO candidates (
				id, workable_id, name, email, phone, location, salary_expectation, experience_years,
				status, applications_count, resume_url, linkedin_url, portfolio_url, availability, notes, skills
			)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
			ON CONFLICT (workable_id) DO UPDATE SET
				name = EXCLUDED.name,
				email = EXCLUDED.email,
				phone = EXCLUDED.phone,
				location = EXCLUDED.location,
				salary_expectation = COALESCE(EXCLUDED.salary_expectation, candidates.salary_expectation),
				experience_years = EXCLUDED.experience_years,
				status = EXCLUDED.status,
				applications_count = EXCLUDED.applications_count,
				resume_url = EXCLUDED.resume_url,
				linkedin_url = EXCLUDED.linkedin_url,
				portfolio_url = EXCLUDED.portfolio_url,
				availability = EXCLUDED.availability,
				notes = EXCLUDED.notes,
				skills = EXCLUDED.skills,
				updated_at = now()
			RETURNING id`,
			uuid.New(), c.WorkableID, c.Name, c.Email, c.Phone, c.Location, c.SalaryExpectation, c.ExperienceYears,
			c.Status, c.ApplicationsCount, c.ResumeURL, c.LinkedInURL, c.PortfolioURL, c.Availability, c.Notes, c.Skills,
		).Scan(&id)
		if err != nil {
			return err
		}

		skillIDs, err := ensureSkillIDs(ctx, tx, c.Skills)
		if err != nil {
			return err
		}
		for _, sid := range skillIDs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO candidate_skills (id, candidate_id, skill_id)
				 VALUES ($1, $2, $3)
				 ON CONFLICT (candidate_id, skill_id) DO NOTHING`,
				uuid.New(), id, sid,
			); err != nil {
				return err
			}
		}
		_, err = tx.Exec(ctx,
			`DELETE FROM candidate_skills WHERE candidate_id = $1 AND NOT (skill_id = ANY($2::uuid[]))`,
			id, uuidStrings(skillIDs),
		)
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *PostgresCandidateRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
