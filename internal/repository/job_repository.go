package repository

import (
	"context"
	"errors"

	"staff-match/internal/database"
	"staff-match/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

type JobRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	// ListActive returns active jobs in insertion order; limit <= 0 means no limit.
	ListActive(ctx context.Context, limit int) ([]job.Job, error)
	UpsertByWorkableID(ctx context.Context, j job.Job) (uuid.UUID, error)
	Count(ctx context.Context) (int, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, workable_id, title, company, department, location, description,
	requirements, skills_required, salary_min::float8, salary_max::float8, employment_type,
	remote_allowed, status, applications_count, seniority_level, created_at, updated_at`

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(
		&j.ID, &j.WorkableID, &j.Title, &j.Company, &j.Department, &j.Location, &j.Description,
		&j.Requirements, &j.SkillsRequired, &j.SalaryMin, &j.SalaryMax, &j.EmploymentType,
		&j.RemoteAllowed, &j.Status, &j.ApplicationsCount, &j.SeniorityLevel, &j.CreatedAt, &j.UpdatedAt,
	)
	if j.Requirements == nil {
		j.Requirements = []string{}
	}
	if j.SkillsRequired == nil {
		j.SkillsRequired = []string{}
	}
	return j, err
}

func (r *PostgresJobRepository) FindByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, err := scanJob(r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}

	list := []job.Job{j}
	if err := r.attachSkills(ctx, list); err != nil {
		return job.Job{}, err
	}
	return list[0], nil
}

func (r *PostgresJobRepository) ListActive(ctx context.Context, limit int) ([]job.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE status = $1 ORDER BY created_at ASC, id ASC`
	args := []any{job.StatusActive}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachSkills(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) attachSkills(ctx context.Context, list []job.Job) error {
	if len(list) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(list))
	idx := make(map[uuid.UUID]int, len(list))
	for i, j := range list {
		ids = append(ids, j.ID)
		idx[j.ID] = i
		list[i].JobSkills = []job.JobSkill{}
	}

	rows, err := r.db.Query(ctx,
		`SELECT js.job_id, js.skill_id, js.required, js.importance_level, s.name, s.category
		 FROM job_skills js
		 JOIN skills s ON s.id = js.skill_id
		 WHERE js.job_id = ANY($1::uuid[])
		 ORDER BY js.created_at ASC, s.name ASC`,
		uuidStrings(ids),
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var owner uuid.UUID
		var js job.JobSkill
		if err := rows.Scan(&owner, &js.SkillID, &js.Required, &js.ImportanceLevel, &js.SkillName, &js.SkillCategory); err != nil {
			return err
		}
		if i, ok := idx[owner]; ok {
			list[i].JobSkills = append(list[i].JobSkills, js)
		}
	}
	return rows.Err()
}

// UpsertByWorkableID writes the job and links skills_required in one transaction.
func (r *PostgresJobRepository) UpsertByWorkableID(ctx context.Context, j job.Job) (uuid.UUID, error) {
	if j.WorkableID == nil || *j.WorkableID == "" {
		return uuid.Nil, errors.New("job upsert: empty workable id")
	}
	if j.Requirements == nil {
		j.Requirements = []string{}
	}
	if j.SkillsRequired == nil {
		j.SkillsRequired = []string{}
	}
	if j.Status == "" {
		j.Status = job.StatusActive
	}

	var id uuid.UUID
	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO jobs (
				id, workable_id, title, company, department, location, description, requirements,
				skills_required, salary_min, salary_max, employment_type, remote_allowed, status,
				applications_count, seniority_level
			)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
			ON CONFLICT (workable_id) DO UPDATE SET
				title = EXCLUDED.title,
				company = EXCLUDED.company,
				department = EXCLUDED.department,
				location = EXCLUDED.location,
				description = EXCLUDED.description,
				requirements = EXCLUDED.requirements,
				skills_required = EXCLUDED.skills_required,
				salary_min = EXCLUDED.salary_min,
				salary_max = EXCLUDED.salary_max,
				employment_type = EXCLUDED.employment_type,
				remote_allowed = EXCLUDED.remote_allowed,
				status = EXCLUDED.status,
				applications_count = EXCLUDED.applications_count,
				seniority_level = EXCLUDED.seniority_level,
				updated_at = now()
			RETURNING id`,
			uuid.New(), j.WorkableID, j.Title, j.Company, j.Department, j.Location, j.Description, j.Requirements,
			j.SkillsRequired, j.SalaryMin, j.SalaryMax, j.EmploymentType, j.RemoteAllowed, j.Status,
			j.ApplicationsCount, j.SeniorityLevel,
		).Scan(&id)
		if err != nil {
			return err
		}

		skillIDs, err := ensureSkillIDs(ctx, tx, j.SkillsRequired)
		if err != nil {
			return err
		}
		for _, sid := range skillIDs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO job_skills (id, job_id, skill_id, required)
				 VALUES ($1, $2, $3, true)
				 ON CONFLICT (job_id, skill_id) DO NOTHING`,
				uuid.New(), id, sid,
			); err != nil {
				return err
			}
		}
		_, err = tx.Exec(ctx,
			`DELETE FROM job_skills WHERE job_id = $1 AND NOT (skill_id = ANY($2::uuid[]))`,
			id, uuidStrings(skillIDs),
		)
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *PostgresJobRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
