package seeder

import (
	"context"
	"fmt"

	"staff-match/internal/database"
	"staff-match/internal/domain/candidate"
	"staff-match/internal/domain/job"
	"staff-match/internal/repository"
)

// DemoPrefix marks records created by DemoSeeder so they never collide with
// real Workable ids.
const DemoPrefix = "seed-"

// DemoSeeder upserts a small candidate and job set for local matching runs.
// Re-running it updates the same rows.
type DemoSeeder struct{}

func (DemoSeeder) Name() string { return "demo" }

func (DemoSeeder) Run(ctx context.Context, db database.DB) error {
	candidates := repository.NewPostgresCandidateRepository(db)
	jobs := repository.NewPostgresJobRepository(db)

	for _, c := range DemoCandidates() {
		if _, err := candidates.UpsertByWorkableID(ctx, c); err != nil {
			return fmt.Errorf("candidate %s: %w", c.Name, err)
		}
	}
	for _, j := range DemoJobs() {
		if _, err := jobs.UpsertByWorkableID(ctx, j); err != nil {
			return fmt.Errorf("job %s: %w", j.Title, err)
		}
	}
	return nil
}

func DemoCandidates() []candidate.Candidate {
	return []candidate.Candidate{
		{
			WorkableID:        ptr(DemoPrefix + "cand-1"),
			Name:              "Sanne de Vries",
			Email:             ptr("sanne@example.com"),
			Location:          ptr("Amsterdam"),
			SalaryExpectation: ptr(65000.0),
			ExperienceYears:   ptr(6),
			Status:            candidate.StatusActive,
			Skills:            []string{"Go", "PostgreSQL", "Docker", "Kubernetes"},
		},
		{
			WorkableID:        ptr(DemoPrefix + "cand-2"),
			Name:              "Ahmed Benali",
			Email:             ptr("ahmed@example.com"),
			Location:          ptr("Rotterdam"),
			SalaryExpectation: ptr(48000.0),
			ExperienceYears:   ptr(2),
			Status:            candidate.StatusActive,
			Skills:            []string{"JavaScript", "React", "TypeScript"},
		},
		{
			WorkableID:      ptr(DemoPrefix + "cand-3"),
			Name:            "Lotte Jansen",
			Location:        ptr("Utrecht, Netherlands"),
			ExperienceYears: ptr(9),
			Status:          candidate.StatusActive,
			Skills:          []string{"Python", "AWS", "Terraform", "Scrum"},
		},
		{
			WorkableID: ptr(DemoPrefix + "cand-4"),
			Name:       "Tom Bakker",
			Location:   ptr("Eindhoven"),
			Status:     candidate.StatusInactive,
			Skills:     []string{"Java", "MySQL"},
		},
	}
}

func DemoJobs() []job.Job {
	return []job.Job{
		{
			WorkableID:     ptr(DemoPrefix + "job-1"),
			Title:          "Senior Backend Engineer",
			Company:        ptr(job.DefaultCompany),
			Location:       ptr("Amsterdam"),
			Description:    ptr("Build matching services in Go. 5+ years of backend experience."),
			SkillsRequired: []string{"Go", "PostgreSQL", "Kubernetes"},
			SalaryMin:      ptr(60000.0),
			SalaryMax:      ptr(75000.0),
			EmploymentType: ptr(job.DefaultEmploymentType),
			Status:         job.StatusActive,
			SeniorityLevel: ptr("Senior"),
		},
		{
			WorkableID:     ptr(DemoPrefix + "job-2"),
			Title:          "Frontend Developer",
			Company:        ptr(job.DefaultCompany),
			Location:       ptr("Netherlands"),
			Description:    ptr("React and TypeScript for our client portal. 2 years experience."),
			SkillsRequired: []string{"React", "TypeScript", "JavaScript"},
			SalaryMin:      ptr(42000.0),
			SalaryMax:      ptr(52000.0),
			EmploymentType: ptr(job.DefaultEmploymentType),
			RemoteAllowed:  true,
			Status:         job.StatusActive,
		},
		{
			WorkableID:     ptr(DemoPrefix + "job-3"),
			Title:          "Cloud Platform Lead",
			Company:        ptr(job.DefaultCompany),
			Location:       ptr("Utrecht"),
			SkillsRequired: []string{"AWS", "Terraform", "Kubernetes"},
			SalaryMax:      ptr(90000.0),
			EmploymentType: ptr(job.DefaultEmploymentType),
			Status:         job.StatusActive,
			SeniorityLevel: ptr("Lead"),
		},
	}
}

func ptr[T any](v T) *T { return &v }
