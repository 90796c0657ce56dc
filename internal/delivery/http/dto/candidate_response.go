package dto

import (
	"time"

	"staff-match/internal/domain/candidate"

	"github.com/google/uuid"
)

type SkillRef struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type CandidateSkillResponse struct {
	SkillID          uuid.UUID `json:"skill_id"`
	ProficiencyLevel *int16    `json:"proficiency_level"`
	Skills           SkillRef  `json:"skills"`
}

type CandidateResponse struct {
	ID                uuid.UUID                `json:"id"`
	WorkableID        *string                  `json:"workable_id"`
	Name              string                   `json:"name"`
	Email             *string                  `json:"email"`
	Phone             *string                  `json:"phone"`
	Location          *string                  `json:"location"`
	SalaryExpectation *float64                 `json:"salary_expectation"`
	ExperienceYears   *int                     `json:"experience_years"`
	Status            string                   `json:"status"`
	ApplicationsCount int                      `json:"applications_count"`
	ResumeURL         *string                  `json:"resume_url"`
	LinkedInURL       *string                  `json:"linkedin_url"`
	PortfolioURL      *string                  `json:"portfolio_url"`
	Availability      *string                  `json:"availability"`
	Notes             *string                  `json:"notes"`
	Skills            []string                 `json:"skills"`
	CandidateSkills   []CandidateSkillResponse `json:"candidate_skills"`
	CreatedAt         time.Time                `json:"created_at"`
	UpdatedAt         time.Time                `json:"updated_at"`
}

func NewCandidateResponse(c candidate.Candidate) CandidateResponse {
	out := CandidateResponse{
		ID:                c.ID,
		WorkableID:        c.WorkableID,
		Name:              c.Name,
		Email:             c.Email,
		Phone:             c.Phone,
		Location:          c.Location,
		SalaryExpectation: c.SalaryExpectation,
		ExperienceYears:   c.ExperienceYears,
		Status:            c.Status,
		ApplicationsCount: c.ApplicationsCount,
		ResumeURL:         c.ResumeURL,
		LinkedInURL:       c.LinkedInURL,
		PortfolioURL:      c.PortfolioURL,
		Availability:      c.Availability,
		Notes:             c.Notes,
		Skills:            c.Skills,
		CandidateSkills:   make([]CandidateSkillResponse, 0, len(c.CandidateSkills)),
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
	if out.Skills == nil {
		out.Skills = []string{}
	}
	for _, cs := range c.CandidateSkills {
		out.CandidateSkills = append(out.CandidateSkills, CandidateSkillResponse{
			SkillID:          cs.SkillID,
			ProficiencyLevel: cs.ProficiencyLevel,
			Skills:           SkillRef{Name: cs.SkillName, Category: cs.SkillCategory},
		})
	}
	return out
}
