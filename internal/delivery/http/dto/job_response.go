package dto

import (
	"time"

	"staff-match/internal/domain/job"

	"github.com/google/uuid"
)

type JobSkillResponse struct {
	SkillID         uuid.UUID `json:"skill_id"`
	Required        bool      `json:"required"`
	ImportanceLevel *int16    `json:"importance_level"`
	Skills          SkillRef  `json:"skills"`
}

type JobResponse struct {
	ID                uuid.UUID          `json:"id"`
	WorkableID        *string            `json:"workable_id"`
	Title             string             `json:"title"`
	Company           *string            `json:"company"`
	Department        *string            `json:"department"`
	Location          *string            `json:"location"`
	Description       *string            `json:"description"`
	Requirements      []string           `json:"requirements"`
	SkillsRequired    []string           `json:"skills_required"`
	SalaryMin         *float64           `json:"salary_min"`
	SalaryMax         *float64           `json:"salary_max"`
	EmploymentType    *string            `json:"employment_type"`
	RemoteAllowed     bool               `json:"remote_allowed"`
	Status            string             `json:"status"`
	ApplicationsCount int                `json:"applications_count"`
	SeniorityLevel    *string            `json:"seniority_level"`
	JobSkills         []JobSkillResponse `json:"job_skills"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

func NewJobResponse(j job.Job) JobResponse {
	out := JobResponse{
		ID:                j.ID,
		WorkableID:        j.WorkableID,
		Title:             j.Title,
		Company:           j.Company,
		Department:        j.Department,
		Location:          j.Location,
		Description:       j.Description,
		Requirements:      emptyIfNil(j.Requirements),
		SkillsRequired:    emptyIfNil(j.SkillsRequired),
		SalaryMin:         j.SalaryMin,
		SalaryMax:         j.SalaryMax,
		EmploymentType:    j.EmploymentType,
		RemoteAllowed:     j.RemoteAllowed,
		Status:            j.Status,
		ApplicationsCount: j.ApplicationsCount,
		SeniorityLevel:    j.SeniorityLevel,
		JobSkills:         make([]JobSkillResponse, 0, len(j.JobSkills)),
		CreatedAt:         j.CreatedAt,
		UpdatedAt:         j.UpdatedAt,
	}
	for _, js := range j.JobSkills {
		out.JobSkills = append(out.JobSkills, JobSkillResponse{
			SkillID:         js.SkillID,
			Required:        js.Required,
			ImportanceLevel: js.ImportanceLevel,
			Skills:          SkillRef{Name: js.SkillName, Category: js.SkillCategory},
		})
	}
	return out
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
