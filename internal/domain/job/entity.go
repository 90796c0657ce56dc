package job

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive = "active"
	StatusPaused = "paused"

	DefaultCompany        = "Growth Accelerator"
	DefaultEmploymentType = "full-time"
)

type Job struct {
	ID                uuid.UUID
	WorkableID        *string
	Title             string
	Company           *string
	Department        *string
	Location          *string
	Description       *string
	Requirements      []string
	SkillsRequired    []string
	SalaryMin         *float64
	SalaryMax         *float64
	EmploymentType    *string
	RemoteAllowed     bool
	Status            string
	ApplicationsCount int
	SeniorityLevel    *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	JobSkills []JobSkill
}

type JobSkill struct {
	SkillID         uuid.UUID
	Required        bool
	ImportanceLevel *int16
	SkillName       string
	SkillCategory   string
}

func (j Job) SkillNames() []string {
	out := make([]string, 0, len(j.JobSkills))
	for _, js := range j.JobSkills {
		out = append(out, js.SkillName)
	}
	return out
}
