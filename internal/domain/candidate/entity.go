package candidate

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Candidate struct {
	ID                uuid.UUID
	WorkableID        *string
	Name              string
	Email             *string
	Phone             *string
	Location          *string
	SalaryExpectation *float64
	ExperienceYears   *int
	Status            string
	ApplicationsCount int
	ResumeURL         *string
	LinkedInURL       *string
	PortfolioURL      *string
	Availability      *string
	Notes             *string
	// Skills is the raw name list as received from the recruiting feed.
	Skills    []string
	CreatedAt time.Time
	UpdatedAt time.Time

	CandidateSkills []CandidateSkill
}

type CandidateSkill struct {
	SkillID          uuid.UUID
	ProficiencyLevel *int16
	SkillName        string
	SkillCategory    string
}

// SkillNames returns the associated skill names in association order.
func (c Candidate) SkillNames() []string {
	out := make([]string, 0, len(c.CandidateSkills))
	for _, cs := range c.CandidateSkills {
		out = append(out, cs.SkillName)
	}
	return out
}
