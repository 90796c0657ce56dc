package workable

import (
	"math"
	"strings"

	"staff-match/internal/domain/candidate"
	"staff-match/internal/domain/job"
)

const (
	statePublished  = "published"
	profileLinkedIn = "linkedin"
)

func MapCandidate(in Candidate) candidate.Candidate {
	out := candidate.Candidate{
		WorkableID:        optional(in.ID.String()),
		Name:              in.Name,
		Email:             in.Email,
		Phone:             in.Phone,
		Skills:            nonNil(in.Skills),
		Status:            candidate.StatusActive,
		ApplicationsCount: len(in.Applications),
		ResumeURL:         in.ResumeURL,
		LinkedInURL:       linkedInURL(in.SocialProfiles),
		PortfolioURL:      in.Website,
		Availability:      in.Availability,
		Notes:             in.Summary,
	}
	if in.ExperienceYears != nil {
		years := int(math.Round(*in.ExperienceYears))
		out.ExperienceYears = &years
	}
	if loc := in.Location.String(); loc != "" {
		out.Location = &loc
	}
	return out
}

func MapJob(in Job) job.Job {
	company := job.DefaultCompany
	if in.Department != nil && *in.Department != "" {
		company = *in.Department
	}
	employmentType := job.DefaultEmploymentType
	if in.EmploymentType != nil && *in.EmploymentType != "" {
		employmentType = *in.EmploymentType
	}
	status := job.StatusPaused
	if in.State == statePublished {
		status = job.StatusActive
	}

	out := job.Job{
		WorkableID:        optional(in.ID.String()),
		Title:             in.Title,
		Company:           &company,
		Department:        in.Department,
		Description:       in.Description,
		Requirements:      nonNil(in.Requirements),
		SkillsRequired:    nonNil(in.Skills),
		EmploymentType:    &employmentType,
		RemoteAllowed:     in.Remote != nil && *in.Remote,
		Status:            status,
		ApplicationsCount: 0,
		SeniorityLevel:    in.Experience,
	}
	if in.Location != nil && in.Location.LocationStr != "" {
		loc := in.Location.LocationStr
		out.Location = &loc
	}
	if in.Salary != nil {
		out.SalaryMin = in.Salary.Min
		out.SalaryMax = in.Salary.Max
	}
	return out
}

func linkedInURL(profiles []SocialProfile) *string {
	for _, p := range profiles {
		if strings.EqualFold(p.Type, profileLinkedIn) {
			u := p.URL
			return &u
		}
	}
	return nil
}

func nonNil[T ~[]string](in T) []string {
	if in == nil {
		return []string{}
	}
	return []string(in)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
