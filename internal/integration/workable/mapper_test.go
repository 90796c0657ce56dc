package workable

import (
	"encoding/json"
	"testing"

	"staff-match/internal/domain/candidate"
	"staff-match/internal/domain/job"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapCandidate(t *testing.T) {
	var in Candidate
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 42,
		"name": "Grace",
		"email": "grace@example.com",
		"experience_years": 6.6,
		"location": "Utrecht",
		"website": "https://grace.dev",
		"summary": "Compiler person",
		"availability": "2 weeks",
		"social_profiles": [{"type": "linkedin", "url": "https://linkedin.com/in/grace"}]
	}`), &in))

	out := MapCandidate(in)
	require.NotNil(t, out.WorkableID)
	assert.Equal(t, "42", *out.WorkableID)
	assert.Equal(t, "Grace", out.Name)
	assert.Equal(t, candidate.StatusActive, out.Status)
	assert.Equal(t, []string{}, out.Skills)
	require.NotNil(t, out.ExperienceYears)
	assert.Equal(t, 7, *out.ExperienceYears)
	assert.Equal(t, "Utrecht", *out.Location)
	assert.Equal(t, "https://grace.dev", *out.PortfolioURL)
	assert.Equal(t, "Compiler person", *out.Notes)
	assert.Equal(t, "https://linkedin.com/in/grace", *out.LinkedInURL)
	assert.Equal(t, 0, out.ApplicationsCount)
}

func TestMapCandidate_NoLinkedIn(t *testing.T) {
	out := MapCandidate(Candidate{ID: "x", SocialProfiles: []SocialProfile{{Type: "github", URL: "https://github.com/x"}}})
	assert.Nil(t, out.LinkedInURL)
	assert.Nil(t, out.Location)
	assert.Nil(t, out.ExperienceYears)
}

func TestMapJob_Published(t *testing.T) {
	var in Job
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": "J9",
		"title": "Senior Go Engineer",
		"department": "Platform",
		"location": {"location_str": "Remote, EU"},
		"requirements": ["5 years Go"],
		"skills": ["Go", {"name": "Kubernetes"}],
		"salary": {"min": 70000, "max": 90000},
		"remote": true,
		"state": "published",
		"experience": "Senior"
	}`), &in))

	out := MapJob(in)
	assert.Equal(t, "J9", *out.WorkableID)
	assert.Equal(t, "Platform", *out.Company)
	assert.Equal(t, "Platform", *out.Department)
	assert.Equal(t, "Remote, EU", *out.Location)
	assert.Equal(t, []string{"5 years Go"}, out.Requirements)
	assert.Equal(t, []string{"Go", "Kubernetes"}, out.SkillsRequired)
	assert.Equal(t, 70000.0, *out.SalaryMin)
	assert.Equal(t, 90000.0, *out.SalaryMax)
	assert.Equal(t, job.DefaultEmploymentType, *out.EmploymentType)
	assert.True(t, out.RemoteAllowed)
	assert.Equal(t, job.StatusActive, out.Status)
	assert.Equal(t, "Senior", *out.SeniorityLevel)
	assert.Equal(t, 0, out.ApplicationsCount)
}

func TestMapJob_Defaults(t *testing.T) {
	out := MapJob(Job{ID: "J1", Title: "Designer", State: "draft"})
	assert.Equal(t, job.StatusPaused, out.Status)
	assert.Equal(t, job.DefaultCompany, *out.Company)
	assert.Nil(t, out.Department)
	assert.Equal(t, []string{}, out.Requirements)
	assert.Equal(t, []string{}, out.SkillsRequired)
	assert.False(t, out.RemoteAllowed)
	assert.Nil(t, out.SalaryMin)
	assert.Nil(t, out.SalaryMax)
	assert.Nil(t, out.Location)
}

func TestStringList_SingleString(t *testing.T) {
	var s StringList
	require.NoError(t, json.Unmarshal([]byte(`"Bachelor degree"`), &s))
	assert.Equal(t, StringList{"Bachelor degree"}, s)
}
