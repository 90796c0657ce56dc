package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplain(t *testing.T) {
	c := Candidate{
		SkillNames:        []string{"React", "go", "Figma"},
		ExperienceYears:   intPtr(3),
		Location:          "Rotterdam",
		SalaryExpectation: floatPtr(50000),
		Status:            "active",
	}
	j := Job{
		Title:      "Frontend Engineer",
		Location:   "Rotterdam",
		SalaryMin:  floatPtr(45000),
		SalaryMax:  floatPtr(55000),
		SkillNames: []string{"Go", "react", "TypeScript"},
	}

	score := Score(c, j)
	r := Explain(c, j, score)

	assert.Equal(t, score, r.OverallScore)
	assert.Equal(t, []string{"React", "go"}, r.MatchingSkills)
	assert.Equal(t, 3, r.CandidateExperience)
	assert.Equal(t, "Not specified", r.JobRequirements)
	assert.Equal(t, "Perfect location match", r.LocationMatch)
	assert.Equal(t, "Expectation within range", r.SalaryAlignment)
	assert.Equal(t, Recommendation(score), r.Recommendation)
	assert.InDelta(t, float64(score), r.Factors.Sum(), 0.5)
}

func TestExplain_EmptyMatchingSkillsIsNotNil(t *testing.T) {
	r := Explain(Candidate{}, Job{SeniorityLevel: "Lead"}, 0)
	assert.NotNil(t, r.MatchingSkills)
	assert.Empty(t, r.MatchingSkills)
	assert.Equal(t, "Lead", r.JobRequirements)
	assert.Equal(t, 0, r.CandidateExperience)
}

func TestLocationLabel(t *testing.T) {
	assert.Equal(t, "Remote work available", LocationLabel("", "", true))
	assert.Equal(t, "Location unknown", LocationLabel("Paris", "", false))
	assert.Equal(t, "Perfect location match", LocationLabel("PARIS", "paris", false))
	assert.Equal(t, "Similar location", LocationLabel("Paris", "Paris, France", false))
	assert.Equal(t, "Different locations", LocationLabel("Paris", "Lyon", false))
}

func TestSalaryLabel(t *testing.T) {
	assert.Equal(t, "Salary not specified", SalaryLabel(0, 10, 20))
	assert.Equal(t, "Salary not specified", SalaryLabel(15, 0, 0))
	assert.Equal(t, "Expectation within range", SalaryLabel(15, 10, 20))
	assert.Equal(t, "Expectation below range", SalaryLabel(5, 10, 20))
	assert.Equal(t, "Expectation above range", SalaryLabel(25, 10, 20))
	assert.Equal(t, "Well aligned", SalaryLabel(105, 100, 0))
	assert.Equal(t, "Well aligned", SalaryLabel(95, 0, 100))
	assert.Equal(t, "Expects higher salary", SalaryLabel(120, 100, 0))
	assert.Equal(t, "Expects lower salary", SalaryLabel(80, 0, 100))
}

func TestRecommendation(t *testing.T) {
	assert.Equal(t, "Excellent match", Recommendation(80))
	assert.Equal(t, "Good match", Recommendation(79))
	assert.Equal(t, "Good match", Recommendation(60))
	assert.Equal(t, "Potential match", Recommendation(40))
	assert.Equal(t, "Poor match", Recommendation(39))
}
