package matching

import "strings"

const notSpecified = "Not specified"

type Reasoning struct {
	OverallScore        int      `json:"overall_score"`
	MatchingSkills      []string `json:"matching_skills"`
	CandidateExperience int      `json:"candidate_experience"`
	JobRequirements     string   `json:"job_requirements"`
	LocationMatch       string   `json:"location_match"`
	SalaryAlignment     string   `json:"salary_alignment"`
	Recommendation      string   `json:"recommendation"`
	Factors             Factors  `json:"factors"`
}

func Explain(c Candidate, j Job, score int) Reasoning {
	jobRequirements := j.SeniorityLevel
	if jobRequirements == "" {
		jobRequirements = notSpecified
	}
	return Reasoning{
		OverallScore:        score,
		MatchingSkills:      MatchingSkills(c.SkillNames, j.SkillNames),
		CandidateExperience: intValue(c.ExperienceYears),
		JobRequirements:     jobRequirements,
		LocationMatch:       LocationLabel(c.Location, j.Location, j.RemoteAllowed),
		SalaryAlignment:     SalaryLabel(floatValue(c.SalaryExpectation), floatValue(j.SalaryMin), floatValue(j.SalaryMax)),
		Recommendation:      Recommendation(score),
		Factors:             Evaluate(c, j),
	}
}

// MatchingSkills keeps candidate order and casing.
func MatchingSkills(candidateSkills, jobSkills []string) []string {
	want := make(map[string]struct{}, len(jobSkills))
	for _, s := range jobSkills {
		want[strings.ToLower(s)] = struct{}{}
	}
	out := make([]string, 0)
	for _, s := range candidateSkills {
		if _, ok := want[strings.ToLower(s)]; ok {
			out = append(out, s)
		}
	}
	return out
}

func LocationLabel(candidateLoc, jobLoc string, remote bool) string {
	switch relateLocations(candidateLoc, jobLoc, remote) {
	case locationRemote:
		return "Remote work available"
	case locationUnknown:
		return "Location unknown"
	case locationExact:
		return "Perfect location match"
	case locationSimilar:
		return "Similar location"
	default:
		return "Different locations"
	}
}

func SalaryLabel(expectation, minSalary, maxSalary float64) string {
	if expectation == 0 || (minSalary == 0 && maxSalary == 0) {
		return "Salary not specified"
	}

	if minSalary != 0 && maxSalary != 0 {
		switch {
		case expectation >= minSalary && expectation <= maxSalary:
			return "Expectation within range"
		case expectation < minSalary:
			return "Expectation below range"
		default:
			return "Expectation above range"
		}
	}

	bound := salaryMidpoint(minSalary, maxSalary)
	diff := (expectation - bound) / bound * 100
	switch {
	case diff >= -10 && diff <= 10:
		return "Well aligned"
	case diff > 10:
		return "Expects higher salary"
	default:
		return "Expects lower salary"
	}
}

func Recommendation(score int) string {
	switch {
	case score >= 80:
		return "Excellent match"
	case score >= 60:
		return "Good match"
	case score >= 40:
		return "Potential match"
	default:
		return "Poor match"
	}
}
