package matching

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	WeightSkills       = 40
	WeightExperience   = 25
	WeightLocation     = 15
	WeightSalary       = 10
	WeightAvailability = 10

	// SuggestThreshold is the minimum score for a pair to count as a good match.
	SuggestThreshold = 60
)

type Candidate struct {
	SkillNames        []string
	ExperienceYears   *int
	Location          string
	SalaryExpectation *float64
	Status            string
}

type Job struct {
	Title          string
	Description    string
	SeniorityLevel string
	Location       string
	RemoteAllowed  bool
	SalaryMin      *float64
	SalaryMax      *float64
	SkillNames     []string
}

type Factors struct {
	Skills       float64 `json:"skills"`
	Experience   int     `json:"experience"`
	Location     int     `json:"location"`
	Salary       int     `json:"salary"`
	Availability int     `json:"availability"`
}

func (f Factors) Sum() float64 {
	return f.Skills + float64(f.Experience+f.Location+f.Salary+f.Availability)
}

func Evaluate(c Candidate, j Job) Factors {
	return Factors{
		Skills:       skillsScore(c.SkillNames, j.SkillNames),
		Experience:   experienceScore(intValue(c.ExperienceYears), RequiredExperience(j)),
		Location:     locationScore(c.Location, j.Location, j.RemoteAllowed),
		Salary:       salaryScore(floatValue(c.SalaryExpectation), floatValue(j.SalaryMin), floatValue(j.SalaryMax)),
		Availability: availabilityScore(c.Status),
	}
}

// Score returns the integer compatibility score in [0, 100].
func Score(c Candidate, j Job) int {
	return clampInt(int(math.Round(math.Min(Evaluate(c, j).Sum(), 100))), 0, 100)
}

func skillsScore(candidateSkills, jobSkills []string) float64 {
	if len(jobSkills) == 0 {
		return 0
	}
	have := make(map[string]struct{}, len(candidateSkills))
	for _, s := range candidateSkills {
		have[strings.ToLower(s)] = struct{}{}
	}
	seen := make(map[string]struct{}, len(jobSkills))
	matched := 0
	for _, s := range jobSkills {
		k := strings.ToLower(s)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		if _, ok := have[k]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(jobSkills)) * WeightSkills
}

var seniorityYears = []struct {
	keyword string
	years   int
}{
	{"senior", 5},
	{"lead", 7},
	{"junior", 1},
	{"mid", 3},
}

var yearsRe = regexp.MustCompile(`(?i)(\d+)\+?\s*years?`)

// RequiredExperience infers the years a job asks for, 0 meaning no requirement.
func RequiredExperience(j Job) int {
	title := strings.ToLower(j.Title)
	seniority := strings.ToLower(j.SeniorityLevel)
	for _, s := range seniorityYears {
		if strings.Contains(seniority, s.keyword) || strings.Contains(title, s.keyword) {
			return s.years
		}
	}

	m := yearsRe.FindStringSubmatch(j.Description)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

func experienceScore(have, required int) int {
	if required <= 0 {
		return 15
	}
	c := float64(have)
	r := float64(required)
	switch {
	case c >= r:
		return 25
	case c >= 0.7*r:
		return 20
	case c >= 0.5*r:
		return 15
	default:
		return 5
	}
}

type locationRelation int

const (
	locationRemote locationRelation = iota
	locationUnknown
	locationExact
	locationSimilar
	locationDifferent
)

func relateLocations(candidateLoc, jobLoc string, remote bool) locationRelation {
	if remote {
		return locationRemote
	}
	if candidateLoc == "" || jobLoc == "" {
		return locationUnknown
	}
	c := strings.ToLower(candidateLoc)
	j := strings.ToLower(jobLoc)
	switch {
	case c == j:
		return locationExact
	case strings.Contains(c, j) || strings.Contains(j, c):
		return locationSimilar
	default:
		return locationDifferent
	}
}

func locationScore(candidateLoc, jobLoc string, remote bool) int {
	switch relateLocations(candidateLoc, jobLoc, remote) {
	case locationRemote, locationExact:
		return 15
	case locationUnknown:
		return 8
	case locationSimilar:
		return 12
	default:
		return 5
	}
}

// salaryMidpoint returns 0 when no bound is known.
func salaryMidpoint(minSalary, maxSalary float64) float64 {
	if minSalary != 0 && maxSalary != 0 {
		return (minSalary + maxSalary) / 2
	}
	if minSalary != 0 {
		return minSalary
	}
	return maxSalary
}

func salaryScore(expectation, minSalary, maxSalary float64) int {
	if expectation == 0 {
		return 5
	}
	mid := salaryMidpoint(minSalary, maxSalary)
	if mid == 0 {
		return 5
	}
	d := math.Abs(expectation-mid) / mid
	switch {
	case d <= 0.1:
		return 10
	case d <= 0.2:
		return 8
	case d <= 0.3:
		return 6
	default:
		return 3
	}
}

func availabilityScore(status string) int {
	if status == "active" {
		return WeightAvailability
	}
	return 0
}

func intValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func floatValue(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
