package dto

import (
	"staff-match/internal/domain/match"
	"staff-match/internal/domain/matching"
	"staff-match/internal/usecase"
)

// MatchRequest keeps the ids as raw strings; a blank id counts as absent.
type MatchRequest struct {
	CandidateID *string `json:"candidate_id"`
	JobID       *string `json:"job_id"`
	Limit       int     `json:"limit"`
}

type MatchResponse struct {
	Job        JobResponse        `json:"job"`
	Candidate  CandidateResponse  `json:"candidate"`
	MatchScore int                `json:"match_score"`
	Reasoning  matching.Reasoning `json:"reasoning"`
	MatchType  match.Type         `json:"match_type"`
}

type MatchListResponse struct {
	Success   bool            `json:"success"`
	Matches   []MatchResponse `json:"matches"`
	Count     int             `json:"count"`
	Timestamp string          `json:"timestamp"`
}

func NewMatchListResponse(results []usecase.MatchResult, timestamp string) MatchListResponse {
	out := MatchListResponse{
		Success:   true,
		Matches:   make([]MatchResponse, 0, len(results)),
		Count:     len(results),
		Timestamp: timestamp,
	}
	for _, r := range results {
		out.Matches = append(out.Matches, MatchResponse{
			Job:        NewJobResponse(r.Job),
			Candidate:  NewCandidateResponse(r.Candidate),
			MatchScore: r.MatchScore,
			Reasoning:  r.Reasoning,
			MatchType:  r.MatchType,
		})
	}
	return out
}
