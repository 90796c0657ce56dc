package match

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeCandidateToJobs    Type = "candidate_to_jobs"
	TypeJobToCandidates    Type = "job_to_candidates"
	TypeSpecificMatch      Type = "specific_match"
	TypeGeneralSuggestions Type = "general_suggestions"
)

const StatusSuggested = "suggested"

// Suggestion is the persisted row in ai_matches for a scored pair.
type Suggestion struct {
	ID          uuid.UUID
	CandidateID uuid.UUID
	JobID       uuid.UUID
	MatchScore  int
	Reasoning   []byte
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
