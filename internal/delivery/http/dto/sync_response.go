package dto

import "staff-match/internal/usecase"

type SyncResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	CandidatesSynced int    `json:"candidates_synced"`
	JobsSynced       int    `json:"jobs_synced"`
	CandidatesFailed int    `json:"candidates_failed"`
	JobsFailed       int    `json:"jobs_failed"`
	TotalCandidates  int    `json:"total_candidates"`
	TotalJobs        int    `json:"total_jobs"`
	Timestamp        string `json:"timestamp"`
}

func NewSyncResponse(r usecase.SyncResult, timestamp string) SyncResponse {
	return SyncResponse{
		Success:          true,
		Message:          r.Message,
		CandidatesSynced: r.CandidatesSynced,
		JobsSynced:       r.JobsSynced,
		CandidatesFailed: r.CandidatesFailed,
		JobsFailed:       r.JobsFailed,
		TotalCandidates:  r.TotalCandidates,
		TotalJobs:        r.TotalJobs,
		Timestamp:        timestamp,
	}
}

type SyncStatusResponse struct {
	Success bool                `json:"success"`
	Status  *usecase.SyncStatus `json:"status"`
}
