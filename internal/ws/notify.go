package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	EventMatchSuggested = "match_suggested"
	EventSyncCompleted  = "sync_completed"
)

type MatchSuggestedEvent struct {
	Type           string    `json:"type"`
	CandidateID    uuid.UUID `json:"candidate_id"`
	JobID          uuid.UUID `json:"job_id"`
	MatchScore     int       `json:"match_score"`
	Recommendation string    `json:"recommendation"`
	MatchType      string    `json:"match_type"`
	Timestamp      string    `json:"timestamp"`
}

type SyncCompletedEvent struct {
	Type             string `json:"type"`
	CandidatesSynced int    `json:"candidates_synced"`
	JobsSynced       int    `json:"jobs_synced"`
	TotalCandidates  int    `json:"total_candidates"`
	TotalJobs        int    `json:"total_jobs"`
	Timestamp        string `json:"timestamp"`
}

func (h *Hub) NotifyMatchSuggested(evt MatchSuggestedEvent) {
	evt.Type = EventMatchSuggested
	if evt.Timestamp == "" {
		evt.Timestamp = now()
	}
	h.publish(evt)
}

func (h *Hub) NotifySyncCompleted(evt SyncCompletedEvent) {
	evt.Type = EventSyncCompleted
	if evt.Timestamp == "" {
		evt.Timestamp = now()
	}
	h.publish(evt)
}

func (h *Hub) publish(evt any) {
	if h == nil {
		return
	}
	b, err := json.Marshal(evt)
	if err != nil {
		h.logger.Warn("ws event encode", zap.Error(err))
		return
	}
	h.Broadcast(b)
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
