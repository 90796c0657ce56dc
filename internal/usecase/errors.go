package usecase

const (
	MsgCandidateNotFound      = "Candidate not found"
	MsgJobNotFound            = "Job not found"
	MsgCandidateOrJobNotFound = "Candidate or job not found"
	MsgFetchJobsFailed        = "Failed to fetch jobs"
	MsgFetchCandidatesFailed  = "Failed to fetch candidates"
	MsgFetchGeneralFailed     = "Failed to fetch data for general matching"
	MsgStoreMatchFailed       = "Failed to store match"
	MsgCountFailed            = "Failed to count synced records"
	MsgSyncRunning            = "Workable sync already running"
	MsgSyncCompleted          = "Workable sync completed successfully"
)
