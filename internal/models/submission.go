package models

import "time"

// SubmissionPayload is the exportable result bundle. It is derived from the
// working state on every call, never stored as-is: only non-empty ledger
// slots appear and completedAt is stamped at build time.
type SubmissionPayload struct {
	QuestionSet    string      `json:"questionSet"`
	CompletedAt    time.Time   `json:"completedAt"`
	Participant    Participant `json:"participant"`
	Responses      []*Response `json:"responses"`
	TotalQuestions int         `json:"totalQuestions"`
}

// Autosave statuses reported to the response endpoint.
const (
	SubmissionInProgress = "in_progress"
	SubmissionCompleted  = "completed"
)

// AutosavePayload is the submission payload plus the progress metadata the
// autosave sync layers on top.
type AutosavePayload struct {
	SubmissionPayload
	Autosave      bool   `json:"autosave"`
	Status        string `json:"status"`
	AnsweredCount int    `json:"answeredCount"`
	SkippedCount  int    `json:"skippedCount"`
}
