package models

import (
	"strings"
	"time"
)

type Participant struct {
	Name string `json:"name"`
}

// SessionRecord is the durable snapshot of one participant's progress,
// keyed in the store by the normalized participant name. A persist always
// overwrites the whole record (last-writer-wins, no merge).
type SessionRecord struct {
	QuestionSet string      `json:"questionSet"`
	Responses   []*Response `json:"responses"`
	Index       int         `json:"index"`
	Participant Participant `json:"participant"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// NormalizeName maps a display name to its session-store key. "Alice " and
// "alice" resolve to the same record.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// AnsweredCount counts non-empty ledger slots (answered or skipped).
func (r *SessionRecord) AnsweredCount() int {
	n := 0
	for _, resp := range r.Responses {
		if resp != nil {
			n++
		}
	}
	return n
}
