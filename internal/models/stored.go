package models

import (
	"time"

	"gorm.io/datatypes"
)

// SessionDocument is the database row behind the durable session store: one
// row per normalized participant name, the record serialized whole into the
// document column so every persist is a full overwrite.
type SessionDocument struct {
	Key       string         `gorm:"primaryKey;size:255" json:"key"`
	Document  datatypes.JSON `gorm:"not null" json:"document"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// StoredSubmission is a payload received on the collector endpoint. Autosave
// snapshots are upserted per participant+set; final submissions insert fresh
// rows.
type StoredSubmission struct {
	ID              string         `gorm:"primaryKey;size:36" json:"id"`
	ParticipantName string         `gorm:"size:255;index" json:"participant_name"`
	QuestionSet     string         `gorm:"size:255;index" json:"question_set"`
	Status          string         `gorm:"size:20;not null" json:"status"`
	Autosave        bool           `gorm:"not null;default:false" json:"autosave"`
	AnsweredCount   int            `gorm:"not null;default:0" json:"answered_count"`
	TotalQuestions  int            `gorm:"not null;default:0" json:"total_questions"`
	Payload         datatypes.JSON `gorm:"not null" json:"payload"`
	ReceivedAt      time.Time      `gorm:"index" json:"received_at"`
}

// Organizer is a study organizer account for the authenticated API.
type Organizer struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
