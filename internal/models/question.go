package models

import "fmt"

// Question is a single 2AFC prompt loaded from a question-set file. The JSON
// field names follow the study's generator scripts, so question banks produced
// for the original web tool load unchanged. A question carries either a
// videoA/videoB pair (single clip per side) or an optionA/optionB pair (one or
// more labeled clips per side).
type Question struct {
	ID             string          `json:"id,omitempty"`
	Prompt         string          `json:"prompt"`
	Axis           string          `json:"axis,omitempty"`
	AxisDetail     string          `json:"axisDetail,omitempty"`
	TargetLevel    string          `json:"targetLevel,omitempty"`
	ContextImage   string          `json:"contextImage,omitempty"`
	ContextCaption string          `json:"contextCaption,omitempty"`
	FieldID        string          `json:"fieldId,omitempty"`
	FieldLabel     string          `json:"fieldLabel,omitempty"`
	Field          *FieldInfo      `json:"field,omitempty"`
	Dataset        string          `json:"dataset,omitempty"`
	VideoA         *QuestionOption `json:"videoA,omitempty"`
	VideoB         *QuestionOption `json:"videoB,omitempty"`
	OptionA        *QuestionOption `json:"optionA,omitempty"`
	OptionB        *QuestionOption `json:"optionB,omitempty"`
	Meta           map[string]any  `json:"meta,omitempty"`
}

// QuestionOption is one side of a comparison. Older banks attach a single
// src/poster directly; newer ones carry a clips list.
type QuestionOption struct {
	Label  string `json:"label,omitempty"`
	Method string `json:"method,omitempty"`
	Src    string `json:"src,omitempty"`
	Poster string `json:"poster,omitempty"`
	Level  string `json:"level,omitempty"`
	Angle  string `json:"angle,omitempty"`
	Role   string `json:"role,omitempty"`
	Clips  []Clip `json:"clips,omitempty"`
}

type Clip struct {
	Src    string `json:"src"`
	Poster string `json:"poster,omitempty"`
	Label  string `json:"label,omitempty"`
	Level  string `json:"level,omitempty"`
}

// FieldInfo ties a question back to the table cell it was sampled for.
type FieldInfo struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Axis      string `json:"axis"`
	Method    string `json:"method"`
	Attribute string `json:"attribute"`
}

// QuestionID returns the explicit id, or a synthetic position-based one.
func (q *Question) QuestionID(index int) string {
	if q.ID != "" {
		return q.ID
	}
	return fmt.Sprintf("question_%d", index+1)
}

// Clone returns a deep copy of the option.
func (o *QuestionOption) Clone() *QuestionOption {
	if o == nil {
		return nil
	}
	cp := *o
	if o.Clips != nil {
		cp.Clips = make([]Clip, len(o.Clips))
		copy(cp.Clips, o.Clips)
	}
	return &cp
}

// CloneMeta returns a shallow copy of a question's meta map. Values are the
// JSON scalars the generators emit, so a per-key copy is a full copy.
func CloneMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}
	cp := make(map[string]any, len(meta))
	for k, v := range meta {
		cp[k] = v
	}
	return cp
}
