package models

import "time"

// Choice values offered for every question.
const (
	ChoiceA = "A"
	ChoiceB = "B"
)

// Response is one filled ledger slot. It embeds deep copies of the
// originating question's option metadata so a downloaded bundle can be
// scored without re-reading the question bank. Choice is nil only when the
// participant explicitly skipped.
type Response struct {
	QuestionID  string          `json:"questionId"`
	FieldID     string          `json:"fieldId,omitempty"`
	Axis        string          `json:"axis,omitempty"`
	AxisDetail  string          `json:"axisDetail,omitempty"`
	Prompt      string          `json:"prompt"`
	Choice      *string         `json:"choice"`
	Skipped     bool            `json:"skipped,omitempty"`
	TargetLevel string          `json:"targetLevel,omitempty"`
	Dataset     string          `json:"dataset,omitempty"`
	VideoA      *QuestionOption `json:"videoA,omitempty"`
	VideoB      *QuestionOption `json:"videoB,omitempty"`
	OptionA     *QuestionOption `json:"optionA,omitempty"`
	OptionB     *QuestionOption `json:"optionB,omitempty"`
	Meta        map[string]any  `json:"meta,omitempty"`
	AnsweredAt  time.Time       `json:"answeredAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// NewResponse builds a ledger entry for question q at position index. choice
// must be empty (skip) or one of ChoiceA/ChoiceB; validation happens at the
// controller, which knows what was rendered.
func NewResponse(q *Question, index int, choice string, skipped bool, now time.Time) *Response {
	r := &Response{
		QuestionID:  q.QuestionID(index),
		FieldID:     q.FieldID,
		Axis:        q.Axis,
		AxisDetail:  q.AxisDetail,
		Prompt:      q.Prompt,
		TargetLevel: q.TargetLevel,
		Dataset:     q.Dataset,
		VideoA:      q.VideoA.Clone(),
		VideoB:      q.VideoB.Clone(),
		OptionA:     q.OptionA.Clone(),
		OptionB:     q.OptionB.Clone(),
		Meta:        CloneMeta(q.Meta),
		Skipped:     skipped,
		AnsweredAt:  now,
		UpdatedAt:   now,
	}
	if !skipped {
		c := choice
		r.Choice = &c
	}
	return r
}

// ChoiceValue returns the recorded choice, or "" for a skip.
func (r *Response) ChoiceValue() string {
	if r == nil || r.Choice == nil {
		return ""
	}
	return *r.Choice
}
