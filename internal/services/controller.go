package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/nnsriram27/physpropprior-study/internal/models"
)

// Session states reported to the client.
const (
	StateBlocked     = "blocked"
	StateActive      = "active"
	StateAllAnswered = "all_answered"
)

// AssignmentPreviewID is what MTurk passes while a worker previews a HIT.
// The session stays blocked until the assignment is accepted.
const AssignmentPreviewID = "ASSIGNMENT_ID_NOT_AVAILABLE"

// Submission modes.
const (
	ModeLocal = "local"
	ModeMTurk = "mturk"
)

var (
	errNotActive      = errors.New("session is not accepting answers")
	errInvalidChoice  = errors.New("invalid choice for current question")
	errNoQuestion     = errors.New("no question at current index")
	errAnswerFirst    = errors.New("answer the current question before moving on")
	errAlreadyAtStart = errors.New("already at the first question")
	errAlreadyAtEnd   = errors.New("already at the last question")
)

// Assignment carries the external-assignment identifiers for mturk mode.
type Assignment struct {
	AssignmentID string `json:"assignment_id,omitempty"`
	WorkerID     string `json:"worker_id,omitempty"`
	HitID        string `json:"hit_id,omitempty"`
	TurkSubmitTo string `json:"turk_submit_to,omitempty"`
}

// controller is the in-memory working copy of one participant's session:
// the response ledger, the current index, and the gating state machine.
// The SessionService serializes access; methods here assume the caller
// holds the controller lock.
type controller struct {
	displayName string
	normalized  string
	mode        string
	assignment  Assignment

	questionSet string
	questions   []models.Question
	responses   []*models.Response
	index       int

	// loadToken invalidates stale dataset loads: a result for an older
	// token is discarded without being applied.
	loadToken int
	loadErr   error

	lastNav  time.Time
	lastSeen time.Time
}

func (c *controller) blocked() (bool, string) {
	if c.mode == ModeMTurk && c.assignment.AssignmentID == AssignmentPreviewID {
		return true, "accept the assignment to begin the survey"
	}
	if c.loadErr != nil {
		return true, c.loadErr.Error()
	}
	if len(c.questions) == 0 {
		return true, "loading questions..."
	}
	return false, ""
}

// beginLoad invalidates any load still in flight and returns the token the
// new load must present to apply its result.
func (c *controller) beginLoad(questionSet string) int {
	c.loadToken++
	c.questionSet = questionSet
	c.questions = nil
	c.loadErr = nil
	return c.loadToken
}

// applyQuestions installs a load result. A stale token means a newer load
// superseded this one; the result is dropped.
func (c *controller) applyQuestions(token int, questions []models.Question, err error) bool {
	if token != c.loadToken {
		return false
	}
	if err != nil {
		c.loadErr = err
		c.questions = nil
		return true
	}
	c.questions = questions
	c.loadErr = nil
	c.reconcileLedger()
	c.index = clampIndex(c.index, len(questions))
	return true
}

// reconcileLedger keeps the ledger exactly one slot per question.
func (c *controller) reconcileLedger() {
	if len(c.responses) == len(c.questions) {
		return
	}
	ledger := make([]*models.Response, len(c.questions))
	copy(ledger, c.responses)
	c.responses = ledger
}

// resumeIndex applies the resume policy: the recorded index when it is in
// range, otherwise the first unanswered question, otherwise the last one.
func (c *controller) resumeIndex(recorded int) int {
	n := len(c.questions)
	if n == 0 {
		return 0
	}
	if recorded >= 0 && recorded < n {
		return recorded
	}
	for i, r := range c.responses {
		if r == nil {
			return i
		}
	}
	return n - 1
}

func (c *controller) answer(choice string, skipped bool, now time.Time) error {
	if blocked, _ := c.blocked(); blocked {
		return errNotActive
	}
	if c.index < 0 || c.index >= len(c.questions) {
		return errNoQuestion
	}
	if !skipped && choice != models.ChoiceA && choice != models.ChoiceB {
		return errInvalidChoice
	}

	q := &c.questions[c.index]
	resp := models.NewResponse(q, c.index, choice, skipped, now)
	if prev := c.responses[c.index]; prev != nil {
		// Last write wins, but the first answer time survives.
		resp.AnsweredAt = prev.AnsweredAt
	}
	c.responses[c.index] = resp
	return nil
}

// next advances the index. Forward motion is gated on the current slot
// being non-empty and is silently dropped inside the navigation cooldown.
func (c *controller) next(cooldown time.Duration, now time.Time) error {
	if blocked, _ := c.blocked(); blocked {
		return errNotActive
	}
	if now.Sub(c.lastNav) < cooldown {
		return nil
	}
	if c.responses[c.index] == nil {
		return errAnswerFirst
	}
	if c.index >= len(c.questions)-1 {
		return errAlreadyAtEnd
	}
	c.index++
	c.lastNav = now
	return nil
}

// back never requires an answer; it only needs somewhere to go.
func (c *controller) back(cooldown time.Duration, now time.Time) error {
	if blocked, _ := c.blocked(); blocked {
		return errNotActive
	}
	if now.Sub(c.lastNav) < cooldown {
		return nil
	}
	if c.index <= 0 {
		return errAlreadyAtStart
	}
	c.index--
	c.lastNav = now
	return nil
}

func (c *controller) answeredCount() int {
	n := 0
	for _, r := range c.responses {
		if r != nil {
			n++
		}
	}
	return n
}

func (c *controller) allAnswered() bool {
	return len(c.questions) > 0 && c.answeredCount() == len(c.questions)
}

// record snapshots the controller into a durable session record.
func (c *controller) record(now time.Time) *models.SessionRecord {
	return &models.SessionRecord{
		QuestionSet: c.questionSet,
		Responses:   c.responses,
		Index:       c.index,
		Participant: models.Participant{Name: c.displayName},
		UpdatedAt:   now,
	}
}

// SessionState is the client-facing view of a session.
type SessionState struct {
	State          string             `json:"state"`
	Participant    models.Participant `json:"participant"`
	QuestionSet    string             `json:"question_set,omitempty"`
	Mode           string             `json:"mode"`
	Index          int                `json:"index"`
	TotalQuestions int                `json:"total_questions"`
	AnsweredCount  int                `json:"answered_count"`
	Question       *models.Question   `json:"question,omitempty"`
	Response       *models.Response   `json:"response,omitempty"`
	CanNext        bool               `json:"can_next"`
	CanBack        bool               `json:"can_back"`
	Completed      bool               `json:"completed"`
	Message        string             `json:"message,omitempty"`
}

func (c *controller) state() *SessionState {
	st := &SessionState{
		Participant:    models.Participant{Name: c.displayName},
		QuestionSet:    c.questionSet,
		Mode:           c.mode,
		Index:          c.index,
		TotalQuestions: len(c.questions),
		AnsweredCount:  c.answeredCount(),
		Completed:      c.allAnswered(),
	}

	if blocked, msg := c.blocked(); blocked {
		st.State = StateBlocked
		st.Message = msg
		return st
	}

	st.Question = &c.questions[c.index]
	st.Response = c.responses[c.index]
	st.CanBack = c.index > 0
	st.CanNext = c.index < len(c.questions)-1 && st.Response != nil

	if c.index == len(c.questions)-1 && st.Response != nil {
		// Final question answered: the Next action stays disabled and the
		// submission affordance takes over.
		st.State = StateAllAnswered
		st.Message = fmt.Sprintf("all %d questions answered, you can submit your responses", len(c.questions))
		return st
	}

	st.State = StateActive
	return st
}

func clampIndex(index, total int) int {
	if total == 0 {
		return 0
	}
	if index < 0 {
		return 0
	}
	if index >= total {
		return total - 1
	}
	return index
}
