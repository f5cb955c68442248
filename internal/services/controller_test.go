package services

import (
	"errors"
	"testing"
	"time"

	"github.com/nnsriram27/physpropprior-study/internal/models"
)

func testQuestions(n int) []models.Question {
	qs := make([]models.Question, n)
	for i := range qs {
		qs[i] = models.Question{
			Prompt: "which video looks more plausible?",
			OptionA: &models.QuestionOption{
				Label: "Left", Method: "physpropprior", Src: "a.mp4",
			},
			OptionB: &models.QuestionOption{
				Label: "Right", Method: "baseline", Src: "b.mp4",
			},
		}
	}
	return qs
}

func activeController(t *testing.T, n int) *controller {
	t.Helper()
	c := &controller{displayName: "Alice", normalized: "alice", mode: ModeLocal}
	token := c.beginLoad("test_set")
	if !c.applyQuestions(token, testQuestions(n), nil) {
		t.Fatal("applyQuestions rejected a fresh token")
	}
	return c
}

func TestController_BlockedStates(t *testing.T) {
	t.Parallel()

	// Loading.
	c := &controller{mode: ModeLocal}
	c.beginLoad("set")
	if blocked, _ := c.blocked(); !blocked {
		t.Error("controller with no questions should be blocked")
	}

	// Load failure.
	c = &controller{mode: ModeLocal}
	token := c.beginLoad("set")
	c.applyQuestions(token, nil, errors.New("boom"))
	if blocked, msg := c.blocked(); !blocked || msg != "boom" {
		t.Errorf("blocked = %v %q, want true with the load error", blocked, msg)
	}

	// MTurk preview blocks even with questions loaded.
	c = activeController(t, 2)
	c.mode = ModeMTurk
	c.assignment.AssignmentID = AssignmentPreviewID
	if blocked, _ := c.blocked(); !blocked {
		t.Error("mturk preview should block the session")
	}
	if st := c.state(); st.State != StateBlocked {
		t.Errorf("state = %q, want blocked", st.State)
	}
}

func TestController_StaleLoadDiscarded(t *testing.T) {
	t.Parallel()

	c := &controller{mode: ModeLocal}
	oldToken := c.beginLoad("first_set")
	newToken := c.beginLoad("second_set")

	if c.applyQuestions(oldToken, testQuestions(3), nil) {
		t.Error("stale load token was applied")
	}
	if len(c.questions) != 0 {
		t.Error("stale load mutated questions")
	}
	if !c.applyQuestions(newToken, testQuestions(2), nil) {
		t.Error("current load token was rejected")
	}
	if len(c.questions) != 2 {
		t.Errorf("questions = %d, want 2", len(c.questions))
	}
}

func TestController_AnswerValidation(t *testing.T) {
	t.Parallel()

	c := activeController(t, 2)
	now := time.Now()

	if err := c.answer("C", false, now); !errors.Is(err, errInvalidChoice) {
		t.Errorf("answer(C) = %v, want errInvalidChoice", err)
	}
	if err := c.answer(models.ChoiceA, false, now); err != nil {
		t.Errorf("answer(A) = %v", err)
	}
	if got := c.responses[0].ChoiceValue(); got != models.ChoiceA {
		t.Errorf("recorded choice = %q, want A", got)
	}

	// Skip fills the slot with no choice.
	c.index = 1
	if err := c.answer("", true, now); err != nil {
		t.Errorf("skip = %v", err)
	}
	if r := c.responses[1]; !r.Skipped || r.Choice != nil {
		t.Errorf("skip slot = skipped=%v choice=%v, want skipped with nil choice", r.Skipped, r.Choice)
	}
}

func TestController_OverwriteKeepsFirstAnswerTime(t *testing.T) {
	t.Parallel()

	c := activeController(t, 1)
	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Minute)

	if err := c.answer(models.ChoiceA, false, first); err != nil {
		t.Fatal(err)
	}
	if err := c.answer(models.ChoiceB, false, second); err != nil {
		t.Fatal(err)
	}

	r := c.responses[0]
	if r.ChoiceValue() != models.ChoiceB {
		t.Errorf("choice = %q, want B (last write wins)", r.ChoiceValue())
	}
	if !r.AnsweredAt.Equal(first) {
		t.Errorf("AnsweredAt = %v, want the first answer time %v", r.AnsweredAt, first)
	}
	if !r.UpdatedAt.Equal(second) {
		t.Errorf("UpdatedAt = %v, want %v", r.UpdatedAt, second)
	}
}

func TestController_NextGatedOnAnswer(t *testing.T) {
	t.Parallel()

	c := activeController(t, 3)
	now := time.Now()

	if err := c.next(0, now); !errors.Is(err, errAnswerFirst) {
		t.Errorf("next on empty slot = %v, want errAnswerFirst", err)
	}
	if c.index != 0 {
		t.Errorf("index moved to %d on gated next", c.index)
	}

	if err := c.answer(models.ChoiceA, false, now); err != nil {
		t.Fatal(err)
	}
	if err := c.next(0, now); err != nil {
		t.Errorf("next after answer = %v", err)
	}
	if c.index != 1 {
		t.Errorf("index = %d, want 1", c.index)
	}
}

func TestController_NavigationCooldown(t *testing.T) {
	t.Parallel()

	c := activeController(t, 3)
	base := time.Now()
	cooldown := 250 * time.Millisecond

	c.answer(models.ChoiceA, false, base)
	if err := c.next(cooldown, base); err != nil {
		t.Fatal(err)
	}
	c.answer(models.ChoiceB, false, base)

	// Within the cooldown the transition is silently dropped: no error, no move.
	if err := c.next(cooldown, base.Add(100*time.Millisecond)); err != nil {
		t.Errorf("next inside cooldown = %v, want nil", err)
	}
	if c.index != 1 {
		t.Errorf("index = %d after dropped next, want 1", c.index)
	}

	// Past the cooldown it goes through.
	if err := c.next(cooldown, base.Add(300*time.Millisecond)); err != nil {
		t.Fatal(err)
	}
	if c.index != 2 {
		t.Errorf("index = %d, want 2", c.index)
	}
}

func TestController_BackNeverRequiresAnswer(t *testing.T) {
	t.Parallel()

	c := activeController(t, 3)
	now := time.Now()

	if err := c.back(0, now); !errors.Is(err, errAlreadyAtStart) {
		t.Errorf("back at index 0 = %v, want errAlreadyAtStart", err)
	}

	c.answer(models.ChoiceA, false, now)
	c.next(0, now)
	// Index 1 is unanswered; back still works.
	if err := c.back(0, now.Add(time.Second)); err != nil {
		t.Errorf("back from unanswered slot = %v", err)
	}
	if c.index != 0 {
		t.Errorf("index = %d, want 0", c.index)
	}
}

func TestController_StateTransitions(t *testing.T) {
	t.Parallel()

	c := activeController(t, 2)
	now := time.Now()

	st := c.state()
	if st.State != StateActive || st.CanNext || st.CanBack {
		t.Errorf("fresh state = %q next=%v back=%v, want active with both disabled", st.State, st.CanNext, st.CanBack)
	}

	c.answer(models.ChoiceA, false, now)
	st = c.state()
	if !st.CanNext {
		t.Error("CanNext false after answering")
	}

	c.next(0, now)
	c.answer(models.ChoiceB, false, now)
	st = c.state()
	if st.State != StateAllAnswered {
		t.Errorf("state = %q, want all_answered on the final answered question", st.State)
	}
	if st.CanNext {
		t.Error("CanNext true on the last question")
	}
	if !st.Completed || st.AnsweredCount != 2 {
		t.Errorf("completed=%v answered=%d, want true/2", st.Completed, st.AnsweredCount)
	}
}

func TestController_ResumeIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		answered []int
		recorded int
		want     int
	}{
		{"recorded in range", []int{0, 1}, 1, 1},
		{"recorded too large, first unanswered", []int{0, 2}, 99, 1},
		{"recorded negative, first unanswered", nil, -1, 0},
		{"all answered, last question", []int{0, 1, 2, 3}, 99, 3},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := activeController(t, 4)
			now := time.Now()
			for _, i := range tt.answered {
				c.index = i
				if err := c.answer(models.ChoiceA, false, now); err != nil {
					t.Fatal(err)
				}
			}
			if got := c.resumeIndex(tt.recorded); got != tt.want {
				t.Errorf("resumeIndex(%d) = %d, want %d", tt.recorded, got, tt.want)
			}
		})
	}
}

func TestController_LedgerReconciled(t *testing.T) {
	t.Parallel()

	// A stored ledger shorter than the question set grows to one slot per
	// question; answers in the overlap survive.
	c := &controller{displayName: "Alice", mode: ModeLocal}
	choice := models.ChoiceA
	c.responses = []*models.Response{{QuestionID: "q1", Choice: &choice}}
	token := c.beginLoad("set")
	c.applyQuestions(token, testQuestions(3), nil)

	if len(c.responses) != 3 {
		t.Fatalf("ledger has %d slots, want 3", len(c.responses))
	}
	if c.responses[0] == nil || c.responses[0].ChoiceValue() != models.ChoiceA {
		t.Error("restored answer lost during reconcile")
	}
	if c.responses[1] != nil || c.responses[2] != nil {
		t.Error("new slots not empty")
	}
}
