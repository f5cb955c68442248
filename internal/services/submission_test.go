package services

import (
	"testing"
	"time"

	"github.com/nnsriram27/physpropprior-study/internal/models"
)

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"Alice", "Alice"},
		{"Alice Smith", "Alice_Smith"},
		{"alice  smith!!", "alice_smith"},
		{"--alice--", "alice"},
		{"a.b-c d", "a_b_c_d"},
		{"!!!", "participant"},
		{"", "participant"},
	}
	for _, tt := range tests {
		if got := Slug(tt.name); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDownloadFilename(t *testing.T) {
	t.Parallel()

	if got := DownloadFilename("Alice Smith"); got != "responses_Alice_Smith.json" {
		t.Errorf("DownloadFilename = %q, want responses_Alice_Smith.json", got)
	}
	if got := DownloadFilename("···"); got != "responses_participant.json" {
		t.Errorf("DownloadFilename = %q, want responses_participant.json", got)
	}
}

func TestBuildSubmission_DropsEmptySlots(t *testing.T) {
	t.Parallel()

	c := activeController(t, 3)
	now := time.Now()
	c.answer(models.ChoiceA, false, now)
	c.index = 2
	c.answer("", true, now)

	payload := buildSubmission(c, now)
	if payload.TotalQuestions != 3 {
		t.Errorf("TotalQuestions = %d, want 3", payload.TotalQuestions)
	}
	if len(payload.Responses) != 2 {
		t.Fatalf("Responses = %d entries, want 2 (empty slot dropped)", len(payload.Responses))
	}
	// Ledger order is preserved.
	if payload.Responses[0].ChoiceValue() != models.ChoiceA {
		t.Errorf("first response choice = %q, want A", payload.Responses[0].ChoiceValue())
	}
	if !payload.Responses[1].Skipped {
		t.Error("second response not marked skipped")
	}
	if !payload.CompletedAt.Equal(now) {
		t.Errorf("CompletedAt = %v, want %v", payload.CompletedAt, now)
	}
}

func TestBuildSubmission_StableExceptTimestamp(t *testing.T) {
	t.Parallel()

	c := activeController(t, 2)
	now := time.Now()
	c.answer(models.ChoiceB, false, now)

	first := buildSubmission(c, now)
	second := buildSubmission(c, now.Add(time.Minute))

	if first.CompletedAt.Equal(second.CompletedAt) {
		t.Error("CompletedAt should track the build time")
	}
	first.CompletedAt = second.CompletedAt
	if len(first.Responses) != len(second.Responses) ||
		first.QuestionSet != second.QuestionSet ||
		first.TotalQuestions != second.TotalQuestions {
		t.Error("repeated builds of an unchanged session differ beyond CompletedAt")
	}
}

func TestBuildAutosave(t *testing.T) {
	t.Parallel()

	c := activeController(t, 3)
	now := time.Now()
	c.answer(models.ChoiceA, false, now)
	c.index = 1
	c.answer("", true, now)

	payload := buildAutosave(c, now)
	if !payload.Autosave {
		t.Error("Autosave flag not set")
	}
	if payload.Status != models.SubmissionInProgress {
		t.Errorf("Status = %q, want in progress with one slot empty", payload.Status)
	}
	if payload.AnsweredCount != 1 || payload.SkippedCount != 1 {
		t.Errorf("counts = answered %d skipped %d, want 1/1", payload.AnsweredCount, payload.SkippedCount)
	}

	c.index = 2
	c.answer(models.ChoiceB, false, now)
	payload = buildAutosave(c, now)
	if payload.Status != models.SubmissionCompleted {
		t.Errorf("Status = %q, want completed once every slot is filled", payload.Status)
	}
}
