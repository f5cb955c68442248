package store

import (
	"testing"
	"time"

	"github.com/nnsriram27/physpropprior-study/internal/models"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()

	if _, found, err := s.Get("alice"); err != nil || found {
		t.Fatalf("Get on empty store = found=%v err=%v, want found=false err=nil", found, err)
	}

	choice := models.ChoiceA
	record := &models.SessionRecord{
		QuestionSet: "packs/user_01",
		Responses: []*models.Response{
			{QuestionID: "q1", Prompt: "which?", Choice: &choice},
			nil,
			{QuestionID: "q3", Prompt: "which?", Skipped: true},
		},
		Index:       2,
		Participant: models.Participant{Name: "Alice"},
		UpdatedAt:   time.Now().UTC(),
	}
	if err := s.Put("alice", record); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, found, err := s.Get("alice")
	if err != nil || !found {
		t.Fatalf("Get = found=%v err=%v, want found=true err=nil", found, err)
	}
	if got.QuestionSet != "packs/user_01" || got.Index != 2 {
		t.Errorf("Get = set %q index %d, want packs/user_01 index 2", got.QuestionSet, got.Index)
	}
	if len(got.Responses) != 3 || got.Responses[1] != nil {
		t.Fatalf("Responses = %v, want 3 slots with empty middle", got.Responses)
	}
	if got.Responses[0].ChoiceValue() != models.ChoiceA {
		t.Errorf("slot 0 choice = %q, want A", got.Responses[0].ChoiceValue())
	}
	if !got.Responses[2].Skipped {
		t.Error("slot 2 not marked skipped")
	}
}

func TestMemoryStore_CopiesOnWrite(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	record := &models.SessionRecord{
		QuestionSet: "original",
		Participant: models.Participant{Name: "Bob"},
	}
	if err := s.Put("bob", record); err != nil {
		t.Fatal(err)
	}

	// Mutating the caller's record must not touch the stored copy.
	record.QuestionSet = "mutated"

	got, _, err := s.Get("bob")
	if err != nil {
		t.Fatal(err)
	}
	if got.QuestionSet != "original" {
		t.Errorf("stored record mutated through caller reference: %q", got.QuestionSet)
	}

	// And mutating what Get returned must not touch the store either.
	got.QuestionSet = "mutated again"
	again, _, _ := s.Get("bob")
	if again.QuestionSet != "original" {
		t.Errorf("stored record mutated through Get result: %q", again.QuestionSet)
	}
}

func TestMemoryStore_All(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	for _, key := range []string{"a", "b", "c"} {
		if err := s.Put(key, &models.SessionRecord{QuestionSet: "set_" + key}); err != nil {
			t.Fatal(err)
		}
	}

	all, err := s.All()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("All returned %d records, want 3", len(all))
	}
	if all["b"].QuestionSet != "set_b" {
		t.Errorf("All[b].QuestionSet = %q, want set_b", all["b"].QuestionSet)
	}
}

func TestMemoryStore_LastWriteWins(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	if err := s.Put("k", &models.SessionRecord{Index: 1}); err != nil {
		t.Fatal(err)
	}
	if err := s.Put("k", &models.SessionRecord{Index: 5}); err != nil {
		t.Fatal(err)
	}

	got, _, _ := s.Get("k")
	if got.Index != 5 {
		t.Errorf("Index = %d, want 5 (last write wins)", got.Index)
	}
}
