package services

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestAutosaveScheduler_DebouncesBursts(t *testing.T) {
	t.Parallel()

	s := newAutosaveScheduler(50 * time.Millisecond)
	var runs atomic.Int32

	// A burst of schedules collapses into one save.
	for i := 0; i < 5; i++ {
		s.Schedule("alice", func() { runs.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)
	if got := runs.Load(); got != 1 {
		t.Errorf("save ran %d times, want 1", got)
	}
}

func TestAutosaveScheduler_PerKey(t *testing.T) {
	t.Parallel()

	s := newAutosaveScheduler(20 * time.Millisecond)
	var alice, bob atomic.Int32

	s.Schedule("alice", func() { alice.Add(1) })
	s.Schedule("bob", func() { bob.Add(1) })

	time.Sleep(100 * time.Millisecond)
	if alice.Load() != 1 || bob.Load() != 1 {
		t.Errorf("saves = alice %d bob %d, want one each", alice.Load(), bob.Load())
	}
}

func TestAutosaveScheduler_Flush(t *testing.T) {
	t.Parallel()

	s := newAutosaveScheduler(time.Hour)
	var runs atomic.Int32

	s.Schedule("alice", func() { runs.Add(1) })
	s.Flush("alice")
	if got := runs.Load(); got != 1 {
		t.Fatalf("flush ran the save %d times, want 1", got)
	}

	// Flushing again is a no-op.
	s.Flush("alice")
	if got := runs.Load(); got != 1 {
		t.Errorf("second flush reran the save: %d runs", got)
	}
}

func TestAutosaveScheduler_Cancel(t *testing.T) {
	t.Parallel()

	s := newAutosaveScheduler(20 * time.Millisecond)
	var runs atomic.Int32

	s.Schedule("alice", func() { runs.Add(1) })
	s.Cancel("alice")

	time.Sleep(100 * time.Millisecond)
	if got := runs.Load(); got != 0 {
		t.Errorf("cancelled save still ran %d times", got)
	}
}
