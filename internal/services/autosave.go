package services

import (
	"sync"
	"time"
)

type pendingSave struct {
	timer *time.Timer
	fn    func()
}

// autosaveScheduler debounces persists per participant key: scheduling
// while a save is pending cancels the old timer and restarts the delay, so
// a burst of mutations collapses into one persist of the final state.
type autosaveScheduler struct {
	delay time.Duration

	mu      sync.Mutex
	pending map[string]*pendingSave
}

func newAutosaveScheduler(delay time.Duration) *autosaveScheduler {
	return &autosaveScheduler{
		delay:   delay,
		pending: make(map[string]*pendingSave),
	}
}

// Schedule queues fn to run after the debounce delay, replacing any save
// already pending for key.
func (s *autosaveScheduler) Schedule(key string, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.pending[key]; ok {
		prev.timer.Stop()
	}

	entry := &pendingSave{fn: fn}
	entry.timer = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		if s.pending[key] == entry {
			delete(s.pending, key)
		}
		s.mu.Unlock()
		fn()
	})
	s.pending[key] = entry
}

// Flush runs a pending save for key immediately, if any.
func (s *autosaveScheduler) Flush(key string) {
	s.mu.Lock()
	entry, ok := s.pending[key]
	if ok {
		entry.timer.Stop()
		delete(s.pending, key)
	}
	s.mu.Unlock()

	if ok {
		entry.fn()
	}
}

// Cancel drops a pending save without running it.
func (s *autosaveScheduler) Cancel(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.pending[key]; ok {
		entry.timer.Stop()
		delete(s.pending, key)
	}
}
