package store

import (
	"encoding/json"
	"sync"

	"github.com/nnsriram27/physpropprior-study/internal/models"
)

// MemoryStore is the in-memory SessionStore used in tests and as the
// fallback when the database is unavailable (progress then survives for the
// process lifetime only). Records are copied on the way in and out so
// callers cannot mutate stored state.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*models.SessionRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*models.SessionRecord)}
}

func (s *MemoryStore) Get(key string) (*models.SessionRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[key]
	if !ok {
		return nil, false, nil
	}
	cp, err := copyRecord(record)
	if err != nil {
		return nil, false, err
	}
	return cp, true, nil
}

func (s *MemoryStore) Put(key string, record *models.SessionRecord) error {
	cp, err := copyRecord(record)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = cp
	return nil
}

func (s *MemoryStore) All() (map[string]*models.SessionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]*models.SessionRecord, len(s.records))
	for key, record := range s.records {
		cp, err := copyRecord(record)
		if err != nil {
			return nil, err
		}
		out[key] = cp
	}
	return out, nil
}

func copyRecord(record *models.SessionRecord) (*models.SessionRecord, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	var cp models.SessionRecord
	if err := json.Unmarshal(data, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}
