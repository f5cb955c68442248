package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nnsriram27/physpropprior-study/internal/models"
)

// GormStore keeps session records as JSON documents, one row per key.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(key string) (*models.SessionRecord, bool, error) {
	var doc models.SessionDocument
	if err := s.db.First(&doc, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var record models.SessionRecord
	if err := json.Unmarshal(doc.Document, &record); err != nil {
		return nil, false, fmt.Errorf("decode session %q: %w", key, err)
	}
	return &record, true, nil
}

func (s *GormStore) Put(key string, record *models.SessionRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode session %q: %w", key, err)
	}

	doc := models.SessionDocument{
		Key:       key,
		Document:  data,
		UpdatedAt: time.Now(),
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
	}).Create(&doc).Error
}

func (s *GormStore) All() (map[string]*models.SessionRecord, error) {
	var docs []models.SessionDocument
	if err := s.db.Find(&docs).Error; err != nil {
		return nil, err
	}

	records := make(map[string]*models.SessionRecord, len(docs))
	for _, doc := range docs {
		var record models.SessionRecord
		if err := json.Unmarshal(doc.Document, &record); err != nil {
			return nil, fmt.Errorf("decode session %q: %w", doc.Key, err)
		}
		records[doc.Key] = &record
	}
	return records, nil
}
