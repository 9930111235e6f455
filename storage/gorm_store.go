package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/helpkhazaana-eng/production-app/models"
)

// GormStore persists documents in the documents table.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) Get(key string) ([]byte, error) {
	var doc models.Document
	if err := s.DB.First(&doc, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(doc.Value), nil
}

func (s *GormStore) Set(key string, value []byte) error {
	doc := models.Document{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now(),
	}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&doc).Error
}

func (s *GormStore) Delete(key string) error {
	return s.DB.Delete(&models.Document{}, "key = ?", key).Error
}
