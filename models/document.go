package models

import "time"

// Document is one row of the key-value document table backing the storage
// port. Value holds a JSON document; the schema lives with whoever wrote it.
type Document struct {
	Key       string    `gorm:"primaryKey;type:varchar(191)" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
