// Package model defines database models for the persistence layer.
package model

import "time"

// EntryModel represents the entries table: the local key-value storage that
// backs the entity store. Each collection is one row holding a JSON document.
type EntryModel struct {
	Key       string    `gorm:"type:varchar(64);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the EntryModel.
func (EntryModel) TableName() string {
	return "entries"
}
