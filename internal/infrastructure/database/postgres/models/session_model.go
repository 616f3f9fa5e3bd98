package models

import "time"

// SessionEntryModel is one key/value pair of persisted client state
type SessionEntryModel struct {
	Key       string    `gorm:"type:varchar(100);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (SessionEntryModel) TableName() string {
	return "session_entries"
}
