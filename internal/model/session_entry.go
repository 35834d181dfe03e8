package model

import "time"

// SessionEntry is one secure store envelope held by the Postgres backend.
type SessionEntry struct {
	Key       string    `gorm:"type:varchar(512);primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SessionEntry) TableName() string { return "session_entries" }
