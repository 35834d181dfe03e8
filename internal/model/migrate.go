package model

import "gorm.io/gorm"

// AutoMigrate creates the tables used by the Postgres backend.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&SessionEntry{}); err != nil {
		return err
	}

	// Lets operators prune abandoned sessions by age.
	return db.Exec(
		"CREATE INDEX IF NOT EXISTS idx_session_entries_updated_at ON session_entries (updated_at)",
	).Error
}
