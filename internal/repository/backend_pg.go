package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"steakhouse/storefront/internal/model"
)

type pgBackend struct {
	db *gorm.DB
}

// NewPGBackend persists entries in the session_entries table. Expired rows stay
// until the secure store reads and removes them.
func NewPGBackend(db *gorm.DB) Backend {
	return &pgBackend{db: db}
}

func (b *pgBackend) Get(ctx context.Context, key string) (string, bool, error) {
	var entry model.SessionEntry
	err := b.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (b *pgBackend) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrKeyEmpty
	}
	entry := model.SessionEntry{Key: key, Value: value}
	return b.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).
		Error
}

func (b *pgBackend) Remove(ctx context.Context, key string) error {
	return b.db.WithContext(ctx).Delete(&model.SessionEntry{}, "key = ?", key).Error
}
