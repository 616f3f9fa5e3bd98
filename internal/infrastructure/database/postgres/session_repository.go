package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"swifttrack-dashboard/internal/infrastructure/database/postgres/models"
	"swifttrack-dashboard/internal/session"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionRepository implements session.Storage on a Postgres table
type SessionRepository struct {
	db *DB
}

func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

var _ session.Storage = (*SessionRepository)(nil)

func (r *SessionRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var entry models.SessionEntryModel
	err := r.db.DB.WithContext(ctx).
		Where("key = ?", key).
		First(&entry).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get session entry: %w", err)
	}

	return entry.Value, true, nil
}

func (r *SessionRepository) Put(ctx context.Context, key, value string) error {
	entry := models.SessionEntryModel{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	err := r.db.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to save session entry: %w", err)
	}

	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, key string) error {
	err := r.db.DB.WithContext(ctx).
		Where("key = ?", key).
		Delete(&models.SessionEntryModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete session entry: %w", err)
	}
	return nil
}
