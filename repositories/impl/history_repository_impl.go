package impl

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HistoryRepositoryImpl struct {
	DB *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) repositories.HistoryRepository {
	return &HistoryRepositoryImpl{DB: db}
}

func (r *HistoryRepositoryImpl) Append(ctx context.Context, entry models.HistoryEntry) (string, error) {
	entry.ID = uuid.NewString()
	if entry.Timestamp == nil {
		entry.Timestamp = now()
	}
	if err := r.DB.WithContext(ctx).Create(&entry).Error; err != nil {
		return "", err
	}
	return entry.ID, nil
}

func (r *HistoryRepositoryImpl) Find(ctx context.Context, childID string, limit int) ([]models.HistoryEntry, error) {
	query := r.DB.WithContext(ctx).Model(&models.HistoryEntry{})
	if childID != "" {
		query = query.Where("child_id = ?", childID)
	}
	query = query.Order("timestamp DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var entries []models.HistoryEntry
	err := query.Find(&entries).Error
	return entries, err
}
