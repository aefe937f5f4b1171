package impl

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CheckinLogRepositoryImpl struct {
	DB *gorm.DB
}

func NewCheckinLogRepository(db *gorm.DB) repositories.CheckinLogRepository {
	return &CheckinLogRepositoryImpl{DB: db}
}

func (r *CheckinLogRepositoryImpl) Append(ctx context.Context, entry models.CheckinLog) (string, error) {
	entry.ID = uuid.NewString()
	if entry.Timestamp == nil {
		entry.Timestamp = now()
	}
	if err := r.DB.WithContext(ctx).Create(&entry).Error; err != nil {
		return "", err
	}
	return entry.ID, nil
}

func (r *CheckinLogRepositoryImpl) Find(ctx context.Context, filter models.LogFilter) ([]models.CheckinLog, error) {
	query := r.DB.WithContext(ctx).Model(&models.CheckinLog{})

	if filter.ChildID != "" {
		query = query.Where("child_id = ?", filter.ChildID)
	}
	if filter.Date != "" {
		query = query.Where("date = ?", filter.Date)
	}

	query = query.Order("timestamp DESC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var logs []models.CheckinLog
	err := query.Find(&logs).Error
	return logs, err
}
