package impl

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CalendarRepositoryImpl struct {
	DB *gorm.DB
}

func NewCalendarRepository(db *gorm.DB) repositories.CalendarRepository {
	return &CalendarRepositoryImpl{DB: db}
}

func (r *CalendarRepositoryImpl) FindAll(ctx context.Context) ([]models.CalendarEvent, error) {
	var events []models.CalendarEvent
	err := r.DB.WithContext(ctx).Order("date ASC").Find(&events).Error
	return events, err
}

func (r *CalendarRepositoryImpl) FindByID(ctx context.Context, id string) (models.CalendarEvent, error) {
	var event models.CalendarEvent
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		return models.CalendarEvent{}, mapErr(err)
	}
	return event, nil
}

func (r *CalendarRepositoryImpl) Create(ctx context.Context, event models.CalendarEvent) (string, error) {
	event.ID = uuid.NewString()
	if event.CreatedAt == nil {
		event.CreatedAt = now()
	}
	if err := r.DB.WithContext(ctx).Create(&event).Error; err != nil {
		return "", err
	}
	return event.ID, nil
}

func (r *CalendarRepositoryImpl) Update(ctx context.Context, id string, fields repositories.Fields) error {
	cols, err := toColumns(fields, calendarColumns, true)
	if err != nil {
		return err
	}
	return updateByID(r.DB.WithContext(ctx), &models.CalendarEvent{}, id, cols)
}

func (r *CalendarRepositoryImpl) Delete(ctx context.Context, id string) error {
	return deleteByID(r.DB.WithContext(ctx), &models.CalendarEvent{}, id)
}
