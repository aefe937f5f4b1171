package repositories

import (
	"Henteklar/models"
	"context"
)

type CalendarRepository interface {
	// FindAll returns every event ordered by date ascending.
	FindAll(ctx context.Context) ([]models.CalendarEvent, error)
	FindByID(ctx context.Context, id string) (models.CalendarEvent, error)
	Create(ctx context.Context, event models.CalendarEvent) (string, error)
	Update(ctx context.Context, id string, fields Fields) error
	Delete(ctx context.Context, id string) error
}
