package mocks

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"context"

	"github.com/stretchr/testify/mock"
)

type CalendarRepository struct {
	mock.Mock
}

func (m *CalendarRepository) FindAll(ctx context.Context) ([]models.CalendarEvent, error) {
	args := m.Called(ctx)
	events, _ := args.Get(0).([]models.CalendarEvent)
	return events, args.Error(1)
}

func (m *CalendarRepository) FindByID(ctx context.Context, id string) (models.CalendarEvent, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.CalendarEvent), args.Error(1)
}

func (m *CalendarRepository) Create(ctx context.Context, event models.CalendarEvent) (string, error) {
	args := m.Called(ctx, event)
	return args.String(0), args.Error(1)
}

func (m *CalendarRepository) Update(ctx context.Context, id string, fields repositories.Fields) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *CalendarRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
