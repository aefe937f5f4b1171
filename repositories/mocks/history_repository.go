package mocks

import (
	"Henteklar/models"
	"context"

	"github.com/stretchr/testify/mock"
)

type HistoryRepository struct {
	mock.Mock
}

func (m *HistoryRepository) Append(ctx context.Context, entry models.HistoryEntry) (string, error) {
	args := m.Called(ctx, entry)
	return args.String(0), args.Error(1)
}

func (m *HistoryRepository) Find(ctx context.Context, childID string, limit int) ([]models.HistoryEntry, error) {
	args := m.Called(ctx, childID, limit)
	entries, _ := args.Get(0).([]models.HistoryEntry)
	return entries, args.Error(1)
}
