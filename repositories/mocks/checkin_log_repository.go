package mocks

import (
	"Henteklar/models"
	"context"

	"github.com/stretchr/testify/mock"
)

type CheckinLogRepository struct {
	mock.Mock
}

func (m *CheckinLogRepository) Append(ctx context.Context, entry models.CheckinLog) (string, error) {
	args := m.Called(ctx, entry)
	return args.String(0), args.Error(1)
}

func (m *CheckinLogRepository) Find(ctx context.Context, filter models.LogFilter) ([]models.CheckinLog, error) {
	args := m.Called(ctx, filter)
	logs, _ := args.Get(0).([]models.CheckinLog)
	return logs, args.Error(1)
}
