package mocks

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"context"

	"github.com/stretchr/testify/mock"
)

type SettingsRepository struct {
	mock.Mock
}

func (m *SettingsRepository) Get(ctx context.Context) (models.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Settings), args.Error(1)
}

func (m *SettingsRepository) Update(ctx context.Context, fields repositories.Fields) error {
	args := m.Called(ctx, fields)
	return args.Error(0)
}

func (m *SettingsRepository) Set(ctx context.Context, settings models.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}
