package services

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"Henteklar/repositories/mocks"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetSettingsDefaultsWhenMissing(t *testing.T) {
	repo := new(mocks.SettingsRepository)
	svc := NewSettingsService(repo, zap.NewNop())
	repo.On("Get", mock.Anything).Return(models.Settings{}, repositories.ErrNotFound)

	settings, err := svc.GetSettings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)
	repo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestGetSettingsMigratesLegacyName(t *testing.T) {
	repo := new(mocks.SettingsRepository)
	svc := NewSettingsService(repo, zap.NewNop())
	repo.On("Get", mock.Anything).Return(models.Settings{KindergartenName: "Solstråle Barnehage", Phone: "1"}, nil)
	repo.On("Update", mock.Anything, repositories.Fields{"kindergartenName": models.DefaultKindergartenName}).Return(nil)

	settings, err := svc.GetSettings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.DefaultKindergartenName, settings.KindergartenName)
	assert.Equal(t, "1", settings.Phone)
	repo.AssertExpectations(t)
}

func TestGetSettingsMigrationFailureStillReturnsNewName(t *testing.T) {
	repo := new(mocks.SettingsRepository)
	svc := NewSettingsService(repo, zap.NewNop())
	repo.On("Get", mock.Anything).Return(models.Settings{KindergartenName: "solstrale"}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(errors.New("permission denied"))

	settings, err := svc.GetSettings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.DefaultKindergartenName, settings.KindergartenName)
}

func TestUpdateSettingsCreatesFromDefaults(t *testing.T) {
	repo := new(mocks.SettingsRepository)
	svc := NewSettingsService(repo, zap.NewNop())

	name := "Trollskogen"
	expected := models.DefaultSettings()
	expected.KindergartenName = name

	repo.On("Get", mock.Anything).Return(models.Settings{}, repositories.ErrNotFound).Once()
	repo.On("Set", mock.Anything, expected).Return(nil)
	repo.On("Get", mock.Anything).Return(expected, nil)

	settings, err := svc.UpdateSettings(context.Background(), models.SettingsInput{KindergartenName: &name})

	require.NoError(t, err)
	assert.Equal(t, name, settings.KindergartenName)
	repo.AssertExpectations(t)
}

func TestUpdateSettingsMergesIntoExisting(t *testing.T) {
	repo := new(mocks.SettingsRepository)
	svc := NewSettingsService(repo, zap.NewNop())

	hours := models.OpeningHours{Open: "07:30", Close: "16:30"}
	repo.On("Get", mock.Anything).Return(models.DefaultSettings(), nil)
	repo.On("Update", mock.Anything, repositories.Fields{"openingHours": hours}).Return(nil)

	_, err := svc.UpdateSettings(context.Background(), models.SettingsInput{OpeningHours: &hours})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
