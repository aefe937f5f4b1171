package impl

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"context"

	"gorm.io/gorm"
)

type SettingsRepositoryImpl struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) repositories.SettingsRepository {
	return &SettingsRepositoryImpl{DB: db}
}

func (r *SettingsRepositoryImpl) Get(ctx context.Context) (models.Settings, error) {
	var settings models.Settings
	if err := r.DB.WithContext(ctx).Where("id = ?", models.SettingsID).First(&settings).Error; err != nil {
		return models.Settings{}, mapErr(err)
	}
	return settings, nil
}

func (r *SettingsRepositoryImpl) Update(ctx context.Context, fields repositories.Fields) error {
	cols, err := toColumns(fields, settingsColumns, false)
	if err != nil {
		return err
	}
	return updateByID(r.DB.WithContext(ctx), &models.Settings{}, models.SettingsID, cols)
}

func (r *SettingsRepositoryImpl) Set(ctx context.Context, settings models.Settings) error {
	settings.ID = models.SettingsID
	return r.DB.WithContext(ctx).Save(&settings).Error
}
