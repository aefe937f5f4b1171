package services

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"context"
	"errors"

	"go.uber.org/zap"
)

type SettingsService struct {
	SettingsRepo repositories.SettingsRepository
	Logger       *zap.Logger
}

func NewSettingsService(settingsRepo repositories.SettingsRepository, logger *zap.Logger) *SettingsService {
	return &SettingsService{SettingsRepo: settingsRepo, Logger: logger}
}

// GetSettings returns the stored settings, or the defaults when none have been saved.
// A leftover placeholder name is replaced in the store and in the result.
func (s *SettingsService) GetSettings(ctx context.Context) (models.Settings, error) {
	settings, err := s.SettingsRepo.Get(ctx)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, storeErr("load settings", err)
	}

	if settings.HasLegacyName() {
		settings.KindergartenName = models.DefaultKindergartenName
		err := s.SettingsRepo.Update(ctx, repositories.Fields{"kindergartenName": settings.KindergartenName})
		if err != nil {
			s.Logger.Warn("settings name migration not written", zap.Error(err))
		} else {
			s.Logger.Info("settings name migrated", zap.String("kindergarten_name", settings.KindergartenName))
		}
	}
	settings.ID = models.SettingsID
	return settings, nil
}

// UpdateSettings merges in into the stored document, creating it from the
// defaults on first write.
func (s *SettingsService) UpdateSettings(ctx context.Context, in models.SettingsInput) (models.Settings, error) {
	current, err := s.SettingsRepo.Get(ctx)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		current = models.DefaultSettings()
		current.Apply(in)
		if err := s.SettingsRepo.Set(ctx, current); err != nil {
			return models.Settings{}, storeErr("create settings", err)
		}
	case err != nil:
		return models.Settings{}, storeErr("load settings", err)
	default:
		fields := settingsFields(in)
		if len(fields) > 0 {
			if err := s.SettingsRepo.Update(ctx, fields); err != nil {
				return models.Settings{}, storeErr("update settings", err)
			}
		}
	}
	return s.GetSettings(ctx)
}

func settingsFields(in models.SettingsInput) repositories.Fields {
	fields := repositories.Fields{}
	if in.KindergartenName != nil {
		fields["kindergartenName"] = *in.KindergartenName
	}
	if in.KindergartenLogo != nil {
		fields["kindergartenLogo"] = in.KindergartenLogo
	}
	if in.Address != nil {
		fields["address"] = *in.Address
	}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.OpeningHours != nil {
		fields["openingHours"] = *in.OpeningHours
	}
	return fields
}
