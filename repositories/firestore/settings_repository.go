package firestore

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"context"

	fs "cloud.google.com/go/firestore"
)

type SettingsRepository struct {
	Client *fs.Client
}

func NewSettingsRepository(client *fs.Client) repositories.SettingsRepository {
	return &SettingsRepository{Client: client}
}

func (r *SettingsRepository) doc() *fs.DocumentRef {
	return r.Client.Collection(settingsCollection).Doc(models.SettingsID)
}

func (r *SettingsRepository) Get(ctx context.Context) (models.Settings, error) {
	snap, err := r.doc().Get(ctx)
	if err != nil {
		return models.Settings{}, mapErr(err)
	}
	return toSettings(snap), nil
}

func (r *SettingsRepository) Update(ctx context.Context, fields repositories.Fields) error {
	_, err := r.doc().Update(ctx, toUpdates(fields, false))
	return mapErr(err)
}

func (r *SettingsRepository) Set(ctx context.Context, settings models.Settings) error {
	_, err := r.doc().Set(ctx, settingsData(settings))
	return err
}
