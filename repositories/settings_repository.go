package repositories

import (
	"Henteklar/models"
	"context"
)

// SettingsRepository reads and writes the singleton settings document.
type SettingsRepository interface {
	// Get returns ErrNotFound when the document has never been written.
	Get(ctx context.Context) (models.Settings, error)
	Update(ctx context.Context, fields Fields) error
	Set(ctx context.Context, settings models.Settings) error
}
