package repositories

import (
	"Henteklar/models"
	"context"
)

// CheckinLogRepository is append-only.
type CheckinLogRepository interface {
	// Append stores entry with a store-assigned timestamp and returns its id.
	Append(ctx context.Context, entry models.CheckinLog) (string, error)
	// Find returns matching entries newest first, at most filter.Limit when set.
	Find(ctx context.Context, filter models.LogFilter) ([]models.CheckinLog, error)
}
