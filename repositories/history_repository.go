package repositories

import (
	"Henteklar/models"
	"context"
)

type HistoryRepository interface {
	Append(ctx context.Context, entry models.HistoryEntry) (string, error)
	// Find returns entries newest first. An empty childID matches every child,
	// limit <= 0 means no limit.
	Find(ctx context.Context, childID string, limit int) ([]models.HistoryEntry, error)
}
