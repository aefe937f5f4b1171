package firestore

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"context"

	fs "cloud.google.com/go/firestore"
)

type HistoryRepository struct {
	Client *fs.Client
}

func NewHistoryRepository(client *fs.Client) repositories.HistoryRepository {
	return &HistoryRepository{Client: client}
}

func (r *HistoryRepository) Append(ctx context.Context, entry models.HistoryEntry) (string, error) {
	ref, _, err := r.Client.Collection(historyCollection).Add(ctx, historyData(entry))
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (r *HistoryRepository) Find(ctx context.Context, childID string, limit int) ([]models.HistoryEntry, error) {
	q := r.Client.Collection(historyCollection).Query
	if childID != "" {
		q = q.Where("childId", "==", childID)
	}
	q = q.OrderBy("timestamp", fs.Desc)
	if limit > 0 {
		q = q.Limit(limit)
	}

	docs, err := getAll(ctx, q)
	if err != nil {
		return nil, err
	}
	entries := make([]models.HistoryEntry, 0, len(docs))
	for _, snap := range docs {
		entries = append(entries, toHistoryEntry(snap))
	}
	return entries, nil
}
