package firestore

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"context"

	fs "cloud.google.com/go/firestore"
)

// CheckinLogRepository needs composite indexes on (childId, timestamp desc),
// (date, timestamp desc) and (childId, date, timestamp desc); see firestore.indexes.json.
type CheckinLogRepository struct {
	Client *fs.Client
}

func NewCheckinLogRepository(client *fs.Client) repositories.CheckinLogRepository {
	return &CheckinLogRepository{Client: client}
}

func (r *CheckinLogRepository) Append(ctx context.Context, entry models.CheckinLog) (string, error) {
	ref, _, err := r.Client.Collection(checkinLogCollection).Add(ctx, checkinLogData(entry))
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (r *CheckinLogRepository) Find(ctx context.Context, filter models.LogFilter) ([]models.CheckinLog, error) {
	q := r.Client.Collection(checkinLogCollection).Query
	if filter.ChildID != "" {
		q = q.Where("childId", "==", filter.ChildID)
	}
	if filter.Date != "" {
		q = q.Where("date", "==", filter.Date)
	}
	q = q.OrderBy("timestamp", fs.Desc)
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	docs, err := getAll(ctx, q)
	if err != nil {
		return nil, err
	}
	logs := make([]models.CheckinLog, 0, len(docs))
	for _, snap := range docs {
		logs = append(logs, toCheckinLog(snap))
	}
	return logs, nil
}
