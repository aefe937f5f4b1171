package firestore

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"context"

	fs "cloud.google.com/go/firestore"
)

type CalendarRepository struct {
	Client *fs.Client
}

func NewCalendarRepository(client *fs.Client) repositories.CalendarRepository {
	return &CalendarRepository{Client: client}
}

func (r *CalendarRepository) FindAll(ctx context.Context) ([]models.CalendarEvent, error) {
	docs, err := getAll(ctx, r.Client.Collection(calendarCollection).OrderBy("date", fs.Asc))
	if err != nil {
		return nil, err
	}
	events := make([]models.CalendarEvent, 0, len(docs))
	for _, snap := range docs {
		events = append(events, toCalendarEvent(snap))
	}
	return events, nil
}

func (r *CalendarRepository) FindByID(ctx context.Context, id string) (models.CalendarEvent, error) {
	ref, err := docRef(r.Client, calendarCollection, id)
	if err != nil {
		return models.CalendarEvent{}, err
	}
	snap, err := ref.Get(ctx)
	if err != nil {
		return models.CalendarEvent{}, mapErr(err)
	}
	return toCalendarEvent(snap), nil
}

func (r *CalendarRepository) Create(ctx context.Context, event models.CalendarEvent) (string, error) {
	ref, _, err := r.Client.Collection(calendarCollection).Add(ctx, calendarEventData(event))
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (r *CalendarRepository) Update(ctx context.Context, id string, fields repositories.Fields) error {
	ref, err := docRef(r.Client, calendarCollection, id)
	if err != nil {
		return err
	}
	_, err = ref.Update(ctx, toUpdates(fields, true))
	return mapErr(err)
}

func (r *CalendarRepository) Delete(ctx context.Context, id string) error {
	ref, err := docRef(r.Client, calendarCollection, id)
	if err != nil {
		return err
	}
	_, err = ref.Delete(ctx)
	return mapErr(err)
}
