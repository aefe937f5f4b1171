// Package firestore implements the repositories on Cloud Firestore.
package firestore

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"context"
	"fmt"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	childrenCollection   = "children"
	usersCollection      = "users"
	historyCollection    = "history"
	checkinLogCollection = "checkinLogs"
	calendarCollection   = "calendarEvents"
	settingsCollection   = "settings"
)

// mapErr turns a gRPC NotFound from the SDK into repositories.ErrNotFound.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return repositories.ErrNotFound
	}
	return err
}

func docRef(client *fs.Client, collection, id string) (*fs.DocumentRef, error) {
	if id == "" {
		return nil, repositories.ErrNotFound
	}
	ref := client.Collection(collection).Doc(id)
	if ref == nil {
		return nil, fmt.Errorf("invalid document id %q", id)
	}
	return ref, nil
}

// toUpdates converts a partial update into Firestore field updates and stamps updatedAt.
func toUpdates(fields repositories.Fields, stampUpdatedAt bool) []fs.Update {
	updates := make([]fs.Update, 0, len(fields)+1)
	for path, value := range fields {
		updates = append(updates, fs.Update{Path: path, Value: storeValue(value)})
	}
	if stampUpdatedAt {
		if _, ok := fields["updatedAt"]; !ok {
			updates = append(updates, fs.Update{Path: "updatedAt", Value: fs.ServerTimestamp})
		}
	}
	return updates
}

// storeValue rewrites model values that the SDK would otherwise encode with Go field names.
func storeValue(v interface{}) interface{} {
	switch t := v.(type) {
	case *string:
		if t == nil {
			return nil
		}
		return *t
	case []models.Note:
		return notesData(t)
	case models.OpeningHours:
		return openingHoursData(t)
	case *models.OpeningHours:
		if t == nil {
			return nil
		}
		return openingHoursData(*t)
	case []string:
		if t == nil {
			return []string{}
		}
		return t
	default:
		return v
	}
}

func getAll(ctx context.Context, q fs.Query) ([]*fs.DocumentSnapshot, error) {
	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, mapErr(err)
	}
	return docs, nil
}
