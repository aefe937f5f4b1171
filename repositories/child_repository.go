package repositories

import (
	"Henteklar/models"
	"context"
)

type ChildRepository interface {
	FindByID(ctx context.Context, id string) (models.Child, error)
	FindAll(ctx context.Context) ([]models.Child, error)
	// FindByParentID returns children whose parentIds contain accountID.
	FindByParentID(ctx context.Context, accountID string) ([]models.Child, error)
	Create(ctx context.Context, child models.Child) (string, error)
	Update(ctx context.Context, id string, fields Fields) error
	Delete(ctx context.Context, id string) error
}
