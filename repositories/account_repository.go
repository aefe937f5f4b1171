package repositories

import (
	"Henteklar/models"
	"context"
)

type AccountRepository interface {
	FindByID(ctx context.Context, id string) (models.Account, error)
	// FindByEmail returns every account with exactly this email.
	FindByEmail(ctx context.Context, email string) ([]models.Account, error)
	FindAll(ctx context.Context) ([]models.Account, error)
	// Create stores a new account under a generated id and returns it.
	Create(ctx context.Context, account models.Account) (string, error)
	// Save stores the account under account.ID, replacing any existing record.
	Save(ctx context.Context, account models.Account) error
	Update(ctx context.Context, id string, fields Fields) error
	Delete(ctx context.Context, id string) error
}
