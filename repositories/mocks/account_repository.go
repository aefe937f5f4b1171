package mocks

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"context"

	"github.com/stretchr/testify/mock"
)

// AccountRepository is a testify mock of repositories.AccountRepository.
type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) FindByID(ctx context.Context, id string) (models.Account, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Account), args.Error(1)
}

func (m *AccountRepository) FindByEmail(ctx context.Context, email string) ([]models.Account, error) {
	args := m.Called(ctx, email)
	accounts, _ := args.Get(0).([]models.Account)
	return accounts, args.Error(1)
}

func (m *AccountRepository) FindAll(ctx context.Context) ([]models.Account, error) {
	args := m.Called(ctx)
	accounts, _ := args.Get(0).([]models.Account)
	return accounts, args.Error(1)
}

func (m *AccountRepository) Create(ctx context.Context, account models.Account) (string, error) {
	args := m.Called(ctx, account)
	return args.String(0), args.Error(1)
}

func (m *AccountRepository) Save(ctx context.Context, account models.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *AccountRepository) Update(ctx context.Context, id string, fields repositories.Fields) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *AccountRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
