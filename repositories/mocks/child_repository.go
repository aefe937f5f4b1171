package mocks

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"context"

	"github.com/stretchr/testify/mock"
)

// ChildRepository is a testify mock of repositories.ChildRepository.
type ChildRepository struct {
	mock.Mock
}

func (m *ChildRepository) FindByID(ctx context.Context, id string) (models.Child, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Child), args.Error(1)
}

func (m *ChildRepository) FindAll(ctx context.Context) ([]models.Child, error) {
	args := m.Called(ctx)
	children, _ := args.Get(0).([]models.Child)
	return children, args.Error(1)
}

func (m *ChildRepository) FindByParentID(ctx context.Context, accountID string) ([]models.Child, error) {
	args := m.Called(ctx, accountID)
	children, _ := args.Get(0).([]models.Child)
	return children, args.Error(1)
}

func (m *ChildRepository) Create(ctx context.Context, child models.Child) (string, error) {
	args := m.Called(ctx, child)
	return args.String(0), args.Error(1)
}

func (m *ChildRepository) Update(ctx context.Context, id string, fields repositories.Fields) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *ChildRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
