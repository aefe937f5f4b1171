package impl

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountRepositoryImpl struct {
	DB *gorm.DB
}

func NewAccountRepository(db *gorm.DB) repositories.AccountRepository {
	return &AccountRepositoryImpl{DB: db}
}

func (r *AccountRepositoryImpl) FindByID(ctx context.Context, id string) (models.Account, error) {
	var account models.Account
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&account).Error; err != nil {
		return models.Account{}, mapErr(err)
	}
	return account, nil
}

func (r *AccountRepositoryImpl) FindByEmail(ctx context.Context, email string) ([]models.Account, error) {
	var accounts []models.Account
	err := r.DB.WithContext(ctx).Where("email = ?", email).Order("created_at ASC").Find(&accounts).Error
	return accounts, err
}

func (r *AccountRepositoryImpl) FindAll(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	err := r.DB.WithContext(ctx).Order("name ASC").Find(&accounts).Error
	return accounts, err
}

func (r *AccountRepositoryImpl) Create(ctx context.Context, account models.Account) (string, error) {
	account.ID = uuid.NewString()
	if err := r.Save(ctx, account); err != nil {
		return "", err
	}
	return account.ID, nil
}

func (r *AccountRepositoryImpl) Save(ctx context.Context, account models.Account) error {
	if account.CreatedAt == nil {
		account.CreatedAt = now()
	}
	account.UpdatedAt = now()
	return r.DB.WithContext(ctx).Save(&account).Error
}

func (r *AccountRepositoryImpl) Update(ctx context.Context, id string, fields repositories.Fields) error {
	cols, err := toColumns(fields, accountColumns, true)
	if err != nil {
		return err
	}
	return updateByID(r.DB.WithContext(ctx), &models.Account{}, id, cols)
}

func (r *AccountRepositoryImpl) Delete(ctx context.Context, id string) error {
	return deleteByID(r.DB.WithContext(ctx), &models.Account{}, id)
}
