package impl

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChildRepositoryImpl struct {
	DB *gorm.DB
}

func NewChildRepository(db *gorm.DB) repositories.ChildRepository {
	return &ChildRepositoryImpl{DB: db}
}

func (r *ChildRepositoryImpl) FindByID(ctx context.Context, id string) (models.Child, error) {
	var child models.Child
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&child).Error; err != nil {
		return models.Child{}, mapErr(err)
	}
	return child, nil
}

func (r *ChildRepositoryImpl) FindAll(ctx context.Context) ([]models.Child, error) {
	var children []models.Child
	err := r.DB.WithContext(ctx).Order("name ASC").Find(&children).Error
	return children, err
}

func (r *ChildRepositoryImpl) FindByParentID(ctx context.Context, accountID string) ([]models.Child, error) {
	needle, err := json.Marshal([]string{accountID})
	if err != nil {
		return nil, err
	}
	var children []models.Child
	err = r.DB.WithContext(ctx).Where("parent_ids @> ?::jsonb", string(needle)).Order("name ASC").Find(&children).Error
	return children, err
}

func (r *ChildRepositoryImpl) Create(ctx context.Context, child models.Child) (string, error) {
	child.ID = uuid.NewString()
	if child.CreatedAt == nil {
		child.CreatedAt = now()
	}
	child.UpdatedAt = now()
	if child.ParentIDs == nil {
		child.ParentIDs = []string{}
	}
	if child.Notes == nil {
		child.Notes = []models.Note{}
	}
	if err := r.DB.WithContext(ctx).Create(&child).Error; err != nil {
		return "", err
	}
	return child.ID, nil
}

func (r *ChildRepositoryImpl) Update(ctx context.Context, id string, fields repositories.Fields) error {
	cols, err := toColumns(fields, childColumns, true)
	if err != nil {
		return err
	}
	return updateByID(r.DB.WithContext(ctx), &models.Child{}, id, cols)
}

func (r *ChildRepositoryImpl) Delete(ctx context.Context, id string) error {
	return deleteByID(r.DB.WithContext(ctx), &models.Child{}, id)
}
