package firestore

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"context"

	fs "cloud.google.com/go/firestore"
)

type ChildRepository struct {
	Client *fs.Client
}

func NewChildRepository(client *fs.Client) repositories.ChildRepository {
	return &ChildRepository{Client: client}
}

func (r *ChildRepository) FindByID(ctx context.Context, id string) (models.Child, error) {
	ref, err := docRef(r.Client, childrenCollection, id)
	if err != nil {
		return models.Child{}, err
	}
	snap, err := ref.Get(ctx)
	if err != nil {
		return models.Child{}, mapErr(err)
	}
	return toChild(snap), nil
}

func (r *ChildRepository) FindAll(ctx context.Context) ([]models.Child, error) {
	return r.find(ctx, r.Client.Collection(childrenCollection).Query)
}

func (r *ChildRepository) FindByParentID(ctx context.Context, accountID string) ([]models.Child, error) {
	return r.find(ctx, r.Client.Collection(childrenCollection).Where("parentIds", "array-contains", accountID))
}

func (r *ChildRepository) find(ctx context.Context, q fs.Query) ([]models.Child, error) {
	docs, err := getAll(ctx, q)
	if err != nil {
		return nil, err
	}
	children := make([]models.Child, 0, len(docs))
	for _, snap := range docs {
		children = append(children, toChild(snap))
	}
	return children, nil
}

func (r *ChildRepository) Create(ctx context.Context, child models.Child) (string, error) {
	ref, _, err := r.Client.Collection(childrenCollection).Add(ctx, childData(child))
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (r *ChildRepository) Update(ctx context.Context, id string, fields repositories.Fields) error {
	ref, err := docRef(r.Client, childrenCollection, id)
	if err != nil {
		return err
	}
	_, err = ref.Update(ctx, toUpdates(fields, true))
	return mapErr(err)
}

func (r *ChildRepository) Delete(ctx context.Context, id string) error {
	ref, err := docRef(r.Client, childrenCollection, id)
	if err != nil {
		return err
	}
	_, err = ref.Delete(ctx)
	return mapErr(err)
}
