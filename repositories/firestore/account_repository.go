package firestore

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"context"

	fs "cloud.google.com/go/firestore"
)

type AccountRepository struct {
	Client *fs.Client
}

func NewAccountRepository(client *fs.Client) repositories.AccountRepository {
	return &AccountRepository{Client: client}
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (models.Account, error) {
	ref, err := docRef(r.Client, usersCollection, id)
	if err != nil {
		return models.Account{}, err
	}
	snap, err := ref.Get(ctx)
	if err != nil {
		return models.Account{}, mapErr(err)
	}
	return toAccount(snap), nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) ([]models.Account, error) {
	docs, err := getAll(ctx, r.Client.Collection(usersCollection).Where("email", "==", email))
	if err != nil {
		return nil, err
	}
	accounts := make([]models.Account, 0, len(docs))
	for _, snap := range docs {
		accounts = append(accounts, toAccount(snap))
	}
	return accounts, nil
}

func (r *AccountRepository) FindAll(ctx context.Context) ([]models.Account, error) {
	docs, err := getAll(ctx, r.Client.Collection(usersCollection).Query)
	if err != nil {
		return nil, err
	}
	accounts := make([]models.Account, 0, len(docs))
	for _, snap := range docs {
		accounts = append(accounts, toAccount(snap))
	}
	return accounts, nil
}

func (r *AccountRepository) Create(ctx context.Context, account models.Account) (string, error) {
	ref, _, err := r.Client.Collection(usersCollection).Add(ctx, accountData(account))
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (r *AccountRepository) Save(ctx context.Context, account models.Account) error {
	ref, err := docRef(r.Client, usersCollection, account.ID)
	if err != nil {
		return err
	}
	_, err = ref.Set(ctx, accountData(account))
	return err
}

func (r *AccountRepository) Update(ctx context.Context, id string, fields repositories.Fields) error {
	ref, err := docRef(r.Client, usersCollection, id)
	if err != nil {
		return err
	}
	_, err = ref.Update(ctx, toUpdates(fields, true))
	return mapErr(err)
}

func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	ref, err := docRef(r.Client, usersCollection, id)
	if err != nil {
		return err
	}
	_, err = ref.Delete(ctx)
	return mapErr(err)
}
