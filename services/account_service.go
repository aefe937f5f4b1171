package services

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

// AccountService is the admin surface for user accounts.
type AccountService struct {
	AccountRepo repositories.AccountRepository
	ChildRepo   repositories.ChildRepository
	// Identity and Mailer are optional. Without Identity accounts exist
	// only in the store and cannot sign in until linked by e-mail.
	Identity IdentityAdmin
	Mailer   Mailer
	Logger   *zap.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	childRepo repositories.ChildRepository,
	identity IdentityAdmin,
	mailer Mailer,
	logger *zap.Logger,
) *AccountService {
	return &AccountService{
		AccountRepo: accountRepo,
		ChildRepo:   childRepo,
		Identity:    identity,
		Mailer:      mailer,
		Logger:      logger,
	}
}

func (s *AccountService) List(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.AccountRepo.FindAll(ctx)
	if err != nil {
		return nil, storeErr("list accounts", err)
	}
	return accounts, nil
}

func (s *AccountService) Get(ctx context.Context, id string) (models.Account, error) {
	account, err := s.AccountRepo.FindByID(ctx, id)
	if err != nil {
		return models.Account{}, storeErr("load account "+id, err)
	}
	account.ID = id
	return account, nil
}

// Create adds an account. With an identity provider configured the account
// is stored under the new user's uid, and when no password was given the user
// is sent an invite link to choose one.
func (s *AccountService) Create(ctx context.Context, in models.AccountInput) (models.Account, error) {
	name := strings.TrimSpace(models.Deref(in.Name))
	email := strings.TrimSpace(models.Deref(in.Email))
	if name == "" {
		return models.Account{}, validationError("name_required", "Navn må fylles ut")
	}
	if email == "" || !strings.Contains(email, "@") {
		return models.Account{}, validationError("invalid_email", "Vennligst oppgi en gyldig e-postadresse")
	}

	existing, err := s.AccountRepo.FindByEmail(ctx, email)
	if err != nil {
		return models.Account{}, storeErr("find account", err)
	}
	if len(existing) > 0 {
		return models.Account{}, validationError("email_in_use", "E-postadressen er allerede i bruk")
	}

	account := models.Account{
		Email:    email,
		Role:     models.RoleStaff,
		Phone:    models.Deref(in.Phone),
		Relation: models.Deref(in.Relation),
	}
	if in.Role != nil && *in.Role != "" {
		account.Role = *in.Role
	}
	account.SetName(name)

	if s.Identity == nil {
		id, err := s.AccountRepo.Create(ctx, account)
		if err != nil {
			return models.Account{}, storeErr("create account", err)
		}
		account.ID = id
		return account, nil
	}

	uid, err := s.Identity.CreateUser(ctx, email, in.Password, name)
	if err != nil {
		return models.Account{}, err
	}
	account.ID = uid
	if err := s.AccountRepo.Save(ctx, account); err != nil {
		return models.Account{}, storeErr("save account", err)
	}
	s.Logger.Info("account created", zap.String("account_id", uid), zap.String("role", account.Role))

	if in.Password == "" {
		s.invite(ctx, account)
	}
	return account, nil
}

func (s *AccountService) invite(ctx context.Context, account models.Account) {
	if s.Mailer == nil {
		return
	}
	link, err := s.Identity.PasswordResetLink(ctx, account.Email)
	if err == nil {
		err = s.Mailer.SendInviteEmail(ctx, account.Email, account.Name, link)
	}
	if err != nil {
		s.Logger.Warn("invite not sent", zap.String("account_id", account.ID), zap.Error(err))
	}
}

func (s *AccountService) Update(ctx context.Context, id string, in models.AccountInput) (models.Account, error) {
	account, err := s.AccountRepo.FindByID(ctx, id)
	if err != nil {
		return models.Account{}, storeErr("load account "+id, err)
	}
	account.ID = id

	fields := repositories.Fields{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return models.Account{}, validationError("name_required", "Navn må fylles ut")
		}
		account.SetName(name)
		fields["name"] = account.Name
		fields["avatar"] = account.Avatar
	}
	if in.Email != nil && *in.Email != account.Email {
		email := strings.TrimSpace(*in.Email)
		others, err := s.AccountRepo.FindByEmail(ctx, email)
		if err != nil {
			return models.Account{}, storeErr("find account", err)
		}
		for _, other := range others {
			if other.ID != id {
				return models.Account{}, validationError("email_in_use", "E-postadressen er allerede i bruk")
			}
		}
		account.Email = email
		fields["email"] = email
	}
	if in.Role != nil {
		account.Role = *in.Role
		fields["role"] = account.Role
	}
	if in.Phone != nil {
		account.Phone = *in.Phone
		fields["phone"] = account.Phone
	}
	if in.Relation != nil {
		account.Relation = *in.Relation
		fields["relation"] = account.Relation
	}

	if len(fields) == 0 {
		return account, nil
	}
	if err := s.AccountRepo.Update(ctx, id, fields); err != nil {
		return models.Account{}, storeErr("update account "+id, err)
	}
	if in.Name != nil && s.Identity != nil {
		if err := s.Identity.UpdateDisplayName(ctx, account.IdentityUID(), account.Name); err != nil && !errors.Is(err, ErrNotFound) {
			s.Logger.Warn("display name not updated", zap.String("account_id", id), zap.Error(err))
		}
	}
	return account, nil
}

// Delete removes the account after severing it from every child it guards.
// A child whose primary contact it was falls back to its first remaining guardian.
func (s *AccountService) Delete(ctx context.Context, id string) error {
	account, err := s.AccountRepo.FindByID(ctx, id)
	if err != nil {
		return storeErr("load account "+id, err)
	}
	account.ID = id

	children, err := s.ChildRepo.FindByParentID(ctx, id)
	if err != nil {
		return storeErr("find children for account", err)
	}
	for _, child := range children {
		if !child.RemoveParent(id) {
			continue
		}
		err := s.ChildRepo.Update(ctx, child.ID, repositories.Fields{
			"parentIds":       child.ParentIDs,
			"primaryParentId": child.PrimaryParentID,
		})
		if err != nil {
			return storeErr("sever account from child "+child.ID, err)
		}
	}

	if err := s.AccountRepo.Delete(ctx, id); err != nil {
		return storeErr("delete account "+id, err)
	}

	if s.Identity != nil {
		uid := account.IdentityUID()
		if err := s.Identity.DeleteUser(ctx, uid); err != nil && !errors.Is(err, ErrNotFound) {
			s.Logger.Warn("identity user not deleted", zap.String("account_id", id), zap.String("uid", uid), zap.Error(err))
		}
	}
	s.Logger.Info("account deleted", zap.String("account_id", id), zap.Int("children_updated", len(children)))
	return nil
}
