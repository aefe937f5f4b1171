package services

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

// GuardianService resolves the links between children and their guardians' accounts.
type GuardianService struct {
	AccountRepo repositories.AccountRepository
	ChildRepo   repositories.ChildRepository
	Logger      *zap.Logger
}

func NewGuardianService(accountRepo repositories.AccountRepository, childRepo repositories.ChildRepository, logger *zap.Logger) *GuardianService {
	return &GuardianService{AccountRepo: accountRepo, ChildRepo: childRepo, Logger: logger}
}

// ResolveChildWithGuardians loads a child and its guardians.
// Returns nil, nil when the child does not exist.
func (s *GuardianService) ResolveChildWithGuardians(ctx context.Context, childID string) (*models.ChildWithGuardians, error) {
	child, err := s.ChildRepo.FindByID(ctx, childID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("load child", err)
	}
	return s.withGuardians(ctx, child), nil
}

// withGuardians resolves parentIds one by one. Ids that do not resolve are
// left out, orphaned references come from manual data edits.
func (s *GuardianService) withGuardians(ctx context.Context, child models.Child) *models.ChildWithGuardians {
	result := &models.ChildWithGuardians{Child: child, Parents: []models.Guardian{}}
	primary := models.Deref(child.PrimaryParentID)

	seen := make(map[string]bool, len(child.ParentIDs))
	for _, id := range child.ParentIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true

		account, err := s.AccountRepo.FindByID(ctx, id)
		if err != nil {
			s.Logger.Debug("guardian not resolved",
				zap.String("child_id", child.ID),
				zap.String("parent_id", id),
				zap.Error(err))
			continue
		}
		account.ID = id
		result.Parents = append(result.Parents, models.Guardian{
			Account:   account,
			UserID:    id,
			IsPrimary: id == primary,
		})
	}
	return result
}

// FindOrCreateGuardian returns the id of the account registered with in.Email.
// An existing account is returned as-is even when in carries different
// phone or relation values; only a missing account is created, as a parent.
func (s *GuardianService) FindOrCreateGuardian(ctx context.Context, in models.GuardianInput) (string, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return "", validationError("guardian_email_required", "E-postadresse for foresatt mangler")
	}

	existing, err := s.AccountRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", storeErr("find guardian", err)
	}
	if len(existing) > 0 {
		return existing[0].ID, nil
	}

	account := models.Account{
		Email:    email,
		Role:     models.RoleParent,
		Phone:    in.Phone,
		Relation: in.Relation,
	}
	account.SetName(strings.TrimSpace(in.Name))

	id, err := s.AccountRepo.Create(ctx, account)
	if err != nil {
		return "", storeErr("create guardian", err)
	}
	s.Logger.Info("guardian account created", zap.String("account_id", id), zap.String("email", email))
	return id, nil
}

// AccountByEmail returns the first account registered with email, or nil.
func (s *GuardianService) AccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	accounts, err := s.AccountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, storeErr("find account", err)
	}
	if len(accounts) == 0 {
		return nil, nil
	}
	return &accounts[0], nil
}

// ResolveChildrenForGuardian returns every child the guardian with email is linked to.
// Each child is resolved on its own, a failure is logged and that child skipped.
func (s *GuardianService) ResolveChildrenForGuardian(ctx context.Context, email string) ([]models.ChildWithGuardians, error) {
	account, err := s.AccountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return []models.ChildWithGuardians{}, nil
	}

	children, err := s.ChildRepo.FindByParentID(ctx, account.ID)
	if err != nil {
		return nil, storeErr("find children for guardian", err)
	}

	result := make([]models.ChildWithGuardians, 0, len(children))
	for _, child := range children {
		resolved, err := s.ResolveChildWithGuardians(ctx, child.ID)
		if err != nil {
			s.Logger.Warn("skipping child for guardian",
				zap.String("child_id", child.ID),
				zap.String("account_id", account.ID),
				zap.Error(err))
			continue
		}
		if resolved == nil {
			continue
		}
		result = append(result, *resolved)
	}
	return result, nil
}

// ChildIDsForGuardian lists the ids of the children linked to the guardian with email.
func (s *GuardianService) ChildIDsForGuardian(ctx context.Context, email string) ([]string, error) {
	account, err := s.AccountByEmail(ctx, email)
	if err != nil || account == nil {
		return nil, err
	}
	children, err := s.ChildRepo.FindByParentID(ctx, account.ID)
	if err != nil {
		return nil, storeErr("find children for guardian", err)
	}
	ids := make([]string, 0, len(children))
	for _, c := range children {
		ids = append(ids, c.ID)
	}
	return ids, nil
}
