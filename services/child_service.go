package services

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChildService handles structural changes to children. Every change is
// recorded in history on a best-effort basis.
type ChildService struct {
	ChildRepo   repositories.ChildRepository
	HistoryRepo repositories.HistoryRepository
	Guardians   *GuardianService
	Now         func() time.Time
	Logger      *zap.Logger
}

func NewChildService(
	childRepo repositories.ChildRepository,
	historyRepo repositories.HistoryRepository,
	guardians *GuardianService,
	logger *zap.Logger,
) *ChildService {
	return &ChildService{
		ChildRepo:   childRepo,
		HistoryRepo: historyRepo,
		Guardians:   guardians,
		Now:         time.Now,
		Logger:      logger,
	}
}

func (s *ChildService) CreateChild(ctx context.Context, in models.ChildInput) (*models.ChildWithGuardians, error) {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return nil, validationError("child_name_required", "Barnets navn må fylles ut")
	}

	ids, primary, err := s.resolveGuardians(ctx, in.Guardians)
	if err != nil {
		return nil, err
	}

	child := models.Child{
		Group:       models.DefaultGroup,
		IsCheckedIn: false,
		Notes:       []models.Note{},
	}
	child.SetName(strings.TrimSpace(*in.Name))
	if in.Age != nil {
		child.Age = *in.Age
	}
	if in.Group != nil && strings.TrimSpace(*in.Group) != "" {
		child.Group = strings.TrimSpace(*in.Group)
	}
	child.SetGuardians(ids, primary)

	id, err := s.ChildRepo.Create(ctx, child)
	if err != nil {
		return nil, storeErr("create child", err)
	}
	child.ID = id
	s.recordHistory(ctx, models.HistoryCreate, id, child.Name)

	return s.resolve(ctx, child)
}

// resolveGuardians turns guardian inputs into account ids, creating parent
// accounts for unknown emails. The first input flagged primary wins.
func (s *ChildService) resolveGuardians(ctx context.Context, inputs []models.GuardianInput) ([]string, string, error) {
	ids := make([]string, 0, len(inputs))
	primary := ""
	for _, in := range inputs {
		id := in.ID
		if id == "" {
			var err error
			id, err = s.Guardians.FindOrCreateGuardian(ctx, in)
			if err != nil {
				return nil, "", err
			}
		}
		ids = append(ids, id)
		if in.IsPrimary && primary == "" {
			primary = id
		}
	}
	return ids, primary, nil
}

func (s *ChildService) UpdateChild(ctx context.Context, id string, in models.ChildInput) (*models.ChildWithGuardians, error) {
	child, err := s.ChildRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("load child "+id, err)
	}

	fields := repositories.Fields{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, validationError("child_name_required", "Barnets navn må fylles ut")
		}
		child.SetName(name)
		fields["name"] = child.Name
		fields["avatar"] = child.Avatar
	}
	if in.Age != nil {
		child.Age = *in.Age
		fields["age"] = child.Age
	}
	if in.Group != nil {
		child.Group = strings.TrimSpace(*in.Group)
		if child.Group == "" {
			child.Group = models.DefaultGroup
		}
		fields["group"] = child.Group
	}
	if in.Guardians != nil {
		ids, primary, err := s.resolveGuardians(ctx, in.Guardians)
		if err != nil {
			return nil, err
		}
		child.SetGuardians(ids, primary)
		fields["parentIds"] = child.ParentIDs
		fields["primaryParentId"] = child.PrimaryParentID
	}

	if len(fields) > 0 {
		if err := s.ChildRepo.Update(ctx, id, fields); err != nil {
			return nil, storeErr("update child "+id, err)
		}
	}
	s.recordHistory(ctx, models.HistoryUpdate, id, child.Name)

	return s.resolve(ctx, child)
}

func (s *ChildService) DeleteChild(ctx context.Context, id string) error {
	child, err := s.ChildRepo.FindByID(ctx, id)
	if err != nil {
		return storeErr("load child "+id, err)
	}
	if err := s.ChildRepo.Delete(ctx, id); err != nil {
		return storeErr("delete child "+id, err)
	}
	s.recordHistory(ctx, models.HistoryDelete, id, child.Name)
	return nil
}

func (s *ChildService) AddNote(ctx context.Context, childID, text string) (*models.ChildWithGuardians, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, validationError("note_text_required", "Notatet kan ikke være tomt")
	}
	child, err := s.ChildRepo.FindByID(ctx, childID)
	if err != nil {
		return nil, storeErr("load child "+childID, err)
	}

	child.Notes = append(child.Notes, models.Note{
		ID:        uuid.NewString(),
		Text:      text,
		Timestamp: models.Deref(models.FormatTimestamp(s.Now())),
	})
	if err := s.ChildRepo.Update(ctx, childID, repositories.Fields{"notes": child.Notes}); err != nil {
		return nil, storeErr("save notes for "+childID, err)
	}
	return s.resolve(ctx, child)
}

func (s *ChildService) DeleteNote(ctx context.Context, childID, noteID string) (*models.ChildWithGuardians, error) {
	child, err := s.ChildRepo.FindByID(ctx, childID)
	if err != nil {
		return nil, storeErr("load child "+childID, err)
	}

	kept := make([]models.Note, 0, len(child.Notes))
	for _, n := range child.Notes {
		if n.ID != noteID {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(child.Notes) {
		return nil, errors.Join(ErrNotFound, errors.New("note "+noteID))
	}

	child.Notes = kept
	if err := s.ChildRepo.Update(ctx, childID, repositories.Fields{"notes": child.Notes}); err != nil {
		return nil, storeErr("save notes for "+childID, err)
	}
	return s.resolve(ctx, child)
}

// resolve re-reads the child with its guardians, falling back to the local
// copy when the read races with a delete.
func (s *ChildService) resolve(ctx context.Context, child models.Child) (*models.ChildWithGuardians, error) {
	resolved, err := s.Guardians.ResolveChildWithGuardians(ctx, child.ID)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		return s.Guardians.withGuardians(ctx, child), nil
	}
	return resolved, nil
}

func (s *ChildService) recordHistory(ctx context.Context, action, childID, childName string) {
	_, err := s.HistoryRepo.Append(ctx, models.HistoryEntry{
		Action:    action,
		ChildID:   childID,
		ChildName: childName,
	})
	if err != nil {
		s.Logger.Warn("history entry not written",
			zap.String("child_id", childID),
			zap.String("action", action),
			zap.Error(err))
	}
}
