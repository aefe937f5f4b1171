package services

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"context"
	"slices"
	"time"

	"go.uber.org/zap"
)

// VisibilityService decides what a caller may see based on the role in their session.
// Staff and admins see everything. Parents see the children whose parentIds
// contain their account, and only those children's logs.
type VisibilityService struct {
	Guardians   *GuardianService
	ChildRepo   repositories.ChildRepository
	LogRepo     repositories.CheckinLogRepository
	HistoryRepo repositories.HistoryRepository
	Location    *time.Location
	Logger      *zap.Logger
}

func NewVisibilityService(
	guardians *GuardianService,
	childRepo repositories.ChildRepository,
	logRepo repositories.CheckinLogRepository,
	historyRepo repositories.HistoryRepository,
	location *time.Location,
	logger *zap.Logger,
) *VisibilityService {
	if location == nil {
		location = time.Local
	}
	return &VisibilityService{
		Guardians:   guardians,
		ChildRepo:   childRepo,
		LogRepo:     logRepo,
		HistoryRepo: historyRepo,
		Location:    location,
		Logger:      logger,
	}
}

func (s *VisibilityService) ListChildren(ctx context.Context, session models.Session) ([]models.ChildWithGuardians, error) {
	switch {
	case session.IsStaff():
		children, err := s.ChildRepo.FindAll(ctx)
		if err != nil {
			return nil, storeErr("list children", err)
		}
		result := make([]models.ChildWithGuardians, 0, len(children))
		for _, child := range children {
			result = append(result, *s.Guardians.withGuardians(ctx, child))
		}
		return result, nil
	case session.Role == models.RoleParent:
		return s.Guardians.ResolveChildrenForGuardian(ctx, session.Email)
	default:
		return nil, ErrForbidden
	}
}

// GetChild returns ErrNotFound both for missing children and for children
// outside a parent's own set.
func (s *VisibilityService) GetChild(ctx context.Context, session models.Session, childID string) (*models.ChildWithGuardians, error) {
	if !session.IsStaff() {
		owned, err := s.ownsChild(ctx, session, childID)
		if err != nil {
			return nil, err
		}
		if !owned {
			return nil, ErrNotFound
		}
	}

	child, err := s.Guardians.ResolveChildWithGuardians(ctx, childID)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, ErrNotFound
	}
	return child, nil
}

// CanActOnChild reports whether the caller may check the child in or out.
func (s *VisibilityService) CanActOnChild(ctx context.Context, session models.Session, childID string) error {
	if session.IsStaff() {
		return nil
	}
	owned, err := s.ownsChild(ctx, session, childID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrForbidden
	}
	return nil
}

func (s *VisibilityService) ownsChild(ctx context.Context, session models.Session, childID string) (bool, error) {
	if session.Role != models.RoleParent {
		return false, nil
	}
	ids, err := s.Guardians.ChildIDsForGuardian(ctx, session.Email)
	if err != nil {
		return false, err
	}
	return slices.Contains(ids, childID), nil
}

// scopedChildIDs returns the child ids a parent's query runs over, narrowed to
// requested when it is set. scoped is false for staff and admins.
func (s *VisibilityService) scopedChildIDs(ctx context.Context, session models.Session, requested string) (ids []string, scoped bool, err error) {
	if session.IsStaff() {
		return nil, false, nil
	}
	if session.Role != models.RoleParent {
		return nil, true, ErrForbidden
	}
	owned, err := s.Guardians.ChildIDsForGuardian(ctx, session.Email)
	if err != nil {
		return nil, true, err
	}
	if requested == "" {
		return owned, true, nil
	}
	if slices.Contains(owned, requested) {
		return []string{requested}, true, nil
	}
	return []string{}, true, nil
}

// Logs returns checkin log entries newest first. For parents the store is
// queried once per owned child and the results merged.
func (s *VisibilityService) Logs(ctx context.Context, session models.Session, filter models.LogFilter) ([]models.CheckinLog, error) {
	ids, scoped, err := s.scopedChildIDs(ctx, session, filter.ChildID)
	if err != nil {
		return nil, err
	}
	if !scoped {
		logs, err := s.LogRepo.Find(ctx, filter)
		if err != nil {
			return nil, storeErr("find logs", err)
		}
		return logs, nil
	}

	merged := []models.CheckinLog{}
	for _, id := range ids {
		perChild := filter
		perChild.ChildID = id
		logs, err := s.LogRepo.Find(ctx, perChild)
		if err != nil {
			return nil, storeErr("find logs for "+id, err)
		}
		merged = append(merged, logs...)
	}
	models.SortLogsDesc(merged)
	if filter.Limit > 0 && len(merged) > filter.Limit {
		merged = merged[:filter.Limit]
	}
	return merged, nil
}

// History returns structural change entries newest first. The date filter
// compares the entry's local calendar date and is applied before the limit.
func (s *VisibilityService) History(ctx context.Context, session models.Session, filter models.HistoryFilter) ([]models.HistoryEntry, error) {
	ids, scoped, err := s.scopedChildIDs(ctx, session, filter.ChildID)
	if err != nil {
		return nil, err
	}
	if !scoped {
		ids = []string{filter.ChildID}
	}

	fetchLimit := filter.Limit
	if filter.Date != "" {
		fetchLimit = 0
	}

	merged := []models.HistoryEntry{}
	for _, id := range ids {
		entries, err := s.HistoryRepo.Find(ctx, id, fetchLimit)
		if err != nil {
			return nil, storeErr("find history", err)
		}
		for _, e := range entries {
			if filter.Date == "" || s.localDate(e.Timestamp) == filter.Date {
				merged = append(merged, e)
			}
		}
	}
	if len(ids) > 1 {
		models.SortHistoryDesc(merged)
	}
	if filter.Limit > 0 && len(merged) > filter.Limit {
		merged = merged[:filter.Limit]
	}
	return merged, nil
}

func (s *VisibilityService) localDate(ts *string) string {
	if ts == nil {
		return ""
	}
	t, err := time.Parse(time.RFC3339Nano, *ts)
	if err != nil {
		return ""
	}
	return t.In(s.Location).Format(dateLayout)
}
