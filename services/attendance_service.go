package services

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	clockLayout        = "15:04"
	clockLayoutSeconds = "15:04:05"
	dateLayout         = "2006-01-02"
)

// TransitionResult reports both writes of a check-in or check-out.
// The state write always succeeded when a result is returned, the audit
// log append may not have.
type TransitionResult struct {
	Child       models.Child `json:"child"`
	LogID       string       `json:"logId,omitempty"`
	AuditLogged bool         `json:"auditLogged"`
	AuditError  string       `json:"auditError,omitempty"`
}

type AttendanceService struct {
	ChildRepo repositories.ChildRepository
	LogRepo   repositories.CheckinLogRepository
	Publisher AttendancePublisher
	Notifier  GuardianNotifier
	Location  *time.Location
	Now       func() time.Time
	Logger    *zap.Logger
}

func NewAttendanceService(
	childRepo repositories.ChildRepository,
	logRepo repositories.CheckinLogRepository,
	location *time.Location,
	logger *zap.Logger,
) *AttendanceService {
	if location == nil {
		location = time.Local
	}
	return &AttendanceService{
		ChildRepo: childRepo,
		LogRepo:   logRepo,
		Location:  location,
		Now:       time.Now,
		Logger:    logger,
	}
}

func (s *AttendanceService) CheckIn(ctx context.Context, childID, performedBy string) (*TransitionResult, error) {
	return s.transition(ctx, childID, models.ActionCheckIn, performedBy)
}

func (s *AttendanceService) CheckOut(ctx context.Context, childID, performedBy string) (*TransitionResult, error) {
	return s.transition(ctx, childID, models.ActionCheckOut, performedBy)
}

// transition writes the new state, then appends the audit entry as a separate write.
// A failed append does not undo the state change.
func (s *AttendanceService) transition(ctx context.Context, childID, action, performedBy string) (*TransitionResult, error) {
	child, err := s.ChildRepo.FindByID(ctx, childID)
	if err != nil {
		return nil, storeErr("load child "+childID, err)
	}

	now := s.now()
	clock := now.Format(clockLayout)
	checkIn := action == models.ActionCheckIn

	fields := repositories.Fields{"isCheckedIn": checkIn}
	if checkIn {
		fields["checkedInAt"] = clock
		fields["checkedOutAt"] = nil
	} else {
		fields["checkedInAt"] = nil
		fields["checkedOutAt"] = clock
	}
	if err := s.ChildRepo.Update(ctx, childID, fields); err != nil {
		return nil, storeErr("update attendance for "+childID, err)
	}

	child.IsCheckedIn = checkIn
	if checkIn {
		child.CheckedInAt, child.CheckedOutAt = models.StringPtr(clock), nil
	} else {
		child.CheckedInAt, child.CheckedOutAt = nil, models.StringPtr(clock)
	}

	result := &TransitionResult{Child: child}
	entry := models.CheckinLog{
		ChildID:     child.ID,
		ChildName:   child.Name,
		Action:      action,
		Date:        now.Format(dateLayout),
		Time:        clock,
		PerformedBy: performer(performedBy),
	}
	logID, err := s.LogRepo.Append(ctx, entry)
	if err != nil {
		s.Logger.Warn("attendance log not written",
			zap.String("child_id", child.ID),
			zap.String("action", action),
			zap.Error(err))
		result.AuditError = err.Error()
	} else {
		result.AuditLogged = true
		result.LogID = logID
	}

	s.Logger.Info("attendance changed",
		zap.String("child_id", child.ID),
		zap.String("action", action),
		zap.String("time", clock),
		zap.String("performed_by", entry.PerformedBy))

	s.announce(ctx, child, entry)
	return result, nil
}

func (s *AttendanceService) announce(ctx context.Context, child models.Child, entry models.CheckinLog) {
	event := models.AttendanceEvent{
		ChildID:     child.ID,
		ChildName:   child.Name,
		Action:      entry.Action,
		Time:        entry.Time,
		PerformedBy: entry.PerformedBy,
		ParentIDs:   child.ParentIDs,
	}
	if s.Publisher != nil {
		s.Publisher.PublishAttendance(event)
	}
	if s.Notifier != nil {
		if err := s.Notifier.NotifyGuardians(ctx, event); err != nil {
			s.Logger.Warn("guardian notification failed",
				zap.String("child_id", child.ID),
				zap.String("action", entry.Action),
				zap.Error(err))
		}
	}
}

// LogCheckInOut appends an audit entry without touching the child's state.
// Used for manual corrections and backfills.
func (s *AttendanceService) LogCheckInOut(ctx context.Context, childID, childName, action, performedBy string) (*models.CheckinLog, error) {
	if action != models.ActionCheckIn && action != models.ActionCheckOut {
		return nil, validationError("invalid_action", fmt.Sprintf("ukjent handling %q", action))
	}
	if strings.TrimSpace(childID) == "" {
		return nil, validationError("child_id_required", "Barn mangler")
	}

	now := s.now()
	entry := models.CheckinLog{
		ChildID:     childID,
		ChildName:   childName,
		Action:      action,
		Date:        now.Format(dateLayout),
		Time:        now.Format(clockLayoutSeconds),
		PerformedBy: performer(performedBy),
	}
	id, err := s.LogRepo.Append(ctx, entry)
	if err != nil {
		return nil, storeErr("append attendance log", err)
	}
	entry.ID = id
	entry.Timestamp = models.FormatTimestamp(now)
	return &entry, nil
}

func (s *AttendanceService) now() time.Time {
	return s.Now().In(s.Location)
}

func performer(name string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return models.DefaultPerformer
}

// IsNotFound is a convenience for callers that only care about missing records.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
