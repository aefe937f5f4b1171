package services

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"Henteklar/repositories/mocks"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var oslo = time.FixedZone("CET", 3600)

type recordingPublisher struct {
	events []models.AttendanceEvent
}

func (p *recordingPublisher) PublishAttendance(event models.AttendanceEvent) {
	p.events = append(p.events, event)
}

type failingNotifier struct {
	calls int
}

func (n *failingNotifier) NotifyGuardians(ctx context.Context, event models.AttendanceEvent) error {
	n.calls++
	return errors.New("fcm down")
}

// steppedClock returns the given times in order, repeating the last one.
func steppedClock(times ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		t := times[i]
		if i < len(times)-1 {
			i++
		}
		return t
	}
}

func newAttendanceService(childRepo *mocks.ChildRepository, logRepo *mocks.CheckinLogRepository, clock func() time.Time) *AttendanceService {
	svc := NewAttendanceService(childRepo, logRepo, oslo, zap.NewNop())
	svc.Now = clock
	return svc
}

func hasNil(fields repositories.Fields, key string) bool {
	v, ok := fields[key]
	return ok && v == nil
}

func TestCheckInClearsCheckedOutAt(t *testing.T) {
	childRepo := new(mocks.ChildRepository)
	logRepo := new(mocks.CheckinLogRepository)
	svc := newAttendanceService(childRepo, logRepo, steppedClock(time.Date(2025, 3, 4, 7, 15, 0, 0, time.UTC)))

	child := models.Child{ID: "c1", Name: "Ola Nordmann", CheckedOutAt: models.StringPtr("15:30")}
	childRepo.On("FindByID", mock.Anything, "c1").Return(child, nil)
	childRepo.On("Update", mock.Anything, "c1", mock.MatchedBy(func(f repositories.Fields) bool {
		return f["isCheckedIn"] == true && f["checkedInAt"] == "08:15" && hasNil(f, "checkedOutAt")
	})).Return(nil)
	logRepo.On("Append", mock.Anything, mock.MatchedBy(func(e models.CheckinLog) bool {
		return e.Action == models.ActionCheckIn && e.Date == "2025-03-04" && e.Time == "08:15" && e.PerformedBy == "Kari"
	})).Return("log1", nil)

	result, err := svc.CheckIn(context.Background(), "c1", "Kari")

	require.NoError(t, err)
	assert.True(t, result.Child.IsCheckedIn)
	assert.Equal(t, "08:15", models.Deref(result.Child.CheckedInAt))
	assert.Nil(t, result.Child.CheckedOutAt)
	assert.True(t, result.AuditLogged)
	assert.Equal(t, "log1", result.LogID)
	childRepo.AssertExpectations(t)
	logRepo.AssertExpectations(t)
}

func TestCheckOutClearsCheckedInAt(t *testing.T) {
	childRepo := new(mocks.ChildRepository)
	logRepo := new(mocks.CheckinLogRepository)
	svc := newAttendanceService(childRepo, logRepo, steppedClock(time.Date(2025, 3, 4, 14, 45, 0, 0, time.UTC)))

	child := models.Child{ID: "c1", Name: "Ola", IsCheckedIn: true, CheckedInAt: models.StringPtr("08:15")}
	childRepo.On("FindByID", mock.Anything, "c1").Return(child, nil)
	childRepo.On("Update", mock.Anything, "c1", mock.MatchedBy(func(f repositories.Fields) bool {
		return f["isCheckedIn"] == false && f["checkedOutAt"] == "15:45" && hasNil(f, "checkedInAt")
	})).Return(nil)
	logRepo.On("Append", mock.Anything, mock.MatchedBy(func(e models.CheckinLog) bool {
		return e.Action == models.ActionCheckOut && e.PerformedBy == models.DefaultPerformer
	})).Return("log2", nil)

	result, err := svc.CheckOut(context.Background(), "c1", "  ")

	require.NoError(t, err)
	assert.False(t, result.Child.IsCheckedIn)
	assert.Nil(t, result.Child.CheckedInAt)
	assert.Equal(t, "15:45", models.Deref(result.Child.CheckedOutAt))
	assert.NoError(t, result.Child.Validate())
}

func TestCheckInTwiceWritesTwoLogs(t *testing.T) {
	childRepo := new(mocks.ChildRepository)
	logRepo := new(mocks.CheckinLogRepository)
	svc := newAttendanceService(childRepo, logRepo, steppedClock(
		time.Date(2025, 3, 4, 7, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 4, 7, 5, 0, 0, time.UTC),
	))

	childRepo.On("FindByID", mock.Anything, "c1").Return(models.Child{ID: "c1"}, nil)
	childRepo.On("Update", mock.Anything, "c1", mock.Anything).Return(nil)
	logRepo.On("Append", mock.Anything, mock.Anything).Return("log", nil)

	_, err := svc.CheckIn(context.Background(), "c1", "")
	require.NoError(t, err)
	second, err := svc.CheckIn(context.Background(), "c1", "")
	require.NoError(t, err)

	assert.True(t, second.Child.IsCheckedIn)
	assert.Equal(t, "08:05", models.Deref(second.Child.CheckedInAt))
	logRepo.AssertNumberOfCalls(t, "Append", 2)
}

func TestCheckInOutInSequenceEndsCheckedIn(t *testing.T) {
	childRepo := new(mocks.ChildRepository)
	logRepo := new(mocks.CheckinLogRepository)
	svc := newAttendanceService(childRepo, logRepo, steppedClock(
		time.Date(2025, 3, 4, 7, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 4, 11, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 4, 12, 30, 0, 0, time.UTC),
	))

	childRepo.On("FindByID", mock.Anything, "c1").Return(models.Child{ID: "c1"}, nil)
	childRepo.On("Update", mock.Anything, "c1", mock.Anything).Return(nil)
	logRepo.On("Append", mock.Anything, mock.Anything).Return("log", nil)

	ctx := context.Background()
	_, err := svc.CheckIn(ctx, "c1", "")
	require.NoError(t, err)
	_, err = svc.CheckOut(ctx, "c1", "")
	require.NoError(t, err)
	last, err := svc.CheckIn(ctx, "c1", "")
	require.NoError(t, err)

	assert.True(t, last.Child.IsCheckedIn)
	assert.Equal(t, "13:30", models.Deref(last.Child.CheckedInAt))
	assert.Nil(t, last.Child.CheckedOutAt)
}

func TestCheckInReportsFailedAuditWrite(t *testing.T) {
	childRepo := new(mocks.ChildRepository)
	logRepo := new(mocks.CheckinLogRepository)
	svc := newAttendanceService(childRepo, logRepo, time.Now)

	childRepo.On("FindByID", mock.Anything, "c1").Return(models.Child{ID: "c1"}, nil)
	childRepo.On("Update", mock.Anything, "c1", mock.Anything).Return(nil)
	logRepo.On("Append", mock.Anything, mock.Anything).Return("", errors.New("deadline exceeded"))

	result, err := svc.CheckIn(context.Background(), "c1", "")

	require.NoError(t, err)
	assert.True(t, result.Child.IsCheckedIn)
	assert.False(t, result.AuditLogged)
	assert.Equal(t, "deadline exceeded", result.AuditError)
}

func TestCheckInMissingChild(t *testing.T) {
	childRepo := new(mocks.ChildRepository)
	logRepo := new(mocks.CheckinLogRepository)
	svc := newAttendanceService(childRepo, logRepo, time.Now)

	childRepo.On("FindByID", mock.Anything, "nope").Return(models.Child{}, repositories.ErrNotFound)

	_, err := svc.CheckIn(context.Background(), "nope", "")

	assert.ErrorIs(t, err, ErrNotFound)
	childRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	logRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestCheckInStoreFailureIsRemoteUnavailable(t *testing.T) {
	childRepo := new(mocks.ChildRepository)
	logRepo := new(mocks.CheckinLogRepository)
	svc := newAttendanceService(childRepo, logRepo, time.Now)

	childRepo.On("FindByID", mock.Anything, "c1").Return(models.Child{ID: "c1"}, nil)
	childRepo.On("Update", mock.Anything, "c1", mock.Anything).Return(errors.New("unavailable"))

	_, err := svc.CheckIn(context.Background(), "c1", "")

	assert.ErrorIs(t, err, ErrRemoteUnavailable)
	logRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestCheckInAnnouncesEvenWhenNotifierFails(t *testing.T) {
	childRepo := new(mocks.ChildRepository)
	logRepo := new(mocks.CheckinLogRepository)
	svc := newAttendanceService(childRepo, logRepo, steppedClock(time.Date(2025, 3, 4, 7, 0, 0, 0, time.UTC)))
	publisher := &recordingPublisher{}
	notifier := &failingNotifier{}
	svc.Publisher = publisher
	svc.Notifier = notifier

	child := models.Child{ID: "c1", Name: "Ola", ParentIDs: []string{"p1"}}
	childRepo.On("FindByID", mock.Anything, "c1").Return(child, nil)
	childRepo.On("Update", mock.Anything, "c1", mock.Anything).Return(nil)
	logRepo.On("Append", mock.Anything, mock.Anything).Return("log1", nil)

	_, err := svc.CheckIn(context.Background(), "c1", "Kari")

	require.NoError(t, err)
	require.Len(t, publisher.events, 1)
	assert.Equal(t, models.AttendanceEvent{
		ChildID:     "c1",
		ChildName:   "Ola",
		Action:      models.ActionCheckIn,
		Time:        "08:00",
		PerformedBy: "Kari",
		ParentIDs:   []string{"p1"},
	}, publisher.events[0])
	assert.Equal(t, 1, notifier.calls)
}

func TestLogCheckInOut(t *testing.T) {
	logRepo := new(mocks.CheckinLogRepository)
	svc := newAttendanceService(new(mocks.ChildRepository), logRepo, steppedClock(time.Date(2025, 3, 4, 7, 0, 9, 0, time.UTC)))

	_, err := svc.LogCheckInOut(context.Background(), "c1", "Ola", "pickUp", "")
	assert.ErrorIs(t, err, ErrValidation)

	logRepo.On("Append", mock.Anything, mock.MatchedBy(func(e models.CheckinLog) bool {
		return e.Time == "08:00:09" && e.Date == "2025-03-04"
	})).Return("log9", nil)

	entry, err := svc.LogCheckInOut(context.Background(), "c1", "Ola", models.ActionCheckOut, "")
	require.NoError(t, err)
	assert.Equal(t, "log9", entry.ID)
	assert.Equal(t, models.DefaultPerformer, entry.PerformedBy)
	assert.NotNil(t, entry.Timestamp)
}
