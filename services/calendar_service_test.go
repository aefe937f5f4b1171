package services

import (
	"Henteklar/models"
	"Henteklar/repositories/mocks"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func calendarFixture() (*CalendarService, *mocks.CalendarRepository) {
	repo := new(mocks.CalendarRepository)
	repo.On("FindAll", mock.Anything).Return([]models.CalendarEvent{
		{ID: "e1", Title: "Foreldremøte", Date: "2025-02-27"},
		{ID: "e2", Title: "Turdag", Date: "2025-03-05", Time: "09:00"},
		{ID: "e3", Title: "Svømming", Date: "2025-02-03", Recurrence: "FREQ=WEEKLY;BYDAY=MO;COUNT=10"},
		{ID: "e4", Title: "Bursdag", Date: "2025-03-05", Time: "08:00"},
	}, nil)
	return NewCalendarService(repo, zap.NewNop()), repo
}

func eventDates(events []models.CalendarEvent) []string {
	dates := make([]string, 0, len(events))
	for _, e := range events {
		dates = append(dates, e.ID+"@"+e.Date)
	}
	return dates
}

func TestListCalendarWithoutFilterReturnsStoredEvents(t *testing.T) {
	svc, _ := calendarFixture()

	events, err := svc.List(context.Background(), models.CalendarFilter{})

	require.NoError(t, err)
	assert.Len(t, events, 4)
}

func TestListCalendarMonthExpandsRecurrence(t *testing.T) {
	svc, _ := calendarFixture()

	events, err := svc.List(context.Background(), models.CalendarFilter{Year: 2025, Month: 3})

	require.NoError(t, err)
	assert.Equal(t, []string{
		"e3@2025-03-03",
		"e4@2025-03-05",
		"e2@2025-03-05",
		"e3@2025-03-10",
		"e3@2025-03-17",
		"e3@2025-03-24",
		"e3@2025-03-31",
	}, eventDates(events))
}

func TestListCalendarSingleDate(t *testing.T) {
	svc, _ := calendarFixture()

	events, err := svc.List(context.Background(), models.CalendarFilter{Date: "2025-03-10"})

	require.NoError(t, err)
	assert.Equal(t, []string{"e3@2025-03-10"}, eventDates(events))
}

func TestListCalendarDateOutsideMonthIsEmpty(t *testing.T) {
	svc, _ := calendarFixture()

	events, err := svc.List(context.Background(), models.CalendarFilter{Year: 2025, Month: 2, Date: "2025-03-05"})

	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestCreateEventAppliesDefaults(t *testing.T) {
	repo := new(mocks.CalendarRepository)
	svc := NewCalendarService(repo, zap.NewNop())
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e models.CalendarEvent) bool {
		return e.Type == models.DefaultEventType && e.Color == models.DefaultEventColor && e.CreatedBy == "Kari"
	})).Return("e9", nil)

	title, date := "Juleavslutning", "2025-12-18"
	event, err := svc.Create(context.Background(), models.CalendarEventInput{Title: &title, Date: &date}, "Kari")

	require.NoError(t, err)
	assert.Equal(t, "e9", event.ID)
}

func TestCreateEventRejectsBadRecurrence(t *testing.T) {
	repo := new(mocks.CalendarRepository)
	svc := NewCalendarService(repo, zap.NewNop())

	title, date, rule := "Møte", "2025-03-01", "FREQ=SOMETIMES"
	_, err := svc.Create(context.Background(), models.CalendarEventInput{Title: &title, Date: &date, Recurrence: &rule}, "")

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
