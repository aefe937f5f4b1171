package services

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"
)

type CalendarService struct {
	CalendarRepo repositories.CalendarRepository
	Logger       *zap.Logger
}

func NewCalendarService(calendarRepo repositories.CalendarRepository, logger *zap.Logger) *CalendarService {
	return &CalendarService{CalendarRepo: calendarRepo, Logger: logger}
}

// List returns events ordered by date. When the filter names a month or a
// date, recurring events are expanded into their occurrences in that window,
// each carrying the occurrence date.
func (s *CalendarService) List(ctx context.Context, filter models.CalendarFilter) ([]models.CalendarEvent, error) {
	events, err := s.CalendarRepo.FindAll(ctx)
	if err != nil {
		return nil, storeErr("list calendar events", err)
	}

	from, to, windowed := calendarWindow(filter)
	if !windowed {
		return events, nil
	}

	result := []models.CalendarEvent{}
	for _, event := range events {
		if event.Recurrence == "" {
			if event.Date >= from.Format(dateLayout) && event.Date <= to.Format(dateLayout) {
				result = append(result, event)
			}
			continue
		}
		occurrences, err := expand(event, from, to)
		if err != nil {
			s.Logger.Warn("skipping event with bad recurrence",
				zap.String("event_id", event.ID),
				zap.String("recurrence", event.Recurrence),
				zap.Error(err))
			continue
		}
		result = append(result, occurrences...)
	}

	slices.SortStableFunc(result, func(a, b models.CalendarEvent) int {
		if c := strings.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return strings.Compare(a.Time, b.Time)
	})
	return result, nil
}

// calendarWindow turns the filter into an inclusive date range. A date outside
// the requested month yields an empty range.
func calendarWindow(filter models.CalendarFilter) (time.Time, time.Time, bool) {
	var from, to time.Time
	windowed := false

	if filter.Year > 0 && filter.Month >= 1 && filter.Month <= 12 {
		from = time.Date(filter.Year, time.Month(filter.Month), 1, 0, 0, 0, 0, time.UTC)
		to = from.AddDate(0, 1, -1)
		windowed = true
	}
	if filter.Date != "" {
		day, err := time.Parse(dateLayout, filter.Date)
		if err != nil {
			return time.Time{}, time.Time{}.AddDate(0, 0, -1), true
		}
		if windowed && (day.Before(from) || day.After(to)) {
			return day, day.AddDate(0, 0, -1), true
		}
		from, to, windowed = day, day, true
	}
	return from, to, windowed
}

func expand(event models.CalendarEvent, from, to time.Time) ([]models.CalendarEvent, error) {
	rule, err := parseRecurrence(event.Recurrence)
	if err != nil {
		return nil, err
	}
	start, err := time.Parse(dateLayout, event.Date)
	if err != nil {
		return nil, err
	}
	rule.DTStart(start)

	occurrences := []models.CalendarEvent{}
	for _, at := range rule.Between(from, to, true) {
		occurrence := event
		occurrence.Date = at.Format(dateLayout)
		occurrences = append(occurrences, occurrence)
	}
	return occurrences, nil
}

// parseRecurrence accepts an RRULE with or without the "RRULE:" prefix.
func parseRecurrence(recurrence string) (*rrule.RRule, error) {
	return rrule.StrToRRule(strings.TrimPrefix(strings.TrimSpace(recurrence), "RRULE:"))
}

func (s *CalendarService) Create(ctx context.Context, in models.CalendarEventInput, createdBy string) (models.CalendarEvent, error) {
	event := models.CalendarEvent{CreatedBy: createdBy}
	applyEventInput(&event, in)
	if strings.TrimSpace(event.Title) == "" {
		return models.CalendarEvent{}, validationError("event_title_required", "Tittel må fylles ut")
	}
	if err := checkEventDate(event.Date); err != nil {
		return models.CalendarEvent{}, err
	}
	if err := checkRecurrence(event.Recurrence); err != nil {
		return models.CalendarEvent{}, err
	}
	event.ApplyDefaults()

	id, err := s.CalendarRepo.Create(ctx, event)
	if err != nil {
		return models.CalendarEvent{}, storeErr("create calendar event", err)
	}
	event.ID = id
	return event, nil
}

func (s *CalendarService) Update(ctx context.Context, id string, in models.CalendarEventInput) (models.CalendarEvent, error) {
	event, err := s.CalendarRepo.FindByID(ctx, id)
	if err != nil {
		return models.CalendarEvent{}, storeErr("load calendar event "+id, err)
	}
	event.ID = id
	applyEventInput(&event, in)
	if strings.TrimSpace(event.Title) == "" {
		return models.CalendarEvent{}, validationError("event_title_required", "Tittel må fylles ut")
	}
	if in.Date != nil {
		if err := checkEventDate(event.Date); err != nil {
			return models.CalendarEvent{}, err
		}
	}
	if err := checkRecurrence(event.Recurrence); err != nil {
		return models.CalendarEvent{}, err
	}

	fields := eventFields(in)
	if len(fields) > 0 {
		if err := s.CalendarRepo.Update(ctx, id, fields); err != nil {
			return models.CalendarEvent{}, storeErr("update calendar event "+id, err)
		}
	}
	return event, nil
}

func (s *CalendarService) Delete(ctx context.Context, id string) error {
	if err := s.CalendarRepo.Delete(ctx, id); err != nil {
		return storeErr("delete calendar event "+id, err)
	}
	return nil
}

func applyEventInput(event *models.CalendarEvent, in models.CalendarEventInput) {
	if in.Title != nil {
		event.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		event.Description = *in.Description
	}
	if in.Date != nil {
		event.Date = *in.Date
	}
	if in.Time != nil {
		event.Time = *in.Time
	}
	if in.Type != nil {
		event.Type = *in.Type
	}
	if in.Color != nil {
		event.Color = *in.Color
	}
	if in.Recurrence != nil {
		event.Recurrence = strings.TrimSpace(*in.Recurrence)
	}
}

func eventFields(in models.CalendarEventInput) repositories.Fields {
	fields := repositories.Fields{}
	if in.Title != nil {
		fields["title"] = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Date != nil {
		fields["date"] = *in.Date
	}
	if in.Time != nil {
		fields["time"] = *in.Time
	}
	if in.Type != nil {
		fields["type"] = *in.Type
	}
	if in.Color != nil {
		fields["color"] = *in.Color
	}
	if in.Recurrence != nil {
		fields["recurrence"] = strings.TrimSpace(*in.Recurrence)
	}
	return fields
}

func checkEventDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return validationError("invalid_date", "Ugyldig dato")
	}
	return nil
}

func checkRecurrence(recurrence string) error {
	if recurrence == "" {
		return nil
	}
	if _, err := parseRecurrence(recurrence); err != nil {
		return validationError("invalid_recurrence", "Ugyldig gjentakelse")
	}
	return nil
}
