package models

const (
	DefaultEventType  = "general"
	DefaultEventColor = "#3b82f6"
)

// CalendarEvent is an entry on the kindergarten calendar. Recurrence, when set,
// is an RFC 5545 RRULE anchored at Date.
type CalendarEvent struct {
	ID          string  `json:"id" gorm:"primaryKey"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Date        string  `json:"date" gorm:"index" validate:"required,datetime=2006-01-02"`
	Time        string  `json:"time"`
	Type        string  `json:"type"`
	Color       string  `json:"color" validate:"omitempty,hexcolor"`
	CreatedBy   string  `json:"createdBy"`
	Recurrence  string  `json:"recurrence,omitempty"`
	CreatedAt   *string `json:"createdAt"`
	UpdatedAt   *string `json:"updatedAt"`
}

func (CalendarEvent) TableName() string {
	return "calendar_events"
}

func (e *CalendarEvent) ApplyDefaults() {
	if e.Type == "" {
		e.Type = DefaultEventType
	}
	if e.Color == "" {
		e.Color = DefaultEventColor
	}
}

// CalendarEventInput is the partial update payload for an event.
type CalendarEventInput struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Date        *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time        *string `json:"time"`
	Type        *string `json:"type"`
	Color       *string `json:"color" validate:"omitempty,hexcolor"`
	Recurrence  *string `json:"recurrence"`
}

// CalendarFilter selects a month (Year and Month both set) and/or a single date.
type CalendarFilter struct {
	Year  int    `form:"year" validate:"omitempty,gte=1970,lte=9999"`
	Month int    `form:"month" validate:"omitempty,gte=1,lte=12"`
	Date  string `form:"date" validate:"omitempty,datetime=2006-01-02"`
}
