package models

import (
	"slices"
	"strings"
)

const (
	ActionCheckIn  = "checkIn"
	ActionCheckOut = "checkOut"
)

// DefaultPerformer is recorded when nobody is named for a transition.
const DefaultPerformer = "System"

// CheckinLog is an append-only audit record of one attendance transition.
type CheckinLog struct {
	ID          string  `json:"id" gorm:"primaryKey"`
	ChildID     string  `json:"childId" gorm:"index"`
	ChildName   string  `json:"childName"`
	Action      string  `json:"action" validate:"oneof=checkIn checkOut"`
	Date        string  `json:"date" gorm:"index"`
	Time        string  `json:"time"`
	PerformedBy string  `json:"performedBy"`
	Timestamp   *string `json:"timestamp" gorm:"index"`
}

func (CheckinLog) TableName() string {
	return "checkin_logs"
}

// LogFilter narrows a checkin log query. Zero values mean "no filter".
type LogFilter struct {
	ChildID string `form:"childId" json:"childId"`
	Date    string `form:"date" json:"date" validate:"omitempty,datetime=2006-01-02"`
	Limit   int    `form:"limit" json:"limit" validate:"gte=0,lte=1000"`
}

// SortLogsDesc orders logs newest first. Entries without a timestamp go last.
func SortLogsDesc(logs []CheckinLog) {
	slices.SortStableFunc(logs, func(a, b CheckinLog) int {
		return compareTimestampsDesc(a.Timestamp, b.Timestamp)
	})
}

func compareTimestampsDesc(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return strings.Compare(*b, *a)
}

// AttendanceEvent is pushed to live listeners after a transition.
type AttendanceEvent struct {
	ChildID     string   `json:"childId"`
	ChildName   string   `json:"childName"`
	Action      string   `json:"action"`
	Time        string   `json:"time"`
	PerformedBy string   `json:"performedBy"`
	ParentIDs   []string `json:"-"`
}
