package models

import "slices"

const (
	HistoryCreate = "create"
	HistoryUpdate = "update"
	HistoryDelete = "delete"
)

// HistoryEntry records a structural change to a child.
type HistoryEntry struct {
	ID        string  `json:"id" gorm:"primaryKey"`
	Action    string  `json:"action"`
	ChildID   string  `json:"childId" gorm:"index"`
	ChildName string  `json:"childName"`
	Timestamp *string `json:"timestamp" gorm:"index"`
}

func (HistoryEntry) TableName() string {
	return "history"
}

type HistoryFilter struct {
	ChildID string `form:"childId" json:"childId"`
	Date    string `form:"date" json:"date" validate:"omitempty,datetime=2006-01-02"`
	Limit   int    `form:"limit" json:"limit" validate:"gte=0,lte=1000"`
}

func SortHistoryDesc(entries []HistoryEntry) {
	slices.SortStableFunc(entries, func(a, b HistoryEntry) int {
		return compareTimestampsDesc(a.Timestamp, b.Timestamp)
	})
}
