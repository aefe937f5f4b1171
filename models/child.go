package models

import (
	"errors"
	"slices"
)

// DefaultGroup is the classroom a child lands in when none is given.
const DefaultGroup = "Mauren"

type Note struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// Child is a document in the children collection.
// CheckedInAt and CheckedOutAt are "HH:MM" strings and never both set.
type Child struct {
	ID              string   `json:"id" gorm:"primaryKey"`
	Name            string   `json:"name" validate:"required"`
	Age             int      `json:"age" validate:"gte=0"`
	Group           string   `json:"group"`
	Avatar          string   `json:"avatar"`
	IsCheckedIn     bool     `json:"isCheckedIn"`
	CheckedInAt     *string  `json:"checkedInAt"`
	CheckedOutAt    *string  `json:"checkedOutAt"`
	ParentIDs       []string `json:"parentIds" gorm:"serializer:json;type:jsonb"`
	PrimaryParentID *string  `json:"primaryParentId"`
	Notes           []Note   `json:"notes" gorm:"serializer:json;type:jsonb"`
	CreatedAt       *string  `json:"createdAt"`
	UpdatedAt       *string  `json:"updatedAt"`
}

func (Child) TableName() string {
	return "children"
}

var (
	ErrPrimaryNotGuardian = errors.New("primaryParentId is not one of parentIds")
	ErrBothTimesSet       = errors.New("checkedInAt and checkedOutAt are both set")
)

// Validate checks the invariants a stored child must satisfy.
func (c Child) Validate() error {
	if c.PrimaryParentID != nil && !c.HasParent(*c.PrimaryParentID) {
		return ErrPrimaryNotGuardian
	}
	if c.CheckedInAt != nil && c.CheckedOutAt != nil {
		return ErrBothTimesSet
	}
	return nil
}

func (c *Child) SetName(name string) {
	c.Name = name
	c.Avatar = Avatar(name)
}

func (c Child) HasParent(id string) bool {
	return slices.Contains(c.ParentIDs, id)
}

// SetGuardians replaces parentIds with ids (duplicates dropped, order kept).
// primary wins when it is one of ids, otherwise the first id becomes primary.
func (c *Child) SetGuardians(ids []string, primary string) {
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" && !slices.Contains(unique, id) {
			unique = append(unique, id)
		}
	}
	c.ParentIDs = unique

	switch {
	case primary != "" && slices.Contains(unique, primary):
		c.PrimaryParentID = StringPtr(primary)
	case len(unique) > 0:
		c.PrimaryParentID = StringPtr(unique[0])
	default:
		c.PrimaryParentID = nil
	}
}

// RemoveParent drops id from parentIds. When id was the primary contact
// the first remaining guardian takes over. Reports whether anything changed.
func (c *Child) RemoveParent(id string) bool {
	if !c.HasParent(id) {
		return false
	}
	c.ParentIDs = slices.DeleteFunc(slices.Clone(c.ParentIDs), func(p string) bool { return p == id })
	if c.PrimaryParentID != nil && *c.PrimaryParentID == id {
		if len(c.ParentIDs) > 0 {
			c.PrimaryParentID = StringPtr(c.ParentIDs[0])
		} else {
			c.PrimaryParentID = nil
		}
	}
	return true
}

// ChildWithGuardians is a child with its parentIds resolved to accounts.
type ChildWithGuardians struct {
	Child
	Parents []Guardian `json:"parents"`
}

// ChildInput is the create/update payload. Nil fields are left untouched on update.
type ChildInput struct {
	Name      *string         `json:"name" validate:"omitempty,min=1"`
	Age       *int            `json:"age" validate:"omitempty,gte=0,lte=10"`
	Group     *string         `json:"group"`
	Guardians []GuardianInput `json:"parents" validate:"omitempty,dive"`
}

type NoteInput struct {
	Text string `json:"text" validate:"required"`
}
