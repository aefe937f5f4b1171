package repositories

import "errors"

// ErrNotFound is returned when a document or row does not exist.
var ErrNotFound = errors.New("record not found")

// Fields is a partial update keyed by the JSON field name ("isCheckedIn", "parentIds").
// A nil value clears the field.
type Fields map[string]interface{}
