package models

import "time"

// TimestampLayout is the ISO-8601 form every stored timestamp is normalised to.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp converts a store value into an ISO-8601 UTC string.
// Strings pass through unchanged, absent or empty values map to nil.
func FormatTimestamp(v interface{}) *string {
	switch t := v.(type) {
	case nil:
		return nil
	case time.Time:
		if t.IsZero() {
			return nil
		}
		s := t.UTC().Format(TimestampLayout)
		return &s
	case *time.Time:
		if t == nil {
			return nil
		}
		return FormatTimestamp(*t)
	case string:
		if t == "" {
			return nil
		}
		return &t
	case *string:
		if t == nil || *t == "" {
			return nil
		}
		s := *t
		return &s
	default:
		return nil
	}
}

// Now returns the current time as a stored timestamp string.
func Now(clock func() time.Time) *string {
	return FormatTimestamp(clock())
}

// StringPtr is a small helper for optional string fields.
func StringPtr(s string) *string {
	return &s
}

// Deref returns the pointed-to string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
