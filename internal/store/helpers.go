package store

import (
	"time"

	"github.com/google/uuid"
)

// timeLayout is the stored timestamp form: UTC text with millisecond
// precision, so lexicographic order equals chronological order.
const timeLayout = "2006-01-02T15:04:05.000Z"

// now returns the current time in the stored timestamp form.
func now() string {
	return time.Now().UTC().Format(timeLayout)
}

// FormatTime renders t in the stored timestamp form.
func FormatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// ParseTime reads a stored timestamp back into a time.Time.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

// newID generates an opaque record identifier.
func newID() string {
	return uuid.NewString()
}
