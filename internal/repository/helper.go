package repository

import (
	"fmt"
	"time"
)

// ParseTime parses a stored date in "2006-01-02" or RFC3339 format.
// SQLite's CURRENT_TIMESTAMP layout "2006-01-02 15:04:05" is accepted too.
func ParseTime(str string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, str); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date: %q", str)
}
