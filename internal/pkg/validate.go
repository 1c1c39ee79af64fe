package pkg

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

// dateFormats accepted at the API boundary, tried in order.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// TrimRequired trims every value in place and returns the names of fields
// that are empty afterwards, preserving the given order so 400 bodies are
// stable.
func TrimRequired(fields map[string]*string, order []string) []string {
	var missing []string
	for _, name := range order {
		p := fields[name]
		*p = strings.TrimSpace(*p)
		if *p == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// ParseDate parses a date-like string from the request body.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
