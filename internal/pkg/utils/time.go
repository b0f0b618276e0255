package utils

import (
	"time"

	"dentflow-service/internal/pkg/constvars"
)

// Clock is swapped in tests that depend on "today".
var Clock = time.Now

func Today() string {
	return Clock().Format(constvars.DateLayout)
}

func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(constvars.DateLayout, value, time.Local)
}

// IsFutureDate reports whether a YYYY-MM-DD date lies after today.
func IsFutureDate(value string) (bool, error) {
	date, err := ParseDate(value)
	if err != nil {
		return false, err
	}
	now := Clock()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return date.After(today), nil
}
