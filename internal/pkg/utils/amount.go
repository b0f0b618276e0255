package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAmount parses a money field typed into a form. Negative values are
// rejected.
func ParseAmount(field, value string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", field)
	}
	if amount < 0 {
		return 0, fmt.Errorf("%s must not be negative", field)
	}
	return amount, nil
}
