package utils

import (
	"regexp"
	"strings"
)

var (
	reNonDigits  = regexp.MustCompile(`\D`)
	reDigitsOnly = regexp.MustCompile(`^\d+$`)
)

// NormalizePhoneDigits strips every non-digit character, the way the
// dashboard phone inputs do while typing.
func NormalizePhoneDigits(input string) string {
	return reNonDigits.ReplaceAllString(strings.TrimSpace(input), "")
}

func IsDigitsOnly(input string) bool {
	return reDigitsOnly.MatchString(input)
}
