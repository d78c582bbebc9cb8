package numberutils

import (
	"strconv"
	"strings"
)

// ToIntWithError converts the given string, ignoring surrounding spaces, to an integer.
func ToIntWithError(str string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(str))
}

// IsIntInRange checks if the given number is within the specified range (inclusive).
func IsIntInRange(num, min, max int) bool {
	return num >= min && num <= max
}
