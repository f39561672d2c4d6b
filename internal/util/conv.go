package util

import (
	"strconv"
)

// MustParseUint converts a string to an unsigned integer, returning 0 on
// parse failure.
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

// ParsePositiveInt parses s, falling back to def when s is empty, invalid
// or not positive.
func ParsePositiveInt(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
