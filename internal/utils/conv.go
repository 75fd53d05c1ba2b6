package utils

import (
	"strconv"
)

// ParseID converts a path parameter to a record id. Returns 0 for
// anything that is not a positive integer.
func ParseID(s string) uint {
	i, err := strconv.Atoi(s)
	if err != nil || i <= 0 {
		return 0
	}
	return uint(i)
}
