package utils

import (
	"fmt"
	"strconv"
)

// ParseID converts a URL parameter into a positive int64 identifier.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", value)
	}
	return id, nil
}
