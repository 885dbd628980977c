package utils

import "strconv"

// AtoiDefault parses s as an int, falling back to def when s is empty or
// not a number. The page and page_size query params go through this, so a
// client sending "?page=abc" gets the first page instead of a 400.
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}
