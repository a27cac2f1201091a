// AngelaMos | 2026
// page.go

package store

import (
	"net/url"
	"strconv"
)

const (
	DefaultLimit  = 10
	DefaultOffset = 0
)

// Page is a limit/offset window. Limit has no upper bound.
type Page struct {
	Limit  int
	Offset int
}

// ParsePage reads limit and offset from a query string. Missing,
// non-numeric or negative values fall back to the defaults.
func ParsePage(q url.Values) Page {
	return Page{
		Limit:  parseNonNegative(q.Get("limit"), DefaultLimit),
		Offset: parseNonNegative(q.Get("offset"), DefaultOffset),
	}
}

// Apply cuts items to the window. Out-of-range offsets yield an empty,
// non-nil slice.
func Apply[T any](p Page, items []T) []T {
	if p.Offset < 0 {
		p.Offset = 0
	}

	if p.Offset >= len(items) || p.Limit <= 0 {
		return []T{}
	}

	end := p.Offset + p.Limit
	if end > len(items) || end < 0 {
		end = len(items)
	}

	out := make([]T, end-p.Offset)
	copy(out, items[p.Offset:end])
	return out
}

func parseNonNegative(raw string, defaultVal int) int {
	if raw == "" {
		return defaultVal
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return defaultVal
	}

	return parsed
}
