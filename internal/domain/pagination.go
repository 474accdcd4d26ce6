package domain

import "math"

// PaginationParams holds offset-based pagination parameters for list queries.
// A zero PageSize means no limit.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the current page (0-based):
// (Page - 1) * PageSize, saturating at math.MaxInt instead of overflowing.
func (p PaginationParams) Offset() int {
	if p.Page < 1 || p.PageSize < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PageSize
}

// HasMore reports whether records remain after the given page, that is
// page * perPage < total, computed without multiplying. An unlimited page
// size never has more.
func HasMore(page, perPage, total int) bool {
	if perPage < 1 || total < 1 {
		return false
	}
	return page <= (total-1)/perPage
}
