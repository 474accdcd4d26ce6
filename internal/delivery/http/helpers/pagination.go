package helpers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"snapevents/internal/domain"
)

// Listing query parameter defaults and limits.
const (
	DefaultPage    = 1
	DefaultPerPage = 6
	MinPerPage     = 1
	MaxPerPage     = 100

	// MaxPage keeps page * per_page within int.
	MaxPage = math.MaxInt / MaxPerPage
)

// ParseListingQuery reads page, per_page, order and the optional city, state
// and country filters from the query string. Unparseable values fall back to
// defaults and out of range values are clamped, so it never fails.
func ParseListingQuery(r *http.Request) domain.ListingCriteria {
	q := r.URL.Query()

	page := DefaultPage
	if v, err := strconv.Atoi(strings.TrimSpace(q.Get("page"))); err == nil {
		page = min(max(v, DefaultPage), MaxPage)
	}
	perPage := DefaultPerPage
	if v, err := strconv.Atoi(strings.TrimSpace(q.Get("per_page"))); err == nil {
		perPage = min(max(v, MinPerPage), MaxPerPage)
	}

	return domain.ListingCriteria{
		Page:     page,
		PageSize: perPage,
		Order:    domain.ParseSortOrder(q.Get("order"), domain.SortAsc),
		City:     strings.TrimSpace(q.Get("city")),
		State:    strings.TrimSpace(q.Get("state")),
		Country:  strings.TrimSpace(q.Get("country")),
	}
}
