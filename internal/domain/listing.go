package domain

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// SortOrder is the direction of the start date sort.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// AllEvents is the page size sentinel meaning "no limit".
const AllEvents = -1

// ParseSortOrder parses "asc"/"desc" case-insensitively, returning fallback
// for anything else.
func ParseSortOrder(s string, fallback SortOrder) SortOrder {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(SortAsc):
		return SortAsc
	case string(SortDesc):
		return SortDesc
	}
	return fallback
}

// Flip returns the opposite order.
func (o SortOrder) Flip() SortOrder {
	if o == SortDesc {
		return SortAsc
	}
	return SortDesc
}

// ListingCriteria are the parameters of one listing query.
type ListingCriteria struct {
	PageSize int
	Page     int
	Order    SortOrder
	City     string
	State    string
	Country  string
}

// Normalized returns a copy with page, page size and order brought into range.
func (c ListingCriteria) Normalized() ListingCriteria {
	if c.Page < 1 {
		c.Page = 1
	}
	if c.PageSize < 1 {
		c.PageSize = AllEvents
	}
	c.Order = ParseSortOrder(string(c.Order), SortAsc)
	c.City = strings.TrimSpace(c.City)
	c.State = strings.TrimSpace(c.State)
	c.Country = strings.TrimSpace(c.Country)
	return c
}

// Pagination returns the offset pagination for the criteria. With AllEvents
// the page size is zero, meaning unlimited.
func (c ListingCriteria) Pagination() PaginationParams {
	if c.PageSize == AllEvents {
		return PaginationParams{Page: 1}
	}
	return PaginationParams{Page: c.Page, PageSize: c.PageSize}
}

// CacheKey identifies the criteria in the listing cache. Values are query
// escaped so filters containing separators cannot collide.
func (c ListingCriteria) CacheKey() string {
	return "listing:" + url.Values{
		"per_page": {strconv.Itoa(c.PageSize)},
		"page":     {strconv.Itoa(c.Page)},
		"order":    {string(c.Order)},
		"city":     {c.City},
		"state":    {c.State},
		"country":  {c.Country},
	}.Encode()
}

// EventView is the display projection of an event, as delivered over the wire.
type EventView struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Permalink    string `json:"permalink"`
	Excerpt      string `json:"excerpt"`
	ThumbnailURL string `json:"thumbnail_url"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Venue        string `json:"venue"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
}

// NewEventView projects an event for display. Dates are formatted and the
// permalink is built from siteURL and the slug.
func NewEventView(e *Event, siteURL, excerpt string) EventView {
	return EventView{
		ID:           e.ID,
		Title:        e.Title,
		Permalink:    Permalink(siteURL, e.Slug),
		Excerpt:      excerpt,
		ThumbnailURL: e.ThumbnailURL,
		StartDate:    FormatEventDate(e.StartDate),
		EndDate:      FormatEventDate(e.EndDate),
		Venue:        e.Venue,
		City:         e.City,
		State:        e.State,
		Country:      e.Country,
	}
}

// Location joins venue, city, state and country of the view.
func (v EventView) Location() string {
	return JoinLocation(v.Venue, v.City, v.State, v.Country)
}

// Dates renders the view's date line value.
func (v EventView) Dates() string {
	return DateRange(v.StartDate, v.EndDate)
}

// Permalink returns the public URL of an event page.
func Permalink(siteURL, slug string) string {
	return strings.TrimSuffix(siteURL, "/") + "/events/" + slug
}

// ListingResult is one page of events plus the total matching count.
type ListingResult struct {
	Events []EventView `json:"events"`
	Total  int         `json:"total"`
}

// ListingResponse is the body of the listing endpoint.
type ListingResponse struct {
	Events      []EventView `json:"events"`
	Total       int         `json:"total"`
	HasMore     bool        `json:"has_more"`
	CurrentPage int         `json:"current_page"`
}

// NewListingResponse builds the endpoint response for the given page.
func NewListingResponse(result ListingResult, page, perPage int) ListingResponse {
	events := result.Events
	if events == nil {
		events = []EventView{}
	}
	return ListingResponse{
		Events:      events,
		Total:       result.Total,
		HasMore:     HasMore(page, perPage, result.Total),
		CurrentPage: page,
	}
}

// ListingCache stores listing results keyed by criteria.
type ListingCache interface {
	Get(ctx context.Context, key string) (ListingResult, bool, error)
	Set(ctx context.Context, key string, result ListingResult) error
	Purge(ctx context.Context) error
}
