package domain

import (
	"context"
	"strings"
	"time"
)

// Event statuses. Only published events are eligible for listings.
const (
	StatusPublish = "publish"
	StatusDraft   = "draft"
)

// Event represents one stored event record.
type Event struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	Status       string    `json:"status"`
	Title        string    `json:"title"`
	Excerpt      string    `json:"excerpt"`
	Content      string    `json:"content"`
	ThumbnailURL string    `json:"thumbnail_url"`
	StartDate    string    `json:"start_date"` // YYYYMMDD
	EndDate      string    `json:"end_date"`   // YYYYMMDD, optional
	Venue        string    `json:"venue"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Country      string    `json:"country"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Location joins venue, city, state and country with ", ", skipping empty parts.
func (e *Event) Location() string {
	return JoinLocation(e.Venue, e.City, e.State, e.Country)
}

// JoinLocation joins the non-empty parts in the given order with ", ".
func JoinLocation(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}

// IsListable reports whether the event passes the upcoming filter for the given
// day (YYYYMMDD): published, with a well-formed start date on or after today.
func (e *Event) IsListable(today string) bool {
	if e.Status != StatusPublish {
		return false
	}
	if _, ok := ParseEventDate(e.StartDate); !ok {
		return false
	}
	return e.StartDate >= today
}

// MatchesFilters reports whether the event satisfies every non-empty
// city/state/country equality filter of the criteria.
func (e *Event) MatchesFilters(c ListingCriteria) bool {
	if c.City != "" && e.City != c.City {
		return false
	}
	if c.State != "" && e.State != c.State {
		return false
	}
	if c.Country != "" && e.Country != c.Country {
		return false
	}
	return true
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	// ListUpcoming returns one page of listable events for the given day,
	// ordered by start date then id.
	ListUpcoming(ctx context.Context, today string, criteria ListingCriteria) ([]*Event, error)
	// CountUpcoming counts every listable event matching the criteria filters,
	// ignoring page and page size.
	CountUpcoming(ctx context.Context, today string, criteria ListingCriteria) (int, error)
}

// EventQueryService reads upcoming events for listings, feeds and pages.
type EventQueryService interface {
	ListUpcoming(ctx context.Context, criteria ListingCriteria) (ListingResult, error)
	// UpcomingEvents returns the raw records of one listing page.
	UpcomingEvents(ctx context.Context, criteria ListingCriteria) ([]*Event, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*Event, error)
}

// EventInput carries editor-supplied fields for create and update.
type EventInput struct {
	Title        string `json:"title"`
	Status       string `json:"status"`
	Excerpt      string `json:"excerpt"`
	Content      string `json:"content"`
	ThumbnailURL string `json:"thumbnail_url"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Venue        string `json:"venue"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
}

// EventEditorService creates and updates events on behalf of an editor.
type EventEditorService interface {
	CreateEvent(ctx context.Context, in EventInput) (*Event, error)
	UpdateEvent(ctx context.Context, id string, in EventInput) (*Event, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
}
