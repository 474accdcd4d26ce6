package services

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"strings"

	"snapevents/internal/domain"
)

var errStorage = errors.New("storage down")

// fakeEventRepo is an in-memory EventRepository for tests. List and count
// return the configured values and record the arguments they were called with.
type fakeEventRepo struct {
	byID   map[string]*domain.Event
	nextID int

	listed    []*domain.Event
	total     int
	listErr   error
	countErr  error
	createErr error

	gotToday    string
	gotCriteria domain.ListingCriteria
	listCalls   int
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: make(map[string]*domain.Event), nextID: 1}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	e.ID = fmt.Sprintf("ev-%d", f.nextID)
	f.nextID++
	cp := *e
	f.byID[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) Update(ctx context.Context, e *domain.Event) error {
	if _, ok := f.byID[e.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	f.byID[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if e, ok := f.byID[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	for _, e := range f.byID {
		if e.Slug == slug {
			cp := *e
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	for _, e := range f.byID {
		if e.Slug == slug && e.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEventRepo) ListUpcoming(ctx context.Context, today string, c domain.ListingCriteria) ([]*domain.Event, error) {
	f.listCalls++
	f.gotToday = today
	f.gotCriteria = c
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listed, nil
}

func (f *fakeEventRepo) CountUpcoming(ctx context.Context, today string, c domain.ListingCriteria) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.total, nil
}

// fakeContent trims text and uses the manual excerpt or the content verbatim.
type fakeContent struct{}

func (fakeContent) Text(s string) string { return strings.TrimSpace(strings.ReplaceAll(s, "<b>", "")) }

func (fakeContent) Body(md string) (template.HTML, error) { return template.HTML(md), nil }

func (fakeContent) Excerpt(manual, content string) string {
	if manual != "" {
		return manual
	}
	return "auto:" + content
}

func (fakeContent) Slug(title string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(title)), " ", "-")
}

// fakeCache is a map-backed ListingCache with injectable failures.
type fakeCache struct {
	entries  map[string]domain.ListingResult
	getErr   error
	setErr   error
	purgeErr error
	purges   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]domain.ListingResult)}
}

func (c *fakeCache) Get(ctx context.Context, key string) (domain.ListingResult, bool, error) {
	if c.getErr != nil {
		return domain.ListingResult{}, false, c.getErr
	}
	r, ok := c.entries[key]
	return r, ok, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, r domain.ListingResult) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[key] = r
	return nil
}

func (c *fakeCache) Purge(ctx context.Context) error {
	c.purges++
	if c.purgeErr != nil {
		return c.purgeErr
	}
	c.entries = make(map[string]domain.ListingResult)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
