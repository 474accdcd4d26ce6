// Package memory holds in-process repositories used when no database is
// configured. They apply the same listing predicate and ordering as the
// postgres repositories.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"snapevents/internal/domain"
)

type eventRepository struct {
	mu     sync.RWMutex
	byID   map[string]*domain.Event
	bySlug map[string]string
}

// NewEventRepository returns an empty in-memory EventRepository.
func NewEventRepository() domain.EventRepository {
	return &eventRepository{
		byID:   make(map[string]*domain.Event),
		bySlug: make(map[string]string),
	}
}

func (r *eventRepository) Create(_ context.Context, e *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	stored := *e
	r.byID[e.ID] = &stored
	r.bySlug[e.Slug] = e.ID
	return nil
}

func (r *eventRepository) Update(_ context.Context, e *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.byID[e.ID]
	if !ok {
		return domain.ErrNotFound
	}
	delete(r.bySlug, prev.Slug)
	stored := *e
	stored.CreatedAt = prev.CreatedAt
	r.byID[e.ID] = &stored
	r.bySlug[e.Slug] = e.ID
	return nil
}

func (r *eventRepository) GetByID(_ context.Context, id string) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *e
	return &out, nil
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	r.mu.RLock()
	id, ok := r.bySlug[slug]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *eventRepository) SlugExists(_ context.Context, slug, excludeID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.bySlug[slug]
	return ok && id != excludeID, nil
}

// matching returns copies of the listable events that satisfy the filters,
// sorted by start date in the requested direction and then by id.
func (r *eventRepository) matching(today string, c domain.ListingCriteria) []*domain.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Event, 0)
	for _, e := range r.byID {
		if e.IsListable(today) && e.MatchesFilters(c) {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartDate != out[j].StartDate {
			if c.Order == domain.SortDesc {
				return out[i].StartDate > out[j].StartDate
			}
			return out[i].StartDate < out[j].StartDate
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r *eventRepository) ListUpcoming(_ context.Context, today string, c domain.ListingCriteria) ([]*domain.Event, error) {
	all := r.matching(today, c)
	p := c.Pagination()
	if p.PageSize == 0 {
		return all, nil
	}
	start := p.Offset()
	if start >= len(all) {
		return []*domain.Event{}, nil
	}
	end := len(all)
	if p.PageSize < end-start {
		end = start + p.PageSize
	}
	return all[start:end], nil
}

func (r *eventRepository) CountUpcoming(_ context.Context, today string, c domain.ListingCriteria) (int, error) {
	return len(r.matching(today, c)), nil
}
