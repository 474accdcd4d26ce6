package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"snapevents/internal/domain"
)

const (
	defaultSlug     = "event"
	maxSlugAttempts = 100
)

type eventEditorService struct {
	eventRepo      domain.EventRepository
	content        domain.ContentFormatter
	cache          domain.ListingCache
	logger         *slog.Logger
	now            func() time.Time
	contextTimeout time.Duration
}

// NewEventEditorService creates the write side for editors. cache may be nil
// when listing caching is disabled.
func NewEventEditorService(eventRepo domain.EventRepository, content domain.ContentFormatter, cache domain.ListingCache, logger *slog.Logger, timeout time.Duration) domain.EventEditorService {
	return &eventEditorService{
		eventRepo:      eventRepo,
		content:        content,
		cache:          cache,
		logger:         logger,
		now:            time.Now,
		contextTimeout: timeout,
	}
}

// apply copies sanitized input onto the event. Content is markdown and is
// sanitized when rendered, not when stored.
func (s *eventEditorService) apply(e *domain.Event, in domain.EventInput) error {
	status := s.content.Text(in.Status)
	switch status {
	case "":
		status = domain.StatusDraft
	case domain.StatusPublish, domain.StatusDraft:
	default:
		return fmt.Errorf("unknown status %q: %w", status, domain.ErrInvalidInput)
	}
	title := s.content.Text(in.Title)
	if title == "" {
		return fmt.Errorf("title is required: %w", domain.ErrInvalidInput)
	}

	e.Title = title
	e.Status = status
	e.Excerpt = s.content.Text(in.Excerpt)
	e.Content = in.Content
	e.ThumbnailURL = s.content.Text(in.ThumbnailURL)
	e.StartDate = s.content.Text(in.StartDate)
	e.EndDate = s.content.Text(in.EndDate)
	e.Venue = s.content.Text(in.Venue)
	e.City = s.content.Text(in.City)
	e.State = s.content.Text(in.State)
	e.Country = s.content.Text(in.Country)
	return nil
}

func (s *eventEditorService) CreateEvent(ctx context.Context, in domain.EventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event := &domain.Event{}
	if err := s.apply(event, in); err != nil {
		return nil, err
	}
	slug, err := s.uniqueSlug(ctx, event.Title, "")
	if err != nil {
		return nil, err
	}
	event.Slug = slug
	event.CreatedAt = s.now()
	event.UpdatedAt = event.CreatedAt

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	s.invalidate(ctx)
	return event, nil
}

// UpdateEvent replaces the editable fields. The slug stays fixed so existing
// permalinks keep working.
func (s *eventEditorService) UpdateEvent(ctx context.Context, id string, in domain.EventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if err := s.apply(event, in); err != nil {
		return nil, err
	}
	event.UpdatedAt = s.now()

	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	s.invalidate(ctx)
	return event, nil
}

func (s *eventEditorService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// uniqueSlug returns the title slug, or the first free "-N" suffixed variant
// starting at 2.
func (s *eventEditorService) uniqueSlug(ctx context.Context, title, excludeID string) (string, error) {
	base := s.content.Slug(title)
	if base == "" {
		base = defaultSlug
	}
	candidate := base
	for n := 2; n < maxSlugAttempts+2; n++ {
		exists, err := s.eventRepo.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("check slug: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(n)
	}
	return "", fmt.Errorf("no free slug for %q: %w", base, domain.ErrInvalidInput)
}

func (s *eventEditorService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Purge(ctx); err != nil {
		s.logger.WarnContext(ctx, "listing cache purge failed", "error", err)
	}
}
