package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"snapevents/internal/domain"
)

type eventQueryService struct {
	eventRepo      domain.EventRepository
	content        domain.ContentFormatter
	siteURL        string
	location       *time.Location
	now            func() time.Time
	contextTimeout time.Duration
}

// NewEventQueryService creates the read side used by listings, blocks, feeds
// and event pages. loc defines which calendar day counts as today.
func NewEventQueryService(eventRepo domain.EventRepository, content domain.ContentFormatter, siteURL string, loc *time.Location, timeout time.Duration) domain.EventQueryService {
	return &eventQueryService{
		eventRepo:      eventRepo,
		content:        content,
		siteURL:        siteURL,
		location:       loc,
		now:            time.Now,
		contextTimeout: timeout,
	}
}

func (s *eventQueryService) ListUpcoming(ctx context.Context, criteria domain.ListingCriteria) (domain.ListingResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	criteria = criteria.Normalized()
	today := domain.Today(s.now(), s.location)

	events, err := s.eventRepo.ListUpcoming(ctx, today, criteria)
	if err != nil {
		return domain.ListingResult{}, fmt.Errorf("list upcoming events: %w", err)
	}
	total, err := s.eventRepo.CountUpcoming(ctx, today, criteria)
	if err != nil {
		return domain.ListingResult{}, fmt.Errorf("count upcoming events: %w", err)
	}

	views := make([]domain.EventView, 0, len(events))
	for _, e := range events {
		views = append(views, domain.NewEventView(e, s.siteURL, s.content.Excerpt(e.Excerpt, e.Content)))
	}
	return domain.ListingResult{Events: views, Total: total}, nil
}

func (s *eventQueryService) UpcomingEvents(ctx context.Context, criteria domain.ListingCriteria) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListUpcoming(ctx, domain.Today(s.now(), s.location), criteria.Normalized())
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	return events, nil
}

func (s *eventQueryService) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.Status != domain.StatusPublish {
		return nil, domain.ErrNotFound
	}
	return event, nil
}

type cachedEventQueryService struct {
	domain.EventQueryService
	cache    domain.ListingCache
	location *time.Location
	now      func() time.Time
	logger   *slog.Logger
}

// NewCachedEventQueryService serves listings from cache when possible. Keys
// include the current day so results never outlive the upcoming filter.
// Cache errors are logged and the inner service is used instead.
func NewCachedEventQueryService(inner domain.EventQueryService, cache domain.ListingCache, loc *time.Location, logger *slog.Logger) domain.EventQueryService {
	return &cachedEventQueryService{
		EventQueryService: inner,
		cache:             cache,
		location:          loc,
		now:               time.Now,
		logger:            logger,
	}
}

func (s *cachedEventQueryService) ListUpcoming(ctx context.Context, criteria domain.ListingCriteria) (domain.ListingResult, error) {
	criteria = criteria.Normalized()
	key := criteria.CacheKey() + ":" + domain.Today(s.now(), s.location)

	result, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.WarnContext(ctx, "listing cache read failed", "key", key, "error", err)
	} else if ok {
		return result, nil
	}

	result, err = s.EventQueryService.ListUpcoming(ctx, criteria)
	if err != nil {
		return domain.ListingResult{}, err
	}
	if err := s.cache.Set(ctx, key, result); err != nil {
		s.logger.WarnContext(ctx, "listing cache write failed", "key", key, "error", err)
	}
	return result, nil
}
