package services

import (
	"context"
	"fmt"
	"html/template"

	"snapevents/internal/domain"
)

type blockService struct {
	query    domain.EventQueryService
	renderer domain.ListingRenderer
	restURL  string
}

// NewBlockService renders listing blocks from the first page of upcoming
// events. restURL is the listing endpoint embedded for the client controller.
func NewBlockService(query domain.EventQueryService, renderer domain.ListingRenderer, restURL string) domain.BlockService {
	return &blockService{query: query, renderer: renderer, restURL: restURL}
}

func (s *blockService) Render(ctx context.Context, cfg domain.ListingConfig) (template.HTML, error) {
	cfg = cfg.Normalized()
	cfg.RestURL = s.restURL

	result, err := s.query.ListUpcoming(ctx, cfg.Criteria())
	if err != nil {
		return "", fmt.Errorf("query block events: %w", err)
	}
	hasMore := domain.HasMore(1, cfg.Count, result.Total)

	out, err := s.renderer.Listing(cfg, result.Events, hasMore)
	if err != nil {
		return "", fmt.Errorf("render %s block: %w", cfg.Layout, err)
	}
	return out, nil
}
