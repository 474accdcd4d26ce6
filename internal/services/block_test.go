package services

import (
	"context"
	"errors"
	"html/template"
	"testing"

	"snapevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuery struct {
	result      domain.ListingResult
	err         error
	gotCriteria domain.ListingCriteria
}

func (q *fakeQuery) ListUpcoming(ctx context.Context, c domain.ListingCriteria) (domain.ListingResult, error) {
	q.gotCriteria = c
	return q.result, q.err
}

func (q *fakeQuery) UpcomingEvents(ctx context.Context, c domain.ListingCriteria) ([]*domain.Event, error) {
	return nil, q.err
}

func (q *fakeQuery) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	return nil, domain.ErrNotFound
}

type fakeRenderer struct {
	gotCfg     domain.ListingConfig
	gotEvents  []domain.EventView
	gotHasMore bool
	err        error
}

func (r *fakeRenderer) Listing(cfg domain.ListingConfig, events []domain.EventView, hasMore bool) (template.HTML, error) {
	r.gotCfg, r.gotEvents, r.gotHasMore = cfg, events, hasMore
	return "<div>ok</div>", r.err
}

func (r *fakeRenderer) Card(cfg domain.ListingConfig, e domain.EventView) (template.HTML, error) {
	return "", nil
}

func TestBlockService_Render(t *testing.T) {
	tests := []struct {
		name        string
		count       int
		total       int
		wantHasMore bool
	}{
		{name: "more than one page", count: 6, total: 7, wantHasMore: true},
		{name: "exactly one page", count: 6, total: 6, wantHasMore: false},
		{name: "empty", count: 3, total: 0, wantHasMore: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &fakeQuery{result: domain.ListingResult{Events: []domain.EventView{{ID: "ev-1"}}, Total: tt.total}}
			r := &fakeRenderer{}
			s := NewBlockService(q, r, "https://example.com/events")

			cfg := domain.DefaultListingConfig(domain.LayoutGrid)
			cfg.Count = tt.count
			cfg.DefaultSortOrder = domain.SortDesc
			cfg.Country = "USA"

			out, err := s.Render(context.Background(), cfg)
			require.NoError(t, err)
			assert.Equal(t, template.HTML("<div>ok</div>"), out)

			assert.Equal(t, domain.ListingCriteria{PageSize: tt.count, Page: 1, Order: domain.SortDesc, Country: "USA"}, q.gotCriteria)
			assert.Equal(t, tt.wantHasMore, r.gotHasMore)
			assert.Equal(t, "https://example.com/events", r.gotCfg.RestURL)
			assert.Len(t, r.gotEvents, 1)
		})
	}
}

func TestBlockService_Render_Errors(t *testing.T) {
	cfg := domain.DefaultListingConfig(domain.LayoutList)

	_, err := NewBlockService(&fakeQuery{err: errStorage}, &fakeRenderer{}, "").Render(context.Background(), cfg)
	require.ErrorIs(t, err, errStorage)

	renderErr := errors.New("template broken")
	_, err = NewBlockService(&fakeQuery{}, &fakeRenderer{err: renderErr}, "").Render(context.Background(), cfg)
	require.ErrorIs(t, err, renderErr)
}
