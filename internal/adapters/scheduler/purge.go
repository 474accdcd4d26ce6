// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"snapevents/internal/domain"
)

const purgeTimeout = time.Minute

// CachePurger clears the listing cache on a cron schedule evaluated in the
// site timezone, so cached pages never span a change of day.
type CachePurger struct {
	cron   *cron.Cron
	cache  domain.ListingCache
	logger *slog.Logger
}

// NewCachePurger creates a purger. loc may be nil for UTC.
func NewCachePurger(cache domain.ListingCache, loc *time.Location, logger *slog.Logger) *CachePurger {
	if loc == nil {
		loc = time.UTC
	}
	return &CachePurger{
		cron:   cron.New(cron.WithLocation(loc)),
		cache:  cache,
		logger: logger,
	}
}

// Start registers the purge job under spec (standard five field syntax) and
// starts the scheduler.
func (p *CachePurger) Start(spec string) error {
	if _, err := p.cron.AddFunc(spec, p.purge); err != nil {
		return fmt.Errorf("schedule cache purge %q: %w", spec, err)
	}
	p.cron.Start()
	p.logger.Info("cache purge scheduled", "schedule", spec)
	return nil
}

// Stop stops the scheduler and returns a context done when running jobs end.
func (p *CachePurger) Stop() context.Context {
	return p.cron.Stop()
}

func (p *CachePurger) purge() {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()
	if err := p.cache.Purge(ctx); err != nil {
		p.logger.Error("listing cache purge failed", "error", err)
		return
	}
	p.logger.Debug("listing cache purged")
}
