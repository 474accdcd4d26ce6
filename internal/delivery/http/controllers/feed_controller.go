package controllers

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"snapevents/internal/domain"
)

// FeedWriter serializes events as a calendar document.
type FeedWriter interface {
	Write(w io.Writer, events []*domain.Event, stamp time.Time) error
}

type FeedController struct {
	Logger  *slog.Logger
	Service domain.EventQueryService
	Feed    FeedWriter
}

func NewFeedController(logger *slog.Logger, svc domain.EventQueryService, feed FeedWriter) *FeedController {
	return &FeedController{
		Logger:  logger,
		Service: svc,
		Feed:    feed,
	}
}

// Calendar godoc
// @Summary iCalendar feed
// @Description All upcoming published events as all-day VEVENTs, soonest first.
// @Tags events
// @Produce plain
// @Success 200 {string} string "text/calendar document"
// @Failure 500 {string} string "storage failure"
// @Router /events.ics [get]
func (c *FeedController) Calendar(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.UpcomingEvents(r.Context(), domain.ListingCriteria{PageSize: domain.AllEvents, Page: 1, Order: domain.SortAsc})
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `inline; filename="events.ics"`)
	if err := c.Feed.Write(w, events, time.Now()); err != nil {
		c.Logger.ErrorContext(r.Context(), "write calendar", "err", err)
	}
}
