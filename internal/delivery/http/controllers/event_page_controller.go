package controllers

import (
	"errors"
	"html/template"
	"io"
	"log/slog"
	"net/http"

	"snapevents/internal/domain"
)

// PageRenderer writes full HTML pages.
type PageRenderer interface {
	EventPage(w io.Writer, view domain.EventView, body template.HTML) error
	NotFoundPage(w io.Writer) error
}

type EventPageController struct {
	Logger  *slog.Logger
	Service domain.EventQueryService
	Content domain.ContentFormatter
	Pages   PageRenderer
	SiteURL string
}

func NewEventPageController(logger *slog.Logger, svc domain.EventQueryService, content domain.ContentFormatter, pages PageRenderer, siteURL string) *EventPageController {
	return &EventPageController{
		Logger:  logger,
		Service: svc,
		Content: content,
		Pages:   pages,
		SiteURL: siteURL,
	}
}

// Show godoc
// @Summary Event page
// @Description Renders the HTML page of a published event. Drafts and unknown slugs get a 404 page.
// @Tags events
// @Produce html
// @Param slug path string true "Event slug"
// @Success 200 {string} string "HTML page"
// @Failure 404 {string} string "HTML page"
// @Router /events/{slug} [get]
func (c *EventPageController) Show(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetPublishedBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.notFound(w)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	body, err := c.Content.Body(event.Content)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "render event body", "slug", event.Slug, "err", err)
		body = ""
	}
	view := domain.NewEventView(event, c.SiteURL, event.Excerpt)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Pages.EventPage(w, view, body); err != nil {
		c.Logger.ErrorContext(r.Context(), "render event page", "slug", event.Slug, "err", err)
	}
}

func (c *EventPageController) notFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := c.Pages.NotFoundPage(w); err != nil {
		c.Logger.Error("render not found page", "err", err)
	}
}
