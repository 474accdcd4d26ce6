package controllers

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"snapevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContent struct{}

func (fakeContent) Text(s string) string { return s }

func (fakeContent) Body(markdown string) (template.HTML, error) {
	return template.HTML("<p>" + markdown + "</p>"), nil
}

func (fakeContent) Excerpt(manual, content string) string { return manual }

func (fakeContent) Slug(title string) string { return title }

type fakePages struct {
	lastView domain.EventView
	lastBody template.HTML
}

func (f *fakePages) EventPage(w io.Writer, view domain.EventView, body template.HTML) error {
	f.lastView = view
	f.lastBody = body
	_, err := fmt.Fprintf(w, "<h1>%s</h1>", view.Title)
	return err
}

func (f *fakePages) NotFoundPage(w io.Writer) error {
	_, err := io.WriteString(w, "<h1>Event not found</h1>")
	return err
}

func TestEventPageController_Show(t *testing.T) {
	svc := &fakeQueryService{bySlug: map[string]*domain.Event{
		"jazz-night": {ID: "ev-1", Slug: "jazz-night", Status: domain.StatusPublish, Title: "Jazz Night", Content: "Bring shoes", StartDate: "20270115", City: "Austin"},
	}}
	pages := &fakePages{}
	c := NewEventPageController(testLogger, svc, fakeContent{}, pages, "https://example.com/")

	req := httptest.NewRequest(http.MethodGet, "/events/jazz-night", nil)
	req.SetPathValue("slug", "jazz-night")
	rr := httptest.NewRecorder()
	c.Show(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "<h1>Jazz Night</h1>", rr.Body.String())
	assert.Equal(t, "https://example.com/events/jazz-night", pages.lastView.Permalink)
	assert.Equal(t, "January 15, 2027", pages.lastView.StartDate)
	assert.Equal(t, template.HTML("<p>Bring shoes</p>"), pages.lastBody)
}

func TestEventPageController_NotFound(t *testing.T) {
	c := NewEventPageController(testLogger, &fakeQueryService{}, fakeContent{}, &fakePages{}, "https://example.com")

	req := httptest.NewRequest(http.MethodGet, "/events/missing", nil)
	req.SetPathValue("slug", "missing")
	rr := httptest.NewRecorder()
	c.Show(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Event not found")
}

func TestEventPageController_StorageFailure(t *testing.T) {
	c := NewEventPageController(testLogger, &fakeQueryService{err: errors.New("db down")}, fakeContent{}, &fakePages{}, "https://example.com")

	req := httptest.NewRequest(http.MethodGet, "/events/jazz-night", nil)
	req.SetPathValue("slug", "jazz-night")
	rr := httptest.NewRecorder()
	c.Show(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "db down")
}
