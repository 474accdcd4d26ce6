package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"snapevents/internal/delivery/http/helpers"
	"snapevents/internal/delivery/http/middleware"
	"snapevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEditorService struct {
	events  map[string]*domain.Event
	err     error
	lastIn  domain.EventInput
	created int
}

func (f *fakeEditorService) CreateEvent(ctx context.Context, in domain.EventInput) (*domain.Event, error) {
	f.lastIn = in
	if f.err != nil {
		return nil, f.err
	}
	f.created++
	status := in.Status
	if status == "" {
		status = domain.StatusDraft
	}
	return &domain.Event{ID: "ev-new", Slug: "jazz-night", Status: status, Title: in.Title, StartDate: in.StartDate}, nil
}

func (f *fakeEditorService) UpdateEvent(ctx context.Context, id string, in domain.EventInput) (*domain.Event, error) {
	f.lastIn = in
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *e
	out.Title = in.Title
	return &out, nil
}

func (f *fakeEditorService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func authed(req *http.Request) *http.Request {
	return req.WithContext(middleware.SetUserID(req.Context(), "user-1"))
}

func decodeEvent(t *testing.T, rr *httptest.ResponseRecorder) *domain.Event {
	t.Helper()
	var resp EventSuccessResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Nil(t, resp.Error)
	require.NotNil(t, resp.Data)
	return resp.Data
}

func decodeErrorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	require.NotNil(t, envelope.Error)
	return envelope.Error.Code
}

func TestEditorController_CreateEvent(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		auth       bool
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "created as draft by default",
			body:       `{"title":"Jazz Night","start_date":"20270115","city":"Austin"}`,
			auth:       true,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "title required",
			body:       `{"start_date":"20270115"}`,
			auth:       true,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "unknown status",
			body:       `{"title":"Jazz","status":"private"}`,
			auth:       true,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "unknown field",
			body:       `{"title":"Jazz","slug":"mine"}`,
			auth:       true,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "no user in context",
			body:       `{"title":"Jazz"}`,
			wantStatus: http.StatusUnauthorized,
			wantCode:   helpers.ErrCodeUnauthorized,
		},
		{
			name:       "service invalid input",
			body:       `{"title":"Jazz"}`,
			auth:       true,
			svcErr:     fmt.Errorf("title is empty after sanitizing: %w", domain.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "storage failure",
			body:       `{"title":"Jazz"}`,
			auth:       true,
			svcErr:     errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeEditorService{err: tt.svcErr}
			c := NewEditorController(testLogger, svc)

			req := httptest.NewRequest(http.MethodPost, "/admin/events", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.auth {
				req = authed(req)
			}
			rr := httptest.NewRecorder()
			c.CreateEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeErrorCode(t, rr))
				return
			}
			got := decodeEvent(t, rr)
			assert.Equal(t, "ev-new", got.ID)
			assert.Equal(t, domain.StatusDraft, got.Status)
			assert.Equal(t, "Austin", svc.lastIn.City)
		})
	}
}

func TestEditorController_UpdateEvent(t *testing.T) {
	existing := &domain.Event{ID: "ev-1", Slug: "jazz-night", Status: domain.StatusPublish, Title: "Jazz"}

	tests := []struct {
		name       string
		id         string
		body       string
		wantStatus int
		wantCode   string
	}{
		{name: "success", id: "ev-1", body: `{"title":"Jazz Night","status":"publish"}`, wantStatus: http.StatusOK},
		{name: "not found", id: "missing", body: `{"title":"Jazz"}`, wantStatus: http.StatusNotFound, wantCode: helpers.ErrCodeNotFound},
		{name: "malformed body", id: "ev-1", body: `{"title":`, wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeEditorService{events: map[string]*domain.Event{"ev-1": existing}}
			c := NewEditorController(testLogger, svc)

			req := httptest.NewRequest(http.MethodPut, "/admin/events/"+tt.id, strings.NewReader(tt.body))
			req.SetPathValue("id", tt.id)
			rr := httptest.NewRecorder()
			c.UpdateEvent(rr, authed(req))

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeErrorCode(t, rr))
				return
			}
			got := decodeEvent(t, rr)
			assert.Equal(t, "Jazz Night", got.Title)
			assert.Equal(t, "jazz-night", got.Slug)
		})
	}
}

func TestEditorController_GetEvent(t *testing.T) {
	svc := &fakeEditorService{events: map[string]*domain.Event{
		"ev-1": {ID: "ev-1", Status: domain.StatusDraft, Title: "Draft", StartDate: "20270115"},
	}}
	c := NewEditorController(testLogger, svc)

	req := httptest.NewRequest(http.MethodGet, "/admin/events/ev-1", nil)
	req.SetPathValue("id", "ev-1")
	rr := httptest.NewRecorder()
	c.GetEvent(rr, authed(req))

	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeEvent(t, rr)
	assert.Equal(t, domain.StatusDraft, got.Status)
	assert.Equal(t, "20270115", got.StartDate)

	req = httptest.NewRequest(http.MethodGet, "/admin/events/ev-1", nil)
	req.SetPathValue("id", "ev-1")
	rr = httptest.NewRecorder()
	c.GetEvent(rr, req)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}
