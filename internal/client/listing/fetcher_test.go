package listing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"snapevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"events":[{"id":"ev-3","title":"Jazz"}],"total":3,"has_more":false,"current_page":2}`))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.Client(), srv.URL+"/events")
	resp, err := f.Fetch(context.Background(), Query{Page: 2, PerPage: 2, Order: domain.SortDesc, City: "Austin"})
	require.NoError(t, err)

	assert.Equal(t, "2", got.Get("page"))
	assert.Equal(t, "2", got.Get("per_page"))
	assert.Equal(t, "DESC", got.Get("order"))
	assert.Equal(t, "Austin", got.Get("city"))
	assert.False(t, got.Has("state"))
	assert.Equal(t, domain.ListingResponse{Events: []domain.EventView{{ID: "ev-3", Title: "Jazz"}}, Total: 3, CurrentPage: 2}, resp)
}

func TestHTTPFetcher_QueryEndpointWins(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = w.Write([]byte(`{"events":null,"total":0,"has_more":false,"current_page":1}`))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.Client(), srv.URL+"/default")
	resp, err := f.Fetch(context.Background(), Query{Endpoint: srv.URL + "/wp-json/events", Page: 1, PerPage: 6, Order: domain.SortAsc})
	require.NoError(t, err)
	assert.Equal(t, "/wp-json/events", path)
	assert.NotNil(t, resp.Events)
}

func TestHTTPFetcher_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewHTTPFetcher(srv.Client(), srv.URL).Fetch(context.Background(), Query{Page: 1, PerPage: 6, Order: domain.SortAsc})
	require.ErrorIs(t, err, ErrUnexpectedStatus)
}
