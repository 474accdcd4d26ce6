package listing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"snapevents/internal/domain"
)

// ErrUnexpectedStatus is returned when the listing endpoint answers with a
// non-200 status.
var ErrUnexpectedStatus = errors.New("unexpected listing endpoint status")

// Query is one request to the listing endpoint.
type Query struct {
	// Endpoint overrides the fetcher's default endpoint when set.
	Endpoint string
	Page     int
	PerPage  int
	Order    domain.SortOrder
	City     string
	State    string
	Country  string
}

// Fetcher loads one page of the listing.
type Fetcher interface {
	Fetch(ctx context.Context, q Query) (domain.ListingResponse, error)
}

// HTTPFetcher calls the listing endpoint over HTTP. It does not retry.
type HTTPFetcher struct {
	client   *http.Client
	endpoint string
}

// NewHTTPFetcher returns a fetcher for the listing endpoint at endpoint, used
// for queries that do not name their own.
func NewHTTPFetcher(client *http.Client, endpoint string) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{client: client, endpoint: endpoint}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, q Query) (domain.ListingResponse, error) {
	raw := q.Endpoint
	if raw == "" {
		raw = f.endpoint
	}
	u, err := url.Parse(raw)
	if err != nil {
		return domain.ListingResponse{}, fmt.Errorf("parse listing endpoint: %w", err)
	}
	v := u.Query()
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("per_page", strconv.Itoa(q.PerPage))
	v.Set("order", string(q.Order))
	for key, val := range map[string]string{"city": q.City, "state": q.State, "country": q.Country} {
		if val != "" {
			v.Set(key, val)
		}
	}
	u.RawQuery = v.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.ListingResponse{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := f.client.Do(req)
	if err != nil {
		return domain.ListingResponse{}, fmt.Errorf("failed to fetch events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.ListingResponse{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var data domain.ListingResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return domain.ListingResponse{}, fmt.Errorf("failed to decode events: %w", err)
	}
	if data.Events == nil {
		data.Events = []domain.EventView{}
	}
	return data, nil
}
