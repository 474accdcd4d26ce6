// Package listing is the headless client controller of rendered listing
// blocks. It binds to the markup produced by the block renderer, drives the
// load more and sort toggle triggers against the listing endpoint and patches
// the bound container in place.
package listing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"golang.org/x/net/html"

	"snapevents/internal/adapters/render"
	"snapevents/internal/domain"
)

// ErrBusy is returned by a trigger that arrives while a request is in flight.
var ErrBusy = errors.New("listing: request in flight")

// DefaultStatusDelay is how long a status message stays visible.
const DefaultStatusDelay = 3 * time.Second

// Status messages.
const (
	MsgAllLoaded      = "All events loaded"
	MsgLoadMoreFailed = "Failed to load more events. Please try again."
	MsgSortFailed     = "Failed to change sort order. Please try again."
	MsgSoonestFirst   = "Showing soonest events first"
	MsgFurthestFirst  = "Showing furthest out events first"
)

const (
	labelLoadMore = "Load More Events"
	labelLoading  = "Loading..."

	classHidden = "snap-events-hidden"
)

// LoadedMessage is the status after a successful load more of n events.
func LoadedMessage(n int) string {
	return "Loaded " + strconv.Itoa(n) + " more events"
}

// Options tunes a controller.
type Options struct {
	// StatusDelay defaults to DefaultStatusDelay. A negative value keeps
	// status messages until the next one.
	StatusDelay time.Duration
	Logger      *slog.Logger
}

// Controller is bound to one listing container. Its methods are safe for
// concurrent use.
type Controller struct {
	fetcher  Fetcher
	renderer domain.ListingRenderer
	logger   *slog.Logger
	delay    time.Duration

	mu        sync.Mutex
	cfg       domain.ListingConfig
	container *html.Node
	controls  *html.Node
	loadMore  *html.Node
	sortBtn   *html.Node
	status    *html.Node

	page      int
	order     domain.SortOrder
	loading   bool
	statusSeq int
	timer     *time.Timer
}

// Bind returns one controller per container in doc carrying a data-config
// attribute. Containers whose configuration cannot be decoded are skipped and
// reported in the returned error.
func Bind(doc *html.Node, fetcher Fetcher, renderer domain.ListingRenderer, opts Options) ([]*Controller, error) {
	var (
		out  []*Controller
		errs []error
	)
	isContainer := func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		_, ok := attr(n, "data-config")
		return ok
	}
	for _, container := range findAll(doc, isContainer) {
		c, err := New(container, fetcher, renderer, opts)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, c)
	}
	return out, errors.Join(errs...)
}

// New binds a controller to a single container element.
func New(container *html.Node, fetcher Fetcher, renderer domain.ListingRenderer, opts Options) (*Controller, error) {
	raw, ok := attr(container, "data-config")
	if !ok {
		return nil, fmt.Errorf("bind listing: container has no data-config: %w", domain.ErrInvalidInput)
	}
	var cfg domain.ListingConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return nil, fmt.Errorf("bind listing: decode data-config: %w", domain.ErrInvalidInput)
	}
	cfg = cfg.Normalized()

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	delay := opts.StatusDelay
	if delay == 0 {
		delay = DefaultStatusDelay
	}

	return &Controller{
		fetcher:   fetcher,
		renderer:  renderer,
		logger:    logger,
		delay:     delay,
		cfg:       cfg,
		container: container,
		controls:  find(container, byClass("snap-events-controls")),
		loadMore:  find(container, byClass("snap-events-load-more")),
		sortBtn:   find(container, byClass("snap-events-sort-toggle")),
		status:    find(container, byClass("snap-events-status")),
		page:      1,
		order:     cfg.DefaultSortOrder,
	}, nil
}

// LoadMore fetches the next page in the current order and appends its cards
// before the controls. On failure the page counter is rolled back.
func (c *Controller) LoadMore(ctx context.Context) error {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return ErrBusy
	}
	c.setLoading(true)
	c.page++
	q := c.query(c.page, c.order)
	c.mu.Unlock()

	resp, err := c.fetcher.Fetch(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.setLoading(false)

	var cards []*html.Node
	if err == nil {
		cards, err = c.renderCards(resp.Events)
	}
	if err != nil {
		c.page--
		c.setStatus(MsgLoadMoreFailed)
		c.logger.WarnContext(ctx, "load more failed", "page", q.Page, "err", err)
		return fmt.Errorf("load page %d: %w", q.Page, err)
	}

	if len(cards) > 0 {
		c.insertCards(cards)
		c.setStatus(LoadedMessage(len(cards)))
	}
	if !resp.HasMore {
		c.setLoadMoreVisible(false)
		c.setStatus(MsgAllLoaded)
	}
	return nil
}

// ToggleSort fetches the first page in the opposite order and, only once it
// has arrived, commits the new order and replaces every card.
func (c *Controller) ToggleSort(ctx context.Context) error {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return ErrBusy
	}
	c.setLoading(true)
	next := c.order.Flip()
	q := c.query(1, next)
	c.mu.Unlock()

	resp, err := c.fetcher.Fetch(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.setLoading(false)

	var cards []*html.Node
	if err == nil {
		cards, err = c.renderCards(resp.Events)
	}
	if err != nil {
		c.setStatus(MsgSortFailed)
		c.logger.WarnContext(ctx, "sort toggle failed", "order", next, "err", err)
		return fmt.Errorf("sort %s: %w", next, err)
	}

	c.order = next
	c.page = 1
	for _, n := range c.cards() {
		n.Parent.RemoveChild(n)
	}
	c.insertCards(cards)
	if c.sortBtn != nil {
		setAttr(c.sortBtn, "data-current-order", string(next))
		if label := find(c.sortBtn, byClass("snap-events-sort-label")); label != nil {
			setText(label, render.SortLabel(next))
		}
	}
	c.setLoadMoreVisible(resp.HasMore)
	if next == domain.SortDesc {
		c.setStatus(MsgFurthestFirst)
	} else {
		c.setStatus(MsgSoonestFirst)
	}
	return nil
}

// Page returns the number of pages currently displayed.
func (c *Controller) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// Order returns the order currently displayed.
func (c *Controller) Order() domain.SortOrder {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order
}

// Loading reports whether a request is in flight.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Status returns the visible status message.
func (c *Controller) Status() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status == nil {
		return ""
	}
	return textContent(c.status)
}

// CardCount returns the number of cards in the container.
func (c *Controller) CardCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cards())
}

// Config returns the configuration decoded from the container.
func (c *Controller) Config() domain.ListingConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg
}

// Render writes the container's current markup.
func (c *Controller) Render(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return html.Render(w, c.container)
}

// Close stops a pending status clear.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) query(page int, order domain.SortOrder) Query {
	return Query{
		Endpoint: c.cfg.RestURL,
		Page:     page,
		PerPage:  c.cfg.Count,
		Order:    order,
		City:     c.cfg.City,
		State:    c.cfg.State,
		Country:  c.cfg.Country,
	}
}

func (c *Controller) renderCards(events []domain.EventView) ([]*html.Node, error) {
	out := make([]*html.Node, 0, len(events))
	for _, e := range events {
		markup, err := c.renderer.Card(c.cfg, e)
		if err != nil {
			return nil, fmt.Errorf("render card %s: %w", e.ID, err)
		}
		n, err := parseElement(string(markup))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// insertCards places cards before the controls, or at the end of the
// container when it has none.
func (c *Controller) insertCards(cards []*html.Node) {
	if len(cards) > 0 {
		if empty := find(c.container, byClass("snap-events-no-events")); empty != nil {
			empty.Parent.RemoveChild(empty)
		}
	}
	for _, n := range cards {
		if c.controls != nil && c.controls.Parent != nil {
			c.controls.Parent.InsertBefore(n, c.controls)
			continue
		}
		c.container.AppendChild(n)
	}
}

func (c *Controller) cards() []*html.Node {
	return findAll(c.container, func(n *html.Node) bool {
		return hasClass(n, "snap-event-card") || hasClass(n, "snap-event-list-item")
	})
}

func (c *Controller) setLoading(loading bool) {
	c.loading = loading
	for _, btn := range []*html.Node{c.loadMore, c.sortBtn} {
		if btn == nil {
			continue
		}
		if loading {
			setAttr(btn, "disabled", "")
		} else {
			removeAttr(btn, "disabled")
		}
	}
	if c.loadMore == nil {
		return
	}
	if label := find(c.loadMore, byClass("snap-events-load-more-label")); label != nil {
		if loading {
			setText(label, labelLoading)
		} else {
			setText(label, labelLoadMore)
		}
	}
}

func (c *Controller) setLoadMoreVisible(visible bool) {
	if c.loadMore == nil {
		return
	}
	if visible {
		removeClass(c.loadMore, classHidden)
	} else {
		addClass(c.loadMore, classHidden)
	}
}

// setStatus shows msg and schedules it to be cleared. A newer message
// replaces the pending clear.
func (c *Controller) setStatus(msg string) {
	if c.status == nil {
		return
	}
	setText(c.status, msg)
	c.statusSeq++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.delay < 0 {
		return
	}
	seq := c.statusSeq
	c.timer = time.AfterFunc(c.delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.statusSeq == seq {
			setText(c.status, "")
		}
	})
}
