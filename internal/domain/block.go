package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
)

// Block layouts.
const (
	LayoutGrid = "grid"
	LayoutList = "list"
)

const (
	defaultBlockCount  = 6
	maxBlockCount      = 100
	defaultGridColumns = 3
	maxGridColumns     = 6
)

// ListingConfig is the configuration of one listing block. Both the grid and
// the list layout use it; fields that only one layout styles are carried by
// both. It is embedded in the rendered container as JSON and read back by the
// client controller, so every field must survive a JSON round trip.
type ListingConfig struct {
	Layout  string `json:"layout"`
	Count   int    `json:"count"`
	Columns int    `json:"columns"`

	ShowExcerpt  bool `json:"showExcerpt"`
	ShowImage    bool `json:"showImage"`
	ShowDate     bool `json:"showDate"`
	ShowLocation bool `json:"showLocation"`

	EnableLoadMore   bool      `json:"enableLoadMore"`
	EnableSort       bool      `json:"enableSort"`
	DefaultSortOrder SortOrder `json:"defaultSortOrder"`

	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`

	// Grid card style.
	CardBackgroundColor string `json:"cardBackgroundColor"`
	CardTextColor       string `json:"cardTextColor"`
	CardHeadingColor    string `json:"cardHeadingColor"`
	CardLinkColor       string `json:"cardLinkColor"`
	CardPadding         int    `json:"cardPadding"`
	CardBorderRadius    int    `json:"cardBorderRadius"`
	CardBoxShadow       bool   `json:"cardBoxShadow"`
	CardBorderWidth     int    `json:"cardBorderWidth"`
	CardBorderColor     string `json:"cardBorderColor"`
	GridGap             int    `json:"gridGap"`

	// List style.
	TextColor    string `json:"textColor"`
	HeadingColor string `json:"headingColor"`
	LinkColor    string `json:"linkColor"`
	BorderColor  string `json:"borderColor"`
	BorderWidth  int    `json:"borderWidth"`
	ItemPadding  int    `json:"itemPadding"`

	// Buttons.
	ButtonBackgroundColor string `json:"buttonBackgroundColor"`
	ButtonTextColor       string `json:"buttonTextColor"`
	ButtonBorderColor     string `json:"buttonBorderColor"`
	ButtonBorderWidth     int    `json:"buttonBorderWidth"`
	ButtonBorderRadius    int    `json:"buttonBorderRadius"`
	ButtonBoxShadow       bool   `json:"buttonBoxShadow"`

	Anchor  string `json:"anchor"`
	RestURL string `json:"restUrl"`
}

// DefaultListingConfig returns the block defaults for a layout.
func DefaultListingConfig(layout string) ListingConfig {
	return ListingConfig{
		Layout:                layout,
		Count:                 defaultBlockCount,
		Columns:               defaultGridColumns,
		ShowExcerpt:           true,
		ShowImage:             true,
		ShowDate:              true,
		ShowLocation:          true,
		EnableLoadMore:        true,
		EnableSort:            true,
		DefaultSortOrder:      SortAsc,
		CardBackgroundColor:   "#f5f5f5",
		CardTextColor:         "#333333",
		CardHeadingColor:      "#000000",
		CardLinkColor:         "#0073aa",
		CardPadding:           30,
		CardBorderColor:       "#cccccc",
		GridGap:               30,
		TextColor:             "#333333",
		HeadingColor:          "#000000",
		LinkColor:             "#0073aa",
		BorderColor:           "#dddddd",
		BorderWidth:           1,
		ItemPadding:           20,
		ButtonBackgroundColor: "#333333",
		ButtonTextColor:       "#ffffff",
		ButtonBorderColor:     "#333333",
		ButtonBorderRadius:    4,
	}
}

// ParseListingConfig decodes block attributes over the layout defaults, so
// omitted attributes keep their default values.
func ParseListingConfig(layout string, data []byte) (ListingConfig, error) {
	if layout != LayoutGrid && layout != LayoutList {
		return ListingConfig{}, fmt.Errorf("unknown layout %q: %w", layout, ErrInvalidInput)
	}
	cfg := DefaultListingConfig(layout)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return ListingConfig{}, fmt.Errorf("decode block attributes: %w", ErrInvalidInput)
		}
	}
	cfg.Layout = layout
	return cfg.Normalized(), nil
}

// Normalized clamps count and columns and defaults the sort order.
func (c ListingConfig) Normalized() ListingConfig {
	if c.Layout != LayoutList {
		c.Layout = LayoutGrid
	}
	if c.Count < 1 {
		c.Count = defaultBlockCount
	}
	if c.Count > maxBlockCount {
		c.Count = maxBlockCount
	}
	if c.Columns < 1 {
		c.Columns = defaultGridColumns
	}
	if c.Columns > maxGridColumns {
		c.Columns = maxGridColumns
	}
	c.DefaultSortOrder = ParseSortOrder(string(c.DefaultSortOrder), SortAsc)
	c.City = strings.TrimSpace(c.City)
	c.State = strings.TrimSpace(c.State)
	c.Country = strings.TrimSpace(c.Country)
	return c
}

// Criteria returns the first-page query for the block.
func (c ListingConfig) Criteria() ListingCriteria {
	return ListingCriteria{
		PageSize: c.Count,
		Page:     1,
		Order:    c.DefaultSortOrder,
		City:     c.City,
		State:    c.State,
		Country:  c.Country,
	}
}

// BlockService renders listing blocks.
type BlockService interface {
	Render(ctx context.Context, cfg ListingConfig) (template.HTML, error)
}

// ListingRenderer produces the markup of listing blocks. Card is shared by the
// server render and the client controller so both emit identical cards.
type ListingRenderer interface {
	Listing(cfg ListingConfig, events []EventView, hasMore bool) (template.HTML, error)
	Card(cfg ListingConfig, event EventView) (template.HTML, error)
}
