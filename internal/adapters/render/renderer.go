// Package render produces listing block markup and event pages from embedded
// html/template files.
package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"snapevents/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Sort toggle labels, keyed by the order currently displayed.
const (
	LabelSoonestFirst     = "Soonest First"
	LabelFurthestOutFirst = "Furthest Out First"
)

// cssValue accepts colors such as "#fff", "red" and "rgba(0, 0, 0, 0.5)".
var cssValue = regexp.MustCompile(`^[#a-zA-Z0-9(),.%\s-]*$`)

// Renderer implements domain.ListingRenderer and renders event pages.
type Renderer struct {
	tmpl      *template.Template
	sanitizer *bluemonday.Policy
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl, sanitizer: bluemonday.UGCPolicy()}, nil
}

var _ domain.ListingRenderer = (*Renderer)(nil)

// SortLabel returns the toggle label describing the given order.
func SortLabel(order domain.SortOrder) string {
	if order == domain.SortDesc {
		return LabelFurthestOutFirst
	}
	return LabelSoonestFirst
}

type listingData struct {
	Config         domain.ListingConfig
	ContainerClass string
	ContainerStyle template.CSS
	ConfigJSON     string
	Anchor         string
	Cards          []template.HTML
	HasMore        bool
	ButtonStyle    template.CSS
	SortLabel      string
}

type cardData struct {
	Event        domain.EventView
	Excerpt      template.HTML
	Style        template.CSS
	HeadingStyle template.CSS
	LinkStyle    template.CSS
	ImageClass   string
	ContentClass string
	ShowImage    bool
	ShowDate     bool
	ShowLocation bool
	ShowExcerpt  bool
}

type pageData struct {
	View domain.EventView
	Body template.HTML
}

// Listing renders the block container with its configuration blob, one card
// per event and, when enabled, the controls.
func (r *Renderer) Listing(cfg domain.ListingConfig, events []domain.EventView, hasMore bool) (template.HTML, error) {
	cfg = cfg.Normalized()
	raw, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encode block config: %w", err)
	}

	cards := make([]template.HTML, 0, len(events))
	for _, e := range events {
		card, err := r.Card(cfg, e)
		if err != nil {
			return "", err
		}
		cards = append(cards, card)
	}

	data := listingData{
		Config:         cfg,
		ContainerClass: ContainerClass(cfg),
		ContainerStyle: containerStyle(cfg),
		ConfigJSON:     string(raw),
		Anchor:         cfg.Anchor,
		Cards:          cards,
		HasMore:        hasMore,
		ButtonStyle:    buttonStyle(cfg),
		SortLabel:      SortLabel(cfg.DefaultSortOrder),
	}
	return r.execute("listing", data)
}

// Card renders one item fragment for the configured layout.
func (r *Renderer) Card(cfg domain.ListingConfig, e domain.EventView) (template.HTML, error) {
	data := cardData{
		Event:        e,
		Excerpt:      template.HTML(r.sanitizer.Sanitize(e.Excerpt)), //nolint:gosec // sanitized by UGC policy
		ShowImage:    cfg.ShowImage,
		ShowDate:     cfg.ShowDate,
		ShowLocation: cfg.ShowLocation,
		ShowExcerpt:  cfg.ShowExcerpt,
	}
	name := "grid_card"
	if cfg.Layout == domain.LayoutList {
		name = "list_item"
		data.Style = listItemStyle(cfg)
		data.HeadingStyle = "color: var(--list-heading-color, #000000);"
		data.LinkStyle = "color: var(--list-link-color, #0073aa);"
		data.ImageClass = "snap-event-list-image"
		data.ContentClass = "snap-event-list-content"
	} else {
		data.Style = cardStyle(cfg)
		data.HeadingStyle = "color: var(--card-heading-color, #000000);"
		data.LinkStyle = "color: var(--card-link-color, #0073aa);"
		data.ImageClass = "snap-event-image"
		data.ContentClass = "snap-event-content"
	}
	return r.execute(name, data)
}

// EventPage writes the full page of a single event.
func (r *Renderer) EventPage(w io.Writer, view domain.EventView, body template.HTML) error {
	return r.tmpl.ExecuteTemplate(w, "event_page", pageData{View: view, Body: body})
}

// NotFoundPage writes the page shown for unknown or unpublished events.
func (r *Renderer) NotFoundPage(w io.Writer) error {
	return r.tmpl.ExecuteTemplate(w, "not_found", nil)
}

func (r *Renderer) execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("execute %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil //nolint:gosec // produced by html/template
}

// ContainerClass returns the class attribute of the block container.
func ContainerClass(cfg domain.ListingConfig) string {
	if cfg.Layout == domain.LayoutList {
		return "snap-events-list"
	}
	return fmt.Sprintf("snap-events-grid snap-events-columns-%d", cfg.Columns)
}

// color returns v when it is a plain CSS color value, otherwise fallback.
func color(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" || !cssValue.MatchString(v) {
		return fallback
	}
	return v
}

func buttonVars(cfg domain.ListingConfig) string {
	return fmt.Sprintf("--btn-bg: %s; --btn-color: %s; --btn-radius: %dpx; --btn-border: %dpx solid %s;",
		color(cfg.ButtonBackgroundColor, "#333333"),
		color(cfg.ButtonTextColor, "#ffffff"),
		cfg.ButtonBorderRadius,
		cfg.ButtonBorderWidth,
		color(cfg.ButtonBorderColor, "#333333"),
	)
}

func containerStyle(cfg domain.ListingConfig) template.CSS {
	if cfg.Layout == domain.LayoutList {
		return template.CSS(fmt.Sprintf("border-top: %dpx solid %s; color: %s; --list-heading-color: %s; --list-link-color: %s; %s",
			cfg.BorderWidth,
			color(cfg.BorderColor, "#dddddd"),
			color(cfg.TextColor, "#333333"),
			color(cfg.HeadingColor, "#000000"),
			color(cfg.LinkColor, "#0073aa"),
			buttonVars(cfg),
		))
	}
	return template.CSS(fmt.Sprintf("gap: %dpx; %s", cfg.GridGap, buttonVars(cfg)))
}

func cardStyle(cfg domain.ListingConfig) template.CSS {
	var b strings.Builder
	fmt.Fprintf(&b, "background-color: %s; color: %s; padding: %dpx;",
		color(cfg.CardBackgroundColor, "#f5f5f5"),
		color(cfg.CardTextColor, "#333333"),
		cfg.CardPadding,
	)
	if cfg.CardBorderRadius > 0 {
		fmt.Fprintf(&b, " border-radius: %dpx;", cfg.CardBorderRadius)
	}
	if cfg.CardBoxShadow {
		b.WriteString(" box-shadow: 0 2px 8px rgba(0, 0, 0, 0.15);")
	}
	if cfg.CardBorderWidth > 0 {
		fmt.Fprintf(&b, " border: %dpx solid %s;", cfg.CardBorderWidth, color(cfg.CardBorderColor, "#cccccc"))
	}
	fmt.Fprintf(&b, " --card-heading-color: %s; --card-link-color: %s;",
		color(cfg.CardHeadingColor, "#000000"),
		color(cfg.CardLinkColor, "#0073aa"),
	)
	return template.CSS(b.String())
}

func listItemStyle(cfg domain.ListingConfig) template.CSS {
	return template.CSS(fmt.Sprintf("border-bottom: %dpx solid %s; padding: %dpx 0;",
		cfg.BorderWidth,
		color(cfg.BorderColor, "#dddddd"),
		cfg.ItemPadding,
	))
}

func buttonStyle(cfg domain.ListingConfig) template.CSS {
	if cfg.ButtonBoxShadow {
		return "box-shadow: 0 3px 10px rgba(0, 0, 0, 0.3);"
	}
	return ""
}
