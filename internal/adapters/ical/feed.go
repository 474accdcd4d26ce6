// Package ical exports upcoming events as an iCalendar feed.
package ical

import (
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"snapevents/internal/domain"
)

// Feed writes VCALENDAR documents of all-day events.
type Feed struct {
	content domain.ContentFormatter
	siteURL string
	name    string
	host    string
}

// NewFeed returns a feed whose event URLs and UIDs derive from siteURL.
func NewFeed(content domain.ContentFormatter, siteURL, name, host string) *Feed {
	return &Feed{content: content, siteURL: siteURL, name: name, host: host}
}

// Write serializes events. Records with a malformed start date are skipped.
// DTEND is exclusive, so it is the day after the end date, or after the start
// date when the end is missing, malformed or earlier than the start.
func (f *Feed) Write(w io.Writer, events []*domain.Event, stamp time.Time) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//snapevents//events feed//EN")
	if f.name != "" {
		cal.SetXWRCalName(f.name)
	}

	for _, e := range events {
		start, ok := domain.ParseEventDate(e.StartDate)
		if !ok {
			continue
		}
		end, ok := domain.ParseEventDate(e.EndDate)
		if !ok || end.Before(start) {
			end = start
		}

		ev := cal.AddEvent(e.ID + "@" + f.host)
		ev.SetDtStampTime(stamp.UTC())
		ev.SetAllDayStartAt(start)
		ev.SetAllDayEndAt(end.AddDate(0, 0, 1))
		ev.SetSummary(e.Title)
		ev.SetURL(domain.Permalink(f.siteURL, e.Slug))
		if loc := e.Location(); loc != "" {
			ev.SetLocation(loc)
		}
		if desc := f.content.Excerpt(e.Excerpt, e.Content); desc != "" {
			ev.SetDescription(desc)
		}
	}

	_, err := io.WriteString(w, cal.Serialize())
	return err
}
