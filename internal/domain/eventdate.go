package domain

import (
	"time"
)

// eventDateLayout is the storage layout of event dates (YYYYMMDD).
const eventDateLayout = "20060102"

// displayDateLayout renders dates as "January 15, 2026".
const displayDateLayout = "January 2, 2006"

// ParseEventDate parses a raw YYYYMMDD value. It reports false unless raw is
// exactly eight digits forming a real calendar date.
func ParseEventDate(raw string) (time.Time, bool) {
	if len(raw) != 8 {
		return time.Time{}, false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return time.Time{}, false
		}
	}
	t, err := time.Parse(eventDateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatEventDate turns a raw YYYYMMDD value into "Month D, YYYY".
// Missing or malformed values yield "".
func FormatEventDate(raw string) string {
	t, ok := ParseEventDate(raw)
	if !ok {
		return ""
	}
	return t.Format(displayDateLayout)
}

// Today returns the current date in loc as YYYYMMDD.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc).Format(eventDateLayout)
}

// DateRange renders "start" or "start - end" from formatted dates; the end is
// omitted when empty or equal to the start. An empty start yields "".
func DateRange(start, end string) string {
	if start == "" {
		return ""
	}
	if end == "" || end == start {
		return start
	}
	return start + " - " + end
}
