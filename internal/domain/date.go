package domain

import (
	"strings"
	"time"
)

// DisplayDate is the layout dates are rendered with in messages.
const DisplayDate = "01/02/2006"

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	DisplayDate,
}

// ParseDate accepts the date shapes the web app stores: ISO dates, RFC 3339
// timestamps and US display dates.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
