package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/tinytelemetry/grist/internal/logparse"
)

// boundaryLayouts are the accepted spellings for range boundaries: the
// log's own timestamp layout plus the common calendar forms.
var boundaryLayouts = []string{
	logparse.TimeLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/Jan/2006:15:04:05",
	"02/Jan/2006",
}

// ParseBoundary parses a date-range boundary string. Brackets are
// tolerated so a value can be pasted straight from a log line. A value
// that matches no layout is a configuration error.
func ParseBoundary(s string) (time.Time, error) {
	s = strings.Trim(strings.TrimSpace(s), "[]")
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range boundaryLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable date boundary %q", s)
}
