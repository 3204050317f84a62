package model

import (
	"strings"
	"time"
)

// FilterSpec holds the optional filter criteria for one run. Every field
// is independently optional; the zero value passes every record.
// Zero/empty means absent for all fields except MinSize, where -1 means
// absent so that a threshold of 0 stays expressible.
type FilterSpec struct {
	IP      string
	From    time.Time
	To      time.Time
	Method  string
	Status  int
	Pattern string
	MinSize int64
}

// Empty reports whether no criterion is set.
func (s FilterSpec) Empty() bool {
	return s.IP == "" && s.From.IsZero() && s.To.IsZero() &&
		s.Method == "" && s.Status == 0 && s.Pattern == "" && s.MinSize < 0
}

// SortKey selects the field that orders pipeline output.
type SortKey int

const (
	SortNone SortKey = iota
	SortIP
	SortDate
	SortMethod
	SortStatus
	SortSize
)

// ParseSortKey maps a key name to a SortKey. Unrecognized names fall
// back to SortNone (input order preserved); this is a contract, not an
// error — callers never need to validate the name first.
func ParseSortKey(name string) SortKey {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ip":
		return SortIP
	case "date":
		return SortDate
	case "method":
		return SortMethod
	case "status":
		return SortStatus
	case "size":
		return SortSize
	default:
		return SortNone
	}
}

func (k SortKey) String() string {
	switch k {
	case SortIP:
		return "ip"
	case SortDate:
		return "date"
	case SortMethod:
		return "method"
	case SortStatus:
		return "status"
	case SortSize:
		return "size"
	default:
		return "none"
	}
}
