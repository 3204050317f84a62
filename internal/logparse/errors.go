package logparse

import "fmt"

// ParseErrorKind classifies why a line could not become a Record.
type ParseErrorKind int

const (
	// TooFewFields means the line split into fewer than the 11
	// whitespace tokens the combined log format requires.
	TooFewFields ParseErrorKind = iota
	// BadTimestamp means the bracketed date+time tokens did not parse.
	// The line is skipped rather than zeroed so that date-range
	// filtering and date-bucketed aggregation stay trustworthy.
	BadTimestamp
)

func (k ParseErrorKind) String() string {
	switch k {
	case TooFewFields:
		return "too few fields"
	case BadTimestamp:
		return "bad timestamp"
	default:
		return "unknown"
	}
}

// ParseError reports a single malformed line. It is recoverable: the
// caller skips the line, counts it, and keeps scanning.
type ParseError struct {
	Kind ParseErrorKind
	Line int // 1-based line number within the source, 0 if unknown
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Kind, e.Err)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Kind)
}

func (e *ParseError) Unwrap() error { return e.Err }
