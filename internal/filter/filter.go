// Package filter evaluates a FilterSpec against Records. Criteria are
// validated once at compile time so that configuration mistakes (a bad
// range boundary, an invalid pattern) surface before any record flows.
package filter

import (
	"fmt"
	"regexp"

	"github.com/tinytelemetry/grist/internal/model"
)

// Filter is a compiled FilterSpec. Match is a conjunction over the
// present criteria, short-circuiting on the first failure; with no
// criteria set it is the identity and every record passes.
type Filter struct {
	spec    model.FilterSpec
	pattern *regexp.Regexp
}

// Compile validates spec and returns a Filter ready for matching.
// An unparsable pattern is a configuration error, not a per-record skip.
func Compile(spec model.FilterSpec) (*Filter, error) {
	f := &Filter{spec: spec}

	if spec.Pattern != "" {
		re, err := regexp.Compile(spec.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", spec.Pattern, err)
		}
		f.pattern = re
	}
	if !spec.From.IsZero() && !spec.To.IsZero() && spec.To.Before(spec.From) {
		return nil, fmt.Errorf("date range ends %s before it starts %s",
			spec.To.Format("2006-01-02"), spec.From.Format("2006-01-02"))
	}

	return f, nil
}

// Match reports whether record passes all active criteria.
func (f *Filter) Match(record *model.Record) bool {
	s := &f.spec

	if s.IP != "" && record.IP != s.IP {
		return false
	}
	// Inclusive on both ends; comparison is on the parsed instant, so
	// ranges spanning month or year boundaries order correctly.
	if !s.From.IsZero() && record.Timestamp.Before(s.From) {
		return false
	}
	if !s.To.IsZero() && record.Timestamp.After(s.To) {
		return false
	}
	// Methods are conventionally uppercase; no case folding.
	if s.Method != "" && record.Method != s.Method {
		return false
	}
	if s.Status != 0 && record.Status != s.Status {
		return false
	}
	// The pattern matches anywhere in the raw line, not a named field.
	if f.pattern != nil && !f.pattern.MatchString(record.Raw) {
		return false
	}
	if s.MinSize >= 0 && record.Size < s.MinSize {
		return false
	}
	return true
}
