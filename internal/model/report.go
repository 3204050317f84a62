package model

// SkipCounts tallies malformed lines skipped while scanning one source,
// broken down by parse-error kind.
type SkipCounts struct {
	TooFewFields int64 `json:"too_few_fields"`
	BadTimestamp int64 `json:"bad_timestamp"`
}

// Total returns the number of skipped lines across all kinds.
func (s SkipCounts) Total() int64 {
	return s.TooFewFields + s.BadTimestamp
}

// Report is the result of running the pipeline over one input source:
// the ordered surviving records, their aggregate summary, and the skip
// tallies. Err is set when the source itself failed (missing or empty
// file) and the batch policy allowed the run to continue; a Report with
// Err set carries no records and no summary.
type Report struct {
	Source  string           `json:"source"`
	Records []*Record        `json:"-"`
	Summary AggregateSummary `json:"summary"`
	Skipped SkipCounts       `json:"skipped"`
	Err     error            `json:"-"`
}
