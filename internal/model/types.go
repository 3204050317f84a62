package model

import "time"

// Record represents a single parsed access-log line in the combined log
// format. It is the canonical type flowing through the parse, filter,
// sort and aggregation stages. Records are never mutated after the
// parser constructs them; downstream stages select and reorder pointers.
type Record struct {
	IP        string
	Timestamp time.Time
	Stamp     string // verbatim bracketed timestamp text, e.g. "[10/Oct/2020:13:55:36 +0000]"
	Method    string
	URL       string
	Status    int
	Size      int64 // 0 when the log field is "-" or unparsable
	Referer   string
	Agent     string
	Raw       string // original line, kept for whole-line pattern matching
}

// KeyCount is a group key and its count, used for ordered frequency lists.
type KeyCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// KeyBytes is a group key and a byte total.
type KeyBytes struct {
	Key   string `json:"key"`
	Bytes int64  `json:"bytes"`
}

// AggregateSummary holds the computed statistics for one input source.
// Frequency lists are ordered most frequent first; keys with equal
// counts keep their first-seen order.
type AggregateSummary struct {
	Source        string     `json:"source"`
	Records       int64      `json:"records"`
	IPCounts      []KeyCount `json:"ip_counts"`
	MethodCounts  []KeyCount `json:"method_counts"`
	StatusCounts  []KeyCount `json:"status_counts"`
	DateCounts    []KeyCount `json:"date_counts"`
	TotalBytes    int64      `json:"total_bytes"`
	DistinctIPs   int64      `json:"distinct_ips"`
	AvgBytesPerIP float64    `json:"avg_bytes_per_ip"`
	BytesPerIP    []KeyBytes `json:"bytes_per_ip"`
}
