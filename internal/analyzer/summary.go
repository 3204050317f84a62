// Package analyzer reduces a record sequence into aggregate statistics.
package analyzer

import (
	"sort"
	"strconv"

	"github.com/tinytelemetry/grist/internal/model"
)

// counter accumulates grouped counts while remembering the order keys
// were first seen, so that equal-count ties stay in encounter order.
type counter struct {
	counts map[string]int64
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int64)}
}

func (c *counter) add(key string) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// ranked returns the keys most frequent first. The sort is stable over
// first-seen order, so keys with equal counts keep encounter order.
func (c *counter) ranked() []model.KeyCount {
	out := make([]model.KeyCount, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, model.KeyCount{Key: key, Count: c.counts[key]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// Summarize consumes the filtered, sorted record sequence for one
// source in a single pass and produces its AggregateSummary.
//
// The date bucket key is the verbatim bracketed timestamp text, not a
// calendar day or hour; identical stamps group, differing ones do not.
func Summarize(source string, records []*model.Record) model.AggregateSummary {
	summary := model.AggregateSummary{
		Source:  source,
		Records: int64(len(records)),
	}

	byIP := newCounter()
	byMethod := newCounter()
	byStatus := newCounter()
	byDate := newCounter()
	bytesPerIP := make(map[string]int64)

	for _, r := range records {
		byIP.add(r.IP)
		byMethod.add(r.Method)
		byStatus.add(strconv.Itoa(r.Status))
		byDate.add(r.Stamp)
		bytesPerIP[r.IP] += r.Size
		summary.TotalBytes += r.Size
	}

	summary.IPCounts = byIP.ranked()
	summary.MethodCounts = byMethod.ranked()
	summary.StatusCounts = byStatus.ranked()
	summary.DateCounts = byDate.ranked()

	summary.DistinctIPs = int64(len(bytesPerIP))
	if summary.DistinctIPs > 0 {
		summary.AvgBytesPerIP = float64(summary.TotalBytes) / float64(summary.DistinctIPs)
	}

	// Per-IP byte totals, largest first, first-seen order among ties.
	perIP := make([]model.KeyBytes, 0, len(byIP.order))
	for _, ip := range byIP.order {
		perIP = append(perIP, model.KeyBytes{Key: ip, Bytes: bytesPerIP[ip]})
	}
	sort.SliceStable(perIP, func(i, j int) bool {
		return perIP[i].Bytes > perIP[j].Bytes
	})
	summary.BytesPerIP = perIP

	return summary
}
