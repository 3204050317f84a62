// Package sorter orders record sequences by a chosen field.
package sorter

import (
	"sort"

	"github.com/tinytelemetry/grist/internal/model"
)

// Sort returns records in non-decreasing order of key. The sort is
// stable: records comparing equal on the key keep their original
// relative order, which preserves meaningful file order among ties.
// SortNone (and any unrecognized key) is the identity.
//
// IP ordering is lexicographic, matching plain text comparison of the
// field; numeric-per-octet ordering is deliberately not implemented.
//
// The input slice is not modified; a reordered copy is returned.
func Sort(records []*model.Record, key model.SortKey) []*model.Record {
	out := make([]*model.Record, len(records))
	copy(out, records)

	switch key {
	case model.SortIP:
		sort.SliceStable(out, func(i, j int) bool { return out[i].IP < out[j].IP })
	case model.SortDate:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	case model.SortMethod:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Method < out[j].Method })
	case model.SortStatus:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Status < out[j].Status })
	case model.SortSize:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Size < out[j].Size })
	}
	return out
}
