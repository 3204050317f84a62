package sorter

import (
	"testing"
	"time"

	"github.com/tinytelemetry/grist/internal/model"
)

func record(ip, method string, status int, size int64, ts time.Time) *model.Record {
	return &model.Record{IP: ip, Method: method, Status: status, Size: size, Timestamp: ts}
}

func ips(records []*model.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.IP
	}
	return out
}

func TestSort_ByKey(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2020, time.October, 10, 0, 0, 0, 0, time.UTC)
	input := []*model.Record{
		record("10.0.0.2", "POST", 500, 30, t0.Add(2*time.Hour)),
		record("10.0.0.10", "GET", 200, 10, t0),
		record("10.0.0.1", "HEAD", 404, 20, t0.Add(time.Hour)),
	}

	tests := []struct {
		name string
		key  model.SortKey
		want []string
	}{
		// Lexicographic: "10.0.0.10" sorts before "10.0.0.2".
		{"ip", model.SortIP, []string{"10.0.0.1", "10.0.0.10", "10.0.0.2"}},
		{"date", model.SortDate, []string{"10.0.0.10", "10.0.0.1", "10.0.0.2"}},
		{"method", model.SortMethod, []string{"10.0.0.10", "10.0.0.1", "10.0.0.2"}},
		{"status", model.SortStatus, []string{"10.0.0.10", "10.0.0.1", "10.0.0.2"}},
		{"size", model.SortSize, []string{"10.0.0.10", "10.0.0.1", "10.0.0.2"}},
		{"none keeps input order", model.SortNone, []string{"10.0.0.2", "10.0.0.10", "10.0.0.1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ips(Sort(input, tt.key))
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("Sort(%v) = %v, want %v", tt.key, got, tt.want)
				}
			}
		})
	}

	// Input must be untouched.
	if input[0].IP != "10.0.0.2" {
		t.Error("Sort modified its input slice")
	}
}

func TestSort_Stable(t *testing.T) {
	t.Parallel()

	// Four records with equal status; URL records the original order.
	input := []*model.Record{
		{Status: 200, URL: "/first", Size: 4},
		{Status: 500, URL: "/error", Size: 1},
		{Status: 200, URL: "/second", Size: 3},
		{Status: 200, URL: "/third", Size: 2},
	}

	got := Sort(input, model.SortStatus)
	wantOrder := []string{"/first", "/second", "/third", "/error"}
	for i, url := range wantOrder {
		if got[i].URL != url {
			t.Fatalf("position %d = %q, want %q (stability violated)", i, got[i].URL, url)
		}
	}
}

func TestParseSortKey_Fallback(t *testing.T) {
	t.Parallel()

	if key := model.ParseSortKey("bogus"); key != model.SortNone {
		t.Errorf("ParseSortKey(bogus) = %v, want SortNone", key)
	}
	if key := model.ParseSortKey(""); key != model.SortNone {
		t.Errorf("ParseSortKey(\"\") = %v, want SortNone", key)
	}
	if key := model.ParseSortKey("Size"); key != model.SortSize {
		t.Errorf("ParseSortKey(Size) = %v, want SortSize", key)
	}
}
