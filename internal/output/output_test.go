package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tinytelemetry/grist/internal/model"
)

func sampleReports() []model.Report {
	ts := time.Date(2020, time.October, 10, 13, 55, 36, 0, time.UTC)
	return []model.Report{
		{
			Source: "access.log",
			Records: []*model.Record{
				{IP: "10.0.0.1", Timestamp: ts, Stamp: "[10/Oct/2020:13:55:36 +0000]",
					Method: "GET", URL: "/a", Status: 200, Size: 100, Referer: "-", Agent: "ua"},
			},
			Summary: model.AggregateSummary{
				Source:        "access.log",
				Records:       1,
				IPCounts:      []model.KeyCount{{Key: "10.0.0.1", Count: 1}},
				MethodCounts:  []model.KeyCount{{Key: "GET", Count: 1}},
				StatusCounts:  []model.KeyCount{{Key: "200", Count: 1}},
				DateCounts:    []model.KeyCount{{Key: "[10/Oct/2020:13:55:36 +0000]", Count: 1}},
				TotalBytes:    100,
				DistinctIPs:   1,
				AvgBytesPerIP: 100,
				BytesPerIP:    []model.KeyBytes{{Key: "10.0.0.1", Bytes: 100}},
			},
		},
		{Source: "missing.log", Err: errors.New("no such file")},
	}
}

func TestNewRenderer_UnknownFormat(t *testing.T) {
	t.Parallel()

	if _, err := NewRenderer("xml", &bytes.Buffer{}, false); err == nil {
		t.Error("NewRenderer(xml) did not fail")
	}
}

func TestPlainRenderer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r, err := NewRenderer(FormatPlain, &buf, true)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Render(sampleReports()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"access.log", "10.0.0.1", "total bytes: 100", "no such file", "/a"} {
		if !strings.Contains(out, want) {
			t.Errorf("plain output missing %q:\n%s", want, out)
		}
	}
}

func TestCSVRenderer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r, err := NewRenderer(FormatCSV, &buf, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Render(sampleReports()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "source,section,key,value" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(buf.String(), "access.log,ip,10.0.0.1,1") {
		t.Errorf("missing ip row:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "missing.log,error,,no such file") {
		t.Errorf("missing error row:\n%s", buf.String())
	}
}

func TestJSONRenderer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r, err := NewRenderer(FormatJSON, &buf, true)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Render(sampleReports()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("got %d reports, want 2", len(decoded))
	}
	if decoded[0]["source"] != "access.log" {
		t.Errorf("first source = %v", decoded[0]["source"])
	}
	if _, ok := decoded[0]["records"]; !ok {
		t.Error("verbose JSON output has no records")
	}
	if decoded[1]["error"] != "no such file" {
		t.Errorf("error field = %v", decoded[1]["error"])
	}
}
