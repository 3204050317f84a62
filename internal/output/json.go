package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/tinytelemetry/grist/internal/model"
)

// JSONRenderer emits the full report list as one JSON document.
type JSONRenderer struct {
	w       io.Writer
	verbose bool
}

type jsonRecord struct {
	IP        string    `json:"ip"`
	Timestamp time.Time `json:"timestamp"`
	Method    string    `json:"method"`
	URL       string    `json:"url"`
	Status    int       `json:"status"`
	Size      int64     `json:"size"`
	Referer   string    `json:"referer"`
	Agent     string    `json:"agent"`
}

type jsonReport struct {
	Source  string                  `json:"source"`
	Error   string                  `json:"error,omitempty"`
	Summary *model.AggregateSummary `json:"summary,omitempty"`
	Skipped *model.SkipCounts       `json:"skipped,omitempty"`
	Records []jsonRecord            `json:"records,omitempty"`
}

func (r *JSONRenderer) Render(reports []model.Report) error {
	out := make([]jsonReport, 0, len(reports))
	for _, report := range reports {
		jr := jsonReport{Source: report.Source}
		if report.Err != nil {
			jr.Error = report.Err.Error()
			out = append(out, jr)
			continue
		}
		summary := report.Summary
		skipped := report.Skipped
		jr.Summary = &summary
		jr.Skipped = &skipped
		if r.verbose {
			jr.Records = make([]jsonRecord, 0, len(report.Records))
			for _, rec := range report.Records {
				jr.Records = append(jr.Records, jsonRecord{
					IP:        rec.IP,
					Timestamp: rec.Timestamp,
					Method:    rec.Method,
					URL:       rec.URL,
					Status:    rec.Status,
					Size:      rec.Size,
					Referer:   rec.Referer,
					Agent:     rec.Agent,
				})
			}
		}
		out = append(out, jr)
	}

	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
