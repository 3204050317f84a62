package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/tinytelemetry/grist/internal/model"
)

// CSVRenderer emits one row per aggregate value:
// source,section,key,value. Verbose mode appends record rows.
type CSVRenderer struct {
	w       io.Writer
	verbose bool
}

func (r *CSVRenderer) Render(reports []model.Report) error {
	cw := csv.NewWriter(r.w)
	defer cw.Flush()

	if err := cw.Write([]string{"source", "section", "key", "value"}); err != nil {
		return err
	}

	for _, report := range reports {
		if report.Err != nil {
			if err := cw.Write([]string{report.Source, "error", "", report.Err.Error()}); err != nil {
				return err
			}
			continue
		}
		if err := r.writeReport(cw, report); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (r *CSVRenderer) writeReport(cw *csv.Writer, report model.Report) error {
	s := report.Summary
	sections := []struct {
		name   string
		counts []model.KeyCount
	}{
		{"ip", s.IPCounts},
		{"method", s.MethodCounts},
		{"status", s.StatusCounts},
		{"date", s.DateCounts},
	}
	for _, section := range sections {
		for _, kc := range section.counts {
			if err := cw.Write([]string{report.Source, section.name, kc.Key, strconv.FormatInt(kc.Count, 10)}); err != nil {
				return err
			}
		}
	}

	rows := [][]string{
		{report.Source, "transfer", "total_bytes", strconv.FormatInt(s.TotalBytes, 10)},
		{report.Source, "transfer", "distinct_ips", strconv.FormatInt(s.DistinctIPs, 10)},
		{report.Source, "transfer", "avg_bytes_per_ip", strconv.FormatFloat(s.AvgBytesPerIP, 'f', 1, 64)},
		{report.Source, "skipped", "total", strconv.FormatInt(report.Skipped.Total(), 10)},
	}
	for _, kb := range s.BytesPerIP {
		rows = append(rows, []string{report.Source, "bytes_per_ip", kb.Key, strconv.FormatInt(kb.Bytes, 10)})
	}
	if r.verbose {
		for _, rec := range report.Records {
			rows = append(rows, []string{report.Source, "record", rec.IP,
				rec.Method + " " + rec.URL + " " + strconv.Itoa(rec.Status) + " " + strconv.FormatInt(rec.Size, 10)})
		}
	}
	return cw.WriteAll(rows)
}
