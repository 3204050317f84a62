package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/grist/internal/model"
)

var (
	styleHeading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	styleSection = lipgloss.NewStyle().Bold(true)
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// PlainRenderer writes human-readable terminal output.
type PlainRenderer struct {
	w       io.Writer
	verbose bool
}

func (r *PlainRenderer) Render(reports []model.Report) error {
	for i, report := range reports {
		if i > 0 {
			fmt.Fprintln(r.w)
		}
		if err := r.renderReport(report); err != nil {
			return err
		}
	}
	return nil
}

func (r *PlainRenderer) renderReport(report model.Report) error {
	fmt.Fprintln(r.w, styleHeading.Render("== "+report.Source+" =="))

	if report.Err != nil {
		fmt.Fprintln(r.w, styleError.Render("error: "+report.Err.Error()))
		return nil
	}

	s := report.Summary
	fmt.Fprintf(r.w, "%d records", s.Records)
	if skipped := report.Skipped.Total(); skipped > 0 {
		fmt.Fprintf(r.w, " %s", styleDim.Render(fmt.Sprintf(
			"(%d malformed lines skipped: %d short, %d bad timestamp)",
			skipped, report.Skipped.TooFewFields, report.Skipped.BadTimestamp)))
	}
	fmt.Fprintln(r.w)

	if r.verbose {
		fmt.Fprintln(r.w, styleSection.Render("Records"))
		for _, rec := range report.Records {
			fmt.Fprintf(r.w, "  %s %s %s %s %d %d %q %q\n",
				rec.IP, rec.Stamp, rec.Method, rec.URL, rec.Status, rec.Size, rec.Referer, rec.Agent)
		}
	}

	r.renderCounts("Requests by IP", s.IPCounts)
	r.renderCounts("Requests by method", s.MethodCounts)
	r.renderCounts("Requests by status", s.StatusCounts)
	r.renderCounts("Requests by date", s.DateCounts)

	fmt.Fprintln(r.w, styleSection.Render("Data transfer"))
	fmt.Fprintf(r.w, "  total bytes: %d\n", s.TotalBytes)
	fmt.Fprintf(r.w, "  distinct IPs: %d\n", s.DistinctIPs)
	fmt.Fprintf(r.w, "  avg bytes per IP: %.1f\n", s.AvgBytesPerIP)
	for _, kb := range s.BytesPerIP {
		fmt.Fprintf(r.w, "  %-20s %d\n", kb.Key, kb.Bytes)
	}
	return nil
}

func (r *PlainRenderer) renderCounts(title string, counts []model.KeyCount) {
	if len(counts) == 0 {
		return
	}
	fmt.Fprintln(r.w, styleSection.Render(title))
	for _, kc := range counts {
		fmt.Fprintf(r.w, "  %-32s %d\n", kc.Key, kc.Count)
	}
}
