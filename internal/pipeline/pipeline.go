// Package pipeline wires the record stages together: each input source
// is scanned into Records, filtered, sorted, and reduced into an
// AggregateSummary. Sources never share mutable state, so a batch can
// run sequentially or in parallel with identical results.
package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tinytelemetry/grist/internal/analyzer"
	"github.com/tinytelemetry/grist/internal/filter"
	"github.com/tinytelemetry/grist/internal/logparse"
	"github.com/tinytelemetry/grist/internal/model"
	"github.com/tinytelemetry/grist/internal/sorter"
)

// Config is the immutable per-run configuration, passed by value.
type Config struct {
	Filter  model.FilterSpec
	SortKey model.SortKey

	// ContinueOnError keeps processing sibling sources after one fails
	// to open. The default (false) halts the whole batch on the first
	// failed source, matching the classic single-pass tool behavior.
	ContinueOnError bool

	// Workers bounds concurrent source processing. Values below 2 run
	// the batch sequentially.
	Workers int
}

// Runner executes the pipeline over a batch of input sources.
type Runner struct {
	cfg    Config
	filter *filter.Filter
}

// NewRunner validates cfg and returns a Runner. Filter compilation
// failures are configuration errors reported before any input is read.
func NewRunner(cfg Config) (*Runner, error) {
	f, err := filter.Compile(cfg.Filter)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	return &Runner{cfg: cfg, filter: f}, nil
}

// Run processes every source and returns one Report per source, in
// input order regardless of completion order.
//
// Under the halt policy the first source failure aborts the batch and
// is returned; reports for sources that already finished are returned
// alongside it. Under the continue policy Run returns a nil error and
// each failed source carries its error in Report.Err.
func (r *Runner) Run(ctx context.Context, sources []string) ([]model.Report, error) {
	reports := make([]model.Report, len(sources))

	if r.cfg.Workers > 1 && len(sources) > 1 {
		return reports, r.runParallel(ctx, sources, reports)
	}

	for i, source := range sources {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		report, err := r.runSource(source)
		if err != nil {
			if !r.cfg.ContinueOnError {
				return reports, err
			}
			reports[i] = model.Report{Source: source, Err: err}
			continue
		}
		reports[i] = report
	}
	return reports, nil
}

func (r *Runner) runParallel(ctx context.Context, sources []string, reports []model.Report) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)

	for i, source := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report, err := r.runSource(source)
			if err != nil {
				if !r.cfg.ContinueOnError {
					return err
				}
				reports[i] = model.Report{Source: source, Err: err}
				return nil
			}
			reports[i] = report
			return nil
		})
	}
	return g.Wait()
}

// runSource runs one source through scan, filter, sort and summarize.
func (r *Runner) runSource(source string) (model.Report, error) {
	rc, err := openSource(source)
	if err != nil {
		return model.Report{}, err
	}
	defer rc.Close()

	// Streaming: records are filtered as they are produced, so only
	// survivors are materialized ahead of the sort stage.
	var survivors []*model.Record
	skipped, err := logparse.ScanRecords(rc, func(record *model.Record) {
		if r.filter.Match(record) {
			survivors = append(survivors, record)
		}
	})
	if err != nil {
		return model.Report{}, &ConfigError{Source: source, Err: err}
	}

	ordered := sorter.Sort(survivors, r.cfg.SortKey)

	return model.Report{
		Source:  source,
		Records: ordered,
		Summary: analyzer.Summarize(source, ordered),
		Skipped: skipped,
	}, nil
}
