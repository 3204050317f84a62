package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/tinytelemetry/grist/internal/filter"
	"github.com/tinytelemetry/grist/internal/httpserver"
	"github.com/tinytelemetry/grist/internal/model"
	"github.com/tinytelemetry/grist/internal/output"
	"github.com/tinytelemetry/grist/internal/pipeline"
)

// batchReports satisfies model.ReportSource with a finished batch.
type batchReports []model.Report

func (b batchReports) Reports() []model.Report { return b }

// run executes one batch: build the filter spec, drive the pipeline
// over every source, render, and optionally serve the results.
func run(cfg appConfig, sources []string) error {
	log.SetFlags(log.LstdFlags)
	log.SetOutput(os.Stderr)

	spec, err := buildFilterSpec(cfg)
	if err != nil {
		return err
	}

	runner, err := pipeline.NewRunner(pipeline.Config{
		Filter:          spec,
		SortKey:         model.ParseSortKey(cfg.SortKey),
		ContinueOnError: cfg.OnError == policyContinue,
		Workers:         cfg.Workers,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reports, runErr := runner.Run(ctx, sources)

	renderer, err := output.NewRenderer(cfg.Format, os.Stdout, cfg.Verbose)
	if err != nil {
		return err
	}
	if renderErr := renderer.Render(finished(reports)); renderErr != nil {
		return renderErr
	}
	if runErr != nil {
		return runErr
	}

	if cfg.Serve {
		return serve(ctx, cfg.APIAddr, reports)
	}
	return nil
}

// finished drops reports for sources the batch never reached (present
// only when a halt-policy run aborted early).
func finished(reports []model.Report) []model.Report {
	out := reports[:0:0]
	for _, r := range reports {
		if r.Source != "" {
			out = append(out, r)
		}
	}
	return out
}

// buildFilterSpec merges the filter file (when given) with explicit
// criteria values; explicit values win. Boundary parsing failures are
// configuration errors, reported before any record is processed.
func buildFilterSpec(cfg appConfig) (model.FilterSpec, error) {
	spec := model.FilterSpec{MinSize: -1}

	if cfg.FilterFile != "" {
		loaded, err := filter.LoadSpec(cfg.FilterFile)
		if err != nil {
			return spec, err
		}
		spec = loaded
	}

	if cfg.IP != "" {
		spec.IP = cfg.IP
	}
	if cfg.Method != "" {
		spec.Method = cfg.Method
	}
	if cfg.Status != 0 {
		spec.Status = cfg.Status
	}
	if cfg.Pattern != "" {
		spec.Pattern = cfg.Pattern
	}
	if cfg.MinSize >= 0 {
		spec.MinSize = cfg.MinSize
	}

	var err error
	if cfg.From != "" {
		if spec.From, err = filter.ParseBoundary(cfg.From); err != nil {
			return spec, err
		}
	}
	if cfg.To != "" {
		if spec.To, err = filter.ParseBoundary(cfg.To); err != nil {
			return spec, err
		}
	}
	return spec, nil
}

// serve exposes the finished batch over the HTTP API until interrupted.
func serve(ctx context.Context, addr string, reports []model.Report) error {
	srv := httpserver.NewServer(addr, batchReports(reports))
	if err := srv.Start(); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}
	defer srv.Stop()

	fmt.Fprintf(os.Stderr, "Serving reports on http://%s/api/reports (Ctrl+C to stop)\n", srv.Addr())
	<-ctx.Done()
	return nil
}
