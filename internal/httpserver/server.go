// Package httpserver serves a finished batch run over a local,
// read-only HTTP API. No authentication: the API binds loopback by
// default and exposes nothing but the computed statistics.
package httpserver

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tinytelemetry/grist/internal/model"
)

// Server provides the HTTP API over one batch of reports.
type Server struct {
	addr      string
	source    model.ReportSource
	server    *http.Server
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates an HTTP API server reading from source.
func NewServer(addr string, source model.ReportSource) *Server {
	if addr == "" {
		addr = "127.0.0.1:3000"
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:   addr,
		source: source,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/api/health", s.handleHealth)
	r.GET("/api/reports", s.handleReports)
	r.GET("/api/reports/:index", s.handleReport)

	s.server = &http.Server{
		Handler:           r,
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.startTime = time.Now()

	go s.server.Serve(listener)
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.addr }

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"uptime":  time.Since(s.startTime).String(),
		"reports": len(s.source.Reports()),
	})
}

func (s *Server) handleReports(c *gin.Context) {
	reports := s.source.Reports()
	out := make([]gin.H, 0, len(reports))
	for i, report := range reports {
		out = append(out, reportView(i, report))
	}
	c.JSON(http.StatusOK, gin.H{"reports": out})
}

func (s *Server) handleReport(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	reports := s.source.Reports()
	if err != nil || index < 0 || index >= len(reports) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such report"})
		return
	}
	c.JSON(http.StatusOK, reportView(index, reports[index]))
}

func reportView(index int, report model.Report) gin.H {
	view := gin.H{
		"index":  index,
		"source": report.Source,
	}
	if report.Err != nil {
		view["error"] = report.Err.Error()
		return view
	}
	view["summary"] = report.Summary
	view["skipped"] = report.Skipped
	return view
}
