package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/couchcryptid/rain-paradox/internal/domain"
	"github.com/couchcryptid/rain-paradox/internal/observability"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var errNoChart = errors.New("chart has not been rendered yet")

// Server displays a rendered chart over HTTP, alongside health, readiness,
// and metrics endpoints. It stays not-ready until Publish is called.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	metrics    *observability.Metrics
	clock      clockwork.Clock

	mu       sync.RWMutex
	chart    []byte
	series   domain.Series
	rendered time.Time
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics, /chart.png and /series routes.
func NewServer(addr string, metrics *observability.Metrics, clock clockwork.Clock, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger:  logger,
		metrics: metrics,
		clock:   clock,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(s))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /chart.png", s.handleChart)
	mux.HandleFunc("GET /series", s.handleSeries)

	return s
}

// Publish sets the PNG bytes and series to serve and marks the server ready.
func (s *Server) Publish(png []byte, series domain.Series) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chart = png
	s.series = series
	s.rendered = s.clock.Now()
}

// CheckReadiness returns nil once a chart has been published.
func (s *Server) CheckReadiness(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.chart == nil {
		return errNoChart
	}
	return nil
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	chart, rendered := s.chart, s.rendered
	s.mu.RUnlock()

	if chart == nil {
		http.Error(w, errNoChart.Error(), http.StatusServiceUnavailable)
		return
	}
	if s.metrics != nil {
		s.metrics.ChartRequests.Inc()
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeContent(w, r, "chart.png", rendered, bytes.NewReader(chart))
}

func (s *Server) handleSeries(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	series, ready := s.series, s.chart != nil
	s.mu.RUnlock()

	if !ready {
		http.Error(w, errNoChart.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(series) //nolint:errcheck // client went away
}
