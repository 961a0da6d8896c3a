// Command rainparadox compares how wet you get walking versus running through
// rain. It prints the wetness at a handful of speeds and draws the curve.
//
// Usage:
//
//	go run ./cmd/rainparadox
//
// The chart is written to CHART_PATH. Set HTTP_ADDR to keep serving it at
// /chart.png until interrupted.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/rain-paradox/internal/adapter/httpadapter"
	"github.com/couchcryptid/rain-paradox/internal/chart"
	"github.com/couchcryptid/rain-paradox/internal/config"
	"github.com/couchcryptid/rain-paradox/internal/domain"
	"github.com/couchcryptid/rain-paradox/internal/observability"
	"github.com/couchcryptid/rain-paradox/internal/report"
	"github.com/jonboulle/clockwork"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, os.Stdout, logger, metrics)
	stop()
	if err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, stdout io.Writer, logger *slog.Logger, metrics *observability.Metrics) error {
	series := domain.Sweep(domain.ExampleSpeeds)
	metrics.TrialsComputed.Add(float64(series.Len()))

	if err := report.Write(stdout, series); err != nil {
		return err
	}

	renderer := chart.NewRenderer(metrics)
	if err := renderer.RenderFile(cfg.ChartPath, series.Speeds(), series.Wetness()); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	logger.Info("chart written", "path", cfg.ChartPath, "points", series.Len())

	if !cfg.Serve() {
		return nil
	}
	return display(ctx, cfg, series, renderer, metrics, logger)
}

// display serves the chart until ctx is cancelled, then drains the server.
func display(ctx context.Context, cfg *config.Config, series domain.Series, renderer *chart.Renderer, metrics *observability.Metrics, logger *slog.Logger) error {
	var png bytes.Buffer
	if err := renderer.Render(&png, "png", series.Speeds(), series.Wetness()); err != nil {
		return fmt.Errorf("render chart for display: %w", err)
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, metrics, clockwork.NewRealClock(), logger)
	srv.Publish(png.Bytes(), series)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	logger.Info("shutdown complete")
	return nil
}
