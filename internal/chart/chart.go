// Package chart draws the wetness-versus-speed line chart.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/rain-paradox/internal/observability"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	// Chart text.
	Title  = "Wetness vs. Speed in Rain"
	XLabel = "Speed (feet per second)"
	YLabel = "Total Raindrops Hit"

	// Width and Height match an 8x5 inch figure.
	Width  = 8 * vg.Inch
	Height = 5 * vg.Inch
)

// ErrLengthMismatch is returned when speeds and wetness values differ in length.
var ErrLengthMismatch = errors.New("chart: speeds and wetness values differ in length")

var lineColor = color.RGBA{B: 255, A: 255}

// Renderer draws charts and records render metrics.
type Renderer struct {
	metrics *observability.Metrics
}

// NewRenderer creates a Renderer. metrics may be nil.
func NewRenderer(metrics *observability.Metrics) *Renderer {
	return &Renderer{metrics: metrics}
}

// Render writes the chart for the paired speeds and wetness values to w in
// the given format ("png", "svg", "pdf").
func (r *Renderer) Render(w io.Writer, format string, speeds, wetness []float64) (err error) {
	start := clock.Now()
	defer func() { r.observe(start, err) }()

	p, err := Build(speeds, wetness)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(Width, Height, format)
	if err != nil {
		return fmt.Errorf("encode chart as %s: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}

// RenderFile writes the chart to path, picking the format from its extension.
// The chart is encoded into a temporary file in the same directory and renamed
// over path only on success, so a failed render leaves any existing chart intact.
func (r *Renderer) RenderFile(path string, speeds, wetness []float64) error {
	format := FormatFromPath(path)

	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create chart directory: %w", err)
		}
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	tmp := f.Name()
	defer os.Remove(tmp) //nolint:errcheck // no-op after a successful rename

	if err := r.Render(f, format, speeds, wetness); err != nil {
		f.Close() //nolint:errcheck // render error takes precedence
		return err
	}
	if err := f.Chmod(0o644); err != nil {
		f.Close() //nolint:errcheck // chmod error takes precedence
		return fmt.Errorf("chmod chart file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close chart file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace chart file: %w", err)
	}
	return nil
}

func (r *Renderer) observe(start time.Time, err error) {
	if r.metrics == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	r.metrics.ChartRenders.WithLabelValues(outcome).Inc()
	r.metrics.ChartRenderDuration.Observe(clock.Since(start).Seconds())
}

// Build assembles the plot without encoding it. Points are joined in input
// order and the x ticks sit exactly on the given speeds.
func Build(speeds, wetness []float64) (*plot.Plot, error) {
	pts, err := Points(speeds, wetness)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = Title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel

	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, fmt.Errorf("build line: %w", err)
	}
	line.Color = lineColor
	points.Color = lineColor
	points.Shape = draw.CircleGlyph{}
	points.Radius = vg.Points(3)
	p.Add(line, points)

	p.X.Tick.Marker = plot.ConstantTicks(Ticks(speeds))

	return p, nil
}

// Points pairs speeds with wetness values positionally. The order is kept
// as given so the line is drawn in input order, not sorted by speed.
func Points(speeds, wetness []float64) (plotter.XYs, error) {
	if len(speeds) != len(wetness) {
		return nil, fmt.Errorf("%w: %d speeds, %d values", ErrLengthMismatch, len(speeds), len(wetness))
	}

	pts := make(plotter.XYs, len(speeds))
	for i := range speeds {
		pts[i].X = speeds[i]
		pts[i].Y = wetness[i]
	}
	return pts, nil
}

// Ticks places one labeled tick at each speed, in input order.
func Ticks(speeds []float64) []plot.Tick {
	ticks := make([]plot.Tick, len(speeds))
	for i, s := range speeds {
		ticks[i] = plot.Tick{Value: s, Label: strconv.FormatFloat(s, 'f', 1, 64)}
	}
	return ticks
}

// FormatFromPath maps a file extension to a gonum/plot format name.
// Unknown or missing extensions fall back to png.
func FormatFromPath(path string) string {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg", ".pdf", ".png":
		return ext[1:]
	default:
		return "png"
	}
}
