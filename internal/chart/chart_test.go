package chart

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/couchcryptid/rain-paradox/internal/domain"
	"github.com/couchcryptid/rain-paradox/internal/observability"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func exampleSeries() ([]float64, []float64) {
	s := domain.Sweep(domain.ExampleSpeeds)
	return s.Speeds(), s.Wetness()
}

func TestBuild_Labels(t *testing.T) {
	p, err := Build(exampleSeries())
	require.NoError(t, err)

	assert.Equal(t, "Wetness vs. Speed in Rain", p.Title.Text)
	assert.Equal(t, "Speed (feet per second)", p.X.Label.Text)
	assert.Equal(t, "Total Raindrops Hit", p.Y.Label.Text)
}

func TestBuild_TicksAtSpeeds(t *testing.T) {
	speeds, wetness := exampleSeries()
	p, err := Build(speeds, wetness)
	require.NoError(t, err)

	ticks := p.X.Tick.Marker.Ticks(p.X.Min, p.X.Max)
	require.Len(t, ticks, len(speeds))
	for i, tk := range ticks {
		assert.Equal(t, speeds[i], tk.Value)
	}
	assert.Equal(t, "3.3", ticks[0].Label)
	assert.Equal(t, "30.0", ticks[4].Label)
}

func TestPoints_KeepsInputOrder(t *testing.T) {
	speeds := []float64{13.2, 3.3, 8.8}
	wetness := []float64{1, 2, 3}

	pts, err := Points(speeds, wetness)
	require.NoError(t, err)
	require.Equal(t, 3, pts.Len())
	for i := range speeds {
		x, y := pts.XY(i)
		assert.Equal(t, speeds[i], x)
		assert.Equal(t, wetness[i], y)
	}
}

func TestPoints_LengthMismatch(t *testing.T) {
	_, err := Points([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestBuild_LengthMismatch(t *testing.T) {
	_, err := Build([]float64{1, 2, 3}, []float64{1, 2})
	require.ErrorIs(t, err, ErrLengthMismatch)
	assert.Contains(t, err.Error(), "3 speeds, 2 values")
}

func TestBuild_InfiniteWetness(t *testing.T) {
	_, err := Build([]float64{0}, []float64{math.Inf(1)})
	require.ErrorIs(t, err, plotter.ErrInfinity)
}

func TestRender_PNG(t *testing.T) {
	r := NewRenderer(nil)
	var buf bytes.Buffer

	speeds, wetness := exampleSeries()
	require.NoError(t, r.Render(&buf, "png", speeds, wetness))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestRender_SVG(t *testing.T) {
	r := NewRenderer(nil)
	var buf bytes.Buffer

	speeds, wetness := exampleSeries()
	require.NoError(t, r.Render(&buf, "svg", speeds, wetness))
	assert.Contains(t, buf.String(), "<svg")
}

func TestRender_UnknownFormat(t *testing.T) {
	r := NewRenderer(nil)
	var buf bytes.Buffer

	speeds, wetness := exampleSeries()
	err := r.Render(&buf, "bmp", speeds, wetness)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bmp")
}

func TestRender_RecordsMetrics(t *testing.T) {
	fc := clockwork.NewFakeClock()
	SetClock(fc)
	t.Cleanup(func() { SetClock(nil) })

	m := observability.NewMetricsForTesting()
	r := NewRenderer(m)
	var buf bytes.Buffer

	speeds, wetness := exampleSeries()
	require.NoError(t, r.Render(&buf, "png", speeds, wetness))
	require.Error(t, r.Render(&buf, "png", speeds, wetness[:2]))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ChartRenders.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ChartRenders.WithLabelValues("error")))
	var pb dto.Metric
	require.NoError(t, m.ChartRenderDuration.Write(&pb))
	assert.Equal(t, uint64(2), pb.GetHistogram().GetSampleCount())
	assert.Equal(t, 0.0, pb.GetHistogram().GetSampleSum(), "fake clock never advanced")
}

func TestObserve_UsesClockElapsed(t *testing.T) {
	fc := clockwork.NewFakeClock()
	SetClock(fc)
	t.Cleanup(func() { SetClock(nil) })

	m := observability.NewMetricsForTesting()
	r := NewRenderer(m)

	start := clock.Now()
	fc.Advance(250 * time.Millisecond)
	r.observe(start, nil)

	var pb dto.Metric
	require.NoError(t, m.ChartRenderDuration.Write(&pb))
	assert.Equal(t, uint64(1), pb.GetHistogram().GetSampleCount())
	assert.InDelta(t, 0.25, pb.GetHistogram().GetSampleSum(), 1e-9)
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "chart.png")
	r := NewRenderer(nil)

	speeds, wetness := exampleSeries()
	require.NoError(t, r.RenderFile(path, speeds, wetness))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}

func TestRenderFile_LengthMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.png")
	r := NewRenderer(nil)

	err := r.RenderFile(path, []float64{1}, nil)
	require.ErrorIs(t, err, ErrLengthMismatch)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no chart should be created")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temporary file should be cleaned up")
}

func TestRenderFile_FailureKeepsExistingChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	r := NewRenderer(nil)

	speeds, wetness := exampleSeries()
	require.NoError(t, r.RenderFile(path, speeds, wetness))
	before, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, before)

	require.ErrorIs(t, r.RenderFile(path, speeds, wetness[:2]), ErrLengthMismatch)
	require.ErrorIs(t, r.RenderFile(path, []float64{0}, []float64{math.Inf(1)}), plotter.ErrInfinity)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRenderFile_ReplacesExistingChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o600))

	speeds, wetness := exampleSeries()
	require.NoError(t, NewRenderer(nil).RenderFile(path, speeds, wetness))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]string{
		"chart.png":     "png",
		"chart.SVG":     "svg",
		"out/chart.pdf": "pdf",
		"chart":         "png",
		"chart.jpeg":    "png",
	}
	for path, want := range tests {
		assert.Equal(t, want, FormatFromPath(path), path)
	}
}

func TestTicks(t *testing.T) {
	got := Ticks([]float64{5.5, 3.3})
	assert.Equal(t, []plot.Tick{{Value: 5.5, Label: "5.5"}, {Value: 3.3, Label: "3.3"}}, got)
}
