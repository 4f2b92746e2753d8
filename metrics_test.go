package listscreen

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"
)

// fakeClock advances by step on every call.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func buildRows(m *FrameMetrics, n int) {
	for i := 0; i < n; i++ {
		m.Measure(PhaseLayout, func() {})
		m.Measure(PhaseRender, func() {})
	}
}

func TestFrameMetrics_Window(t *testing.T) {
	type tc struct {
		rows        int
		reports     int
		frames      int
		totalFrames int
	}

	tests := map[string]tc{
		"below window":      {rows: 999, reports: 0, frames: 999, totalFrames: 999},
		"exactly window":    {rows: 1000, reports: 1, frames: 0, totalFrames: 1000},
		"one past window":   {rows: 1001, reports: 1, frames: 1, totalFrames: 1001},
		"two full windows":  {rows: 2000, reports: 2, frames: 0, totalFrames: 2000},
		"no rows":           {rows: 0, reports: 0, frames: 0, totalFrames: 0},
		"one row":           {rows: 1, reports: 0, frames: 1, totalFrames: 1},
		"just short of two": {rows: 1999, reports: 1, frames: 999, totalFrames: 1999},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var reports []FrameStats
			m := NewFrameMetrics(WithMetricsReporter(func(stats FrameStats) {
				reports = append(reports, stats)
			}))
			buildRows(m, tt.rows)

			if len(reports) != tt.reports {
				t.Fatalf("reports = %d, want %d", len(reports), tt.reports)
			}
			layout, render, frames := m.Samples()
			if frames != tt.frames || layout != tt.frames || render != tt.frames {
				t.Fatalf("samples = %d %d %d, want %d each", layout, render, frames, tt.frames)
			}
			if m.TotalFrames() != tt.totalFrames {
				t.Fatalf("total frames = %d, want %d", m.TotalFrames(), tt.totalFrames)
			}
			for _, stats := range reports {
				if stats.Samples != DefaultMetricsWindow {
					t.Fatalf("report over %d samples", stats.Samples)
				}
			}
		})
	}
}

func TestFrameMetrics_Means(t *testing.T) {
	clock := &fakeClock{step: time.Millisecond}
	var got FrameStats
	m := NewFrameMetrics(
		WithMetricsWindow(3),
		WithMetricsClock(clock.Now),
		WithMetricsReporter(func(stats FrameStats) { got = stats }),
	)
	buildRows(m, 3)

	// Every Measure call reads the clock twice, so each phase lasts one step.
	if got.MeanLayout != time.Millisecond || got.MeanRender != time.Millisecond {
		t.Fatalf("means layout %v render %v", got.MeanLayout, got.MeanRender)
	}
	if got.MeanFrame != 2*time.Millisecond {
		t.Fatalf("mean frame = %v, want 2ms", got.MeanFrame)
	}
	if got.TotalFrames != 3 || got.Samples != 3 {
		t.Fatalf("stats = %+v", got)
	}
}

func TestFrameMetrics_RenderWithoutLayout(t *testing.T) {
	clock := &fakeClock{step: time.Millisecond}
	var got FrameStats
	m := NewFrameMetrics(WithMetricsWindow(1), WithMetricsClock(clock.Now), WithMetricsReporter(func(stats FrameStats) { got = stats }))

	m.Measure(PhaseRender, func() {})
	if got.MeanFrame != time.Millisecond || got.MeanLayout != 0 {
		t.Fatalf("stats = %+v", got)
	}
}

func TestFrameMetrics_RunsFunction(t *testing.T) {
	m := NewFrameMetrics(WithMetricsReporter(func(FrameStats) {}))
	ran := 0
	m.Measure(PhaseLayout, func() { ran++ })
	m.Measure(PhaseRender, func() { ran++ })
	if ran != 2 {
		t.Fatalf("ran = %d, want 2", ran)
	}
}

func TestFrameMetrics_LogsReport(t *testing.T) {
	var buf bytes.Buffer
	m := NewFrameMetrics(WithMetricsWindow(2), WithMetricsLogger(log.New(&buf, "", 0)))
	buildRows(m, 2)

	line := buf.String()
	if !strings.HasPrefix(line, "[listscreen] performance (2 frames)") {
		t.Fatalf("log line = %q", line)
	}
	if !strings.Contains(line, "total frames 2") {
		t.Fatalf("log line = %q", line)
	}
}
