package listscreen

import (
	"log"
	"time"
)

// DefaultMetricsWindow is the number of combined frame samples collected
// before the means are reported and the windows are cleared.
const DefaultMetricsWindow = 1000

// Phase is one half of a row build.
type Phase int

const (
	PhaseLayout Phase = iota
	PhaseRender
)

// FrameStats is the aggregate emitted once per full window.
type FrameStats struct {
	MeanFrame   time.Duration
	MeanLayout  time.Duration
	MeanRender  time.Duration
	Samples     int
	TotalFrames int
}

// FrameMetrics records how long the layout and render phases of row builds
// take. Every render completion appends a combined frame sample; once the
// frame window is full the means are reported and all three windows are
// cleared. It never changes the outcome of the measured function.
type FrameMetrics struct {
	window int
	now    func() time.Time
	report func(FrameStats)
	logger *log.Logger

	layout []time.Duration
	render []time.Duration
	frames []time.Duration

	totalFrames int
}

// MetricsOption configures a FrameMetrics.
type MetricsOption func(*FrameMetrics)

// WithMetricsWindow sets the tumbling window size.
func WithMetricsWindow(n int) MetricsOption {
	return func(m *FrameMetrics) {
		if n > 0 {
			m.window = n
		}
	}
}

// WithMetricsClock replaces the wall clock, mostly for tests.
func WithMetricsClock(now func() time.Time) MetricsOption {
	return func(m *FrameMetrics) {
		m.now = now
	}
}

// WithMetricsReporter replaces the default log line with a callback.
func WithMetricsReporter(report func(FrameStats)) MetricsOption {
	return func(m *FrameMetrics) {
		m.report = report
	}
}

// WithMetricsLogger sets the logger used by the default reporter.
func WithMetricsLogger(logger *log.Logger) MetricsOption {
	return func(m *FrameMetrics) {
		m.logger = logger
	}
}

// NewFrameMetrics returns a recorder with a window of DefaultMetricsWindow.
func NewFrameMetrics(options ...MetricsOption) *FrameMetrics {
	m := &FrameMetrics{
		window: DefaultMetricsWindow,
		now:    time.Now,
		logger: log.Default(),
	}
	for _, option := range options {
		option(m)
	}
	if m.report == nil {
		m.report = m.logStats
	}
	return m
}

// Measure runs fn and records its duration under phase.
func (m *FrameMetrics) Measure(phase Phase, fn func()) {
	start := m.now()
	fn()
	duration := m.now().Sub(start)

	if phase == PhaseLayout {
		m.layout = append(m.layout, duration)
		return
	}

	m.render = append(m.render, duration)
	frame := duration
	if n := len(m.layout); n > 0 {
		frame += m.layout[n-1]
	}
	m.frames = append(m.frames, frame)
	m.totalFrames++

	if len(m.frames) >= m.window {
		m.report(FrameStats{
			MeanFrame:   mean(m.frames),
			MeanLayout:  mean(m.layout),
			MeanRender:  mean(m.render),
			Samples:     len(m.frames),
			TotalFrames: m.totalFrames,
		})
		m.layout = m.layout[:0]
		m.render = m.render[:0]
		m.frames = m.frames[:0]
	}
}

// Samples returns the current lengths of the layout, render and frame
// windows.
func (m *FrameMetrics) Samples() (layout, render, frames int) {
	return len(m.layout), len(m.render), len(m.frames)
}

// TotalFrames returns the number of frames recorded since creation.
func (m *FrameMetrics) TotalFrames() int {
	return m.totalFrames
}

func (m *FrameMetrics) logStats(stats FrameStats) {
	if m.logger == nil {
		return
	}
	m.logger.Printf("[listscreen] performance (%d frames): frame %.2fms layout %.2fms render %.2fms total frames %d",
		stats.Samples,
		milliseconds(stats.MeanFrame),
		milliseconds(stats.MeanLayout),
		milliseconds(stats.MeanRender),
		stats.TotalFrames)
}

func mean(samples []time.Duration) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	var sum time.Duration
	for _, s := range samples {
		sum += s
	}
	return sum / time.Duration(len(samples))
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
