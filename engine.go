// Package listscreen lays out vertical lists of heterogeneous rows on small
// displays. An Engine owns a cursor and an append-only sequence of entries;
// each recipe method measures its content, creates native widgets through a
// Factory at the cursor, registers the resulting Entry and advances the
// cursor by the entry's height.
//
// The engine is synchronous and single-threaded. Every recipe returns once
// its widgets exist.
package listscreen

import (
	"io"
	"log"
)

// Layout constants shared by the recipes, in device units.
const (
	cardMargin         = 8
	rowMargin          = 8
	rowPadding         = 12
	fieldPadding       = 4
	textPadding        = 4
	hiddenButtonWidth  = 96
	oneLineMinWidth    = 300
	defaultFontSize    = 20
	defaultHeadSize    = 18
	defaultHeadWidth   = 140
	defaultCardRadius  = 8
	headlineInset      = 4
	descriptionSpacing = 4
)

// Engine builds the rows of one list screen. It is created once per screen
// and discarded with it.
type Engine struct {
	factory  Factory
	measurer Measurer
	profile  Profile
	theme    Theme
	logger   *log.Logger
	debug    bool

	cursorY     int
	fontSize    int
	accentColor uint32
	accentSet   bool

	entries   []*Entry
	rowHeight rowHeightCache
	metrics   *FrameMetrics
	noMetrics bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithTheme replaces the default Styles.
func WithTheme(theme Theme) Option {
	return func(e *Engine) {
		e.theme = theme
	}
}

// WithFontSize sets the initial shared font size. The default is the
// profile's base font size.
func WithFontSize(size int) Option {
	return func(e *Engine) {
		if size > 0 {
			e.fontSize = size
		}
	}
}

// WithAccentColor overrides the theme's accent color.
func WithAccentColor(color uint32) Option {
	return func(e *Engine) {
		e.accentColor = color
		e.accentSet = true
	}
}

// WithMetrics sets the frame metrics recorder used by Row. A nil recorder
// disables instrumentation.
func WithMetrics(metrics *FrameMetrics) Option {
	return func(e *Engine) {
		e.metrics = metrics
		e.noMetrics = metrics == nil
	}
}

// WithLogger sets the logger for debug output and the default metrics
// report.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithDebug logs every press and tap the engine's classifiers observe.
func WithDebug(debug bool) Option {
	return func(e *Engine) {
		e.debug = debug
	}
}

// New returns an engine drawing through factory and measuring with measurer.
// The cursor starts at the profile's top margin.
func New(factory Factory, measurer Measurer, profile Profile, options ...Option) *Engine {
	e := &Engine{
		factory:  factory,
		measurer: measurer,
		profile:  profile,
		theme:    Styles,
		logger:   log.Default(),
		cursorY:  profile.MarginY,
		fontSize: profile.BaseFontSize,
	}
	for _, option := range options {
		option(e)
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard, "", 0)
	}
	if !e.accentSet {
		e.accentColor = e.theme.AccentColor
	}
	if e.fontSize <= 0 {
		e.fontSize = defaultFontSize
	}
	if e.metrics == nil && !e.noMetrics {
		e.metrics = NewFrameMetrics(WithMetricsLogger(e.logger))
	}
	return e
}

// Cursor returns the next free vertical offset.
func (e *Engine) Cursor() int {
	return e.cursorY
}

// Entries returns the registered entries in creation order.
func (e *Engine) Entries() []*Entry {
	entries := make([]*Entry, len(e.entries))
	copy(entries, e.entries)
	return entries
}

// Len returns the number of registered entries.
func (e *Engine) Len() int {
	return len(e.entries)
}

// Profile returns the device profile the engine lays out for.
func (e *Engine) Profile() Profile {
	return e.profile
}

// Theme returns the engine's theme.
func (e *Engine) Theme() Theme {
	return e.theme
}

// FontSize returns the shared font size.
func (e *Engine) FontSize() int {
	return e.fontSize
}

// SetFontSize changes the shared font size used by compact recipes and
// hidden buttons. Entries already built are not affected. It is the one
// external mutator of engine state: a font size picker screen calls it
// between rebuilds, and BaseRowHeight re-measures on the next access.
func (e *Engine) SetFontSize(size int) {
	if size > 0 {
		e.fontSize = size
	}
}

// AccentColor returns the accent color used by headlines and action buttons.
func (e *Engine) AccentColor() uint32 {
	return e.accentColor
}

// Metrics returns the row frame metrics recorder, or nil when disabled.
func (e *Engine) Metrics() *FrameMetrics {
	return e.metrics
}

// BaseRowHeight returns the height of a compact row at the current font
// size. The measurement is repeated only after the font size changed.
func (e *Engine) BaseRowHeight() int {
	return e.rowHeight.get(e.measurer, e.fontSize)
}

func (e *Engine) newEntry(recipe Recipe) *Entry {
	return &Entry{
		Recipe:    recipe,
		PositionY: e.cursorY,
		factory:   e.factory,
	}
}

func (e *Engine) register(entry *Entry) *Entry {
	entry.Index = len(e.entries)
	e.entries = append(e.entries, entry)
	e.cursorY += entry.ViewHeight
	return entry
}

// measure returns the wrapped height of text, or 0 for empty text.
func (e *Engine) measure(text string, fontSize, width int) int {
	if text == "" {
		return 0
	}
	return e.measurer.Measure(text, fontSize, width)
}

// classify binds a tap classifier to h which runs onTap on every tap.
func (e *Engine) classify(h Handle, onTap func()) *TapClassifier {
	c := NewTapClassifier(e.factory, h, func(TouchEvent) {
		if e.debug {
			e.logger.Printf("[listscreen] tap on widget %d", h)
		}
		if onTap != nil {
			onTap()
		}
	})
	if e.debug {
		c.OnDown = func(event TouchEvent) {
			e.logger.Printf("[listscreen] press down on widget %d at %d,%d", h, event.X, event.Y)
		}
		c.OnUp = func(event TouchEvent) {
			e.logger.Printf("[listscreen] press up on widget %d at %d,%d", h, event.X, event.Y)
		}
	}
	return c
}

func (e *Engine) measurePhase(phase Phase, fn func()) {
	if e.metrics == nil {
		fn()
		return
	}
	e.metrics.Measure(phase, fn)
}
