// Package textmeasure measures wrapped text in device units using the Go
// fonts. It implements listscreen.Measurer for hosts without a native layout
// engine.
package textmeasure

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// DefaultDPI matches one font point to one device unit.
const DefaultDPI = 72

type memoKey struct {
	text  string
	size  int
	width int
}

// fontBank parses a font once and caches one face per size.
type fontBank struct {
	font  *opentype.Font
	dpi   float64
	faces map[int]font.Face
}

func newFontBank(ttf []byte, dpi float64) fontBank {
	bank := fontBank{dpi: dpi, faces: map[int]font.Face{}}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return bank
	}
	bank.font = f
	return bank
}

func (b *fontBank) face(size int) font.Face {
	if f, ok := b.faces[size]; ok {
		return f
	}
	if b.font == nil || size <= 0 {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(b.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     b.dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	b.faces[size] = face
	return face
}

// Measurer lays text out with a proportional font. It is safe for concurrent
// use.
type Measurer struct {
	ttf []byte
	dpi float64

	mu   sync.Mutex
	bank fontBank
	memo map[memoKey]int
}

// Option configures a Measurer.
type Option func(*Measurer)

// WithFont replaces the Go Regular font with another TrueType or OpenType
// font. A font that fails to parse falls back to a fixed 7x13 face.
func WithFont(ttf []byte) Option {
	return func(m *Measurer) {
		m.ttf = ttf
	}
}

// WithDPI sets the resolution font sizes are scaled with.
func WithDPI(dpi float64) Option {
	return func(m *Measurer) {
		if dpi > 0 {
			m.dpi = dpi
		}
	}
}

// New returns a Measurer using Go Regular at DefaultDPI.
func New(options ...Option) *Measurer {
	m := &Measurer{
		ttf:  goregular.TTF,
		dpi:  DefaultDPI,
		memo: map[memoKey]int{},
	}
	for _, option := range options {
		option(m)
	}
	m.bank = newFontBank(m.ttf, m.dpi)
	return m
}

// Measure returns the height of text at fontSize wrapped to wrapWidth. Empty
// text is 0 units tall.
func (m *Measurer) Measure(text string, fontSize, wrapWidth int) int {
	if text == "" {
		return 0
	}
	key := memoKey{text: norm.NFC.String(text), size: fontSize, width: wrapWidth}

	m.mu.Lock()
	defer m.mu.Unlock()
	if h, ok := m.memo[key]; ok {
		return h
	}

	face := m.bank.face(fontSize)
	lines := Wrap(key.text, wrapWidth, faceAdvance(face))
	h := len(lines) * face.Metrics().Height.Ceil()
	m.memo[key] = h
	return h
}

// Lines returns text wrapped to wrapWidth at fontSize.
func (m *Measurer) Lines(text string, fontSize, wrapWidth int) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Wrap(norm.NFC.String(text), wrapWidth, faceAdvance(m.bank.face(fontSize)))
}

// Width returns the advance of a single line of text at fontSize.
func (m *Measurer) Width(text string, fontSize int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return pixels(font.MeasureString(m.bank.face(fontSize), text))
}

func faceAdvance(face font.Face) Advance {
	return func(cluster string, _ int) int {
		return pixels(font.MeasureString(face, cluster))
	}
}

// pixels rounds a 26.6 fixed point advance to whole units.
func pixels(adv fixed.Int26_6) int {
	return max((int(adv)+32)>>6, 0)
}
