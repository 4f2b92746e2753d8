package textmeasure

import (
	"sync"
	"testing"
)

func TestMeasurer_Measure(t *testing.T) {
	m := New()
	line := m.Measure("x", 20, 0)
	if line <= 0 {
		t.Fatalf("one line is %d units tall", line)
	}

	type tc struct {
		text  string
		width int
		lines int
	}

	tests := map[string]tc{
		"empty":           {text: "", width: 100, lines: 0},
		"single":          {text: "Wi-Fi", width: 400, lines: 1},
		"newline":         {text: "first\nsecond", width: 400, lines: 2},
		"unbounded width": {text: "a very long line that would wrap", width: 0, lines: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := m.Measure(tt.text, 20, tt.width); got != tt.lines*line {
				t.Fatalf("height = %d, want %d lines of %d", got, tt.lines, line)
			}
		})
	}
}

func TestMeasurer_WrapsWithFontSize(t *testing.T) {
	m := New()
	text := "The quick brown fox jumps over the lazy dog"
	narrow := m.Measure(text, 20, 120)
	wide := m.Measure(text, 20, 2000)
	if narrow <= wide {
		t.Fatalf("narrow %d is not taller than wide %d", narrow, wide)
	}
	if m.Measure(text, 30, 2000) <= wide {
		t.Fatal("larger font is not taller")
	}
	lines := m.Lines(text, 20, 120)
	if len(lines)*m.Measure("x", 20, 0) != narrow {
		t.Fatalf("%d lines do not add up to %d units", len(lines), narrow)
	}
	for _, line := range lines {
		if line == "" {
			t.Fatalf("empty line in %q", lines)
		}
	}
	if m.Width("", 20) != 0 || m.Width("wide", 20) <= m.Width("w", 20) {
		t.Fatal("Width is not monotonic")
	}
}

func TestMeasurer_Pure(t *testing.T) {
	m := New()
	// Composed and decomposed forms of the same text measure alike.
	composed := m.Measure("café au lait", 18, 60)
	decomposed := m.Measure("cafe\u0301 au lait", 18, 60)
	if composed != decomposed {
		t.Fatalf("composed %d != decomposed %d", composed, decomposed)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := m.Measure("café au lait", 18, 60); got != composed {
				t.Errorf("concurrent measure = %d, want %d", got, composed)
			}
		}()
	}
	wg.Wait()
}

func TestMeasurer_BadFontFallsBack(t *testing.T) {
	m := New(WithFont([]byte("not a font")))
	// basicfont.Face7x13 is 13 units tall.
	if got := m.Measure("x", 20, 0); got != 13 {
		t.Fatalf("fallback height = %d, want 13", got)
	}
}
