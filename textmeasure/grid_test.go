package textmeasure

import "testing"

func TestGrid_Measure(t *testing.T) {
	g := Grid{CellWidth: 8, CellHeight: 16}

	type tc struct {
		text  string
		width int
		want  int
	}

	tests := map[string]tc{
		"empty":    {text: "", width: 80, want: 0},
		"one line": {text: "hello", width: 80, want: 16},
		"wraps":    {text: "hello world", width: 40, want: 32},
		"narrower": {text: "ab", width: 4, want: 32},
		"no wrap":  {text: "hello world", width: 0, want: 16},
		"newline":  {text: "a\nb\nc", width: 80, want: 48},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := g.Measure(tt.text, 99, tt.width); got != tt.want {
				t.Fatalf("Measure(%q, %d) = %d, want %d", tt.text, tt.width, got, tt.want)
			}
		})
	}
}
