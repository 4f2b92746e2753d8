package textmeasure

import (
	"reflect"
	"testing"
)

func TestWordWrap(t *testing.T) {
	type tc struct {
		text  string
		width int
		want  []string
	}

	tests := map[string]tc{
		"fits":              {text: "hello", width: 10, want: []string{"hello"}},
		"break at space":    {text: "hello world", width: 5, want: []string{"hello", "world"}},
		"break long word":   {text: "abcdefgh", width: 3, want: []string{"abc", "def", "gh"}},
		"several words":     {text: "one two three four", width: 9, want: []string{"one two", "three", "four"}},
		"newline":           {text: "a\nb", width: 10, want: []string{"a", "b"}},
		"no wrap":           {text: "hello world", width: 0, want: []string{"hello world"}},
		"no wrap newline":   {text: "x\r\ny", width: -1, want: []string{"x", "y"}},
		"wide runes":        {text: "日本語", width: 4, want: []string{"日本", "語"}},
		"empty":             {text: "", width: 4, want: []string{""}},
		"narrower than one": {text: "ab", width: 1, want: []string{"a", "b"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := WordWrap(tt.text, tt.width)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("WordWrap(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrap_CustomAdvance(t *testing.T) {
	// Every cluster is ten units wide.
	ten := func(string, int) int { return 10 }
	got := Wrap("ab cd", 25, ten)
	want := []string{"ab", "cd"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}
