package termhost

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ayn2op/listscreen"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(60, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func background(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func rowText(screen tcell.Screen, y, width int) string {
	out := make([]rune, 0, width)
	for x := 0; x < width; x++ {
		out = append(out, runeAt(screen, x, y))
	}
	return string(out)
}

func TestHost_Factory(t *testing.T) {
	h := New()
	group := h.CreateWidget(listscreen.KindGroup, listscreen.Props{X: 8, Y: 16, W: 80, H: 32})
	child := h.CreateChildWidget(group, listscreen.KindText, listscreen.Props{X: 8, Y: 0, W: 16, H: 16, Text: "a"})

	if h.Len() != 2 || h.Kind(child) != listscreen.KindText {
		t.Fatalf("len %d kind %v", h.Len(), h.Kind(child))
	}
	h.SetProperty(child, listscreen.PropText, "b")
	if got := h.Property(child, listscreen.PropText); got != "b" {
		t.Fatalf("text = %v", got)
	}
	if r := h.absolute(child); r != (unitRect{x: 16, y: 16, width: 16, height: 16}) {
		t.Fatalf("absolute rect = %+v", r)
	}

	mustPanic(t, "unknown parent", func() {
		h.CreateChildWidget(99, listscreen.KindText, listscreen.Props{})
	})
	mustPanic(t, "unknown widget", func() {
		h.SetProperty(99, listscreen.PropX, 1)
	})
	mustPanic(t, "mistyped value", func() {
		h.SetProperty(child, listscreen.PropX, "one")
	})
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected a panic", name)
		}
	}()
	fn()
}

func TestHost_Cells(t *testing.T) {
	type tc struct {
		in   unitRect
		want cellRect
	}

	tests := map[string]tc{
		"aligned":       {in: unitRect{x: 0, y: 0, width: 16, height: 32}, want: cellRect{x: 0, y: 0, width: 2, height: 2}},
		"partial cells": {in: unitRect{x: 4, y: 8, width: 8, height: 16}, want: cellRect{x: 0, y: 0, width: 2, height: 2}},
		"negative":      {in: unitRect{x: -4, y: -8, width: 4, height: 8}, want: cellRect{x: -1, y: -1, width: 1, height: 1}},
		"empty":         {in: unitRect{x: 8, y: 16}, want: cellRect{x: 1, y: 1}},
	}

	h := New()
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := h.cells(tt.in); got != tt.want {
				t.Fatalf("cells(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHost_DrawFillRect(t *testing.T) {
	screen := newTestScreen(t)
	h := New()
	h.CreateWidget(listscreen.KindFillRect, listscreen.Props{W: 80, H: 48, Color: 0x112233})
	h.CreateWidget(listscreen.KindFillRect, listscreen.Props{Y: 64, W: 80, H: 48, Color: 0x445566, Radius: 8})
	h.Draw(screen)

	square := tcell.NewHexColor(0x112233)
	if background(screen, 0, 0) != square || background(screen, 9, 2) != square {
		t.Fatal("square rect not filled to its corners")
	}
	if background(screen, 10, 0) == square {
		t.Fatal("fill leaked past the right edge")
	}

	round := tcell.NewHexColor(0x445566)
	if background(screen, 0, 4) == round || background(screen, 9, 6) == round {
		t.Fatal("rounded rect filled its corners")
	}
	if background(screen, 1, 4) != round || background(screen, 0, 5) != round {
		t.Fatal("rounded rect not filled next to the corners")
	}
}

func TestHost_DrawText(t *testing.T) {
	type tc struct {
		props listscreen.Props
		want  []string
	}

	tests := map[string]tc{
		"left": {
			props: listscreen.Props{W: 80, H: 16, Text: "Hello"},
			want:  []string{"Hello     "},
		},
		"right": {
			props: listscreen.Props{W: 80, H: 16, Text: "Hi", AlignH: listscreen.AlignmentRight},
			want:  []string{"        Hi"},
		},
		"center": {
			props: listscreen.Props{W: 80, H: 16, Text: "ab", AlignH: listscreen.AlignmentCenter},
			want:  []string{"    ab    "},
		},
		"clipped": {
			props: listscreen.Props{W: 40, H: 16, Text: "abcdefghij"},
			want:  []string{"abcd…     "},
		},
		"wrapped": {
			props: listscreen.Props{W: 40, H: 32, Text: "one two", TextStyle: listscreen.TextStyleWrap},
			want:  []string{"one       ", "two       "},
		},
		"wrapped overflow": {
			props: listscreen.Props{W: 40, H: 16, Text: "one two", TextStyle: listscreen.TextStyleWrap},
			want:  []string{"one…      ", "          "},
		},
		"vertical center": {
			props: listscreen.Props{W: 40, H: 48, Text: "x", AlignV: listscreen.AlignmentCenter},
			want:  []string{"          ", "x         ", "          "},
		},
		"transparent": {
			props: listscreen.Props{W: 40, H: 16, Text: "x", Transparent: true},
			want:  []string{"          "},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			screen := newTestScreen(t)
			h := New()
			tt.props.Color = 0xFFFFFF
			h.CreateWidget(listscreen.KindText, tt.props)
			h.Draw(screen)

			for y, want := range tt.want {
				if got := rowText(screen, y, 10); got != want {
					t.Fatalf("row %d = %q, want %q", y, got, want)
				}
			}
		})
	}
}

func TestHost_DrawKeepsBackground(t *testing.T) {
	screen := newTestScreen(t)
	h := New()
	group := h.CreateWidget(listscreen.KindGroup, listscreen.Props{W: 80, H: 16})
	h.CreateChildWidget(group, listscreen.KindFillRect, listscreen.Props{W: 80, H: 16, Color: 0x111111})
	h.CreateChildWidget(group, listscreen.KindText, listscreen.Props{W: 80, H: 16, Text: "a", Color: 0xFFFFFF})
	h.Draw(screen)

	_, _, style, _ := screen.GetContent(0, 0)
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewHexColor(0xFFFFFF) || bg != tcell.NewHexColor(0x111111) {
		t.Fatalf("text cell fg %v bg %v", fg, bg)
	}
}

func TestHost_DrawImage(t *testing.T) {
	screen := newTestScreen(t)
	h := New(WithIcons(map[string]string{"gear": "*"}))
	h.CreateWidget(listscreen.KindImage, listscreen.Props{W: 8, H: 16, Src: "gear"})
	h.CreateWidget(listscreen.KindImage, listscreen.Props{X: 16, W: 8, H: 16, Src: "unknown"})
	h.CreateWidget(listscreen.KindImage, listscreen.Props{X: 32, W: 8, H: 16, Src: "gear", Transparent: true})
	h.Draw(screen)

	if r := runeAt(screen, 0, 0); r != '*' {
		t.Fatalf("icon = %q", r)
	}
	if r := runeAt(screen, 2, 0); string(r) != DefaultIcon {
		t.Fatalf("fallback icon = %q", r)
	}
	if r := runeAt(screen, 4, 0); r != ' ' {
		t.Fatalf("transparent image drew %q", r)
	}
}
