package termhost

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/ayn2op/listscreen"
	"github.com/ayn2op/listscreen/textmeasure"
)

// Draw paints every widget in creation order, so children are drawn on top of
// their parents and later rows on top of earlier ones.
func (h *Host) Draw(screen tcell.Screen) {
	width, height := screen.Size()
	screen.Fill(' ', tcell.StyleDefault.Background(color(h.background)))

	for _, handle := range h.order {
		w := h.widgets[handle]
		r := h.cells(h.absolute(handle))
		if r.x >= width || r.y >= height || r.x+r.width <= 0 || r.y+r.height <= 0 {
			continue
		}

		switch w.kind {
		case listscreen.KindFillRect:
			fill(screen, r, color(w.props.Color), w.props.Radius >= h.cellWidth)
		case listscreen.KindButton:
			h.drawButton(screen, w, r)
		case listscreen.KindText:
			h.drawText(screen, w.props, r)
		case listscreen.KindImage:
			h.drawImage(screen, w.props, r)
		}

		if handle == h.focus && r.x > 0 {
			printLine(screen, FocusMarker, r.x-1, r.y+r.height/2, 1, listscreen.AlignmentLeft, color(h.focusColor))
		}
	}

	if h.showHelp {
		h.drawHelp(screen)
	}
}

func (h *Host) drawButton(screen tcell.Screen, w *widget, r cellRect) {
	if w.props.Transparent {
		return
	}
	background := w.props.NormalColor
	if w.pressed && w.props.PressColor != 0 {
		background = w.props.PressColor
	}
	fill(screen, r, color(background), w.props.Radius >= h.cellWidth)
	if w.props.Text != "" {
		printLine(screen, w.props.Text, r.x, r.y+r.height/2, r.width, listscreen.AlignmentCenter, color(w.props.Color))
	}
}

func (h *Host) drawText(screen tcell.Screen, props listscreen.Props, r cellRect) {
	if props.Text == "" || r.width <= 0 || props.Transparent {
		return
	}

	lines := []string{props.Text}
	if props.TextStyle == listscreen.TextStyleWrap {
		lines = textmeasure.WordWrap(props.Text, r.width)
	}
	rows := max(r.height, 1)
	if len(lines) > rows {
		lines = lines[:rows]
		last := lines[rows-1] + HorizontalEllipsis
		lines[rows-1] = runewidth.Truncate(last, r.width, HorizontalEllipsis)
	}

	top := r.y
	switch props.AlignV {
	case listscreen.AlignmentCenter:
		top += (rows - len(lines)) / 2
	case listscreen.AlignmentBottom:
		top += rows - len(lines)
	}
	for i, line := range lines {
		printLine(screen, line, r.x, top+i, r.width, props.AlignH, color(props.Color))
	}
}

func (h *Host) drawImage(screen tcell.Screen, props listscreen.Props, r cellRect) {
	if props.Transparent || props.Src == "" {
		return
	}
	glyph, ok := h.icons[props.Src]
	if !ok {
		glyph = DefaultIcon
	}
	printLine(screen, glyph, r.x, r.y+r.height/2, max(r.width, 1), listscreen.AlignmentCenter, color(listscreen.Styles.TextColor))
}

// fill paints r with background. Rounded rectangles leave their four corner
// cells untouched.
func fill(screen tcell.Screen, r cellRect, background tcell.Color, rounded bool) {
	style := tcell.StyleDefault.Background(background)
	rounded = rounded && r.width > 1 && r.height > 1
	for y := r.y; y < r.y+r.height; y++ {
		for x := r.x; x < r.x+r.width; x++ {
			if rounded && (x == r.x || x == r.x+r.width-1) && (y == r.y || y == r.y+r.height-1) {
				continue
			}
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// printLine draws a single line of text into the box at (x, y, maxWidth, 1).
// Text wider than the box is truncated with an ellipsis. The background of
// every cell written to is kept.
func printLine(screen tcell.Screen, text string, x, y, maxWidth int, alignment listscreen.Alignment, foreground tcell.Color) {
	totalWidth, totalHeight := screen.Size()
	if maxWidth <= 0 || text == "" || y < 0 || y >= totalHeight {
		return
	}

	if runewidth.StringWidth(text) > maxWidth {
		text = runewidth.Truncate(text, maxWidth, HorizontalEllipsis)
	}
	textWidth := uniseg.StringWidth(text)
	switch alignment {
	case listscreen.AlignmentRight:
		x += maxWidth - textWidth
	case listscreen.AlignmentCenter:
		x += (maxWidth - textWidth) / 2
	}

	graphemes := uniseg.NewGraphemes(text)
	for graphemes.Next() && x < totalWidth {
		width := graphemes.Width()
		if width == 0 {
			continue
		}
		if x >= 0 {
			runes := graphemes.Runes()
			_, _, existing, _ := screen.GetContent(x, y)
			_, background, _ := existing.Decompose()
			style := tcell.StyleDefault.Foreground(foreground).Background(background)
			screen.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += width
	}
}

// color converts 0xRRGGBB to a tcell color.
func color(c uint32) tcell.Color {
	return tcell.NewHexColor(int32(c & 0xFFFFFF))
}
