package textmeasure

// Grid measures text laid out on a monospace cell grid, where every cell is
// CellWidth by CellHeight device units regardless of font size.
type Grid struct {
	CellWidth  int
	CellHeight int
}

// Measure returns the height of text wrapped to the whole cells that fit in
// wrapWidth. Empty text is 0 units tall.
func (g Grid) Measure(text string, _ int, wrapWidth int) int {
	if text == "" {
		return 0
	}
	cells := 0
	if wrapWidth > 0 {
		cells = max(wrapWidth/max(g.CellWidth, 1), 1)
	}
	return len(WordWrap(text, cells)) * g.CellHeight
}
