package textmeasure

import (
	"strings"

	"github.com/rivo/uniseg"
)

// stepState represents the current state of the grapheme parser.
type stepState struct {
	unisegState int
	boundaries  int
	grossLength int
}

// LineBreak returns whether the string can be broken into the next line after
// the returned grapheme cluster.
func (s *stepState) LineBreak() (lineBreak, optional bool) {
	switch s.boundaries & uniseg.MaskLine {
	case uniseg.LineCanBreak:
		return true, true
	case uniseg.LineMustBreak:
		return true, false
	}
	return false, false
}

// Width returns the grapheme cluster's width in cells.
func (s *stepState) Width() int {
	return s.boundaries >> uniseg.ShiftWidth
}

// GrossLength returns the grapheme cluster's length in bytes.
func (s *stepState) GrossLength() int {
	return s.grossLength
}

// step iterates over grapheme clusters of a string.
func step(str string, state *stepState) (cluster, rest string, newState *stepState) {
	if state == nil {
		state = &stepState{
			unisegState: -1,
		}
	}
	if len(str) == 0 {
		newState = state
		return
	}

	cluster, rest, state.boundaries, state.unisegState = uniseg.StepString(str, state.unisegState)
	state.grossLength = len(cluster)
	if rest == "" && !uniseg.HasTrailingLineBreakInString(cluster) {
		state.boundaries &^= uniseg.MaskLine
	}

	newState = state
	return
}

// Advance returns the horizontal size of one grapheme cluster. cells is the
// cluster's monospace width as reported by uniseg.
type Advance func(cluster string, cells int) int

// Cells is the Advance of a monospace terminal grid.
func Cells(_ string, cells int) int {
	return cells
}

// Wrap splits text such that no line exceeds width as measured by advance.
// Lines break at line-break opportunities where possible and inside a word
// only when the word alone is wider than width. Every newline starts a new
// line. A width of zero or less disables wrapping but still honors newlines.
func Wrap(text string, width int, advance Advance) (lines []string) {
	if width <= 0 {
		for _, line := range strings.Split(text, "\n") {
			lines = append(lines, strings.TrimRight(line, "\r"))
		}
		return
	}

	var (
		state                                              *stepState
		cluster                                            string
		lineWidth, lineLength, lastOption, lastOptionWidth int
	)
	str := text
	for len(str) > 0 {
		cluster, str, state = step(str, state)
		cWidth := advance(cluster, state.Width())

		// Trailing spaces hang past the edge instead of wrapping alone.
		if lineWidth+cWidth > width && lineLength > 0 && !isSpace(cluster) {
			if lastOptionWidth == 0 {
				lines = append(lines, text[:lineLength])
				text = text[lineLength:]
				lineWidth, lineLength, lastOption, lastOptionWidth = 0, 0, 0, 0
			} else {
				lines = append(lines, strings.TrimRight(text[:lastOption], " "))
				text = text[lastOption:]
				lineWidth -= lastOptionWidth
				lineLength -= lastOption
				lastOption, lastOptionWidth = 0, 0
			}
		}

		lineWidth += cWidth
		lineLength += state.GrossLength()

		if lineBreak, optional := state.LineBreak(); lineBreak {
			if optional {
				lastOption = lineLength
				lastOptionWidth = lineWidth
			} else {
				lines = append(lines, strings.TrimRight(text[:lineLength], "\n\r"))
				text = text[lineLength:]
				lineWidth, lineLength, lastOption, lastOptionWidth = 0, 0, 0, 0
			}
		}
	}
	lines = append(lines, text)

	return
}

func isSpace(cluster string) bool {
	return strings.TrimSpace(cluster) == ""
}

// WordWrap wraps text to a grid that is width cells wide.
func WordWrap(text string, width int) []string {
	return Wrap(text, width, Cells)
}
