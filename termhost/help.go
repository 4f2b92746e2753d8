package termhost

import (
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/ayn2op/listscreen"
	"github.com/ayn2op/listscreen/keybind"
)

const helpSeparator = " • "

// ShortHelp returns the keybinds listed in the help footer.
func (k Keybinds) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.Previous, k.Next, k.Activate, k.Quit}
}

type helpSegment struct {
	text string
	dim  bool
}

// shortHelpSegments joins the key/description pairs of bindings with a
// separator. Pairs that no longer fit in maxWidth are dropped and replaced by
// an ellipsis.
func shortHelpSegments(bindings []keybind.Keybind, maxWidth int) []helpSegment {
	var items [][]helpSegment
	for _, kb := range bindings {
		if !kb.Enabled() {
			continue
		}
		help := kb.Help()
		var item []helpSegment
		if help.Key != "" {
			item = append(item, helpSegment{text: help.Key, dim: true})
		}
		if help.Key != "" && help.Desc != "" {
			item = append(item, helpSegment{text: " "})
		}
		if help.Desc != "" {
			item = append(item, helpSegment{text: help.Desc})
		}
		if len(item) > 0 {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil
	}

	out := items[0]
	if maxWidth > 0 && segmentsWidth(out) > maxWidth {
		return nil
	}
	for _, item := range items[1:] {
		candidate := append(slices.Clone(out), helpSegment{text: helpSeparator, dim: true})
		candidate = append(candidate, item...)
		if maxWidth > 0 && segmentsWidth(candidate) > maxWidth {
			if segmentsWidth(out)+1+uniseg.StringWidth(HorizontalEllipsis) <= maxWidth {
				out = append(out, helpSegment{text: " " + HorizontalEllipsis, dim: true})
			}
			return out
		}
		out = candidate
	}
	return out
}

func segmentsWidth(segments []helpSegment) int {
	width := 0
	for _, s := range segments {
		width += uniseg.StringWidth(s.text)
	}
	return width
}

// drawHelp paints the short help on the last terminal row.
func (h *Host) drawHelp(screen tcell.Screen) {
	width, height := screen.Size()
	if height == 0 {
		return
	}
	y := height - 1
	fill(screen, cellRect{y: y, width: width, height: 1}, color(h.background), false)

	x := 0
	for _, s := range shortHelpSegments(h.keybinds.ShortHelp(), width) {
		fg := color(0xFFFFFF)
		if s.dim {
			fg = color(0x999999)
		}
		printLine(screen, s.text, x, y, width-x, listscreen.AlignmentLeft, fg)
		x += uniseg.StringWidth(s.text)
	}
}
