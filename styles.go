package listscreen

import "github.com/lucasb-eyer/go-colorful"

// Theme defines the colors used when recipes are built.
type Theme struct {
	TextColor       uint32 // Primary row text.
	SecondaryColor  uint32 // Field headlines.
	CardColor       uint32 // Card backgrounds.
	AccentColor     uint32 // Headlines, hidden buttons, action squares.
	PressedColor    uint32 // Hidden buttons while pressed.
	ButtonTextColor uint32 // Text on accent-colored buttons.

	// DescriptionDim is how far row descriptions are blended from the row
	// color toward black, in [0, 1].
	DescriptionDim float64
}

// Styles is the default theme: white text on near-black cards with a blue
// accent.
var Styles = Theme{
	TextColor:       0xFFFFFF,
	SecondaryColor:  0x999999,
	CardColor:       0x111111,
	AccentColor:     0x0077AA,
	PressedColor:    0x005588,
	ButtonTextColor: 0xFFFFFF,
	DescriptionDim:  0.4,
}

// Blend mixes two 0xRRGGBB colors in RGB space. t=0 yields a, t=1 yields b.
func Blend(a, b uint32, t float64) uint32 {
	mixed := rgb(a).BlendRgb(rgb(b), t)
	r, g, bl := mixed.Clamped().RGB255()
	return uint32(r)<<16 | uint32(g)<<8 | uint32(bl)
}

// Dim blends c toward black by amount.
func Dim(c uint32, amount float64) uint32 {
	return Blend(c, 0x000000, amount)
}

func rgb(c uint32) colorful.Color {
	return colorful.Color{
		R: float64(c>>16&0xFF) / 255,
		G: float64(c>>8&0xFF) / 255,
		B: float64(c&0xFF) / 255,
	}
}
