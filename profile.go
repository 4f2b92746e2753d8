package listscreen

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// Device classes with their own layout presets.
const (
	ClassDefault = "default"
	ClassMiBand  = "miband"
	ClassBand    = "band"
	ClassSquare  = "square"
	ClassCircle  = "circle"
)

// Profile describes the display an Engine lays out for. It is copied into
// the engine at construction and never changes afterwards.
type Profile struct {
	Class          string `toml:"class"`
	ScreenWidth    int    `toml:"screen_width"`
	ScreenHeight   int    `toml:"screen_height"`
	MarginX        int    `toml:"margin_x"`
	MarginY        int    `toml:"margin_y"`
	IconSizeSmall  int    `toml:"icon_size_small"`
	IconSizeMedium int    `toml:"icon_size_medium"`
	BaseFontSize   int    `toml:"base_font_size"`
}

// WidgetWidth returns the usable row width between the horizontal margins.
func (p Profile) WidgetWidth() int {
	return p.ScreenWidth - p.MarginX*2
}

// ProfileFor returns the preset for the given device class and screen size.
func ProfileFor(class string, width, height int) (Profile, error) {
	p := Profile{
		Class:          class,
		ScreenWidth:    width,
		ScreenHeight:   height,
		IconSizeSmall:  24,
		IconSizeMedium: 48,
		BaseFontSize:   18,
	}
	switch class {
	case ClassDefault, "":
		p.Class = ClassDefault
	case ClassMiBand:
		p.MarginY = 96
	case ClassBand:
		p.MarginY = 48
	case ClassSquare:
		p.MarginY = 64
		p.BaseFontSize = 24
		p.IconSizeSmall = 32
	case ClassCircle:
		p.MarginY = 96
		p.MarginX = 48
		p.BaseFontSize = 24
		p.IconSizeSmall = 32
	default:
		return Profile{}, fmt.Errorf("unknown device class %q", class)
	}
	return p, nil
}

// LoadProfile decodes a TOML profile. The class preset is applied first and
// any key present in the document overrides it.
func LoadProfile(r io.Reader) (Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}

	var head struct {
		Class        string `toml:"class"`
		ScreenWidth  int    `toml:"screen_width"`
		ScreenHeight int    `toml:"screen_height"`
	}
	if err := toml.Unmarshal(data, &head); err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}

	p, err := ProfileFor(head.Class, head.ScreenWidth, head.ScreenHeight)
	if err != nil {
		return Profile{}, err
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	if p.ScreenWidth <= 0 || p.ScreenHeight <= 0 {
		return Profile{}, fmt.Errorf("profile %q: screen size %dx%d is not positive", p.Class, p.ScreenWidth, p.ScreenHeight)
	}
	return p, nil
}
