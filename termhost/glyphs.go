package termhost

// Glyphs drawn by the host.
const (
	HorizontalEllipsis = "…" // …
	FocusMarker        = "›" // ›
	DefaultIcon        = "◆" // ◆
)

// DefaultIcons maps the icon names used by the demo screen to glyphs. Any
// other image source is drawn as DefaultIcon.
var DefaultIcons = map[string]string{
	"checkbox_on":  "☑", // ☑
	"checkbox_off": "☐", // ☐
	"radio_on":     "◉", // ◉
	"radio_off":    "○", // ○
	"wifi":         "◎", // ◎
	"bluetooth":    "ᛒ", // ᛒ
	"brightness":   "☀", // ☀
	"battery":      "▮", // ▮
	"gear":         "⚙", // ⚙
	"play":         "▶", // ▶
	"info":         "ⓘ", // ⓘ
	"trash":        "✕", // ✕
}
