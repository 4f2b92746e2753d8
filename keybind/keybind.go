// Package keybind matches tcell key events against key strings such as "q",
// "esc", "shift+tab" or "ctrl+l".
package keybind

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Keybind is a set of equivalent keys and the help text describing them.
type Keybind struct {
	keys []string
	help Help
}

type Option func(*Keybind)

func NewKeybind(options ...Option) Keybind {
	k := &Keybind{}
	for _, option := range options {
		option(k)
	}
	return *k
}

func WithKeys(keys ...string) Option {
	return func(k *Keybind) {
		k.keys = normalizeKeys(keys...)
	}
}

func WithHelp(key, desc string) Option {
	return func(k *Keybind) {
		k.help = Help{Key: key, Desc: desc}
	}
}

func (k Keybind) Keys() []string {
	return k.keys
}

func (k *Keybind) SetKeys(keys ...string) {
	k.keys = normalizeKeys(keys...)
}

func (k *Keybind) SetHelp(key, desc string) {
	k.help = Help{Key: key, Desc: desc}
}

func (k Keybind) Help() Help {
	return k.help
}

// Enabled reports whether the keybind has at least one key.
func (k Keybind) Enabled() bool {
	return len(k.keys) > 0
}

type Help struct {
	Key  string
	Desc string
}

// String renders the help as "key desc".
func (h Help) String() string {
	if h.Key == "" {
		return h.Desc
	}
	return h.Key + " " + h.Desc
}

// Matches reports whether event is one of the keys of any of keybinds.
func Matches(event *tcell.EventKey, keybinds ...Keybind) bool {
	if event == nil {
		return false
	}

	key := EventKey(event)
	for _, keybind := range keybinds {
		if slices.Contains(keybind.keys, key) {
			return true
		}
	}
	return false
}

var modifierNames = map[string]string{
	"ctrl":    "ctrl",
	"control": "ctrl",
	"alt":     "alt",
	"shift":   "shift",
	"meta":    "meta",
}

var keyAliases = map[string]string{
	"escape":   "esc",
	"return":   "enter",
	"pageup":   "pgup",
	"pagedown": "pgdn",
	"backtab":  "shift+tab",
}

func normalizeKeys(keys ...string) []string {
	normalized := make([]string, 0, len(keys))
	for _, key := range keys {
		if key = normalizeKey(key); key != "" {
			normalized = append(normalized, key)
		}
	}
	return normalized
}

// normalizeKey lowercases named keys, orders modifiers as ctrl, alt, shift,
// meta and drops duplicates. Single runes keep their case unless modified.
func normalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if alias, ok := keyAliases[strings.ToLower(key)]; ok {
		key = alias
	}

	var (
		mods    = map[string]bool{}
		primary string
	)
	for _, part := range strings.Split(key, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if mod, ok := modifierNames[strings.ToLower(part)]; ok {
			mods[mod] = true
			continue
		}
		primary = part
	}
	if primary == "" {
		return ""
	}

	if alias, ok := keyAliases[strings.ToLower(primary)]; ok && !strings.Contains(alias, "+") {
		primary = alias
	}
	if len([]rune(primary)) != 1 || len(mods) > 0 {
		primary = strings.ToLower(primary)
	}
	return joinKey(mods, primary)
}

func joinKey(mods map[string]bool, primary string) string {
	parts := make([]string, 0, 5)
	for _, mod := range []string{"ctrl", "alt", "shift", "meta"} {
		if mods[mod] {
			parts = append(parts, mod)
		}
	}
	return strings.Join(append(parts, primary), "+")
}

// EventKey returns the normalized key string of event.
func EventKey(event *tcell.EventKey) string {
	key := event.Key()
	if key == tcell.KeyBacktab {
		return "shift+tab"
	}

	// Enter, tab and backspace share codes with ctrl+m, ctrl+i and ctrl+h;
	// the named key wins.
	primary := keyNames[key]
	if primary == "" && key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+(key-tcell.KeyCtrlA)))
	}
	if primary == "" && key == tcell.KeyRune {
		primary = string(event.Rune())
		if event.Rune() == ' ' {
			primary = "space"
		}
	}
	if primary == "" {
		return normalizeKey(event.Name())
	}

	mods := map[string]bool{
		"ctrl":  event.Modifiers()&tcell.ModCtrl != 0,
		"alt":   event.Modifiers()&tcell.ModAlt != 0,
		"shift": event.Modifiers()&tcell.ModShift != 0 && key != tcell.KeyRune,
		"meta":  event.Modifiers()&tcell.ModMeta != 0,
	}
	if mods["ctrl"] || mods["alt"] || mods["meta"] {
		primary = strings.ToLower(primary)
	}
	return joinKey(mods, primary)
}

var keyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "esc",
	tcell.KeyTab:        "tab",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdn",
	tcell.KeyDelete:     "delete",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyInsert:     "insert",
}
