// Package termhost renders list screens into a terminal. A Host implements
// listscreen.Factory by retaining the widgets it creates; Draw paints them
// onto a tcell screen and HandleEvent turns mouse presses and key presses
// into the press down/up callbacks registered by the engine.
package termhost

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ayn2op/listscreen"
	"github.com/ayn2op/listscreen/keybind"
)

// Default cell size in device units.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// Keybinds are the keys the host reacts to.
type Keybinds struct {
	Quit     keybind.Keybind
	Sync     keybind.Keybind
	Next     keybind.Keybind
	Previous keybind.Keybind
	Activate keybind.Keybind
}

// DefaultKeybinds returns the default key map.
func DefaultKeybinds() Keybinds {
	return Keybinds{
		Quit:     keybind.NewKeybind(keybind.WithKeys("q", "esc", "ctrl+c"), keybind.WithHelp("q", "quit")),
		Sync:     keybind.NewKeybind(keybind.WithKeys("ctrl+l"), keybind.WithHelp("ctrl+l", "redraw")),
		Next:     keybind.NewKeybind(keybind.WithKeys("down", "tab", "j"), keybind.WithHelp("↓", "next")),
		Previous: keybind.NewKeybind(keybind.WithKeys("up", "shift+tab", "k"), keybind.WithHelp("↑", "previous")),
		Activate: keybind.NewKeybind(keybind.WithKeys("enter", "space"), keybind.WithHelp("enter", "tap")),
	}
}

type widget struct {
	kind   listscreen.WidgetKind
	parent listscreen.Handle
	props  listscreen.Props

	down func(listscreen.TouchEvent)
	up   func(listscreen.TouchEvent)

	pressed bool
}

func (w *widget) interactive() bool {
	return w.down != nil || w.up != nil
}

// Host is a retained widget tree drawn onto a tcell screen. It is not safe
// for concurrent use.
type Host struct {
	cellWidth  int
	cellHeight int
	icons      map[string]string
	keybinds   Keybinds
	background uint32
	focusColor uint32
	showHelp   bool

	widgets map[listscreen.Handle]*widget
	order   []listscreen.Handle

	lastButtons tcell.ButtonMask
	pressed     listscreen.Handle
	focus       listscreen.Handle
}

var _ listscreen.Factory = (*Host)(nil)

// Option configures a Host.
type Option func(*Host)

// WithCellSize sets how many device units one terminal cell covers.
func WithCellSize(width, height int) Option {
	return func(h *Host) {
		if width > 0 && height > 0 {
			h.cellWidth, h.cellHeight = width, height
		}
	}
}

// WithIcons maps image sources to the glyphs drawn for them.
func WithIcons(icons map[string]string) Option {
	return func(h *Host) {
		h.icons = icons
	}
}

// WithKeybinds replaces the default key map.
func WithKeybinds(keybinds Keybinds) Option {
	return func(h *Host) {
		h.keybinds = keybinds
	}
}

// WithHelp draws a short key help footer over the last terminal row.
func WithHelp(show bool) Option {
	return func(h *Host) {
		h.showHelp = show
	}
}

// WithBackground sets the screen background color.
func WithBackground(color uint32) Option {
	return func(h *Host) {
		h.background = color
	}
}

// WithFocusColor sets the color of the keyboard focus marker. Hosts for an
// engine with its own theme or accent color pass the engine's AccentColor.
func WithFocusColor(color uint32) Option {
	return func(h *Host) {
		h.focusColor = color
	}
}

// New returns an empty host.
func New(options ...Option) *Host {
	h := &Host{
		cellWidth:  DefaultCellWidth,
		cellHeight: DefaultCellHeight,
		icons:      DefaultIcons,
		keybinds:   DefaultKeybinds(),
		focusColor: listscreen.Styles.AccentColor,
		widgets:    map[listscreen.Handle]*widget{},
	}
	for _, option := range options {
		option(h)
	}
	return h
}

// CreateWidget creates a top level widget.
func (h *Host) CreateWidget(kind listscreen.WidgetKind, props listscreen.Props) listscreen.Handle {
	return h.CreateChildWidget(0, kind, props)
}

// CreateChildWidget creates a widget positioned relative to parent. A zero
// parent creates a top level widget.
func (h *Host) CreateChildWidget(parent listscreen.Handle, kind listscreen.WidgetKind, props listscreen.Props) listscreen.Handle {
	if parent != 0 {
		h.mustGet(parent)
	}
	handle := listscreen.Handle(len(h.order) + 1)
	h.widgets[handle] = &widget{kind: kind, parent: parent, props: props}
	h.order = append(h.order, handle)
	return handle
}

// SetProperty updates a single property. Unknown handles and mistyped
// values panic.
func (h *Host) SetProperty(handle listscreen.Handle, prop listscreen.Prop, value any) {
	w := h.mustGet(handle)
	if !w.props.Apply(prop, value) {
		panic(fmt.Sprintf("termhost: property %d of widget %d cannot hold %T", prop, handle, value))
	}
}

// Property returns the current value of a property.
func (h *Host) Property(handle listscreen.Handle, prop listscreen.Prop) any {
	return h.mustGet(handle).props.Get(prop)
}

// SetPressHandlers installs the press callbacks of a widget.
func (h *Host) SetPressHandlers(handle listscreen.Handle, down, up func(listscreen.TouchEvent)) {
	w := h.mustGet(handle)
	w.down, w.up = down, up
}

// Len returns the number of widgets.
func (h *Host) Len() int {
	return len(h.order)
}

// Kind returns the kind of a widget.
func (h *Host) Kind(handle listscreen.Handle) listscreen.WidgetKind {
	return h.mustGet(handle).kind
}

// Focus returns the widget keyboard activation is delivered to, or zero.
func (h *Host) Focus() listscreen.Handle {
	return h.focus
}

func (h *Host) mustGet(handle listscreen.Handle) *widget {
	w, ok := h.widgets[handle]
	if !ok {
		panic(fmt.Sprintf("termhost: unknown widget %d", handle))
	}
	return w
}

// unitRect is a rectangle in device units.
type unitRect struct {
	x, y, width, height int
}

// contains reports whether the point is inside the rectangle.
func (r unitRect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.width && y >= r.y && y < r.y+r.height
}

// absolute returns the widget's rectangle in screen units.
func (h *Host) absolute(handle listscreen.Handle) unitRect {
	w := h.widgets[handle]
	r := unitRect{x: w.props.X, y: w.props.Y, width: w.props.W, height: w.props.H}
	for parent := w.parent; parent != 0; {
		p := h.widgets[parent]
		r.x += p.props.X
		r.y += p.props.Y
		parent = p.parent
	}
	return r
}

// cellRect is a rectangle in terminal cells.
type cellRect struct {
	x, y, width, height int
}

// cells converts a unit rectangle to the cells it covers.
func (h *Host) cells(r unitRect) cellRect {
	x0 := floorDiv(r.x, h.cellWidth)
	y0 := floorDiv(r.y, h.cellHeight)
	x1 := floorDiv(r.x+r.width+h.cellWidth-1, h.cellWidth)
	y1 := floorDiv(r.y+r.height+h.cellHeight-1, h.cellHeight)
	return cellRect{x: x0, y: y0, width: max(x1-x0, 0), height: max(y1-y0, 0)}
}

// center returns the device unit point at the middle of a cell.
func (h *Host) center(cx, cy int) (int, int) {
	return cx*h.cellWidth + h.cellWidth/2, cy*h.cellHeight + h.cellHeight/2
}

// hit returns the topmost interactive widget containing the point.
func (h *Host) hit(x, y int) listscreen.Handle {
	for i := len(h.order) - 1; i >= 0; i-- {
		handle := h.order[i]
		if h.widgets[handle].interactive() && h.absolute(handle).contains(x, y) {
			return handle
		}
	}
	return 0
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
