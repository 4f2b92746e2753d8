package listscreen

// Handle identifies a native widget created by a Factory. The zero Handle
// never refers to a widget.
type Handle uint32

// WidgetKind selects the native widget class to instantiate.
type WidgetKind int

const (
	KindGroup WidgetKind = iota
	KindText
	KindFillRect
	KindButton
	KindImage
)

func (k WidgetKind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindText:
		return "text"
	case KindFillRect:
		return "fill_rect"
	case KindButton:
		return "button"
	case KindImage:
		return "image"
	}
	return "unknown"
}

type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
	AlignmentTop
	AlignmentBottom
)

// TextStyle controls how a text widget handles overflowing content.
type TextStyle int

const (
	TextStyleNone TextStyle = iota
	TextStyleWrap
)

// Props is the property bag a widget is created with. Child widget
// coordinates are relative to their parent.
type Props struct {
	X, Y, W, H int

	Text      string
	TextSize  int
	TextStyle TextStyle
	AlignH    Alignment
	AlignV    Alignment

	Color       uint32
	NormalColor uint32
	PressColor  uint32
	Radius      int

	Src       string
	AutoScale bool

	// Transparent renders the widget at zero opacity. It still occupies its
	// rect and still receives touches.
	Transparent bool
}

// Prop is a single property key understood by Factory.SetProperty.
type Prop int

const (
	PropX Prop = iota
	PropY
	PropW
	PropH
	PropText
	PropTextSize
	PropTextStyle
	PropAlignH
	PropAlignV
	PropColor
	PropNormalColor
	PropPressColor
	PropRadius
	PropSrc
	PropTransparent
	// PropMore replaces every property at once. Its value is a Props.
	PropMore
)

// TouchEvent is a raw press delivered by the host, in absolute device units.
type TouchEvent struct {
	X, Y int
}

// Factory creates and updates native widgets. Implementations are expected
// to never fail; a failing host panics and the panic is not recovered here.
type Factory interface {
	CreateWidget(kind WidgetKind, props Props) Handle
	CreateChildWidget(parent Handle, kind WidgetKind, props Props) Handle
	SetProperty(h Handle, prop Prop, value any)
	Property(h Handle, prop Prop) any
	// SetPressHandlers installs the raw down/up callbacks for h. Either
	// callback may be nil.
	SetPressHandlers(h Handle, down, up func(TouchEvent))
}

// Measurer returns the rendered height of text at the given font size when
// wrapped to wrapWidth. It must be a pure function of its inputs.
type Measurer interface {
	Measure(text string, fontSize, wrapWidth int) int
}

// Screen is implemented by the concrete screens built on an Engine. The shell
// calls Start exactly once after construction.
type Screen interface {
	Start()
}

// Apply sets a single property on p and reports whether the key was known
// and the value had the right type. Hosts use it to implement SetProperty.
func (p *Props) Apply(prop Prop, value any) bool {
	switch prop {
	case PropX:
		return assign(&p.X, value)
	case PropY:
		return assign(&p.Y, value)
	case PropW:
		return assign(&p.W, value)
	case PropH:
		return assign(&p.H, value)
	case PropText:
		return assign(&p.Text, value)
	case PropTextSize:
		return assign(&p.TextSize, value)
	case PropTextStyle:
		return assign(&p.TextStyle, value)
	case PropAlignH:
		return assign(&p.AlignH, value)
	case PropAlignV:
		return assign(&p.AlignV, value)
	case PropColor:
		return assign(&p.Color, value)
	case PropNormalColor:
		return assign(&p.NormalColor, value)
	case PropPressColor:
		return assign(&p.PressColor, value)
	case PropRadius:
		return assign(&p.Radius, value)
	case PropSrc:
		return assign(&p.Src, value)
	case PropTransparent:
		return assign(&p.Transparent, value)
	case PropMore:
		return assign(p, value)
	}
	return false
}

// assign stores value in dst when it has dst's type. A mismatched value
// leaves dst untouched.
func assign[T any](dst *T, value any) bool {
	v, ok := value.(T)
	if ok {
		*dst = v
	}
	return ok
}

// Get returns the value stored under prop, or nil for an unknown key.
func (p Props) Get(prop Prop) any {
	switch prop {
	case PropX:
		return p.X
	case PropY:
		return p.Y
	case PropW:
		return p.W
	case PropH:
		return p.H
	case PropText:
		return p.Text
	case PropTextSize:
		return p.TextSize
	case PropTextStyle:
		return p.TextStyle
	case PropAlignH:
		return p.AlignH
	case PropAlignV:
		return p.AlignV
	case PropColor:
		return p.Color
	case PropNormalColor:
		return p.NormalColor
	case PropPressColor:
		return p.PressColor
	case PropRadius:
		return p.Radius
	case PropSrc:
		return p.Src
	case PropTransparent:
		return p.Transparent
	case PropMore:
		return p
	}
	return nil
}
