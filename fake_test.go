package listscreen

import (
	"io"
	"log"
	"testing"
	"unicode/utf8"
)

// fakeWidget is one widget created through fakeFactory.
type fakeWidget struct {
	kind   WidgetKind
	parent Handle
	props  Props
	down   func(TouchEvent)
	up     func(TouchEvent)
}

// fakeFactory records every widget and property update.
type fakeFactory struct {
	widgets map[Handle]*fakeWidget
	order   []Handle
	updates []propUpdate
}

type propUpdate struct {
	handle Handle
	prop   Prop
	value  any
}

var _ Factory = (*fakeFactory)(nil)

func newFakeFactory() *fakeFactory {
	return &fakeFactory{widgets: map[Handle]*fakeWidget{}}
}

func (f *fakeFactory) CreateWidget(kind WidgetKind, props Props) Handle {
	return f.CreateChildWidget(0, kind, props)
}

func (f *fakeFactory) CreateChildWidget(parent Handle, kind WidgetKind, props Props) Handle {
	h := Handle(len(f.order) + 1)
	f.widgets[h] = &fakeWidget{kind: kind, parent: parent, props: props}
	f.order = append(f.order, h)
	return h
}

func (f *fakeFactory) SetProperty(h Handle, prop Prop, value any) {
	w, ok := f.widgets[h]
	if !ok {
		panic("set property on unknown widget")
	}
	if !w.props.Apply(prop, value) {
		panic("bad property value")
	}
	f.updates = append(f.updates, propUpdate{handle: h, prop: prop, value: value})
}

func (f *fakeFactory) Property(h Handle, prop Prop) any {
	return f.widgets[h].props.Get(prop)
}

func (f *fakeFactory) SetPressHandlers(h Handle, down, up func(TouchEvent)) {
	w := f.widgets[h]
	w.down, w.up = down, up
}

// tap delivers a down/up pair to h.
func (f *fakeFactory) tap(t *testing.T, h Handle) {
	t.Helper()
	w, ok := f.widgets[h]
	if !ok || w.down == nil || w.up == nil {
		t.Fatalf("widget %d has no press handlers", h)
	}
	w.down(TouchEvent{})
	w.up(TouchEvent{})
}

// children returns the children of parent of the given kind, in creation
// order.
func (f *fakeFactory) children(parent Handle, kind WidgetKind) []Handle {
	var out []Handle
	for _, h := range f.order {
		w := f.widgets[h]
		if w.parent == parent && w.kind == kind {
			out = append(out, h)
		}
	}
	return out
}

// fakeMeasurer lays text out in a monospace font whose glyphs are half as
// wide as the font size and exactly as tall.
type fakeMeasurer struct {
	calls int
}

func (m *fakeMeasurer) Measure(text string, fontSize, wrapWidth int) int {
	m.calls++
	glyph := max(fontSize/2, 1)
	perLine := max(wrapWidth/glyph, 1)
	runes := utf8.RuneCountInString(text)
	lines := max((runes+perLine-1)/perLine, 1)
	return lines * fontSize
}

func testProfile(t *testing.T, width int) Profile {
	t.Helper()
	p, err := ProfileFor(ClassBand, width, 490)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func newTestEngine(t *testing.T, width int, options ...Option) (*Engine, *fakeFactory, *fakeMeasurer) {
	t.Helper()
	factory := newFakeFactory()
	measurer := &fakeMeasurer{}
	options = append([]Option{WithLogger(log.New(io.Discard, "", 0))}, options...)
	return New(factory, measurer, testProfile(t, width), options...), factory, measurer
}
