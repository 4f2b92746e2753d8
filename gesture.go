package listscreen

// TapClassifier turns the raw press down/up pair of one widget into a tap.
//
// A down always arms the classifier. An up fires OnUp, then OnTap only if the
// classifier is armed, and then disarms it. An up that arrives without a
// preceding down (for example after the finger was dragged in from another
// widget) is therefore never a tap.
type TapClassifier struct {
	OnTap  func(TouchEvent)
	OnDown func(TouchEvent)
	OnUp   func(TouchEvent)

	armed bool
}

// NewTapClassifier returns a classifier bound to the press handlers of h.
// A zero handle or nil factory returns an unbound classifier which can still
// be driven through PressDown and PressUp.
func NewTapClassifier(factory Factory, h Handle, onTap func(TouchEvent)) *TapClassifier {
	c := &TapClassifier{OnTap: onTap}
	if factory != nil && h != 0 {
		factory.SetPressHandlers(h, c.PressDown, c.PressUp)
	}
	return c
}

// PressDown handles a raw press down event.
func (c *TapClassifier) PressDown(event TouchEvent) {
	c.armed = true
	if c.OnDown != nil {
		c.OnDown(event)
	}
}

// PressUp handles a raw press up event.
func (c *TapClassifier) PressUp(event TouchEvent) {
	if c.OnUp != nil {
		c.OnUp(event)
	}
	if c.armed && c.OnTap != nil {
		c.OnTap(event)
	}
	c.armed = false
}

// Armed reports whether the next up event will be classified as a tap.
func (c *TapClassifier) Armed() bool {
	return c.armed
}
