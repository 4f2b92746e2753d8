package listscreen

// FieldConfig configures Field.
type FieldConfig struct {
	// Color of the value text. Default Theme.TextColor.
	Color uint32
	// HeadlineColor defaults to Theme.SecondaryColor.
	HeadlineColor uint32
	// FontSize of the value text. Default 20.
	FontSize int
	// HeadlineFontSize defaults to 18.
	HeadlineFontSize int

	Headline string
	Text     string

	// Stacked forces the headline above the value even on wide screens.
	// Otherwise a screen at least 300 units wide lays them out side by side.
	Stacked bool
	// HeadlineWidth is the headline column width in one-line mode.
	// Default 140.
	HeadlineWidth int

	OnTap func()

	Card *FieldCard
}

// FieldCard restyles the container of a Field.
type FieldCard struct {
	OffsetX int
}

func (c FieldConfig) withDefaults(e *Engine) FieldConfig {
	if c.Color == 0 {
		c.Color = e.theme.TextColor
	}
	if c.HeadlineColor == 0 {
		c.HeadlineColor = e.theme.SecondaryColor
	}
	if c.FontSize == 0 {
		c.FontSize = defaultFontSize
	}
	if c.HeadlineFontSize == 0 {
		c.HeadlineFontSize = defaultHeadSize
	}
	if c.HeadlineWidth == 0 {
		c.HeadlineWidth = defaultHeadWidth
	}
	if c.Card == nil {
		c.Card = &FieldCard{}
	}
	return c
}

// Field builds a headline/value pair.
func (e *Engine) Field(config FieldConfig) *Entry {
	config = config.withDefaults(e)
	width := e.profile.WidgetWidth()
	oneLine := !config.Stacked && width >= oneLineMinWidth

	headWidth, valueX := width, 0
	if oneLine {
		headWidth = config.HeadlineWidth
		valueX = config.HeadlineWidth + rowMargin
	}
	valueWidth := width - valueX

	headHeight := e.measure(config.Headline, config.HeadlineFontSize, headWidth)
	textHeight := e.measure(config.Text, config.FontSize, valueWidth)

	var rowHeight int
	if oneLine {
		rowHeight = max(headHeight, textHeight) + fieldPadding*2
	} else {
		rowHeight = headHeight + textHeight + fieldPadding*3
	}

	entry := e.newEntry(RecipeField)
	entry.ViewHeight = rowHeight + rowMargin
	entry.props = Props{
		X: e.profile.MarginX + config.Card.OffsetX,
		Y: e.cursorY,
		W: width,
		H: rowHeight,
	}
	entry.Group = e.factory.CreateWidget(KindGroup, entry.props)
	entry.Widget = entry.Group
	entry.Touch = e.classify(entry.Group, config.OnTap)

	head := Props{
		Y:         fieldPadding,
		W:         headWidth,
		H:         headHeight,
		Text:      config.Headline,
		TextSize:  config.HeadlineFontSize,
		TextStyle: TextStyleWrap,
		AlignV:    AlignmentCenter,
		Color:     config.HeadlineColor,
	}
	value := Props{
		X:         valueX,
		Y:         headHeight + fieldPadding,
		W:         valueWidth,
		H:         textHeight,
		Text:      config.Text,
		TextSize:  config.FontSize,
		TextStyle: TextStyleWrap,
		AlignH:    AlignmentLeft,
		AlignV:    AlignmentCenter,
		Color:     config.Color,
	}
	if oneLine {
		head.H = rowHeight - fieldPadding*2
		value.Y = fieldPadding
		value.H = rowHeight - fieldPadding*2
		value.AlignH = AlignmentRight
	}
	e.factory.CreateChildWidget(entry.Group, KindText, head)
	entry.TextView = e.factory.CreateChildWidget(entry.Group, KindText, value)

	return e.register(entry)
}

// TextConfig configures Text.
type TextConfig struct {
	// Color defaults to Theme.TextColor.
	Color uint32
	// FontSize defaults to 20.
	FontSize int
	// Align is the horizontal alignment. Default AlignmentLeft.
	Align Alignment

	TopOffset    int
	BottomOffset int

	Text string
}

func (c TextConfig) withDefaults(e *Engine) TextConfig {
	if c.Color == 0 {
		c.Color = e.theme.TextColor
	}
	if c.FontSize == 0 {
		c.FontSize = defaultFontSize
	}
	return c
}

// Text builds a single wrapped paragraph.
func (e *Engine) Text(config TextConfig) *Entry {
	config = config.withDefaults(e)
	textWidth := e.profile.WidgetWidth() - textPadding*2
	textHeight := e.measure(config.Text, config.FontSize, textWidth)
	rowHeight := textHeight + config.TopOffset + config.BottomOffset + textPadding*2

	entry := e.newEntry(RecipeText)
	entry.ViewHeight = rowHeight + rowMargin
	entry.offsetY = config.TopOffset + textPadding
	entry.props = Props{
		X:         e.profile.MarginX + textPadding,
		Y:         e.cursorY + entry.offsetY,
		W:         textWidth,
		H:         textHeight,
		Text:      config.Text,
		TextSize:  config.FontSize,
		TextStyle: TextStyleWrap,
		AlignH:    config.Align,
		AlignV:    AlignmentCenter,
		Color:     config.Color,
	}
	entry.Widget = e.factory.CreateWidget(KindText, entry.props)
	entry.TextView = entry.Widget
	return e.register(entry)
}
