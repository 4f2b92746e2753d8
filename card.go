package listscreen

// CardConfig configures Card. Zero fields take the defaults listed per field.
type CardConfig struct {
	// Color is the background color. Default Theme.CardColor.
	Color uint32
	// OffsetX shifts the card right of the screen margin.
	OffsetX int
	// Radius is the corner radius. Default 8.
	Radius int
	// Width defaults to the profile's widget width.
	Width  int
	Height int

	// HiddenButton is the label of an accent button pinned to the card's
	// right edge. Empty means no button.
	HiddenButton   string
	OnHiddenButton func()

	OnTap func()

	// DontChangePosY renders the card at the cursor without the card margin
	// and without advancing the cursor.
	DontChangePosY bool
}

func (c CardConfig) withDefaults(e *Engine) CardConfig {
	if c.Color == 0 {
		c.Color = e.theme.CardColor
	}
	if c.Radius == 0 {
		c.Radius = defaultCardRadius
	}
	if c.Width == 0 {
		c.Width = e.profile.WidgetWidth()
	}
	return c
}

// Card renders a rounded background with a full-area tap target.
func (e *Engine) Card(config CardConfig) *Entry {
	return e.register(e.buildCard(RecipeCard, config.withDefaults(e)))
}

// buildCard creates the card widgets from a fully resolved config without
// registering the entry.
func (e *Engine) buildCard(recipe Recipe, config CardConfig) *Entry {
	entry := e.newEntry(recipe)

	if !config.DontChangePosY {
		entry.offsetY = cardMargin / 2
		entry.ViewHeight = config.Height + cardMargin
	}

	entry.props = Props{
		X: e.profile.MarginX + config.OffsetX,
		Y: e.cursorY + entry.offsetY,
		W: config.Width,
		H: config.Height,
	}
	entry.Group = e.factory.CreateWidget(KindGroup, entry.props)
	entry.Widget = entry.Group

	e.factory.CreateChildWidget(entry.Group, KindFillRect, Props{
		W:      config.Width,
		H:      config.Height,
		Color:  config.Color,
		Radius: config.Radius,
	})

	touchArea := e.factory.CreateChildWidget(entry.Group, KindButton, Props{
		W:           config.Width,
		H:           config.Height,
		Transparent: true,
	})
	entry.Touch = e.classify(touchArea, config.OnTap)

	if config.HiddenButton != "" {
		e.hiddenButton(entry.Group, config.Width, config.Height, config.Radius, config.HiddenButton, config.OnHiddenButton)
	}
	return entry
}

// hiddenButton pins an accent button of fixed width to the right edge of a
// container that is width units wide.
func (e *Engine) hiddenButton(parent Handle, width, height, radius int, label string, onTap func()) Handle {
	button := e.factory.CreateChildWidget(parent, KindButton, Props{
		X:           width - hiddenButtonWidth,
		W:           hiddenButtonWidth,
		H:           height,
		Text:        label,
		TextSize:    e.fontSize - 4,
		TextStyle:   TextStyleNone,
		AlignH:      AlignmentCenter,
		AlignV:      AlignmentCenter,
		Color:       e.theme.ButtonTextColor,
		NormalColor: e.accentColor,
		PressColor:  e.theme.PressedColor,
		Radius:      radius,
	})
	e.classify(button, onTap)
	return button
}

// ImageConfig configures Image.
type ImageConfig struct {
	Width     int
	Height    int
	Src       string
	AutoScale bool
}

// Image renders an image inside a transparent-black card that is 8 units
// taller than the image.
func (e *Engine) Image(config ImageConfig) *Entry {
	entry := e.buildCard(RecipeImage, CardConfig{
		Height: config.Height + cardMargin,
		Radius: defaultCardRadius,
		Width:  e.profile.WidgetWidth(),
	})
	entry.Icon = e.factory.CreateChildWidget(entry.Group, KindImage, Props{
		W:         config.Width,
		H:         config.Height,
		Src:       config.Src,
		AutoScale: config.AutoScale,
	})
	return e.register(entry)
}

// Headline renders a single accent-colored label.
func (e *Engine) Headline(text string) *Entry {
	lineHeight := e.profile.BaseFontSize * 3 / 2

	entry := e.newEntry(RecipeHeadline)
	entry.props = Props{
		X:        e.profile.MarginX + headlineInset,
		Y:        e.cursorY,
		W:        e.profile.WidgetWidth() - headlineInset*2,
		H:        lineHeight,
		Text:     text,
		TextSize: e.profile.BaseFontSize - 4,
		AlignV:   AlignmentCenter,
		Color:    e.accentColor,
	}
	entry.Widget = e.factory.CreateWidget(KindText, entry.props)
	entry.TextView = entry.Widget
	entry.ViewHeight = lineHeight
	return e.register(entry)
}

// Offset inserts a blank gap of the given height. A height of zero or less
// uses the profile's top margin.
func (e *Engine) Offset(height int) *Entry {
	if height <= 0 {
		height = e.profile.MarginY
	}

	entry := e.newEntry(RecipeOffset)
	entry.props = Props{
		Y:           e.cursorY,
		W:           e.profile.ScreenWidth,
		H:           height,
		Transparent: true,
	}
	entry.Widget = e.factory.CreateWidget(KindImage, entry.props)
	entry.ViewHeight = height
	return e.register(entry)
}
