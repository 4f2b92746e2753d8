package listscreen

// RowConfig configures Row.
type RowConfig struct {
	// Color of the main text. Default Theme.TextColor.
	Color uint32
	// FontSize of the main text. Default 20; the description uses two less.
	FontSize int

	Text        string
	Description string
	// Icon is the image source shown in the leading icon slot.
	Icon string

	OnTap func()

	// Card optionally restyles the row container.
	Card *RowCard

	// OneLine reserves HeadlineWidth units of the text column for a label
	// laid out beside the row.
	OneLine       bool
	HeadlineWidth int
}

// RowCard restyles the container of a Row.
type RowCard struct {
	// Width narrows the row container. Default the profile's widget width.
	Width int
	// Radius of the hidden button. Default 8.
	Radius int

	HiddenButton   string
	OnHiddenButton func()
}

func (c RowConfig) withDefaults(e *Engine) RowConfig {
	if c.Color == 0 {
		c.Color = e.theme.TextColor
	}
	if c.FontSize == 0 {
		c.FontSize = defaultFontSize
	}
	card := RowCard{}
	if c.Card != nil {
		card = *c.Card
	}
	if card.Width == 0 {
		card.Width = e.profile.WidgetWidth()
	}
	if card.Radius == 0 {
		card.Radius = defaultCardRadius
	}
	c.Card = &card
	return c
}

// rowLayout is the geometry computed by the layout phase of Row.
type rowLayout struct {
	config RowConfig

	iconSize   int
	textX      int
	textY      int
	textWidth  int
	textHeight int
	descHeight int
	rowHeight  int

	group Props
}

// Row builds a tappable row with an optional leading icon, a wrapped main
// text, an optional dimmed description and an optional hidden button. The
// layout and render phases are timed by the engine's frame metrics.
func (e *Engine) Row(config RowConfig) *Entry {
	var layout rowLayout
	e.measurePhase(PhaseLayout, func() {
		layout = e.layoutRow(config.withDefaults(e))
	})

	var entry *Entry
	e.measurePhase(PhaseRender, func() {
		entry = e.renderRow(layout)
	})
	return entry
}

func (e *Engine) layoutRow(config RowConfig) rowLayout {
	iconSize := e.profile.IconSizeSmall
	l := rowLayout{
		config:   config,
		iconSize: iconSize,
		textX:    iconSize * 2,
	}

	l.textWidth = config.Card.Width - iconSize*2 - rowMargin
	if config.OneLine {
		l.textWidth -= config.HeadlineWidth
	}

	l.textHeight = e.measure(config.Text, config.FontSize, l.textWidth)
	content := l.textHeight
	if config.Description != "" {
		l.descHeight = e.measure(config.Description, config.FontSize-2, l.textWidth)
		content += l.descHeight + rowMargin
	}
	l.rowHeight = max(iconSize+rowPadding*2, content+rowPadding*2)

	if config.Description != "" {
		l.textY = rowPadding
	} else {
		l.textY = (l.rowHeight - l.textHeight) / 2
	}

	l.group = Props{
		X: e.profile.MarginX,
		Y: e.cursorY,
		W: config.Card.Width,
		H: l.rowHeight,
	}
	return l
}

func (e *Engine) renderRow(l rowLayout) *Entry {
	config := l.config

	entry := e.newEntry(RecipeRow)
	entry.ViewHeight = l.rowHeight + rowMargin
	entry.props = l.group
	entry.Group = e.factory.CreateWidget(KindGroup, l.group)
	entry.Widget = entry.Group
	entry.Touch = e.classify(entry.Group, config.OnTap)

	entry.TextView = e.factory.CreateChildWidget(entry.Group, KindText, Props{
		X:         l.textX,
		Y:         l.textY,
		W:         l.textWidth,
		H:         l.textHeight,
		Text:      config.Text,
		TextSize:  config.FontSize,
		TextStyle: TextStyleWrap,
		AlignV:    AlignmentTop,
		Color:     config.Color,
	})

	if config.Icon != "" {
		entry.Icon = e.factory.CreateChildWidget(entry.Group, KindImage, Props{
			X:   l.iconSize / 2,
			Y:   (l.rowHeight - l.iconSize) / 2,
			W:   l.iconSize,
			H:   l.iconSize,
			Src: config.Icon,
		})
	}

	if config.Description != "" {
		e.factory.CreateChildWidget(entry.Group, KindText, Props{
			X:         l.textX,
			Y:         l.textY + l.textHeight + descriptionSpacing,
			W:         l.textWidth,
			H:         l.descHeight,
			Text:      config.Description,
			TextSize:  config.FontSize - 2,
			TextStyle: TextStyleWrap,
			AlignV:    AlignmentTop,
			Color:     Dim(config.Color, e.theme.DescriptionDim),
		})
	}

	if config.Card.HiddenButton != "" {
		e.hiddenButton(entry.Group, config.Card.Width, l.rowHeight, config.Card.Radius, config.Card.HiddenButton, config.Card.OnHiddenButton)
	}

	return e.register(entry)
}

// CheckboxConfig configures CheckboxRow.
type CheckboxConfig struct {
	Value       bool
	IconTrue    string
	IconFalse   string
	Text        string
	Description string
	// OnChange receives the new value after every tap.
	OnChange func(value bool)
}

// CheckboxRow builds a row whose icon toggles between IconTrue and IconFalse
// on every tap. The icon is updated in place.
func (e *Engine) CheckboxRow(config CheckboxConfig) *Entry {
	value := config.Value
	icon := func() string {
		if value {
			return config.IconTrue
		}
		return config.IconFalse
	}

	var entry *Entry
	entry = e.Row(RowConfig{
		Text:        config.Text,
		Description: config.Description,
		Icon:        icon(),
		OnTap: func() {
			value = !value
			entry.Value = value
			if entry.Icon != 0 {
				e.factory.SetProperty(entry.Icon, PropSrc, icon())
			}
			if config.OnChange != nil {
				config.OnChange(value)
			}
		},
	})
	entry.Value = value
	return entry
}

// ActionItem is one half of a TwoActionBar.
type ActionItem struct {
	Icon  string
	Text  string
	OnTap func()
}

// TwoActionBar builds a wide row for left and a round accent square holding
// the icon of right, sharing a single row slot. Screens narrower than 300
// units get two stacked rows instead. The returned entry is the left row.
func (e *Engine) TwoActionBar(left, right ActionItem) *Entry {
	width := e.profile.WidgetWidth()
	if width < oneLineMinWidth {
		first := e.Row(RowConfig{Text: left.Text, Icon: left.Icon, OnTap: left.OnTap})
		e.Row(RowConfig{Text: right.Text, Icon: right.Icon, OnTap: right.OnTap})
		return first
	}

	side := e.BaseRowHeight()
	firstWidth := width - side - rowMargin

	square := e.buildCard(RecipeCard, CardConfig{
		Width:          side,
		Height:         side,
		OffsetX:        firstWidth + rowMargin,
		Radius:         side / 2,
		Color:          e.accentColor,
		OnTap:          right.OnTap,
		DontChangePosY: true,
	})
	iconSize := e.profile.IconSizeSmall
	iconPos := (side - iconSize) / 2
	square.Icon = e.factory.CreateChildWidget(square.Group, KindImage, Props{
		X:   iconPos,
		Y:   iconPos,
		W:   iconSize,
		H:   iconSize,
		Src: right.Icon,
	})
	e.register(square)

	return e.Row(RowConfig{
		Text:  left.Text,
		Icon:  left.Icon,
		OnTap: left.OnTap,
		Card: &RowCard{
			Width:  firstWidth,
			Radius: side / 2,
		},
	})
}
