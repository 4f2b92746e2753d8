package listscreen

const (
	// rowHeightProbeWidth is the wrap width used when measuring the probe glyph.
	rowHeightProbeWidth = 96
	// rowHeightPadding is added to the measured glyph height.
	rowHeightPadding = 36
)

// rowHeightCache remembers the base row height for the last font size it was
// asked about.
type rowHeightCache struct {
	valid    bool
	fontSize int
	height   int
}

func (c *rowHeightCache) get(measurer Measurer, fontSize int) int {
	if !c.valid || c.fontSize != fontSize {
		c.height = measurer.Measure(" ", fontSize, rowHeightProbeWidth) + rowHeightPadding
		c.fontSize = fontSize
		c.valid = true
	}
	return c.height
}
