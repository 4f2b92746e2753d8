package listscreen

// Recipe names the builder that produced an Entry.
type Recipe int

const (
	RecipeHeadline Recipe = iota
	RecipeOffset
	RecipeCard
	RecipeRow
	RecipeField
	RecipeText
	RecipeImage
)

func (r Recipe) String() string {
	switch r {
	case RecipeHeadline:
		return "headline"
	case RecipeOffset:
		return "offset"
	case RecipeCard:
		return "card"
	case RecipeRow:
		return "row"
	case RecipeField:
		return "field"
	case RecipeText:
		return "text"
	case RecipeImage:
		return "image"
	}
	return "unknown"
}

// Entry is one row of the list and the native widgets backing it.
type Entry struct {
	// Widget is the primary native handle. For container recipes it is the
	// same handle as Group.
	Widget Handle
	// ViewHeight is the vertical space the entry consumes, including its own
	// bottom margin.
	ViewHeight int
	// PositionY is the absolute offset of the entry's top edge.
	PositionY int
	// Index is the creation order within the engine.
	Index int
	// Recipe is the builder that created the entry.
	Recipe Recipe

	Group    Handle
	Icon     Handle
	TextView Handle
	Touch    *TapClassifier

	// Value is the option value of a toggle group row.
	Value any

	factory Factory
	// props are the creation properties of Widget.
	props Props
	// offsetY is the distance between PositionY and the widget's own Y.
	offsetY int
}

// Props returns the properties Widget was created with.
func (e *Entry) Props() Props {
	return e.props
}

// Reposition moves the entry so that its top edge is at y. Every other
// property keeps its original value.
func (e *Entry) Reposition(y int) {
	e.PositionY = y
	switch e.Recipe {
	case RecipeCard, RecipeImage, RecipeField, RecipeText:
		e.factory.SetProperty(e.Widget, PropY, y+e.offsetY)
	default:
		props := e.props
		props.Y = y + e.offsetY
		e.factory.SetProperty(e.Widget, PropMore, props)
	}
	e.props.Y = y + e.offsetY
}
