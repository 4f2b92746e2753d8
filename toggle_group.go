package listscreen

// ToggleOption is one choice of a toggle group.
type ToggleOption[T comparable] struct {
	Name  string
	Value T
}

// ToggleGroupConfig configures ToggleGroup.
type ToggleGroupConfig[T comparable] struct {
	// Value is the initially selected option value.
	Value     T
	IconTrue  string
	IconFalse string
	Options   []ToggleOption[T]
	// OnChange receives the newly selected value after every tap.
	OnChange func(value T)
}

// ToggleGroup builds one row per option. Tapping a row selects its value:
// its icon switches to IconTrue and every sibling's to IconFalse. The
// selection lives only in the rows; persisting it is up to OnChange.
//
// The returned entries hold their option value in Entry.Value.
func ToggleGroup[T comparable](e *Engine, config ToggleGroupConfig[T]) []*Entry {
	selected := config.Value
	rows := make([]*Entry, 0, len(config.Options))
	values := make([]T, 0, len(config.Options))

	icon := func(value T) string {
		if value == selected {
			return config.IconTrue
		}
		return config.IconFalse
	}

	choose := func(value T) {
		selected = value
		for i, row := range rows {
			if row.Icon != 0 {
				e.factory.SetProperty(row.Icon, PropSrc, icon(values[i]))
			}
		}
		if config.OnChange != nil {
			config.OnChange(selected)
		}
	}

	for _, option := range config.Options {
		row := e.Row(RowConfig{
			Text: option.Name,
			Icon: icon(option.Value),
			OnTap: func() {
				choose(option.Value)
			},
		})
		row.Value = option.Value
		rows = append(rows, row)
		values = append(values, option.Value)
	}
	return rows
}
