package termhost

// Command is a side effect requested while handling an input event. Commands
// are executed by the Run loop.
type Command any

// BatchCommand groups multiple commands into a single command.
type BatchCommand []Command

// AppendCommand appends next to current and returns a merged command value.
// It flattens nested BatchCommand values.
func AppendCommand(current Command, next Command) Command {
	if next == nil {
		return current
	}
	if current == nil {
		return next
	}

	var batch BatchCommand
	switch c := current.(type) {
	case BatchCommand:
		batch = append(batch, c...)
	default:
		batch = append(batch, c)
	}

	switch n := next.(type) {
	case BatchCommand:
		batch = append(batch, n...)
	default:
		batch = append(batch, n)
	}
	return batch
}

// RedrawCommand requests a redraw at the end of the current event.
type RedrawCommand struct{}

// SyncCommand requests a full resynchronization of the terminal.
type SyncCommand struct{}

// QuitCommand requests stopping the Run loop.
type QuitCommand struct{}
