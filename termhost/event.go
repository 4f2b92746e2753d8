package termhost

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ayn2op/listscreen"
	"github.com/ayn2op/listscreen/keybind"
)

// HandleEvent processes a single tcell event and returns the command it
// requests, or nil.
func (h *Host) HandleEvent(event tcell.Event) Command {
	switch event := event.(type) {
	case *tcell.EventKey:
		return h.handleKey(event)
	case *tcell.EventMouse:
		return h.handleMouse(event)
	case *tcell.EventResize:
		return SyncCommand{}
	}
	return nil
}

func (h *Host) handleKey(event *tcell.EventKey) Command {
	switch {
	case keybind.Matches(event, h.keybinds.Quit):
		return QuitCommand{}
	case keybind.Matches(event, h.keybinds.Sync):
		return SyncCommand{}
	case keybind.Matches(event, h.keybinds.Next):
		return h.moveFocus(1)
	case keybind.Matches(event, h.keybinds.Previous):
		return h.moveFocus(-1)
	case keybind.Matches(event, h.keybinds.Activate):
		return h.activate()
	}
	return nil
}

// handleMouse derives primary button transitions from the button mask and
// delivers them as presses. A down goes to the widget under the pointer; an
// up goes to the widget under the pointer at release, which is not
// necessarily the one that received the down.
func (h *Host) handleMouse(event *tcell.EventMouse) Command {
	buttons := event.Buttons()
	changes := buttons ^ h.lastButtons
	h.lastButtons = buttons
	if changes&tcell.ButtonPrimary == 0 {
		return nil
	}

	cx, cy := event.Position()
	x, y := h.center(cx, cy)
	if buttons&tcell.ButtonPrimary != 0 {
		return h.pressDown(h.hit(x, y), x, y)
	}
	return h.pressUp(h.hit(x, y), x, y)
}

func (h *Host) pressDown(target listscreen.Handle, x, y int) Command {
	h.release()
	if target == 0 {
		return nil
	}
	w := h.widgets[target]
	w.pressed = true
	h.pressed = target
	h.focus = target
	if w.down != nil {
		w.down(listscreen.TouchEvent{X: x, Y: y})
	}
	return RedrawCommand{}
}

func (h *Host) pressUp(target listscreen.Handle, x, y int) Command {
	var cmd Command
	if h.release() {
		cmd = RedrawCommand{}
	}
	if target == 0 {
		return cmd
	}
	if w := h.widgets[target]; w.up != nil {
		w.up(listscreen.TouchEvent{X: x, Y: y})
		cmd = AppendCommand(cmd, RedrawCommand{})
	}
	return cmd
}

// release clears the pressed state and reports whether a widget was pressed.
func (h *Host) release() bool {
	if h.pressed == 0 {
		return false
	}
	if w, ok := h.widgets[h.pressed]; ok {
		w.pressed = false
	}
	h.pressed = 0
	return true
}

// moveFocus cycles keyboard focus through the interactive widgets in
// creation order.
func (h *Host) moveFocus(delta int) Command {
	var targets []listscreen.Handle
	current := -1
	for _, handle := range h.order {
		if !h.widgets[handle].interactive() {
			continue
		}
		if handle == h.focus {
			current = len(targets)
		}
		targets = append(targets, handle)
	}
	if len(targets) == 0 {
		return nil
	}

	next := 0
	switch {
	case current >= 0:
		next = (current + delta + len(targets)) % len(targets)
	case delta < 0:
		next = len(targets) - 1
	}
	h.focus = targets[next]
	return RedrawCommand{}
}

// activate delivers a full press to the focused widget at its center.
func (h *Host) activate() Command {
	if h.focus == 0 {
		return nil
	}
	r := h.absolute(h.focus)
	x, y := r.x+r.width/2, r.y+r.height/2
	return AppendCommand(h.pressDown(h.focus, x, y), h.pressUp(h.focus, x, y))
}

// Run draws the host onto screen and processes events until the quit key is
// pressed or the screen is finalized. The caller owns the screen's Init and
// Fini.
func (h *Host) Run(screen tcell.Screen) error {
	screen.EnableMouse()
	screen.Clear()
	h.Draw(screen)
	screen.Show()

	for {
		event := screen.PollEvent()
		if event == nil {
			return nil
		}
		if err, ok := event.(*tcell.EventError); ok {
			return err
		}

		redraw, sync, quit := h.execute(h.HandleEvent(event))
		if quit {
			return nil
		}
		if sync {
			screen.Clear()
		}
		if redraw || sync {
			h.Draw(screen)
		}
		if sync {
			screen.Sync()
		} else if redraw {
			screen.Show()
		}
	}
}

func (h *Host) execute(cmd Command) (redraw, sync, quit bool) {
	switch c := cmd.(type) {
	case BatchCommand:
		for _, item := range c {
			r, s, q := h.execute(item)
			redraw, sync, quit = redraw || r, sync || s, quit || q
		}
	case RedrawCommand:
		redraw = true
	case SyncCommand:
		sync = true
	case QuitCommand:
		quit = true
	}
	return
}
