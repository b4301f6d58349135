package arbor

type syntheticKind uint8

const (
	syntheticKey syntheticKind = iota
	syntheticMouse
	syntheticCommand
)

// syntheticEvent is a single injected input event.
type syntheticEvent struct {
	kind  syntheticKind
	key   KeyEvent
	mouse MouseEvent
	cmd   uint32
}

// InjectKey queues a key event for the focused widget. The event is consumed
// on the next ProcessInjected call (once per frame under Run).
func (u *UI) InjectKey(ev KeyEvent) {
	u.injectQueue = append(u.injectQueue, syntheticEvent{kind: syntheticKey, key: ev})
}

// InjectText queues a Char key event per rune of s.
func (u *UI) InjectText(s string) {
	for _, r := range s {
		u.InjectKey(KeyEvent{Key: Char(r)})
	}
}

// InjectPress queues a left button press at (x, y) in the root's frame.
func (u *UI) InjectPress(x, y Coord) {
	u.injectQueue = append(u.injectQueue, syntheticEvent{
		kind:  syntheticMouse,
		mouse: MouseEvent{X: x, Y: y, Button: MouseButtonLeft, Count: 1},
	})
}

// InjectRelease queues a left button release at (x, y).
func (u *UI) InjectRelease(x, y Coord) {
	u.injectQueue = append(u.injectQueue, syntheticEvent{
		kind:  syntheticMouse,
		mouse: MouseEvent{X: x, Y: y, Button: MouseButtonLeft},
	})
}

// InjectClick is a convenience that queues a press followed by a release at
// the same coordinates. Consumes two frames.
func (u *UI) InjectClick(x, y Coord) {
	u.InjectPress(x, y)
	u.InjectRelease(x, y)
}

// InjectCommand queues an application command.
func (u *UI) InjectCommand(cmd uint32) {
	u.injectQueue = append(u.injectQueue, syntheticEvent{kind: syntheticCommand, cmd: cmd})
}

// PendingInjected returns the number of injected events not yet processed.
func (u *UI) PendingInjected() int {
	return len(u.injectQueue)
}

// ProcessInjected pops one injected event and feeds it through the regular
// entry points. Returns false if nothing was queued.
func (u *UI) ProcessInjected() bool {
	if len(u.injectQueue) == 0 {
		return false
	}
	evt := u.injectQueue[0]
	copy(u.injectQueue, u.injectQueue[1:])
	u.injectQueue = u.injectQueue[:len(u.injectQueue)-1]

	switch evt.kind {
	case syntheticKey:
		u.HandleKeyEvent(evt.key)
	case syntheticMouse:
		u.HandleMouseEvent(evt.mouse)
	case syntheticCommand:
		u.HandleCommand(evt.cmd)
	}
	return true
}
