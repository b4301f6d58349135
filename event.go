package arbor

import "fmt"

// MouseEvent is a mouse button press or release.
type MouseEvent struct {
	// X and Y are relative to the top-left of the widget receiving the event.
	X, Y Coord
	// Mods holds the modifier keys held at the time of the event.
	Mods KeyModifiers
	// Button is the button that changed state.
	Button MouseButton
	// Count is the number of successive clicks, 0 for a release.
	Count int
}

// IsRelease reports whether the event is a button release.
func (e MouseEvent) IsRelease() bool {
	return e.Count == 0
}

// KeyVariant is either a virtual-key code or a Unicode character.
type KeyVariant struct {
	code   int32
	ch     rune
	isChar bool
}

// VKey returns a KeyVariant holding a virtual-key code.
func VKey(code int32) KeyVariant {
	return KeyVariant{code: code}
}

// Char returns a KeyVariant holding a character.
func Char(r rune) KeyVariant {
	return KeyVariant{ch: r, isChar: true}
}

// IsChar reports whether the variant holds a character.
func (k KeyVariant) IsChar() bool { return k.isChar }

// Code returns the virtual-key code, or 0 for a character.
func (k KeyVariant) Code() int32 { return k.code }

// Rune returns the character, or 0 for a virtual key.
func (k KeyVariant) Rune() rune { return k.ch }

func (k KeyVariant) String() string {
	if k.isChar {
		return fmt.Sprintf("Char(%q)", k.ch)
	}
	return fmt.Sprintf("VKey(%d)", k.code)
}

// KeyEvent is a key press. Keys that produce characters are delivered
// twice, first as a VKey and then as a Char.
type KeyEvent struct {
	Key  KeyVariant
	Mods KeyModifiers
}

// Click is the payload an interactive Box queues when pressed.
type Click struct {
	X, Y   Coord
	Button MouseButton
	Count  int
	Mods   KeyModifiers
}

// HandlerCtx is handed to widget handlers (key, mouse, poke). It exposes the
// layout state only; listeners are not reachable from a handler.
type HandlerCtx struct {
	// ID is the node whose widget is handling the event.
	ID ID

	c *LayoutCtx
}

// SendEvent queues payload for the listeners of the handling node.
func (h *HandlerCtx) SendEvent(payload any) {
	h.c.SendEvent(h.ID, payload)
}

// Layout returns the shared layout state.
func (h *HandlerCtx) Layout() *LayoutCtx {
	return h.c
}

// ListenerCtx is handed to listeners and the command listener. Listeners may
// poke or rebuild any part of the tree, not only the node they listen on.
type ListenerCtx struct {
	// ID is the node the event was addressed to (the root for commands).
	ID ID

	Tree *Tree
}

// Poke delivers payload to the widget of node.
func (l *ListenerCtx) Poke(node ID, payload any) bool {
	return l.Tree.Poke(node, payload)
}

// SendEvent queues payload for the listeners of target. It is delivered in
// the next dispatch round.
func (l *ListenerCtx) SendEvent(target ID, payload any) {
	l.Tree.ctx.SendEvent(target, payload)
}
