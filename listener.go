package arbor

import (
	"fmt"
	"reflect"
	"slices"
)

// listener is a type-erased event handler registered on one node.
type listener struct {
	id uint64
	fn func(payload any, ctx *ListenerCtx)
}

// ListenerHandle allows removing a registered listener.
type ListenerHandle struct {
	id   uint64
	node ID
	ui   *UI
}

// Node returns the node the listener is registered on.
func (h ListenerHandle) Node() ID {
	return h.node
}

// Remove unregisters the listener so it no longer fires. Removing a listener
// while an event for its node is being delivered takes effect from the next
// event.
func (h ListenerHandle) Remove() {
	if h.ui == nil {
		return
	}
	ls := h.ui.listeners[h.node]
	i := slices.IndexFunc(ls, func(l listener) bool { return l.id == h.id })
	if i < 0 {
		return
	}
	// Copy instead of deleting in place: a dispatch in progress may still be
	// ranging over the old slice.
	ls = slices.Delete(slices.Clone(ls), i, i+1)
	if len(ls) == 0 {
		delete(h.ui.listeners, h.node)
		return
	}
	h.ui.listeners[h.node] = ls
}

// AddListener registers fn for events addressed to node whose payload has
// type T. Listeners of a node run in registration order. An event whose
// payload is not a T is logged and skipped for this listener only.
//
// It is a function rather than a method because Go methods cannot take type
// parameters.
func AddListener[T any](u *UI, node ID, fn func(payload T, ctx *ListenerCtx)) ListenerHandle {
	want := reflect.TypeFor[T]()
	wrapper := func(payload any, ctx *ListenerCtx) {
		v, ok := payload.(T)
		if !ok {
			u.logger.Warn("type mismatch in listener payload",
				"node", int(ctx.ID), "want", want.String(), "got", fmt.Sprintf("%T", payload))
			return
		}
		fn(v, ctx)
	}
	u.nextListenerID++
	id := u.nextListenerID
	if u.listeners == nil {
		u.listeners = make(map[ID][]listener)
	}
	u.listeners[node] = append(u.listeners[node], listener{id: id, fn: wrapper})
	return ListenerHandle{id: id, node: node, ui: u}
}

// SetCommandListener sets the single handler for application commands,
// replacing any previous one. Pass nil to remove it.
func (u *UI) SetCommandListener(fn func(cmd uint32, ctx *ListenerCtx)) {
	u.commandListener = fn
}

// ListenerCount returns the number of listeners registered on node.
func (u *UI) ListenerCount(node ID) int {
	return len(u.listeners[node])
}
