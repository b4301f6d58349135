package arbor

import (
	"log/slog"
	"time"
)

// EntityStore is the interface for optional ECS integration. When set on a
// UI, every dispatched event is forwarded to it after the node's listeners
// ran.
type EntityStore interface {
	EmitEvent(event Event)
}

// UI is the top-level engine object: a Tree plus the listener registry and
// the event dispatch loop. Tree methods are promoted, so a UI is built and
// laid out exactly like a Tree.
type UI struct {
	Tree

	listeners       map[ID][]listener
	nextListenerID  uint64
	commandListener func(cmd uint32, ctx *ListenerCtx)

	store  EntityStore
	logger *slog.Logger
	debug  bool

	injectQueue []syntheticEvent
}

// NewUI creates an empty UI. Add widgets, then call SetRoot.
func NewUI() *UI {
	return &UI{
		Tree:      newTree(),
		listeners: make(map[ID][]listener),
		logger:    slog.Default(),
	}
}

// SetLogger sets the logger used for diagnostics. nil restores slog.Default.
func (u *UI) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	u.logger = l
	if u.debug {
		debugLog = l
	}
}

// Logger returns the diagnostics logger.
func (u *UI) Logger() *slog.Logger {
	return u.logger
}

// SetEntityStore sets the optional ECS bridge.
func (u *UI) SetEntityStore(store EntityStore) {
	u.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, tree depth and
// child count warnings, negative padding constraints and per-frame timings
// are logged at debug level.
func (u *UI) SetDebugMode(enabled bool) {
	u.debug = enabled
	globalDebug = enabled
	if enabled {
		debugLog = u.logger
	}
}

// HandleKeyEvent delivers ev to the focused widget, then dispatches any
// events it queued. Returns false without dispatching when nothing has
// focus.
func (u *UI) HandleKeyEvent(ev KeyEvent) bool {
	id, ok := u.Focused()
	if !ok {
		return false
	}
	hc := HandlerCtx{ID: id, c: &u.ctx}
	handled := u.widgets[id].Key(ev, &hc)
	u.DispatchEvents()
	return handled
}

// HandleCommand passes an application command to the command listener with
// a context rooted at the tree root, then dispatches any events it caused.
// Without a command listener the command is logged and dropped.
func (u *UI) HandleCommand(cmd uint32) {
	if u.commandListener == nil {
		u.logger.Warn("command received but no handler", "command", cmd)
		return
	}
	lc := ListenerCtx{ID: u.Root(), Tree: &u.Tree}
	u.commandListener(cmd, &lc)
	u.DispatchEvents()
}

// DispatchEvents drains the event queue in rounds. Each round takes the
// whole queue, delivers every event to its target's listeners in
// registration order, and leaves events queued by those listeners for the
// next round. It returns once a round queues nothing; a listener that
// always queues a new event keeps it running forever.
func (u *UI) DispatchEvents() {
	rounds := 0
	for u.ctx.Pending() > 0 {
		rounds++
		for _, ev := range u.ctx.takeEvents() {
			u.deliver(ev)
		}
	}
	if u.debug && rounds > 0 {
		u.logger.Debug("dispatched events", "rounds", rounds)
	}
}

func (u *UI) deliver(ev Event) {
	lc := ListenerCtx{ID: ev.Target, Tree: &u.Tree}
	for _, l := range u.listeners[ev.Target] {
		l.fn(ev.Payload, &lc)
	}
	if u.store != nil {
		u.store.EmitEvent(ev)
	}
}

// Frame lays the root out to fit p, dispatches the events raised by layout
// and paints one frame into p. An empty UI only clears p.
func (u *UI) Frame(p Painter) {
	if u.Len() == 0 {
		p.Clear()
		p.Present()
		return
	}
	var stats debugStats
	var t0 time.Time
	if u.debug {
		t0 = time.Now()
	}

	root := u.Root()
	u.Layout(Loose(p.Size()), root)

	if u.debug {
		stats.layoutTime = time.Since(t0)
		t0 = time.Now()
	}

	u.DispatchEvents()

	if u.debug {
		stats.dispatchTime = time.Since(t0)
		t0 = time.Now()
	}

	p.Clear()
	u.Paint(p, root)
	p.Present()

	if u.debug {
		stats.paintTime = time.Since(t0)
		stats.nodeCount = u.Len()
		u.debugLogStats(stats)
	}
}
