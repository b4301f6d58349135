package arbor

// Widget is the capability every node of a Tree implements. Embed BaseWidget
// to get the default behavior for the methods a widget does not care about.
type Widget interface {
	// Paint draws the widget. bounds is already translated into the
	// painter's coordinate frame.
	Paint(p Painter, bounds Rect)

	// Layout takes part in the layout negotiation. size is nil on the first
	// call of a pass; afterwards it is the size of the child most recently
	// requested with RequestChild.
	Layout(bc BoxConstraints, children []ID, size *Size, ctx *LayoutCtx) LayoutResult

	// Mouse is sent on mouse events. Mouse events are propagated in a
	// post-order traversal of the tree, culled by geometry. Propagation
	// stops as soon as a widget returns true.
	Mouse(ev MouseEvent, ctx *HandlerCtx) bool

	// Key is sent on key events to the focused widget only. Returns true if
	// the event is handled.
	Key(ev KeyEvent, ctx *HandlerCtx) bool

	// Poke gives access to widget state beyond the other methods. The
	// meaning of payload is up to the widget. Returns true if handled.
	Poke(payload any, ctx *HandlerCtx) bool
}

// BaseWidget provides the default Widget behavior: no painting, no input
// handling, and a layout that forwards the constraints to a single child
// placed at the parent's origin.
type BaseWidget struct{}

// Paint does nothing.
func (BaseWidget) Paint(Painter, Rect) {}

// Layout forwards bc unchanged to children[0] and reports its size.
func (BaseWidget) Layout(bc BoxConstraints, children []ID, size *Size, ctx *LayoutCtx) LayoutResult {
	if size != nil {
		ctx.PositionChild(children[0], Point{})
		return SizeResult(*size)
	}
	return RequestChild(children[0], bc)
}

// Mouse reports the event unhandled.
func (BaseWidget) Mouse(MouseEvent, *HandlerCtx) bool { return false }

// Key reports the event unhandled.
func (BaseWidget) Key(KeyEvent, *HandlerCtx) bool { return false }

// Poke reports the payload unhandled.
func (BaseWidget) Poke(any, *HandlerCtx) bool { return false }

// Box is a leaf that fills its bounds with a solid color.
type Box struct {
	BaseWidget

	Color Color
	// Interactive makes the box consume mouse presses and key events and
	// queue them for its own listeners: a Click for presses, the KeyEvent
	// itself for keys.
	Interactive bool
}

// NewBox creates a box painted with c.
func NewBox(c Color) *Box {
	return &Box{Color: c}
}

// Paint fills bounds with the box color.
func (b *Box) Paint(p Painter, bounds Rect) {
	p.FillRect(bounds, b.Color)
}

// Layout keeps a previously measured size, otherwise takes the maximum the
// constraints allow.
func (b *Box) Layout(bc BoxConstraints, _ []ID, size *Size, _ *LayoutCtx) LayoutResult {
	if size != nil {
		return SizeResult(*size)
	}
	return SizeResult(bc.Max())
}

// Mouse queues a Click on press when the box is interactive.
func (b *Box) Mouse(ev MouseEvent, ctx *HandlerCtx) bool {
	if !b.Interactive {
		return false
	}
	if ev.IsRelease() {
		return true
	}
	ctx.SendEvent(Click{X: ev.X, Y: ev.Y, Button: ev.Button, Count: ev.Count, Mods: ev.Mods})
	return true
}

// Key queues the event when the box is interactive.
func (b *Box) Key(ev KeyEvent, ctx *HandlerCtx) bool {
	if !b.Interactive {
		return false
	}
	ctx.SendEvent(ev)
	return true
}

// Poke accepts a Color or *Color and repaints the box with it.
func (b *Box) Poke(payload any, _ *HandlerCtx) bool {
	switch c := payload.(type) {
	case Color:
		b.Color = c
	case *Color:
		b.Color = *c
	default:
		return false
	}
	return true
}
