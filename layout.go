package arbor

import (
	"fmt"

	"github.com/chewxy/math32"
)

// BoxConstraints bound the size a widget may report. Callers are expected to
// keep Min <= Max on each axis; nothing here enforces it.
type BoxConstraints struct {
	MinWidth, MaxWidth   Coord
	MinHeight, MaxHeight Coord
}

// Tight returns constraints that are only satisfied by size.
func Tight(size Size) BoxConstraints {
	return BoxConstraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints with a zero minimum and size as the maximum.
func Loose(size Size) BoxConstraints {
	return BoxConstraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// Min returns the smallest size the constraints allow.
func (bc BoxConstraints) Min() Size {
	return Size{bc.MinWidth, bc.MinHeight}
}

// Max returns the largest size the constraints allow.
func (bc BoxConstraints) Max() Size {
	return Size{bc.MaxWidth, bc.MaxHeight}
}

// Constrain clamps size into the constraints.
func (bc BoxConstraints) Constrain(size Size) Size {
	return Size{
		Width:  clamp(size.Width, bc.MinWidth, bc.MaxWidth),
		Height: clamp(size.Height, bc.MinHeight, bc.MaxHeight),
	}
}

// IsTight reports whether only one size satisfies the constraints.
func (bc BoxConstraints) IsTight() bool {
	return bc.MinWidth == bc.MaxWidth && bc.MinHeight == bc.MaxHeight
}

func (bc BoxConstraints) String() string {
	return fmt.Sprintf("w[%g,%g] h[%g,%g]", bc.MinWidth, bc.MaxWidth, bc.MinHeight, bc.MaxHeight)
}

func clamp(v, lo, hi Coord) Coord {
	return math32.Max(lo, math32.Min(v, hi))
}

// LayoutResult is one step of the layout negotiation: either the widget's
// final size or a request to measure one of its children first.
type LayoutResult struct {
	size        Size
	child       ID
	constraints BoxConstraints
	request     bool
}

// SizeResult finishes a widget's layout with the given size.
func SizeResult(size Size) LayoutResult {
	return LayoutResult{size: size, child: NoID}
}

// RequestChild asks the driver to lay out child under bc and call the widget
// again with the resulting size.
func RequestChild(child ID, bc BoxConstraints) LayoutResult {
	return LayoutResult{child: child, constraints: bc, request: true}
}

// IsRequest reports whether the result is a child request.
func (r LayoutResult) IsRequest() bool {
	return r.request
}

// Size returns the final size. Only meaningful when !IsRequest().
func (r LayoutResult) Size() Size {
	return r.size
}

// Child returns the requested child and its constraints. Only meaningful
// when IsRequest().
func (r LayoutResult) Child() (ID, BoxConstraints) {
	return r.child, r.constraints
}

func (r LayoutResult) String() string {
	if r.request {
		return fmt.Sprintf("RequestChild(%d, %v)", r.child, r.constraints)
	}
	return fmt.Sprintf("Size(%gx%g)", r.size.Width, r.size.Height)
}

// Event is an entry of the event queue: a payload addressed to the
// listeners of one node.
type Event struct {
	Target  ID
	Payload any
}

// LayoutCtx is the per-engine mutable state shared by layout, handlers and
// listeners: one geometry slot per node, the pending event queue and the
// focused node.
type LayoutCtx struct {
	// geom holds each node's bounding box relative to its parent.
	geom    []Rect
	eventQ  []Event
	focused ID
}

func newLayoutCtx() LayoutCtx {
	return LayoutCtx{focused: NoID}
}

// PositionChild sets the origin of child relative to its parent.
func (c *LayoutCtx) PositionChild(child ID, origin Point) {
	c.geom[child].Origin = origin
}

// ChildSize returns the size recorded for child during the current or last
// layout pass.
func (c *LayoutCtx) ChildSize(child ID) Size {
	return c.geom[child].Size
}

// SendEvent queues payload for the listeners of target.
func (c *LayoutCtx) SendEvent(target ID, payload any) {
	c.eventQ = append(c.eventQ, Event{Target: target, Payload: payload})
}

// Pending returns the number of queued events.
func (c *LayoutCtx) Pending() int {
	return len(c.eventQ)
}

// Focused returns the focused node, if any.
func (c *LayoutCtx) Focused() (ID, bool) {
	return c.focused, c.focused != NoID
}

// takeEvents returns the queued events and leaves the queue empty.
func (c *LayoutCtx) takeEvents() []Event {
	q := c.eventQ
	c.eventQ = nil
	return q
}
