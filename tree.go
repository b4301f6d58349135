package arbor

import (
	"fmt"
	"slices"
)

// Tree owns the widgets, their graph and the layout state. Every per-node
// table is indexed by the same ID, so widgets, graph nodes and geometry
// slots always have the same count.
//
// Tree is the context handed to listeners: they may poke widgets, add nodes
// and change the root or focus, but cannot reach the listener registry.
type Tree struct {
	widgets []Widget
	graph   Graph
	ctx     LayoutCtx
}

func newTree() Tree {
	return Tree{ctx: newLayoutCtx()}
}

// Add stores w as a new node, appends children under it in order and
// returns the new node's ID.
func (t *Tree) Add(w Widget, children ...ID) ID {
	if w == nil {
		panic("arbor: cannot add nil widget")
	}
	id := t.graph.AllocNode()
	t.widgets = append(t.widgets, w)
	t.ctx.geom = append(t.ctx.geom, Rect{})
	for _, child := range children {
		t.graph.AppendChild(id, child)
	}
	if globalDebug {
		debugCheckChildCount(t, id)
	}
	return id
}

// AppendChild attaches an existing node under parent after the tree was
// built. Same validation as Graph.AppendChild.
func (t *Tree) AppendChild(parent, child ID) {
	t.graph.AppendChild(parent, child)
	if globalDebug {
		debugCheckTreeDepth(t, child)
		debugCheckChildCount(t, parent)
	}
}

// SetRoot sets the node used by commands, mouse routing and frames. The id
// is not validated.
func (t *Tree) SetRoot(root ID) {
	t.graph.root = root
}

// Root returns the root node.
func (t *Tree) Root() ID {
	return t.graph.root
}

// SetFocus sets the node receiving key events. NoID clears the focus. The id
// is not validated.
func (t *Tree) SetFocus(node ID) {
	t.ctx.focused = node
}

// Focused returns the focused node, if any.
func (t *Tree) Focused() (ID, bool) {
	return t.ctx.Focused()
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return len(t.widgets)
}

// Widget returns the widget stored for id.
func (t *Tree) Widget(id ID) Widget {
	return t.widgets[id]
}

// Graph returns the tree's adjacency. Mutate it through Tree methods only.
func (t *Tree) Graph() *Graph {
	return &t.graph
}

// Children returns the ordered children of id. The returned slice MUST NOT
// be mutated by the caller.
func (t *Tree) Children(id ID) []ID {
	return t.graph.Children(id)
}

// Geometry returns the rectangle computed for id by the last layout pass,
// relative to its parent.
func (t *Tree) Geometry(id ID) Rect {
	return t.ctx.geom[id]
}

// AbsoluteGeometry returns the rectangle of id in the root's frame.
func (t *Tree) AbsoluteGeometry(id ID) Rect {
	r := t.ctx.geom[id]
	for p, ok := t.graph.Parent(id); ok; p, ok = t.graph.Parent(p) {
		r = r.Translate(t.ctx.geom[p].Origin)
	}
	return r
}

// LayoutCtx returns the shared layout state.
func (t *Tree) LayoutCtx() *LayoutCtx {
	return &t.ctx
}

// Poke delivers payload straight to the widget of node, with a handler
// context scoped to the layout state. Returns whether the widget handled it.
// Events the widget queues stay queued until the next dispatch.
func (t *Tree) Poke(node ID, payload any) bool {
	hc := HandlerCtx{ID: node, c: &t.ctx}
	return t.widgets[node].Poke(payload, &hc)
}

// Layout runs the layout negotiation from root under bc. Afterwards every
// node reachable from root has its size and relative origin recorded.
func (t *Tree) Layout(bc BoxConstraints, root ID) Size {
	return t.layoutNode(bc, root)
}

// layoutNode drives one widget until it reports a size, measuring each
// requested child recursively in between.
func (t *Tree) layoutNode(bc BoxConstraints, node ID) Size {
	children := t.graph.children[node]
	var (
		size     *Size
		measured []ID
	)
	for {
		res := t.widgets[node].Layout(bc, children, size, &t.ctx)
		if !res.IsRequest() {
			s := res.Size()
			t.ctx.geom[node].Size = s
			return s
		}
		child, childBC := res.Child()
		if !slices.Contains(children, child) {
			panic(fmt.Sprintf("arbor: node %d requested layout of %d, which is not one of its children", node, child))
		}
		if slices.Contains(measured, child) {
			panic(fmt.Sprintf("arbor: node %d requested layout of child %d twice", node, child))
		}
		measured = append(measured, child)
		childSize := t.layoutNode(childBC, child)
		size = &childSize
	}
}

// Paint paints root and its descendants in pre-order. Each node's stored
// rectangle is translated by the origin of its parent in the painter's
// frame before the widget paints.
func (t *Tree) Paint(p Painter, root ID) {
	t.paintNode(p, root, Point{})
}

func (t *Tree) paintNode(p Painter, node ID, offset Point) {
	r := t.ctx.geom[node].Translate(offset)
	t.widgets[node].Paint(p, r)
	for _, child := range t.graph.children[node] {
		t.paintNode(p, child, r.Origin)
	}
}
