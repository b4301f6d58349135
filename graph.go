package arbor

import "fmt"

// Graph is the parent/child adjacency of a Tree. Nodes live in an
// append-only arena indexed by ID; a fresh node is its own parent until it
// is appended somewhere.
type Graph struct {
	root     ID
	children [][]ID
	parent   []ID
}

// AllocNode appends a node with no children and returns its ID.
func (g *Graph) AllocNode() ID {
	id := ID(len(g.children))
	g.children = append(g.children, nil)
	g.parent = append(g.parent, id)
	return id
}

// AppendChild appends child to parent's children and points child back at
// parent. Panics if child is parent or one of its ancestors (cycle), or if
// child is already attached to a node.
func (g *Graph) AppendChild(parent, child ID) {
	if g.isAncestor(child, parent) {
		panic(fmt.Sprintf("arbor: appending node %d under %d would create a cycle", child, parent))
	}
	if p := g.parent[child]; p != child {
		panic(fmt.Sprintf("arbor: node %d already has parent %d", child, p))
	}
	g.children[parent] = append(g.children[parent], child)
	g.parent[child] = parent
}

// Len returns the number of allocated nodes.
func (g *Graph) Len() int {
	return len(g.children)
}

// Root returns the root node.
func (g *Graph) Root() ID {
	return g.root
}

// Children returns the ordered child list of id. The returned slice MUST NOT
// be mutated by the caller.
func (g *Graph) Children(id ID) []ID {
	return g.children[id]
}

// Parent returns the parent of id, or false if id has not been appended
// anywhere.
func (g *Graph) Parent(id ID) (ID, bool) {
	p := g.parent[id]
	if p == id {
		return NoID, false
	}
	return p, true
}

// Depth returns the number of nodes on the path from id to its topmost
// ancestor, inclusive.
func (g *Graph) Depth(id ID) int {
	depth := 1
	for p, ok := g.Parent(id); ok; p, ok = g.Parent(p) {
		depth++
	}
	return depth
}

// Walk visits id and its descendants in pre-order. Returning false from fn
// skips the node's subtree.
func (g *Graph) Walk(id ID, fn func(id ID) bool) {
	if !fn(id) {
		return
	}
	for _, child := range g.children[id] {
		g.Walk(child, fn)
	}
}

// isAncestor reports whether candidate is node or an ancestor of node.
func (g *Graph) isAncestor(candidate, node ID) bool {
	for p, ok := node, true; ok; p, ok = g.Parent(p) {
		if p == candidate {
			return true
		}
	}
	return false
}
