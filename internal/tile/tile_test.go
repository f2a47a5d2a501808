package tile

import "testing"

// Shared helpers for the package tests.

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	e := NewEngine(opts)
	e.SetMonitors([]Rect{{X: 0, Y: 0, Width: 1920, Height: 1080}})
	return e
}

// addTiled registers a window handle and tiles it, failing the test on any
// soft-failure return.
func addTiled(t *testing.T, e *Engine, handle string) *Node {
	t.Helper()
	if e.AddWindow(handle) == nil {
		t.Fatalf("AddWindow(%q) returned nil", handle)
	}
	if !e.TileWindow(handle) {
		t.Fatalf("TileWindow(%q) returned false", handle)
	}
	return e.FindNode(handle)
}

func win(id string) *Node {
	return &Node{ID: id, Type: Window}
}

func group(id string, l Layout, children ...*Node) *Node {
	c := &Node{ID: id, Type: Container, Layout: l}
	for _, ch := range children {
		ch.Parent = c
		c.Children = append(c.Children, ch)
	}
	EqualizeSiblingPercents(c)
	return c
}

// mount attaches prebuilt subtrees under parent, registers every node in the
// engine index, and equalizes the sibling percents.
func mount(t *testing.T, e *Engine, parent *Node, children ...*Node) {
	t.Helper()
	var register func(*Node)
	register = func(n *Node) {
		if e.nodes[n.ID] != nil {
			t.Fatalf("duplicate node id %q", n.ID)
		}
		e.nodes[n.ID] = n
		for _, c := range n.Children {
			register(c)
		}
	}
	for _, c := range children {
		e.attach(parent, c, len(parent.Children))
		register(c)
	}
	EqualizeSiblingPercents(parent)
}

func childIDs(n *Node) []string {
	ids := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		ids = append(ids, c.ID)
	}
	return ids
}

func sameIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func almost(got, want float64) bool {
	d := got - want
	if d < 0 {
		d = -d
	}
	return d < 1e-3
}
