package tile

// Swap exchanges a window with the nearest directly adjacent sibling window
// in the given direction, trading both their child-list slots and their
// percent shares so the vacated geometry stays put. Pure adjacency only: a
// candidate that lives inside a sibling container is not reachable by swap.
// Returns false for nil, floating, or minimized nodes and when no window
// candidate exists.
func (e *Engine) Swap(n *Node, dir Direction) bool {
	if n == nil || n.Type != Window || n.Mode == Floating || n.Minimized {
		return false
	}
	cand := e.next(n, dir)
	if cand == nil || cand.Type != Window || cand.Parent != n.Parent {
		return false
	}
	parent := n.Parent
	i, j := parent.IndexOf(n), parent.IndexOf(cand)
	if i < 0 || j < 0 {
		return false
	}
	parent.Children[i], parent.Children[j] = parent.Children[j], parent.Children[i]
	n.Percent, cand.Percent = cand.Percent, n.Percent
	return true
}

// Move performs the directional structural edit for a window:
//
//   - an adjacent sibling window trades places with it, as in Swap;
//   - an adjacent split container absorbs it at the entering edge;
//   - an adjacent stacked/tabbed container is never entered: the window
//     becomes a sibling of that container at the parent level, on the near
//     side, uniformly for all four approach edges;
//   - with nothing adjacent the walk ascends one level and retries, and the
//     window is re-inserted next to its ancestor at that level;
//   - the monitor boundary ends the walk.
//
// Returns false — with the tree untouched — for nil, floating, or minimized
// windows and when no level yields a target. On success the vacated
// container has already been rebalanced and pruned; recomputing rects is
// the caller's turn in the event sequence.
func (e *Engine) Move(n *Node, dir Direction) bool {
	if n == nil || n.Type != Window || n.Mode == Floating || n.Minimized {
		return false
	}
	for cur := n; ; {
		parent := cur.Parent
		if parent == nil {
			return false
		}
		if dir.matches(parent.Layout) {
			if adj := adjacentSibling(parent, cur, dir); adj != nil {
				e.moveTo(n, cur, adj, dir)
				e.SetFocus(n)
				return true
			}
		}
		if parent.Type == Monitor {
			return false
		}
		cur = parent
	}
}

// adjacentSibling returns the nearest non-floating sibling of cur in the
// direction, or nil at the edge. Minimized windows stay valid structural
// targets; only floating windows are invisible to tiling adjacency.
func adjacentSibling(parent, cur *Node, dir Direction) *Node {
	idx := parent.IndexOf(cur)
	if idx < 0 {
		return nil
	}
	step := -1
	if dir.forward() {
		step = 1
	}
	for i := idx + step; i >= 0 && i < len(parent.Children); i += step {
		c := parent.Children[i]
		if c.Type == Window && c.Mode == Floating {
			continue
		}
		return c
	}
	return nil
}

// moveTo commits the structural edit once a target is known. cur is the
// ancestor of n at the level where adj was found (cur == n at the first
// level).
func (e *Engine) moveTo(n, cur, adj *Node, dir Direction) {
	parent := adj.Parent

	// direct window neighbor: pure slot exchange, no detach needed
	if cur == n && adj.Type == Window {
		i, j := parent.IndexOf(n), parent.IndexOf(adj)
		parent.Children[i], parent.Children[j] = parent.Children[j], parent.Children[i]
		n.Percent, adj.Percent = adj.Percent, n.Percent
		return
	}

	// descending into a split container enters at the near edge
	if adj.Type == Container && adj.Layout.Split() {
		e.detach(n)
		at := len(adj.Children)
		if dir.forward() {
			at = 0
		}
		e.insertChild(adj, n, at)
		return
	}

	// stacked/tabbed containers, and windows adjacent to an ascended
	// ancestor, take the moved window as a sibling on the near side; the
	// stack itself never absorbs a dropped window, whichever edge it was
	// approached from
	origParent, origPercent := n.Parent, n.Percent
	e.detach(n)
	// the detach may have collapsed a single-child container and reparented
	// adj, so resolve the insertion level afterwards
	parent = adj.Parent
	at := parent.IndexOf(adj)
	if at < 0 {
		at = len(parent.Children)
	} else if !dir.forward() {
		at++
	}
	if parent == origParent {
		// re-entering the level it just left: a near-side drop beside an
		// adjacent overlay keeps the shares instead of the equal-split
		// insertion policy
		e.attach(parent, n, at)
		n.Percent = origPercent
		for _, c := range parent.TiledChildren() {
			if c != n {
				c.Percent *= 1 - origPercent
			}
		}
		NormalizeSiblingPercents(parent)
		return
	}
	e.insertChild(parent, n, at)
}

// Split prepares the axis for the next sibling inserted adjacent to n: when
// n's parent is a container holding only n, the parent's layout is toggled
// to the requested axis; otherwise n is wrapped in a fresh single-child
// container carrying it. OrientNone derives the axis from n's own rect, so
// nested splits adapt to locally available space. Splitting inside a
// stacked/tabbed parent is a structural no-op.
func (e *Engine) Split(n *Node, o Orientation) {
	if n == nil || n.Parent == nil {
		return
	}
	parent := n.Parent
	if parent.Layout.Overlay() {
		return
	}
	var want Layout
	switch o {
	case Horizontal:
		want = HSplit
	case Vertical:
		want = VSplit
	default:
		want = SplitLayoutForRect(n.Rect)
	}
	if parent.Type == Container && len(parent.Children) == 1 {
		parent.Layout = want
		return
	}
	e.wrap(n, want)
}

// wrap replaces n with a new container of the given layout whose only child
// is n. The container inherits n's percent share; n takes the full wrapper.
func (e *Engine) wrap(n *Node, l Layout) *Node {
	parent := n.Parent
	i := parent.IndexOf(n)
	if i < 0 {
		return nil
	}
	con := &Node{
		ID:      e.nextContainerID(),
		Type:    Container,
		Layout:  l,
		Percent: n.Percent,
	}
	con.Parent = parent
	parent.Children[i] = con
	if parent.LastFocused == n {
		parent.LastFocused = con
	}
	n.Parent = con
	n.Percent = 1
	con.Children = []*Node{n}
	con.LastFocused = n
	e.nodes[con.ID] = con
	return con
}
