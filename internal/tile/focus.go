package tile

// Focus resolves the window that directional navigation lands on from n and
// records it as focused, refreshing the LastFocused chain of every container
// entered along the way. Returns nil when nothing is reachable: navigation
// never crosses a monitor boundary, never lands on a floating or minimized
// window, and treats fully-minimized containers as absent. Callers cannot
// distinguish "no target" from "direction not applicable"; both are nil by
// design of the soft-failure contract.
func (e *Engine) Focus(n *Node, dir Direction) *Node {
	target := e.next(n, dir)
	if target == nil {
		return nil
	}
	e.SetFocus(target)
	return target
}

// next runs the directional traversal without the focus side effects. It is
// shared by Focus, Move, and Swap.
//
// The walk ascends from n: at each level whose container axis matches the
// direction, siblings are scanned outward past minimized windows and dead
// containers; container candidates are entered through focus memory or the
// entering edge. The monitor node is the hard ceiling.
func (e *Engine) next(n *Node, dir Direction) *Node {
	if n == nil {
		return nil
	}
	if n.Type == Window && (n.Mode == Floating || n.Minimized) {
		return nil
	}
	for cur := n; ; {
		parent := cur.Parent
		if parent == nil {
			return nil
		}
		if dir.matches(parent.Layout) {
			if c := e.scanSiblings(parent, cur, dir); c != nil {
				return c
			}
		}
		if parent.Type == Monitor {
			// focus never crosses monitors via directional navigation
			return nil
		}
		cur = parent
	}
}

// scanSiblings walks parent's children outward from `from` in the given
// direction, returning the first enterable candidate.
func (e *Engine) scanSiblings(parent, from *Node, dir Direction) *Node {
	idx := parent.IndexOf(from)
	if idx < 0 {
		return nil
	}
	step := -1
	if dir.forward() {
		step = 1
	}
	for i := idx + step; i >= 0 && i < len(parent.Children); i += step {
		if c := e.enter(parent.Children[i], dir); c != nil {
			return c
		}
	}
	return nil
}

// enter descends into a candidate subtree and picks the window focus should
// land on, or nil when the subtree offers none.
//
// Containers restore through LastFocused when it still leads somewhere;
// otherwise the first usable window from the entering edge wins. For
// stacked/tabbed containers every child occupies the same position, so the
// edge degenerates to front-of-list and memory selection still applies.
func (e *Engine) enter(n *Node, dir Direction) *Node {
	if n == nil {
		return nil
	}
	if n.Type == Window {
		if n.Mode == Floating || n.Minimized {
			return nil
		}
		return n
	}
	if lf := n.LastFocused; lf != nil && n.IndexOf(lf) >= 0 {
		if c := e.enter(lf, dir); c != nil {
			return c
		}
	}
	order := n.Children
	if dir.matches(n.Layout) && !dir.forward() {
		// entering against the axis: back edge first
		order = reversed(n.Children)
	}
	for _, c := range order {
		if cand := e.enter(c, dir); cand != nil {
			return cand
		}
	}
	return nil
}

func reversed(nodes []*Node) []*Node {
	out := make([]*Node, len(nodes))
	for i, n := range nodes {
		out[len(nodes)-1-i] = n
	}
	return out
}
