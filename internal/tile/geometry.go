package tile

import "math"

// OverflowStrategy is notified when the combined minimum extents of a
// container's children exceed the available extent. The geometry engine has
// already degraded the remaining children toward zero (never negative, never
// overlapping); the strategy decides any escalation — switching the
// container to stacked/tabbed, floating the offending window — on a later
// event-loop turn. The engine itself never escalates.
type OverflowStrategy func(parent *Node, deficit int)

// ProcessNode recomputes the rects of every descendant of n, top-down.
// Split containers divide their extent by percent share with the configured
// gap between siblings; stacked/tabbed containers hand every tiled child the
// full parent rect (tab/stack chrome is the renderer's concern); floating
// windows are skipped entirely and keep their externally managed rect.
// A nil node is a no-op.
func (e *Engine) ProcessNode(n *Node) {
	if n == nil {
		return
	}
	switch {
	case n.Type == Window:
		return
	case n.Layout.Split():
		children := n.TiledChildren()
		sizes := e.ComputeSizes(n, children)
		vertical := n.Layout == VSplit
		pos := n.Rect.Y
		if !vertical {
			pos = n.Rect.X
		}
		for i, c := range children {
			if vertical {
				c.Rect = Rect{X: n.Rect.X, Y: pos, Width: n.Rect.Width, Height: sizes[i]}
			} else {
				c.Rect = Rect{X: pos, Y: n.Rect.Y, Width: sizes[i], Height: n.Rect.Height}
			}
			pos += sizes[i] + e.gap
		}
	case n.Layout.Overlay():
		for _, c := range n.TiledChildren() {
			c.Rect = n.Rect
		}
	}
	for _, c := range n.Children {
		if c.Type == Window {
			continue
		}
		e.ProcessNode(c)
	}
}

// ComputeSizes converts the percent shares of parent's tiled children into
// pixel extents along the parent's split axis. The extents are ordered as
// the children are and sum to parentExtent − gap×(n−1), except when the
// children's combined minimums exceed that amount, in which case minimums
// are granted front to back until space runs out and the rest degrade to
// zero. A nil parent or empty child list yields an empty result; the
// function never panics.
func (e *Engine) ComputeSizes(parent *Node, children []*Node) []int {
	if parent == nil || len(children) == 0 {
		return nil
	}
	n := len(children)
	vertical := parent.Layout == VSplit
	extent := parent.Rect.Width
	if vertical {
		extent = parent.Rect.Height
	}
	avail := extent - e.gap*(n-1)
	if avail <= 0 {
		return make([]int, n)
	}

	shares := percentShares(children)
	mins := make([]int, n)
	totalMin := 0
	for i, c := range children {
		mins[i] = e.floorFor(c, vertical)
		totalMin += mins[i]
	}

	if totalMin > avail {
		// not enough room for every declared minimum: grant front to back,
		// degrade the rest toward zero, and let the strategy escalate
		sizes := make([]int, n)
		pool := avail
		for i := range children {
			grant := min(mins[i], pool)
			sizes[i] = grant
			pool -= grant
		}
		if e.overflow != nil {
			e.overflow(parent, totalMin-avail)
		}
		return sizes
	}

	// clamp children whose proportional share falls below their minimum and
	// re-split the remainder among the others until stable
	fixed := make([]bool, n)
	fixedTotal := 0
	for {
		var freeShare float64
		for i := range children {
			if !fixed[i] {
				freeShare += shares[i]
			}
		}
		rem := avail - fixedTotal
		changed := false
		for i := range children {
			if fixed[i] || mins[i] == 0 || freeShare <= 0 {
				continue
			}
			want := float64(rem) * shares[i] / freeShare
			if want < float64(mins[i]) {
				fixed[i] = true
				fixedTotal += mins[i]
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	sizes := make([]int, n)
	var freeShare float64
	lastFree := -1
	for i := range children {
		if fixed[i] {
			sizes[i] = mins[i]
		} else {
			freeShare += shares[i]
			lastFree = i
		}
	}
	rem := avail - fixedTotal
	if lastFree < 0 {
		// everything is pinned at its minimum; hand the leftover out by share
		spreadLeftover(sizes, shares, rem)
		return sizes
	}
	used := 0
	for i := range children {
		if fixed[i] || i == lastFree {
			continue
		}
		px := int(math.Round(float64(rem) * shares[i] / freeShare))
		if px < mins[i] {
			px = mins[i]
		}
		sizes[i] = px
		used += px
	}
	last := rem - used
	if last < mins[lastFree] {
		// the total must stay at avail: reclaim the clamp excess from the
		// other free siblings, never below their own minimums
		deficit := mins[lastFree] - last
		for i := n - 1; i >= 0 && deficit > 0; i-- {
			if fixed[i] || i == lastFree {
				continue
			}
			give := min(deficit, sizes[i]-mins[i])
			sizes[i] -= give
			deficit -= give
		}
		last = mins[lastFree]
	}
	sizes[lastFree] = last
	return sizes
}

// floorFor returns the effective minimum extent of a child along an axis:
// the window's declared minimum or the engine's global floor, whichever is
// larger. Containers carry no floor of their own.
func (e *Engine) floorFor(c *Node, vertical bool) int {
	if c == nil || c.Type != Window {
		return 0
	}
	declared := c.minExtent(vertical)
	global := e.minWidth
	if vertical {
		global = e.minHeight
	}
	return max(declared, global)
}

// percentShares returns normalized fractional shares for the children,
// falling back to an equal split when the percents were never assigned.
func percentShares(children []*Node) []float64 {
	shares := make([]float64, len(children))
	var total float64
	for _, c := range children {
		total += c.Percent
	}
	if total <= PercentTolerance {
		equal := 1.0 / float64(len(children))
		for i := range shares {
			shares[i] = equal
		}
		return shares
	}
	for i, c := range children {
		shares[i] = c.Percent / total
	}
	return shares
}

// spreadLeftover distributes extra pixels over sizes proportionally to the
// shares, giving any rounding remainder to the final slot.
func spreadLeftover(sizes []int, shares []float64, leftover int) {
	if leftover <= 0 {
		return
	}
	used := 0
	for i := range sizes {
		if i == len(sizes)-1 {
			sizes[i] += leftover - used
			return
		}
		px := int(math.Round(float64(leftover) * shares[i]))
		sizes[i] += px
		used += px
	}
}
