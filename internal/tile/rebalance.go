package tile

import "math"

// PercentTolerance is the accepted drift of a sibling percent sum from 1.0.
const PercentTolerance = 1e-5

// RedistributeSiblingPercent rescales the tiled children of parent after one
// of them was detached or destroyed, preserving their relative proportions.
// When every remaining percent is zero (never resized), the children fall
// back to an equal split. A single remaining child takes the full extent.
// Idempotent: once the sum is 1.0 the scale factor is 1.
func RedistributeSiblingPercent(parent *Node) {
	if parent == nil {
		return
	}
	tiled := parent.TiledChildren()
	switch len(tiled) {
	case 0:
		return
	case 1:
		tiled[0].Percent = 1
		return
	}
	var sum float64
	for _, c := range tiled {
		sum += c.Percent
	}
	if sum <= PercentTolerance {
		equal := 1.0 / float64(len(tiled))
		for _, c := range tiled {
			c.Percent = equal
		}
		return
	}
	for _, c := range tiled {
		c.Percent /= sum
	}
}

// NormalizeSiblingPercents rescales all tiled children of parent so the sum
// returns to exactly 1.0 without changing relative ratios. Used after an
// interactive resize perturbs two or more siblings. No-op on nil parents and
// single-child parents; idempotent.
func NormalizeSiblingPercents(parent *Node) {
	if parent == nil {
		return
	}
	tiled := parent.TiledChildren()
	if len(tiled) < 2 {
		return
	}
	var sum float64
	for _, c := range tiled {
		sum += c.Percent
	}
	if sum <= PercentTolerance || math.Abs(sum-1) <= PercentTolerance {
		return
	}
	for _, c := range tiled {
		c.Percent /= sum
	}
}

// EqualizeSiblingPercents resets every tiled child of parent to an equal
// share. No-op on nil or childless parents.
func EqualizeSiblingPercents(parent *Node) {
	if parent == nil {
		return
	}
	tiled := parent.TiledChildren()
	if len(tiled) == 0 {
		return
	}
	equal := 1.0 / float64(len(tiled))
	for _, c := range tiled {
		c.Percent = equal
	}
}

// ResizeBy grows or shrinks a node's share along its parent's split axis by
// delta (fraction of the parent extent), taking the difference from the
// adjacent sibling so the sum stays at 1.0. The adjacent sibling is the next
// tiled one after the node, or the previous one at the tail. Both percents
// are clamped so neither drops below its minimum-derived share. Returns
// false when the node is floating, minimized, has no split parent, or the
// clamp leaves nothing to trade.
func (e *Engine) ResizeBy(n *Node, delta float64) bool {
	if n == nil || delta == 0 {
		return false
	}
	if n.Type == Window && (n.Mode == Floating || n.Minimized) {
		return false
	}
	parent := n.Parent
	if parent == nil || !parent.Layout.Split() {
		return false
	}
	tiled := parent.TiledChildren()
	if len(tiled) < 2 {
		return false
	}
	i := -1
	for k, c := range tiled {
		if c == n {
			i = k
			break
		}
	}
	if i < 0 {
		return false
	}
	j := i + 1
	if j >= len(tiled) {
		j = i - 1
	}
	other := tiled[j]

	floor := e.percentFloor(parent, len(tiled))
	next := clampPercent(n.Percent+delta, floor)
	applied := next - n.Percent
	if math.Abs(applied) <= PercentTolerance {
		return false
	}
	otherNext := clampPercent(other.Percent-applied, floor)
	applied = other.Percent - otherNext
	if math.Abs(applied) <= PercentTolerance {
		return false
	}
	n.Percent += applied
	other.Percent = otherNext
	NormalizeSiblingPercents(parent)
	return true
}

// percentFloor converts the engine's global size floor into a fractional
// share of the parent extent, so interactive resizes cannot starve a sibling
// below the minimum the geometry engine would re-grant anyway.
func (e *Engine) percentFloor(parent *Node, siblings int) float64 {
	extent := parent.Rect.Width
	minPx := e.minWidth
	if parent.Layout == VSplit {
		extent = parent.Rect.Height
		minPx = e.minHeight
	}
	if extent <= 0 || minPx <= 0 {
		return 0.05
	}
	f := float64(minPx) / float64(extent)
	if f > 1.0/float64(siblings) {
		// degenerate: floors cannot all fit; fall back to a thin floor
		return 0.05
	}
	return f
}

func clampPercent(p, floor float64) float64 {
	if p < floor {
		return floor
	}
	if p > 1-floor {
		return 1 - floor
	}
	return p
}

// PercentSum returns the tiled-children percent sum, used by invariant
// checks in tests and debug assertions.
func PercentSum(parent *Node) float64 {
	if parent == nil {
		return 0
	}
	var sum float64
	for _, c := range parent.TiledChildren() {
		sum += c.Percent
	}
	return sum
}
