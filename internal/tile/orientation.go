package tile

// SplitLayoutForRect picks the split axis that matches a rect's aspect
// ratio: portrait rects split top/bottom, everything else left/right.
// Squares deliberately land on HSplit.
func SplitLayoutForRect(r Rect) Layout {
	if r.Height > r.Width {
		return VSplit
	}
	return HSplit
}

// SplitLayout applies the aspect-ratio rule to the active monitor's full
// geometry. Only used when a window is placed directly onto a monitor with
// no existing containers; nested splits must consult the locally available
// sub-rectangle via SplitLayoutForRect instead.
func (e *Engine) SplitLayout() Layout {
	mon := e.activeMonitorNode()
	if mon == nil {
		return HSplit
	}
	return SplitLayoutForRect(mon.Rect)
}
