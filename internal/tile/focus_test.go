package tile

import "testing"

// TestFocusSiblings verifies plain directional movement along a split axis and
// the monitor boundary.
func TestFocusSiblings(t *testing.T) {
	e := newTestEngine(t, Options{})
	a := addTiled(t, e, "a")
	b := addTiled(t, e, "b")
	c := addTiled(t, e, "c")

	if got := e.Focus(a, Right); got != b {
		t.Errorf("Focus(a, Right) = %v, want b", got)
	}
	if got := e.Focus(b, Right); got != c {
		t.Errorf("Focus(b, Right) = %v, want c", got)
	}
	if got := e.Focus(c, Left); got != b {
		t.Errorf("Focus(c, Left) = %v, want b", got)
	}
	if got := e.Focus(a, Left); got != nil {
		t.Errorf("Focus(a, Left) = %v, want nil at the monitor boundary", got)
	}
	if got := e.Focus(a, Up); got != nil {
		t.Errorf("Focus(a, Up) = %v, want nil off the split axis", got)
	}
}

// TestFocusSkipsMinimized verifies the scan continues past minimized windows
// and that a minimized start yields nothing.
func TestFocusSkipsMinimized(t *testing.T) {
	e := newTestEngine(t, Options{})
	a := addTiled(t, e, "a")
	b := addTiled(t, e, "b")
	c := addTiled(t, e, "c")
	b.Minimized = true

	if got := e.Focus(a, Right); got != c {
		t.Errorf("Focus(a, Right) = %v, want c past the minimized b", got)
	}
	if got := e.Focus(b, Right); got != nil {
		t.Errorf("Focus from a minimized window = %v, want nil", got)
	}
}

// TestFocusExcludesFloating verifies floating windows are invisible to
// directional navigation from either end.
func TestFocusExcludesFloating(t *testing.T) {
	e := newTestEngine(t, Options{})
	a := addTiled(t, e, "a")
	addTiled(t, e, "b")
	f := e.AddWindow("f")

	if got := e.Focus(f, Right); got != nil {
		t.Errorf("Focus from a floating window = %v, want nil", got)
	}
	if got := e.Focus(a, Right); got == f {
		t.Error("Focus landed on a floating window")
	}
}

// TestFocusMemory verifies containers restore into their last focused child
// rather than the entering edge.
func TestFocusMemory(t *testing.T) {
	e := newTestEngine(t, Options{})
	mon := e.ActiveMonitorNode()
	mon.Layout = HSplit
	a := win("a")
	b, c := win("b"), win("c")
	mount(t, e, mon, a, group("col", VSplit, b, c))

	e.SetFocus(c)
	e.SetFocus(a)
	if got := e.Focus(a, Right); got != c {
		t.Errorf("Focus(a, Right) = %v, want the remembered c", got)
	}
}

// TestFocusEnteringEdge verifies edge selection when a container holds no
// usable memory: front edge moving forward, back edge moving backward.
func TestFocusEnteringEdge(t *testing.T) {
	e := newTestEngine(t, Options{})
	mon := e.ActiveMonitorNode()
	mon.Layout = HSplit
	a, d := win("a"), win("d")
	b, c := win("b"), win("c")
	col := group("col", HSplit, b, c)
	mount(t, e, mon, a, col, d)

	if got := e.Focus(a, Right); got != b {
		t.Errorf("Focus(a, Right) = %v, want the front-edge b", got)
	}
	col.LastFocused = nil
	e.SetFocus(d)
	if got := e.Focus(d, Left); got != c {
		t.Errorf("Focus(d, Left) = %v, want the back-edge c", got)
	}
}

// TestFocusTreatsDeadContainersAsAbsent verifies a container whose windows are
// all minimized is scanned past entirely.
func TestFocusTreatsDeadContainersAsAbsent(t *testing.T) {
	e := newTestEngine(t, Options{})
	mon := e.ActiveMonitorNode()
	mon.Layout = HSplit
	a, d := win("a"), win("d")
	b, c := win("b"), win("c")
	b.Minimized = true
	c.Minimized = true
	mount(t, e, mon, a, group("col", VSplit, b, c), d)

	if got := e.Focus(a, Right); got != d {
		t.Errorf("Focus(a, Right) = %v, want d past the dead container", got)
	}
}

// TestFocusStackedMemory verifies stacked containers use memory selection even
// though every child shares one position.
func TestFocusStackedMemory(t *testing.T) {
	e := newTestEngine(t, Options{})
	mon := e.ActiveMonitorNode()
	mon.Layout = HSplit
	a := win("a")
	b, c := win("b"), win("c")
	stack := group("stack", Stacked, b, c)
	mount(t, e, mon, a, stack)

	stack.LastFocused = c
	if got := e.Focus(a, Right); got != c {
		t.Errorf("Focus(a, Right) = %v, want the raised c", got)
	}

	stack.LastFocused = nil
	e.SetFocus(a)
	if got := e.Focus(a, Right); got != b {
		t.Errorf("Focus(a, Right) = %v, want the front child b", got)
	}
}

// TestSetFocusRefreshesChain verifies the LastFocused chain is rewritten up to
// the monitor on every focus change.
func TestSetFocusRefreshesChain(t *testing.T) {
	e := newTestEngine(t, Options{})
	mon := e.ActiveMonitorNode()
	mon.Layout = HSplit
	a := win("a")
	b, c := win("b"), win("c")
	mount(t, e, mon, a, group("col", VSplit, b, c))
	col := e.FindNode("col")

	e.SetFocus(b)
	if col.LastFocused != b || mon.LastFocused != col {
		t.Errorf("chain after SetFocus(b): col=%v mon=%v", col.LastFocused, mon.LastFocused)
	}
	if e.Focused() != b {
		t.Errorf("Focused() = %v, want b", e.Focused())
	}
}
