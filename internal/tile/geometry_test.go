package tile

import "testing"

// TestComputeSizesPercentSplit verifies the percent-to-pixel conversion on a
// plain horizontal split.
func TestComputeSizesPercentSplit(t *testing.T) {
	e := newTestEngine(t, Options{})
	mon := e.ActiveMonitorNode()
	mon.Layout = HSplit
	a, b, c := win("a"), win("b"), win("c")
	mount(t, e, mon, a, b, c)
	a.Percent, b.Percent, c.Percent = 0.25, 0.5, 0.25

	sizes := e.ComputeSizes(mon, mon.TiledChildren())
	want := []int{480, 960, 480}
	for i := range want {
		if sizes[i] != want[i] {
			t.Errorf("sizes[%d] = %d, want %d (all: %v)", i, sizes[i], want[i], sizes)
		}
	}
}

// TestComputeSizesGap verifies that the inter-window gap is carved out of the
// distributable extent.
func TestComputeSizesGap(t *testing.T) {
	e := newTestEngine(t, Options{Gap: 10})
	mon := e.ActiveMonitorNode()
	mon.Layout = HSplit
	mount(t, e, mon, win("a"), win("b"))

	sizes := e.ComputeSizes(mon, mon.TiledChildren())
	if sizes[0] != 955 || sizes[1] != 955 {
		t.Errorf("sizes = %v, want [955 955]", sizes)
	}
}

// TestComputeSizesMinimumFloor verifies that a child whose percent share falls
// under its declared minimum is granted the minimum, with the remainder split
// among the others by their own percents.
func TestComputeSizesMinimumFloor(t *testing.T) {
	e := newTestEngine(t, Options{})
	mon := e.ActiveMonitorNode()
	mon.Layout = HSplit
	mon.Rect = Rect{Width: 300, Height: 100}
	a, b, c := win("a"), win("b"), win("c")
	a.MinWidth = 200
	mount(t, e, mon, a, b, c)

	sizes := e.ComputeSizes(mon, mon.TiledChildren())
	if sizes[0] != 200 {
		t.Errorf("min-width child got %d, want 200", sizes[0])
	}
	if sizes[1] != 50 || sizes[2] != 50 {
		t.Errorf("remaining children got %d/%d, want 50/50", sizes[1], sizes[2])
	}
	if sizes[0]+sizes[1]+sizes[2] != 300 {
		t.Errorf("sizes %v do not cover the extent", sizes)
	}
}

// TestComputeSizesMinimumFloorRounding verifies the extent-sum contract when
// the min-clamped child sits in the last slot and the earlier shares round
// upward: the clamp excess comes out of the siblings, not the total.
func TestComputeSizesMinimumFloorRounding(t *testing.T) {
	e := newTestEngine(t, Options{})
	mon := e.ActiveMonitorNode()
	mon.Layout = HSplit
	mon.Rect = Rect{Width: 100, Height: 100}
	a, b, c := win("a"), win("b"), win("c")
	c.MinWidth = 49
	mount(t, e, mon, a, b, c)
	a.Percent, b.Percent, c.Percent = 0.255, 0.255, 0.49

	sizes := e.ComputeSizes(mon, mon.TiledChildren())
	if sizes[2] != 49 {
		t.Errorf("min-width child got %d, want 49", sizes[2])
	}
	if total := sizes[0] + sizes[1] + sizes[2]; total != 100 {
		t.Errorf("sizes %v sum to %d, want the full 100", sizes, total)
	}
}

// TestComputeSizesOverflow verifies the degradation path when combined
// minimums exceed the container: front-to-back grants, zero for the rest,
// strategy notified with the deficit, nothing negative.
func TestComputeSizesOverflow(t *testing.T) {
	var gotParent *Node
	var gotDeficit int
	e := newTestEngine(t, Options{Overflow: func(parent *Node, deficit int) {
		gotParent = parent
		gotDeficit = deficit
	}})
	mon := e.ActiveMonitorNode()
	mon.Layout = HSplit
	mon.Rect = Rect{Width: 100, Height: 100}
	a, b := win("a"), win("b")
	a.MinWidth, b.MinWidth = 80, 80
	mount(t, e, mon, a, b)

	sizes := e.ComputeSizes(mon, mon.TiledChildren())
	if sizes[0] != 80 || sizes[1] != 20 {
		t.Errorf("sizes = %v, want [80 20]", sizes)
	}
	if gotParent != mon || gotDeficit != 60 {
		t.Errorf("overflow strategy got (%v, %d), want (mon, 60)", gotParent, gotDeficit)
	}
	for i, s := range sizes {
		if s < 0 {
			t.Errorf("sizes[%d] = %d is negative", i, s)
		}
	}
}

// TestProcessNodeEndToEnd runs the 25/50/25 scenario on a 1920px monitor and
// then removes the first window, checking the redistributed widths.
func TestProcessNodeEndToEnd(t *testing.T) {
	e := newTestEngine(t, Options{})
	a := addTiled(t, e, "a")
	b := addTiled(t, e, "b")
	c := addTiled(t, e, "c")
	a.Percent, b.Percent, c.Percent = 0.25, 0.5, 0.25

	e.Layout()
	if a.Rect.Width != 480 || b.Rect.Width != 960 || c.Rect.Width != 480 {
		t.Fatalf("widths = %d/%d/%d, want 480/960/480",
			a.Rect.Width, b.Rect.Width, c.Rect.Width)
	}
	if a.Rect.X != 0 || b.Rect.X != 480 || c.Rect.X != 1440 {
		t.Errorf("x positions = %d/%d/%d, want 0/480/1440",
			a.Rect.X, b.Rect.X, c.Rect.X)
	}

	if !e.RemoveWindow("a") {
		t.Fatal("RemoveWindow(a) returned false")
	}
	e.Layout()
	if b.Rect.Width != 1280 || c.Rect.Width != 640 {
		t.Errorf("widths after removal = %d/%d, want 1280/640",
			b.Rect.Width, c.Rect.Width)
	}
}

// TestProcessNodeOverlay verifies that stacked and tabbed containers hand
// every tiled child the full parent rect.
func TestProcessNodeOverlay(t *testing.T) {
	for _, layout := range []Layout{Stacked, Tabbed} {
		t.Run(layout.String(), func(t *testing.T) {
			e := newTestEngine(t, Options{})
			mon := e.ActiveMonitorNode()
			mon.Layout = HSplit
			stack := group("stack", layout, win("a"), win("b"))
			mount(t, e, mon, stack)

			e.Layout()
			for _, c := range stack.Children {
				if c.Rect != stack.Rect {
					t.Errorf("%s rect = %v, want the container rect %v",
						c.ID, c.Rect, stack.Rect)
				}
			}
		})
	}
}

// TestProcessNodeSkipsFloating verifies that floating windows keep their
// externally managed rect through a layout pass.
func TestProcessNodeSkipsFloating(t *testing.T) {
	e := newTestEngine(t, Options{})
	addTiled(t, e, "a")
	f := e.AddWindow("f")
	f.Rect = Rect{X: 100, Y: 100, Width: 300, Height: 200}

	e.Layout()
	if f.Rect != (Rect{X: 100, Y: 100, Width: 300, Height: 200}) {
		t.Errorf("floating rect changed to %v", f.Rect)
	}
	a := e.FindNode("a")
	if a.Rect.Width != 1920 {
		t.Errorf("tiled window width = %d, want the full monitor", a.Rect.Width)
	}
}

// TestComputeSizesDegenerate covers nil parents, empty child lists, and a
// container too small for its gaps.
func TestComputeSizesDegenerate(t *testing.T) {
	e := newTestEngine(t, Options{Gap: 50})
	if got := e.ComputeSizes(nil, nil); got != nil {
		t.Errorf("nil parent: got %v, want nil", got)
	}
	mon := e.ActiveMonitorNode()
	mon.Layout = HSplit
	mon.Rect = Rect{Width: 40, Height: 40}
	mount(t, e, mon, win("a"), win("b"))
	sizes := e.ComputeSizes(mon, mon.TiledChildren())
	for i, s := range sizes {
		if s != 0 {
			t.Errorf("sizes[%d] = %d, want 0 when gaps exceed the extent", i, s)
		}
	}
}
