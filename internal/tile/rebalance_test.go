package tile

import "testing"

// TestRedistributeSiblingPercent covers proportional rescale after a removal,
// the equal-split fallback, and the single-survivor case.
func TestRedistributeSiblingPercent(t *testing.T) {
	tests := []struct {
		name     string
		percents []float64
		want     []float64
	}{
		{
			name:     "proportional after removing a quarter",
			percents: []float64{0.5, 0.25},
			want:     []float64{0.667, 0.333},
		},
		{
			name:     "never-resized children fall back to equal",
			percents: []float64{0, 0, 0},
			want:     []float64{0.333, 0.333, 0.333},
		},
		{
			name:     "single survivor takes everything",
			percents: []float64{0.4},
			want:     []float64{1},
		},
		{
			name:     "idempotent on a normalized set",
			percents: []float64{0.6, 0.4},
			want:     []float64{0.6, 0.4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent := &Node{Type: Container, Layout: HSplit}
			for i, p := range tt.percents {
				c := win(string(rune('a' + i)))
				c.Percent = p
				c.Parent = parent
				parent.Children = append(parent.Children, c)
			}
			RedistributeSiblingPercent(parent)
			for i, c := range parent.Children {
				if !almost(c.Percent, tt.want[i]) {
					t.Errorf("child %d percent = %v, want ≈%v", i, c.Percent, tt.want[i])
				}
			}
		})
	}
}

// TestNormalizeSiblingPercents verifies drift correction preserves ratios and
// that a normalized set is left alone.
func TestNormalizeSiblingPercents(t *testing.T) {
	parent := group("p", HSplit, win("a"), win("b"))
	parent.Children[0].Percent = 0.6
	parent.Children[1].Percent = 0.6

	NormalizeSiblingPercents(parent)
	if !almost(parent.Children[0].Percent, 0.5) || !almost(parent.Children[1].Percent, 0.5) {
		t.Errorf("percents = %v/%v, want 0.5/0.5",
			parent.Children[0].Percent, parent.Children[1].Percent)
	}

	before := parent.Children[0].Percent
	NormalizeSiblingPercents(parent)
	if parent.Children[0].Percent != before {
		t.Error("normalize is not idempotent")
	}
}

// TestEqualizeSiblingPercents verifies the reset operation and that floating
// windows stay out of the accounting.
func TestEqualizeSiblingPercents(t *testing.T) {
	parent := group("p", HSplit, win("a"), win("b"), win("c"))
	f := win("f")
	f.Mode = Floating
	f.Parent = parent
	parent.Children = append(parent.Children, f)
	parent.Children[0].Percent = 0.9

	EqualizeSiblingPercents(parent)
	for _, c := range parent.TiledChildren() {
		if !almost(c.Percent, 1.0/3) {
			t.Errorf("%s percent = %v, want ≈0.333", c.ID, c.Percent)
		}
	}
	if f.Percent != 0 {
		t.Errorf("floating window percent = %v, want untouched 0", f.Percent)
	}
}

// TestResizeBy verifies the share trade with the adjacent sibling and the
// soft-failure returns.
func TestResizeBy(t *testing.T) {
	e := newTestEngine(t, Options{})
	a := addTiled(t, e, "a")
	b := addTiled(t, e, "b")
	e.Layout()

	if !e.ResizeBy(a, 0.1) {
		t.Fatal("ResizeBy returned false on a valid trade")
	}
	if !almost(a.Percent, 0.6) || !almost(b.Percent, 0.4) {
		t.Errorf("percents = %v/%v, want 0.6/0.4", a.Percent, b.Percent)
	}
	if !almost(PercentSum(a.Parent), 1) {
		t.Errorf("percent sum = %v, want 1", PercentSum(a.Parent))
	}

	// tail child trades with its previous sibling
	if !e.ResizeBy(b, 0.1) {
		t.Fatal("ResizeBy on the tail child returned false")
	}
	if !almost(b.Percent, 0.5) {
		t.Errorf("tail percent = %v, want 0.5", b.Percent)
	}

	if e.ResizeBy(nil, 0.1) {
		t.Error("ResizeBy(nil) returned true")
	}
	if e.ResizeBy(a, 0) {
		t.Error("ResizeBy with zero delta returned true")
	}
	f := e.AddWindow("f")
	if e.ResizeBy(f, 0.1) {
		t.Error("ResizeBy on a floating window returned true")
	}
}

// TestResizeByClamp verifies neither side can be starved past the floor.
func TestResizeByClamp(t *testing.T) {
	e := newTestEngine(t, Options{MinWidth: 96})
	a := addTiled(t, e, "a")
	b := addTiled(t, e, "b")
	e.Layout()

	if !e.ResizeBy(a, 10) {
		t.Fatal("clamped resize returned false")
	}
	// 96px of 1920 is a 0.05 share
	if !almost(a.Percent, 0.95) || !almost(b.Percent, 0.05) {
		t.Errorf("percents = %v/%v, want 0.95/0.05", a.Percent, b.Percent)
	}
	if e.ResizeBy(a, 0.1) {
		t.Error("resize past the floor returned true")
	}
}
