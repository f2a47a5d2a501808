// Package tile implements the tiling layout tree: node topology, percent
// based geometry, directional focus navigation, and structural move/swap/split
// operations. The package never touches real windows; callers read the
// computed rects and apply them.
package tile

import "fmt"

// NodeType identifies a node's role in the layout tree.
type NodeType int

const (
	// Root is the single top-level node; its children are workspaces.
	Root NodeType = iota
	// Workspace groups one monitor node per connected display.
	Workspace
	// Monitor is the layout root for one display on one workspace.
	Monitor
	// Container holds an ordered run of child nodes under one layout.
	Container
	// Window is a leaf referencing an external window handle.
	Window
)

func (t NodeType) String() string {
	switch t {
	case Root:
		return "root"
	case Workspace:
		return "workspace"
	case Monitor:
		return "monitor"
	case Container:
		return "container"
	case Window:
		return "window"
	default:
		return "unknown"
	}
}

// Layout determines how a container arranges its children.
type Layout int

const (
	// LayoutNone marks nodes that do not arrange children (windows, root).
	LayoutNone Layout = iota
	// HSplit places children left to right by percent share.
	HSplit
	// VSplit places children top to bottom by percent share.
	VSplit
	// Stacked overlays children; one is visible at a time.
	Stacked
	// Tabbed overlays children behind a tab strip.
	Tabbed
)

func (l Layout) String() string {
	switch l {
	case LayoutNone:
		return "none"
	case HSplit:
		return "hsplit"
	case VSplit:
		return "vsplit"
	case Stacked:
		return "stacked"
	case Tabbed:
		return "tabbed"
	default:
		return "unknown"
	}
}

// Overlay reports whether the layout places all children on the same rect.
func (l Layout) Overlay() bool {
	return l == Stacked || l == Tabbed
}

// Split reports whether the layout divides space along an axis.
func (l Layout) Split() bool {
	return l == HSplit || l == VSplit
}

// Mode selects between tiled and floating placement for a window.
type Mode int

const (
	// Tiled windows participate in the percent/geometry model.
	Tiled Mode = iota
	// Floating windows keep an externally managed rect.
	Floating
)

func (m Mode) String() string {
	if m == Floating {
		return "floating"
	}
	return "tiled"
}

// Direction is a cardinal navigation direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// vertical reports whether the direction moves along the vertical axis.
func (d Direction) vertical() bool {
	return d == Up || d == Down
}

// forward reports whether the direction moves toward higher child indices.
func (d Direction) forward() bool {
	return d == Right || d == Down
}

// matches reports whether a layout's axis is navigable in this direction.
func (d Direction) matches(l Layout) bool {
	switch l {
	case HSplit:
		return !d.vertical()
	case VSplit:
		return d.vertical()
	default:
		return false
	}
}

// Orientation is a requested split axis for the Split operation.
type Orientation int

const (
	// OrientNone lets the engine pick the axis from the local aspect ratio.
	OrientNone Orientation = iota
	// Horizontal requests an HSplit.
	Horizontal
	// Vertical requests a VSplit.
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "none"
	}
}

// Rect is a computed pixel rectangle. It is always derived output of the
// geometry engine, never authoritative input.
type Rect struct {
	X, Y, Width, Height int
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Node is a single element of the layout tree. Parent and LastFocused are
// non-owning back-references; Children owns the subtree. Order of Children is
// meaningful: it is the left-to-right / top-to-bottom / tab order.
type Node struct {
	// ID is the stable arena key. Monitor nodes use the structured form
	// "mo{monitor}ws{workspace}"; window nodes use the external handle ID.
	ID string

	Type   NodeType
	Layout Layout

	// Percent is this node's share of the parent extent along the parent's
	// split axis. Carried but unused while the parent is stacked/tabbed.
	Percent float64

	// Rect is overwritten on every layout pass.
	Rect Rect

	// Window-only fields. Mode and Minimized mirror external window state;
	// MinWidth/MinHeight are the window's declared size floor (0 = none).
	Mode      Mode
	Minimized bool
	MinWidth  int
	MinHeight int

	Parent      *Node
	Children    []*Node
	LastFocused *Node
}

// IsWindow reports whether the node is a window leaf.
func (n *Node) IsWindow() bool { return n != nil && n.Type == Window }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return n == nil || len(n.Children) == 0 }

// TiledChildren returns the children that participate in percent accounting:
// everything except floating windows. Minimized windows stay included.
func (n *Node) TiledChildren() []*Node {
	if n == nil {
		return nil
	}
	tiled := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Type == Window && c.Mode == Floating {
			continue
		}
		tiled = append(tiled, c)
	}
	return tiled
}

// IndexOf returns the position of child in n's child list, or -1.
func (n *Node) IndexOf(child *Node) int {
	if n == nil {
		return -1
	}
	for i, c := range n.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// minExtent returns the node's declared minimum extent along an axis.
// Containers report no minimum; their children enforce their own.
func (n *Node) minExtent(vertical bool) int {
	if n == nil || n.Type != Window {
		return 0
	}
	if vertical {
		return n.MinHeight
	}
	return n.MinWidth
}

// allMinimized reports whether every window in the subtree is minimized or
// floating, i.e. the subtree offers no focus candidate.
func (n *Node) allMinimized() bool {
	if n == nil {
		return true
	}
	if n.Type == Window {
		return n.Minimized || n.Mode == Floating
	}
	for _, c := range n.Children {
		if !c.allMinimized() {
			return false
		}
	}
	return true
}

// MonitorID builds the structured arena key for a monitor node.
func MonitorID(monitor, workspace int) string {
	return fmt.Sprintf("mo%dws%d", monitor, workspace)
}
