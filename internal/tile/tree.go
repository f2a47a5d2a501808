package tile

// FindCriteria tags the single criterion used by Engine.FindNodes. Criteria
// are mutually exclusive: a ByMode query never also matches on layout.
type FindCriteria int

const (
	// ByType matches nodes on NodeType.
	ByType FindCriteria = iota
	// ByMode matches window nodes on Mode.
	ByMode
	// ByLayout matches nodes on Layout.
	ByLayout
)

// Options configures an Engine. Zero values fall back to sane defaults.
type Options struct {
	// Gap is the inter-window gap in pixels applied between split siblings.
	Gap int
	// MinWidth/MinHeight are the global window size floors. A window's own
	// declared minimum takes precedence when larger.
	MinWidth  int
	MinHeight int
	// Workspaces is the number of desktop workspaces (default 1).
	Workspaces int
	// Overflow decides what to do when combined minimums exceed a container.
	// Nil means proportional degradation only (non-negative, non-overlapping).
	Overflow OverflowStrategy
}

// Engine owns the layout tree and the mutable UI-thread context: active
// workspace/monitor, per-workspace focus memory, and the deferred monitor
// rebuild flag. All methods must be called from a single goroutine; the tree
// is exclusively owned by the event loop that drives the engine.
type Engine struct {
	root  *Node
	nodes map[string]*Node

	gap       int
	minWidth  int
	minHeight int
	overflow  OverflowStrategy

	monitors        []Rect
	workspaces      int
	activeWorkspace int
	activeMonitor   int

	// focus memory per workspace index
	focused map[int]*Node

	// set when a zero-monitor event deferred the monitor rebuild
	pendingRebuild bool

	containerSeq int
}

// NewEngine creates an engine with a root node and the requested number of
// workspaces. Monitors are registered afterwards via SetMonitors.
func NewEngine(opts Options) *Engine {
	if opts.Workspaces <= 0 {
		opts.Workspaces = 1
	}
	e := &Engine{
		nodes:      make(map[string]*Node),
		gap:        opts.Gap,
		minWidth:   opts.MinWidth,
		minHeight:  opts.MinHeight,
		overflow:   opts.Overflow,
		workspaces: opts.Workspaces,
		focused:    make(map[int]*Node),
	}
	e.root = &Node{ID: "root", Type: Root}
	e.nodes[e.root.ID] = e.root
	for ws := range opts.Workspaces {
		e.addWorkspace(ws)
	}
	return e
}

// Root returns the tree root.
func (e *Engine) Root() *Node { return e.root }

// Gap returns the configured inter-window gap.
func (e *Engine) Gap() int { return e.gap }

// SetGap updates the inter-window gap. The caller re-runs ProcessNode.
func (e *Engine) SetGap(gap int) {
	if gap >= 0 {
		e.gap = gap
	}
}

// SetMinSize updates the global window size floors.
func (e *Engine) SetMinSize(width, height int) {
	if width >= 0 {
		e.minWidth = width
	}
	if height >= 0 {
		e.minHeight = height
	}
}

// ActiveWorkspace returns the current workspace index.
func (e *Engine) ActiveWorkspace() int { return e.activeWorkspace }

// SwitchWorkspace changes the active workspace and returns the node that had
// focus there, restoring per-workspace focus memory.
func (e *Engine) SwitchWorkspace(ws int) *Node {
	if ws < 0 || ws >= e.workspaces {
		return nil
	}
	e.activeWorkspace = ws
	f := e.focused[ws]
	if f != nil && e.nodes[f.ID] != f {
		// focus memory went stale (window closed); drop it
		delete(e.focused, ws)
		f = nil
	}
	return f
}

// Focused returns the focused node on the active workspace, or nil.
func (e *Engine) Focused() *Node {
	f := e.focused[e.activeWorkspace]
	if f != nil && e.nodes[f.ID] != f {
		delete(e.focused, e.activeWorkspace)
		return nil
	}
	return f
}

// SetFocus records node as focused on its workspace and refreshes the
// LastFocused chain from the node up to its monitor, so containers restore
// into it on re-entry.
func (e *Engine) SetFocus(n *Node) {
	if n == nil {
		return
	}
	ws := e.workspaceOf(n)
	if ws >= 0 {
		e.focused[ws] = n
	}
	for c := n; c.Parent != nil; c = c.Parent {
		c.Parent.LastFocused = c
		if c.Parent.Type == Monitor {
			break
		}
	}
}

// workspaceOf resolves the workspace index a node lives under, or -1.
func (e *Engine) workspaceOf(n *Node) int {
	for c := n; c != nil; c = c.Parent {
		if c.Type == Workspace {
			return e.root.IndexOf(c)
		}
	}
	return -1
}

// monitorOf walks up to the enclosing monitor node, or nil.
func monitorOf(n *Node) *Node {
	for c := n; c != nil; c = c.Parent {
		if c.Type == Monitor {
			return c
		}
	}
	return nil
}

// FindNode looks a node up by arena key. Unknown IDs return nil, not an
// error: lookups of vanished nodes are an expected race with window close.
func (e *Engine) FindNode(id string) *Node {
	return e.nodes[id]
}

// FindNodeByHandle resolves a window node from its external handle ID.
// Window node IDs are the handle IDs, so this is an alias kept for callers
// that think in handles.
func (e *Engine) FindNodeByHandle(handle string) *Node {
	n := e.nodes[handle]
	if n == nil || n.Type != Window {
		return nil
	}
	return n
}

// NodesByType returns every node of the given type, in tree order.
func (e *Engine) NodesByType(t NodeType) []*Node {
	return e.collect(func(n *Node) bool { return n.Type == t })
}

// NodesByMode returns every window node with the given mode, in tree order.
// Only windows are considered; the mode criterion never matches containers.
func (e *Engine) NodesByMode(m Mode) []*Node {
	return e.collect(func(n *Node) bool { return n.Type == Window && n.Mode == m })
}

// NodesByLayout returns every node carrying the given layout, in tree order.
func (e *Engine) NodesByLayout(l Layout) []*Node {
	return e.collect(func(n *Node) bool { return n.Layout == l && n.Type != Window })
}

// FindNodes dispatches on a single criterion tag. Unknown criteria return an
// empty slice rather than an error.
func (e *Engine) FindNodes(c FindCriteria, value int) []*Node {
	switch c {
	case ByType:
		return e.NodesByType(NodeType(value))
	case ByMode:
		return e.NodesByMode(Mode(value))
	case ByLayout:
		return e.NodesByLayout(Layout(value))
	default:
		return nil
	}
}

func (e *Engine) collect(match func(*Node) bool) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if match(n) {
			out = append(out, n)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(e.root)
	return out
}

// CreateNode creates a node of the given type under the parent identified by
// parentID. For windows, value is the external handle ID and doubles as the
// node ID; for monitors, value is the precomputed MonitorID key. Returns nil
// when the parent is unknown or the type cannot have the parent.
func (e *Engine) CreateNode(parentID string, t NodeType, value string) *Node {
	parent := e.nodes[parentID]
	if parent == nil || parent.Type == Window {
		return nil
	}
	if value == "" || e.nodes[value] != nil {
		return nil
	}
	n := &Node{ID: value, Type: t}
	if t == Window {
		// windows arrive floating until explicitly tiled
		n.Mode = Floating
	}
	e.attach(parent, n, len(parent.Children))
	e.nodes[n.ID] = n
	return n
}

// attach links child under parent at index i. Percent bookkeeping is the
// caller's responsibility.
func (e *Engine) attach(parent, child *Node, i int) {
	if i < 0 || i > len(parent.Children) {
		i = len(parent.Children)
	}
	parent.Children = append(parent.Children, nil)
	copy(parent.Children[i+1:], parent.Children[i:])
	parent.Children[i] = child
	child.Parent = parent
}

// detach unlinks child from its parent, clears stale focus memory, rescales
// the remaining siblings, and prunes now-empty containers. The child keeps
// its subtree and can be re-attached elsewhere.
func (e *Engine) detach(child *Node) {
	parent := child.Parent
	if parent == nil {
		return
	}
	i := parent.IndexOf(child)
	if i < 0 {
		return
	}
	parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
	child.Parent = nil
	if parent.LastFocused == child {
		parent.LastFocused = nil
	}
	RedistributeSiblingPercent(parent)
	e.prune(parent)
}

// prune removes empty containers and collapses single-child containers into
// their parent, walking upward. Monitors and workspaces are never pruned.
func (e *Engine) prune(n *Node) {
	for n != nil && n.Type == Container {
		parent := n.Parent
		switch len(n.Children) {
		case 0:
			e.removeFromIndex(n)
			if parent != nil {
				i := parent.IndexOf(n)
				if i >= 0 {
					parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
				}
				if parent.LastFocused == n {
					parent.LastFocused = nil
				}
				RedistributeSiblingPercent(parent)
			}
		case 1:
			// collapse: the only child takes the container's slot and share
			only := n.Children[0]
			if parent == nil {
				return
			}
			i := parent.IndexOf(n)
			if i < 0 {
				return
			}
			only.Percent = n.Percent
			only.Parent = parent
			parent.Children[i] = only
			if parent.LastFocused == n {
				parent.LastFocused = only
			}
			n.Children = nil
			e.removeFromIndex(n)
		default:
			return
		}
		n = parent
	}
}

// removeFromIndex drops a container node from the arena index. Window nodes
// are removed only by RemoveWindow.
func (e *Engine) removeFromIndex(n *Node) {
	if e.nodes[n.ID] == n {
		delete(e.nodes, n.ID)
	}
}

// AddWindow registers a new external window handle on the active monitor.
// The window starts floating per the window lifecycle contract.
func (e *Engine) AddWindow(handle string) *Node {
	mon := e.activeMonitorNode()
	if mon == nil {
		return nil
	}
	return e.CreateNode(mon.ID, Window, handle)
}

// RemoveWindow detaches and forgets a window node when the external window
// closed. Returns false for unknown handles.
func (e *Engine) RemoveWindow(handle string) bool {
	n := e.FindNodeByHandle(handle)
	if n == nil {
		return false
	}
	for ws, f := range e.focused {
		if f == n {
			delete(e.focused, ws)
		}
	}
	e.detach(n)
	delete(e.nodes, n.ID)
	return true
}

// TileWindow moves a floating window into the tiled tree next to the focused
// node, or directly onto the monitor when it holds no tiled children yet.
// Returns false if the window is unknown or already tiled.
func (e *Engine) TileWindow(handle string) bool {
	n := e.FindNodeByHandle(handle)
	if n == nil || n.Mode == Tiled {
		return false
	}
	mon := monitorOf(n)
	if mon == nil {
		mon = e.activeMonitorNode()
	}
	if mon == nil {
		return false
	}
	e.detach(n)
	n.Mode = Tiled

	target := e.Focused()
	if target == nil || target == n || monitorOf(target) != mon || target.Type != Window || target.Mode != Tiled {
		target = nil
	}
	if target == nil {
		// empty-monitor placement decides the axis from the full display
		if len(mon.TiledChildren()) == 0 {
			mon.Layout = e.SplitLayout()
		}
		e.insertChild(mon, n, len(mon.Children))
	} else {
		parent := target.Parent
		e.insertChild(parent, n, parent.IndexOf(target)+1)
	}
	e.SetFocus(n)
	return true
}

// FloatWindow pops a tiled window out of the tree. The vacated siblings are
// rescaled; the window keeps its last computed rect for the caller to use as
// the initial floating geometry. Returns false when already floating.
func (e *Engine) FloatWindow(handle string) bool {
	n := e.FindNodeByHandle(handle)
	if n == nil || n.Mode == Floating {
		return false
	}
	mon := monitorOf(n)
	e.detach(n)
	n.Mode = Floating
	n.Percent = 0
	if mon == nil {
		mon = e.activeMonitorNode()
	}
	if mon != nil {
		e.attach(mon, n, len(mon.Children))
	}
	return true
}

// SetMinimized mirrors the external minimized flag onto the window node. The
// node stays in the tree and in size accounting; only focus candidacy and
// move eligibility change.
func (e *Engine) SetMinimized(handle string, minimized bool) bool {
	n := e.FindNodeByHandle(handle)
	if n == nil {
		return false
	}
	n.Minimized = minimized
	return true
}

// insertChild attaches child at index i of parent and gives it an equal share
// of the split, rescaling existing siblings to keep the sum at 1.0.
func (e *Engine) insertChild(parent, child *Node, i int) {
	e.attach(parent, child, i)
	tiled := parent.TiledChildren()
	n := len(tiled)
	if n <= 1 {
		child.Percent = 1
		return
	}
	child.Percent = 1.0 / float64(n)
	scale := 1.0 - child.Percent
	for _, c := range tiled {
		if c != child {
			c.Percent *= scale
		}
	}
	NormalizeSiblingPercents(parent)
}
