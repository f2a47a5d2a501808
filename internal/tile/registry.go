package tile

import "fmt"

// addWorkspace appends a workspace node under the root and gives it one
// monitor child per currently known display.
func (e *Engine) addWorkspace(ws int) *Node {
	w := &Node{ID: fmt.Sprintf("ws%d", ws), Type: Workspace}
	e.attach(e.root, w, len(e.root.Children))
	e.nodes[w.ID] = w
	for m, r := range e.monitors {
		e.addMonitor(w, m, ws, r)
	}
	return w
}

func (e *Engine) addMonitor(workspace *Node, monitor, ws int, r Rect) *Node {
	mon := &Node{ID: MonitorID(monitor, ws), Type: Monitor, Rect: r}
	e.attach(workspace, mon, len(workspace.Children))
	e.nodes[mon.ID] = mon
	return mon
}

// SetMonitors registers the connected displays and rebuilds the monitor
// nodes of every workspace to match. An empty set is treated as a transient
// disconnect: the rebuild is deferred behind a pending flag and no layout
// state is discarded until displays return. Windows on removed monitors are
// re-homed onto the first remaining monitor of their workspace.
func (e *Engine) SetMonitors(rects []Rect) {
	if len(rects) == 0 {
		// transient all-monitors-disconnected signal; keep the tree alive
		e.pendingRebuild = true
		return
	}
	e.monitors = append(e.monitors[:0:0], rects...)
	e.pendingRebuild = false
	if e.activeMonitor >= len(rects) {
		e.activeMonitor = 0
	}
	for ws, w := range e.root.Children {
		e.syncWorkspaceMonitors(w, ws)
	}
}

// RebuildPending reports whether a zero-monitor event deferred the last
// rebuild.
func (e *Engine) RebuildPending() bool { return e.pendingRebuild }

// syncWorkspaceMonitors reconciles one workspace's monitor children with the
// registered display set: updates surviving rects, creates missing monitors,
// and drains+removes monitors beyond the display count.
func (e *Engine) syncWorkspaceMonitors(w *Node, ws int) {
	for m, r := range e.monitors {
		if mon := e.nodes[MonitorID(m, ws)]; mon != nil {
			mon.Rect = r
			continue
		}
		e.addMonitor(w, m, ws, r)
	}
	// drain monitors that lost their display
	var victims []*Node
	for _, c := range w.Children {
		if c.Type != Monitor {
			continue
		}
		var monitor, wsIdx int
		if _, err := fmt.Sscanf(c.ID, "mo%dws%d", &monitor, &wsIdx); err != nil {
			continue
		}
		if monitor >= len(e.monitors) {
			victims = append(victims, c)
		}
	}
	for _, victim := range victims {
		e.drainMonitor(w, victim, ws)
	}
}

// drainMonitor relocates every window on a dead monitor to the workspace's
// first surviving monitor, then removes the monitor node. Windows are moved,
// never destroyed: the external windows still exist.
func (e *Engine) drainMonitor(w, victim *Node, ws int) {
	home := e.nodes[MonitorID(0, ws)]
	if home == nil || home == victim {
		return
	}
	for _, win := range windowsUnder(victim) {
		tiled := win.Mode == Tiled
		e.detach(win)
		if tiled {
			if len(home.TiledChildren()) == 0 {
				home.Layout = SplitLayoutForRect(home.Rect)
			}
			e.insertChild(home, win, len(home.Children))
		} else {
			e.attach(home, win, len(home.Children))
		}
	}
	i := w.IndexOf(victim)
	if i >= 0 {
		w.Children = append(w.Children[:i], w.Children[i+1:]...)
	}
	e.forgetSubtree(victim)
}

// forgetSubtree drops a detached subtree's container/monitor nodes from the
// arena index.
func (e *Engine) forgetSubtree(n *Node) {
	if n == nil {
		return
	}
	for _, c := range n.Children {
		e.forgetSubtree(c)
	}
	if n.Type != Window {
		e.removeFromIndex(n)
	}
}

// windowsUnder collects the window leaves of a subtree in tree order.
func windowsUnder(n *Node) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(c *Node) {
		if c == nil {
			return
		}
		if c.Type == Window {
			out = append(out, c)
			return
		}
		for _, ch := range c.Children {
			walk(ch)
		}
	}
	walk(n)
	return out
}

// SetWorkspaceCount grows or shrinks the workspace set. Shrinking relocates
// the windows of removed workspaces onto the last surviving workspace's
// first monitor.
func (e *Engine) SetWorkspaceCount(count int) {
	if count <= 0 {
		return
	}
	for ws := e.workspaces; ws < count; ws++ {
		e.addWorkspace(ws)
	}
	for ws := e.workspaces - 1; ws >= count; ws-- {
		w := e.nodes[fmt.Sprintf("ws%d", ws)]
		if w == nil {
			continue
		}
		home := e.nodes[MonitorID(0, count-1)]
		for _, win := range windowsUnder(w) {
			tiled := win.Mode == Tiled
			e.detach(win)
			if home == nil {
				delete(e.nodes, win.ID)
				continue
			}
			if tiled {
				if len(home.TiledChildren()) == 0 {
					home.Layout = SplitLayoutForRect(home.Rect)
				}
				e.insertChild(home, win, len(home.Children))
			} else {
				e.attach(home, win, len(home.Children))
			}
		}
		i := e.root.IndexOf(w)
		if i >= 0 {
			e.root.Children = append(e.root.Children[:i], e.root.Children[i+1:]...)
		}
		e.forgetSubtree(w)
		delete(e.focused, ws)
	}
	e.workspaces = count
	if e.activeWorkspace >= count {
		e.activeWorkspace = count - 1
	}
}

// MoveToWorkspace relocates a window onto the active monitor of another
// workspace, keeping its tiled/floating mode. Returns false for unknown
// handles, out-of-range workspaces, or a move onto the window's own
// workspace.
func (e *Engine) MoveToWorkspace(handle string, ws int) bool {
	n := e.FindNodeByHandle(handle)
	if n == nil || ws < 0 || ws >= e.workspaces {
		return false
	}
	if e.workspaceOf(n) == ws {
		return false
	}
	home := e.nodes[MonitorID(e.activeMonitor, ws)]
	if home == nil {
		home = e.nodes[MonitorID(0, ws)]
	}
	if home == nil {
		return false
	}
	for w, f := range e.focused {
		if f == n && w != ws {
			delete(e.focused, w)
		}
	}
	tiled := n.Mode == Tiled
	e.detach(n)
	if tiled {
		if len(home.TiledChildren()) == 0 {
			home.Layout = SplitLayoutForRect(home.Rect)
		}
		e.insertChild(home, n, len(home.Children))
	} else {
		e.attach(home, n, len(home.Children))
	}
	return true
}

// WorkspaceCount returns the configured number of workspaces.
func (e *Engine) WorkspaceCount() int { return e.workspaces }

// MonitorCount returns the number of registered displays.
func (e *Engine) MonitorCount() int { return len(e.monitors) }

// SetActiveMonitor selects which display newly tracked windows land on.
func (e *Engine) SetActiveMonitor(m int) {
	if m >= 0 && m < len(e.monitors) {
		e.activeMonitor = m
	}
}

// activeMonitorNode resolves the monitor node for the active display on the
// active workspace, or nil before any monitor is registered.
func (e *Engine) activeMonitorNode() *Node {
	return e.nodes[MonitorID(e.activeMonitor, e.activeWorkspace)]
}

// ActiveMonitorNode exposes the active monitor node to collaborators that
// need its rect or subtree read-only.
func (e *Engine) ActiveMonitorNode() *Node { return e.activeMonitorNode() }

// Layout recomputes rects for the whole active workspace: the standard
// post-mutation entry point for collaborators.
func (e *Engine) Layout() {
	ws := e.nodes[fmt.Sprintf("ws%d", e.activeWorkspace)]
	e.ProcessNode(ws)
}

// nextContainerID mints an arena key for an implicitly created container.
func (e *Engine) nextContainerID() string {
	for {
		e.containerSeq++
		id := fmt.Sprintf("con%d", e.containerSeq)
		if e.nodes[id] == nil {
			return id
		}
	}
}
