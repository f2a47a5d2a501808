package app

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/mosaicwm/mosaic/internal/tile"
)

// resizeStep is the percent share traded per grow/shrink press.
const resizeStep = 0.03

// Apply executes a named action against the engine. Unknown actions and
// soft-failed engine operations are silently ignored, matching the engine's
// no-exception contract.
func (d *Desktop) Apply(action string) tea.Cmd {
	switch action {
	case "focus_left":
		d.focus(tile.Left)
	case "focus_down":
		d.focus(tile.Down)
	case "focus_up":
		d.focus(tile.Up)
	case "focus_right":
		d.focus(tile.Right)

	case "move_left":
		d.move(tile.Left)
	case "move_down":
		d.move(tile.Down)
	case "move_up":
		d.move(tile.Up)
	case "move_right":
		d.move(tile.Right)

	case "swap_left":
		d.swap(tile.Left)
	case "swap_down":
		d.swap(tile.Down)
	case "swap_up":
		d.swap(tile.Up)
	case "swap_right":
		d.swap(tile.Right)

	case "split_horizontal":
		d.split(tile.Horizontal)
	case "split_vertical":
		d.split(tile.Vertical)
	case "split_auto":
		d.split(tile.OrientNone)

	case "grow":
		d.resize(resizeStep)
	case "shrink":
		d.resize(-resizeStep)
	case "equalize":
		d.equalize()

	case "new_window":
		d.SpawnWindow()
	case "close_window":
		d.CloseFocused()
	case "toggle_floating":
		d.toggleFloating()
	case "minimize_window":
		d.minimizeFocused()
	case "restore_all":
		d.restoreAll()

	case "toggle_help":
		d.ShowHelp = !d.ShowHelp
	case "quit":
		d.quitting = true
		return tea.Quit

	default:
		if ws, ok := workspaceSuffix(action, "switch_workspace_"); ok {
			d.switchWorkspace(ws)
		} else if ws, ok := workspaceSuffix(action, "move_to_workspace_"); ok {
			d.moveToWorkspace(ws)
		}
	}
	return nil
}

// workspaceSuffix parses the 1-based workspace number off an action name and
// converts it to the engine's 0-based index.
func workspaceSuffix(action, prefix string) (int, bool) {
	num, ok := strings.CutPrefix(action, prefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}

func (d *Desktop) focus(dir tile.Direction) {
	d.Engine.Focus(d.Engine.Focused(), dir)
}

func (d *Desktop) move(dir tile.Direction) {
	if d.Engine.Move(d.Engine.Focused(), dir) {
		d.Engine.Layout()
	}
}

func (d *Desktop) swap(dir tile.Direction) {
	if d.Engine.Swap(d.Engine.Focused(), dir) {
		d.Engine.Layout()
	}
}

func (d *Desktop) split(o tile.Orientation) {
	d.Engine.Split(d.Engine.Focused(), o)
}

func (d *Desktop) resize(delta float64) {
	if d.Engine.ResizeBy(d.Engine.Focused(), delta) {
		d.Engine.Layout()
	}
}

func (d *Desktop) equalize() {
	n := d.Engine.Focused()
	if n == nil || n.Parent == nil {
		return
	}
	tile.EqualizeSiblingPercents(n.Parent)
	d.Engine.Layout()
}

func (d *Desktop) toggleFloating() {
	n := d.Engine.Focused()
	if n == nil || !n.IsWindow() {
		return
	}
	if n.Mode == tile.Floating {
		d.Engine.TileWindow(n.ID)
	} else {
		d.Engine.FloatWindow(n.ID)
	}
	d.Engine.Layout()
}

func (d *Desktop) minimizeFocused() {
	n := d.Engine.Focused()
	if n == nil || !n.IsWindow() {
		return
	}
	// pick the neighbor first; navigation refuses minimized start nodes
	for _, dir := range []tile.Direction{tile.Right, tile.Left, tile.Down, tile.Up} {
		if d.Engine.Focus(n, dir) != nil {
			break
		}
	}
	d.Engine.SetMinimized(n.ID, true)
}

func (d *Desktop) restoreAll() {
	for _, n := range d.Engine.NodesByType(tile.Window) {
		if n.Minimized && d.onActiveWorkspace(n) {
			d.Engine.SetMinimized(n.ID, false)
		}
	}
	d.Engine.Layout()
}

func (d *Desktop) switchWorkspace(ws int) {
	if remembered := d.Engine.SwitchWorkspace(ws); remembered == nil {
		d.focusFallback()
	}
	d.Engine.Layout()
}

func (d *Desktop) moveToWorkspace(ws int) {
	n := d.Engine.Focused()
	if n == nil || !n.IsWindow() {
		return
	}
	if d.Engine.MoveToWorkspace(n.ID, ws) {
		d.focusFallback()
		d.Engine.Layout()
	}
}
