package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mosaicwm/mosaic/internal/pool"
	"github.com/mosaicwm/mosaic/internal/theme"
	"github.com/mosaicwm/mosaic/internal/tile"
)

// z-order bands for the canvas
const (
	zTiled    = 1
	zFloating = 10
	zStatus   = 50
	zOverlay  = 100
)

// View renders the desktop: tiled windows from the engine's rects, floating
// windows above them, the status bar, and the help overlay on top.
func (d *Desktop) View() tea.View {
	var view tea.View
	view.SetContent(lipgloss.Sprint(d.canvas().Render()))
	view.AltScreen = true
	return view
}

func (d *Desktop) canvas() *lipgloss.Compositor {
	canvas := lipgloss.NewCompositor()
	layersPtr := pool.GetLayerSlice()
	layers := (*layersPtr)[:0]
	defer pool.PutLayerSlice(layersPtr)

	mon := d.Engine.ActiveMonitorNode()
	focused := d.Engine.Focused()
	for _, n := range d.visibleWindows(mon) {
		if n.Rect.Empty() {
			continue
		}
		z := zTiled
		if n.Mode == tile.Floating {
			z = zFloating
		}
		layers = append(layers, lipgloss.NewLayer(d.renderWindow(n, n == focused)).
			X(n.Rect.X).Y(n.Rect.Y).Z(z).ID(n.ID))
	}

	if d.Config.Appearance.StatusBarPosition != "hidden" && d.Width > 0 {
		y := d.Height - 1
		if d.Config.Appearance.StatusBarPosition == "top" {
			y = 0
		}
		layers = append(layers, lipgloss.NewLayer(d.renderStatusBar()).
			X(0).Y(y).Z(zStatus).ID("statusbar"))
	}

	if d.ShowHelp {
		help := d.renderHelp()
		x := (d.Width - lipgloss.Width(help)) / 2
		y := (d.Height - lipgloss.Height(help)) / 2
		if x < 0 {
			x = 0
		}
		if y < 0 {
			y = 0
		}
		layers = append(layers, lipgloss.NewLayer(help).
			X(x).Y(y).Z(zOverlay).ID("help"))
	}

	canvas.AddLayers(layers...)
	return canvas
}

// visibleWindows walks the monitor subtree and collects the windows that
// occupy screen space: every tiled split child, only the raised child of a
// stacked/tabbed container, no minimized windows, floating windows last.
func (d *Desktop) visibleWindows(mon *tile.Node) []*tile.Node {
	if mon == nil {
		return nil
	}
	var out []*tile.Node
	var floats []*tile.Node
	var walk func(*tile.Node)
	walk = func(n *tile.Node) {
		if n == nil {
			return
		}
		if n.Type == tile.Window {
			switch {
			case n.Minimized:
			case n.Mode == tile.Floating:
				floats = append(floats, n)
			default:
				out = append(out, n)
			}
			return
		}
		if n.Layout.Overlay() {
			for _, c := range n.Children {
				if c.Type == tile.Window && c.Mode == tile.Floating {
					floats = append(floats, c)
				}
			}
			if raised := raisedChild(n); raised != nil {
				walk(raised)
			}
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(mon)
	return append(out, floats...)
}

// raisedChild picks the visible child of an overlay container: focus memory
// first, then the first child that offers anything to show.
func raisedChild(n *tile.Node) *tile.Node {
	if lf := n.LastFocused; lf != nil && n.IndexOf(lf) >= 0 {
		if lf.Type != tile.Window || (!lf.Minimized && lf.Mode != tile.Floating) {
			return lf
		}
	}
	for _, c := range n.TiledChildren() {
		if c.Type == tile.Window && c.Minimized {
			continue
		}
		return c
	}
	return nil
}

func (d *Desktop) renderWindow(n *tile.Node, focused bool) string {
	w, h := n.Rect.Width, n.Rect.Height
	if w < 2 || h < 2 {
		return ""
	}

	borderColor := theme.BorderUnfocused()
	switch {
	case focused:
		borderColor = theme.BorderFocused()
	case n.Mode == tile.Floating:
		borderColor = theme.BorderFloating()
	case n.Parent != nil && n.Parent.Layout.Overlay():
		borderColor = theme.BorderOverlay()
	}

	title := n.ID
	if win := d.Windows[n.ID]; win != nil {
		title = win.Title
	}
	if n.Parent != nil && n.Parent.Layout.Overlay() {
		tiled := n.Parent.TiledChildren()
		pos := 0
		for i, c := range tiled {
			if c == n {
				pos = i + 1
			}
		}
		title = fmt.Sprintf("%s [%d/%d]", title, pos, len(tiled))
	}

	style := lipgloss.NewStyle().
		Border(theme.Border(d.Config.Appearance.BorderStyle)).
		BorderForeground(borderColor).
		Foreground(theme.WindowFg()).
		Width(w - 2).
		Height(h - 2)

	body := lipgloss.NewStyle().
		Foreground(theme.TitleFg()).
		Bold(focused).
		Render(title)
	return style.Render(body)
}

func (d *Desktop) renderStatusBar() string {
	sb := pool.GetStringBuilder()
	defer pool.PutStringBuilder(sb)

	active := d.Engine.ActiveWorkspace()
	activeStyle := lipgloss.NewStyle().Foreground(theme.WorkspaceActive()).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(theme.WorkspaceInactive())
	for ws := 0; ws < d.Engine.WorkspaceCount(); ws++ {
		label := fmt.Sprintf(" %d ", ws+1)
		if ws == active {
			sb.WriteString(activeStyle.Render(label))
		} else {
			sb.WriteString(inactiveStyle.Render(label))
		}
	}

	minimized := 0
	for _, n := range d.Engine.NodesByType(tile.Window) {
		if n.Minimized {
			minimized++
		}
	}
	if minimized > 0 {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(theme.MinimizedFg()).
			Render(fmt.Sprintf("  %d minimized", minimized)))
	}

	left := sb.String()
	right := fmt.Sprintf("%s  %s ", d.CPUGraph(), d.RAMLabel())

	gap := d.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + lipgloss.NewStyle().Width(gap).Render("") + right
	return lipgloss.NewStyle().
		Background(theme.StatusBarBg()).
		Foreground(theme.StatusBarFg()).
		Width(d.Width).
		Render(bar)
}
