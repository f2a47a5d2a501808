// Package app provides the interactive desktop model: it owns the layout
// engine, tracks simulated windows, and translates key events into engine
// operations.
package app

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/mosaicwm/mosaic/internal/config"
	"github.com/mosaicwm/mosaic/internal/theme"
	"github.com/mosaicwm/mosaic/internal/tile"
)

// Window is a tracked desktop window. The layout engine only knows its
// handle; title and creation time live here.
type Window struct {
	Handle    string
	Title     string
	CreatedAt time.Time
}

// Desktop is the main application state: the bubbletea model driving the
// layout engine.
type Desktop struct {
	Engine   *tile.Engine
	Config   *config.Config
	Registry *config.KeybindRegistry
	Windows  map[string]*Window

	Width  int
	Height int

	ShowHelp bool
	quitting bool

	counter int
	logger  *log.Logger

	CPUHistory []float64
	RAMPercent float64
}

// TickMsg drives the periodic system info refresh.
type TickMsg time.Time

// ConfigReloadedMsg carries a freshly loaded configuration from the file
// watcher.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// NewDesktop builds the desktop model from a loaded configuration.
func NewDesktop(cfg *config.Config, logger *log.Logger) *Desktop {
	if logger == nil {
		logger = log.Default()
	}
	if err := theme.Initialize(cfg.Appearance.Theme); err != nil {
		logger.Warn("theme init failed, using terminal colors", "err", err)
	}
	d := &Desktop{
		Config:   cfg,
		Registry: config.NewKeybindRegistry(cfg),
		Windows:  make(map[string]*Window),
		logger:   logger,
	}
	d.Engine = tile.NewEngine(tile.Options{
		Gap:        cfg.Layout.Gap,
		MinWidth:   cfg.Layout.MinWidth,
		MinHeight:  cfg.Layout.MinHeight,
		Workspaces: cfg.Layout.Workspaces,
		Overflow: func(parent *tile.Node, deficit int) {
			logger.Debug("layout overflow", "container", parent.ID, "deficit", deficit)
		},
	})
	return d
}

// TickCmd schedules the next system info refresh.
func TickCmd() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Init starts the periodic tick.
func (d *Desktop) Init() tea.Cmd {
	return TickCmd()
}

// Resize registers the terminal size with the engine, reserving one row for
// the status bar, and recomputes the layout.
func (d *Desktop) Resize(width, height int) {
	d.Width = width
	d.Height = height
	usable := height
	if d.Config.Appearance.StatusBarPosition != "hidden" {
		usable--
	}
	if usable < 1 {
		usable = 1
	}
	y := 0
	if d.Config.Appearance.StatusBarPosition == "top" {
		y = height - usable
	}
	d.Engine.SetMonitors([]tile.Rect{{X: 0, Y: y, Width: width, Height: usable}})
	d.Engine.Layout()
}

// ApplyConfig swaps in a reloaded configuration: engine tuning, theme, and
// keybindings all update live.
func (d *Desktop) ApplyConfig(cfg *config.Config) {
	d.Config = cfg
	d.Registry = config.NewKeybindRegistry(cfg)
	d.Engine.SetGap(cfg.Layout.Gap)
	d.Engine.SetMinSize(cfg.Layout.MinWidth, cfg.Layout.MinHeight)
	d.Engine.SetWorkspaceCount(cfg.Layout.Workspaces)
	if err := theme.Initialize(cfg.Appearance.Theme); err != nil {
		d.logger.Warn("theme reload failed", "err", err)
	}
	if d.Width > 0 {
		d.Resize(d.Width, d.Height)
	}
	d.logger.Info("configuration reloaded")
}

// Update handles all incoming messages.
func (d *Desktop) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.Resize(msg.Width, msg.Height)
		return d, nil

	case TickMsg:
		d.UpdateSysInfo()
		return d, TickCmd()

	case ConfigReloadedMsg:
		d.ApplyConfig(msg.Config)
		return d, nil

	case tea.KeyPressMsg:
		if d.ShowHelp {
			d.ShowHelp = false
			return d, nil
		}
		action := d.Registry.ActionFor(msg.String())
		if action == "" {
			return d, nil
		}
		return d, d.Apply(action)
	}
	return d, nil
}

// SpawnWindow creates and tiles a new simulated window, returning its handle.
func (d *Desktop) SpawnWindow() string {
	handle := uuid.NewString()
	if d.Engine.AddWindow(handle) == nil {
		d.logger.Error("window registration failed", "handle", handle)
		return ""
	}
	d.counter++
	d.Windows[handle] = &Window{
		Handle:    handle,
		Title:     fmt.Sprintf("window %d", d.counter),
		CreatedAt: time.Now(),
	}
	d.Engine.TileWindow(handle)
	d.applyDefaultOrientation()
	d.Engine.Layout()
	return handle
}

// applyDefaultOrientation forces the configured axis onto a monitor that just
// received its first window. "auto" keeps the aspect-ratio choice.
func (d *Desktop) applyDefaultOrientation() {
	mon := d.Engine.ActiveMonitorNode()
	if mon == nil || len(mon.TiledChildren()) != 1 {
		return
	}
	switch d.Config.Layout.DefaultOrientation {
	case "horizontal":
		mon.Layout = tile.HSplit
	case "vertical":
		mon.Layout = tile.VSplit
	}
}

// CloseFocused removes the focused window and moves focus to a neighbor.
func (d *Desktop) CloseFocused() {
	n := d.Engine.Focused()
	if n == nil || !n.IsWindow() {
		return
	}
	handle := n.ID
	delete(d.Windows, handle)
	d.Engine.RemoveWindow(handle)
	d.focusFallback()
	d.Engine.Layout()
}

// focusFallback focuses any remaining window on the active workspace after
// the focused one vanished.
func (d *Desktop) focusFallback() {
	if d.Engine.Focused() != nil {
		return
	}
	mon := d.Engine.ActiveMonitorNode()
	if mon == nil {
		return
	}
	for _, n := range d.Engine.NodesByType(tile.Window) {
		if !n.Minimized && d.onActiveWorkspace(n) {
			d.Engine.SetFocus(n)
			return
		}
	}
}

func (d *Desktop) onActiveWorkspace(n *tile.Node) bool {
	mon := d.Engine.ActiveMonitorNode()
	for c := n; c != nil; c = c.Parent {
		if c == mon {
			return true
		}
	}
	return false
}

// Quitting reports whether a quit action was applied.
func (d *Desktop) Quitting() bool { return d.quitting }
