// Package config handles the mosaic configuration file: layout tuning,
// appearance, and keybindings, stored as TOML under the XDG config directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// Config is the top-level configuration structure.
type Config struct {
	Layout      LayoutConfig      `toml:"layout"`
	Appearance  AppearanceConfig  `toml:"appearance"`
	Keybindings KeybindingsConfig `toml:"keybindings"`
}

// LayoutConfig tunes the tiling engine.
type LayoutConfig struct {
	// Gap is the pixel/cell gap between tiled siblings.
	Gap int `toml:"gap"`
	// MinWidth/MinHeight are global window size floors.
	MinWidth  int `toml:"min_width"`
	MinHeight int `toml:"min_height"`
	// Workspaces is the number of virtual workspaces (1-9).
	Workspaces int `toml:"workspaces"`
	// DefaultOrientation forces the split axis for new top-level windows:
	// "horizontal", "vertical", or "auto" (aspect-ratio based).
	DefaultOrientation string `toml:"default_orientation"`
}

// AppearanceConfig controls the rendering side.
type AppearanceConfig struct {
	// Theme is a bubbletint theme ID; empty disables theming.
	Theme string `toml:"theme"`
	// BorderStyle is one of "rounded", "normal", "thick", "double".
	BorderStyle string `toml:"border_style"`
	// StatusBarPosition is "top", "bottom", or "hidden".
	StatusBarPosition string `toml:"status_bar_position"`
}

// KeybindingsConfig maps actions to key lists per section. Multiple keys may
// be bound to the same action.
type KeybindingsConfig struct {
	LeaderKey string              `toml:"leader_key"`
	Focus     map[string][]string `toml:"focus"`
	Move      map[string][]string `toml:"move"`
	Layout    map[string][]string `toml:"layout"`
	Window    map[string][]string `toml:"window"`
	Workspace map[string][]string `toml:"workspace"`
	System    map[string][]string `toml:"system"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			Gap:                1,
			MinWidth:           20,
			MinHeight:          5,
			Workspaces:         9,
			DefaultOrientation: "auto",
		},
		Appearance: AppearanceConfig{
			Theme:             "dracula",
			BorderStyle:       "rounded",
			StatusBarPosition: "bottom",
		},
		Keybindings: KeybindingsConfig{
			LeaderKey: "ctrl+b",
			Focus: map[string][]string{
				"focus_left":  {"h", "left"},
				"focus_down":  {"j", "down"},
				"focus_up":    {"k", "up"},
				"focus_right": {"l", "right"},
			},
			Move: map[string][]string{
				"move_left":  {"H", "shift+left"},
				"move_down":  {"J", "shift+down"},
				"move_up":    {"K", "shift+up"},
				"move_right": {"L", "shift+right"},
				"swap_left":  {"alt+h"},
				"swap_down":  {"alt+j"},
				"swap_up":    {"alt+k"},
				"swap_right": {"alt+l"},
			},
			Layout: map[string][]string{
				"split_horizontal": {"b"},
				"split_vertical":   {"v"},
				"split_auto":       {"s"},
				"grow":             {"+", "="},
				"shrink":           {"-"},
				"equalize":         {"0"},
			},
			Window: map[string][]string{
				"new_window":      {"n", "c"},
				"close_window":    {"x"},
				"toggle_floating": {"f"},
				"minimize_window": {"m"},
				"restore_all":     {"M"},
			},
			Workspace: workspaceBindings(),
			System: map[string][]string{
				"toggle_help": {"?"},
				"quit":        {"q", "ctrl+c"},
			},
		},
	}
}

func workspaceBindings() map[string][]string {
	m := make(map[string][]string, 18)
	for i := 1; i <= 9; i++ {
		m[fmt.Sprintf("switch_workspace_%d", i)] = []string{fmt.Sprintf("%d", i)}
		m[fmt.Sprintf("move_to_workspace_%d", i)] = []string{fmt.Sprintf("shift+%d", i)}
	}
	return m
}

// GetConfigPath returns the configuration file path, creating parent
// directories as needed.
func GetConfigPath() (string, error) {
	return xdg.ConfigFile("mosaic/mosaic.toml")
}

// LoadUserConfig loads the user configuration, creating a default file on
// first run. User values are merged over the defaults, so a partial file is
// valid.
func LoadUserConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("could not determine config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		if err := WriteConfig(cfg, path); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// WriteConfig marshals cfg to TOML with a documentation header.
func WriteConfig(cfg *Config, path string) error {
	var sb strings.Builder
	sb.WriteString("# Mosaic Configuration File\n")
	sb.WriteString("# Customize layout behavior, appearance, and keybindings.\n")
	sb.WriteString("# Multiple keys can be bound to the same action.\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + path + "\n\n")

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	sb.Write(data)

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// normalize clamps out-of-range values back to usable ones rather than
// erroring out on a hand-edited file.
func (c *Config) normalize() {
	if c.Layout.Gap < 0 {
		c.Layout.Gap = 0
	}
	if c.Layout.MinWidth < 0 {
		c.Layout.MinWidth = 0
	}
	if c.Layout.MinHeight < 0 {
		c.Layout.MinHeight = 0
	}
	if c.Layout.Workspaces < 1 || c.Layout.Workspaces > 9 {
		c.Layout.Workspaces = 9
	}
	switch c.Layout.DefaultOrientation {
	case "horizontal", "vertical", "auto":
	default:
		c.Layout.DefaultOrientation = "auto"
	}
	switch c.Appearance.StatusBarPosition {
	case "top", "bottom", "hidden":
	default:
		c.Appearance.StatusBarPosition = "bottom"
	}
}
