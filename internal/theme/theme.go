// Package theme provides color themes and styling for the mosaic UI.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup.
// If themeName is empty, theming will be disabled and standard terminal colors will be used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	ok := tint.SetTintID(themeName)
	if !ok {
		tint.SetTintID("default")
	}

	return nil
}

// IsEnabled returns true if theming is enabled
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme.
// Returns nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// Border reports the lipgloss border for a configured style name.
func Border(style string) lipgloss.Border {
	switch style {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// Window border colors

func BorderFocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00AAFF")
	}
	return t.Blue
}

func BorderUnfocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#555555")
	}
	return t.BrightBlack
}

func BorderFloating() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#AA00FF")
	}
	return t.Purple
}

func BorderOverlay() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#AAAA00")
	}
	return t.Yellow
}

// Window chrome

func TitleFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#FFFFFF")
	}
	return t.BrightWhite
}

func WindowBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#000000")
	}
	return t.Bg
}

func WindowFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

// Status bar colors

func StatusBarBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#222222")
	}
	return t.Black
}

func StatusBarFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

func WorkspaceActive() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00FF00")
	}
	return t.Green
}

func WorkspaceInactive() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#7f7f7f")
	}
	return t.BrightBlack
}

func MinimizedFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#7f7f7f")
	}
	return t.BrightBlack
}

// Help overlay colors

func HelpTitle() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00FFFF")
	}
	return t.Cyan
}

func HelpKey() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#FFFF00")
	}
	return t.Yellow
}

func HelpText() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}
