package config

import (
	"fmt"
	"sort"
	"strings"
)

// Keybinding represents a single keybinding entry for help display.
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection represents a section of related keybindings.
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

// KeybindRegistry resolves keys to actions and actions to keys from a loaded
// configuration. Build once per config load; lookups are read-only.
type KeybindRegistry struct {
	keyToAction map[string]string
	actionKeys  map[string][]string
}

// NewKeybindRegistry flattens the per-section keybinding maps into a single
// lookup registry. On a duplicate key the first binding wins and later ones
// are ignored.
func NewKeybindRegistry(cfg *Config) *KeybindRegistry {
	r := &KeybindRegistry{
		keyToAction: make(map[string]string),
		actionKeys:  make(map[string][]string),
	}
	sections := []map[string][]string{
		cfg.Keybindings.Focus,
		cfg.Keybindings.Move,
		cfg.Keybindings.Layout,
		cfg.Keybindings.Window,
		cfg.Keybindings.Workspace,
		cfg.Keybindings.System,
	}
	for _, section := range sections {
		for action, keys := range section {
			for _, key := range keys {
				if _, taken := r.keyToAction[key]; taken {
					continue
				}
				r.keyToAction[key] = action
				r.actionKeys[action] = append(r.actionKeys[action], key)
			}
		}
	}
	return r
}

// ActionFor returns the action bound to a key, or "" when unbound.
func (r *KeybindRegistry) ActionFor(key string) string {
	return r.keyToAction[key]
}

// GetKeys returns the keys bound to an action.
func (r *KeybindRegistry) GetKeys(action string) []string {
	return r.actionKeys[action]
}

// GetKeysForDisplay joins an action's keys for help output, or "" when the
// action is unbound.
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	return strings.Join(r.actionKeys[action], ", ")
}

// Actions returns every bound action name, sorted.
func (r *KeybindRegistry) Actions() []string {
	actions := make([]string, 0, len(r.actionKeys))
	for a := range r.actionKeys {
		actions = append(actions, a)
	}
	sort.Strings(actions)
	return actions
}

// GetKeybindings returns the help menu sections, generated from the registry
// when provided and falling back to the built-in defaults otherwise.
func GetKeybindings(registry *KeybindRegistry) []KeybindingSection {
	if registry == nil {
		registry = NewKeybindRegistry(DefaultConfig())
	}

	sections := []KeybindingSection{}

	focus := KeybindingSection{Title: "FOCUS"}
	addBinding(&focus, registry, "focus_left", "Focus left")
	addBinding(&focus, registry, "focus_down", "Focus down")
	addBinding(&focus, registry, "focus_up", "Focus up")
	addBinding(&focus, registry, "focus_right", "Focus right")
	if len(focus.Bindings) > 0 {
		sections = append(sections, focus)
	}

	move := KeybindingSection{Title: "MOVE / SWAP"}
	addBinding(&move, registry, "move_left", "Move left")
	addBinding(&move, registry, "move_down", "Move down")
	addBinding(&move, registry, "move_up", "Move up")
	addBinding(&move, registry, "move_right", "Move right")
	addBinding(&move, registry, "swap_left", "Swap left")
	addBinding(&move, registry, "swap_down", "Swap down")
	addBinding(&move, registry, "swap_up", "Swap up")
	addBinding(&move, registry, "swap_right", "Swap right")
	if len(move.Bindings) > 0 {
		sections = append(sections, move)
	}

	layout := KeybindingSection{Title: "LAYOUT"}
	addBinding(&layout, registry, "split_horizontal", "Split left/right")
	addBinding(&layout, registry, "split_vertical", "Split top/bottom")
	addBinding(&layout, registry, "split_auto", "Split by aspect ratio")
	addBinding(&layout, registry, "grow", "Grow window")
	addBinding(&layout, registry, "shrink", "Shrink window")
	addBinding(&layout, registry, "equalize", "Equalize siblings")
	if len(layout.Bindings) > 0 {
		sections = append(sections, layout)
	}

	window := KeybindingSection{Title: "WINDOWS"}
	addBinding(&window, registry, "new_window", "New window")
	addBinding(&window, registry, "close_window", "Close window")
	addBinding(&window, registry, "toggle_floating", "Toggle floating")
	addBinding(&window, registry, "minimize_window", "Minimize window")
	addBinding(&window, registry, "restore_all", "Restore all")
	if len(window.Bindings) > 0 {
		sections = append(sections, window)
	}

	workspaces := KeybindingSection{Title: "WORKSPACES"}
	for i := 1; i <= 9; i++ {
		addBinding(&workspaces, registry,
			fmt.Sprintf("switch_workspace_%d", i),
			fmt.Sprintf("Switch to workspace %d", i))
	}
	for i := 1; i <= 9; i++ {
		addBinding(&workspaces, registry,
			fmt.Sprintf("move_to_workspace_%d", i),
			fmt.Sprintf("Move window to workspace %d", i))
	}
	if len(workspaces.Bindings) > 0 {
		sections = append(sections, workspaces)
	}

	system := KeybindingSection{Title: "SYSTEM"}
	addBinding(&system, registry, "toggle_help", "Toggle help")
	addBinding(&system, registry, "quit", "Quit")
	if len(system.Bindings) > 0 {
		sections = append(sections, system)
	}

	return sections
}

// addBinding adds a keybinding to a section if the action has keys configured.
func addBinding(section *KeybindingSection, registry *KeybindRegistry, action, description string) {
	keys := registry.GetKeysForDisplay(action)
	if keys != "" {
		section.Bindings = append(section.Bindings, Keybinding{
			Key:         keys,
			Description: description,
		})
	}
}
