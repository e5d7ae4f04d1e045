package hotkeys

import (
	"fmt"
	"sort"

	"github.com/1broseidon/gridsnap/internal/grid"
	"github.com/1broseidon/gridsnap/internal/keys"
)

// KeyMap assigns one physical key to each grid position.
type KeyMap map[grid.Position]keys.Key

// DefaultKeyMap returns the home-row block layout:
//
//	u i o
//	j k l
//	m , .
func DefaultKeyMap() KeyMap {
	return KeyMap{
		grid.TopLeft:     "u",
		grid.Top:         "i",
		grid.TopRight:    "o",
		grid.Left:        "j",
		grid.Middle:      "k",
		grid.Right:       "l",
		grid.BottomLeft:  "m",
		grid.Bottom:      "comma",
		grid.BottomRight: "period",
	}
}

// KeyMapFromBindings overlays config bindings (position name or label ->
// key name) on the default key map.
func KeyMapFromBindings(bindings map[string]string) (KeyMap, error) {
	km := DefaultKeyMap()

	// Apply in sorted order so error messages are stable.
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		pos, err := grid.ParsePosition(name)
		if err != nil {
			return nil, fmt.Errorf("bindings: %w", err)
		}
		key, err := keys.ParseKey(bindings[name])
		if err != nil {
			return nil, fmt.Errorf("bindings.%s: %w", name, err)
		}
		km[pos] = key
	}

	if err := km.Validate(); err != nil {
		return nil, fmt.Errorf("bindings: %w", err)
	}
	return km, nil
}

// Validate checks that all nine positions are bound to distinct known keys.
func (km KeyMap) Validate() error {
	seen := make(map[keys.Key]grid.Position, len(km))
	for _, pos := range grid.Positions() {
		key, ok := km[pos]
		if !ok {
			return fmt.Errorf("no key bound for %s", pos)
		}
		if _, known := keys.VirtualKey(key); !known {
			return fmt.Errorf("unknown key %q bound for %s", key, pos)
		}
		if other, dup := seen[key]; dup {
			return fmt.Errorf("key %q bound to both %s and %s", key, other, pos)
		}
		seen[key] = pos
	}
	if len(km) != len(seen) {
		return fmt.Errorf("key map has %d entries, expected %d", len(km), len(seen))
	}
	return nil
}
