// Package keys defines the physical keys and modifiers gridsnap can bind,
// and their native codes on each supported window system.
package keys

import (
	"fmt"
	"sort"
	"strings"
)

// Key is a normalized key name such as "u", "comma" or "f5".
type Key string

type keyCodes struct {
	vk     uint32 // Win32 virtual-key code
	keysym string // X11 keysym name
}

var table = map[Key]keyCodes{
	"space":     {0x20, "space"},
	"left":      {0x25, "Left"},
	"up":        {0x26, "Up"},
	"right":     {0x27, "Right"},
	"down":      {0x28, "Down"},
	"semicolon": {0xBA, "semicolon"},
	"equal":     {0xBB, "equal"},
	"comma":     {0xBC, "comma"},
	"minus":     {0xBD, "minus"},
	"period":    {0xBE, "period"},
	"slash":     {0xBF, "slash"},
}

var aliases = map[string]Key{
	",":             "comma",
	".":             "period",
	"/":             "slash",
	";":             "semicolon",
	"-":             "minus",
	"=":             "equal",
	"vk_oem_comma":  "comma",
	"vk_oem_period": "period",
}

func init() {
	for c := 'a'; c <= 'z'; c++ {
		// Letter virtual-key codes are the uppercase ASCII values.
		table[Key(string(c))] = keyCodes{uint32(c - 'a' + 'A'), string(c)}
	}
	for c := '0'; c <= '9'; c++ {
		table[Key(string(c))] = keyCodes{uint32(c), string(c)}
		table[Key("kp"+string(c))] = keyCodes{0x60 + uint32(c-'0'), "KP_" + string(c)}
	}
	for i := 1; i <= 12; i++ {
		table[Key(fmt.Sprintf("f%d", i))] = keyCodes{0x70 + uint32(i-1), fmt.Sprintf("F%d", i)}
	}
}

// ParseKey normalizes s into a known Key.
func ParseKey(s string) (Key, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if alias, ok := aliases[name]; ok {
		return alias, nil
	}
	k := Key(name)
	if _, ok := table[k]; !ok {
		return "", fmt.Errorf("unknown key %q (known keys: %s)", s, knownList())
	}
	return k, nil
}

// VirtualKey returns the Win32 virtual-key code for k.
func VirtualKey(k Key) (uint32, bool) {
	codes, ok := table[k]
	return codes.vk, ok
}

// Keysym returns the X11 keysym name for k.
func Keysym(k Key) (string, bool) {
	codes, ok := table[k]
	return codes.keysym, ok
}

func knownList() string {
	known := Known()
	names := make([]string, len(known))
	for i, k := range known {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// Known returns every bindable key, sorted.
func Known() []Key {
	out := make([]Key, 0, len(table))
	for k := range table {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
