package keys

import (
	"fmt"
	"strings"
)

// Modifier is a set of modifier keys held together with a hotkey.
type Modifier uint8

const (
	Alt Modifier = 1 << iota
	Ctrl
	Shift
	Super
)

// Win32 RegisterHotKey flags.
const (
	win32ModAlt      = 0x0001
	win32ModControl  = 0x0002
	win32ModShift    = 0x0004
	win32ModWin      = 0x0008
	win32ModNoRepeat = 0x4000
)

var modifierOrder = []struct {
	mod  Modifier
	name string
	x11  string
	w32  uint32
}{
	{Ctrl, "ctrl", "Control", win32ModControl},
	{Shift, "shift", "Shift", win32ModShift},
	{Alt, "alt", "Mod1", win32ModAlt},
	{Super, "super", "Mod4", win32ModWin},
}

var modifierNames = map[string]Modifier{
	"alt":     Alt,
	"mod1":    Alt,
	"ctrl":    Ctrl,
	"control": Ctrl,
	"shift":   Shift,
	"super":   Super,
	"win":     Super,
	"mod4":    Super,
}

// ParseModifier parses "alt", "ctrl+alt", "super-shift" and similar.
func ParseModifier(s string) (Modifier, error) {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == '+' || r == '-' || r == ' '
	})
	if len(fields) == 0 {
		return 0, fmt.Errorf("modifier must not be empty")
	}

	var mod Modifier
	for _, f := range fields {
		m, ok := modifierNames[f]
		if !ok {
			return 0, fmt.Errorf("unknown modifier %q in %q", f, s)
		}
		mod |= m
	}
	return mod, nil
}

func (m Modifier) String() string {
	var parts []string
	for _, o := range modifierOrder {
		if m&o.mod != 0 {
			parts = append(parts, o.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// Win32 returns the RegisterHotKey fsModifiers value. Auto-repeat is always
// suppressed so holding a hotkey tiles once.
func (m Modifier) Win32() uint32 {
	flags := uint32(win32ModNoRepeat)
	for _, o := range modifierOrder {
		if m&o.mod != 0 {
			flags |= o.w32
		}
	}
	return flags
}

// X11 returns the xgbutil key-string prefix, e.g. "Control-Mod1-".
func (m Modifier) X11() string {
	var b strings.Builder
	for _, o := range modifierOrder {
		if m&o.mod != 0 {
			b.WriteString(o.x11)
			b.WriteByte('-')
		}
	}
	return b.String()
}
