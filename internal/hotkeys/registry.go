// Package hotkeys binds the nine grid positions to global hotkeys and maps
// fired hotkey tokens back to positions.
package hotkeys

import (
	"fmt"

	"github.com/1broseidon/gridsnap/internal/grid"
	"github.com/1broseidon/gridsnap/internal/keys"
)

// Registrar registers a global hotkey under a caller-chosen token.
type Registrar interface {
	RegisterHotkey(token int, mod keys.Modifier, key keys.Key) error
}

// RegistrationError reports a hotkey that could not be registered, usually
// because another client already owns the combination.
type RegistrationError struct {
	Position grid.Position
	Key      keys.Key
	Modifier keys.Modifier
	Err      error
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("register hotkey %s+%s for %s: %v", e.Modifier, e.Key, e.Position, e.Err)
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}

// TokenFor returns the registration token for pos: 1 through 9 in
// row-major order. Invalid positions map to 0, which is never registered.
func TokenFor(pos grid.Position) int {
	if !pos.Valid() {
		return 0
	}
	return (pos.Y+1)*3 + (pos.X + 1) + 1
}

// Entry is one registered hotkey.
type Entry struct {
	Position grid.Position
	Token    int
	Key      keys.Key
}

// Binding maps registered tokens back to grid positions. It is read-only
// once RegisterAll returns.
type Binding struct {
	modifier keys.Modifier
	entries  []Entry
	byToken  map[int]grid.Position
}

// RegisterAll validates km and registers each position under TokenFor(pos).
// The first failure aborts with a *RegistrationError.
func RegisterAll(r Registrar, mod keys.Modifier, km KeyMap) (*Binding, error) {
	if err := km.Validate(); err != nil {
		return nil, err
	}

	b := &Binding{
		modifier: mod,
		entries:  make([]Entry, 0, len(km)),
		byToken:  make(map[int]grid.Position, len(km)),
	}
	for _, pos := range grid.Positions() {
		key := km[pos]
		token := TokenFor(pos)
		if err := r.RegisterHotkey(token, mod, key); err != nil {
			return nil, &RegistrationError{Position: pos, Key: key, Modifier: mod, Err: err}
		}
		b.entries = append(b.entries, Entry{Position: pos, Token: token, Key: key})
		b.byToken[token] = pos
	}
	return b, nil
}

// NewBinding builds a Binding without touching the OS. Useful for
// diagnostics and for callers that deliver tokens themselves.
func NewBinding(mod keys.Modifier, km KeyMap) (*Binding, error) {
	return RegisterAll(noopRegistrar{}, mod, km)
}

type noopRegistrar struct{}

func (noopRegistrar) RegisterHotkey(int, keys.Modifier, keys.Key) error { return nil }

// Decode returns the position registered under token. Unknown tokens
// decode to Middle.
func (b *Binding) Decode(token int) grid.Position {
	if b == nil {
		return grid.Middle
	}
	if pos, ok := b.byToken[token]; ok {
		return pos
	}
	return grid.Middle
}

// Known reports whether token was registered by this binding.
func (b *Binding) Known(token int) bool {
	if b == nil {
		return false
	}
	_, ok := b.byToken[token]
	return ok
}

// Entries lists the registered hotkeys in row-major order.
func (b *Binding) Entries() []Entry {
	if b == nil {
		return nil
	}
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Modifier returns the modifier shared by all entries.
func (b *Binding) Modifier() keys.Modifier {
	if b == nil {
		return 0
	}
	return b.modifier
}
