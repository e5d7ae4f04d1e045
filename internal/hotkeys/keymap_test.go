package hotkeys

import (
	"strings"
	"testing"

	"github.com/1broseidon/gridsnap/internal/grid"
)

func TestKeyMapFromBindings_OverridesDefaults(t *testing.T) {
	km, err := KeyMapFromBindings(map[string]string{
		"tl":     "q",
		"Bottom": "/",
	})
	if err != nil {
		t.Fatalf("KeyMapFromBindings: %v", err)
	}
	if km[grid.TopLeft] != "q" {
		t.Errorf("expected TopLeft=q, got %q", km[grid.TopLeft])
	}
	if km[grid.Bottom] != "slash" {
		t.Errorf("expected Bottom=slash, got %q", km[grid.Bottom])
	}
	if km[grid.Middle] != "k" {
		t.Errorf("expected Middle to keep default k, got %q", km[grid.Middle])
	}
}

func TestKeyMapFromBindings_EmptyIsDefault(t *testing.T) {
	km, err := KeyMapFromBindings(nil)
	if err != nil {
		t.Fatalf("KeyMapFromBindings: %v", err)
	}
	def := DefaultKeyMap()
	for pos, key := range def {
		if km[pos] != key {
			t.Errorf("%s: got %q, want %q", pos, km[pos], key)
		}
	}
}

func TestKeyMapFromBindings_Errors(t *testing.T) {
	tests := []struct {
		name     string
		bindings map[string]string
		contains string
	}{
		{"unknown position", map[string]string{"center": "k"}, "center"},
		{"unknown key", map[string]string{"tl": "hyper"}, "hyper"},
		{"duplicate key", map[string]string{"tl": "k"}, "bound to both"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := KeyMapFromBindings(tt.bindings)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Fatalf("expected error to contain %q, got %v", tt.contains, err)
			}
		})
	}
}
