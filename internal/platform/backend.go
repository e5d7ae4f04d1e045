// Package platform isolates the window-system primitives gridsnap needs
// behind one interface, with an implementation per supported OS.
package platform

import (
	"context"
	"errors"

	"github.com/1broseidon/gridsnap/internal/grid"
	"github.com/1broseidon/gridsnap/internal/keys"
)

var (
	// ErrClosed is returned by NextActivation after Close, or when the
	// native event loop has ended.
	ErrClosed = errors.New("event loop closed")
	// ErrUnsupported is returned by New on operating systems without a
	// backend.
	ErrUnsupported = errors.New("window system not supported")
)

// WindowID is a platform-neutral window identifier.
type WindowID uintptr

// Backend abstracts window-system operations across platforms.
type Backend interface {
	// ActiveWindow returns the window that currently has input focus.
	ActiveWindow() (WindowID, error)
	// WorkArea returns the usable area of the display hosting the window.
	WorkArea(windowID WindowID) (grid.DisplayBounds, error)
	// MoveResize applies rect to the window. It fails if the window has
	// gone away.
	MoveResize(windowID WindowID, rect grid.Rect) error
	// RegisterHotkey registers a global hotkey delivered as token.
	RegisterHotkey(token int, mod keys.Modifier, key keys.Key) error
	// NextActivation blocks until a registered hotkey fires.
	NextActivation(ctx context.Context) (int, error)
	Close() error
}
