//go:build linux

package platform

import (
	"context"
	"errors"
	"fmt"

	"github.com/1broseidon/gridsnap/internal/grid"
	"github.com/1broseidon/gridsnap/internal/keys"
	"github.com/1broseidon/gridsnap/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
)

// LinuxBackend wraps an X11 connection behind the platform Backend interface.
type LinuxBackend struct {
	conn *x11.Connection
}

var _ Backend = (*LinuxBackend)(nil)

// New connects to the X server named by $DISPLAY.
func New() (Backend, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxBackend{conn: conn}, nil
}

// ActiveWindow returns the currently active/focused window ID.
func (b *LinuxBackend) ActiveWindow() (WindowID, error) {
	conn, err := b.connection()
	if err != nil {
		return 0, err
	}
	wid, err := conn.GetActiveWindow()
	if err != nil {
		return 0, err
	}
	return WindowID(wid), nil
}

// WorkArea reports the monitor work area as absolute edges, so Right and
// Bottom are x+width and y+height.
func (b *LinuxBackend) WorkArea(windowID WindowID) (grid.DisplayBounds, error) {
	conn, err := b.connection()
	if err != nil {
		return grid.DisplayBounds{}, err
	}
	mon, err := conn.WorkAreaForWindow(xproto.Window(windowID))
	if err != nil {
		return grid.DisplayBounds{}, err
	}
	return grid.DisplayBounds{
		Left:   mon.X,
		Top:    mon.Y,
		Right:  mon.X + mon.Width,
		Bottom: mon.Y + mon.Height,
	}, nil
}

// MoveResize moves and resizes a window to the specified bounds.
func (b *LinuxBackend) MoveResize(windowID WindowID, rect grid.Rect) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.MoveResizeWindow(xproto.Window(windowID), rect.X, rect.Y, rect.Width, rect.Height)
}

// RegisterHotkey grabs mod+key on the root window.
func (b *LinuxBackend) RegisterHotkey(token int, mod keys.Modifier, key keys.Key) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	keysym, ok := keys.Keysym(key)
	if !ok {
		return fmt.Errorf("no X11 keysym for key %q", key)
	}
	return conn.GrabHotkey(mod.X11()+keysym, token)
}

// NextActivation blocks on the X event loop for the next hotkey token.
func (b *LinuxBackend) NextActivation(ctx context.Context) (int, error) {
	conn, err := b.connection()
	if err != nil {
		return 0, err
	}
	token, err := conn.NextActivation(ctx)
	if errors.Is(err, x11.ErrClosed) {
		return 0, ErrClosed
	}
	return token, err
}

// Close releases hotkey grabs and disconnects from the X server.
func (b *LinuxBackend) Close() error {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
	return nil
}

func (b *LinuxBackend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, fmt.Errorf("x11 backend connection is nil")
	}
	return b.conn, nil
}
