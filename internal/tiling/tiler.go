// Package tiling applies grid positions to the focused window.
package tiling

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/1broseidon/gridsnap/internal/grid"
	"github.com/1broseidon/gridsnap/internal/platform"
)

var (
	// ErrNoActiveWindow is returned when no window has input focus.
	ErrNoActiveWindow = errors.New("no active window")
	// ErrEmptyRect is returned when the gaps leave no room for the window.
	// The move is skipped rather than handing the OS a negative size.
	ErrEmptyRect = errors.New("computed tile has no usable size")
)

// WindowMover is the slice of platform.Backend the tiler needs.
type WindowMover interface {
	ActiveWindow() (platform.WindowID, error)
	WorkArea(windowID platform.WindowID) (grid.DisplayBounds, error)
	MoveResize(windowID platform.WindowID, rect grid.Rect) error
}

// Tiler moves the focused window into grid cells of its display.
type Tiler struct {
	mover  WindowMover
	gaps   grid.Gaps
	logger *slog.Logger
}

// NewTiler creates a new tiler instance
func NewTiler(mover WindowMover, gaps grid.Gaps, logger *slog.Logger) *Tiler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tiler{mover: mover, gaps: gaps, logger: logger}
}

// Tile moves the focused window to pos and returns the applied rect.
func (t *Tiler) Tile(pos grid.Position) (grid.Rect, error) {
	win, rect, err := t.target(pos)
	if err != nil {
		return grid.Rect{}, err
	}
	if rect.Empty() {
		return rect, fmt.Errorf("%s with gaps %+v: %w (%dx%d)", pos, t.gaps, ErrEmptyRect, rect.Width, rect.Height)
	}

	if err := t.mover.MoveResize(win, rect); err != nil {
		return rect, fmt.Errorf("move window %#x: %w", uintptr(win), err)
	}

	t.logger.Debug("tiled window",
		"position", pos.Name(),
		"window", fmt.Sprintf("%#x", uintptr(win)),
		"x", rect.X, "y", rect.Y, "width", rect.Width, "height", rect.Height)
	return rect, nil
}

// Preview returns the rect Tile would apply, without moving anything.
func (t *Tiler) Preview(pos grid.Position) (grid.Rect, error) {
	_, rect, err := t.target(pos)
	return rect, err
}

func (t *Tiler) target(pos grid.Position) (platform.WindowID, grid.Rect, error) {
	win, err := t.mover.ActiveWindow()
	if err != nil {
		return 0, grid.Rect{}, fmt.Errorf("%w: %v", ErrNoActiveWindow, err)
	}
	if win == 0 {
		return 0, grid.Rect{}, ErrNoActiveWindow
	}

	// Queried every time: the window may have changed displays.
	bounds, err := t.mover.WorkArea(win)
	if err != nil {
		return win, grid.Rect{}, fmt.Errorf("work area for window %#x: %w", uintptr(win), err)
	}
	return win, grid.Compute(pos, t.gaps, bounds), nil
}
