package tiling

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/1broseidon/gridsnap/internal/grid"
	"github.com/1broseidon/gridsnap/internal/platform"
)

type fakeMover struct {
	active    platform.WindowID
	activeErr error
	bounds    map[platform.WindowID]grid.DisplayBounds
	moveErr   error

	workAreaCalls int
	moves         []grid.Rect
}

func (f *fakeMover) ActiveWindow() (platform.WindowID, error) {
	return f.active, f.activeErr
}

func (f *fakeMover) WorkArea(id platform.WindowID) (grid.DisplayBounds, error) {
	f.workAreaCalls++
	b, ok := f.bounds[id]
	if !ok {
		return grid.DisplayBounds{}, errors.New("no display")
	}
	return b, nil
}

func (f *fakeMover) MoveResize(id platform.WindowID, rect grid.Rect) error {
	if f.moveErr != nil {
		return f.moveErr
	}
	f.moves = append(f.moves, rect)
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTiler_TileMovesFocusedWindow(t *testing.T) {
	mover := &fakeMover{
		active: 42,
		bounds: map[platform.WindowID]grid.DisplayBounds{42: {Right: 1920, Bottom: 1080}},
	}
	tiler := NewTiler(mover, grid.Gaps{Gap: 10, EdgeGap: 20}, quietLogger())

	rect, err := tiler.Tile(grid.TopRight)
	if err != nil {
		t.Fatalf("Tile: %v", err)
	}
	want := grid.Rect{X: 970, Y: 30, Width: 920, Height: 500}
	if rect != want {
		t.Fatalf("expected %+v, got %+v", want, rect)
	}
	if len(mover.moves) != 1 || mover.moves[0] != want {
		t.Fatalf("expected one move to %+v, got %v", want, mover.moves)
	}
}

func TestTiler_QueriesWorkAreaEveryTime(t *testing.T) {
	mover := &fakeMover{
		active: 1,
		bounds: map[platform.WindowID]grid.DisplayBounds{1: {Right: 1920, Bottom: 1080}},
	}
	tiler := NewTiler(mover, grid.Gaps{}, quietLogger())

	if _, err := tiler.Tile(grid.Left); err != nil {
		t.Fatalf("Tile: %v", err)
	}
	// The window moved to a smaller display between activations.
	mover.bounds[1] = grid.DisplayBounds{Right: 1280, Bottom: 1024}
	rect, err := tiler.Tile(grid.Left)
	if err != nil {
		t.Fatalf("Tile: %v", err)
	}
	if rect.Width != 640 || rect.Height != 1024 {
		t.Fatalf("expected tile on new display bounds, got %+v", rect)
	}
	if mover.workAreaCalls != 2 {
		t.Fatalf("expected 2 work area queries, got %d", mover.workAreaCalls)
	}
}

func TestTiler_Errors(t *testing.T) {
	bounds := map[platform.WindowID]grid.DisplayBounds{7: {Right: 400, Bottom: 300}}
	moveErr := errors.New("invalid window handle")

	tests := []struct {
		name   string
		mover  *fakeMover
		gaps   grid.Gaps
		target error
	}{
		{"no focus", &fakeMover{active: 0, bounds: bounds}, grid.Gaps{}, ErrNoActiveWindow},
		{"focus query failed", &fakeMover{activeErr: errors.New("boom"), bounds: bounds}, grid.Gaps{}, ErrNoActiveWindow},
		{"oversized gap", &fakeMover{active: 7, bounds: bounds}, grid.Gaps{Gap: 200}, ErrEmptyRect},
		{"stale window", &fakeMover{active: 7, bounds: bounds, moveErr: moveErr}, grid.Gaps{}, moveErr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiler := NewTiler(tt.mover, tt.gaps, quietLogger())
			_, err := tiler.Tile(grid.Middle)
			if !errors.Is(err, tt.target) {
				t.Fatalf("expected %v, got %v", tt.target, err)
			}
			if len(tt.mover.moves) != 0 {
				t.Fatalf("expected no successful moves, got %v", tt.mover.moves)
			}
		})
	}
}

func TestTiler_PreviewDoesNotMove(t *testing.T) {
	mover := &fakeMover{
		active: 3,
		bounds: map[platform.WindowID]grid.DisplayBounds{3: {Right: 1920, Bottom: 1080}},
	}
	tiler := NewTiler(mover, grid.Gaps{}, quietLogger())

	rect, err := tiler.Preview(grid.Bottom)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if rect != (grid.Rect{X: 0, Y: 540, Width: 1920, Height: 540}) {
		t.Fatalf("unexpected preview %+v", rect)
	}
	if len(mover.moves) != 0 {
		t.Fatalf("preview moved the window")
	}
}
