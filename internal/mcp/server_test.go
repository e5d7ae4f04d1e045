package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/1broseidon/gridsnap/internal/grid"
	"github.com/1broseidon/gridsnap/internal/hotkeys"
	"github.com/1broseidon/gridsnap/internal/keys"
)

type stubTiler struct {
	got  []grid.Position
	rect grid.Rect
	err  error
}

func (s *stubTiler) Tile(pos grid.Position) (grid.Rect, error) {
	s.got = append(s.got, pos)
	return s.rect, s.err
}

func intPtr(v int) *int { return &v }

func newTestServer(t *testing.T, tiler Tiler) *Server {
	t.Helper()
	b, err := hotkeys.NewBinding(keys.Alt, hotkeys.DefaultKeyMap())
	if err != nil {
		t.Fatalf("NewBinding: %v", err)
	}
	return NewServer(tiler, b, grid.Gaps{Gap: 10, EdgeGap: 20}, nil)
}

func TestHandleComputeTile(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name string
		in   ComputeTileInput
		want RectOutput
	}{
		{
			name: "configured gaps",
			in:   ComputeTileInput{Position: "TopRight", Right: 1920, Bottom: 1080},
			want: RectOutput{Position: "TopRight", X: 970, Y: 30, Width: 920, Height: 500},
		},
		{
			name: "gap overrides by label",
			in:   ComputeTileInput{Position: "ml", Right: 1920, Bottom: 1080, Gap: intPtr(0), EdgeGap: intPtr(0)},
			want: RectOutput{Position: "Left", X: 0, Y: 0, Width: 960, Height: 1080},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got, err := s.handleComputeTile(context.Background(), nil, tt.in)
			if err != nil {
				t.Fatalf("handleComputeTile: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHandleComputeTile_Errors(t *testing.T) {
	s := newTestServer(t, nil)

	if _, _, err := s.handleComputeTile(context.Background(), nil, ComputeTileInput{Position: "center"}); err == nil {
		t.Fatal("expected unknown position to fail")
	}
	_, _, err := s.handleComputeTile(context.Background(), nil, ComputeTileInput{Position: "mm", Gap: intPtr(-1)})
	if err == nil || !strings.Contains(err.Error(), "non-negative") {
		t.Fatalf("expected negative gap error, got %v", err)
	}
}

func TestHandleTileWindow(t *testing.T) {
	tiler := &stubTiler{rect: grid.Rect{X: 1, Y: 2, Width: 3, Height: 4}}
	s := newTestServer(t, tiler)

	_, got, err := s.handleTileWindow(context.Background(), nil, TileWindowInput{Position: "br"})
	if err != nil {
		t.Fatalf("handleTileWindow: %v", err)
	}
	if len(tiler.got) != 1 || tiler.got[0] != grid.BottomRight {
		t.Fatalf("expected BottomRight to be tiled, got %v", tiler.got)
	}
	want := RectOutput{Position: "BottomRight", X: 1, Y: 2, Width: 3, Height: 4}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestHandleTileWindow_Errors(t *testing.T) {
	boom := errors.New("no focused window")

	tests := []struct {
		name    string
		tiler   Tiler
		pos     string
		wantErr error
	}{
		{"no backend", nil, "Middle", ErrNoBackend},
		{"tiler failure", &stubTiler{err: boom}, "Middle", boom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, tt.tiler)
			_, _, err := s.handleTileWindow(context.Background(), nil, TileWindowInput{Position: tt.pos})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	tiler := &stubTiler{}
	s := newTestServer(t, tiler)
	if _, _, err := s.handleTileWindow(context.Background(), nil, TileWindowInput{Position: "nowhere"}); err == nil {
		t.Fatal("expected parse error")
	}
	if len(tiler.got) != 0 {
		t.Fatal("tiler must not run for an invalid position")
	}
}

func TestHandleListPositions(t *testing.T) {
	s := newTestServer(t, nil)

	_, out, err := s.handleListPositions(context.Background(), nil, ListPositionsInput{})
	if err != nil {
		t.Fatalf("handleListPositions: %v", err)
	}
	if len(out.Positions) != 9 {
		t.Fatalf("expected 9 positions, got %d", len(out.Positions))
	}
	first, last := out.Positions[0], out.Positions[8]
	if first.Name != "TopLeft" || first.Label != "tl" || first.Token != 1 || first.Hotkey != "alt+u" {
		t.Errorf("unexpected first entry %+v", first)
	}
	if last.Name != "BottomRight" || last.Token != 9 || last.Hotkey != "alt+period" {
		t.Errorf("unexpected last entry %+v", last)
	}
}
