// Package mcp exposes window tiling as MCP tools over stdio.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/gridsnap/internal/grid"
	"github.com/1broseidon/gridsnap/internal/hotkeys"
)

const (
	ServerName    = "gridsnap"
	ServerVersion = "0.1.0"
)

// ErrNoBackend is returned by tile_window when no display is available.
var ErrNoBackend = errors.New("no window system backend available")

// Tiler moves the focused window to a grid position.
type Tiler interface {
	Tile(pos grid.Position) (grid.Rect, error)
}

// Server is the MCP server for gridsnap.
type Server struct {
	mcpServer *mcpsdk.Server
	tiler     Tiler
	binding   *hotkeys.Binding
	gaps      grid.Gaps
	logger    *slog.Logger
}

// NewServer creates an MCP server. tiler may be nil, in which case only the
// pure tools work.
func NewServer(tiler Tiler, binding *hotkeys.Binding, gaps grid.Gaps, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		tiler:   tiler,
		binding: binding,
		gaps:    gaps,
		logger:  logger,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)
	s.registerTools()
	return s
}

// Run starts the MCP server on stdio and blocks until ctx is done or the
// client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "tile_window",
		Description: "Move and resize the focused window into one of nine grid positions on its current display. Accepts a name (TopLeft, Top, TopRight, Left, Middle, Right, BottomLeft, Bottom, BottomRight) or a two-letter label (tl, tm, tr, ml, mm, mr, bl, bm, br).",
	}, s.handleTileWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "compute_tile",
		Description: "Compute the rectangle a grid position would occupy within the given work area, without moving any window. Gaps default to the configured values.",
	}, s.handleComputeTile)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_positions",
		Description: "List the nine grid positions with their labels, hotkey tokens and bound hotkeys.",
	}, s.handleListPositions)
}

func (s *Server) handleTileWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args TileWindowInput) (*mcpsdk.CallToolResult, RectOutput, error) {
	pos, err := grid.ParsePosition(args.Position)
	if err != nil {
		return nil, RectOutput{}, err
	}
	if s.tiler == nil {
		return nil, RectOutput{}, ErrNoBackend
	}

	rect, err := s.tiler.Tile(pos)
	if err != nil {
		s.logger.Warn("tile_window failed", "position", pos.Name(), "error", err)
		return nil, RectOutput{}, fmt.Errorf("tile %s: %w", pos.Name(), err)
	}
	return nil, rectOutput(pos, rect), nil
}

func (s *Server) handleComputeTile(_ context.Context, _ *mcpsdk.CallToolRequest, args ComputeTileInput) (*mcpsdk.CallToolResult, RectOutput, error) {
	pos, err := grid.ParsePosition(args.Position)
	if err != nil {
		return nil, RectOutput{}, err
	}

	gaps := s.gaps
	if args.Gap != nil {
		gaps.Gap = *args.Gap
	}
	if args.EdgeGap != nil {
		gaps.EdgeGap = *args.EdgeGap
	}
	if gaps.Gap < 0 || gaps.EdgeGap < 0 {
		return nil, RectOutput{}, fmt.Errorf("gaps must be non-negative (gap=%d, edge_gap=%d)", gaps.Gap, gaps.EdgeGap)
	}

	bounds := grid.DisplayBounds{Left: args.Left, Top: args.Top, Right: args.Right, Bottom: args.Bottom}
	return nil, rectOutput(pos, grid.Compute(pos, gaps, bounds)), nil
}

func (s *Server) handleListPositions(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListPositionsInput) (*mcpsdk.CallToolResult, ListPositionsOutput, error) {
	return nil, ListPositionsOutput{Positions: positionTable(s.binding)}, nil
}

func positionTable(b *hotkeys.Binding) []PositionInfo {
	infos := make([]PositionInfo, 0, len(grid.Positions()))
	if b == nil {
		for _, pos := range grid.Positions() {
			infos = append(infos, PositionInfo{Name: pos.Name(), Label: pos.Label(), Token: hotkeys.TokenFor(pos)})
		}
		return infos
	}
	for _, e := range b.Entries() {
		infos = append(infos, PositionInfo{
			Name:   e.Position.Name(),
			Label:  e.Position.Label(),
			Token:  e.Token,
			Hotkey: b.Modifier().String() + "+" + string(e.Key),
		})
	}
	return infos
}

func rectOutput(pos grid.Position, r grid.Rect) RectOutput {
	return RectOutput{
		Position: pos.Name(),
		X:        r.X,
		Y:        r.Y,
		Width:    r.Width,
		Height:   r.Height,
	}
}
