package mcp

// TileWindowInput is the input for the tile_window tool.
type TileWindowInput struct {
	Position string `json:"position" jsonschema:"Grid position name or label (e.g. TopLeft, tl, Middle, mm)"`
}

// RectOutput is a window rectangle in screen pixels.
type RectOutput struct {
	Position string `json:"position"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// ComputeTileInput is the input for the compute_tile tool.
type ComputeTileInput struct {
	Position string `json:"position" jsonschema:"Grid position name or label"`
	Left     int    `json:"left" jsonschema:"Work area left edge"`
	Top      int    `json:"top" jsonschema:"Work area top edge"`
	Right    int    `json:"right" jsonschema:"Work area right edge, read as a width"`
	Bottom   int    `json:"bottom" jsonschema:"Work area bottom edge, read as a height"`
	Gap      *int   `json:"gap,omitempty" jsonschema:"Gap between windows (default: configured gap)"`
	EdgeGap  *int   `json:"edge_gap,omitempty" jsonschema:"Gap at the screen edges (default: configured edge_gap)"`
}

// ListPositionsInput is the input for the list_positions tool.
type ListPositionsInput struct{}

// PositionInfo describes one bound grid position.
type PositionInfo struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Token  int    `json:"token"`
	Hotkey string `json:"hotkey"`
}

// ListPositionsOutput is the output for the list_positions tool.
type ListPositionsOutput struct {
	Positions []PositionInfo `json:"positions"`
}
