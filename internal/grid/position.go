package grid

import (
	"fmt"
	"strings"
)

// Position is a grid cell expressed as axis offsets. X and Y are each in
// {-1, 0, 1}: -1 pushes toward the left/top edge, 1 toward the right/bottom
// edge, 0 spans the full axis.
type Position struct {
	X int
	Y int
}

var (
	TopLeft     = Position{X: -1, Y: -1}
	Top         = Position{X: 0, Y: -1}
	TopRight    = Position{X: 1, Y: -1}
	Left        = Position{X: -1, Y: 0}
	Middle      = Position{X: 0, Y: 0}
	Right       = Position{X: 1, Y: 0}
	BottomLeft  = Position{X: -1, Y: 1}
	Bottom      = Position{X: 0, Y: 1}
	BottomRight = Position{X: 1, Y: 1}
)

var (
	rowNames   = [3]string{"Top", "", "Bottom"}
	colNames   = [3]string{"Left", "", "Right"}
	rowLabels  = [3]byte{'t', 'm', 'b'}
	colLabels  = [3]byte{'l', 'm', 'r'}
	byLookupID map[string]Position
)

func init() {
	byLookupID = make(map[string]Position, 18)
	for _, p := range Positions() {
		byLookupID[strings.ToLower(p.Name())] = p
		byLookupID[p.Label()] = p
	}
}

// Positions returns all nine positions in row-major order.
func Positions() []Position {
	out := make([]Position, 0, 9)
	for y := -1; y <= 1; y++ {
		for x := -1; x <= 1; x++ {
			out = append(out, Position{X: x, Y: y})
		}
	}
	return out
}

// Valid reports whether both offsets are in range.
func (p Position) Valid() bool {
	return p.X >= -1 && p.X <= 1 && p.Y >= -1 && p.Y <= 1
}

// Name returns the symbolic name, e.g. "TopLeft" or "Middle".
func (p Position) Name() string {
	if !p.Valid() {
		return fmt.Sprintf("Position(%d,%d)", p.X, p.Y)
	}
	if p == Middle {
		return "Middle"
	}
	return rowNames[p.Y+1] + colNames[p.X+1]
}

// Label returns the two-character row/column label ("tl", "mm", "br").
func (p Position) Label() string {
	if !p.Valid() {
		return ""
	}
	return string([]byte{rowLabels[p.Y+1], colLabels[p.X+1]})
}

func (p Position) String() string {
	return p.Name()
}

// ParsePosition accepts a symbolic name or a two-character label,
// case-insensitive.
func ParsePosition(s string) (Position, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if p, ok := byLookupID[key]; ok {
		return p, nil
	}
	return Position{}, fmt.Errorf("unknown grid position %q (expected one of %s)", s, strings.Join(Names(), ", "))
}

// Names returns the nine symbolic names in row-major order.
func Names() []string {
	positions := Positions()
	names := make([]string, len(positions))
	for i, p := range positions {
		names[i] = p.Name()
	}
	return names
}
