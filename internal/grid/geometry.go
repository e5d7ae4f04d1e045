package grid

// Gaps holds the two pixel insets applied when tiling.
type Gaps struct {
	Gap     int // between a tiled window and its cell
	EdgeGap int // between the work area and the screen edge
}

// DisplayBounds is the work area of one display as reported by the OS.
//
// Compute reads Right and Bottom as the width and height of the area, the
// same way the raw work-area fields were used by earlier versions of this
// tool. That only matches the real geometry for work areas anchored at the
// origin.
type DisplayBounds struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Rect represents a window position and size
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Empty reports whether the rect has a non-positive width or height.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Compute returns the window rectangle for pos inside bounds.
//
// Oversized gaps yield negative dimensions; they are not clamped here.
func Compute(pos Position, gaps Gaps, bounds DisplayBounds) Rect {
	x, y := pos.X, pos.Y

	dx := bounds.Left + gaps.EdgeGap
	dy := bounds.Top + gaps.EdgeGap
	dw := bounds.Right - gaps.EdgeGap*2
	dh := bounds.Bottom - gaps.EdgeGap*2

	// Cells pushed toward an edge take half of that axis.
	width := dw
	if x != 0 {
		width = dw / 2
	}
	height := dh
	if y != 0 {
		height = dh / 2
	}

	wx := clampAxis(dx+x*dw, width, dx, dw)
	wy := clampAxis(dy+y*dh, height, dy, dh)

	return Rect{
		X:      wx + gaps.Gap,
		Y:      wy + gaps.Gap,
		Width:  width - gaps.Gap*2,
		Height: height - gaps.Gap*2,
	}
}

// clampAxis keeps [pos, pos+size] flush inside [origin, origin+extent].
func clampAxis(pos, size, origin, extent int) int {
	if pos < origin {
		return origin
	}
	if pos+size > origin+extent {
		return origin + extent - size
	}
	return pos
}
