package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// Monitor represents a physical display
type Monitor struct {
	ID     int
	Name   string
	X      int
	Y      int
	Width  int
	Height int
}

func (m Monitor) contains(x, y int) bool {
	return x >= m.X && x < m.X+m.Width && y >= m.Y && y < m.Y+m.Height
}

// GetMonitors retrieves all active monitors using XRandR
func (c *Connection) GetMonitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		// Disabled CRTC.
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}

		name := fmt.Sprintf("Monitor%d", i)
		if out, err := randr.GetOutputInfo(c.XUtil.Conn(), info.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			name = string(out.Name)
		}

		monitors = append(monitors, Monitor{
			ID:     i,
			Name:   name,
			X:      int(info.X),
			Y:      int(info.Y),
			Width:  int(info.Width),
			Height: int(info.Height),
		})
	}

	return monitors, nil
}

// WorkAreaForWindow returns the usable area (panels and docks excluded) of
// the monitor hosting windowID. The monitor is picked by the window center,
// then by the pointer, then the first monitor.
func (c *Connection) WorkAreaForWindow(windowID xproto.Window) (Monitor, error) {
	monitors, err := c.GetMonitors()
	if err != nil {
		return Monitor{}, err
	}
	if len(monitors) == 0 {
		return Monitor{}, fmt.Errorf("no monitors found")
	}

	mon, ok := c.monitorForWindow(monitors, windowID)
	if !ok {
		mon, ok = c.monitorForPointer(monitors)
	}
	if !ok {
		mon = monitors[0]
	}

	if !c.applyDockStruts(&mon) {
		c.applyWorkarea(&mon)
	}
	return mon, nil
}

// applyWorkarea intersects mon with _NET_WORKAREA of the current desktop.
func (c *Connection) applyWorkarea(mon *Monitor) {
	areas, err := ewmh.WorkareaGet(c.XUtil)
	if err != nil || len(areas) == 0 {
		return
	}

	idx := 0
	if desktop, err := ewmh.CurrentDesktopGet(c.XUtil); err == nil && int(desktop) < len(areas) {
		idx = int(desktop)
	}
	wa := areas[idx]

	isect := intersect(
		span{mon.X, mon.Y, mon.X + mon.Width, mon.Y + mon.Height},
		span{int(wa.X), int(wa.Y), int(wa.X) + int(wa.Width), int(wa.Y) + int(wa.Height)},
	)
	if isect.empty() {
		return
	}
	mon.X, mon.Y = isect.x1, isect.y1
	mon.Width, mon.Height = isect.x2-isect.x1, isect.y2-isect.y1
}

// applyDockStruts shrinks mon by the struts that dock windows reserve on it.
// It reports false when no dock reserves space, so the caller can fall back
// to _NET_WORKAREA.
func (c *Connection) applyDockStruts(mon *Monitor) bool {
	rootGeom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(c.Root)).Reply()
	if err != nil {
		return false
	}
	rootW, rootH := int(rootGeom.Width), int(rootGeom.Height)

	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return false
	}

	var left, right, top, bottom int
	for _, win := range clients {
		if !c.isDock(win) {
			continue
		}
		sp, ok := c.strutFor(win, rootW, rootH)
		if !ok {
			continue
		}

		m := span{mon.X, mon.Y, mon.X + mon.Width, mon.Y + mon.Height}
		if sp.Top > 0 {
			top = max(top, intersect(m, span{int(sp.TopStartX), 0, int(sp.TopEndX) + 1, int(sp.Top)}).height())
		}
		if sp.Bottom > 0 {
			bottom = max(bottom, intersect(m, span{int(sp.BottomStartX), rootH - int(sp.Bottom), int(sp.BottomEndX) + 1, rootH}).height())
		}
		if sp.Left > 0 {
			left = max(left, intersect(m, span{0, int(sp.LeftStartY), int(sp.Left), int(sp.LeftEndY) + 1}).width())
		}
		if sp.Right > 0 {
			right = max(right, intersect(m, span{rootW - int(sp.Right), int(sp.RightStartY), rootW, int(sp.RightEndY) + 1}).width())
		}
	}

	if left == 0 && right == 0 && top == 0 && bottom == 0 {
		return false
	}

	mon.X += left
	mon.Y += top
	mon.Width = max(mon.Width-(left+right), 1)
	mon.Height = max(mon.Height-(top+bottom), 1)
	return true
}

func (c *Connection) isDock(win xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, win)
	if err != nil {
		return false
	}
	for _, t := range types {
		if t == "_NET_WM_WINDOW_TYPE_DOCK" {
			return true
		}
	}
	return false
}

// strutFor reads _NET_WM_STRUT_PARTIAL, widening a plain _NET_WM_STRUT to
// the full root extent when only that is set.
func (c *Connection) strutFor(win xproto.Window, rootW, rootH int) (*ewmh.WmStrutPartial, bool) {
	if sp, err := ewmh.WmStrutPartialGet(c.XUtil, win); err == nil {
		return sp, true
	}
	s, err := ewmh.WmStrutGet(c.XUtil, win)
	if err != nil {
		return nil, false
	}
	return &ewmh.WmStrutPartial{
		Left:       s.Left,
		Right:      s.Right,
		Top:        s.Top,
		Bottom:     s.Bottom,
		LeftEndY:   uint(rootH - 1),
		RightEndY:  uint(rootH - 1),
		TopEndX:    uint(rootW - 1),
		BottomEndX: uint(rootW - 1),
	}, true
}

func (c *Connection) monitorForWindow(monitors []Monitor, windowID xproto.Window) (Monitor, bool) {
	if windowID == 0 {
		return Monitor{}, false
	}
	geom, err := c.WindowGeometry(windowID)
	if err != nil {
		return Monitor{}, false
	}
	cx, cy := geom.X+geom.Width/2, geom.Y+geom.Height/2
	for _, m := range monitors {
		if m.contains(cx, cy) {
			return m, true
		}
	}
	return Monitor{}, false
}

func (c *Connection) monitorForPointer(monitors []Monitor) (Monitor, bool) {
	pointer, err := xproto.QueryPointer(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return Monitor{}, false
	}
	for _, m := range monitors {
		if m.contains(int(pointer.RootX), int(pointer.RootY)) {
			return m, true
		}
	}
	return Monitor{}, false
}

// span is a half-open rectangle [x1,x2) x [y1,y2).
type span struct {
	x1, y1, x2, y2 int
}

func (s span) width() int {
	if s.empty() {
		return 0
	}
	return s.x2 - s.x1
}

func (s span) height() int {
	if s.empty() {
		return 0
	}
	return s.y2 - s.y1
}

func (s span) empty() bool {
	return s.x2 <= s.x1 || s.y2 <= s.y1
}

func intersect(a, b span) span {
	return span{max(a.x1, b.x1), max(a.y1, b.y1), min(a.x2, b.x2), min(a.y2, b.y2)}
}
