//go:build windows

package platform

import (
	"context"
	"fmt"
	"runtime"
	"unsafe"

	"github.com/1broseidon/gridsnap/internal/grid"
	"github.com/1broseidon/gridsnap/internal/keys"
	"golang.org/x/sys/windows"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procGetForegroundWindow = user32.NewProc("GetForegroundWindow")
	procMonitorFromWindow   = user32.NewProc("MonitorFromWindow")
	procGetMonitorInfoW     = user32.NewProc("GetMonitorInfoW")
	procMoveWindow          = user32.NewProc("MoveWindow")
	procRegisterHotKey      = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey    = user32.NewProc("UnregisterHotKey")
	procGetMessageW         = user32.NewProc("GetMessageW")
	procPostThreadMessageW  = user32.NewProc("PostThreadMessageW")
)

const (
	monitorDefaultToNearest = 0x00000002
	wmQuit                  = 0x0012
	wmHotkey                = 0x0312
)

type rect struct {
	Left, Top, Right, Bottom int32
}

type monitorInfo struct {
	CbSize    uint32
	RcMonitor rect
	RcWork    rect
	DwFlags   uint32
}

type point struct {
	X, Y int32
}

type msg struct {
	Hwnd    windows.HWND
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      point
	private uint32
}

// WindowsBackend talks to user32 directly. Hotkeys are registered without a
// window, so WM_HOTKEY is posted to the registering thread's queue; all
// calls must come from the goroutine that created the backend.
type WindowsBackend struct {
	threadID uint32
	tokens   []int
}

var _ Backend = (*WindowsBackend)(nil)

// New pins the calling goroutine to its OS thread, which then owns the
// hotkeys and the message queue.
func New() (Backend, error) {
	runtime.LockOSThread()
	return &WindowsBackend{threadID: windows.GetCurrentThreadId()}, nil
}

// ActiveWindow returns the foreground window.
func (b *WindowsBackend) ActiveWindow() (WindowID, error) {
	hwnd, _, _ := procGetForegroundWindow.Call()
	if hwnd == 0 {
		return 0, fmt.Errorf("no foreground window")
	}
	return WindowID(hwnd), nil
}

// WorkArea returns rcWork of the monitor nearest to the window, copied
// field-for-field.
func (b *WindowsBackend) WorkArea(windowID WindowID) (grid.DisplayBounds, error) {
	hmon, _, _ := procMonitorFromWindow.Call(uintptr(windowID), monitorDefaultToNearest)
	if hmon == 0 {
		return grid.DisplayBounds{}, fmt.Errorf("no monitor for window %#x", uintptr(windowID))
	}

	info := monitorInfo{CbSize: uint32(unsafe.Sizeof(monitorInfo{}))}
	ok, _, err := procGetMonitorInfoW.Call(hmon, uintptr(unsafe.Pointer(&info)))
	if ok == 0 {
		return grid.DisplayBounds{}, fmt.Errorf("GetMonitorInfoW: %w", err)
	}

	return grid.DisplayBounds{
		Left:   int(info.RcWork.Left),
		Top:    int(info.RcWork.Top),
		Right:  int(info.RcWork.Right),
		Bottom: int(info.RcWork.Bottom),
	}, nil
}

// MoveResize repositions the window and repaints it.
func (b *WindowsBackend) MoveResize(windowID WindowID, r grid.Rect) error {
	ok, _, err := procMoveWindow.Call(
		uintptr(windowID),
		uintptr(int32(r.X)),
		uintptr(int32(r.Y)),
		uintptr(int32(r.Width)),
		uintptr(int32(r.Height)),
		1,
	)
	if ok == 0 {
		return fmt.Errorf("MoveWindow %#x: %w", uintptr(windowID), err)
	}
	return nil
}

// RegisterHotkey registers mod+key for the current thread under token.
func (b *WindowsBackend) RegisterHotkey(token int, mod keys.Modifier, key keys.Key) error {
	vk, ok := keys.VirtualKey(key)
	if !ok {
		return fmt.Errorf("no virtual-key code for key %q", key)
	}
	r, _, err := procRegisterHotKey.Call(0, uintptr(token), uintptr(mod.Win32()), uintptr(vk))
	if r == 0 {
		return fmt.Errorf("RegisterHotKey: %w", err)
	}
	b.tokens = append(b.tokens, token)
	return nil
}

// NextActivation pumps the thread message queue until WM_HOTKEY arrives.
// Cancelling ctx posts WM_QUIT to unblock GetMessageW.
func (b *WindowsBackend) NextActivation(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	stop := context.AfterFunc(ctx, func() {
		procPostThreadMessageW.Call(uintptr(b.threadID), wmQuit, 0, 0)
	})
	defer stop()

	var m msg
	for {
		r, _, err := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		switch int32(r) {
		case -1:
			return 0, fmt.Errorf("GetMessageW: %w", err)
		case 0:
			if ctx.Err() != nil {
				return 0, ctx.Err()
			}
			return 0, ErrClosed
		}
		if m.Message == wmHotkey {
			return int(m.WParam), nil
		}
	}
}

// Close unregisters every hotkey this backend registered.
func (b *WindowsBackend) Close() error {
	for _, token := range b.tokens {
		procUnregisterHotKey.Call(0, uintptr(token))
	}
	b.tokens = nil
	return nil
}
