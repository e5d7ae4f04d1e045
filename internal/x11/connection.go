package x11

import (
	"errors"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
)

// ErrClosed is returned by NextActivation once the connection is closed or
// the X event loop has stopped.
var ErrClosed = errors.New("x11 connection closed")

// Connection manages the X11 connection and core X resources
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window

	activations chan int
	loopOnce    sync.Once
	loopDone    chan struct{}
	closeOnce   sync.Once
	closed      chan struct{}
}

var ignoreModsOnce sync.Once

// NewConnection establishes a connection to the X11 server and initializes
// the keybind module required for global hotkeys.
func NewConnection() (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}

	keybind.Initialize(xu)
	ignoreModsOnce.Do(func() {
		configureIgnoreMods(xu)
	})

	return &Connection{
		XUtil:       xu,
		Root:        xu.RootWin(),
		activations: make(chan int, 16),
		loopDone:    make(chan struct{}),
		closed:      make(chan struct{}),
	}, nil
}

// startEventLoop runs xevent.Main in the background exactly once.
func (c *Connection) startEventLoop() {
	c.loopOnce.Do(func() {
		go func() {
			defer close(c.loopDone)
			xevent.Main(c.XUtil)
		}()
	})
}

// Close stops the event loop and disconnects from the X11 server.
func (c *Connection) Close() {
	c.closeOnce.Do(func() {
		close(c.closed)
		xevent.Quit(c.XUtil)
		c.XUtil.Conn().Close()
	})
}
