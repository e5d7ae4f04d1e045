package x11

import (
	"context"
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
)

// GrabHotkey grabs keySequence (xgbutil syntax, e.g. "Mod1-comma") on the
// root window. Each press queues token for NextActivation. The grab fails
// if another client already owns the combination.
func (c *Connection) GrabHotkey(keySequence string, token int) error {
	err := keybind.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		select {
		case c.activations <- token:
		case <-c.closed:
		}
	}).Connect(c.XUtil, c.Root, keySequence, true)
	if err != nil {
		return fmt.Errorf("grab %q: %w", keySequence, err)
	}
	return nil
}

// NextActivation blocks until a grabbed hotkey fires and returns its token.
func (c *Connection) NextActivation(ctx context.Context) (int, error) {
	select {
	case <-c.closed:
		return 0, ErrClosed
	default:
	}
	c.startEventLoop()

	select {
	case token := <-c.activations:
		return token, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-c.closed:
		return 0, ErrClosed
	case <-c.loopDone:
		return 0, ErrClosed
	}
}

// configureIgnoreMods makes grabs fire regardless of CapsLock, NumLock and
// ScrollLock state.
func configureIgnoreMods(xu *xgbutil.XUtil) {
	caps := uint16(xproto.ModMaskLock)

	numLock := modMaskForKeysym(xu, "Num_Lock")
	scrollLock := modMaskForKeysym(xu, "Scroll_Lock")

	base := []uint16{caps}
	if numLock != 0 && numLock != caps {
		base = append(base, numLock)
	}
	if scrollLock != 0 && scrollLock != caps && scrollLock != numLock {
		base = append(base, scrollLock)
	}

	// Every subset of the lock masks, including the empty one.
	ignore := make([]uint16, 0, 1<<len(base))
	for subset := 0; subset < (1 << len(base)); subset++ {
		var mask uint16
		for bit := range base {
			if subset&(1<<bit) != 0 {
				mask |= base[bit]
			}
		}
		ignore = append(ignore, mask)
	}

	xevent.IgnoreMods = ignore
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}
