// Package daemon runs the hotkey event loop: wait for an activation, decode
// it to a grid position, tile the focused window, repeat.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/1broseidon/gridsnap/internal/grid"
	"github.com/1broseidon/gridsnap/internal/platform"
)

// ActivationSource yields hotkey tokens. platform.Backend satisfies it.
type ActivationSource interface {
	NextActivation(ctx context.Context) (int, error)
}

// Decoder maps a token to a grid position. hotkeys.Binding satisfies it.
type Decoder interface {
	Decode(token int) grid.Position
	Known(token int) bool
}

// Tiler applies a grid position to the focused window.
type Tiler interface {
	Tile(pos grid.Position) (grid.Rect, error)
}

// Driver processes activations strictly one at a time.
type Driver struct {
	source  ActivationSource
	decoder Decoder
	tiler   Tiler
	logger  *slog.Logger
}

// NewDriver creates a driver. A nil logger uses slog.Default().
func NewDriver(source ActivationSource, decoder Decoder, tiler Tiler, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{
		source:  source,
		decoder: decoder,
		tiler:   tiler,
		logger:  logger,
	}
}

// Run blocks until ctx is cancelled or the event source closes, both of
// which return nil. Failed activations are logged and skipped.
func (d *Driver) Run(ctx context.Context) error {
	d.logger.Info("waiting for hotkeys")

	for {
		token, err := d.source.NextActivation(ctx)
		switch {
		case err == nil:
		case errors.Is(err, platform.ErrClosed):
			d.logger.Info("event loop closed")
			return nil
		case ctx.Err() != nil:
			d.logger.Info("driver stopped")
			return nil
		default:
			return fmt.Errorf("wait for hotkey: %w", err)
		}

		d.handle(token)
	}
}

// handle tiles for one activation. It never fails the loop.
func (d *Driver) handle(token int) {
	// Recover from panics to prevent crashing the daemon
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("activation panic recovered", "token", token, "panic", r)
		}
	}()

	if !d.decoder.Known(token) {
		d.logger.Warn("unrecognized hotkey token, falling back to Middle", "token", token)
	}
	pos := d.decoder.Decode(token)

	rect, err := d.tiler.Tile(pos)
	if err != nil {
		d.logger.Warn("tile failed", "position", pos.Name(), "token", token, "error", err)
		return
	}
	d.logger.Info("tiled", "position", pos.Name(),
		"x", rect.X, "y", rect.Y, "width", rect.Width, "height", rect.Height)
}
