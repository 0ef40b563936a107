package game

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls a windowless run
type HeadlessConfig struct {
	Hz    int    // ticks per second, 60 when unset
	Ticks uint64 // stop after this many ticks, 0 runs until ctx is done
}

// RunHeadless drives d from a ticker instead of the ebiten loop.
// It returns nil after cfg.Ticks ticks, or ctx.Err() when cancelled first.
func RunHeadless(ctx context.Context, d *Driver, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	period := time.Second / time.Duration(cfg.Hz)
	if period <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(period)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C:
			d.Tick(now)
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
