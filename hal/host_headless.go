//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	Keys    string
}

// Ticks the runner keeps stepping after a key script finishes, so the last
// render and log lines drain before exit.
const headlessTailTicks = 30

// RunHeadless runs the calculator without opening a window. When cfg.Keys
// is set, the script is fed to the key pad one key every other tick, and
// the runner exits shortly after the script completes (unless cfg.Ticks
// asks for more).
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := New().(*hostHAL)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	script := []rune(cfg.Keys)
	scripted := len(script) > 0

	var tick uint64
	var tail uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.step()
			if len(script) > 0 && tick%2 == 0 {
				if k, ok := KeyForRune(script[0]); ok {
					h.pad.push(k)
				}
				script = script[1:]
			}
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
			if cfg.Ticks == 0 && scripted && len(script) == 0 {
				tail++
				if tail >= headlessTailTicks {
					return nil
				}
			}
		}
	}
}
