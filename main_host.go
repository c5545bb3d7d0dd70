//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"nanocalc/app"
	"nanocalc/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	splash := flag.Bool("splash", true, "Play the boot animation.")
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&cfg.Keys, "keys", "", `Key script to play in headless mode (e.g. "12+3=").`)
	flag.Parse()

	newApp := func(h hal.HAL) func() error {
		// A scripted run must not lose its first key to the splash skip.
		return app.NewWithConfig(h, app.Config{Splash: *splash && cfg.Keys == ""})
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
