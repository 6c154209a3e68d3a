// Command twowindows runs the two-window demo on the headless backend and
// prints the resulting render graph schedule.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/multiview"
	"github.com/gogpu/multiview/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "HCL configuration file")
		ticks      = flag.Int("ticks", 10, "number of ticks to run")
		samples    = flag.Uint("samples", 0, "MSAA sample count (overrides the config file)")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = *loaded
	}
	if err := overrideSamples(&cfg, *samples); err != nil {
		log.Fatalf("Invalid -samples: %v", err)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	app, err := multiview.New(append(cfg.Options(), multiview.WithLogger(logger))...)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}
	for range *ticks {
		if err := app.Tick(); err != nil {
			log.Fatalf("Failed: %v", err)
		}
	}

	fmt.Printf("state after %d ticks: %s\n", app.Ticks(), app.State())
	for i, name := range app.Schedule().Names() {
		fmt.Printf("%2d  %s\n", i, name)
	}
	if rec := app.LastFrame(); rec != nil {
		fmt.Printf("frame %d: %d passes\n", rec.Index, len(rec.Passes))
	}
	for _, id := range app.Overlay().Windows() {
		ctx := app.Overlay().Context(id)
		fmt.Printf("overlay %s: %d frames, %d commands\n", id, ctx.Frame(), len(ctx.Commands()))
	}
}

// overrideSamples applies a non-zero -samples value to cfg.
func overrideSamples(cfg *config.Config, samples uint) error {
	if samples == 0 {
		return nil
	}
	if samples > 8 || !config.ValidSampleCount(int(samples)) { //nolint:gosec // G115: bounded above
		return fmt.Errorf("%w: %d", config.ErrSampleCount, samples)
	}
	cfg.SampleCount = uint32(samples) //nolint:gosec // G115: bounded above
	return nil
}
