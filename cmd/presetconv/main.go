// Command presetconv batch-converts .mp4 files with ffmpeg using named
// codec/resolution/bitrate presets.
//
// It parses flags, resolves the selected preset, and runs the sequential
// conversion pipeline over the discovered input files. Outputs land next to
// their inputs; files whose output already exists are skipped.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"presetconv/internal/config"
	"presetconv/internal/logging"
	"presetconv/internal/pipeline"
	"presetconv/internal/preset"
)

// version is injected at build time via -ldflags. When built with plain
// "go build" it retains the default.
var version = "1.0.0"

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once logging.New succeeds, all output
	// goes through the logger.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "presetconv: %v\n", err)
		return 1
	}

	if cfg.ListPresets {
		listPresets()
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "presetconv: %v\n", err)
		return 1
	}

	log, err := logging.New(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "presetconv: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available.
	log.Info("starting",
		"version", version,
		"input", cfg.Input,
		"preset", cfg.Preset().String())
	if cfg.DryRun {
		log.Warn("dry run, no files will be written")
	}

	// Phase 3: Signal handling — cancel the context on SIGINT/SIGTERM so
	// the batch stops without starting further files.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("received interrupt, stopping")
		cancel()
	}()

	// Phase 4: Run the batch (discover → build → execute per file).
	stats := pipeline.Run(ctx, &cfg, log)

	if stats.Failed > 0 {
		return 1
	}
	return 0
}

// listPresets prints every catalog entry with its description. Listing
// exits with status 1; see DESIGN.md.
func listPresets() {
	fmt.Println()
	fmt.Println("PRESETS:")
	for _, p := range preset.All() {
		fmt.Printf("  * %s: %s\n", p.Name, p)
	}
	fmt.Println()
}
