// Package pipeline orchestrates file discovery, per-file conversion, and
// batch summary reporting.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"presetconv/internal/config"
	"presetconv/internal/display"
	"presetconv/internal/ffmpeg"
	"presetconv/internal/logging"
	"presetconv/internal/naming"
	"presetconv/internal/preset"
)

// Run is the top-level batch entry point. It discovers input files and
// converts each one sequentially, skipping files whose output already
// exists. The first conversion failure aborts the batch; remaining files
// are not attempted.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) RunStats {
	stats := RunStats{Start: time.Now()}
	pr := cfg.Preset()

	files, err := Discover(cfg.Input)
	if err != nil {
		log.Error("nothing to convert", "reason", err)
		return stats
	}

	stats.Total = len(files)
	log.Info("discovered inputs", "count", stats.Total, "preset", pr.Name)

	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("interrupted", "remaining", stats.Total-i)
			break
		}

		if !processFile(ctx, cfg, log, path, pr, &stats) {
			break
		}
		logProgress(log, &stats)
	}

	logSummary(cfg, log, &stats)
	return stats
}

// processFile converts one input. It returns false when the batch must
// abort: a vanished input or an ffmpeg failure. Skips return true.
func processFile(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	path string,
	pr preset.Preset,
	stats *RunStats,
) bool {
	output := naming.OutputPath(path, pr)
	log.Info(fmt.Sprintf("[%d/%d] converting", stats.Current, stats.Total),
		"input", path, "output", output)

	// Discovery already saw the file, but it may have vanished since.
	fi, err := os.Stat(path)
	if err != nil {
		log.Error("input file does not exist", "input", path)
		stats.Failed++
		return false
	}

	if cfg.SkipExisting {
		if _, err := os.Stat(output); err == nil {
			log.Warn("output already exists, skipping", "output", output)
			stats.Skipped++
			return true
		}
	}

	args := ffmpeg.Build(path, output, pr)
	log.Debug("ffmpeg command", "args", strings.Join(args, " "))

	if cfg.DryRun {
		log.Info("[dry] would convert", "output", output)
		stats.Converted++
		return true
	}

	result := ffmpeg.Execute(ctx, args)
	if result.Err != nil {
		log.Error("conversion failed", "input", path, "error", result.Err)
		logStderr(log, result.Stderr)
		stats.Failed++
		return false
	}

	stats.TotalInputBytes += fi.Size()
	if out, err := os.Stat(output); err == nil {
		stats.TotalOutputBytes += out.Size()
	}
	stats.Converted++
	log.Info("conversion completed", "output", output)
	return true
}

// logProgress reports cumulative elapsed time and the linear estimate of
// time left after each non-failed file.
func logProgress(log *logging.Logger, stats *RunStats) {
	elapsed := time.Since(stats.Start)
	log.Info("progress",
		"processed", fmt.Sprintf("%d/%d", stats.Current, stats.Total),
		"elapsed", display.FormatDuration(elapsed),
		"estimated_left", display.FormatDuration(stats.Remaining(elapsed)))
}

// logStderr relays the tail of ffmpeg's stderr so the failure cause is
// visible without rerunning by hand.
func logStderr(log *logging.Logger, stderr string) {
	if stderr == "" {
		return
	}
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	if len(lines) > 20 {
		lines = lines[len(lines)-20:]
	}
	for _, l := range lines {
		log.Error("ffmpeg: " + l)
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("done",
		"converted", stats.Converted,
		"skipped", stats.Skipped,
		"failed", stats.Failed,
		"elapsed", display.FormatDuration(time.Since(stats.Start)))

	if cfg.DryRun || stats.Converted == 0 {
		return
	}

	saved := stats.SpaceSaved()
	if saved >= 0 {
		log.Info("space saved",
			"saved", display.FormatBytes(saved),
			"input", display.FormatBytes(stats.TotalInputBytes),
			"output", display.FormatBytes(stats.TotalOutputBytes))
	} else {
		log.Warn("outputs larger than inputs",
			"grew", display.FormatBytes(-saved))
	}
}
