package config

// This file implements CLI flag parsing and help text. Flags are grouped
// into conversion, behavior, display, and utility. Override flags (--force,
// --no-color) are applied after Parse so Config defaults hold unless set.

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"presetconv/internal/preset"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("presetconv", flag.ContinueOnError)
	fs.Usage = func() { printUsage(version) }

	// Override flags: captured here and applied to cfg after Parse, so
	// that defaults from DefaultConfig() hold unless the user passes them.
	var ov overrideFlags

	fs.StringVar(&cfg.Input, "input", cfg.Input, "Input file or directory")
	fs.StringVar(&cfg.Input, "i", cfg.Input, "Same as --input")
	fs.StringVar(&cfg.PresetName, "preset", cfg.PresetName, "Conversion preset name")
	fs.StringVar(&cfg.PresetName, "p", cfg.PresetName, "Same as --preset")
	fs.BoolVar(&cfg.ListPresets, "list-presets", false, "List presets and exit")
	fs.BoolVar(&cfg.ListPresets, "l", false, "Same as --list-presets")

	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview only; do not convert")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.BoolVar(&ov.force, "force", false, "Overwrite existing output files")
	fs.BoolVar(&ov.force, "f", false, "Same as --force")

	fs.BoolVar(&ov.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&ov.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")

	fs.BoolVar(&ov.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&ov.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&ov.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&ov.showHelp, "h", false, "Same as --help")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if ov.showHelp {
		printUsage(version)
		os.Exit(0)
	}
	if ov.showVersion {
		fmt.Fprintln(os.Stdout, "presetconv v"+version)
		os.Exit(0)
	}

	if ov.force {
		cfg.SkipExisting = false
	}
	if ov.noColor {
		cfg.ColorMode = ColorNever
	} else if ov.forceColor {
		cfg.ColorMode = ColorAlways
	}
	return nil
}

// overrideFlags holds boolean flags applied after Parse. These either
// invert a default (force -> SkipExisting=false) or trigger exit.
type overrideFlags struct {
	force       bool
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "presetconv v" + version + " - preset-driven .mp4 batch converter"},
		{"", ""},
		{"  presetconv [OPTIONS] -i <path>", ""},
		{"", ""},
		{"Conversion", ""},
		{"  -i, --input <path>", "File or directory to scan for .mp4 inputs"},
		{"  -p, --preset <name>", "Preset: " + strings.Join(preset.Names(), ", ") + " (default: " + preset.Default().Name + ")"},
		{"  -l, --list-presets", "List presets with codec, resolution, bitrate"},
		{"", ""},
		{"Behavior", ""},
		{"  -f, --force", "Overwrite existing output files"},
		{"  -d, --dry-run", "Preview only; do not convert"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  --log <path>", "Append logs to file"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
