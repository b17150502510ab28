// Package logging constructs the process-wide logger. Color, level, and
// the optional file sink are decided once at startup; every component logs
// through the single instance built here.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"presetconv/internal/config"
)

// Logger wraps the hclog logger together with the optional log-file handle
// so the file can be flushed and closed at shutdown.
type Logger struct {
	hclog.Logger
	file *os.File
}

// New builds the logger from cfg. When cfg.LogFile is set, log lines are
// duplicated into the file (created or appended) and colors are disabled so
// the file stays free of escape codes. Call Close when done.
func New(cfg *config.Config) (*Logger, error) {
	level := hclog.Info
	if cfg.Verbose {
		level = hclog.Debug
	}

	color := hclog.AutoColor
	switch cfg.ColorMode {
	case config.ColorAlways:
		color = hclog.ForceColor
	case config.ColorNever:
		color = hclog.ColorOff
	}

	var out io.Writer = os.Stdout
	var file *os.File
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		file = f
		out = io.MultiWriter(os.Stdout, f)
		color = hclog.ColorOff
	}

	l := hclog.New(&hclog.LoggerOptions{
		Name:       "presetconv",
		Level:      level,
		Output:     out,
		Color:      color,
		TimeFormat: "2006-01-02 15:04:05",
	})

	return &Logger{Logger: l, file: file}, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}
