package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presetconv/internal/config"
)

func TestNew_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever

	l, err := New(&cfg)
	require.NoError(t, err)
	defer l.Close()

	l.Info("test message")
	assert.False(t, l.IsDebug())
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.Verbose = true

	l, err := New(&cfg)
	require.NoError(t, err)
	defer l.Close()

	assert.True(t, l.IsDebug())
}

func TestNew_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(dir, "logs", "presetconv.log")

	l, err := New(&cfg)
	require.NoError(t, err)

	l.Info("to file", "key", "value")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "to file")
	assert.Contains(t, string(b), "key=value")
	assert.NotContains(t, string(b), "\x1b[", "log file must not contain escape codes")
}

func TestClose_Idempotent(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(dir, "presetconv.log")

	l, err := New(&cfg)
	require.NoError(t, err)
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())
}
