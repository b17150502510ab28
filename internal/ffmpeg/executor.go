package ffmpeg

import (
	"bytes"
	"context"
	"os/exec"
)

// ExecResult holds the outcome of a single ffmpeg invocation.
type ExecResult struct {
	Stderr string
	Err    error
}

// Execute runs the argument vector built by [Build], blocking until the
// process exits. Stderr is captured for failure diagnostics; ffmpeg itself
// runs at -loglevel error so the capture stays small. Cancelling ctx kills
// the process.
func Execute(ctx context.Context, args []string) ExecResult {
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stderrBuf bytes.Buffer
	cmd.Stderr = &stderrBuf

	err := cmd.Run()
	return ExecResult{
		Stderr: stderrBuf.String(),
		Err:    err,
	}
}
