// Package ffmpeg builds and executes ffmpeg command lines.
//
// Build produces the full argument vector for one conversion; Execute runs
// it synchronously and captures stderr for diagnostics. Paths travel as
// discrete argv entries, never through a shell, so filenames with spaces or
// metacharacters need no quoting.
package ffmpeg
