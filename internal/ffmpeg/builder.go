package ffmpeg

import "presetconv/internal/preset"

// Fixed encode parameters applied to every conversion.
const (
	// crf is the constant rate factor passed to the encoder.
	crf = "23"
	// speedPreset is the encoder speed/quality tradeoff.
	speedPreset = "medium"
)

// Build constructs the complete ffmpeg argument slice for one file. The
// video stream is re-encoded with the preset's library and scaled to the
// preset's resolution; audio is stream-copied untouched. Pure function, no
// filesystem access.
func Build(input, output string, p preset.Preset) []string {
	return []string{
		"ffmpeg",
		"-hide_banner", "-nostdin",
		"-i", input,
		"-c:v", p.Codec.Library,
		"-crf", crf,
		"-preset", speedPreset,
		"-vf", "scale=" + p.Resolution.Scale,
		"-c:a", "copy",
		"-loglevel", "error",
		output,
	}
}
