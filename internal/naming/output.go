// Package naming derives output file paths from input paths and presets.
package naming

import (
	"fmt"
	"path/filepath"
	"strings"

	"presetconv/internal/preset"
)

// OutputPath builds the canonical conversion target for input under preset p.
// The name encodes the preset so different presets never collide:
//
//	<stem>_<resolution>_<codec>_<bitrate>mbps.<ext>
//
// placed in the input's directory. Pure function of its arguments; re-running
// with the same inputs always yields the same path.
func OutputPath(input string, p preset.Preset) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	file := fmt.Sprintf("%s_%s_%s_%dmbps.%s",
		stem, p.Resolution.Name, p.Codec.Name, p.BitrateMbps, p.Codec.Extension)
	return filepath.Join(filepath.Dir(input), file)
}
