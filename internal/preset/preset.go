// Package preset defines the fixed catalog of conversion presets. Each
// preset names a codec, an output resolution, and a target bitrate; the
// catalog is immutable package data resolved by name at startup.
package preset

import "fmt"

// Codec describes an output video codec: its short name, the container
// extension it is written to, and the ffmpeg encoder library producing it.
type Codec struct {
	Name      string
	Extension string
	Library   string
}

var (
	H265 = Codec{Name: "h265", Extension: "mp4", Library: "libx265"}
	AV1  = Codec{Name: "av1", Extension: "mkv", Library: "libaom-av1"}
)

// Resolution is a named output resolution with its ffmpeg scale expression.
type Resolution struct {
	Name  string
	Scale string // "width:height"
}

var (
	FHD = Resolution{Name: "fhd", Scale: "1920:1080"}
	UHD = Resolution{Name: "uhd", Scale: "3840:2160"}
)

// Preset is one named codec/resolution/bitrate combination.
type Preset struct {
	Name        string
	Codec       Codec
	Resolution  Resolution
	BitrateMbps int
}

// String renders the description shown by --list-presets.
func (p Preset) String() string {
	return fmt.Sprintf("codec:%s (ext:%s, lib:%s) %s:%s %dMbps",
		p.Codec.Name, p.Codec.Extension, p.Codec.Library,
		p.Resolution.Name, p.Resolution.Scale, p.BitrateMbps)
}

// catalog holds every preset in declaration order. The first entry is the
// default used when no --preset flag is given.
var catalog = []Preset{
	{Name: "h265_fhd_6", Codec: H265, Resolution: FHD, BitrateMbps: 6},
	{Name: "h265_uhd_40", Codec: H265, Resolution: UHD, BitrateMbps: 40},
	{Name: "av1_fhd_5", Codec: AV1, Resolution: FHD, BitrateMbps: 5},
	{Name: "av1_uhd_20", Codec: AV1, Resolution: UHD, BitrateMbps: 20},
}

// All returns every preset in declaration order.
func All() []Preset {
	out := make([]Preset, len(catalog))
	copy(out, catalog)
	return out
}

// Default returns the first declared preset.
func Default() Preset {
	return catalog[0]
}

// Lookup resolves a preset by name.
func Lookup(name string) (Preset, bool) {
	for _, p := range catalog {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Names returns every preset name in declaration order, for help text.
func Names() []string {
	names := make([]string, len(catalog))
	for i, p := range catalog {
		names[i] = p.Name
	}
	return names
}
