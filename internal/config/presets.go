package config

import (
	"fmt"
	"strings"
)

// Preset is a named set of values for the seven sandbox feature toggles.
// Applying a preset leaves memory, hostname, logon command, dark mode and
// mapped folders untouched.
type Preset int

const (
	PresetSecure Preset = iota
	PresetDefault
	PresetTesting
)

// presetValues holds the toggles a preset forces.
type presetValues struct {
	vgpu, networking, audioInput, videoInput bool
	printer, clipboard, protectedClient      bool
}

var presetTable = map[Preset]presetValues{
	PresetSecure: {
		vgpu: false, networking: false, audioInput: false, videoInput: false,
		printer: false, clipboard: false, protectedClient: true,
	},
	PresetDefault: {
		vgpu: true, networking: true, audioInput: false, videoInput: false,
		printer: false, clipboard: true, protectedClient: false,
	},
	PresetTesting: {
		vgpu: true, networking: true, audioInput: true, videoInput: true,
		printer: true, clipboard: true, protectedClient: false,
	},
}

// Presets returns all presets in display order.
func Presets() []Preset {
	return []Preset{PresetSecure, PresetDefault, PresetTesting}
}

// ParsePreset looks up a preset by name, ignoring case.
func ParsePreset(name string) (Preset, error) {
	for _, p := range Presets() {
		if strings.EqualFold(p.String(), strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown preset %q (must be secure, default, or testing)", name)
}

func (p Preset) String() string {
	switch p {
	case PresetSecure:
		return "secure"
	case PresetDefault:
		return "default"
	case PresetTesting:
		return "testing"
	}
	return fmt.Sprintf("Preset(%d)", int(p))
}

// Description is a one-line summary for listings.
func (p Preset) Description() string {
	switch p {
	case PresetSecure:
		return "No GPU, network, devices or clipboard; protected client on"
	case PresetDefault:
		return "Windows Sandbox defaults: GPU, network and clipboard on"
	case PresetTesting:
		return "Everything on, including audio, video and printers"
	}
	return ""
}

// Apply returns a copy of c with the preset's toggles set.
// Unknown presets return c unchanged.
func (p Preset) Apply(c Configuration) Configuration {
	out := c.Clone()
	out.ApplyPreset(p)
	return out
}

// ApplyPreset sets the preset's toggles on c in place.
func (c *Configuration) ApplyPreset(p Preset) {
	v, ok := presetTable[p]
	if !ok {
		return
	}
	c.VGPUEnabled = v.vgpu
	c.NetworkingEnabled = v.networking
	c.AudioInputEnabled = v.audioInput
	c.VideoInputEnabled = v.videoInput
	c.PrinterRedirectionEnabled = v.printer
	c.ClipboardRedirectionEnabled = v.clipboard
	c.ProtectedClientEnabled = v.protectedClient
}
