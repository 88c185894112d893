// Package config defines the Windows Sandbox configuration record edited by
// wsbctl and its JSON document format.
//
// # Configuration
//
// Configuration is a flat value holding every setting wsbctl can write to a
// .wsb file:
//
//	cfg := config.Default()
//	cfg.ApplyPreset(config.PresetSecure)
//	if err := cfg.SetMemoryMB(8192); err != nil {
//	    // errors.ErrOutOfRange
//	}
//	cfg.AddMappedFolder(config.NewMappedFolder(`C:\Tools`))
//
// The record never touches the filesystem and never logs. Callers own
// reading and writing documents.
//
// # Presets
//
// Three presets set the seven sandbox feature toggles (GPU, networking,
// audio input, video input, printer and clipboard redirection, protected
// client) and nothing else:
//
//	secure   everything off, protected client on
//	default  GPU, networking and clipboard on
//	testing  everything on except protected client
//
// # JSON Documents
//
// Marshal and Parse convert a Configuration to and from the document saved
// by wsbctl. Parse(Marshal(c)) is Equal to c for every valid c. Parse fills
// missing keys with defaults, ignores unknown keys, drops malformed
// mapped folder entries one by one, and fails with
// errors.ErrMalformedDocument or errors.ErrOutOfRange otherwise.
package config
