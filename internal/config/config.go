package config

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/sandboxgui/wsbctl/internal/errors"
)

const (
	// DefaultMemoryMB is the memory Windows Sandbox assigns when MemoryInMB is absent.
	DefaultMemoryMB = 4096
	MinMemoryMB     = 512
	MaxMemoryMB     = 32768

	// MaxHostnameLength is the NetBIOS computer name limit.
	MaxHostnameLength = 15

	// DefaultSandboxFolder is where new mapped folders appear inside the sandbox.
	DefaultSandboxFolder = `C:\Users\WDAGUtilityAccount\Desktop\Shared`
)

// MappedFolder exposes a host directory inside the sandbox.
type MappedFolder struct {
	HostFolder    string `json:"host_folder"`
	SandboxFolder string `json:"sandbox_folder"`
	ReadOnly      bool   `json:"read_only"`
}

// NewMappedFolder returns a read-only mapping of hostFolder to the
// default sandbox folder.
func NewMappedFolder(hostFolder string) MappedFolder {
	return MappedFolder{
		HostFolder:    hostFolder,
		SandboxFolder: DefaultSandboxFolder,
		ReadOnly:      true,
	}
}

// Usable reports whether the folder has both paths set. Folders that
// are not usable are left out of the exported WSB file.
func (f MappedFolder) Usable() bool {
	return f.HostFolder != "" && f.SandboxFolder != ""
}

// Configuration is the full set of Windows Sandbox settings edited by wsbctl.
// It is a plain value: copy it with Clone and compare it with Equal.
type Configuration struct {
	VGPUEnabled                 bool           `json:"vgpu_enabled"`
	NetworkingEnabled           bool           `json:"networking_enabled"`
	AudioInputEnabled           bool           `json:"audio_input_enabled"`
	VideoInputEnabled           bool           `json:"video_input_enabled"`
	ProtectedClientEnabled      bool           `json:"protected_client_enabled"`
	PrinterRedirectionEnabled   bool           `json:"printer_redirection_enabled"`
	ClipboardRedirectionEnabled bool           `json:"clipboard_redirection_enabled"`
	MemoryMB                    int            `json:"memory_mb"`
	LogonCommand                string         `json:"logon_command"`
	MappedFolders               []MappedFolder `json:"mapped_folders"`
	HostnameEnabled             bool           `json:"hostname_enabled"`
	HostnameValue               string         `json:"hostname_value"`
	ForceDarkMode               bool           `json:"force_dark_mode"`
}

// Default returns a Configuration holding the Windows Sandbox defaults.
func Default() Configuration {
	return Configuration{
		VGPUEnabled:                 true,
		NetworkingEnabled:           true,
		AudioInputEnabled:           false,
		VideoInputEnabled:           false,
		ProtectedClientEnabled:      false,
		PrinterRedirectionEnabled:   false,
		ClipboardRedirectionEnabled: true,
		MemoryMB:                    DefaultMemoryMB,
		LogonCommand:                "",
		MappedFolders:               []MappedFolder{},
		HostnameEnabled:             false,
		HostnameValue:               "",
		ForceDarkMode:               false,
	}
}

// Reset restores every field to its default.
func (c *Configuration) Reset() {
	*c = Default()
}

// Clone returns a copy that shares no memory with c.
func (c Configuration) Clone() Configuration {
	out := c
	out.MappedFolders = slices.Clone(c.MappedFolders)
	if out.MappedFolders == nil {
		out.MappedFolders = []MappedFolder{}
	}
	return out
}

// Equal reports whether c and other hold the same settings.
// A nil and an empty folder list are equal.
func (c Configuration) Equal(other Configuration) bool {
	return c.VGPUEnabled == other.VGPUEnabled &&
		c.NetworkingEnabled == other.NetworkingEnabled &&
		c.AudioInputEnabled == other.AudioInputEnabled &&
		c.VideoInputEnabled == other.VideoInputEnabled &&
		c.ProtectedClientEnabled == other.ProtectedClientEnabled &&
		c.PrinterRedirectionEnabled == other.PrinterRedirectionEnabled &&
		c.ClipboardRedirectionEnabled == other.ClipboardRedirectionEnabled &&
		c.MemoryMB == other.MemoryMB &&
		c.LogonCommand == other.LogonCommand &&
		c.HostnameEnabled == other.HostnameEnabled &&
		c.HostnameValue == other.HostnameValue &&
		c.ForceDarkMode == other.ForceDarkMode &&
		slices.Equal(c.MappedFolders, other.MappedFolders)
}

// Validate checks the range constraints of the record. Text fields must be
// valid UTF-8, since JSON cannot carry anything else.
func (c *Configuration) Validate() error {
	if err := validateMemory(c.MemoryMB); err != nil {
		return err
	}
	if err := validateHostname(c.HostnameValue); err != nil {
		return err
	}
	if err := validateText(keyLogonCommand, c.LogonCommand); err != nil {
		return err
	}
	if err := validateText(keyHostnameValue, c.HostnameValue); err != nil {
		return err
	}
	for i, f := range c.MappedFolders {
		if err := validateText(fmt.Sprintf("mapped_folders[%d].%s", i, keyHostFolder), f.HostFolder); err != nil {
			return err
		}
		if err := validateText(fmt.Sprintf("mapped_folders[%d].%s", i, keySandboxFolder), f.SandboxFolder); err != nil {
			return err
		}
	}
	return nil
}

func validateText(field, s string) error {
	if !utf8.ValidString(s) {
		return errors.ValidationError(field + " is not valid UTF-8")
	}
	return nil
}

func validateMemory(mb int) error {
	if mb < MinMemoryMB || mb > MaxMemoryMB {
		return errors.OutOfRange("memory_mb", mb, MinMemoryMB, MaxMemoryMB)
	}
	return nil
}

func validateHostname(name string) error {
	if n := utf8.RuneCountInString(name); n > MaxHostnameLength {
		return errors.OutOfRangef("hostname_value must be at most %d characters (got %d)", MaxHostnameLength, n)
	}
	return nil
}

// SetMemoryMB sets the sandbox memory, rejecting values outside 512-32768.
func (c *Configuration) SetMemoryMB(mb int) error {
	if err := validateMemory(mb); err != nil {
		return err
	}
	c.MemoryMB = mb
	return nil
}

// SetHostname sets the custom hostname and whether it is used.
func (c *Configuration) SetHostname(enabled bool, value string) error {
	if err := validateHostname(value); err != nil {
		return err
	}
	c.HostnameEnabled = enabled
	c.HostnameValue = value
	return nil
}

// SetLogonCommand sets the command run after the sandbox user logs in.
func (c *Configuration) SetLogonCommand(cmd string) {
	c.LogonCommand = cmd
}

// AddMappedFolder appends f to the folder list.
func (c *Configuration) AddMappedFolder(f MappedFolder) {
	c.MappedFolders = append(c.MappedFolders, f)
}

// UpdateMappedFolder replaces the folder at index i.
func (c *Configuration) UpdateMappedFolder(i int, f MappedFolder) error {
	if err := c.checkFolderIndex(i); err != nil {
		return err
	}
	c.MappedFolders[i] = f
	return nil
}

// RemoveMappedFolder deletes the folder at index i, keeping the order
// of the remaining entries.
func (c *Configuration) RemoveMappedFolder(i int) error {
	if err := c.checkFolderIndex(i); err != nil {
		return err
	}
	c.MappedFolders = slices.Delete(c.MappedFolders, i, i+1)
	return nil
}

func (c *Configuration) checkFolderIndex(i int) error {
	if i < 0 || i >= len(c.MappedFolders) {
		if len(c.MappedFolders) == 0 {
			return errors.OutOfRangef("folder index %d: no mapped folders", i)
		}
		return errors.OutOfRange("folder index", i, 0, len(c.MappedFolders)-1)
	}
	return nil
}

// TrimmedLogonCommand returns the logon command without surrounding whitespace.
func (c *Configuration) TrimmedLogonCommand() string {
	return strings.TrimSpace(c.LogonCommand)
}

// EffectiveHostname returns the hostname written to the sandbox, or ""
// when the custom hostname is disabled or blank.
func (c *Configuration) EffectiveHostname() string {
	if !c.HostnameEnabled {
		return ""
	}
	return strings.TrimSpace(c.HostnameValue)
}

// UsableFolders returns the folders that will be exported, in order.
func (c *Configuration) UsableFolders() []MappedFolder {
	var out []MappedFolder
	for _, f := range c.MappedFolders {
		if f.Usable() {
			out = append(out, f)
		}
	}
	return out
}

// Flag names a boolean setting by its JSON key.
type Flag string

const (
	FlagVGPU                 Flag = "vgpu_enabled"
	FlagNetworking           Flag = "networking_enabled"
	FlagAudioInput           Flag = "audio_input_enabled"
	FlagVideoInput           Flag = "video_input_enabled"
	FlagProtectedClient      Flag = "protected_client_enabled"
	FlagPrinterRedirection   Flag = "printer_redirection_enabled"
	FlagClipboardRedirection Flag = "clipboard_redirection_enabled"
	FlagHostname             Flag = "hostname_enabled"
	FlagForceDarkMode        Flag = "force_dark_mode"
)

// Flags lists every boolean setting in document order.
func Flags() []Flag {
	return []Flag{
		FlagVGPU,
		FlagNetworking,
		FlagAudioInput,
		FlagVideoInput,
		FlagProtectedClient,
		FlagPrinterRedirection,
		FlagClipboardRedirection,
		FlagHostname,
		FlagForceDarkMode,
	}
}

// ParseFlag looks up a flag by its JSON key.
func ParseFlag(name string) (Flag, error) {
	for _, f := range Flags() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown setting %q", name)
}

func (c *Configuration) flagField(f Flag) *bool {
	switch f {
	case FlagVGPU:
		return &c.VGPUEnabled
	case FlagNetworking:
		return &c.NetworkingEnabled
	case FlagAudioInput:
		return &c.AudioInputEnabled
	case FlagVideoInput:
		return &c.VideoInputEnabled
	case FlagProtectedClient:
		return &c.ProtectedClientEnabled
	case FlagPrinterRedirection:
		return &c.PrinterRedirectionEnabled
	case FlagClipboardRedirection:
		return &c.ClipboardRedirectionEnabled
	case FlagHostname:
		return &c.HostnameEnabled
	case FlagForceDarkMode:
		return &c.ForceDarkMode
	}
	return nil
}

// Flag returns the value of a boolean setting. Unknown flags read as false.
func (c *Configuration) Flag(f Flag) bool {
	if p := c.flagField(f); p != nil {
		return *p
	}
	return false
}

// SetFlag sets a boolean setting. Unknown flags are ignored.
func (c *Configuration) SetFlag(f Flag, v bool) {
	if p := c.flagField(f); p != nil {
		*p = v
	}
}
