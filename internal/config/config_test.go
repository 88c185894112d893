package config

import (
	"errors"
	"testing"

	wsberrors "github.com/sandboxgui/wsbctl/internal/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if !cfg.VGPUEnabled || !cfg.NetworkingEnabled || !cfg.ClipboardRedirectionEnabled {
		t.Error("GPU, networking and clipboard should default to enabled")
	}
	if cfg.AudioInputEnabled || cfg.VideoInputEnabled || cfg.ProtectedClientEnabled || cfg.PrinterRedirectionEnabled {
		t.Error("audio, video, protected client and printer should default to disabled")
	}
	if cfg.MemoryMB != DefaultMemoryMB {
		t.Errorf("MemoryMB = %d, want %d", cfg.MemoryMB, DefaultMemoryMB)
	}
	if cfg.LogonCommand != "" || cfg.HostnameValue != "" || cfg.HostnameEnabled || cfg.ForceDarkMode {
		t.Error("text fields, hostname and dark mode should default to empty/off")
	}
	if cfg.MappedFolders == nil || len(cfg.MappedFolders) != 0 {
		t.Errorf("MappedFolders = %#v, want empty non-nil slice", cfg.MappedFolders)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestReset(t *testing.T) {
	cfg := Default()
	cfg.VGPUEnabled = false
	cfg.MemoryMB = 16384
	cfg.LogonCommand = "explorer.exe"
	cfg.AddMappedFolder(NewMappedFolder(`C:\Src`))
	cfg.ForceDarkMode = true

	cfg.Reset()

	if !cfg.Equal(Default()) {
		t.Errorf("Reset() = %+v, want defaults", cfg)
	}
}

func TestNewMappedFolder(t *testing.T) {
	f := NewMappedFolder(`C:\Data`)

	if f.HostFolder != `C:\Data` {
		t.Errorf("HostFolder = %q", f.HostFolder)
	}
	if f.SandboxFolder != DefaultSandboxFolder {
		t.Errorf("SandboxFolder = %q, want %q", f.SandboxFolder, DefaultSandboxFolder)
	}
	if !f.ReadOnly {
		t.Error("new folders should be read-only")
	}
}

func TestMappedFolderUsable(t *testing.T) {
	tests := []struct {
		name   string
		folder MappedFolder
		want   bool
	}{
		{"both paths", MappedFolder{HostFolder: `C:\A`, SandboxFolder: `C:\B`}, true},
		{"no sandbox path", MappedFolder{HostFolder: `C:\A`}, false},
		{"no host path", MappedFolder{SandboxFolder: `C:\B`}, false},
		{"empty", MappedFolder{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.folder.Usable(); got != tt.want {
				t.Errorf("Usable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	cfg := Default()
	cfg.AddMappedFolder(NewMappedFolder(`C:\Src`))

	clone := cfg.Clone()
	clone.MappedFolders[0].HostFolder = `C:\Other`
	clone.AddMappedFolder(NewMappedFolder(`C:\More`))

	if cfg.MappedFolders[0].HostFolder != `C:\Src` {
		t.Error("modifying the clone changed the original folder")
	}
	if len(cfg.MappedFolders) != 1 {
		t.Errorf("original has %d folders, want 1", len(cfg.MappedFolders))
	}
}

func TestEqual(t *testing.T) {
	a := Default()
	b := Default()
	b.MappedFolders = nil

	if !a.Equal(b) {
		t.Error("nil and empty folder lists should be equal")
	}

	b.HostnameValue = "box"
	if a.Equal(b) {
		t.Error("configs with different hostnames should differ")
	}

	c := Default()
	c.AddMappedFolder(NewMappedFolder(`C:\A`))
	d := Default()
	d.AddMappedFolder(MappedFolder{HostFolder: `C:\A`, SandboxFolder: DefaultSandboxFolder, ReadOnly: false})
	if c.Equal(d) {
		t.Error("configs with different folder read-only flags should differ")
	}
}

func TestSetMemoryMB(t *testing.T) {
	tests := []struct {
		mb      int
		wantErr bool
	}{
		{512, false},
		{4096, false},
		{32768, false},
		{511, true},
		{32769, true},
		{0, true},
		{-1, true},
	}

	for _, tt := range tests {
		cfg := Default()
		err := cfg.SetMemoryMB(tt.mb)
		if tt.wantErr {
			if !errors.Is(err, wsberrors.ErrOutOfRange) {
				t.Errorf("SetMemoryMB(%d) error = %v, want ErrOutOfRange", tt.mb, err)
			}
			if cfg.MemoryMB != DefaultMemoryMB {
				t.Errorf("SetMemoryMB(%d) changed memory to %d on error", tt.mb, cfg.MemoryMB)
			}
			continue
		}
		if err != nil {
			t.Errorf("SetMemoryMB(%d) unexpected error: %v", tt.mb, err)
		}
		if cfg.MemoryMB != tt.mb {
			t.Errorf("MemoryMB = %d, want %d", cfg.MemoryMB, tt.mb)
		}
	}
}

func TestSetHostname(t *testing.T) {
	cfg := Default()

	if err := cfg.SetHostname(true, "MyBox"); err != nil {
		t.Fatalf("SetHostname failed: %v", err)
	}
	if !cfg.HostnameEnabled || cfg.HostnameValue != "MyBox" {
		t.Errorf("hostname = (%v, %q)", cfg.HostnameEnabled, cfg.HostnameValue)
	}

	// 15 runes, more than 15 bytes
	if err := cfg.SetHostname(true, "ÄÖÜäöüßÄÖÜäöüßÄ"); err != nil {
		t.Errorf("15-character hostname should be accepted: %v", err)
	}

	err := cfg.SetHostname(true, "abcdefghijklmnop")
	if !errors.Is(err, wsberrors.ErrOutOfRange) {
		t.Errorf("16-character hostname error = %v, want ErrOutOfRange", err)
	}
}

func TestEffectiveHostname(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		value   string
		want    string
	}{
		{"enabled", true, "MyBox", "MyBox"},
		{"trimmed", true, "  MyBox ", "MyBox"},
		{"whitespace only", true, "   ", ""},
		{"disabled", false, "MyBox", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.HostnameEnabled = tt.enabled
			cfg.HostnameValue = tt.value
			if got := cfg.EffectiveHostname(); got != tt.want {
				t.Errorf("EffectiveHostname() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTrimmedLogonCommand(t *testing.T) {
	cfg := Default()
	cfg.SetLogonCommand("  C:\\Windows\\System32\\cmd.exe \n")

	if got := cfg.TrimmedLogonCommand(); got != `C:\Windows\System32\cmd.exe` {
		t.Errorf("TrimmedLogonCommand() = %q", got)
	}
	if cfg.LogonCommand == cfg.TrimmedLogonCommand() {
		t.Error("SetLogonCommand should store the raw text")
	}
}

func TestMappedFolderEditing(t *testing.T) {
	cfg := Default()
	cfg.AddMappedFolder(NewMappedFolder(`C:\A`))
	cfg.AddMappedFolder(NewMappedFolder(`C:\B`))
	cfg.AddMappedFolder(NewMappedFolder(`C:\A`))

	if len(cfg.MappedFolders) != 3 {
		t.Fatalf("len = %d, want 3 (duplicates allowed)", len(cfg.MappedFolders))
	}

	updated := MappedFolder{HostFolder: `C:\B`, SandboxFolder: `C:\Shared\B`, ReadOnly: false}
	if err := cfg.UpdateMappedFolder(1, updated); err != nil {
		t.Fatalf("UpdateMappedFolder failed: %v", err)
	}
	if cfg.MappedFolders[1] != updated {
		t.Errorf("folder 1 = %+v, want %+v", cfg.MappedFolders[1], updated)
	}

	if err := cfg.RemoveMappedFolder(0); err != nil {
		t.Fatalf("RemoveMappedFolder failed: %v", err)
	}
	if len(cfg.MappedFolders) != 2 || cfg.MappedFolders[0] != updated {
		t.Errorf("after remove = %+v, want order preserved", cfg.MappedFolders)
	}

	for _, i := range []int{-1, 2, 10} {
		if err := cfg.RemoveMappedFolder(i); !errors.Is(err, wsberrors.ErrOutOfRange) {
			t.Errorf("RemoveMappedFolder(%d) error = %v, want ErrOutOfRange", i, err)
		}
		if err := cfg.UpdateMappedFolder(i, updated); !errors.Is(err, wsberrors.ErrOutOfRange) {
			t.Errorf("UpdateMappedFolder(%d) error = %v, want ErrOutOfRange", i, err)
		}
	}

	empty := Default()
	if err := empty.RemoveMappedFolder(0); !errors.Is(err, wsberrors.ErrOutOfRange) {
		t.Errorf("RemoveMappedFolder on empty list error = %v, want ErrOutOfRange", err)
	}
}

func TestUsableFolders(t *testing.T) {
	cfg := Default()
	cfg.MappedFolders = []MappedFolder{
		{HostFolder: `C:\Src`, SandboxFolder: "", ReadOnly: true},
		{HostFolder: `C:\Data`, SandboxFolder: `C:\Shared\Data`, ReadOnly: false},
		{HostFolder: "", SandboxFolder: `C:\Shared`, ReadOnly: true},
	}

	got := cfg.UsableFolders()
	if len(got) != 1 || got[0].HostFolder != `C:\Data` {
		t.Errorf("UsableFolders() = %+v, want only C:\\Data", got)
	}
}

func TestFlags(t *testing.T) {
	cfg := Default()

	for _, f := range Flags() {
		cfg.SetFlag(f, true)
		if !cfg.Flag(f) {
			t.Errorf("Flag(%s) = false after SetFlag(true)", f)
		}
		cfg.SetFlag(f, false)
		if cfg.Flag(f) {
			t.Errorf("Flag(%s) = true after SetFlag(false)", f)
		}
	}

	cfg.SetFlag(Flag("bogus"), true)
	if cfg.Flag(Flag("bogus")) {
		t.Error("unknown flags should read as false")
	}
}

func TestParseFlag(t *testing.T) {
	f, err := ParseFlag("printer_redirection_enabled")
	if err != nil {
		t.Fatalf("ParseFlag failed: %v", err)
	}
	if f != FlagPrinterRedirection {
		t.Errorf("ParseFlag() = %q", f)
	}

	if _, err := ParseFlag("memory_mb"); err == nil {
		t.Error("memory_mb is not a flag")
	}
}

func TestValidateRejectsInvalidUTF8(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Configuration)
	}{
		{"logon command", func(c *Configuration) { c.SetLogonCommand("setup\xff.cmd") }},
		{"hostname", func(c *Configuration) { c.HostnameValue = "box\xfe" }},
		{"host folder", func(c *Configuration) {
			c.AddMappedFolder(MappedFolder{HostFolder: "C:\\\xc3", SandboxFolder: `C:\S`})
		}},
		{"sandbox folder", func(c *Configuration) {
			c.AddMappedFolder(MappedFolder{HostFolder: `C:\H`, SandboxFolder: "C:\\\x80"})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate should reject invalid UTF-8")
			}
		})
	}

	cfg := Default()
	cfg.SetLogonCommand("Prüfung.cmd")
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid UTF-8 rejected: %v", err)
	}
}
