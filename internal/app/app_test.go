package app

import (
	"testing"

	"github.com/sandboxgui/wsbctl/internal/config"
	"github.com/sandboxgui/wsbctl/internal/settings"
	"github.com/sandboxgui/wsbctl/internal/system"
)

func TestNew(t *testing.T) {
	app := New()

	if app == nil {
		t.Fatal("New() returned nil")
	}
	if app.SettingsPath == "" {
		t.Error("SettingsPath should not be empty")
	}
	if app.FS == nil || app.Executor == nil {
		t.Error("FS and Executor should default to the OS implementations")
	}
	if app.Settings != nil {
		t.Error("Settings should not be loaded before Init")
	}
}

func TestNew_MultipleOptions(t *testing.T) {
	mockFS := system.NewMockFS()
	exec := system.NewMockExecutor()
	s := settings.Default("/custom/settings.toml")

	app := New(
		WithSettingsPath("/custom/settings.toml"),
		WithSettings(s),
		WithFileSystem(mockFS),
		WithExecutor(exec),
	)

	if app.SettingsPath != "/custom/settings.toml" {
		t.Error("SettingsPath not set correctly")
	}
	if app.Settings != s {
		t.Error("Settings not set correctly")
	}
	if app.FS != mockFS {
		t.Error("FS not set correctly")
	}
	if app.Executor != exec {
		t.Error("Executor not set correctly")
	}
}

func TestInit(t *testing.T) {
	mockFS := system.NewMockFS()
	mockFS.AddFile("/cfg/settings.toml", []byte(`default_preset = "secure"`), 0644)

	app := New(WithFileSystem(mockFS), WithSettingsPath("/cfg/settings.toml"))
	if err := app.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if app.Settings.DefaultPreset != "secure" {
		t.Errorf("DefaultPreset = %q", app.Settings.DefaultPreset)
	}
	if app.Settings.ProfilesDir != "/cfg/profiles" {
		t.Errorf("ProfilesDir = %q", app.Settings.ProfilesDir)
	}
}

func TestInit_InvalidSettings(t *testing.T) {
	mockFS := system.NewMockFS()
	mockFS.AddFile("/cfg/settings.toml", []byte(`default_preset = [`), 0644)

	app := New(WithFileSystem(mockFS), WithSettingsPath("/cfg/settings.toml"))
	if err := app.Init(); err == nil {
		t.Error("Init should fail on invalid settings")
	}
}

func TestNewConfiguration(t *testing.T) {
	s := settings.Default("/cfg/settings.toml")
	app := New(WithSettings(s), WithFileSystem(system.NewMockFS()))

	if !app.NewConfiguration().Equal(config.Default()) {
		t.Error("without a default preset the defaults should be used")
	}

	s.DefaultPreset = "secure"
	want := config.PresetSecure.Apply(config.Default())
	if !app.NewConfiguration().Equal(want) {
		t.Errorf("NewConfiguration() = %+v, want secure preset", app.NewConfiguration())
	}
}

func TestNewMappedFolder(t *testing.T) {
	s := settings.Default("/cfg/settings.toml")
	s.DefaultSandboxFolder = `C:\Shared`
	app := New(WithSettings(s))

	f := app.NewMappedFolder(`D:\Data`)
	if f.HostFolder != `D:\Data` || f.SandboxFolder != `C:\Shared` || !f.ReadOnly {
		t.Errorf("NewMappedFolder() = %+v", f)
	}
}

func TestRememberFile(t *testing.T) {
	mockFS := system.NewMockFS()
	app := New(
		WithFileSystem(mockFS),
		WithSettingsPath("/cfg/settings.toml"),
		WithSettings(settings.Default("/cfg/settings.toml")),
	)

	app.RememberFile("/docs/box.json")

	if len(app.Settings.RecentFiles) != 1 || app.Settings.RecentFiles[0] != "/docs/box.json" {
		t.Errorf("RecentFiles = %v", app.Settings.RecentFiles)
	}
	if !mockFS.Exists("/cfg/settings.toml") {
		t.Error("settings should be saved")
	}
}

func TestProfilesAndEditor(t *testing.T) {
	s := settings.Default("/cfg/settings.toml")
	s.Editor = "nano"
	app := New(WithSettings(s), WithFileSystem(system.NewMockFS()))

	if got := app.Profiles().Dir; got != "/cfg/profiles" {
		t.Errorf("Profiles().Dir = %q", got)
	}
	if got := app.Editor().Command; got != "nano" {
		t.Errorf("Editor().Command = %q", got)
	}
}

func TestSetDefault(t *testing.T) {
	// Save original default
	original := Default
	defer func() { Default = original }()

	customApp := New(WithSettingsPath("/custom/settings.toml"))
	SetDefault(customApp)

	if Default != customApp {
		t.Error("SetDefault did not update Default")
	}
}

func TestResetDefault(t *testing.T) {
	// Save original default
	original := Default
	defer func() { Default = original }()

	customApp := New(WithSettingsPath("/custom/settings.toml"))
	SetDefault(customApp)

	ResetDefault()

	if Default == customApp {
		t.Error("ResetDefault did not create new Default")
	}
	if Default.SettingsPath == "" {
		t.Error("ResetDefault should create app with the default settings path")
	}
}
