package app

import (
	"github.com/sandboxgui/wsbctl/internal/config"
	"github.com/sandboxgui/wsbctl/internal/editor"
	"github.com/sandboxgui/wsbctl/internal/logging"
	"github.com/sandboxgui/wsbctl/internal/profiles"
	"github.com/sandboxgui/wsbctl/internal/settings"
	"github.com/sandboxgui/wsbctl/internal/system"
)

// App holds the application dependencies
type App struct {
	// SettingsPath is the location of the settings file
	SettingsPath string

	// Settings is nil until Init loads it
	Settings *settings.Settings

	// FS is used for every file operation
	FS system.FileSystem

	// Executor launches interactive programs
	Executor system.CommandExecutor
}

// Option is a function that configures the App
type Option func(*App)

// WithSettingsPath sets a custom settings file location
func WithSettingsPath(path string) Option {
	return func(a *App) {
		a.SettingsPath = path
	}
}

// WithSettings sets preloaded settings
func WithSettings(s *settings.Settings) Option {
	return func(a *App) {
		a.Settings = s
	}
}

// WithFileSystem sets a custom file system
func WithFileSystem(fsys system.FileSystem) Option {
	return func(a *App) {
		a.FS = fsys
	}
}

// WithExecutor sets a custom command executor
func WithExecutor(exec system.CommandExecutor) Option {
	return func(a *App) {
		a.Executor = exec
	}
}

// New creates a new App with the given options.
// Settings are not read until Init.
func New(opts ...Option) *App {
	app := &App{
		SettingsPath: settings.DefaultPath(),
		FS:           system.DefaultFS(),
		Executor:     system.DefaultExecutor(),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// Init loads the settings file unless settings were provided.
func (a *App) Init() error {
	if a.Settings != nil {
		return nil
	}
	s, err := settings.Load(a.FS, a.SettingsPath)
	if err != nil {
		return err
	}
	a.Settings = s
	return nil
}

func (a *App) prefs() *settings.Settings {
	if a.Settings == nil {
		a.Settings = settings.Default(a.SettingsPath)
	}
	return a.Settings
}

// SaveSettings writes the current settings back to SettingsPath
func (a *App) SaveSettings() error {
	return a.prefs().Save(a.FS, a.SettingsPath)
}

// RememberFile records path in the recent files list. Failing to persist
// the list is not fatal.
func (a *App) RememberFile(path string) {
	a.prefs().AddRecent(path)
	if err := a.SaveSettings(); err != nil {
		logging.Debug("failed to update recent files", "error", err)
	}
}

// NewConfiguration returns the defaults with the configured default preset
// applied.
func (a *App) NewConfiguration() config.Configuration {
	cfg := config.Default()
	if p, ok := a.prefs().Preset(); ok {
		cfg.ApplyPreset(p)
	}
	return cfg
}

// NewMappedFolder returns a folder for host using the configured sandbox
// folder.
func (a *App) NewMappedFolder(host string) config.MappedFolder {
	f := config.NewMappedFolder(host)
	if dir := a.prefs().DefaultSandboxFolder; dir != "" {
		f.SandboxFolder = dir
	}
	return f
}

// Profiles returns the profile store
func (a *App) Profiles() *profiles.Store {
	return profiles.NewStore(a.FS, a.prefs().ProfilesDir)
}

// Editor returns the text editor configured for raw edits
func (a *App) Editor() *editor.Editor {
	return editor.New(editor.Resolve(a.prefs().Editor), a.FS, a.Executor)
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
