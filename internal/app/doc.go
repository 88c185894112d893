// Package app provides the application context for wsbctl.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
// The App struct holds core dependencies:
//
//	type App struct {
//	    SettingsPath string                 // Location of settings.toml
//	    Settings     *settings.Settings     // Loaded preferences
//	    FS           system.FileSystem      // File access
//	    Executor     system.CommandExecutor // Interactive commands
//	}
//
// # Creating an App
//
// Use New with functional options:
//
//	// Production usage
//	a := app.New()
//	err := a.Init()
//
//	// Testing with custom dependencies
//	a := app.New(
//	    app.WithFileSystem(system.NewMockFS()),
//	    app.WithSettings(settings.Default("/test/settings.toml")),
//	)
//
// # Available Options
//
//	WithSettingsPath(path)  // Custom settings file location
//	WithSettings(s)         // Preloaded settings
//	WithFileSystem(fs)      // Custom file system
//	WithExecutor(exec)      // Custom command executor
package app
