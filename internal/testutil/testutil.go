// Package testutil provides test utilities for command tests
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sandboxgui/wsbctl/internal/app"
	"github.com/sandboxgui/wsbctl/internal/config"
	"github.com/sandboxgui/wsbctl/internal/document"
	"github.com/sandboxgui/wsbctl/internal/settings"
	"github.com/sandboxgui/wsbctl/internal/system"
)

// TestEnv holds the test environment
type TestEnv struct {
	T            *testing.T
	TmpDir       string
	SettingsPath string
	Executor     *system.MockExecutor
	App          *app.App
	cleanup      func()
}

// NewTestEnv creates a test environment backed by a temporary directory
// and a mock executor, and installs it as app.Default.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpDir := t.TempDir()
	settingsPath := filepath.Join(tmpDir, "config", settings.FileName)
	if err := os.MkdirAll(filepath.Dir(settingsPath), 0755); err != nil {
		t.Fatalf("Failed to create config directory: %v", err)
	}

	exec := system.NewMockExecutor()
	testApp := app.New(
		app.WithSettingsPath(settingsPath),
		app.WithFileSystem(system.DefaultFS()),
		app.WithExecutor(exec),
	)

	// Save original default and set test app
	originalDefault := app.Default
	app.SetDefault(testApp)

	env := &TestEnv{
		T:            t,
		TmpDir:       tmpDir,
		SettingsPath: settingsPath,
		Executor:     exec,
		App:          testApp,
		cleanup: func() {
			app.SetDefault(originalDefault)
		},
	}
	t.Cleanup(env.Cleanup)

	return env
}

// Cleanup restores the original app default
func (e *TestEnv) Cleanup() {
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
}

// Path returns a path inside the environment's temporary directory
func (e *TestEnv) Path(name string) string {
	return filepath.Join(e.TmpDir, name)
}

// WriteSettings writes a settings file with the given TOML content
func (e *TestEnv) WriteSettings(content string) {
	e.T.Helper()

	if err := os.WriteFile(e.SettingsPath, []byte(content), 0644); err != nil {
		e.T.Fatalf("Failed to write settings: %v", err)
	}
}

// AddDocument saves cfg as a JSON document and returns its path
func (e *TestEnv) AddDocument(name string, cfg config.Configuration) string {
	e.T.Helper()

	path := e.Path(name)
	if err := document.Save(system.DefaultFS(), path, cfg); err != nil {
		e.T.Fatalf("Failed to save document: %v", err)
	}
	return path
}

// AddFixture copies a fixture into the environment and returns its path
func (e *TestEnv) AddFixture(name string) string {
	e.T.Helper()

	data, err := LoadFixture(name)
	if err != nil {
		e.T.Fatalf("Failed to load fixture %s: %v", name, err)
	}
	path := e.Path(name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		e.T.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

// ReadDocument loads the JSON document at path
func (e *TestEnv) ReadDocument(path string) config.Configuration {
	e.T.Helper()

	cfg, err := document.Load(system.DefaultFS(), path)
	if err != nil {
		e.T.Fatalf("Failed to load document %s: %v", path, err)
	}
	return cfg
}

// ReadFile returns the contents of path
func (e *TestEnv) ReadFile(path string) string {
	e.T.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		e.T.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
