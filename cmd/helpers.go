package cmd

import (
	"fmt"

	"github.com/sandboxgui/wsbctl/internal/app"
	"github.com/sandboxgui/wsbctl/internal/config"
	"github.com/sandboxgui/wsbctl/internal/document"
	"github.com/sandboxgui/wsbctl/internal/errors"
)

// loadDocument reads and validates the JSON document at path.
func loadDocument(path string) (config.Configuration, error) {
	return document.Load(app.Default.FS, path)
}

// saveDocument writes cfg to path and records it as a recent file.
func saveDocument(path string, cfg config.Configuration) error {
	if err := document.Save(app.Default.FS, path, cfg); err != nil {
		return err
	}
	app.Default.RememberFile(path)
	return nil
}

// updateDocument loads path, applies fn and saves the result.
// Nothing is written when fn fails.
func updateDocument(path string, fn func(*config.Configuration) error) (config.Configuration, error) {
	cfg, err := loadDocument(path)
	if err != nil {
		return config.Configuration{}, err
	}
	if err := fn(&cfg); err != nil {
		return config.Configuration{}, err
	}
	if err := saveDocument(path, cfg); err != nil {
		return config.Configuration{}, err
	}
	return cfg, nil
}

// parsePreset wraps config.ParsePreset for command arguments.
func parsePreset(name string) (config.Preset, error) {
	p, err := config.ParsePreset(name)
	if err != nil {
		return 0, errors.ValidationError(err.Error())
	}
	return p, nil
}

// matchingPreset returns the preset whose toggles cfg already has.
func matchingPreset(cfg config.Configuration) (config.Preset, bool) {
	for _, p := range config.Presets() {
		if p.Apply(cfg).Equal(cfg) {
			return p, true
		}
	}
	return 0, false
}

func boolStatus(b bool) string {
	if b {
		return "✓"
	}
	return "✗"
}

func folderMode(f config.MappedFolder) string {
	if f.ReadOnly {
		return "read-only"
	}
	return "read-write"
}

// folderProblem describes why f would be skipped on export.
func folderProblem(f config.MappedFolder) string {
	switch {
	case f.HostFolder == "" && f.SandboxFolder == "":
		return "no host or sandbox path"
	case f.HostFolder == "":
		return "no host path"
	case f.SandboxFolder == "":
		return "no sandbox path"
	}
	return ""
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
