package document

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/sandboxgui/wsbctl/internal/config"
	"github.com/sandboxgui/wsbctl/internal/errors"
	"github.com/sandboxgui/wsbctl/internal/generator"
	"github.com/sandboxgui/wsbctl/internal/system"
)

// File extensions written by wsbctl
const (
	JSONExt = ".json"
	WSBExt  = ".wsb"
)

// Load reads and parses the JSON document at path.
func Load(fsys system.FileSystem, path string) (config.Configuration, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return config.Configuration{}, errors.IOError("read", path, err)
	}
	return config.Parse(data)
}

// Save writes cfg as a JSON document, replacing path atomically.
func Save(fsys system.FileSystem, path string, cfg config.Configuration) error {
	data, err := config.Marshal(cfg)
	if err != nil {
		return errors.Wrap(errors.ExitGeneralError, "failed to encode document", err)
	}
	if err := system.WriteFileAtomic(fsys, path, data, 0644); err != nil {
		return errors.IOError("write", path, err)
	}
	return nil
}

// ExportWSB writes the Windows Sandbox file for cfg to path.
func ExportWSB(fsys system.FileSystem, path string, cfg config.Configuration) error {
	var buf bytes.Buffer
	if err := generator.WriteWSB(&buf, cfg); err != nil {
		return errors.Wrap(errors.ExitGeneralError, "failed to encode sandbox file", err)
	}
	if err := system.WriteFileAtomic(fsys, path, buf.Bytes(), 0644); err != nil {
		return errors.IOError("write", path, err)
	}
	return nil
}

// WSBPath returns path with its extension replaced by .wsb.
func WSBPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + WSBExt
}
