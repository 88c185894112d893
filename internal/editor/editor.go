package editor

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/sandboxgui/wsbctl/internal/config"
	"github.com/sandboxgui/wsbctl/internal/document"
	"github.com/sandboxgui/wsbctl/internal/errors"
	"github.com/sandboxgui/wsbctl/internal/logging"
	"github.com/sandboxgui/wsbctl/internal/system"
)

// FallbackEditor is used when neither the settings nor the environment name one.
const FallbackEditor = "vi"

// Resolve picks the editor command line: the configured value, then
// $VISUAL, then $EDITOR, then FallbackEditor.
func Resolve(configured string) string {
	for _, candidate := range []string{configured, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return FallbackEditor
}

// Split turns an editor command line into a program and its arguments.
func Split(command string) (string, []string, error) {
	words, err := shellquote.Split(command)
	if err != nil {
		return "", nil, errors.ConfigError("invalid editor command "+command, err)
	}
	if len(words) == 0 {
		return "", nil, errors.ConfigError("empty editor command", nil)
	}
	return words[0], words[1:], nil
}

// Editor round-trips a configuration through a text editor.
type Editor struct {
	Command string
	TempDir string
	FS      system.FileSystem
	Exec    system.CommandExecutor
}

// New returns an Editor for the given command line, as returned by Resolve.
func New(command string, fsys system.FileSystem, exec system.CommandExecutor) *Editor {
	return &Editor{
		Command: command,
		TempDir: os.TempDir(),
		FS:      fsys,
		Exec:    exec,
	}
}

// Edit writes cfg to a scratch document named after name, runs the editor
// on it and parses the result. The caller's document is never touched, so
// a malformed edit loses nothing.
func (e *Editor) Edit(ctx context.Context, name string, cfg config.Configuration) (config.Configuration, error) {
	prog, args, err := Split(e.Command)
	if err != nil {
		return config.Configuration{}, err
	}

	scratch := filepath.Join(e.TempDir, "wsbctl-edit-"+filepath.Base(name))
	if filepath.Ext(scratch) != document.JSONExt {
		scratch += document.JSONExt
	}
	if err := document.Save(e.FS, scratch, cfg); err != nil {
		return config.Configuration{}, err
	}
	defer func() {
		if err := e.FS.Remove(scratch); err != nil {
			logging.Debug("failed to remove scratch document", "path", scratch, "error", err)
		}
	}()

	logging.Debug("launching editor", "command", prog, "args", args, "path", scratch)
	if err := e.Exec.ExecuteInteractive(ctx, prog, append(args, scratch)...); err != nil {
		return config.Configuration{}, errors.Wrap(errors.ExitGeneralError, "editor exited with an error", err)
	}

	return document.Load(e.FS, scratch)
}
