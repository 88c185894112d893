package settings

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/sandboxgui/wsbctl/internal/config"
	"github.com/sandboxgui/wsbctl/internal/errors"
	"github.com/sandboxgui/wsbctl/internal/logging"
	"github.com/sandboxgui/wsbctl/internal/system"
)

const (
	// AppDir is the directory name used under the user config directory
	AppDir = "wsbctl"

	// FileName is the settings file name
	FileName = "settings.toml"

	// MaxRecentFiles bounds the recent_files list
	MaxRecentFiles = 10
)

// Setting keys accepted by Set
const (
	KeyDefaultPreset        = "default_preset"
	KeyDefaultSandboxFolder = "default_sandbox_folder"
	KeyProfilesDir          = "profiles_dir"
	KeyEditor               = "editor"
	KeyRecentFiles          = "recent_files"
)

// Settings holds the user's preferences
type Settings struct {
	DefaultPreset        string   `toml:"default_preset"`
	DefaultSandboxFolder string   `toml:"default_sandbox_folder"`
	ProfilesDir          string   `toml:"profiles_dir"`
	Editor               string   `toml:"editor"`
	RecentFiles          []string `toml:"recent_files"`
}

// DefaultPath returns the settings file path under os.UserConfigDir.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		logging.Debug("no user config directory, using working directory", "error", err)
		dir = "."
	}
	return filepath.Join(dir, AppDir, FileName)
}

// Default returns the settings used when the file at path does not exist.
// Profiles live next to the settings file.
func Default(path string) *Settings {
	return &Settings{
		DefaultSandboxFolder: config.DefaultSandboxFolder,
		ProfilesDir:          filepath.Join(filepath.Dir(path), "profiles"),
		RecentFiles:          []string{},
	}
}

// Load reads the settings file at path.
func Load(fsys system.FileSystem, path string) (*Settings, error) {
	s := Default(path)

	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.Debug("settings file not found, using defaults", "path", path)
			return s, nil
		}
		return nil, errors.IOError("read", path, err)
	}

	md, err := toml.Decode(string(data), s)
	if err != nil {
		return nil, errors.ConfigError("failed to parse settings "+path, err)
	}
	for _, key := range md.Undecoded() {
		logging.Debug("ignoring unknown setting", "key", key.String(), "path", path)
	}

	// Explicitly empty values fall back to the defaults
	def := Default(path)
	if s.DefaultSandboxFolder == "" {
		s.DefaultSandboxFolder = def.DefaultSandboxFolder
	}
	if s.ProfilesDir == "" {
		s.ProfilesDir = def.ProfilesDir
	}
	if s.RecentFiles == nil {
		s.RecentFiles = []string{}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes the settings to path.
func (s *Settings) Save(fsys system.FileSystem, path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return errors.ConfigError("failed to encode settings", err)
	}
	if err := system.WriteFileAtomic(fsys, path, buf.Bytes(), 0644); err != nil {
		return errors.IOError("write", path, err)
	}
	return nil
}

// Validate checks the settings for consistency
func (s *Settings) Validate() error {
	if s.DefaultPreset != "" {
		if _, err := config.ParsePreset(s.DefaultPreset); err != nil {
			return errors.ConfigError("invalid "+KeyDefaultPreset, err)
		}
	}
	if len(s.RecentFiles) > MaxRecentFiles {
		s.RecentFiles = s.RecentFiles[:MaxRecentFiles]
	}
	return nil
}

// Preset returns the configured default preset, if any.
func (s *Settings) Preset() (config.Preset, bool) {
	if s.DefaultPreset == "" {
		return 0, false
	}
	p, err := config.ParsePreset(s.DefaultPreset)
	if err != nil {
		return 0, false
	}
	return p, true
}

// AddRecent records path as the most recently used document.
func (s *Settings) AddRecent(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	recent := []string{path}
	for _, p := range s.RecentFiles {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > MaxRecentFiles {
		recent = recent[:MaxRecentFiles]
	}
	s.RecentFiles = recent
}

// Keys returns the keys accepted by Set, in file order.
func Keys() []string {
	return []string{KeyDefaultPreset, KeyDefaultSandboxFolder, KeyProfilesDir, KeyEditor}
}

// Get returns the value of a settable key.
func (s *Settings) Get(key string) (string, error) {
	switch key {
	case KeyDefaultPreset:
		return s.DefaultPreset, nil
	case KeyDefaultSandboxFolder:
		return s.DefaultSandboxFolder, nil
	case KeyProfilesDir:
		return s.ProfilesDir, nil
	case KeyEditor:
		return s.Editor, nil
	}
	return "", errors.ValidationError("unknown setting: " + key)
}

// Set assigns a settable key. recent_files is maintained by wsbctl itself.
func (s *Settings) Set(key, value string) error {
	switch key {
	case KeyDefaultPreset:
		if value != "" {
			p, err := config.ParsePreset(value)
			if err != nil {
				return errors.ValidationError(err.Error())
			}
			value = p.String()
		}
		s.DefaultPreset = value
	case KeyDefaultSandboxFolder:
		s.DefaultSandboxFolder = value
	case KeyProfilesDir:
		s.ProfilesDir = value
	case KeyEditor:
		s.Editor = value
	case KeyRecentFiles:
		return errors.ValidationError(key + " cannot be set directly")
	default:
		return errors.ValidationError("unknown setting: " + key)
	}
	return nil
}
