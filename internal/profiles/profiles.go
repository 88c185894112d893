package profiles

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/sandboxgui/wsbctl/internal/config"
	"github.com/sandboxgui/wsbctl/internal/document"
	"github.com/sandboxgui/wsbctl/internal/errors"
	"github.com/sandboxgui/wsbctl/internal/logging"
	"github.com/sandboxgui/wsbctl/internal/system"
)

var profileNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,62}$`)

// ValidateName checks if a profile name is valid.
func ValidateName(name string) error {
	if name == "" {
		return errors.ValidationError("profile name cannot be empty")
	}

	if !profileNameRegex.MatchString(name) {
		return errors.ValidationError(fmt.Sprintf("invalid profile name %q: must start with a lowercase letter or digit, contain only lowercase letters, digits, underscores, or hyphens, and be at most 63 characters", name))
	}

	return nil
}

// Store is a directory of profiles
type Store struct {
	Dir string
	FS  system.FileSystem
}

// NewStore returns a Store rooted at dir.
func NewStore(fsys system.FileSystem, dir string) *Store {
	return &Store{Dir: dir, FS: fsys}
}

// Path returns the document path for the named profile.
func (s *Store) Path(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	path, err := securejoin.SecureJoin(s.Dir, name+document.JSONExt)
	if err != nil {
		return "", errors.IOError("resolve profile", name, err)
	}
	return path, nil
}

// Save writes cfg under name, replacing any existing profile.
func (s *Store) Save(name string, cfg config.Configuration) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}
	logging.Debug("saving profile", "name", name, "path", path)
	return document.Save(s.FS, path, cfg)
}

// Load reads the named profile.
func (s *Store) Load(name string) (config.Configuration, error) {
	path, err := s.Path(name)
	if err != nil {
		return config.Configuration{}, err
	}
	if !s.FS.Exists(path) {
		return config.Configuration{}, errors.ProfileNotFound(name)
	}
	return document.Load(s.FS, path)
}

// Exists reports whether the named profile exists.
func (s *Store) Exists(name string) bool {
	path, err := s.Path(name)
	if err != nil {
		return false // Invalid name means it doesn't exist
	}
	return s.FS.Exists(path)
}

// Delete removes the named profile.
func (s *Store) Delete(name string) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}
	if !s.FS.Exists(path) {
		return errors.ProfileNotFound(name)
	}
	if err := s.FS.Remove(path); err != nil {
		return errors.IOError("delete", path, err)
	}
	return nil
}

// List returns the names of all profiles, sorted. Files whose names are
// not valid profile names are skipped.
func (s *Store) List() ([]string, error) {
	entries, err := s.FS.ReadDir(s.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.IOError("read", s.Dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != document.JSONExt {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), document.JSONExt)
		if ValidateName(name) != nil {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
