package config

import (
	"bytes"
	"encoding/json"

	"github.com/sandboxgui/wsbctl/internal/errors"
)

// Marshal encodes c as a wsbctl JSON document: two-space indentation,
// keys in document order, mapped_folders always an array.
func Marshal(c Configuration) ([]byte, error) {
	out := c.Clone()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Parse decodes a wsbctl JSON document.
//
// Keys are matched exactly: a key that differs from a known one only in
// case is unknown. Missing or null keys take their defaults and unknown
// keys are ignored. A mapped folder entry that is not an object, or has a
// field of the wrong type, is dropped on its own; its missing fields
// default to empty paths and read-only. The decoded record is validated
// before it is returned.
func Parse(data []byte) (Configuration, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Configuration{}, errors.MalformedDocument("empty document", nil)
	}
	if trimmed[0] != '{' {
		return Configuration{}, errors.MalformedDocument("document must be a JSON object", nil)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return Configuration{}, errors.MalformedDocument("invalid JSON document", err)
	}

	cfg := Default()
	for _, f := range Flags() {
		if err := decodeKey(doc, string(f), cfg.flagField(f)); err != nil {
			return Configuration{}, err
		}
	}
	fields := []struct {
		key string
		dst any
	}{
		{keyMemoryMB, &cfg.MemoryMB},
		{keyLogonCommand, &cfg.LogonCommand},
		{keyHostnameValue, &cfg.HostnameValue},
	}
	for _, f := range fields {
		if err := decodeKey(doc, f.key, f.dst); err != nil {
			return Configuration{}, err
		}
	}

	folders, err := parseMappedFolders(doc[keyMappedFolders])
	if err != nil {
		return Configuration{}, err
	}
	cfg.MappedFolders = folders

	if err := cfg.Validate(); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}

const (
	keyMemoryMB      = "memory_mb"
	keyLogonCommand  = "logon_command"
	keyHostnameValue = "hostname_value"
	keyMappedFolders = "mapped_folders"

	keyHostFolder    = "host_folder"
	keySandboxFolder = "sandbox_folder"
	keyReadOnly      = "read_only"
)

// decodeKey unmarshals doc[key] into dst. A missing or null key leaves dst
// untouched.
func decodeKey(obj map[string]json.RawMessage, key string, dst any) error {
	raw, ok := obj[key]
	if !ok || isNull(raw) {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errors.MalformedDocument("invalid value for "+key, err)
	}
	return nil
}

func parseMappedFolders(raw json.RawMessage) ([]MappedFolder, error) {
	folders := []MappedFolder{}
	if isNull(raw) {
		return folders, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, errors.MalformedDocument("mapped_folders must be an array", err)
	}

	for _, entry := range entries {
		f, ok := parseMappedFolder(entry)
		if !ok {
			continue
		}
		folders = append(folders, f)
	}
	return folders, nil
}

func parseMappedFolder(entry json.RawMessage) (MappedFolder, bool) {
	entry = bytes.TrimSpace(entry)
	if len(entry) == 0 || entry[0] != '{' {
		return MappedFolder{}, false
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(entry, &obj); err != nil {
		return MappedFolder{}, false
	}

	f := MappedFolder{ReadOnly: true}
	if decodeKey(obj, keyHostFolder, &f.HostFolder) != nil ||
		decodeKey(obj, keySandboxFolder, &f.SandboxFolder) != nil ||
		decodeKey(obj, keyReadOnly, &f.ReadOnly) != nil {
		return MappedFolder{}, false
	}
	return f, true
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
