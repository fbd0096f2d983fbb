package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// backupTimeLayout yields sortable UTC suffixes such as 20240131235959.
const backupTimeLayout = "20060102150405"

// Load reads the config at path. A missing file yields an error matching
// ErrNotFound so the caller can offer to create one; content that does not
// match the schema yields a *ParseError.
func Load(path string) (GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return GameConfig{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return GameConfig{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := decode(path, data)
	if err != nil {
		return GameConfig{}, &ParseError{Path: path, Err: err}
	}
	return cfg, nil
}

// CreateDefault writes Default() to path and returns it. Callers are expected
// to stop the current run afterwards so the user can review the new file.
func CreateDefault(path string) (GameConfig, error) {
	cfg := Default()
	if err := Save(cfg, path); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// Save serializes cfg and overwrites the file at path.
func Save(cfg GameConfig, path string) error {
	data, err := encode(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	// 0o600 keeps the access token readable by the owner only.
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// BackupPath returns the name the file at path is moved to when rotated at now.
func BackupPath(path string, now time.Time) string {
	return path + "." + now.UTC().Format(backupTimeLayout)
}

// Rotate moves the file at path to BackupPath(path, now) and then writes a
// fresh default config at path. Nothing is written unless the rename succeeded,
// and an existing backup is never replaced.
//
// The two steps are not atomic: if writing the default fails after the rename,
// no file is left at path. The returned error names the backup in that case.
func Rotate(path string, now time.Time) (string, error) {
	backup := BackupPath(path, now)
	if _, err := os.Lstat(backup); err == nil {
		return "", fmt.Errorf("backup %s already exists", backup)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to check backup %s: %w", backup, err)
	}

	if err := os.Rename(path, backup); err != nil {
		return "", fmt.Errorf("failed to back up config file: %w", err)
	}

	if _, err := CreateDefault(path); err != nil {
		return backup, fmt.Errorf("config backed up to %s but writing a new one failed: %w", backup, err)
	}
	return backup, nil
}

// Marshal renders cfg in the format implied by path, as it would be saved.
func Marshal(path string, cfg GameConfig) ([]byte, error) {
	return encode(path, cfg)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func encode(path string, cfg GameConfig) ([]byte, error) {
	if isYAML(path) {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func decode(path string, data []byte) (GameConfig, error) {
	var cfg GameConfig
	if isYAML(path) {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return GameConfig{}, err
		}
		return cfg, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return GameConfig{}, err
	}
	if dec.More() {
		return GameConfig{}, errors.New("unexpected data after config object")
	}
	return cfg, nil
}
