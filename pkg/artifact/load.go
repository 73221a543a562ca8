package artifact

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the expectation file looked up by FindConfig.
const ConfigFileName = ".verify-build.yaml"

// Parse decodes a YAML expectation set. Sections left out of the document
// keep their Default values; unknown keys are rejected.
func Parse(data []byte) (Set, error) {
	set := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&set); err != nil && !errors.Is(err, io.EOF) {
		return Set{}, fmt.Errorf("parsing expectation set: %w", err)
	}
	if err := set.Validate(); err != nil {
		return Set{}, fmt.Errorf("invalid expectation set: %w", err)
	}
	return set, nil
}

// LoadFile reads and parses the expectation set at path.
func LoadFile(path string) (Set, error) {
	data, err := os.ReadFile(path) //nolint:gosec // intentional: path from --config or discovery
	if err != nil {
		return Set{}, fmt.Errorf("failed to read expectation file: %w", err)
	}
	set, err := Parse(data)
	if err != nil {
		return Set{}, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// FindConfig locates the expectation file. An explicit path must exist.
// Otherwise ConfigFileName is searched from startDir upwards, stopping at
// the home directory, a git root, or the file system root. It returns ""
// when nothing is found.
func FindConfig(startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("expectation file not found: %w", err)
		}
		return explicitPath, nil
	}

	homeDir, _ := os.UserHomeDir()

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(currentDir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		if currentDir == homeDir {
			break
		}

		if _, err := os.Stat(filepath.Join(currentDir, ".git")); err == nil {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", nil
}

// Resolve returns the expectation set for a run started in startDir:
// the explicit or discovered file if any, Default otherwise. The returned
// source is the file used, or "" for the defaults.
func Resolve(startDir, explicitPath string) (set Set, source string, err error) {
	path, err := FindConfig(startDir, explicitPath)
	if err != nil {
		return Set{}, "", err
	}
	if path == "" {
		return Default(), "", nil
	}
	set, err = LoadFile(path)
	if err != nil {
		return Set{}, "", err
	}
	return set, path, nil
}
