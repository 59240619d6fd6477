package project

import (
	"path/filepath"
	"strings"
)

// Config carries the process-wide knobs threaded into the project components
// so tests can substitute temporary directories and alternate defaults.
type Config struct {
	// CacheRoot, when non-empty, relocates generated projects to
	// <CacheRoot>/<name>. Empty means the project lives next to its
	// source file, at the source path with the extension stripped.
	CacheRoot string
	// DefaultVersion is the package version used when the source file
	// declares no version of its own.
	DefaultVersion string
}

// DefaultConfig returns the configuration used by the CLI.
func DefaultConfig() Config {
	return Config{DefaultVersion: "0.1.0"}
}

// Dir returns the canonical generated-project directory for a source file.
// The mapping is deterministic: one directory per source-file stem.
func (c Config) Dir(sourcePath, name string) string {
	if c.CacheRoot != "" {
		return filepath.Join(c.CacheRoot, name)
	}
	return strings.TrimSuffix(sourcePath, filepath.Ext(sourcePath))
}
