// Package project derives the generated Cargo project from a single source
// file: its identity, whether the on-disk copy is stale, and the writes that
// bring it back in sync.
package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

// ErrInvalidName marks a source-file stem that cannot serve as a Cargo
// package name.
var ErrInvalidName = errors.New("not a valid package name")

// Identity is the generated package's name and version. The name is the
// source file's stem; the version comes from the self declaration or the
// configured default.
type Identity struct {
	Name    string
	Version string
}

// IsValidPackageName reports whether name is acceptable as a Cargo package
// name: ASCII letters, digits, '-' and '_', not starting with a digit or
// separator.
func IsValidPackageName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r > unicode.MaxASCII {
			return false
		}
		if i == 0 && r != '_' && !unicode.IsLetter(r) {
			return false
		}
		if i > 0 && r != '_' && r != '-' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ResolveIdentity derives the package identity for sourcePath. selfVersion is
// the version declared in the file's header, empty when absent. It fails
// before any filesystem write when the stem is not a legal package name.
func ResolveIdentity(sourcePath, selfVersion string, cfg Config) (Identity, error) {
	base := filepath.Base(sourcePath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if !IsValidPackageName(name) {
		return Identity{}, fmt.Errorf("%s: %q: %w", sourcePath, name, ErrInvalidName)
	}
	version := selfVersion
	if version == "" {
		version = cfg.DefaultVersion
	}
	return Identity{Name: name, Version: version}, nil
}
