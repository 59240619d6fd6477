package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/inejge/cargo-single/internal/project"
)

// sourceExt is the only recognized source-file extension.
const sourceExt = ".rs"

// resolveTarget maps the CLI target argument to the source file and the
// generated project directory. The argument is either the .rs file itself or
// the extensionless project path derived from it; both forms land on the same
// pair.
func resolveTarget(cfg project.Config, arg string) (srcPath, projectDir string, err error) {
	switch filepath.Ext(arg) {
	case sourceExt:
		srcPath = arg
	case "":
		srcPath = arg + sourceExt
	default:
		return "", "", fmt.Errorf("%s: must be a %s file or a project directory", arg, sourceExt)
	}

	info, err := os.Stat(srcPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", "", fmt.Errorf("%s: source file does not exist", srcPath)
		}
		return "", "", fmt.Errorf("%s: %w", srcPath, err)
	}
	if !info.Mode().IsRegular() {
		return "", "", fmt.Errorf("%s: not a regular file", srcPath)
	}

	base := filepath.Base(srcPath)
	name := strings.TrimSuffix(base, sourceExt)
	return srcPath, cfg.Dir(srcPath, name), nil
}
