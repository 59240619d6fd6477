package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// SyncError reports a filesystem failure while creating or updating a
// generated project. Path names what was being written.
type SyncError struct {
	Path string
	Err  error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *SyncError) Unwrap() error { return e.Err }

// Synchronize brings the generated project at dir up to date with id, deps
// and source, writing only what the verdict says drifted. A fresh verdict
// writes nothing, which keeps repeated invocations against an unchanged
// source free of filesystem writes.
func Synchronize(dir string, id Identity, deps []string, source []byte, v Verdict) error {
	if !v.Stale() {
		return nil
	}
	if v.MissingProject {
		if err := createProject(dir, id, deps, source); err != nil {
			return err
		}
	} else {
		if err := patchProject(dir, id, deps, source, v); err != nil {
			return err
		}
	}
	st := &syncState{
		Schema:       stateSchemaVersion,
		Name:         id.Name,
		Version:      id.Version,
		SourceDigest: DigestBytes(source),
		DepsDigest:   DigestLines(deps),
	}
	if err := writeState(dir, st); err != nil {
		return &SyncError{Path: statePath(dir), Err: err}
	}
	return nil
}

func createProject(dir string, id Identity, deps []string, source []byte) error {
	srcDir := filepath.Join(dir, "src")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		return &SyncError{Path: srcDir, Err: err}
	}
	if err := os.WriteFile(manifestPath(dir), RenderManifest(id, deps), 0o600); err != nil {
		return &SyncError{Path: manifestPath(dir), Err: err}
	}
	if err := os.WriteFile(sourceCopyPath(dir), source, 0o600); err != nil {
		return &SyncError{Path: sourceCopyPath(dir), Err: err}
	}
	return nil
}

// patchProject rewrites only the drifted parts of an existing project.
// Unrelated files (Cargo.lock, target/) and foreign manifest sections are
// left alone.
func patchProject(dir string, id Identity, deps []string, source []byte, v Verdict) error {
	switch {
	case v.MissingManifest:
		if err := replaceManifest(dir, RenderManifest(id, deps)); err != nil {
			return err
		}
	case v.IdentityDrift || v.DepsDrift:
		doc, err := LoadManifest(dir)
		if err != nil {
			return &SyncError{Path: manifestPath(dir), Err: err}
		}
		doc.SetPackageKey("name", id.Name)
		doc.SetPackageKey("version", id.Version)
		doc.ReplaceSection("dependencies", deps)
		if err := replaceManifest(dir, doc.Bytes()); err != nil {
			return err
		}
	}
	if v.SourceDrift {
		if err := os.MkdirAll(filepath.Join(dir, "src"), 0o755); err != nil {
			return &SyncError{Path: filepath.Join(dir, "src"), Err: err}
		}
		if err := os.WriteFile(sourceCopyPath(dir), source, 0o600); err != nil {
			return &SyncError{Path: sourceCopyPath(dir), Err: err}
		}
	}
	return nil
}

// replaceManifest swaps Cargo.toml atomically: write a temp file in the
// project directory, carry over the old file mode, rename over the original.
func replaceManifest(dir string, data []byte) error {
	path := manifestPath(dir)
	mode := os.FileMode(0o600)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	f, err := os.CreateTemp(dir, "Cargo-*.toml")
	if err != nil {
		return &SyncError{Path: path, Err: err}
	}
	defer os.Remove(f.Name())
	if _, err := f.Write(data); err != nil {
		f.Close()
		return &SyncError{Path: path, Err: err}
	}
	if err := f.Chmod(mode); err != nil {
		f.Close()
		return &SyncError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &SyncError{Path: path, Err: err}
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return &SyncError{Path: path, Err: err}
	}
	return nil
}
