package project

import (
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when syncState format changes.
const stateSchemaVersion uint16 = 1

const stateFileName = ".cargo-single.state"

// syncState records what the last successful synchronization saw. It is an
// advisory fast path for the staleness check: matching digests prove the
// project is current without re-reading the manifest or the source copy. An
// unreadable or mismatching record just forces the full textual comparison.
type syncState struct {
	// Schema version for safe invalidation when the format changes.
	Schema uint16

	Name    string
	Version string

	// SourceDigest hashes the source file bytes; DepsDigest hashes the
	// rendered dependency fragment.
	SourceDigest Digest
	DepsDigest   Digest
}

func statePath(dir string) string {
	return filepath.Join(dir, stateFileName)
}

// loadState reads the state record of a generated project. Best effort: any
// failure, including a schema mismatch, reads as "no record".
func loadState(dir string) (*syncState, bool) {
	f, err := os.Open(statePath(dir))
	if err != nil {
		return nil, false
	}
	defer f.Close()
	var st syncState
	if err := msgpack.NewDecoder(f).Decode(&st); err != nil {
		return nil, false
	}
	if st.Schema != stateSchemaVersion {
		return nil, false
	}
	return &st, true
}

// writeState serializes the record and replaces the state file atomically.
func writeState(dir string, st *syncState) error {
	f, err := os.CreateTemp(dir, "state-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	if err := msgpack.NewEncoder(f).Encode(st); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), statePath(dir))
}
