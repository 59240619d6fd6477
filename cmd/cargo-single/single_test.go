package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// The refresh command runs the whole pipeline except the Cargo subprocess,
// which makes it the natural end-to-end probe.
func TestRefreshCommand(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "random.rs")
	source := "// self = \"1.2.3\"\n// rand = \"0.7\"\n\nuse rand::Rng;\n\nfn main() {}\n"
	if err := os.WriteFile(srcPath, []byte(source), 0o600); err != nil {
		t.Fatal(err)
	}

	singleCmd.SetArgs([]string{"refresh", srcPath})
	if err := singleCmd.Execute(); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	projectDir := filepath.Join(dir, "random")
	manifest, err := os.ReadFile(filepath.Join(projectDir, "Cargo.toml"))
	if err != nil {
		t.Fatalf("reading manifest: %v", err)
	}
	for _, want := range []string{
		"name = \"random\"",
		"version = \"1.2.3\"",
		"[dependencies]\nrand = \"0.7\"\n",
	} {
		if !strings.Contains(string(manifest), want) {
			t.Fatalf("manifest missing %q:\n%s", want, manifest)
		}
	}
	if strings.Contains(string(manifest), "self =") {
		t.Fatalf("self declaration leaked into dependencies:\n%s", manifest)
	}

	copyBytes, err := os.ReadFile(filepath.Join(projectDir, "src", "main.rs"))
	if err != nil {
		t.Fatalf("reading source copy: %v", err)
	}
	if string(copyBytes) != source {
		t.Fatalf("source copy differs from source file")
	}

	// Second refresh with no change must not rewrite anything.
	before, err := os.Stat(filepath.Join(projectDir, "Cargo.toml"))
	if err != nil {
		t.Fatal(err)
	}
	singleCmd.SetArgs([]string{"refresh", srcPath})
	if err := singleCmd.Execute(); err != nil {
		t.Fatalf("second refresh failed: %v", err)
	}
	after, err := os.Stat(filepath.Join(projectDir, "Cargo.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Fatal("manifest rewritten without changes")
	}
}

func TestRefreshCommandRejectsInvalidStem(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "7up.rs")
	if err := os.WriteFile(srcPath, []byte("fn main() {}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	singleCmd.SetArgs([]string{"refresh", srcPath})
	if err := singleCmd.Execute(); err == nil {
		t.Fatal("expected error for digit-leading stem")
	}
	if _, err := os.Stat(filepath.Join(dir, "7up")); !os.IsNotExist(err) {
		t.Fatal("project directory created despite invalid name")
	}
}
