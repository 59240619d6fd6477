package project

import (
	"strings"
	"testing"
)

const sampleManifest = `[package]
name = "random"
version = "0.1.0"
edition = "2021"

[dependencies]
rand = "0.7"
serde = "1"

[profile.release]
lto = true
`

func TestParseManifestRoundTrip(t *testing.T) {
	doc := ParseManifest([]byte(sampleManifest))
	if got := string(doc.Bytes()); got != sampleManifest {
		t.Fatalf("round trip changed bytes:\n%s", got)
	}
}

func TestReplaceSectionPreservesForeignBytes(t *testing.T) {
	doc := ParseManifest([]byte(sampleManifest))
	doc.ReplaceSection("dependencies", []string{`log = "0.4"`})

	want := `[package]
name = "random"
version = "0.1.0"
edition = "2021"

[dependencies]
log = "0.4"

[profile.release]
lto = true
`
	if got := string(doc.Bytes()); got != want {
		t.Fatalf("ReplaceSection result:\n%s\nwant:\n%s", got, want)
	}
}

func TestReplaceSectionToEmpty(t *testing.T) {
	doc := ParseManifest([]byte(sampleManifest))
	doc.ReplaceSection("dependencies", nil)
	got := string(doc.Bytes())
	if strings.Contains(got, "rand") {
		t.Fatalf("old dependencies survived:\n%s", got)
	}
	if !strings.Contains(got, "[profile.release]\nlto = true") {
		t.Fatalf("foreign section lost:\n%s", got)
	}
}

func TestReplaceSectionAppendsWhenMissing(t *testing.T) {
	doc := ParseManifest([]byte("[package]\nname = \"x\"\nversion = \"0.1.0\"\n"))
	doc.ReplaceSection("dependencies", []string{`rand = "0.7"`})
	got := string(doc.Bytes())
	if !strings.Contains(got, "[dependencies]\nrand = \"0.7\"") {
		t.Fatalf("missing appended section:\n%s", got)
	}
}

func TestSetPackageKey(t *testing.T) {
	doc := ParseManifest([]byte(sampleManifest))
	doc.SetPackageKey("version", "2.0.0")
	got := string(doc.Bytes())
	if !strings.Contains(got, "version = \"2.0.0\"") {
		t.Fatalf("version not rewritten:\n%s", got)
	}
	if strings.Contains(got, "0.1.0") {
		t.Fatalf("old version survived:\n%s", got)
	}
	if !strings.Contains(got, "edition = \"2021\"") {
		t.Fatalf("sibling key lost:\n%s", got)
	}
}

func TestSetPackageKeyInsertsMissing(t *testing.T) {
	doc := ParseManifest([]byte("[package]\nname = \"x\"\n\n[dependencies]\n"))
	doc.SetPackageKey("version", "0.1.0")
	want := "[package]\nname = \"x\"\nversion = \"0.1.0\"\n\n[dependencies]\n"
	if got := string(doc.Bytes()); got != want {
		t.Fatalf("insert result:\n%q\nwant:\n%q", got, want)
	}
}

func TestPackageIdentity(t *testing.T) {
	doc := ParseManifest([]byte(sampleManifest))
	id, err := doc.PackageIdentity()
	if err != nil {
		t.Fatalf("PackageIdentity returned error: %v", err)
	}
	if id != (Identity{Name: "random", Version: "0.1.0"}) {
		t.Fatalf("PackageIdentity = %+v", id)
	}
}

func TestPackageIdentityIgnoresMalformedDependencies(t *testing.T) {
	// Malformed fragment lines are forwarded into the manifest verbatim;
	// identity decoding must not choke on them.
	manifest := "[package]\nname = \"x\"\nversion = \"0.1.0\"\n\n[dependencies]\nself = 1.0\nrand 0.7 oops\n"
	doc := ParseManifest([]byte(manifest))
	id, err := doc.PackageIdentity()
	if err != nil {
		t.Fatalf("PackageIdentity returned error: %v", err)
	}
	if id.Name != "x" {
		t.Fatalf("Name = %q", id.Name)
	}
}

func TestPackageIdentityMissingSection(t *testing.T) {
	doc := ParseManifest([]byte("[dependencies]\nrand = \"0.7\"\n"))
	if _, err := doc.PackageIdentity(); err != ErrPackageSectionMissing {
		t.Fatalf("err = %v, want ErrPackageSectionMissing", err)
	}
}

func TestRenderManifest(t *testing.T) {
	got := string(RenderManifest(Identity{Name: "random", Version: "1.2.3"}, []string{`rand = "0.7"`}))
	want := "[package]\nname = \"random\"\nversion = \"1.2.3\"\nedition = \"2021\"\n\n[dependencies]\nrand = \"0.7\"\n"
	if got != want {
		t.Fatalf("RenderManifest:\n%q\nwant:\n%q", got, want)
	}
}
