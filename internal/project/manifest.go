package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrPackageSectionMissing marks a manifest without a [package] table.
var ErrPackageSectionMissing = errors.New("missing [package] section")

const manifestName = "Cargo.toml"

// Document is a line-addressed view of a Cargo.toml. It lets one section be
// replaced while every other byte of the manifest is preserved, which is what
// keeps user additions (profiles, features, metadata) intact across syncs.
type Document struct {
	sections        []manifestSection
	trailingNewline bool
}

// manifestSection is one [name] table: its header line verbatim plus the raw
// body lines up to the next header. The section with an empty name is the
// preamble before the first header.
type manifestSection struct {
	name   string
	header string
	lines  []string
}

// ParseManifest splits data into addressable sections. It is purely
// line-oriented and never rejects input: malformed TOML passes through
// untouched and fails later in Cargo, not here.
func ParseManifest(data []byte) *Document {
	doc := &Document{
		trailingNewline: len(data) == 0 || data[len(data)-1] == '\n',
	}
	text := strings.TrimSuffix(string(data), "\n")
	cur := manifestSection{}
	flush := func() {
		if cur.header != "" || len(cur.lines) > 0 {
			doc.sections = append(doc.sections, cur)
		}
	}
	if text == "" {
		return doc
	}
	for _, line := range strings.Split(text, "\n") {
		if name, ok := sectionHeader(line); ok {
			flush()
			cur = manifestSection{name: name, header: line}
			continue
		}
		cur.lines = append(cur.lines, line)
	}
	flush()
	return doc
}

// LoadManifest reads and parses the manifest inside a generated project
// directory.
func LoadManifest(dir string) (*Document, error) {
	data, err := os.ReadFile(manifestPath(dir))
	if err != nil {
		return nil, err
	}
	return ParseManifest(data), nil
}

func manifestPath(dir string) string {
	return filepath.Join(dir, manifestName)
}

// sectionHeader reports whether line opens a TOML table and returns its name.
func sectionHeader(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "[") || !strings.HasSuffix(trimmed, "]") {
		return "", false
	}
	name := strings.TrimSpace(strings.Trim(trimmed, "[]"))
	if name == "" {
		return "", false
	}
	return name, true
}

// Section returns the raw body lines of the first table called name.
func (d *Document) Section(name string) ([]string, bool) {
	for i := range d.sections {
		if d.sections[i].name == name {
			return d.sections[i].lines, true
		}
	}
	return nil, false
}

// ReplaceSection swaps the body of the first table called name for lines,
// keeping whatever trailing blank lines separated it from the next table. A
// missing table is appended at the end of the document.
func (d *Document) ReplaceSection(name string, lines []string) {
	for i := range d.sections {
		if d.sections[i].name != name {
			continue
		}
		blanks := trailingBlanks(d.sections[i].lines)
		body := append([]string{}, lines...)
		for n := 0; n < blanks; n++ {
			body = append(body, "")
		}
		d.sections[i].lines = body
		return
	}
	d.sections = append(d.sections, manifestSection{
		name:   name,
		header: "[" + name + "]",
		lines:  append([]string{}, lines...),
	})
}

// SetPackageKey rewrites (or adds) one `key = "value"` assignment inside the
// [package] table. Other lines of the table keep their bytes.
func (d *Document) SetPackageKey(key, value string) {
	assignment := fmt.Sprintf("%s = %q", key, value)
	for i := range d.sections {
		if d.sections[i].name != "package" {
			continue
		}
		lines := d.sections[i].lines
		for j, line := range lines {
			if isKeyAssignment(line, key) {
				lines[j] = assignment
				return
			}
		}
		// Insert before the blank lines that pad the next table.
		at := len(lines) - trailingBlanks(lines)
		lines = append(lines[:at], append([]string{assignment}, lines[at:]...)...)
		d.sections[i].lines = lines
		return
	}
	d.sections = append(d.sections, manifestSection{
		name:   "package",
		header: "[package]",
		lines:  []string{assignment},
	})
}

func isKeyAssignment(line, key string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, key) {
		return false
	}
	rest := strings.TrimSpace(trimmed[len(key):])
	return strings.HasPrefix(rest, "=")
}

func trailingBlanks(lines []string) int {
	n := 0
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) != "" {
			break
		}
		n++
	}
	return n
}

// Bytes renders the document back to manifest text.
func (d *Document) Bytes() []byte {
	var b strings.Builder
	first := true
	for i := range d.sections {
		if d.sections[i].header != "" {
			if !first {
				b.WriteByte('\n')
			}
			b.WriteString(d.sections[i].header)
			first = false
		}
		for _, line := range d.sections[i].lines {
			if !first {
				b.WriteByte('\n')
			}
			b.WriteString(line)
			first = false
		}
	}
	if d.trailingNewline && b.Len() > 0 {
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// PackageIdentity decodes the package name and version from the [package]
// table. Only that table is fed to the TOML decoder: the dependency section
// may legitimately hold malformed lines copied verbatim from the source
// header, and those must not break identity checks.
func (d *Document) PackageIdentity() (Identity, error) {
	lines, ok := d.Section("package")
	if !ok {
		return Identity{}, ErrPackageSectionMissing
	}
	src := "[package]\n" + strings.Join(lines, "\n")
	var decoded struct {
		Package struct {
			Name    string `toml:"name"`
			Version string `toml:"version"`
		} `toml:"package"`
	}
	if _, err := toml.Decode(src, &decoded); err != nil {
		return Identity{}, fmt.Errorf("%s: failed to parse [package]: %w", manifestName, err)
	}
	return Identity{Name: decoded.Package.Name, Version: decoded.Package.Version}, nil
}

// RenderManifest produces the manifest for a freshly created project: the
// package table followed by the dependency fragment, one entry per line.
func RenderManifest(id Identity, deps []string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "[package]\nname = %q\nversion = %q\nedition = \"2021\"\n\n[dependencies]\n", id.Name, id.Version)
	for _, dep := range deps {
		b.WriteString(dep)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
