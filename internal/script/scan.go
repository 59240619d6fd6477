// Package script extracts the dependency header from a single-file program.
//
// The header is the run of lines at the very top of the file that each start
// with exactly "// " (no leading whitespace). It ends at the first blank line
// or at the first line without that prefix; nothing below the header is ever
// inspected. Header lines are Cargo dependency-section entries, except for the
// reserved pseudo-dependency `self`, which declares the generated package's
// version.
package script

import (
	"bufio"
	"io"
	"strings"
)

const (
	// linePrefix marks a header line: slash, slash, space, at column 0.
	linePrefix = "// "
	// selfPrefix opens a self declaration. The full line must be
	// selfPrefix + version + closing quote, with nothing after it.
	selfPrefix = `// self = "`
)

// Header is the parsed leading comment block of a source file.
type Header struct {
	// Deps holds the dependency fragment: every header line except the
	// self declaration, prefix stripped, in source order. Duplicate keys
	// are kept; Cargo decides what they mean.
	Deps []string
	// Version is the self-declared package version. Empty when the file
	// carries no self declaration (or declares an empty one).
	Version string
}

// scanState drives the line scanner. The header is a single run of prefixed
// lines, so two states suffice: either we are still collecting, or the block
// has ended and every remaining line is program text.
type scanState uint8

const (
	stateInBlock scanState = iota
	stateEnded
)

// Parse scans the leading comment block of src. It fails only when reading
// src fails; malformed header lines are forwarded verbatim into Deps and
// surface later as Cargo errors. Lines are read without a length cap, so an
// arbitrarily long header or terminating program line cannot break the scan.
func Parse(src io.Reader) (Header, error) {
	var hdr Header
	state := stateInBlock
	r := bufio.NewReader(src)
	for state == stateInBlock {
		line, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			return Header{}, err
		}
		atEOF := err == io.EOF
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		switch {
		case line == "" || !strings.HasPrefix(line, linePrefix):
			state = stateEnded
		default:
			if version, ok := parseSelfLine(line); ok {
				// Repeated declarations: the last one wins.
				hdr.Version = version
			} else {
				hdr.Deps = append(hdr.Deps, line[len(linePrefix):])
			}
		}
		if atEOF {
			break
		}
	}
	return hdr, nil
}

// parseSelfLine recognizes the rigid self-declaration shape
// `// self = "<version>"`. Any deviation (missing quotes, trailing text, a
// quote inside the version) makes this an ordinary dependency line.
func parseSelfLine(line string) (string, bool) {
	if !strings.HasPrefix(line, selfPrefix) {
		return "", false
	}
	rest := line[len(selfPrefix):]
	if !strings.HasSuffix(rest, `"`) {
		return "", false
	}
	version := rest[:len(rest)-1]
	if strings.Contains(version, `"`) {
		return "", false
	}
	return version, true
}
