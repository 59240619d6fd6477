// Package cargo assembles and runs the delegated Cargo invocation for a
// generated project.
package cargo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Tool is the delegated build tool binary, resolved through PATH.
const Tool = "cargo"

// DispatchError reports that the build tool could not be started at all, as
// opposed to it running and failing.
type DispatchError struct {
	Tool string
	Err  error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("error executing %q: %v", e.Tool, e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }

// Invocation describes one delegated Cargo call against a generated project.
type Invocation struct {
	// Command is the Cargo subcommand: build, check, fmt or run.
	Command string
	// Toolchain is the rustup selector token including its leading '+',
	// empty when unset. It must precede the subcommand on the command
	// line.
	Toolchain string
	Release   bool
	Target    string
	Quiet     bool
	// ManifestPath points at the generated project's Cargo.toml.
	ManifestPath string
	// TrailingArgs are forwarded behind "--" so they reach the built
	// program, not Cargo. Only `run` does anything with them.
	TrailingArgs []string
}

// Args assembles the argv passed to the build tool, without the binary name.
// `cargo fmt` rejects build flags, so release/target are dropped for it; the
// toolchain selector, quiet flag and manifest path still apply.
func (inv Invocation) Args() []string {
	var args []string
	if inv.Toolchain != "" {
		args = append(args, inv.Toolchain)
	}
	args = append(args, inv.Command)
	if inv.Command != "fmt" {
		if inv.Release {
			args = append(args, "--release")
		}
		if inv.Target != "" {
			args = append(args, "--target", inv.Target)
		}
	}
	if inv.Quiet {
		args = append(args, "--quiet")
	}
	args = append(args, "--manifest-path", inv.ManifestPath)
	args = append(args, "--")
	args = append(args, inv.TrailingArgs...)
	return args
}

// Run executes the invocation with the caller's standard streams and returns
// the subprocess exit code. A nonzero code is not an error here: the child's
// output is the user-visible diagnostic and its code is propagated verbatim.
// Failure to start the tool at all is a DispatchError.
func (inv Invocation) Run(ctx context.Context) (int, error) {
	cmd := exec.CommandContext(ctx, Tool, inv.Args()...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exit *exec.ExitError
		if errors.As(err, &exit) {
			code := exit.ExitCode()
			if code < 0 {
				// Killed by a signal; report a plain failure.
				code = 1
			}
			return code, nil
		}
		return 0, &DispatchError{Tool: Tool, Err: err}
	}
	return 0, nil
}
