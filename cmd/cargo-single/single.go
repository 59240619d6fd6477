package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inejge/cargo-single/internal/cargo"
	"github.com/inejge/cargo-single/internal/project"
	"github.com/inejge/cargo-single/internal/script"
)

var singleCmd = &cobra.Command{
	Use:   "single <command> [flags] [+toolchain] {<file.rs>|<project-dir>} [args...]",
	Short: "Run a Cargo subcommand against a single-file program",
	Long: `Each subcommand parses the dependency comments at the top of the source file,
synchronizes the generated Cargo project next to it, and hands over to Cargo.
"refresh" only synchronizes and runs nothing.`,
	SilenceUsage: true,
}

func init() {
	singleCmd.PersistentFlags().Bool("release", false, "build/check in release mode")
	singleCmd.PersistentFlags().String("target", "", "use the specified target for building")
	singleCmd.PersistentFlags().Bool("no-quiet", false, "don't pass --quiet to Cargo")
}

// runSingle is the shared parse → identity → staleness → sync → dispatch
// pipeline behind every `single` subcommand.
func runSingle(cmd *cobra.Command, command string, args []string) error {
	release, err := cmd.Flags().GetBool("release")
	if err != nil {
		return err
	}
	target, err := cmd.Flags().GetString("target")
	if err != nil {
		return err
	}
	noQuiet, err := cmd.Flags().GetBool("no-quiet")
	if err != nil {
		return err
	}

	toolchain, targetArg, trailing, err := splitSingleArgs(args)
	if err != nil {
		return err
	}

	cfg := project.DefaultConfig()
	srcPath, projectDir, err := resolveTarget(cfg, targetArg)
	if err != nil {
		return err
	}

	source, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("%s: %w", srcPath, err)
	}
	hdr, err := script.Parse(bytes.NewReader(source))
	if err != nil {
		return fmt.Errorf("%s: %w", srcPath, err)
	}

	id, err := project.ResolveIdentity(srcPath, hdr.Version, cfg)
	if err != nil {
		return err
	}

	verdict, err := project.CheckStale(projectDir, id, hdr.Deps, source)
	if err != nil {
		return err
	}
	if err := project.Synchronize(projectDir, id, hdr.Deps, source, verdict); err != nil {
		return err
	}

	if command == "refresh" {
		return nil
	}

	inv := cargo.Invocation{
		Command:      command,
		Toolchain:    toolchain,
		Release:      release,
		Target:       target,
		Quiet:        !noQuiet,
		ManifestPath: filepath.Join(projectDir, "Cargo.toml"),
		TrailingArgs: trailing,
	}
	code, err := inv.Run(cmd.Context())
	if err != nil {
		return err
	}
	if code != 0 {
		os.Exit(code)
	}
	return nil
}

// splitSingleArgs separates the optional leading +toolchain token, the target
// argument and the trailing pass-through arguments. Flag parsing is
// non-interspersed, so everything after the target arrives here untouched.
func splitSingleArgs(args []string) (toolchain, target string, trailing []string, err error) {
	rest := args
	for len(rest) > 0 && strings.HasPrefix(rest[0], "+") {
		if toolchain != "" {
			return "", "", nil, fmt.Errorf("toolchain already set: %s", rest[0])
		}
		toolchain = rest[0]
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return "", "", nil, errors.New("missing source file or project directory")
	}
	return toolchain, rest[0], rest[1:], nil
}
