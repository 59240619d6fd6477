// Package main implements the cargo-single CLI.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/inejge/cargo-single/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "cargo-single",
	Short: "Build single-file Rust programs through Cargo",
	Long: `cargo-single maintains a Cargo project behind a single Rust source file whose
dependencies are declared in the file's leading comments, then delegates the
requested subcommand to Cargo against that project.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		mode, err := cmd.Flags().GetString("color")
		if err == nil {
			applyColorMode(mode)
		}
	},
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(singleCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	// Wrapper failures exit with 2; the delegated Cargo exit code is
	// propagated before we ever get here.
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func applyColorMode(mode string) {
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}
