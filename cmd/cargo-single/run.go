package main

import (
	"github.com/spf13/cobra"
)

var runSingleCmd = &cobra.Command{
	Use:   "run [flags] [+toolchain] {<file.rs>|<project-dir>} [args...]",
	Short: "Build and execute the program",
	Long: `Builds the generated project and runs the resulting binary. Everything after
the source file is forwarded to the program, not to Cargo; the program's exit
code becomes cargo-single's exit code.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSingle(cmd, "run", args)
	},
}

func init() {
	runSingleCmd.Flags().SetInterspersed(false)
	singleCmd.AddCommand(runSingleCmd)
}
