package main

import (
	"github.com/spf13/cobra"
)

var fmtSingleCmd = &cobra.Command{
	Use:   "fmt [flags] [+toolchain] {<file.rs>|<project-dir>}",
	Short: "Format the synchronized source copy with rustfmt",
	Long: `Runs "cargo fmt" against the generated project. Build flags like --release
and --target do not apply to rustfmt and are dropped from the delegated call.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSingle(cmd, "fmt", args)
	},
}

func init() {
	fmtSingleCmd.Flags().SetInterspersed(false)
	singleCmd.AddCommand(fmtSingleCmd)
}
