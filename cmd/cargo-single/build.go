package main

import (
	"github.com/spf13/cobra"
)

var buildSingleCmd = &cobra.Command{
	Use:   "build [flags] [+toolchain] {<file.rs>|<project-dir>}",
	Short: "Compile the program's generated project",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSingle(cmd, "build", args)
	},
}

func init() {
	buildSingleCmd.Flags().SetInterspersed(false)
	singleCmd.AddCommand(buildSingleCmd)
}
