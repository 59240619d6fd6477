package main

import (
	"github.com/spf13/cobra"
)

var checkSingleCmd = &cobra.Command{
	Use:   "check [flags] [+toolchain] {<file.rs>|<project-dir>}",
	Short: "Type-check the program without producing a binary",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSingle(cmd, "check", args)
	},
}

func init() {
	checkSingleCmd.Flags().SetInterspersed(false)
	singleCmd.AddCommand(checkSingleCmd)
}
