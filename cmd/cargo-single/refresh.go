package main

import (
	"github.com/spf13/cobra"
)

var refreshSingleCmd = &cobra.Command{
	Use:   "refresh {<file.rs>|<project-dir>}",
	Short: "Re-read the source file and update the generated project",
	Long: `Synchronizes the generated project's manifest and source copy with the
current source file, without invoking Cargo.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSingle(cmd, "refresh", args)
	},
}

func init() {
	refreshSingleCmd.Flags().SetInterspersed(false)
	singleCmd.AddCommand(refreshSingleCmd)
}
