package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "stylekit",
		Short: "stylekit applies class, style and transition operations to HTML elements",
		Long: `stylekit drives the css convenience layer outside a browser. "merge" runs the
transition merge on a declaration string; "run" loads an HTML page, lays it out,
executes scripts against the $l wrapper and prints the resulting inline styles.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMergeCmd(), newRunCmd(), newOpsCmd())
	return root
}
