package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chrisuehlinger/stylekit/css"
)

func newMergeCmd() *cobra.Command {
	var def string
	cmd := &cobra.Command{
		Use:   "merge CURRENT ENTRY...",
		Short: "Merge transition entries into a transition declaration",
		Long: `Merge each ENTRY ("property params", or a bare property name) into the
CURRENT transition declaration and print the result. Pass "" for an element
without a transition.`,
		Example: `  stylekit merge "opacity 1s, color 2s" "opacity 3s" transform`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), css.MergeTransitions(args[0], args[1:], def))
			return nil
		},
	}
	cmd.Flags().StringVar(&def, "default", css.DefaultTransition, "params for entries that name a property only")
	return cmd
}
