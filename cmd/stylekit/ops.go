package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chrisuehlinger/stylekit/css"
	"github.com/chrisuehlinger/stylekit/js"
)

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the methods available on the $l wrapper",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := js.NewRegistry()
			js.RegisterStyler(reg, css.New())
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range reg.Names() {
				mode, _ := reg.Mode(name)
				fmt.Fprintf(w, "%s\t%s\n", name, mode)
			}
			return w.Flush()
		},
	}
}
