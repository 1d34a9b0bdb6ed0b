package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"magic8badge/board"
)

func newCheckCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the board table invariants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := board.Selected
			if err := d.Validate(); err != nil {
				return fmt.Errorf("%s: %w", d.Name(), err)
			}
			w := cmd.OutOrStdout()
			if *verbose {
				for _, e := range d.Entries() {
					fmt.Fprintf(w, "  %s = %s\n", e.Name, e.Value)
				}
			}
			fmt.Fprintf(w, "ok: %s (%d entries)\n", d.Name(), d.Len())
			return nil
		},
	}
}
