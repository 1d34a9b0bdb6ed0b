package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"magic8badge/board"
)

func newLookupCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <name>...",
		Short: "Resolve symbolic names to pins",
		Long: `Resolve each name against the board table. Names are case-sensitive.
The command fails if any name is missing.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			var missing []string
			for _, name := range args {
				v, err := board.Selected.Lookup(name)
				if err != nil {
					missing = append(missing, name)
					if *verbose {
						fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
					}
					continue
				}
				fmt.Fprintf(w, "%s\t%s\n", name, v)
			}
			if len(missing) > 0 {
				return fmt.Errorf("not found: %v", missing)
			}
			return nil
		},
	}
}
