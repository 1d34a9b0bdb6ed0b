package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"magic8badge/board"
)

// NewRootCmd builds the boardinfo command tree.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "boardinfo",
		Short: "Inspect the " + board.Selected.Name() + " board definition",
		Long: `boardinfo prints the board constants and the named pin table that the
firmware image is built with.

Examples:
  boardinfo constants               # board name, MCU, status LED, I2C pins
  boardinfo list --format toml      # the pin table as TOML
  boardinfo lookup LCD_CS IMU_I2C   # resolve names
  boardinfo check                   # re-run table validation`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newConstantsCmd(),
		newListCmd(),
		newLookupCmd(&verbose),
		newCheckCmd(&verbose),
	)
	return root
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
