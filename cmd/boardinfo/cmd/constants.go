package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"magic8badge/board"
)

func newConstantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "Show board name, MCU, status LED and I2C bus",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			d := board.Selected
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Board: %s\n", d.Name())
			fmt.Fprintf(w, "MCU: %s\n", d.MCUName())
			if led, ok := d.StatusLED(); ok {
				fmt.Fprintf(w, "Status LED: %s\n", led)
			} else {
				fmt.Fprintln(w, "Status LED: none")
			}
			if i2c := d.I2C(); i2c.Enabled {
				fmt.Fprintf(w, "I2C: enabled (scl=%s, sda=%s)\n", i2c.SCL, i2c.SDA)
			} else {
				fmt.Fprintln(w, "I2C: disabled")
			}
		},
	}
}
