package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"magic8badge/board"
)

var listFormats = []string{"text", "toml", "json"}

// tableDoc is the exported shape of a board definition.
type tableDoc struct {
	Board     string   `toml:"board" json:"board"`
	MCU       string   `toml:"mcu" json:"mcu"`
	StatusLED string   `toml:"status_led,omitempty" json:"status_led,omitempty"`
	I2C       *busDoc  `toml:"i2c,omitempty" json:"i2c,omitempty"`
	Pins      []pinDoc `toml:"pins" json:"pins"`
}

type busDoc struct {
	SCL string `toml:"scl" json:"scl"`
	SDA string `toml:"sda" json:"sda"`
}

type pinDoc struct {
	Name string  `toml:"name" json:"name"`
	Kind string  `toml:"kind" json:"kind"`
	Pin  string  `toml:"pin,omitempty" json:"pin,omitempty"`
	Bus  *busDoc `toml:"bus,omitempty" json:"bus,omitempty"`
}

func newTableDoc(d *board.Descriptor) tableDoc {
	doc := tableDoc{Board: d.Name(), MCU: d.MCUName()}
	if led, ok := d.StatusLED(); ok {
		doc.StatusLED = led.String()
	}
	if i2c := d.I2C(); i2c.Enabled {
		doc.I2C = &busDoc{SCL: i2c.SCL.String(), SDA: i2c.SDA.String()}
	}
	for _, e := range d.Entries() {
		p := pinDoc{Name: e.Name, Kind: e.Value.Kind.String()}
		switch e.Value.Kind {
		case board.KindI2C:
			p.Bus = &busDoc{SCL: e.Value.Bus.SCL.String(), SDA: e.Value.Bus.SDA.String()}
		default:
			p.Pin = e.Value.Pin.String()
		}
		doc.Pins = append(doc.Pins, p)
	}
	return doc
}

func newListCmd() *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "list",
		Short: "List the named pin table in declaration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(listFormats, format) {
				return fmt.Errorf("unknown format %q (want one of %v)", format, listFormats)
			}
			return writeTable(cmd.OutOrStdout(), board.Selected, format)
		},
	}
	c.Flags().StringVarP(&format, "format", "f", "text", "output format: text, toml or json")
	return c
}

func writeTable(w io.Writer, d *board.Descriptor, format string) error {
	switch format {
	case "toml":
		data, err := toml.Marshal(newTableDoc(d))
		if err != nil {
			return fmt.Errorf("encoding toml: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newTableDoc(d))
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tVALUE")
	for _, e := range d.Entries() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Value.Kind, e.Value)
	}
	return tw.Flush()
}
