package board

import "magic8badge/x/conv"

// Pin identifies one GPIO line on the MCU by index.
// Mapping to a platform pin type happens in the hardware binding.
type Pin uint8

// NoPin marks an absent pin (e.g. a board without a status LED).
const NoPin Pin = 0xFF

// RP2040 GPIO lines.
const (
	GPIO0 Pin = iota
	GPIO1
	GPIO2
	GPIO3
	GPIO4
	GPIO5
	GPIO6
	GPIO7
	GPIO8
	GPIO9
	GPIO10
	GPIO11
	GPIO12
	GPIO13
	GPIO14
	GPIO15
	GPIO16
	GPIO17
	GPIO18
	GPIO19
	GPIO20
	GPIO21
	GPIO22
	GPIO23
	GPIO24
	GPIO25
	GPIO26
	GPIO27
	GPIO28
	GPIO29
)

func (p Pin) String() string {
	if p == NoPin {
		return "NoPin"
	}
	var buf [8]byte
	return string(conv.AppendUint(append(buf[:0], "GPIO"...), uint64(p)))
}

// MCU describes the silicon a board is built on: its name and GPIO range.
type MCU struct {
	Name string
	Pins int // GPIO0..GPIO(Pins-1)
}

// Has reports whether p exists on the MCU.
func (m MCU) Has(p Pin) bool { return p != NoPin && int(p) < m.Pins }

var RP2040 = MCU{Name: "rp2040", Pins: 30}
