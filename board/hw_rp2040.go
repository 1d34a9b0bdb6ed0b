//go:build rp2040

package board

import (
	"machine"

	"tinygo.org/x/drivers"
)

const i2cFrequency = 400 * machine.KHz

// Machine maps p to the TinyGo pin; RP2040 GPIO numbering is direct.
func (p Pin) Machine() machine.Pin { return machine.Pin(p) }

type rp2Pin struct{ p machine.Pin }

func (r rp2Pin) Set(on bool) { r.p.Set(on) }
func (r rp2Pin) Get() bool   { return r.p.Get() }
func (r rp2Pin) Toggle() {
	if r.p.Get() {
		r.p.Low()
	} else {
		r.p.High()
	}
}

func configureOutput(p Pin, initial bool) (OutputPin, error) {
	mp := p.Machine()
	mp.Configure(machine.PinConfig{Mode: machine.PinOutput})
	mp.Set(initial)
	return rp2Pin{p: mp}, nil
}

// openI2C picks the controller wired to the SDA pin: GPIO pairs alternate
// between I2C0 and I2C1 (0/1 -> I2C0, 2/3 -> I2C1, ...).
func openI2C(c I2CPins) (drivers.I2C, error) {
	bus := machine.I2C0
	if (c.SDA/2)%2 == 1 {
		bus = machine.I2C1
	}
	err := bus.Configure(machine.I2CConfig{
		Frequency: i2cFrequency,
		SDA:       c.SDA.Machine(),
		SCL:       c.SCL.Machine(),
	})
	if err != nil {
		return nil, err
	}
	return bus, nil
}
