package board

import (
	"golang.org/x/exp/slices"

	"magic8badge/errcode"
)

const opBuild = "build"

// validate checks the table invariants and returns the name index.
//
//   - names are non-empty and unique
//   - every pin exists on the MCU
//   - an enabled bus uses two distinct, existing pins
//   - a bus entry matches the bus capability and only refers to pins
//     declared earlier in the table
func validate(s Spec) (map[string]int, error) {
	if s.StatusLED != NoPin && !s.MCU.Has(s.StatusLED) {
		return nil, errcode.New(errcode.UnknownPin, opBuild, "status LED "+s.StatusLED.String())
	}
	if err := validateBus(s.MCU, s.I2C); err != nil {
		return nil, err
	}

	index := make(map[string]int, len(s.Entries))
	for i, e := range s.Entries {
		if e.Name == "" {
			return nil, errcode.New(errcode.InvalidName, opBuild, "empty name")
		}
		if _, dup := index[e.Name]; dup {
			return nil, errcode.New(errcode.DuplicateName, opBuild, e.Name)
		}
		switch e.Value.Kind {
		case KindPin:
			if !s.MCU.Has(e.Value.Pin) {
				return nil, errcode.New(errcode.UnknownPin, opBuild, e.Name+"="+e.Value.Pin.String())
			}
		case KindI2C:
			if err := validateBusEntry(s, e, s.Entries[:i]); err != nil {
				return nil, err
			}
		default:
			return nil, errcode.New(errcode.InvalidParams, opBuild, e.Name+": unknown kind")
		}
		index[e.Name] = i
	}
	return index, nil
}

func validateBus(m MCU, b I2CPins) error {
	if !b.Enabled {
		return nil
	}
	if !m.Has(b.SCL) || !m.Has(b.SDA) {
		return errcode.New(errcode.UnknownPin, opBuild, "i2c scl="+b.SCL.String()+" sda="+b.SDA.String())
	}
	if b.SCL == b.SDA {
		return errcode.New(errcode.InvalidBus, opBuild, "i2c scl and sda share "+b.SCL.String())
	}
	return nil
}

func validateBusEntry(s Spec, e Entry, earlier []Entry) error {
	if !s.I2C.Enabled {
		return errcode.New(errcode.UnknownBus, opBuild, e.Name+": board i2c disabled")
	}
	if e.Value.Bus != s.I2C {
		return errcode.New(errcode.BusPinMismatch, opBuild, e.Name)
	}
	for _, p := range [...]Pin{e.Value.Bus.SCL, e.Value.Bus.SDA} {
		declared := slices.IndexFunc(earlier, func(x Entry) bool {
			return x.Value.Kind == KindPin && x.Value.Pin == p
		})
		if declared < 0 {
			return errcode.New(errcode.ForwardRef, opBuild, e.Name+" uses undeclared "+p.String())
		}
	}
	return nil
}
