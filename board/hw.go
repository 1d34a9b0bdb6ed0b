package board

import (
	"sync"

	"tinygo.org/x/drivers"

	"magic8badge/errcode"
)

// OutputPin is a configured digital output.
type OutputPin interface {
	Set(on bool)
	Get() bool
	Toggle()
}

// Hardware is what Init brings up from the board constants.
type Hardware struct {
	StatusLED OutputPin   // nil if the board has no status LED
	I2C       drivers.I2C // nil if the board I²C bus is disabled
}

var (
	i2cOnce sync.Once
	i2cBus  drivers.I2C
	i2cErr  error
)

// I2CBus returns the selected board's I²C bus, the object behind the
// IMU_I2C entry. It is configured on first use and every call returns the
// same bus.
func I2CBus() (drivers.I2C, error) {
	i2cOnce.Do(func() {
		c := Selected.I2C()
		if !c.Enabled {
			i2cErr = errcode.New(errcode.UnknownBus, "i2c", Selected.Name())
			return
		}
		i2cBus, i2cErr = openI2C(c)
	})
	return i2cBus, i2cErr
}

// Init runs the board bring-up: status LED off, board I²C bus configured.
func Init() (*Hardware, error) {
	hw := &Hardware{}
	if p, ok := Selected.StatusLED(); ok {
		led, err := configureOutput(p, false)
		if err != nil {
			return nil, err
		}
		hw.StatusLED = led
	}
	if Selected.I2C().Enabled {
		bus, err := I2CBus()
		if err != nil {
			return nil, err
		}
		hw.I2C = bus
	}
	return hw, nil
}
