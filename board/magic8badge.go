package board

// CrumpSpace Magic 8 Badge: RP2040 with a round GC9A01 LCD on SPI, a
// QMI8658 IMU on I²C, six capacitive touch pads, a shake switch and a
// single-cell charger.
var Magic8Badge = MustBuild(Spec{
	Name:      "CrumpSpace Magic 8 Badge",
	MCU:       RP2040,
	StatusLED: GPIO5,
	I2C:       I2CPins{Enabled: true, SCL: GPIO7, SDA: GPIO6},
	Entries: []Entry{
		{"SHAKE", PinValue(GPIO11)},
		{"CHARGING", PinValue(GPIO21)},
		{"STANDBY", PinValue(GPIO22)},
		{"TOUCH_RIGHT", PinValue(GPIO12)},
		{"TOUCH_UP", PinValue(GPIO13)},
		{"TOUCH_DOWN", PinValue(GPIO14)},
		{"TOUCH_LEFT", PinValue(GPIO15)},
		{"TOUCH_A", PinValue(GPIO18)},
		{"TOUCH_B", PinValue(GPIO17)},
		{"LIGHT_SENSOR", PinValue(GPIO26)},

		{"LCD_DC", PinValue(GPIO0)},
		{"LCD_CS", PinValue(GPIO1)},
		{"LCD_SCL", PinValue(GPIO2)},
		{"LCD_SDA", PinValue(GPIO3)},
		{"LCD_RESET", PinValue(GPIO4)},
		{"LCD_BACKLIGHT", PinValue(GPIO5)},

		{"IMU_SDA", PinValue(GPIO6)},
		{"IMU_SCL", PinValue(GPIO7)},
		{"IMU_INT1", PinValue(GPIO9)},
		{"IMU_INT2", PinValue(GPIO10)},

		{"IMU_I2C", I2CValue(I2CPins{Enabled: true, SCL: GPIO7, SDA: GPIO6})},
	},
})

// Selected is the board this image is built for.
var Selected = Magic8Badge

// Lookup resolves name on the selected board.
func Lookup(name string) (Value, error) { return Selected.Lookup(name) }
