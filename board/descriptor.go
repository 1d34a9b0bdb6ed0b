package board

import "magic8badge/errcode"

// Kind tells what a table entry resolves to.
type Kind uint8

const (
	KindPin Kind = iota
	KindI2C      // composite: the board I²C bus object
)

func (k Kind) String() string {
	switch k {
	case KindPin:
		return "pin"
	case KindI2C:
		return "i2c"
	default:
		return "unknown"
	}
}

// I2CPins is the bus capability flag together with the pins the bus uses.
type I2CPins struct {
	Enabled  bool
	SCL, SDA Pin
}

// Value is what a symbolic name resolves to.
type Value struct {
	Kind Kind
	Pin  Pin     // KindPin
	Bus  I2CPins // KindI2C
}

func PinValue(p Pin) Value     { return Value{Kind: KindPin, Pin: p} }
func I2CValue(b I2CPins) Value { return Value{Kind: KindI2C, Pin: NoPin, Bus: b} }

func (v Value) String() string {
	if v.Kind == KindI2C {
		return "I2C(scl=" + v.Bus.SCL.String() + ", sda=" + v.Bus.SDA.String() + ")"
	}
	return v.Pin.String()
}

// Entry is one (name, value) pair of the named pin table.
type Entry struct {
	Name  string
	Value Value
}

// Spec is the raw board definition handed to Build.
type Spec struct {
	Name      string
	MCU       MCU
	StatusLED Pin // NoPin if the board has none
	I2C       I2CPins
	Entries   []Entry
}

// Descriptor is a validated, immutable board definition. It is safe for
// concurrent readers; nothing mutates it after Build returns.
type Descriptor struct {
	name    string
	mcu     MCU
	led     Pin
	i2c     I2CPins
	entries []Entry
	index   map[string]int
}

// Build validates s and returns the resulting descriptor.
func Build(s Spec) (*Descriptor, error) {
	index, err := validate(s)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, len(s.Entries))
	copy(entries, s.Entries)
	return &Descriptor{
		name:    s.Name,
		mcu:     s.MCU,
		led:     s.StatusLED,
		i2c:     s.I2C,
		entries: entries,
		index:   index,
	}, nil
}

// MustBuild is Build for package-level board definitions. An invalid table
// panics during init, so an image carrying it never starts.
func MustBuild(s Spec) *Descriptor {
	d, err := Build(s)
	if err != nil {
		panic("board " + s.Name + ": " + err.Error())
	}
	return d
}

func (d *Descriptor) Name() string    { return d.name }
func (d *Descriptor) MCUName() string { return d.mcu.Name }
func (d *Descriptor) MCU() MCU        { return d.mcu }

// StatusLED returns the status LED pin; ok is false if the board has none.
func (d *Descriptor) StatusLED() (Pin, bool) {
	return d.led, d.led != NoPin
}

// I2C reports whether the board I²C bus is enabled and the pins it uses.
func (d *Descriptor) I2C() I2CPins { return d.i2c }

// Lookup resolves a symbolic name. A miss returns an error matching
// errcode.NotFound.
func (d *Descriptor) Lookup(name string) (Value, error) {
	i, ok := d.index[name]
	if !ok {
		return Value{}, errcode.New(errcode.NotFound, "lookup", name)
	}
	return d.entries[i].Value, nil
}

// LookupPin resolves name and requires a plain pin.
func (d *Descriptor) LookupPin(name string) (Pin, error) {
	v, err := d.Lookup(name)
	if err != nil {
		return NoPin, err
	}
	if v.Kind != KindPin {
		return NoPin, errcode.New(errcode.NotAPin, "lookup", name)
	}
	return v.Pin, nil
}

// Entries returns a copy of the table in declaration order.
func (d *Descriptor) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Names returns the table names in declaration order.
func (d *Descriptor) Names() []string {
	out := make([]string, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.Name
	}
	return out
}

func (d *Descriptor) Len() int { return len(d.entries) }

// Validate re-checks the descriptor's invariants.
func (d *Descriptor) Validate() error {
	_, err := validate(Spec{
		Name:      d.name,
		MCU:       d.mcu,
		StatusLED: d.led,
		I2C:       d.i2c,
		Entries:   d.entries,
	})
	return err
}
