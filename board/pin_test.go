package board

import "testing"

func TestPinString(t *testing.T) {
	cases := map[Pin]string{
		GPIO0:  "GPIO0",
		GPIO5:  "GPIO5",
		GPIO29: "GPIO29",
		NoPin:  "NoPin",
	}
	for p, want := range cases {
		if got := p.String(); got != want {
			t.Fatalf("%d: got %q want %q", uint8(p), got, want)
		}
	}
}

func TestMCUHas(t *testing.T) {
	if !RP2040.Has(GPIO0) || !RP2040.Has(GPIO29) {
		t.Fatal("edge pins missing")
	}
	if RP2040.Has(Pin(30)) || RP2040.Has(NoPin) {
		t.Fatal("pin outside range accepted")
	}
}

func TestValueString(t *testing.T) {
	if got := PinValue(GPIO1).String(); got != "GPIO1" {
		t.Fatalf("got %q", got)
	}
	v := I2CValue(I2CPins{Enabled: true, SCL: GPIO7, SDA: GPIO6})
	if got := v.String(); got != "I2C(scl=GPIO7, sda=GPIO6)" {
		t.Fatalf("got %q", got)
	}
	if KindPin.String() != "pin" || KindI2C.String() != "i2c" || Kind(7).String() != "unknown" {
		t.Fatal("kind names")
	}
}
