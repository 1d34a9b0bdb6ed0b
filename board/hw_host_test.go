//go:build !rp2040

package board

import "testing"

func TestInitHost(t *testing.T) {
	hw, err := Init()
	if err != nil {
		t.Fatal(err)
	}
	led, ok := hw.StatusLED.(*HostPin)
	if !ok {
		t.Fatalf("status LED is %T", hw.StatusLED)
	}
	if led.Number() != GPIO5 || led.Get() {
		t.Fatalf("led pin=%v level=%v", led.Number(), led.Get())
	}
	led.Toggle()
	if !led.Get() {
		t.Fatal("toggle did not switch the LED on")
	}

	bus, ok := hw.I2C.(*HostI2C)
	if !ok {
		t.Fatalf("i2c is %T", hw.I2C)
	}
	if bus.SCL != GPIO7 || bus.SDA != GPIO6 {
		t.Fatalf("bus pins scl=%v sda=%v", bus.SCL, bus.SDA)
	}
}

func TestI2CBusIsSingleton(t *testing.T) {
	a, err := I2CBus()
	if err != nil {
		t.Fatal(err)
	}
	b, _ := I2CBus()
	if a != b {
		t.Fatal("I2CBus returned different objects")
	}
	if err := a.Tx(0x6A, []byte{0x00}, make([]byte, 1)); err != nil {
		t.Fatal(err)
	}
	h := a.(*HostI2C)
	if h.LastTx.Addr != 0x6A || len(h.LastTx.W) != 1 || h.LastTx.Rn != 1 {
		t.Fatalf("last tx %+v", h.LastTx)
	}
}
