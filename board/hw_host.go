//go:build !rp2040

package board

import (
	"sync"

	"tinygo.org/x/drivers"
)

// ----------------------------- GPIO (host) -----------------------------------

// HostPin is an in-memory output pin for host builds and tests.
type HostPin struct {
	mu     sync.RWMutex
	number Pin
	level  bool
}

func (p *HostPin) Set(on bool) {
	p.mu.Lock()
	p.level = on
	p.mu.Unlock()
}

func (p *HostPin) Get() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.level
}

func (p *HostPin) Toggle() {
	p.mu.Lock()
	p.level = !p.level
	p.mu.Unlock()
}

func (p *HostPin) Number() Pin { return p.number }

func configureOutput(p Pin, initial bool) (OutputPin, error) {
	return &HostPin{number: p, level: initial}, nil
}

// ----------------------------- I²C (host) ------------------------------------

// HostI2C implements tinygo drivers.I2C and records the last transaction.
type HostI2C struct {
	mu       sync.Mutex
	SCL, SDA Pin
	LastTx   struct {
		Addr uint16
		W    []byte
		Rn   int
	}
}

func (h *HostI2C) Tx(addr uint16, w, r []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.LastTx.Addr = addr
	h.LastTx.W = append([]byte(nil), w...)
	h.LastTx.Rn = len(r)
	return nil
}

func openI2C(c I2CPins) (drivers.I2C, error) {
	return &HostI2C{SCL: c.SCL, SDA: c.SDA}, nil
}
