//go:build !esp32 && !esp32s3

package platform

import (
	"sync"

	"tinygo.org/x/drivers"

	"modemboard-go/plan"
)

// ----------------------------- GPIO (host) -----------------------------------

// FakePin implements GPIOPin for host-side tests and dry runs.
type FakePin struct {
	mu         sync.RWMutex
	number     int
	level      bool
	modeOut    bool
	configured bool
	pull       plan.Pull
}

func (p *FakePin) ConfigureInput(pull plan.Pull) error {
	p.mu.Lock()
	p.modeOut = false
	p.configured = true
	p.pull = pull
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	p.modeOut = true
	p.configured = true
	p.level = initial
	p.mu.Unlock()
	return nil
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	p.level = level
	p.mu.Unlock()
}

func (p *FakePin) Get() bool {
	p.mu.RLock()
	v := p.level
	p.mu.RUnlock()
	return v
}

func (p *FakePin) Number() int { return p.number }

// IsOutput reports whether the pin was last configured as an output.
func (p *FakePin) IsOutput() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.modeOut
}

func (p *FakePin) Configured() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.configured
}

func (p *FakePin) Pull() plan.Pull {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.pull
}

// HostPinFactory returns stable *FakePin instances per number. Numbers
// outside [0, Max] are refused when Max is set.
type HostPinFactory struct {
	Max  int
	mu   sync.Mutex
	pins map[int]*FakePin
}

func (f *HostPinFactory) ByNumber(n int) (GPIOPin, bool) {
	p, ok := f.pin(n)
	if !ok {
		return nil, false
	}
	return p, true
}

func (f *HostPinFactory) pin(n int) (*FakePin, bool) {
	if n < 0 || (f.Max > 0 && n > f.Max) {
		return nil, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pins == nil {
		f.pins = make(map[int]*FakePin)
	}
	p, ok := f.pins[n]
	if !ok {
		p = &FakePin{number: n}
		f.pins[n] = p
	}
	return p, true
}

// Get exposes the underlying *FakePin for tests.
func (f *HostPinFactory) Get(n int) (*FakePin, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.pins[n]
	return p, ok
}

// ----------------------------- I²C (host) ------------------------------------

// HostI2C implements tinygo drivers.I2C and remembers the last transfer.
type HostI2C struct {
	mu     sync.Mutex
	LastTx struct {
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

// ----------------------------- SPI (host) ------------------------------------

// HostSPI implements tinygo drivers.SPI as a loopback: reads return what
// was written.
type HostSPI struct {
	mu      sync.Mutex
	Written []byte
}

func (s *HostSPI) Tx(w, r []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Written = append(s.Written, w...)
	copy(r, w)
	return nil
}

func (s *HostSPI) Transfer(b byte) (byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Written = append(s.Written, b)
	return b, nil
}

// ----------------------------- factories -------------------------------------

type hostI2CFactory struct{ buses map[string]drivers.I2C }

func (f *hostI2CFactory) ByID(id string) (drivers.I2C, bool) {
	b, ok := f.buses[id]
	return b, ok
}

type hostSPIFactory struct{ buses map[string]drivers.SPI }

func (f *hostSPIFactory) ByID(id string) (drivers.SPI, bool) {
	b, ok := f.buses[id]
	return b, ok
}

// HostFactories creates inert host buses for every bus the plan names and
// a pin factory bounded by maxPin.
func HostFactories(rp plan.ResourcePlan, maxPin int) (Factories, *HostPinFactory) {
	pins := &HostPinFactory{Max: maxPin}
	i2c := &hostI2CFactory{buses: map[string]drivers.I2C{}}
	for _, b := range rp.I2C {
		i2c.buses[b.ID] = &HostI2C{}
	}
	spi := &hostSPIFactory{buses: map[string]drivers.SPI{}}
	for _, b := range rp.SPI {
		spi.buses[b.ID] = &HostSPI{}
	}
	return Factories{Pins: pins, I2C: i2c, SPI: spi}, pins
}

// DefaultFactories provides host factories for rp.
func DefaultFactories(rp plan.ResourcePlan) Factories {
	f, _ := HostFactories(rp, 0)
	return f
}
