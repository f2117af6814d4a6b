//go:build esp32 || esp32s3

package platform

import (
	"machine"

	"modemboard-go/plan"
)

type espPin struct{ p machine.Pin }

func (e espPin) ConfigureInput(pull plan.Pull) error {
	mode := machine.PinInput
	switch pull {
	case plan.PullUp:
		mode = machine.PinInputPullup
	case plan.PullDown:
		mode = machine.PinInputPulldown
	}
	e.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (e espPin) ConfigureOutput(initial bool) error {
	e.p.Set(initial)
	e.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	e.p.Set(initial)
	return nil
}

func (e espPin) Set(level bool) { e.p.Set(level) }
func (e espPin) Get() bool      { return e.p.Get() }
func (e espPin) Number() int    { return int(e.p) }

// espPinFactory maps GPIO numbers straight onto machine.Pin.
type espPinFactory struct{ max int }

func (f espPinFactory) ByNumber(n int) (GPIOPin, bool) {
	if n < 0 || n > f.max {
		return nil, false
	}
	return espPin{p: machine.Pin(n)}, true
}

// DefaultFactories provides MCU GPIO. Buses are brought up by their
// drivers from the plan, so no bus factories are returned.
func DefaultFactories(_ plan.ResourcePlan) Factories {
	return Factories{Pins: espPinFactory{max: maxGPIO}}
}
