package platform

import (
	"fmt"

	"github.com/golang/glog"
	"tinygo.org/x/drivers"

	"modemboard-go/errcode"
	"modemboard-go/plan"
)

// Action records one GPIO configuration step, in plan order.
type Action struct {
	Name    string
	Pin     int
	Mode    plan.Mode
	Pull    plan.Pull
	Initial bool
}

func (a Action) String() string {
	switch a.Mode {
	case plan.ModeOutput:
		lvl := "low"
		if a.Initial {
			lvl = "high"
		}
		return fmt.Sprintf("GPIO%d output %s (%s)", a.Pin, lvl, a.Name)
	case plan.ModeInput:
		if a.Pull != plan.PullNone {
			return fmt.Sprintf("GPIO%d input pull-%s (%s)", a.Pin, a.Pull, a.Name)
		}
		return fmt.Sprintf("GPIO%d input (%s)", a.Pin, a.Name)
	default:
		return fmt.Sprintf("GPIO%d %s (%s)", a.Pin, a.Mode, a.Name)
	}
}

// Bound holds the handles produced by Bind.
type Bound struct {
	// Pins is keyed by signal name, aliases included.
	Pins    map[string]GPIOPin
	I2C     map[string]drivers.I2C
	SPI     map[string]drivers.SPI
	Actions []Action
}

// Pin returns the handle for a planned signal.
func (b *Bound) Pin(name string) (GPIOPin, bool) {
	p, ok := b.Pins[name]
	return p, ok
}

// Bind configures every planned GPIO and collects the planned buses.
// It stops at the first missing pin or bus. A nil bus factory leaves
// those buses to their drivers.
func Bind(rp plan.ResourcePlan, f Factories) (*Bound, error) {
	const op = "platform.Bind"
	b := &Bound{
		Pins: map[string]GPIOPin{},
		I2C:  map[string]drivers.I2C{},
		SPI:  map[string]drivers.SPI{},
	}

	for _, gp := range rp.GPIO {
		if f.Pins == nil {
			return nil, errcode.New(errcode.UnknownPin, op, "no pin factory")
		}
		pin, ok := f.Pins.ByNumber(gp.Pin)
		if !ok {
			return nil, errcode.New(errcode.UnknownPin, op, fmt.Sprintf("GPIO%d (%s)", gp.Pin, gp.Name))
		}
		var err error
		switch gp.Mode {
		case plan.ModeOutput:
			err = pin.ConfigureOutput(gp.Initial)
		case plan.ModeInput:
			err = pin.ConfigureInput(gp.Pull)
		case plan.ModeAnalog:
			// ADC channels are claimed by their driver; leave the pad floating.
			err = pin.ConfigureInput(plan.PullNone)
		default:
			err = errcode.New(errcode.Unsupported, op, "mode "+string(gp.Mode))
		}
		if err != nil {
			return nil, errcode.Wrap(errcode.Of(err), op+": "+gp.Name, err)
		}
		a := Action{Name: gp.Name, Pin: gp.Pin, Mode: gp.Mode, Pull: gp.Pull, Initial: gp.Initial}
		b.Actions = append(b.Actions, a)
		b.Pins[gp.Name] = pin
		for _, alias := range gp.Aliases {
			b.Pins[alias] = pin
		}
		glog.V(1).Infof("Bound %s", a)
	}

	for _, bus := range rp.I2C {
		if f.I2C == nil {
			glog.V(1).Infof("I2C bus %s left to its driver", bus.ID)
			continue
		}
		h, ok := f.I2C.ByID(bus.ID)
		if !ok {
			return nil, errcode.New(errcode.UnknownBus, op, bus.ID)
		}
		b.I2C[bus.ID] = h
	}
	for _, bus := range rp.SPI {
		if f.SPI == nil {
			glog.V(1).Infof("SPI bus %s left to its driver", bus.ID)
			continue
		}
		h, ok := f.SPI.ByID(bus.ID)
		if !ok {
			return nil, errcode.New(errcode.UnknownBus, op, bus.ID)
		}
		b.SPI[bus.ID] = h
	}

	glog.Infof("Board %s bound: %d GPIO, %d I2C, %d SPI", rp.Board, len(b.Actions), len(b.I2C), len(b.SPI))
	return b, nil
}
