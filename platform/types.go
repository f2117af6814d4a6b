// Package platform binds a resource plan to concrete GPIO and bus handles.
package platform

import (
	"tinygo.org/x/drivers"

	"modemboard-go/plan"
)

// GPIOPin is the subset of a pin driver the plan needs.
type GPIOPin interface {
	ConfigureInput(pull plan.Pull) error
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
	Number() int
}

// PinFactory supplies GPIO pins by MCU GPIO number.
type PinFactory interface {
	ByNumber(n int) (GPIOPin, bool)
}

// I2CFactory injects configured I²C instances by id.
// Uses the TinyGo drivers.I2C interface to remain compatible on MCU builds.
type I2CFactory interface {
	ByID(id string) (drivers.I2C, bool)
}

// SPIFactory injects configured SPI instances by id.
type SPIFactory interface {
	ByID(id string) (drivers.SPI, bool)
}

// Factories groups what Bind needs.
type Factories struct {
	Pins PinFactory
	I2C  I2CFactory
	SPI  SPIFactory
}
