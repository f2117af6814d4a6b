// Package plan turns a board profile into the wiring plan that drivers use
// to configure their buses and GPIOs at start-up.
package plan

import (
	"sigs.k8s.io/yaml"

	"modemboard-go/board"
)

// ResourcePlan specifies wiring and initial operating parameters for one
// board. Providers consume this plan to instantiate resource owners.
type ResourcePlan struct {
	Board board.ID   `json:"board"`
	UART  []UARTPlan `json:"uart,omitempty"`
	I2C   []I2CPlan  `json:"i2c,omitempty"`
	SPI   []SPIPlan  `json:"spi,omitempty"`
	GPIO  []GPIOPlan `json:"gpio,omitempty"`
}

type UARTPlan struct {
	ID   string `json:"id"`             // e.g. "uart1"
	Role string `json:"role"`           // "modem" or "gps"
	TX   int    `json:"tx"`             // GPIO number
	RX   int    `json:"rx"`             // GPIO number
	RTS  int    `json:"rts"`            // -1 when unused
	CTS  int    `json:"cts"`            // -1 when unused
	Baud uint32 `json:"baud,omitempty"` // 0 leaves it to the consumer
}

type I2CPlan struct {
	ID  string `json:"id"`  // e.g. "i2c0"
	SDA int    `json:"sda"` // GPIO number
	SCL int    `json:"scl"` // GPIO number
	Hz  uint32 `json:"hz"`  // bus frequency
}

// SPIPlan is one SPI bus and the devices selected on it.
type SPIPlan struct {
	ID      string       `json:"id"`
	SCK     int          `json:"sck"`
	SDO     int          `json:"sdo"` // MOSI
	SDI     int          `json:"sdi"` // MISO
	Devices []ChipSelect `json:"devices,omitempty"`
}

type ChipSelect struct {
	Name string `json:"name"` // "sd", "ethernet"
	CS   int    `json:"cs"`
	// INT is the device interrupt line, -1 when absent.
	INT int `json:"int"`
}

type Mode string

const (
	ModeOutput Mode = "output"
	ModeInput  Mode = "input"
	ModeAnalog Mode = "analog"
)

type Pull string

const (
	PullNone Pull = ""
	PullUp   Pull = "up"
	PullDown Pull = "down"
)

// GPIOPlan is the start-up state of one control line.
type GPIOPlan struct {
	Name    string `json:"name"`
	Pin     int    `json:"pin"`
	Mode    Mode   `json:"mode"`
	Pull    Pull   `json:"pull,omitempty"`
	Initial bool   `json:"initial,omitempty"` // electrical level for outputs
	// Aliases are other signals wired to the same pin.
	Aliases []string `json:"aliases,omitempty"`
}

// Bus identifiers used in plans.
const (
	BusModemUART = "uart1"
	BusGPSUART   = "uart2"
	BusI2C       = "i2c0"
	BusSPI       = "spi2"
	BusEthSPI    = "spi3"

	DefaultI2CHz = 400_000
)

// YAML renders the plan for humans and for provisioning scripts.
func (rp ResourcePlan) YAML() ([]byte, error) { return yaml.Marshal(rp) }
