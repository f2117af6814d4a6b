package board

// Chipset selects the modem command-set driver for a board.
type Chipset string

const (
	ChipsetA7670      Chipset = "A7670"
	ChipsetA7608      Chipset = "A7608"
	ChipsetSIM7672    Chipset = "SIM7672"
	ChipsetSIM7000SSL Chipset = "SIM7000SSL"
	ChipsetSIM7080    Chipset = "SIM7080"
)

// Define is the TinyGSM preprocessor symbol that selects this chipset.
func (c Chipset) Define() string {
	if c == "" {
		return ""
	}
	return "TINY_GSM_MODEM_" + string(c)
}

// Valid reports whether c is one of the known chipsets.
func (c Chipset) Valid() bool {
	switch c {
	case ChipsetA7670, ChipsetA7608, ChipsetSIM7672, ChipsetSIM7000SSL, ChipsetSIM7080:
		return true
	}
	return false
}

// SoC is the microcontroller fitted to the board.
type SoC string

const (
	ESP32   SoC = "ESP32"
	ESP32S3 SoC = "ESP32-S3"
)

// GPIORange returns the inclusive range of GPIO numbers the SoC exposes.
func (s SoC) GPIORange() (min, max int) {
	switch s {
	case ESP32:
		return 0, 39
	case ESP32S3:
		return 0, 48
	}
	return 0, -1
}

// Family groups boards that share a carrier layout. Boards in a family
// take their common pins from the family sub-profile.
type Family string

const (
	FamilyNone     Family = ""
	FamilyPCIe     Family = "PCIe"
	FamilyETHElite Family = "ETH-Elite"
)

// Status records whether a table entry may be selected.
type Status uint8

const (
	StatusSupported Status = iota
	// StatusIncompatible entries are kept for reference but rejected by
	// Lookup; their pin map does not match shipping hardware revisions.
	StatusIncompatible
)

func (s Status) String() string {
	if s == StatusIncompatible {
		return "incompatible"
	}
	return "supported"
}

// ModemAUXVDD is the modem-side index the GSM firmware uses for its AUXVDD
// rail. Boards that power GPS from AUXVDD use it as the GPS enable line.
const ModemAUXVDD = 127

// DefaultBaudRate applies when a board leaves the modem baud rate unset.
const DefaultBaudRate = 115200
