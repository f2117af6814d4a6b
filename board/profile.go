package board

// ID identifies one supported board variant.
type ID string

const (
	TA7670          ID = "t-a7670"
	TCallA7670V10   ID = "t-call-a7670-v1.0"
	TCallA7670V11   ID = "t-call-a7670-v1.1"
	TSIM7670GS3     ID = "t-sim7670g-s3"
	TA7608X         ID = "t-a7608x"
	TA7608XS3       ID = "t-a7608x-s3"
	TA7608XDCS3     ID = "t-a7608x-dc-s3"
	SIM7000G        ID = "sim7000g"
	A7670XS3        ID = "a7670x-s3"
	TPCIeA767X      ID = "t-pcie-a767x"
	TPCIeSIM7000G   ID = "t-pcie-sim7000g"
	TPCIeSIM7080G   ID = "t-pcie-sim7080g"
	TETHEliteA7670X ID = "t-eth-elite-a7670x"
)

// Profile is the complete pin and feature set for one board.
// Profiles are values; Lookup hands out copies.
type Profile struct {
	ID     ID     `json:"id"`
	Macro  string `json:"macro"` // vendor header symbol, e.g. LILYGO_T_A7670
	Name   string `json:"name"`
	URL    string `json:"url,omitempty"`
	SoC    SoC    `json:"soc"`
	Family Family `json:"family,omitempty"`
	Status Status `json:"-"`
	// Reason explains StatusIncompatible.
	Reason string   `json:"reason,omitempty"`
	Notes  []string `json:"notes,omitempty"`

	Chipset Chipset `json:"chipset"`

	Modem    ModemUART `json:"modem"`
	Power    Power     `json:"power"`
	SPI      SPI       `json:"spi"`
	SD       SD        `json:"sd"`
	I2C      I2C       `json:"i2c"`
	Ethernet Ethernet  `json:"ethernet"`
	GPS      GPS       `json:"gps"`
	Camera   Camera    `json:"camera"`
	ADC      ADC       `json:"adc"`
}

// ModemUART is the MCU side of the modem serial link.
type ModemUART struct {
	Baud uint32 `json:"baud,omitempty"`
	Port string `json:"port,omitempty"` // MCU UART controller, e.g. "uart1"
	TX   Pin    `json:"tx"`
	RX   Pin    `json:"rx"`
	DTR  Pin    `json:"dtr"`
	Ring Pin    `json:"ring"`
	RTS  Pin    `json:"rts"`
	CTS  Pin    `json:"cts"`
}

// BaudRate returns Baud, or DefaultBaudRate when the board leaves it unset.
func (u ModemUART) BaudRate() uint32 {
	if u.Baud == 0 {
		return DefaultBaudRate
	}
	return u.Baud
}

type Power struct {
	// PowerOn must be driven high for the modem to receive power.
	PowerOn  Pin `json:"power_on"`
	PowerKey Pin `json:"power_key"`

	Reset      Pin   `json:"reset"`
	ResetLevel Level `json:"reset_level,omitempty"`

	LED      Pin   `json:"led"`
	LEDLevel Level `json:"led_level,omitempty"`

	PMUIRQ Pin `json:"pmu_irq"`
}

type SPI struct {
	MISO Pin `json:"miso"`
	MOSI Pin `json:"mosi"`
	SCK  Pin `json:"sck"`
}

// SD shares the board SPI bus.
type SD struct {
	CS Pin `json:"cs"`
}

type I2C struct {
	SDA Pin `json:"sda"`
	SCL Pin `json:"scl"`
}

type Ethernet struct {
	MISO    Pin `json:"miso"`
	MOSI    Pin `json:"mosi"`
	SCLK    Pin `json:"sclk"`
	CS      Pin `json:"cs"`
	INT     Pin `json:"int"`
	RST     Pin `json:"rst"`
	PHYAddr int `json:"phy_addr,omitempty"`
}

type GPS struct {
	RX  Pin `json:"rx"`
	TX  Pin `json:"tx"`
	PPS Pin `json:"pps"`
	// Enable is numbered in the modem's GPIO space, not the MCU's.
	// ModemAUXVDD selects the modem AUXVDD rail.
	Enable      Pin   `json:"enable"`
	EnableLevel Level `json:"enable_level,omitempty"`
}

// Camera is the DVP parallel camera interface.
type Camera struct {
	PWDN  Pin `json:"pwdn"`
	Reset Pin `json:"reset"`
	XCLK  Pin `json:"xclk"`
	SIOD  Pin `json:"siod"`
	SIOC  Pin `json:"sioc"`
	VSYNC Pin `json:"vsync"`
	HREF  Pin `json:"href"`
	PCLK  Pin `json:"pclk"`
	Y9    Pin `json:"y9"`
	Y8    Pin `json:"y8"`
	Y7    Pin `json:"y7"`
	Y6    Pin `json:"y6"`
	Y5    Pin `json:"y5"`
	Y4    Pin `json:"y4"`
	Y3    Pin `json:"y3"`
	Y2    Pin `json:"y2"`
}

type ADC struct {
	Battery Pin `json:"battery"`
	Solar   Pin `json:"solar"`
	Buttons Pin `json:"buttons"`
}

// ---- Derived feature flags ----

func (p Profile) HasGPS() bool {
	return p.GPS.Enable.Connected() || p.GPS.RX.Connected()
}

func (p Profile) HasSolarADC() bool   { return p.ADC.Solar.Connected() }
func (p Profile) HasBatteryADC() bool { return p.ADC.Battery.Connected() }
func (p Profile) HasEthernet() bool   { return p.Ethernet.CS.Connected() }
func (p Profile) HasCamera() bool     { return p.Camera.XCLK.Connected() }
func (p Profile) HasSD() bool         { return p.SD.CS.Connected() }

// HasModemPowerControl reports whether the MCU can switch modem power.
func (p Profile) HasModemPowerControl() bool { return p.Power.PowerOn.Connected() }

// Supported reports whether the profile may be selected.
func (p Profile) Supported() bool { return p.Status == StatusSupported }

func (p Profile) clone() Profile {
	if p.Notes != nil {
		p.Notes = append([]string(nil), p.Notes...)
	}
	return p
}
