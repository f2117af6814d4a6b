package board

// Signal is one named pin of a profile, using the vendor header's names.
type Signal struct {
	Name string
	Pin  Pin
	// ModemSide pins are numbered in the modem's GPIO space.
	ModemSide bool
}

type signalDef struct {
	name      string
	get       func(*Profile) Pin
	modemSide bool
}

// signalDefs fixes the order used by Signals.
var signalDefs = []signalDef{
	{name: "MODEM_TX_PIN", get: func(p *Profile) Pin { return p.Modem.TX }},
	{name: "MODEM_RX_PIN", get: func(p *Profile) Pin { return p.Modem.RX }},
	{name: "MODEM_DTR_PIN", get: func(p *Profile) Pin { return p.Modem.DTR }},
	{name: "MODEM_RING_PIN", get: func(p *Profile) Pin { return p.Modem.Ring }},
	{name: "MODEM_RTS_PIN", get: func(p *Profile) Pin { return p.Modem.RTS }},
	{name: "MODEM_CTS_PIN", get: func(p *Profile) Pin { return p.Modem.CTS }},
	{name: "MODEM_RESET_PIN", get: func(p *Profile) Pin { return p.Power.Reset }},
	{name: "BOARD_PWRKEY_PIN", get: func(p *Profile) Pin { return p.Power.PowerKey }},
	{name: "BOARD_POWERON_PIN", get: func(p *Profile) Pin { return p.Power.PowerOn }},
	{name: "BOARD_LED_PIN", get: func(p *Profile) Pin { return p.Power.LED }},
	{name: "PMU_IRQ", get: func(p *Profile) Pin { return p.Power.PMUIRQ }},

	{name: "BOARD_MISO_PIN", get: func(p *Profile) Pin { return p.SPI.MISO }},
	{name: "BOARD_MOSI_PIN", get: func(p *Profile) Pin { return p.SPI.MOSI }},
	{name: "BOARD_SCK_PIN", get: func(p *Profile) Pin { return p.SPI.SCK }},
	{name: "BOARD_SD_CS_PIN", get: func(p *Profile) Pin { return p.SD.CS }},
	{name: "BOARD_SDA_PIN", get: func(p *Profile) Pin { return p.I2C.SDA }},
	{name: "BOARD_SCL_PIN", get: func(p *Profile) Pin { return p.I2C.SCL }},

	{name: "ETH_MISO_PIN", get: func(p *Profile) Pin { return p.Ethernet.MISO }},
	{name: "ETH_MOSI_PIN", get: func(p *Profile) Pin { return p.Ethernet.MOSI }},
	{name: "ETH_SCLK_PIN", get: func(p *Profile) Pin { return p.Ethernet.SCLK }},
	{name: "ETH_CS_PIN", get: func(p *Profile) Pin { return p.Ethernet.CS }},
	{name: "ETH_INT_PIN", get: func(p *Profile) Pin { return p.Ethernet.INT }},
	{name: "ETH_RST_PIN", get: func(p *Profile) Pin { return p.Ethernet.RST }},

	{name: "MODEM_GPS_RX_PIN", get: func(p *Profile) Pin { return p.GPS.RX }},
	{name: "MODEM_GPS_TX_PIN", get: func(p *Profile) Pin { return p.GPS.TX }},
	{name: "MODEM_GPS_PPS_PIN", get: func(p *Profile) Pin { return p.GPS.PPS }},
	{name: "MODEM_GPS_ENABLE_GPIO", get: func(p *Profile) Pin { return p.GPS.Enable }, modemSide: true},

	{name: "CAMERA_PWDN_PIN", get: func(p *Profile) Pin { return p.Camera.PWDN }},
	{name: "CAMERA_RESET_PIN", get: func(p *Profile) Pin { return p.Camera.Reset }},
	{name: "CAMERA_XCLK_PIN", get: func(p *Profile) Pin { return p.Camera.XCLK }},
	{name: "CAMERA_SIOD_PIN", get: func(p *Profile) Pin { return p.Camera.SIOD }},
	{name: "CAMERA_SIOC_PIN", get: func(p *Profile) Pin { return p.Camera.SIOC }},
	{name: "CAMERA_VSYNC_PIN", get: func(p *Profile) Pin { return p.Camera.VSYNC }},
	{name: "CAMERA_HREF_PIN", get: func(p *Profile) Pin { return p.Camera.HREF }},
	{name: "CAMERA_PCLK_PIN", get: func(p *Profile) Pin { return p.Camera.PCLK }},
	{name: "CAMERA_Y9_PIN", get: func(p *Profile) Pin { return p.Camera.Y9 }},
	{name: "CAMERA_Y8_PIN", get: func(p *Profile) Pin { return p.Camera.Y8 }},
	{name: "CAMERA_Y7_PIN", get: func(p *Profile) Pin { return p.Camera.Y7 }},
	{name: "CAMERA_Y6_PIN", get: func(p *Profile) Pin { return p.Camera.Y6 }},
	{name: "CAMERA_Y5_PIN", get: func(p *Profile) Pin { return p.Camera.Y5 }},
	{name: "CAMERA_Y4_PIN", get: func(p *Profile) Pin { return p.Camera.Y4 }},
	{name: "CAMERA_Y3_PIN", get: func(p *Profile) Pin { return p.Camera.Y3 }},
	{name: "CAMERA_Y2_PIN", get: func(p *Profile) Pin { return p.Camera.Y2 }},

	{name: "BOARD_BAT_ADC_PIN", get: func(p *Profile) Pin { return p.ADC.Battery }},
	{name: "BOARD_SOLAR_ADC_PIN", get: func(p *Profile) Pin { return p.ADC.Solar }},
	{name: "ADC_BUTTONS_PIN", get: func(p *Profile) Pin { return p.ADC.Buttons }},
}

// Signals lists every signal the board defines, connected or not.
// Absent signals are omitted.
func (p Profile) Signals() []Signal {
	out := make([]Signal, 0, len(signalDefs))
	for _, d := range signalDefs {
		pin := d.get(&p)
		if !pin.Present() {
			continue
		}
		out = append(out, Signal{Name: d.name, Pin: pin, ModemSide: d.modemSide})
	}
	return out
}

// Signal looks up a pin by its header name. ok is false for unknown names
// and for signals the board does not define.
func (p Profile) Signal(name string) (pin Pin, ok bool) {
	for _, d := range signalDefs {
		if d.name == name {
			pin = d.get(&p)
			return pin, pin.Present()
		}
	}
	return Pin{}, false
}

// SignalNames returns every name Signal understands.
func SignalNames() []string {
	out := make([]string, len(signalDefs))
	for i, d := range signalDefs {
		out[i] = d.name
	}
	return out
}
