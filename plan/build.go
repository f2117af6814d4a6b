package plan

import (
	"modemboard-go/board"
	"modemboard-go/x/strx"
)

// FromProfile derives the start-up plan for p. Only connected pins appear.
// Outputs start in their inactive state, except the modem power rail which
// is switched on. When two signals share a pin the first one listed below
// owns it and the others are recorded as aliases.
func FromProfile(p board.Profile) ResourcePlan {
	rp := ResourcePlan{Board: p.ID}

	rp.UART = append(rp.UART, UARTPlan{
		ID:   strx.Coalesce(p.Modem.Port, BusModemUART),
		Role: "modem",
		TX:   num(p.Modem.TX),
		RX:   num(p.Modem.RX),
		RTS:  num(p.Modem.RTS),
		CTS:  num(p.Modem.CTS),
		Baud: p.Modem.BaudRate(),
	})
	if p.GPS.RX.Connected() && p.GPS.TX.Connected() {
		rp.UART = append(rp.UART, UARTPlan{
			ID: BusGPSUART, Role: "gps",
			TX: num(p.GPS.TX), RX: num(p.GPS.RX),
			RTS: -1, CTS: -1,
		})
	}

	if p.I2C.SDA.Connected() && p.I2C.SCL.Connected() {
		rp.I2C = append(rp.I2C, I2CPlan{ID: BusI2C, SDA: num(p.I2C.SDA), SCL: num(p.I2C.SCL), Hz: DefaultI2CHz})
	}

	if p.SPI.SCK.Connected() {
		bus := SPIPlan{ID: BusSPI, SCK: num(p.SPI.SCK), SDO: num(p.SPI.MOSI), SDI: num(p.SPI.MISO)}
		if p.HasSD() {
			bus.Devices = append(bus.Devices, ChipSelect{Name: "sd", CS: num(p.SD.CS), INT: -1})
		}
		rp.SPI = append(rp.SPI, bus)
	}
	if p.HasEthernet() {
		eth := ChipSelect{Name: "ethernet", CS: num(p.Ethernet.CS), INT: num(p.Ethernet.INT)}
		if p.Ethernet.SCLK.Connected() {
			rp.SPI = append(rp.SPI, SPIPlan{
				ID:  BusEthSPI,
				SCK: num(p.Ethernet.SCLK), SDO: num(p.Ethernet.MOSI), SDI: num(p.Ethernet.MISO),
				Devices: []ChipSelect{eth},
			})
		} else if len(rp.SPI) > 0 {
			// The controller sits on the board bus.
			rp.SPI[0].Devices = append(rp.SPI[0].Devices, eth)
		}
	}

	g := gpioBuilder{}
	pw := p.Power
	g.output("power_on", pw.PowerOn, true)
	g.output("modem_reset", pw.Reset, !activeHigh(pw.ResetLevel))
	g.output("power_key", pw.PowerKey, false)
	// DTR low keeps the modem out of sleep.
	g.output("modem_dtr", p.Modem.DTR, false)
	g.output("led", pw.LED, !activeHigh(pw.LEDLevel))
	g.input("modem_ring", p.Modem.Ring, PullUp)
	g.input("pmu_irq", pw.PMUIRQ, PullUp)
	g.input("eth_int", p.Ethernet.INT, PullUp)
	g.output("eth_reset", p.Ethernet.RST, true)
	g.input("gps_pps", p.GPS.PPS, PullNone)
	g.analog("battery_adc", p.ADC.Battery)
	g.analog("solar_adc", p.ADC.Solar)
	g.analog("buttons_adc", p.ADC.Buttons)
	rp.GPIO = g.out

	return rp
}

// activeHigh treats an unset level as active high.
func activeHigh(l board.Level) bool { return l != board.ActiveLow }

func num(p board.Pin) int {
	if n, ok := p.Number(); ok {
		return n
	}
	return -1
}

type gpioBuilder struct {
	out []GPIOPlan
	idx map[int]int
}

func (g *gpioBuilder) add(gp GPIOPlan, p board.Pin) {
	n, ok := p.Number()
	if !ok {
		return
	}
	if g.idx == nil {
		g.idx = map[int]int{}
	}
	if i, dup := g.idx[n]; dup {
		g.out[i].Aliases = append(g.out[i].Aliases, gp.Name)
		return
	}
	gp.Pin = n
	g.idx[n] = len(g.out)
	g.out = append(g.out, gp)
}

func (g *gpioBuilder) output(name string, p board.Pin, initial bool) {
	g.add(GPIOPlan{Name: name, Mode: ModeOutput, Initial: initial}, p)
}

func (g *gpioBuilder) input(name string, p board.Pin, pull Pull) {
	g.add(GPIOPlan{Name: name, Mode: ModeInput, Pull: pull}, p)
}

func (g *gpioBuilder) analog(name string, p board.Pin) {
	g.add(GPIOPlan{Name: name, Mode: ModeAnalog}, p)
}

// Pins returns every MCU pin the plan claims, buses included, keyed by pin.
func (rp ResourcePlan) Pins() map[int][]string {
	out := map[int][]string{}
	claim := func(n int, who string) {
		if n >= 0 {
			out[n] = append(out[n], who)
		}
	}
	for _, u := range rp.UART {
		claim(u.TX, u.ID+".tx")
		claim(u.RX, u.ID+".rx")
		claim(u.RTS, u.ID+".rts")
		claim(u.CTS, u.ID+".cts")
	}
	for _, b := range rp.I2C {
		claim(b.SDA, b.ID+".sda")
		claim(b.SCL, b.ID+".scl")
	}
	for _, b := range rp.SPI {
		claim(b.SCK, b.ID+".sck")
		claim(b.SDO, b.ID+".sdo")
		claim(b.SDI, b.ID+".sdi")
		for _, d := range b.Devices {
			claim(d.CS, b.ID+"."+d.Name+".cs")
		}
	}
	for _, gp := range rp.GPIO {
		claim(gp.Pin, gp.Name)
	}
	return out
}

// GPIOByName returns the plan entry named name or listing it as an alias.
func (rp ResourcePlan) GPIOByName(name string) (GPIOPlan, bool) {
	for _, gp := range rp.GPIO {
		if gp.Name == name {
			return gp, true
		}
		for _, a := range gp.Aliases {
			if a == name {
				return gp, true
			}
		}
	}
	return GPIOPlan{}, false
}
