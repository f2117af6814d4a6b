package board

import (
	"strconv"
	"strings"

	"modemboard-go/errcode"
	"modemboard-go/x/mathx"
)

// Validate checks that the profile can drive a modem: the UART and power
// key are wired, a chipset is chosen and every connected MCU pin exists on
// the SoC. Pin sharing between signals is not checked.
func (p Profile) Validate() error {
	var problems []string

	if !p.Chipset.Valid() {
		problems = append(problems, "no modem chipset selected")
	}
	min, max := p.SoC.GPIORange()
	if max < min {
		problems = append(problems, "unknown SoC "+quote(string(p.SoC)))
	}

	required := []struct {
		name string
		pin  Pin
	}{
		{"MODEM_TX_PIN", p.Modem.TX},
		{"MODEM_RX_PIN", p.Modem.RX},
		{"MODEM_DTR_PIN", p.Modem.DTR},
		{"BOARD_PWRKEY_PIN", p.Power.PowerKey},
	}
	for _, r := range required {
		if !r.pin.Connected() {
			problems = append(problems, r.name+" is "+r.pin.String())
		}
	}

	if max >= min {
		for _, s := range p.Signals() {
			if s.ModemSide {
				continue
			}
			n, ok := s.Pin.Number()
			if ok && !mathx.Between(n, min, max) {
				problems = append(problems, s.Name+"="+strconv.Itoa(n)+
					" outside "+string(p.SoC)+" GPIO range")
			}
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return errcode.New(errcode.InvalidProfile, "board.Validate",
		string(p.ID)+": "+strings.Join(problems, "; "))
}
