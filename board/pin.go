package board

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// Pin is a GPIO number on the board's microcontroller.
//
// A Pin has three states. The zero value means the board does not define
// the signal at all. NotConnected means the board names the signal but it
// is not wired (the -1 of vendor pin headers). GPIO(n) is a wired pin.
// Consumers must not read the zero value as GPIO0.
type Pin struct {
	n   int16
	set bool
}

// NotConnected is the sentinel for a defined but unwired signal.
var NotConnected = Pin{n: -1, set: true}

// GPIO returns a connected pin. Negative numbers yield NotConnected.
// Numbers past math.MaxInt16 saturate there, which no SoC range admits.
func GPIO(n int) Pin {
	if n < 0 {
		return NotConnected
	}
	if n > math.MaxInt16 {
		n = math.MaxInt16
	}
	return Pin{n: int16(n), set: true}
}

// Present reports whether the board defines this signal.
func (p Pin) Present() bool { return p.set }

// Connected reports whether the signal is wired to a GPIO.
func (p Pin) Connected() bool { return p.set && p.n >= 0 }

// Number returns the GPIO number; ok is false unless the pin is connected.
func (p Pin) Number() (n int, ok bool) {
	if !p.Connected() {
		return 0, false
	}
	return int(p.n), true
}

// Raw returns the header-style value: the GPIO number, or -1 when the pin
// is absent or not connected.
func (p Pin) Raw() int {
	if !p.Connected() {
		return -1
	}
	return int(p.n)
}

func (p Pin) String() string {
	switch {
	case !p.set:
		return "absent"
	case p.n < 0:
		return "nc"
	default:
		return "GPIO" + strconv.Itoa(int(p.n))
	}
}

// MarshalJSON encodes a connected pin as its number, NotConnected as -1
// and an absent pin as null.
func (p Pin) MarshalJSON() ([]byte, error) {
	if !p.set {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(int(p.n))), nil
}

func (p *Pin) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*p = Pin{}
		return nil
	}
	n, err := strconv.ParseInt(string(b), 10, 16)
	if err != nil {
		return fmt.Errorf("board: pin %s: %w", b, err)
	}
	*p = GPIO(int(n))
	return nil
}

// Level is the logic level at which a control signal is asserted.
type Level int8

const (
	LevelUnset Level = iota
	ActiveLow
	ActiveHigh
)

func (l Level) String() string {
	switch l {
	case ActiveLow:
		return "LOW"
	case ActiveHigh:
		return "HIGH"
	default:
		return "unset"
	}
}

func (l Level) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

func (l *Level) UnmarshalText(b []byte) error {
	switch string(bytes.ToUpper(b)) {
	case "LOW", "0":
		*l = ActiveLow
	case "HIGH", "1":
		*l = ActiveHigh
	case "", "UNSET":
		*l = LevelUnset
	default:
		return fmt.Errorf("board: unknown level %q", b)
	}
	return nil
}

// Asserted returns the electrical level that asserts the signal.
// Unset levels are treated as active-high.
func (l Level) Asserted() bool { return l != ActiveLow }

// Released returns the electrical level that de-asserts the signal.
func (l Level) Released() bool { return !l.Asserted() }
