//go:build !esp32 && !esp32s3

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tinygo.org/x/drivers"

	"modemboard-go/board"
	"modemboard-go/errcode"
	"modemboard-go/plan"
)

func planFor(t *testing.T, id board.ID) plan.ResourcePlan {
	t.Helper()
	p, err := board.Lookup(id)
	require.NoError(t, err)
	return plan.FromProfile(p)
}

func TestBindTA7670(t *testing.T) {
	rp := planFor(t, board.TA7670)
	f, pins := HostFactories(rp, 39)

	b, err := Bind(rp, f)
	require.NoError(t, err)
	require.Len(t, b.Actions, len(rp.GPIO))

	on, ok := pins.Get(12)
	require.True(t, ok)
	assert.True(t, on.IsOutput())
	assert.True(t, on.Get(), "modem rail powered")

	rst, ok := pins.Get(5)
	require.True(t, ok)
	assert.True(t, rst.IsOutput())
	assert.False(t, rst.Get())

	ring, ok := pins.Get(33)
	require.True(t, ok)
	assert.True(t, ring.Configured())
	assert.False(t, ring.IsOutput())
	assert.Equal(t, plan.PullUp, ring.Pull())

	h, ok := b.Pin("power_on")
	require.True(t, ok)
	assert.Equal(t, 12, h.Number())

	assert.Equal(t, "GPIO12 output high (power_on)", b.Actions[0].String())
}

func TestBindAliases(t *testing.T) {
	rp := planFor(t, board.TCallA7670V10)
	f, _ := HostFactories(rp, 39)

	b, err := Bind(rp, f)
	require.NoError(t, err)

	on, ok := b.Pin("power_on")
	require.True(t, ok)
	led, ok := b.Pin("led")
	require.True(t, ok)
	assert.Same(t, on, led)
}

func TestBindETHEliteBuses(t *testing.T) {
	rp := planFor(t, board.TETHEliteA7670X)
	f, _ := HostFactories(rp, 48)

	b, err := Bind(rp, f)
	require.NoError(t, err)
	assert.Contains(t, b.I2C, plan.BusI2C)
	assert.Contains(t, b.SPI, plan.BusSPI)
	assert.Contains(t, b.SPI, plan.BusEthSPI)

	var spi drivers.SPI = b.SPI[plan.BusEthSPI]
	r := make([]byte, 2)
	require.NoError(t, spi.Tx([]byte{0x0a, 0x0b}, r))
	assert.Equal(t, []byte{0x0a, 0x0b}, r)

	var i2c drivers.I2C = b.I2C[plan.BusI2C]
	require.NoError(t, i2c.Tx(0x34, []byte{0x00}, make([]byte, 1)))
	host := i2c.(*HostI2C)
	assert.Equal(t, uint16(0x34), host.LastTx.Addr)
	assert.Equal(t, 1, host.LastTx.Rn)
}

func TestBindUnknownPin(t *testing.T) {
	rp := planFor(t, board.TA7670)
	f, _ := HostFactories(rp, 20) // too small for GPIO26

	_, err := Bind(rp, f)
	require.Error(t, err)
	assert.Equal(t, errcode.UnknownPin, errcode.Of(err))
}

func TestBindUnknownBus(t *testing.T) {
	rp := planFor(t, board.TETHEliteA7670X)
	f, _ := HostFactories(plan.ResourcePlan{}, 48)

	_, err := Bind(rp, f)
	require.Error(t, err)
	assert.Equal(t, errcode.UnknownBus, errcode.Of(err))
	assert.Contains(t, err.Error(), plan.BusI2C)
}

func TestBindLeavesBusesToDrivers(t *testing.T) {
	rp := planFor(t, board.TETHEliteA7670X)
	f, _ := HostFactories(rp, 48)
	f.I2C, f.SPI = nil, nil

	b, err := Bind(rp, f)
	require.NoError(t, err)
	assert.Empty(t, b.I2C)
	assert.Empty(t, b.SPI)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "GPIO33 input pull-up (modem_ring)",
		Action{Name: "modem_ring", Pin: 33, Mode: plan.ModeInput, Pull: plan.PullUp}.String())
	assert.Equal(t, "GPIO35 input (pmu_irq)",
		Action{Name: "pmu_irq", Pin: 35, Mode: plan.ModeInput}.String())
	assert.Equal(t, "GPIO7 analog (buttons_adc)",
		Action{Name: "buttons_adc", Pin: 7, Mode: plan.ModeAnalog}.String())
}
