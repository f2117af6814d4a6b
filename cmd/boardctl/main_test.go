package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	"modemboard-go/board"
	"modemboard-go/config"
	"modemboard-go/errcode"
)

// testGlobals selects id through the -board flag with no file or env.
func testGlobals(t *testing.T, id string) globals {
	t.Helper()
	if len(board.Tagged()) != 0 {
		t.Skip("built with a board tag")
	}
	old := config.LookupEnv
	config.LookupEnv = func(string) (string, bool) { return "", false }
	t.Cleanup(func() { config.LookupEnv = old })
	return globals{board: id, config: filepath.Join(t.TempDir(), "none.yaml")}
}

func TestList(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, globals{}, []string{"list"}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, len(board.IDs())+1)
	assert.Contains(t, out.String(), "lilygo_t_eth_elite_a7670x")
	assert.Regexp(t, `t-call-a7670-v1\.1\s+ESP32\s+A7670\s+-\s+incompatible`, out.String())
}

func TestShowFormats(t *testing.T) {
	g := testGlobals(t, "LILYGO_T_A7670")

	var out bytes.Buffer
	require.NoError(t, run(&out, g, []string{"show"}))
	assert.Contains(t, out.String(), "TINY_GSM_MODEM_A7670")
	assert.Contains(t, out.String(), "uart1 @ 115200 baud")
	assert.Contains(t, out.String(), "solar adc")

	out.Reset()
	require.NoError(t, run(&out, g, []string{"show", "-o", "yaml"}))
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "t-a7670", doc["id"])
	modem := doc["modem"].(map[string]any)
	assert.EqualValues(t, 26, modem["tx"])

	out.Reset()
	require.NoError(t, run(&out, g, []string{"show", "-o", "json"}))
	assert.Contains(t, out.String(), `"chipset": "A7670"`)

	err := run(&out, g, []string{"show", "-o", "xml"})
	assert.Equal(t, errcode.InvalidConfig, errcode.Of(err))
}

func TestSignalsPlainOutput(t *testing.T) {
	g := testGlobals(t, "t-eth-elite-a7670x")

	var out bytes.Buffer
	require.NoError(t, run(&out, g, []string{"signals"}))
	s := out.String()
	assert.NotContains(t, s, "\x1b[", "no colour when not a terminal")
	assert.Regexp(t, `ETH_CS_PIN\s+45\n`, s)
	assert.Regexp(t, `ETH_RST_PIN\s+-1\s+# not connected`, s)
	assert.NotContains(t, s, "CAMERA_")
}

func TestPlanOutput(t *testing.T) {
	g := testGlobals(t, "t-a7670")

	var out bytes.Buffer
	require.NoError(t, run(&out, g, []string{"plan"}))
	assert.Contains(t, out.String(), "board: t-a7670\n")

	out.Reset()
	require.NoError(t, run(&out, g, []string{"plan", "-dry-run"}))
	assert.Contains(t, out.String(), "GPIO12 output high (power_on)\n")
	assert.Contains(t, out.String(), "uart1 modem tx=GPIO26 rx=GPIO27 baud=115200\n")
}

func TestNoBoardSelected(t *testing.T) {
	g := testGlobals(t, "")
	err := run(&bytes.Buffer{}, g, []string{"show"})
	require.Error(t, err)
	assert.Equal(t, errcode.UnresolvedBoard, errcode.Of(err))
}

func TestUnknownCommand(t *testing.T) {
	assert.Equal(t, errcode.Unsupported, errcode.Of(run(&bytes.Buffer{}, globals{}, []string{"flash"})))
	assert.Equal(t, errcode.InvalidConfig, errcode.Of(run(&bytes.Buffer{}, globals{}, nil)))
}

func TestPorts(t *testing.T) {
	old := listPorts
	t.Cleanup(func() { listPorts = old })

	listPorts = func() ([]string, error) { return []string{"/dev/ttyACM0", "/dev/ttyUSB0"}, nil }
	var out bytes.Buffer
	require.NoError(t, run(&out, globals{}, []string{"ports"}))
	assert.Equal(t, "/dev/ttyACM0\n/dev/ttyUSB0\n", out.String())

	listPorts = func() ([]string, error) { return nil, nil }
	out.Reset()
	require.NoError(t, run(&out, globals{}, []string{"ports"}))
	assert.Equal(t, "no serial ports found\n", out.String())
}

// fakePort answers each write with a canned reply.
type fakePort struct {
	mu      sync.Mutex
	reply   string
	pending []byte
	written []byte
	closed  bool
}

func (f *fakePort) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.written = append(f.written, p...)
	f.pending = append(f.pending, f.reply...)
	return len(p), nil
}

func (f *fakePort) Read(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.pending) == 0 {
		return 0, nil // read timeout
	}
	n := copy(p, f.pending)
	f.pending = f.pending[n:]
	return n, nil
}

func (f *fakePort) Close() error                       { f.closed = true; return nil }
func (f *fakePort) SetReadTimeout(time.Duration) error { return nil }

func withPort(t *testing.T, fp *fakePort, wantBaud int) {
	t.Helper()
	old := openPort
	openPort = func(name string, baud int) (port, error) {
		assert.Equal(t, wantBaud, baud)
		if fp == nil {
			return nil, errors.New("no such port")
		}
		return fp, nil
	}
	oldDir := lockDir
	lockDir = t.TempDir()
	t.Cleanup(func() {
		openPort = old
		lockDir = oldDir
	})
}

func TestProbe(t *testing.T) {
	g := testGlobals(t, "t-eth-elite-a7670x")

	fp := &fakePort{reply: "AT\r\r\nOK\r\n"}
	withPort(t, fp, board.DefaultBaudRate)
	var out bytes.Buffer
	require.NoError(t, run(&out, g, []string{"probe", "-port", "/dev/ttyACM0"}))
	assert.Equal(t, "AT\r", string(fp.written))
	assert.True(t, fp.closed)
	assert.Contains(t, out.String(), "modem answered OK at 115200 baud")
}

func TestProbeFailures(t *testing.T) {
	g := testGlobals(t, "t-a7670")

	err := run(&bytes.Buffer{}, g, []string{"probe"})
	assert.Equal(t, errcode.InvalidConfig, errcode.Of(err))

	withPort(t, &fakePort{reply: "ERROR\r\n"}, 115200)
	err = run(&bytes.Buffer{}, g, []string{"probe", "-port", "p"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ERROR")

	withPort(t, &fakePort{}, 115200)
	err = run(&bytes.Buffer{}, g, []string{"probe", "-port", "p", "-timeout", "50ms"})
	assert.Equal(t, errcode.Timeout, errcode.Of(err))

	withPort(t, nil, 115200)
	err = run(&bytes.Buffer{}, g, []string{"probe", "-port", "p"})
	assert.Contains(t, err.Error(), "no such port")
}

func TestProbePortBusy(t *testing.T) {
	g := testGlobals(t, "t-a7670")
	withPort(t, &fakePort{reply: "OK\r\n"}, 115200)

	held := flock.New(filepath.Join(lockDir, "boardctl-dev_ttyUSB0.lock"))
	ok, err := held.TryLock()
	require.NoError(t, err)
	require.True(t, ok)
	defer held.Unlock()

	err = run(&bytes.Buffer{}, g, []string{"probe", "-port", "/dev/ttyUSB0"})
	assert.Equal(t, errcode.Busy, errcode.Of(err))
}

func TestColouredSignalsKeepAlignment(t *testing.T) {
	sigs := []board.Signal{
		{Name: "MODEM_TX_PIN", Pin: board.GPIO(6)},
		{Name: "ETH_RST_PIN", Pin: board.NotConnected},
		{Name: "MODEM_GPS_ENABLE_GPIO", Pin: board.GPIO(board.ModemAUXVDD), ModemSide: true},
		{Name: "ETH_CS_PIN", Pin: board.GPIO(45)},
	}

	var plain, coloured bytes.Buffer
	require.NoError(t, writeSignals(&plain, sigs, false))
	require.NoError(t, writeSignals(&coloured, sigs, true))

	assert.NotContains(t, plain.String(), "\x1b[")
	assert.Contains(t, coloured.String(), yellow+"-1"+reset)
	assert.Contains(t, coloured.String(), cyan+"127"+reset)

	ansi := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	assert.Equal(t, plain.String(), ansi.ReplaceAllString(coloured.String(), ""))
	assert.Regexp(t, `(?m)^ETH_RST_PIN\s+-1\s+# not connected$`, plain.String())
}
