package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/golang/glog"
	"go.bug.st/serial"

	"modemboard-go/errcode"
	"modemboard-go/x/mathx"
)

// port is the part of serial.Port that probe uses.
type port interface {
	io.ReadWriteCloser
	SetReadTimeout(t time.Duration) error
}

var (
	lockDir   = os.TempDir()
	listPorts = serial.GetPortsList
	openPort  = func(name string, baud int) (port, error) {
		return serial.Open(name, &serial.Mode{BaudRate: baud})
	}
)

func cmdPorts(w io.Writer, args []string) error {
	if err := subFlags("ports", w).Parse(args); err != nil {
		return err
	}
	ports, err := listPorts()
	if err != nil {
		return errcode.Wrap(errcode.Error, "boardctl ports", err)
	}
	if len(ports) == 0 {
		_, err = fmt.Fprintln(w, "no serial ports found")
		return err
	}
	for _, p := range ports {
		fmt.Fprintln(w, p)
	}
	return nil
}

// cmdProbe sends AT to a modem reachable through a host serial port,
// typically a board running an AT pass-through sketch.
func cmdProbe(w io.Writer, g globals, args []string) error {
	const op = "boardctl probe"
	fs := subFlags("probe", w)
	name := fs.String("port", "", "serial port, e.g. /dev/ttyACM0")
	timeout := fs.Duration("timeout", 2*time.Second, "time to wait for OK")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return errcode.New(errcode.InvalidConfig, op, "-port is required")
	}
	p, err := selected(g)
	if err != nil {
		return err
	}
	baud := int(p.Modem.BaudRate())
	wait := mathx.Clamp(*timeout, 100*time.Millisecond, time.Minute)

	lock, err := lockPort(*name)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	sp, err := openPort(*name, baud)
	if err != nil {
		return errcode.Wrap(errcode.Error, op, err)
	}
	defer sp.Close()

	glog.V(1).Infof("Probing %s on %s at %d baud", p.ID, *name, baud)
	if _, err := sp.Write([]byte("AT\r")); err != nil {
		return errcode.Wrap(errcode.Error, op, err)
	}

	reply, err := readUntilOK(sp, wait)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s: modem answered OK at %d baud\n", *name, baud)
	glog.V(2).Infof("Reply: %q", reply)
	return err
}

// lockPort takes an advisory lock so two probes never share a port.
func lockPort(name string) (*flock.Flock, error) {
	const op = "boardctl probe"
	key := strings.NewReplacer("/", "_", "\\", "_", ":", "_").Replace(strings.Trim(name, "/"))
	l := flock.New(filepath.Join(lockDir, "boardctl-"+key+".lock"))
	ok, err := l.TryLock()
	if err != nil {
		return nil, errcode.Wrap(errcode.Error, op, err)
	}
	if !ok {
		return nil, errcode.New(errcode.Busy, op, name+" is being probed by another process")
	}
	return l, nil
}

// readUntilOK collects bytes until an OK line arrives or the timeout ends.
func readUntilOK(sp port, timeout time.Duration) ([]byte, error) {
	const (
		op    = "boardctl probe"
		slice = 100 * time.Millisecond
	)
	if err := sp.SetReadTimeout(slice); err != nil {
		return nil, errcode.Wrap(errcode.Error, op, err)
	}
	deadline := time.Now().Add(timeout)
	var got []byte
	buf := make([]byte, 64)
	for time.Now().Before(deadline) {
		n, err := sp.Read(buf)
		if err != nil {
			return got, errcode.Wrap(errcode.Error, op, err)
		}
		got = append(got, buf[:n]...)
		if bytes.Contains(got, []byte("OK\r\n")) || bytes.HasSuffix(bytes.TrimSpace(got), []byte("OK")) {
			return got, nil
		}
		if bytes.Contains(got, []byte("ERROR")) {
			return got, errcode.New(errcode.Error, op, fmt.Sprintf("modem replied %q", bytes.TrimSpace(got)))
		}
	}
	return got, errcode.New(errcode.Timeout, op, fmt.Sprintf("no OK within %s", timeout))
}
