package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"sigs.k8s.io/yaml"

	"modemboard-go/board"
	"modemboard-go/errcode"
	"modemboard-go/plan"
	"modemboard-go/platform"
)

func cmdList(w io.Writer, args []string) error {
	if err := subFlags("list", w).Parse(args); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSOC\tCHIPSET\tFAMILY\tSTATUS\tBUILD TAG")
	for _, id := range board.IDs() {
		p, err := board.LookupAny(id)
		if err != nil {
			return err
		}
		fam := string(p.Family)
		if fam == "" {
			fam = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", id, p.SoC, p.Chipset, fam, p.Status, board.BuildTag(id))
	}
	return tw.Flush()
}

func cmdShow(w io.Writer, g globals, args []string) error {
	fs := subFlags("show", w)
	format := fs.String("o", "text", "output format: text, yaml or json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	p, err := selected(g)
	if err != nil {
		return err
	}
	switch *format {
	case "yaml":
		b, err := yaml.Marshal(p)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case "json":
		b, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case "text":
		return showText(w, p)
	default:
		return errcode.New(errcode.InvalidConfig, "boardctl show", fmt.Sprintf("unknown format %q", *format))
	}
}

func showText(w io.Writer, p board.Profile) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Board:\t%s (%s)\n", p.Name, p.ID)
	fmt.Fprintf(tw, "Macro:\t%s\n", p.Macro)
	if p.URL != "" {
		fmt.Fprintf(tw, "URL:\t%s\n", p.URL)
	}
	fmt.Fprintf(tw, "SoC:\t%s\n", p.SoC)
	fmt.Fprintf(tw, "Chipset:\t%s (%s)\n", p.Chipset, p.Chipset.Define())
	if p.Family != "" {
		fmt.Fprintf(tw, "Family:\t%s\n", p.Family)
	}
	fmt.Fprintf(tw, "Status:\t%s\n", p.Status)
	if p.Reason != "" {
		fmt.Fprintf(tw, "Reason:\t%s\n", p.Reason)
	}
	fmt.Fprintf(tw, "Modem UART:\t%s @ %d baud\n", p.Modem.Port, p.Modem.BaudRate())
	fmt.Fprintf(tw, "Features:\t%s\n", strings.Join(features(p), ", "))
	for _, n := range p.Notes {
		fmt.Fprintf(tw, "Note:\t%s\n", n)
	}
	return tw.Flush()
}

func features(p board.Profile) []string {
	var out []string
	for _, f := range []struct {
		name string
		ok   bool
	}{
		{"modem power control", p.HasModemPowerControl()},
		{"gps", p.HasGPS()},
		{"sd", p.HasSD()},
		{"ethernet", p.HasEthernet()},
		{"camera", p.HasCamera()},
		{"battery adc", p.HasBatteryADC()},
		{"solar adc", p.HasSolarADC()},
	} {
		if f.ok {
			out = append(out, f.name)
		}
	}
	if len(out) == 0 {
		return []string{"none"}
	}
	return out
}

func cmdSignals(w io.Writer, g globals, args []string) error {
	if err := subFlags("signals", w).Parse(args); err != nil {
		return err
	}
	p, err := selected(g)
	if err != nil {
		return err
	}
	out, color := terminal(w)
	return writeSignals(out, p.Signals(), color)
}

// writeSignals lays the table out first and colours values afterwards so
// escape codes never count towards column widths.
func writeSignals(w io.Writer, sigs []board.Signal, color palette) error {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	for _, s := range sigs {
		note := ""
		switch {
		case !s.Pin.Connected():
			note = "\t# not connected"
		case s.ModemSide:
			note = "\t# modem GPIO"
		}
		fmt.Fprintf(tw, "%s\t%d%s\n", s.Name, s.Pin.Raw(), note)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	lines := strings.SplitAfter(buf.String(), "\n")
	for i, s := range sigs {
		if i >= len(lines) {
			break
		}
		code := ""
		switch {
		case !s.Pin.Connected():
			code = yellow
		case s.ModemSide:
			code = cyan
		}
		if code == "" || !color {
			continue
		}
		line := lines[i]
		val := strconv.Itoa(s.Pin.Raw())
		at := len(s.Name) + strings.Index(line[len(s.Name):], val)
		lines[i] = line[:at] + color.paint(code, val) + line[at+len(val):]
	}
	_, err := io.WriteString(w, strings.Join(lines, ""))
	return err
}

func cmdPlan(w io.Writer, g globals, args []string) error {
	fs := subFlags("plan", w)
	dry := fs.Bool("dry-run", false, "bind the plan to host fakes and print the GPIO steps")
	if err := fs.Parse(args); err != nil {
		return err
	}
	p, err := selected(g)
	if err != nil {
		return err
	}
	rp := plan.FromProfile(p)
	if !*dry {
		b, err := rp.YAML()
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}

	_, hi := p.SoC.GPIORange()
	f, _ := platform.HostFactories(rp, hi)
	bound, err := platform.Bind(rp, f)
	if err != nil {
		return err
	}
	for _, a := range bound.Actions {
		fmt.Fprintln(w, a)
	}
	for _, u := range rp.UART {
		fmt.Fprintf(w, "%s %s tx=GPIO%d rx=GPIO%d baud=%d\n", u.ID, u.Role, u.TX, u.RX, u.Baud)
	}
	for _, b := range rp.I2C {
		fmt.Fprintf(w, "%s ready at %d Hz\n", b.ID, b.Hz)
	}
	for _, s := range rp.SPI {
		fmt.Fprintf(w, "%s ready (%d devices)\n", s.ID, len(s.Devices))
	}
	return nil
}
