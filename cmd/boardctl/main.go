// Command boardctl inspects the LilyGO modem board tables: it lists the
// boards, prints the resolved profile and its resource plan, and can poke
// a modem over a host serial port.
//
//	boardctl [-board ID] [-config board.yaml] <command> [flags]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"

	"modemboard-go/board"
	"modemboard-go/config"
	"modemboard-go/errcode"
)

var (
	boardFlag  = flag.String("board", "", "board identifier or vendor macro")
	configPath = flag.String("config", config.DefaultPath, "YAML file with the board selection")
)

type globals struct {
	board  string
	config string
}

const usageText = `usage: boardctl [-board ID] [-config FILE] <command> [flags]

commands:
  list      list every board in the table
  show      print the selected profile (-o text|yaml|json)
  signals   print the selected board's pins using the vendor header names
  plan      print the resource plan as YAML (-dry-run binds it to host fakes)
  ports     list serial ports on this host
  probe     send AT to a modem over a serial port (-port, -timeout)
`

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usageText)
		flag.PrintDefaults()
	}
	flag.Parse()
	defer glog.Flush()

	if err := run(os.Stdout, globals{board: *boardFlag, config: *configPath}, flag.Args()); err != nil {
		glog.Exitf("boardctl: %v", err)
	}
}

func run(w io.Writer, g globals, args []string) error {
	if len(args) == 0 {
		return errcode.New(errcode.InvalidConfig, "boardctl", "no command given\n"+usageText)
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "list":
		return cmdList(w, rest)
	case "show":
		return cmdShow(w, g, rest)
	case "signals":
		return cmdSignals(w, g, rest)
	case "plan":
		return cmdPlan(w, g, rest)
	case "ports":
		return cmdPorts(w, rest)
	case "probe":
		return cmdProbe(w, g, rest)
	case "help":
		_, err := io.WriteString(w, usageText)
		return err
	default:
		return errcode.New(errcode.Unsupported, "boardctl", fmt.Sprintf("unknown command %q", cmd))
	}
}

// subFlags returns a flag set that reports errors instead of exiting.
func subFlags(name string, w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	return fs
}

// selected resolves the board from every configured source.
func selected(g globals) (board.Profile, error) {
	cfg, err := config.Load(g.config)
	if err != nil {
		return board.Profile{}, err
	}
	sel, err := config.NewSelection(cfg, g.board)
	if err != nil {
		return board.Profile{}, err
	}
	return sel.Resolve()
}
