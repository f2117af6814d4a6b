package main

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

const (
	yellow = "\x1b[33m"
	cyan   = "\x1b[36m"
	reset  = "\x1b[0m"
)

type palette bool

func (p palette) paint(code, s string) string {
	if !p {
		return s
	}
	return code + s + reset
}

// terminal returns a writer that understands ANSI colour and whether to
// use it. Only real terminals get colour.
func terminal(w io.Writer) (io.Writer, palette) {
	f, ok := w.(*os.File)
	if !ok {
		return w, false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return w, false
	}
	return colorable.NewColorable(f), true
}
