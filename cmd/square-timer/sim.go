package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/sweeney/square-timer/internal/gpio"
	"github.com/sweeney/square-timer/internal/strip"
)

// simulator is the terminal stand-in for the hardware.
type simulator struct {
	keys    *gpio.KeyReader
	strip   *strip.TermStrip
	restore func()
}

// openSim puts the terminal in raw mode so single key presses reach the
// emulated button, and draws the strip on stdout.
func openSim() (*simulator, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("sim: stdin is not a terminal")
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("sim: entering raw mode: %w", err)
	}

	// Raw mode disables newline translation.
	log.SetOutput(crlfWriter{os.Stderr})
	fmt.Fprint(os.Stdout, "space: press/release the button, q: quit\r\n")

	return &simulator{
		keys:  gpio.NewKeyReader(os.Stdin),
		strip: strip.NewTermStrip(os.Stdout),
		restore: func() {
			term.Restore(fd, oldState)
			log.SetOutput(os.Stderr)
		},
	}, nil
}

// crlfWriter turns "\n" into "\r\n" for terminals in raw mode.
type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(p []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
