package main

import (
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// Default and maximum help text width in columns.
const (
	defaultWidth = 80
	maxWidth     = 100
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// StdoutIsTerminal reports whether PDF bytes written to Stdout would
	// land on a terminal.
	StdoutIsTerminal func() bool
	// Columns returns the terminal width, or 0 when unknown.
	Columns func() int
}

// DefaultEnv returns the production environment bound to the process
// standard streams.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		StdoutIsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd())) // #nosec G115 -- file descriptors fit in int
		},
		Columns: func() int {
			w, _, err := term.GetSize(int(os.Stdout.Fd())) // #nosec G115 -- file descriptors fit in int
			if err != nil {
				return 0
			}
			return w
		},
	}
}

// Width returns the column count used to wrap help text.
func (e *Environment) Width() int {
	if e.Columns == nil {
		return defaultWidth
	}
	w := e.Columns()
	if w <= 0 {
		return defaultWidth
	}
	return min(w, maxWidth)
}
