// Package log provides the small levelled logger used throughout the
// emulator.
package log

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Logger is implemented by everything that can receive log output.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Fatal(str string)
}

const (
	colourReset = "\033[0m"
	colourInfo  = "\033[36m"
	colourError = "\033[31m"
	colourDebug = "\033[90m"
)

type logger struct {
	w      io.Writer
	debug  bool
	colour bool
}

// Opt configures a logger.
type Opt func(l *logger)

// WithDebug enables output of Debugf messages.
func WithDebug(debug bool) Opt {
	return func(l *logger) {
		l.debug = debug
	}
}

// WithWriter sends output to w. Colour is only used when w is a
// terminal.
func WithWriter(w io.Writer) Opt {
	return func(l *logger) {
		l.w = w
	}
}

// New returns a Logger writing to stdout.
func New(opts ...Opt) Logger {
	l := &logger{w: os.Stdout}
	for _, opt := range opts {
		opt(l)
	}
	if f, ok := l.w.(*os.File); ok {
		l.colour = term.IsTerminal(int(f.Fd()))
	}
	return l
}

func (l *logger) print(colour, level, format string, args ...interface{}) {
	if l.colour {
		fmt.Fprintf(l.w, colour+"["+level+"]"+colourReset+"\t"+format+"\n", args...)
		return
	}
	fmt.Fprintf(l.w, "["+level+"]\t"+format+"\n", args...)
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.print(colourInfo, "INFO", format, args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.print(colourError, "ERROR", format, args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	if !l.debug {
		return
	}
	l.print(colourDebug, "DEBUG", format, args...)
}

// Fatal logs str as an error and exits the process.
func (l *logger) Fatal(str string) {
	l.print(colourError, "FATAL", "%s", str)
	os.Exit(1)
}
