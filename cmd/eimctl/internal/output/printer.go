// Package output provides terminal output formatting for eimctl.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Printer handles formatted status output to the terminal.
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

// ResolveColors decides whether color output is enabled, honoring NO_COLOR
// and dumb terminals over the configured preference.
func ResolveColors(configColors bool) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return configColors
}

// NewPrinter creates a printer writing to stdout/stderr.
func NewPrinter(useColors bool) *Printer {
	return &Printer{
		out:       os.Stdout,
		err:       os.Stderr,
		useColors: useColors,
	}
}

// NewPrinterWithWriters creates a printer with custom writers, for tests.
func NewPrinterWithWriters(out, err io.Writer, useColors bool) *Printer {
	return &Printer{out: out, err: err, useColors: useColors}
}

// Success prints a green success line.
func (p *Printer) Success(format string, args ...any) {
	p.println(p.out, color.FgGreen, "✓ "+fmt.Sprintf(format, args...))
}

// Info prints a neutral informational line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintln(p.out, fmt.Sprintf(format, args...))
}

// Warn prints a yellow warning line to stderr.
func (p *Printer) Warn(format string, args ...any) {
	p.println(p.err, color.FgYellow, "! "+fmt.Sprintf(format, args...))
}

// Error prints a red error line to stderr.
func (p *Printer) Error(format string, args ...any) {
	p.println(p.err, color.FgRed, "✗ "+fmt.Sprintf(format, args...))
}

func (p *Printer) println(w io.Writer, attr color.Attribute, line string) {
	if p.useColors {
		c := color.New(attr)
		c.Fprintln(w, line)
		return
	}
	fmt.Fprintln(w, line)
}
