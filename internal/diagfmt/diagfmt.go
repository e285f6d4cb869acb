// Package diagfmt renders diagnostics to a terminal, colorizing severity
// labels when writing to a real TTY (or when forced on).
package diagfmt

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"pynext/internal/diag"
	"pynext/internal/source"
)

// ColorMode mirrors the --color flag's three settings.
type ColorMode string

const (
	ColorAuto ColorMode = "auto"
	ColorOn   ColorMode = "on"
	ColorOff  ColorMode = "off"
)

// IsTerminal reports whether f is attached to a real terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Printer renders diagnostics against their owning source file.
type Printer struct {
	w         io.Writer
	colorized bool

	errorLabel color.Attribute
	warnLabel  color.Attribute
}

// New builds a Printer writing to w. mode resolves against tty: ColorAuto
// colorizes only when tty is true, ColorOn/ColorOff force the choice.
func New(w io.Writer, mode ColorMode, tty bool) *Printer {
	colorized := tty
	switch mode {
	case ColorOn:
		colorized = true
	case ColorOff:
		colorized = false
	}
	return &Printer{w: w, colorized: colorized, errorLabel: color.FgRed, warnLabel: color.FgYellow}
}

// Print writes one diagnostic as "path:line:col: severity: message".
func (p *Printer) Print(f *source.File, d diag.Diagnostic) {
	pos := f.Position(d.Primary.Start)
	label := d.Severity.String()
	if p.colorized {
		attr := color.FgCyan
		switch d.Severity {
		case diag.SevError:
			attr = p.errorLabel
		case diag.SevWarning:
			attr = p.warnLabel
		}
		label = color.New(attr, color.Bold).Sprint(label)
	}
	fmt.Fprintf(p.w, "%s:%d:%d: %s: %s\n", f.Path, pos.Line, pos.Column, label, d.Message)
}

// PrintAll renders every diagnostic in bag, in report order.
func (p *Printer) PrintAll(f *source.File, bag *diag.Bag) {
	for _, d := range bag.Items() {
		p.Print(f, d)
	}
}
