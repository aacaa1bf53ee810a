package ui

import (
	"fmt"
	"io"
	"strings"
)

// Printer writes progress to Out and problems to Err.
type Printer struct {
	Out     io.Writer
	Err     io.Writer
	Verbose bool

	out Styles
	err Styles
}

// NewPrinter returns a Printer; color false disables ANSI styling.
func NewPrinter(out, errOut io.Writer, color, verbose bool) *Printer {
	return &Printer{
		Out:     out,
		Err:     errOut,
		Verbose: verbose,
		out:     NewStyles(out, color),
		err:     NewStyles(errOut, color),
	}
}

// Stepf prints an in-progress line.
func (p *Printer) Stepf(format string, args ...any) {
	fmt.Fprintln(p.Out, p.out.Cyan.Render("==>")+" "+fmt.Sprintf(format, args...))
}

// Successf prints a completion line.
func (p *Printer) Successf(format string, args ...any) {
	fmt.Fprintln(p.Out, p.out.Green.Render(fmt.Sprintf(format, args...)))
}

// Warnf prints a non-fatal problem to Err.
func (p *Printer) Warnf(format string, args ...any) {
	fmt.Fprintln(p.Err, p.err.Bold.Render("warning:")+" "+fmt.Sprintf(format, args...))
}

// Errorf prints a fatal problem to Err.
func (p *Printer) Errorf(format string, args ...any) {
	fmt.Fprintln(p.Err, p.err.Red.Render("Error:")+" "+fmt.Sprintf(format, args...))
}

// Debugf prints only in verbose mode.
func (p *Printer) Debugf(format string, args ...any) {
	if !p.Verbose {
		return
	}
	fmt.Fprintln(p.Out, p.out.Dim.Render(fmt.Sprintf(format, args...)))
}

// Plain prints an unstyled line.
func (p *Printer) Plain(format string, args ...any) {
	fmt.Fprintf(p.Out, format+"\n", args...)
}

// Command renders a shell-like command line for display.
func (p *Printer) Command(argv []string) string {
	return p.out.Bold.Render(strings.Join(argv, " "))
}
