package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"tally/internal/config"
	"tally/internal/domain"
)

const rule = "=============================="

// Console narrates a session as it happens
type Console struct {
	out   io.Writer
	quiet bool

	title *color.Color
	pass  *color.Color
	fail  *color.Color
	warn  *color.Color
	plain *color.Color
}

// NewConsole creates a Console writing to out, or stdout if out is nil
func NewConsole(cfg *config.Config, out io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	c := &Console{
		out:   out,
		quiet: cfg.Quiet,
		title: color.New(color.FgCyan),
		pass:  color.New(color.FgGreen),
		fail:  color.New(color.FgRed),
		warn:  color.New(color.FgYellow),
		plain: color.New(color.FgWhite),
	}
	if cfg.NoColor {
		for _, col := range []*color.Color{c.title, c.pass, c.fail, c.warn, c.plain} {
			col.DisableColor()
		}
	}
	return c
}

// Writer returns the writer the console prints to
func (c *Console) Writer() io.Writer { return c.out }

// Registered narrates a test registration
func (c *Console) Registered(name string) {
	if c.quiet {
		return
	}
	c.plain.Fprintf(c.out, "adding test: %s\n", name)
}

// Starting prints the session banner
func (c *Console) Starting() {
	c.title.Fprintln(c.out, "++++++++ TALLY +++++++++")
	c.plain.Fprint(c.out, "starting testing...\n\n")
}

// Running narrates the start of a test
func (c *Console) Running(name string) {
	if c.quiet {
		return
	}
	c.title.Fprintf(c.out, "%s\n\n", rule)
	c.title.Fprintf(c.out, "====running %s====\n", name)
}

// FinishedRunning closes the narration of the last test
func (c *Console) FinishedRunning() {
	if c.quiet {
		return
	}
	c.title.Fprintf(c.out, "%s\n\n", rule)
}

// Passed implements assert.Notifier
func (c *Console) Passed(test, kind string) {
	if c.quiet {
		return
	}
	c.pass.Fprintf(c.out, "%s: %s PASSED\n", test, kind)
}

// Failed implements assert.Notifier
func (c *Console) Failed(report domain.FailureReport) {
	if c.quiet {
		return
	}
	c.fail.Fprintf(c.out, "-> %s: %s FAILED\n", report.TestName, report.Kind)
	if report.Message != "" {
		c.fail.Fprintf(c.out, "   %s\n", report.Message)
	}
}

// SourceUnavailable implements assert.Notifier
func (c *Console) SourceUnavailable(loc domain.Location, err error) {
	c.Warn("cannot read source of %s: %v", loc, err)
}

// Warn prints a warning regardless of quiet mode
func (c *Console) Warn(format string, args ...interface{}) {
	c.warn.Fprintf(c.out, "warning: %s\n", fmt.Sprintf(format, args...))
}

// TearingDown narrates the teardown phase
func (c *Console) TearingDown() {
	c.plain.Fprintln(c.out, "tearing down testing...")
}

// Completed prints the closing banner
func (c *Console) Completed() {
	c.plain.Fprintln(c.out, "testing completed...")
	c.title.Fprint(c.out, "++++++++++++++++++++++++\n\n")
}
