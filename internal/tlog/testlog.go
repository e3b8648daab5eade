package tlog

import (
	"fmt"
	"strings"

	"github.com/sirkon/errors"
)

const (
	bold  = "\033[1m"
	red   = "\033[1;31m"
	reset = "\033[0m"
)

// TestingPrinter is a part of *testing.T needed to print errors.
type TestingPrinter interface {
	Helper()
	Log(a ...any)
	Error(a ...any)
}

// Log logs error with its context.
func Log(t TestingPrinter, err error) {
	t.Helper()
	t.Log(render(err, bold))
}

// Error signals error with its context.
func Error(t TestingPrinter, err error) {
	t.Helper()
	t.Error(render(err, red))
}

// Check returns false if error is nil. Signals error and returns true otherwise.
func Check(t TestingPrinter, err error) bool {
	if err == nil {
		return false
	}

	t.Helper()
	t.Error(render(err, red))
	return true
}

// Context returns context variables of the error as a name -> value map.
// Later values win for duplicate names.
func Context(err error) map[string]any {
	res := map[string]any{}
	for _, v := range collect(err) {
		res[v.name] = v.value
	}

	return res
}

func collect(err error) []contextVar {
	d := errors.GetContextDeliverer(err)
	if d == nil {
		return nil
	}

	var c errorContextConsumer
	d.Deliver(&c)
	return c.vars
}

func render(err error, highlight string) string {
	if err == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(highlight)
	b.WriteString(err.Error())
	b.WriteString(reset)
	b.WriteByte('\n')

	vars := collect(err)
	var width int
	for _, v := range vars {
		if len(v.name) > width {
			width = len(v.name)
		}
	}

	for _, v := range vars {
		b.WriteString("    ")
		b.WriteString(bold)
		b.WriteString(v.name)
		b.WriteString(reset)
		b.WriteString(": ")
		b.WriteString(strings.Repeat(" ", width-len(v.name)))
		_, _ = fmt.Fprintln(&b, v.value)
	}

	return b.String()
}
