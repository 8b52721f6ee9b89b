package cmdutil

import (
	"io"

	"github.com/fatih/color"
)

var warnColor = color.New(color.FgYellow)

// Warnf writes one WARN line to dst unless quiet is set. The line is
// colorized when dst is a terminal; color auto-disables on pipes.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = warnColor.Fprintf(dst, "WARN: "+format+"\n", a...)
}
