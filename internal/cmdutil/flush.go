package cmdutil

import (
	"bufio"
	"fmt"
	"io"

	"annotools/internal/ioutilx"
)

// Flush drains the buffered stdout writer and maps the result to an
// exit code: broken pipes (downstream `head` closing early) are a
// normal completion, any other write error is fatal.
func Flush(outw *bufio.Writer, stderr io.Writer) int {
	if e := outw.Flush(); ioutilx.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return 0
}
