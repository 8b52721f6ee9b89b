// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"annotools/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs. extra prints the
// tool-specific synopsis and flag sections.
func UsageCommon(fs *flag.FlagSet, name, oneline string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – %s\n", name, oneline)
		fmt.Fprintf(out, "Version: %s\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "  -q, --quiet                 Suppress non-essential warnings")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
